package statement

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	ErrNoHeader       = errors.New("statement: input has no header row")
	ErrMissingColumns = errors.New("statement: header needs Date and one of Credit, Debit or Amount")
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

const (
	columnDate        = "date"
	columnDescription = "description"
	columnCredit      = "credit"
	columnDebit       = "debit"
	columnAmount      = "amount"
	columnCategory    = "category"
)

// Reader yields the rows of a bank statement export.
type Reader struct {
	csv     *csv.Reader
	columns map[string]int
}

// NewReader consumes the header row of r and maps the recognized columns.
func NewReader(r io.Reader) (*Reader, error) {
	buffered := bufio.NewReader(r)
	if prefix, err := buffered.Peek(len(utf8BOM)); err == nil && bytes.Equal(prefix, utf8BOM) {
		if _, err := buffered.Discard(len(utf8BOM)); err != nil {
			return nil, err
		}
	}

	csvReader := csv.NewReader(buffered)
	csvReader.FieldsPerRecord = -1
	csvReader.TrimLeadingSpace = true

	header, err := csvReader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("statement: reading header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, seen := columns[key]; !seen {
			columns[key] = i
		}
	}

	_, hasDate := columns[columnDate]
	_, hasCredit := columns[columnCredit]
	_, hasDebit := columns[columnDebit]
	_, hasAmount := columns[columnAmount]
	if !hasDate || !(hasCredit || hasDebit || hasAmount) {
		return nil, ErrMissingColumns
	}

	return &Reader{csv: csvReader, columns: columns}, nil
}

// Next returns the next data row, or io.EOF once the input is exhausted.
// Malformed CSV is returned as an error and should abort the batch.
func (r *Reader) Next() (Row, error) {
	for {
		fields, err := r.csv.Read()
		if err != nil {
			return Row{}, err
		}

		if isBlank(fields) {
			continue
		}

		line, _ := r.csv.FieldPos(0)
		return Row{
			Line:        line,
			Date:        r.field(fields, columnDate),
			Description: r.field(fields, columnDescription),
			Credit:      r.field(fields, columnCredit),
			Debit:       r.field(fields, columnDebit),
			Amount:      r.field(fields, columnAmount),
			Category:    r.field(fields, columnCategory),
		}, nil
	}
}

func (r *Reader) field(fields []string, column string) string {
	idx, ok := r.columns[column]
	if !ok || idx >= len(fields) {
		return ""
	}
	return fields[idx]
}

func isBlank(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
