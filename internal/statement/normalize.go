package statement

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	sourceDateLayout = "2/1/2006"
	ISODateLayout    = "2006-01-02"

	// AmountScale is the number of fractional digits the ledger stores.
	AmountScale = 2
)

var groupedNumber = regexp.MustCompile(`^[-+]?\d{1,3}(,\d{3})+(\.\d+)?$`)

var (
	ErrUnparseableAmount = errors.New("statement: row has no parseable amount")
	ErrUnparseableDate   = errors.New("statement: row date is not a calendar date")
)

// Row is one CSV line keyed by canonical column. Missing columns are empty.
type Row struct {
	Line        int
	Date        string
	Description string
	Credit      string
	Debit       string
	Amount      string
	Category    string
}

// Record is a normalized row ready to be stored as a transaction.
type Record struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Category    *string
}

// ParseDate converts a day/month/year date into YYYY-MM-DD. When raw does not
// match that layout it is returned unchanged along with false.
func ParseDate(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	parsed, err := time.Parse(sourceDateLayout, trimmed)
	if err != nil {
		return raw, false
	}
	return parsed.Format(ISODateLayout), true
}

// ResolveAmount picks the signed amount for a row. Credit wins over debit,
// debit wins over the single amount column. Debits are always negative.
func ResolveAmount(row Row) (decimal.Decimal, error) {
	if credit := strings.TrimSpace(row.Credit); credit != "" {
		value, err := ParseNumber(credit)
		if err != nil {
			return decimal.Zero, err
		}
		return value.Abs(), nil
	}

	if debit := strings.TrimSpace(row.Debit); debit != "" {
		value, err := ParseNumber(debit)
		if err != nil {
			return decimal.Zero, err
		}
		return value.Abs().Neg(), nil
	}

	if amount := strings.TrimSpace(row.Amount); amount != "" {
		return ParseNumber(amount)
	}

	return decimal.Zero, ErrUnparseableAmount
}

// ParseNumber parses a decimal amount. Commas are only accepted as thousands
// separators, and values finer than AmountScale are rejected rather than
// rounded by the NUMERIC column.
func ParseNumber(raw string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if strings.Contains(trimmed, ",") {
		if !groupedNumber.MatchString(trimmed) {
			return decimal.Zero, ErrUnparseableAmount
		}
		trimmed = strings.ReplaceAll(trimmed, ",", "")
	}

	value, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, ErrUnparseableAmount
	}
	if !value.Equal(value.Truncate(AmountScale)) {
		return decimal.Zero, ErrUnparseableAmount
	}
	return value, nil
}

// Normalize turns a raw row into a Record. Rows whose date is neither
// day/month/year nor already ISO are rejected so they cannot escape month
// filtering.
func Normalize(row Row) (Record, error) {
	amount, err := ResolveAmount(row)
	if err != nil {
		return Record{}, err
	}

	iso, _ := ParseDate(row.Date)
	date, err := time.Parse(ISODateLayout, strings.TrimSpace(iso))
	if err != nil {
		return Record{}, ErrUnparseableDate
	}

	record := Record{
		Date:        date,
		Description: strings.TrimSpace(row.Description),
		Amount:      amount,
	}
	if category := strings.TrimSpace(row.Category); category != "" {
		record.Category = &category
	}
	return record, nil
}
