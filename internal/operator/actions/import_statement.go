package actions

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-reconciler/internal/statement"
	"github.com/carson-networks/budget-reconciler/internal/storage"
	"github.com/carson-networks/budget-reconciler/internal/storage/sqlconfig"
)

// ImportStatement ingests one statement file as a single batch. The ledger
// row is claimed before the file is opened; any error returned afterwards
// rolls back the claim together with every inserted transaction.
type ImportStatement struct {
	Filename   string
	Open       func() (io.ReadCloser, error)
	UploadDate time.Time
	Logger     logrus.FieldLogger

	ImportID    uuid.UUID
	Imported    int
	RowsSkipped int
	StartDate   *time.Time
	EndDate     *time.Time
}

func (a *ImportStatement) Perform(ctx context.Context, writer *storage.Writer) error {
	a.reset()
	log := a.logger().WithField("filename", a.Filename)

	id, claimed, err := writer.Imports.Claim(ctx, &sqlconfig.ImportCreate{
		Filename:   a.Filename,
		UploadDate: a.UploadDate,
	})
	if err != nil {
		return fmt.Errorf("claim import: %w", err)
	}
	if !claimed {
		return ErrDuplicateImport
	}
	a.ImportID = id

	file, err := a.Open()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEmptyInput, err)
	}
	defer file.Close()

	reader, err := statement.NewReader(file)
	if errors.Is(err, statement.ErrNoHeader) {
		return ErrEmptyInput
	}
	if err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		row, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("read row: %w", err)
		}

		record, err := statement.Normalize(row)
		if err != nil {
			a.RowsSkipped++
			if log.Logger.IsLevelEnabled(logrus.DebugLevel) {
				log.WithError(err).WithField("line", row.Line).
					Debugf("ImportStatement.RowSkipped\n%s", spew.Sdump(row))
			}
			continue
		}

		_, err = writer.Transactions.Insert(ctx, &sqlconfig.TransactionCreate{
			Date:        record.Date,
			Description: record.Description,
			Amount:      record.Amount,
			SourceFile:  a.Filename,
			Category:    record.Category,
			ImportID:    id,
		})
		if err != nil {
			return fmt.Errorf("insert transaction on line %d: %w", row.Line, err)
		}
		a.Imported++
		a.extendSpan(record.Date)
	}

	if a.Imported == 0 && a.RowsSkipped == 0 {
		return ErrEmptyInput
	}

	if a.StartDate != nil {
		if err := writer.Imports.UpdateSpan(ctx, id, *a.StartDate, *a.EndDate); err != nil {
			return fmt.Errorf("update import span: %w", err)
		}
	}

	return nil
}

func (a *ImportStatement) extendSpan(date time.Time) {
	if a.StartDate == nil || date.Before(*a.StartDate) {
		start := date
		a.StartDate = &start
	}
	if a.EndDate == nil || date.After(*a.EndDate) {
		end := date
		a.EndDate = &end
	}
}

func (a *ImportStatement) reset() {
	a.ImportID = uuid.Nil
	a.Imported = 0
	a.RowsSkipped = 0
	a.StartDate = nil
	a.EndDate = nil
}

func (a *ImportStatement) logger() *logrus.Entry {
	if a.Logger == nil {
		return logrus.NewEntry(logrus.StandardLogger())
	}
	return a.Logger.WithFields(logrus.Fields{})
}
