package service

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-reconciler/internal/storage/sqlconfig"
)

type ImportStatus string

const (
	ImportStatusImported ImportStatus = "imported"
	ImportStatusSkipped  ImportStatus = "skipped"
	ImportStatusEmpty    ImportStatus = "empty"
	ImportStatusFailed   ImportStatus = "failed"
)

// ImportResult is the outcome of importing one file.
type ImportResult struct {
	Status      ImportStatus
	Filename    string
	ImportID    uuid.UUID
	Imported    int
	RowsSkipped int
	StartDate   *time.Time
	EndDate     *time.Time
	Err         error
}

// BatchError reports a batch that was rolled back as a whole.
type BatchError struct {
	Filename string
	Err      error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("import %s failed: %v", e.Filename, e.Err)
}

func (e *BatchError) Unwrap() error {
	return e.Err
}

// Import is one ledger entry.
type Import struct {
	ID         uuid.UUID
	Filename   string
	StartDate  *time.Time
	EndDate    *time.Time
	UploadDate time.Time
}

// CalendarEvent is the date span covered by one import.
type CalendarEvent struct {
	Title string
	Start time.Time
	End   time.Time
	Color string
}

const calendarEventColor = "#3788d8"

func importFromRow(row *sqlconfig.Import) Import {
	return Import{
		ID:         row.ID,
		Filename:   row.Filename,
		StartDate:  row.StartDate,
		EndDate:    row.EndDate,
		UploadDate: row.UploadDate,
	}
}
