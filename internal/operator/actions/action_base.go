package actions

import (
	"context"
	"errors"

	"github.com/carson-networks/budget-reconciler/internal/storage"
)

// IAction is a unit of work run inside one storage transaction. Returning a
// non-nil error rolls the transaction back.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}

var (
	// ErrDuplicateImport means the filename is already in the import ledger.
	ErrDuplicateImport = errors.New("file already imported")
	// ErrEmptyInput means the file was unreadable, zero bytes or header only.
	ErrEmptyInput = errors.New("file has no rows to import")
	// ErrBillExists means a bill with the same name is already due that month.
	ErrBillExists = errors.New("bill already exists for month")
)
