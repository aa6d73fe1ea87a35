package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Transaction represents a transaction record.
type Transaction struct {
	ID          uuid.UUID       `db:"id"`
	Date        time.Time       `db:"date"`
	Description string          `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
	SourceFile  string          `db:"source_file"`
	Category    *string         `db:"category"`
	ImportID    uuid.UUID       `db:"import_id"`
	CreatedAt   time.Time       `db:"created_at"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	SourceFile  string
	Category    *string
	ImportID    uuid.UUID
}

// TransactionFilter narrows a listing to a calendar month and/or year.
// A nil filter or nil fields return everything.
type TransactionFilter struct {
	Month    *time.Month
	Year     *int
	ImportID *uuid.UUID
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name ITransactionTable --output . --outpkg sqlconfig --inpackage --with-expecter
type ITransactionTable interface {
	Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error)
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
}
