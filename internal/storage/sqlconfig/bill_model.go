package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Bill is a concrete dated bill, generated from a template or entered by hand.
type Bill struct {
	ID            uuid.UUID       `db:"id"`
	Name          string          `db:"name"`
	DueDate       time.Time       `db:"due_date"`
	Amount        decimal.Decimal `db:"amount"`
	IsPaid        bool            `db:"is_paid"`
	PaidDate      *time.Time      `db:"paid_date"`
	TransactionID *uuid.UUID      `db:"transaction_id"`
}

type BillCreate struct {
	Name    string
	DueDate time.Time
	Amount  decimal.Decimal
}

// BillPaidUpdate replaces the payment columns of a bill.
type BillPaidUpdate struct {
	IsPaid        bool
	PaidDate      *time.Time
	TransactionID *uuid.UUID
}

// BillFilter narrows a listing to bills due in a calendar month and/or year.
type BillFilter struct {
	Month *time.Month
	Year  *int
}

//go:generate mockery --name IBillTable --output . --outpkg sqlconfig --inpackage --with-expecter
type IBillTable interface {
	Insert(ctx context.Context, create *BillCreate) (uuid.UUID, error)
	LockNameAndMonth(ctx context.Context, name string, year int, month time.Month) error
	FindByID(ctx context.Context, id uuid.UUID) (*Bill, error)
	FindByNameAndMonth(ctx context.Context, name string, year int, month time.Month) (*Bill, error)
	List(ctx context.Context, filter *BillFilter) ([]*Bill, error)
	SetPaid(ctx context.Context, id uuid.UUID, update *BillPaidUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
}
