package sqlconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// RecurringBill is a monthly bill template expanded into Bill rows on demand.
type RecurringBill struct {
	ID     uuid.UUID       `db:"id"`
	Name   string          `db:"name"`
	Amount decimal.Decimal `db:"amount"`
	DueDay int             `db:"due_day"`
}

type RecurringBillCreate struct {
	Name   string
	Amount decimal.Decimal
	DueDay int
}

//go:generate mockery --name IRecurringBillTable --output . --outpkg sqlconfig --inpackage --with-expecter
type IRecurringBillTable interface {
	Insert(ctx context.Context, create *RecurringBillCreate) (uuid.UUID, error)
	List(ctx context.Context) ([]*RecurringBill, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
