package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Rule is an expected recurring income matched by description reference.
type Rule struct {
	ID        uuid.UUID       `db:"id"`
	Name      string          `db:"name"`
	Reference string          `db:"reference"`
	Amount    decimal.Decimal `db:"amount"`
	DueDay    *int            `db:"due_day"`
	CreatedAt time.Time       `db:"created_at"`
}

type RuleCreate struct {
	Name      string
	Reference string
	Amount    decimal.Decimal
	DueDay    *int
}

//go:generate mockery --name IRuleTable --output . --outpkg sqlconfig --inpackage --with-expecter
type IRuleTable interface {
	Insert(ctx context.Context, create *RuleCreate) (uuid.UUID, error)
	List(ctx context.Context) ([]*Rule, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
