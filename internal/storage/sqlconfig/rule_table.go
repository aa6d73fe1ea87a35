package sqlconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ IRuleTable = (*RulesTable)(nil)

const rulesTable = "rules"

type RulesTable struct {
	exec bob.Executor
}

func NewRulesTable(exec bob.Executor) *RulesTable {
	return &RulesTable{exec: exec}
}

func (t *RulesTable) Insert(ctx context.Context, create *RuleCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into(rulesTable, "name", "reference", "amount", "due_day"),
		im.Values(psql.Arg(create.Name, create.Reference, create.Amount, create.DueDay)),
		im.Returning("id"),
	)
	return bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
}

// List returns rules in creation order, which is also the order used when
// several rules match the same transaction.
func (t *RulesTable) List(ctx context.Context) ([]*Rule, error) {
	q := psql.Select(
		sm.Columns("id", "name", "reference", "amount", "due_day", "created_at"),
		sm.From(rulesTable),
		sm.OrderBy(psql.Quote("created_at")).Asc(),
		sm.OrderBy(psql.Quote("id")).Asc(),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[*Rule]())
}

func (t *RulesTable) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete(
		dm.From(rulesTable),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return execAffectingOne(ctx, t.exec, q)
}
