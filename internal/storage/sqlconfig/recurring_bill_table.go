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

var _ IRecurringBillTable = (*RecurringBillsTable)(nil)

const recurringBillsTable = "recurring_bills"

type RecurringBillsTable struct {
	exec bob.Executor
}

func NewRecurringBillsTable(exec bob.Executor) *RecurringBillsTable {
	return &RecurringBillsTable{exec: exec}
}

func (t *RecurringBillsTable) Insert(ctx context.Context, create *RecurringBillCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into(recurringBillsTable, "name", "amount", "due_day"),
		im.Values(psql.Arg(create.Name, create.Amount, create.DueDay)),
		im.Returning("id"),
	)
	return bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
}

func (t *RecurringBillsTable) List(ctx context.Context) ([]*RecurringBill, error) {
	q := psql.Select(
		sm.Columns("id", "name", "amount", "due_day"),
		sm.From(recurringBillsTable),
		sm.OrderBy(psql.Quote("due_day")).Asc(),
		sm.OrderBy(psql.Quote("name")).Asc(),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[*RecurringBill]())
}

func (t *RecurringBillsTable) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete(
		dm.From(recurringBillsTable),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return execAffectingOne(ctx, t.exec, q)
}
