package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var _ IBillTable = (*BillsTable)(nil)

const billsTable = "bills"

var billColumns = []any{"id", "name", "due_date", "amount", "is_paid", "paid_date", "transaction_id"}

type BillsTable struct {
	exec bob.Executor
}

func NewBillsTable(exec bob.Executor) *BillsTable {
	return &BillsTable{exec: exec}
}

func (t *BillsTable) Insert(ctx context.Context, create *BillCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into(billsTable, "name", "due_date", "amount"),
		im.Values(psql.Arg(create.Name, create.DueDate, create.Amount)),
		im.Returning("id"),
	)
	return bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
}

// LockNameAndMonth takes a transaction-scoped advisory lock on name within
// year/month. It is released on commit or rollback, so it only serialises
// callers when exec is a transaction.
func (t *BillsTable) LockNameAndMonth(ctx context.Context, name string, year int, month time.Month) error {
	q := psql.RawQuery("SELECT pg_advisory_xact_lock(hashtext(?), ?)", name, year*100+int(month))
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

func (t *BillsTable) FindByID(ctx context.Context, id uuid.UUID) (*Bill, error) {
	return t.findOne(ctx, sm.Where(psql.Quote("id").EQ(psql.Arg(id))))
}

// FindByNameAndMonth looks up the bill with the given name due in year/month.
func (t *BillsTable) FindByNameAndMonth(ctx context.Context, name string, year int, month time.Month) (*Bill, error) {
	return t.findOne(ctx,
		sm.Where(psql.Quote("name").EQ(psql.Arg(name))),
		sm.Where(psql.Raw("EXTRACT(YEAR FROM due_date) = ?", year)),
		sm.Where(psql.Raw("EXTRACT(MONTH FROM due_date) = ?", int(month))),
		sm.Limit(1),
	)
}

// List returns bills ordered by due date.
func (t *BillsTable) List(ctx context.Context, filter *BillFilter) ([]*Bill, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(billColumns...),
		sm.From(billsTable),
	}
	if filter != nil {
		if filter.Month != nil {
			queryMods = append(queryMods, sm.Where(psql.Raw("EXTRACT(MONTH FROM due_date) = ?", int(*filter.Month))))
		}
		if filter.Year != nil {
			queryMods = append(queryMods, sm.Where(psql.Raw("EXTRACT(YEAR FROM due_date) = ?", *filter.Year)))
		}
	}
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("due_date")).Asc(),
		sm.OrderBy(psql.Quote("name")).Asc(),
	)
	return bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Bill]())
}

func (t *BillsTable) SetPaid(ctx context.Context, id uuid.UUID, update *BillPaidUpdate) error {
	q := psql.Update(
		um.Table(billsTable),
		um.SetCol("is_paid").ToArg(update.IsPaid),
		um.SetCol("paid_date").ToArg(update.PaidDate),
		um.SetCol("transaction_id").ToArg(update.TransactionID),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return execAffectingOne(ctx, t.exec, q)
}

func (t *BillsTable) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete(
		dm.From(billsTable),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return execAffectingOne(ctx, t.exec, q)
}

func (t *BillsTable) findOne(ctx context.Context, where ...bob.Mod[*dialect.SelectQuery]) (*Bill, error) {
	queryMods := append([]bob.Mod[*dialect.SelectQuery]{
		sm.Columns(billColumns...),
		sm.From(billsTable),
	}, where...)

	row, err := bob.One(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Bill]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return row, err
}
