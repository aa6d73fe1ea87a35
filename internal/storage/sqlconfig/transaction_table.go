package sqlconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ ITransactionTable = (*TransactionsTable)(nil)

const transactionsTable = "transactions"

var transactionColumns = []any{
	"id", "date", "description", "amount", "source_file", "category", "import_id", "created_at",
}

type TransactionsTable struct {
	exec bob.Executor
}

func NewTransactionsTable(exec bob.Executor) *TransactionsTable {
	return &TransactionsTable{exec: exec}
}

// Insert creates a new transaction and returns its generated ID.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into(transactionsTable, "date", "description", "amount", "source_file", "category", "import_id"),
		im.Values(psql.Arg(
			create.Date,
			create.Description,
			create.Amount,
			create.SourceFile,
			create.Category,
			create.ImportID,
		)),
		im.Returning("id"),
	)
	return bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
}

// List returns transactions matching the filter, newest date first.
func (t *TransactionsTable) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(transactionColumns...),
		sm.From(transactionsTable),
	}
	if filter != nil {
		if filter.Month != nil {
			queryMods = append(queryMods, sm.Where(psql.Raw("EXTRACT(MONTH FROM date) = ?", int(*filter.Month))))
		}
		if filter.Year != nil {
			queryMods = append(queryMods, sm.Where(psql.Raw("EXTRACT(YEAR FROM date) = ?", *filter.Year)))
		}
		if filter.ImportID != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("import_id").EQ(psql.Arg(*filter.ImportID))))
		}
	}
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("date")).Desc(),
		sm.OrderBy(psql.Quote("created_at")).Desc(),
		sm.OrderBy(psql.Quote("id")).Desc(),
	)

	return bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Transaction]())
}
