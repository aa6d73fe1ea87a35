package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/budget-reconciler/internal/storage/sqlconfig"
)

type Reader struct {
	Tx             Finisher
	Transactions   sqlconfig.ITransactionTable
	Imports        sqlconfig.IImportTable
	Rules          sqlconfig.IRuleTable
	RecurringBills sqlconfig.IRecurringBillTable
	Bills          sqlconfig.IBillTable
}

func NewReader(tx bob.Tx) *Reader {
	return &Reader{
		Tx:             tx,
		Transactions:   sqlconfig.NewTransactionsTable(tx),
		Imports:        sqlconfig.NewImportsTable(tx),
		Rules:          sqlconfig.NewRulesTable(tx),
		RecurringBills: sqlconfig.NewRecurringBillsTable(tx),
		Bills:          sqlconfig.NewBillsTable(tx),
	}
}

// Close releases the snapshot. Nothing was written so the transaction is
// always rolled back.
func (r *Reader) Close() error {
	if r.Tx == nil {
		return nil
	}
	return r.Tx.Rollback(context.Background())
}
