package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/budget-reconciler/internal/storage/sqlconfig"
)

// Finisher ends a database transaction.
type Finisher interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type Writer struct {
	Tx             Finisher
	Transactions   sqlconfig.ITransactionTable
	Imports        sqlconfig.IImportTable
	Rules          sqlconfig.IRuleTable
	RecurringBills sqlconfig.IRecurringBillTable
	Bills          sqlconfig.IBillTable
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		Tx:             tx,
		Transactions:   sqlconfig.NewTransactionsTable(tx),
		Imports:        sqlconfig.NewImportsTable(tx),
		Rules:          sqlconfig.NewRulesTable(tx),
		RecurringBills: sqlconfig.NewRecurringBillsTable(tx),
		Bills:          sqlconfig.NewBillsTable(tx),
	}
}

func (w *Writer) Commit() error {
	if w.Tx == nil {
		return nil
	}
	return w.Tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	if w.Tx == nil {
		return nil
	}
	return w.Tx.Rollback(context.Background())
}
