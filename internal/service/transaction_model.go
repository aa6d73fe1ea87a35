package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-reconciler/internal/storage/sqlconfig"
)

// Transaction is a normalized statement row. Positive amounts are income.
type Transaction struct {
	ID          uuid.UUID
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	SourceFile  string
	Category    *string
	ImportID    uuid.UUID
	CreatedAt   time.Time
}

// TransactionFilter selects a calendar window. Nil fields are unbounded.
type TransactionFilter struct {
	Month *time.Month
	Year  *int
}

func transactionFromRow(row *sqlconfig.Transaction) Transaction {
	return Transaction{
		ID:          row.ID,
		Date:        row.Date,
		Description: row.Description,
		Amount:      row.Amount,
		SourceFile:  row.SourceFile,
		Category:    row.Category,
		ImportID:    row.ImportID,
		CreatedAt:   row.CreatedAt,
	}
}

func transactionsFromRows(rows []*sqlconfig.Transaction) []Transaction {
	converted := make([]Transaction, len(rows))
	for i, row := range rows {
		converted[i] = transactionFromRow(row)
	}
	return converted
}
