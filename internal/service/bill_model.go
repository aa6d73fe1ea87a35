package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-reconciler/internal/storage/sqlconfig"
)

type Bill struct {
	ID            uuid.UUID
	Name          string
	DueDate       time.Time
	Amount        decimal.Decimal
	IsPaid        bool
	PaidDate      *time.Time
	TransactionID *uuid.UUID
}

// GenerationFailure records a template that could not be expanded.
type GenerationFailure struct {
	TemplateID uuid.UUID
	Name       string
	Err        error
}

// GenerationResult summarizes one generation run. Created is the number of
// new bills, Existing the number of templates already present that month.
type GenerationResult struct {
	Month    time.Month
	Year     int
	Created  int
	Existing int
	Failures []GenerationFailure
}

func billFromRow(row *sqlconfig.Bill) Bill {
	return Bill{
		ID:            row.ID,
		Name:          row.Name,
		DueDate:       row.DueDate,
		Amount:        row.Amount,
		IsPaid:        row.IsPaid,
		PaidDate:      row.PaidDate,
		TransactionID: row.TransactionID,
	}
}
