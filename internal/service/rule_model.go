package service

import (
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-reconciler/internal/storage/sqlconfig"
)

// Rule is an expected income, matched against transaction descriptions.
type Rule struct {
	ID        uuid.UUID
	Name      string
	Reference string
	Amount    decimal.Decimal
	DueDay    *int
}

// RecurringBill is a monthly bill template.
type RecurringBill struct {
	ID     uuid.UUID
	Name   string
	Amount decimal.Decimal
	DueDay int
}

func rulesFromRows(rows []*sqlconfig.Rule) []Rule {
	rules := make([]Rule, len(rows))
	for i, row := range rows {
		rules[i] = Rule{
			ID:        row.ID,
			Name:      row.Name,
			Reference: row.Reference,
			Amount:    row.Amount,
			DueDay:    row.DueDay,
		}
	}
	return rules
}

func recurringBillsFromRows(rows []*sqlconfig.RecurringBill) []RecurringBill {
	templates := make([]RecurringBill, len(rows))
	for i, row := range rows {
		templates[i] = RecurringBill{
			ID:     row.ID,
			Name:   row.Name,
			Amount: row.Amount,
			DueDay: row.DueDay,
		}
	}
	return templates
}
