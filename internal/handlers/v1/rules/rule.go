package rules

import "github.com/carson-networks/budget-reconciler/internal/service"

// Rule is the API response model for an expected income rule.
type Rule struct {
	ID        string `json:"id" doc:"Rule UUID"`
	Name      string `json:"name" doc:"Display name"`
	Reference string `json:"reference" doc:"Text matched case-insensitively against transaction descriptions"`
	Amount    string `json:"amount" doc:"Expected monthly amount"`
	DueDay    *int   `json:"dueDay,omitempty" doc:"Day of month the income is expected"`
}

// RecurringBill is the API response model for a monthly bill template.
type RecurringBill struct {
	ID     string `json:"id" doc:"Template UUID"`
	Name   string `json:"name" doc:"Bill name"`
	Amount string `json:"amount" doc:"Bill amount"`
	DueDay int    `json:"dueDay" doc:"Day of month the bill is due, clamped to short months"`
}

// CreatedResponse is the response body for create endpoints.
type CreatedResponse struct {
	ID string `json:"id" doc:"Created UUID"`
}

// IDInput is the Huma input for endpoints addressing one record.
type IDInput struct {
	ID string `path:"id" doc:"Record UUID"`
}

func toRule(r service.Rule) Rule {
	return Rule{
		ID:        r.ID.String(),
		Name:      r.Name,
		Reference: r.Reference,
		Amount:    r.Amount.StringFixed(2),
		DueDay:    r.DueDay,
	}
}

func toRecurringBill(b service.RecurringBill) RecurringBill {
	return RecurringBill{
		ID:     b.ID.String(),
		Name:   b.Name,
		Amount: b.Amount.StringFixed(2),
		DueDay: b.DueDay,
	}
}
