package service

import (
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusPartial PaymentStatus = "PARTIAL"
	PaymentStatusUnpaid  PaymentStatus = "UNPAID"
)

// Tag is the presentation hint for the status.
func (p PaymentStatus) Tag() string {
	switch p {
	case PaymentStatusPaid:
		return "success"
	case PaymentStatusPartial:
		return "warning"
	default:
		return "danger"
	}
}

// RuleStatus is the outcome of matching one rule against a month.
type RuleStatus struct {
	RuleID    uuid.UUID
	Name      string
	Reference string
	Expected  decimal.Decimal
	Paid      decimal.Decimal
	DueDay    *int
	Status    PaymentStatus
	Tag       string
}

// AnnotatedTransaction carries the name of the rule that claimed it, if any.
type AnnotatedTransaction struct {
	Transaction
	MatchedRule string
}

// Reconcile matches income transactions to rules by case-insensitive
// substring of the rule reference. Debits never count. When several rules
// match one transaction, the last rule in order wins the annotation, but
// every matching rule still counts the amount.
func Reconcile(rules []Rule, transactions []Transaction) ([]RuleStatus, []AnnotatedTransaction) {
	annotated := make([]AnnotatedTransaction, len(transactions))
	descriptions := make([]string, len(transactions))
	for i, tx := range transactions {
		annotated[i] = AnnotatedTransaction{Transaction: tx}
		descriptions[i] = strings.ToLower(tx.Description)
	}

	statuses := make([]RuleStatus, 0, len(rules))
	for _, rule := range rules {
		paid := decimal.Zero
		reference := strings.ToLower(rule.Reference)

		if reference != "" {
			for i, tx := range transactions {
				if !tx.Amount.IsPositive() || !strings.Contains(descriptions[i], reference) {
					continue
				}
				paid = paid.Add(tx.Amount)
				annotated[i].MatchedRule = rule.Name
			}
		}

		status := paymentStatus(paid, rule.Amount)
		statuses = append(statuses, RuleStatus{
			RuleID:    rule.ID,
			Name:      rule.Name,
			Reference: rule.Reference,
			Expected:  rule.Amount,
			Paid:      paid,
			DueDay:    rule.DueDay,
			Status:    status,
			Tag:       status.Tag(),
		})
	}

	return statuses, annotated
}

func paymentStatus(paid, expected decimal.Decimal) PaymentStatus {
	switch {
	case paid.GreaterThanOrEqual(expected):
		return PaymentStatusPaid
	case paid.IsPositive():
		return PaymentStatusPartial
	default:
		return PaymentStatusUnpaid
	}
}
