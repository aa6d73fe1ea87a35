package bills

import (
	"github.com/carson-networks/budget-reconciler/internal/handlers/v1/shared"
	"github.com/carson-networks/budget-reconciler/internal/service"
)

// Bill is the API response model for a dated bill.
type Bill struct {
	ID            string `json:"id" doc:"Bill UUID"`
	Name          string `json:"name" doc:"Bill name"`
	DueDate       string `json:"dueDate" doc:"Due date (YYYY-MM-DD)"`
	Amount        string `json:"amount" doc:"Bill amount"`
	IsPaid        bool   `json:"isPaid" doc:"Whether the bill has been paid"`
	PaidDate      string `json:"paidDate,omitempty" doc:"Date the bill was marked paid"`
	TransactionID string `json:"transactionID,omitempty" doc:"Transaction that paid the bill"`
}

func toBill(b *service.Bill) Bill {
	out := Bill{
		ID:       b.ID.String(),
		Name:     b.Name,
		DueDate:  b.DueDate.Format(shared.DateLayout),
		Amount:   b.Amount.StringFixed(2),
		IsPaid:   b.IsPaid,
		PaidDate: shared.FormatDate(b.PaidDate),
	}
	if b.TransactionID != nil {
		out.TransactionID = b.TransactionID.String()
	}
	return out
}
