package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-reconciler/internal/handlers/v1/shared"
	"github.com/carson-networks/budget-reconciler/internal/logging"
	"github.com/carson-networks/budget-reconciler/internal/service"
)

// ListTransactionsInput is the Huma input for listing a month of transactions.
type ListTransactionsInput struct {
	Month int `query:"month" minimum:"0" maximum:"12" doc:"Month 1-12, defaults to the current month"`
	Year  int `query:"year" minimum:"0" doc:"Year, defaults to the current year"`
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Month        int           `json:"month" doc:"Month the transactions fall in"`
	Year         int           `json:"year" doc:"Year the transactions fall in"`
	Transactions []Transaction `json:"transactions" doc:"Transactions, newest first, annotated with the matching rule"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// monthlyStatusGetter is the interface for reconciling one month.
type monthlyStatusGetter interface {
	MonthlyStatus(ctx context.Context, month time.Month, year int) (*service.MonthlyStatus, error)
}

// ListTransactionsHandler handles GET /v1/transactions.
type ListTransactionsHandler struct {
	ReconcileService monthlyStatusGetter
	Now              func() time.Time
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc monthlyStatusGetter) *ListTransactionsHandler {
	return &ListTransactionsHandler{ReconcileService: svc, Now: time.Now}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transactions",
		Summary:     "List transactions",
		Description: "Returns one month of transactions, each annotated with the rule it matched.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)
	month, year, err := shared.MonthYear(input.Month, input.Year, h.Now())
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("monthlyStatusMs")
	}
	status, err := h.ReconcileService.MonthlyStatus(ctx, month, year)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, shared.ServiceError("failed to list transactions", err)
	}

	if logData != nil {
		logData.AddData("transactionCount", len(status.Transactions))
	}

	resp := ListTransactionsResponseBody{
		Month:        int(status.Month),
		Year:         status.Year,
		Transactions: make([]Transaction, len(status.Transactions)),
	}
	for i, tx := range status.Transactions {
		resp.Transactions[i] = Transaction{
			ID:          tx.ID.String(),
			Date:        tx.Date.Format(shared.DateLayout),
			Description: tx.Description,
			Amount:      tx.Amount.StringFixed(2),
			SourceFile:  tx.SourceFile,
			MatchedRule: tx.MatchedRule,
		}
		if tx.Category != nil {
			resp.Transactions[i].Category = *tx.Category
		}
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
