package bills

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-reconciler/internal/handlers/v1/shared"
	"github.com/carson-networks/budget-reconciler/internal/logging"
	"github.com/carson-networks/budget-reconciler/internal/service"
)

type ListBillsInput struct {
	Month int `query:"month" minimum:"0" maximum:"12" doc:"Only bills due in this month (requires year)"`
	Year  int `query:"year" minimum:"0" doc:"Only bills due in this year"`
}

type ListBillsOutput struct {
	Body struct {
		Bills []Bill `json:"bills" doc:"Bills by due date"`
	}
}

type CreateBillBody struct {
	Name    string `json:"name" minLength:"1" doc:"Bill name"`
	DueDate string `json:"dueDate" format:"date" doc:"Due date (YYYY-MM-DD)"`
	Amount  string `json:"amount" doc:"Bill amount"`
}

type CreateBillInput struct {
	Body CreateBillBody
}

type CreateBillOutput struct {
	Status int
	Body   struct {
		ID string `json:"id" doc:"Created bill UUID"`
	}
}

type TogglePaidBody struct {
	TransactionID string `json:"transactionID,omitempty" doc:"Transaction that paid the bill"`
}

type TogglePaidInput struct {
	ID   string `path:"id" doc:"Bill UUID"`
	Body *TogglePaidBody `required:"false"`
}

type TogglePaidOutput struct {
	Body Bill
}

type DeleteBillInput struct {
	ID string `path:"id" doc:"Bill UUID"`
}

// billManager is the interface for dated bill operations.
type billManager interface {
	CreateBill(ctx context.Context, bill service.Bill) (uuid.UUID, error)
	ListBills(ctx context.Context, filter service.TransactionFilter) ([]service.Bill, error)
	TogglePaid(ctx context.Context, id uuid.UUID, transactionID *uuid.UUID) (*service.Bill, error)
	DeleteBill(ctx context.Context, id uuid.UUID) error
}

// BillHandler serves /v1/bills.
type BillHandler struct {
	BillService billManager
}

func NewBillHandler(svc billManager) *BillHandler {
	return &BillHandler{BillService: svc}
}

// Register registers the bill endpoints with the Huma API.
func (h *BillHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-bills",
		Method:      http.MethodGet,
		Path:        "/v1/bills",
		Summary:     "List bills",
		Tags:        []string{"Bills"},
	}, h.list)
	huma.Register(api, huma.Operation{
		OperationID: "create-bill",
		Method:      http.MethodPost,
		Path:        "/v1/bills",
		Summary:     "Create bill",
		Description: "Creates a one-off bill outside of any recurring template.",
		Tags:        []string{"Bills"},
	}, h.create)
	huma.Register(api, huma.Operation{
		OperationID: "toggle-bill-paid",
		Method:      http.MethodPost,
		Path:        "/v1/bills/{id}/toggle-paid",
		Summary:     "Toggle bill paid",
		Description: "Marks an unpaid bill paid today, or a paid bill unpaid.",
		Tags:        []string{"Bills"},
	}, h.togglePaid)
	huma.Register(api, huma.Operation{
		OperationID:   "delete-bill",
		Method:        http.MethodDelete,
		Path:          "/v1/bills/{id}",
		Summary:       "Delete bill",
		Tags:          []string{"Bills"},
		DefaultStatus: http.StatusNoContent,
	}, h.delete)
}

func parseListBillsInput(input *ListBillsInput) service.TransactionFilter {
	var filter service.TransactionFilter
	if input.Year != 0 {
		year := input.Year
		filter.Year = &year
		if input.Month != 0 {
			month := time.Month(input.Month)
			filter.Month = &month
		}
	}
	return filter
}

func (h *BillHandler) list(ctx context.Context, input *ListBillsInput) (*ListBillsOutput, error) {
	bills, err := h.BillService.ListBills(ctx, parseListBillsInput(input))
	if err != nil {
		return nil, shared.ServiceError("failed to list bills", err)
	}

	out := &ListBillsOutput{}
	out.Body.Bills = make([]Bill, len(bills))
	for i := range bills {
		out.Body.Bills[i] = toBill(&bills[i])
	}
	return out, nil
}

func parseCreateBillInput(input *CreateBillInput) (service.Bill, error) {
	dueDate, err := time.Parse(shared.DateLayout, input.Body.DueDate)
	if err != nil {
		return service.Bill{}, huma.NewError(http.StatusBadRequest, "invalid dueDate", err)
	}
	amount, err := shared.ParseAmount("amount", input.Body.Amount)
	if err != nil {
		return service.Bill{}, err
	}
	return service.Bill{
		Name:    input.Body.Name,
		DueDate: dueDate,
		Amount:  amount,
	}, nil
}

func (h *BillHandler) create(ctx context.Context, input *CreateBillInput) (*CreateBillOutput, error) {
	bill, err := parseCreateBillInput(input)
	if err != nil {
		return nil, err
	}

	id, err := h.BillService.CreateBill(ctx, bill)
	if err != nil {
		return nil, shared.ServiceError("failed to create bill", err)
	}
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("billID", id.String())
	}

	out := &CreateBillOutput{Status: http.StatusCreated}
	out.Body.ID = id.String()
	return out, nil
}

func (h *BillHandler) togglePaid(ctx context.Context, input *TogglePaidInput) (*TogglePaidOutput, error) {
	id, err := shared.ParseID("id", input.ID)
	if err != nil {
		return nil, err
	}

	var transactionID *uuid.UUID
	if input.Body != nil && input.Body.TransactionID != "" {
		txID, err := shared.ParseID("transactionID", input.Body.TransactionID)
		if err != nil {
			return nil, err
		}
		transactionID = &txID
	}

	bill, err := h.BillService.TogglePaid(ctx, id, transactionID)
	if err != nil {
		return nil, shared.ServiceError("failed to toggle bill", err)
	}
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("billID", id.String())
		logData.AddData("isPaid", bill.IsPaid)
	}
	return &TogglePaidOutput{Body: toBill(bill)}, nil
}

func (h *BillHandler) delete(ctx context.Context, input *DeleteBillInput) (*struct{}, error) {
	id, err := shared.ParseID("id", input.ID)
	if err != nil {
		return nil, err
	}
	if err := h.BillService.DeleteBill(ctx, id); err != nil {
		return nil, shared.ServiceError("failed to delete bill", err)
	}
	return nil, nil
}
