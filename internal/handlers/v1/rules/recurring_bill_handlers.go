package rules

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-reconciler/internal/handlers/v1/shared"
	"github.com/carson-networks/budget-reconciler/internal/service"
)

type CreateRecurringBillBody struct {
	Name   string `json:"name" minLength:"1" doc:"Bill name"`
	Amount string `json:"amount" doc:"Bill amount"`
	DueDay int    `json:"dueDay" minimum:"1" maximum:"31" doc:"Day of month the bill is due"`
}

type CreateRecurringBillInput struct {
	Body CreateRecurringBillBody
}

type CreateRecurringBillOutput struct {
	Status int
	Body   CreatedResponse
}

type ListRecurringBillsOutput struct {
	Body struct {
		RecurringBills []RecurringBill `json:"recurringBills" doc:"Monthly bill templates"`
	}
}

type recurringBillManager interface {
	CreateRecurringBill(ctx context.Context, template service.RecurringBill) (uuid.UUID, error)
	ListRecurringBills(ctx context.Context) ([]service.RecurringBill, error)
	DeleteRecurringBill(ctx context.Context, id uuid.UUID) error
}

// RecurringBillHandler serves /v1/recurring-bills.
type RecurringBillHandler struct {
	RuleService recurringBillManager
}

func NewRecurringBillHandler(svc recurringBillManager) *RecurringBillHandler {
	return &RecurringBillHandler{RuleService: svc}
}

func (h *RecurringBillHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-recurring-bill",
		Method:      http.MethodPost,
		Path:        "/v1/recurring-bills",
		Summary:     "Create recurring bill",
		Tags:        []string{"Recurring Bills"},
	}, h.create)
	huma.Register(api, huma.Operation{
		OperationID: "list-recurring-bills",
		Method:      http.MethodGet,
		Path:        "/v1/recurring-bills",
		Summary:     "List recurring bills",
		Tags:        []string{"Recurring Bills"},
	}, h.list)
	huma.Register(api, huma.Operation{
		OperationID:   "delete-recurring-bill",
		Method:        http.MethodDelete,
		Path:          "/v1/recurring-bills/{id}",
		Summary:       "Delete recurring bill",
		Description:   "Deletes the template. Bills already generated from it are kept.",
		Tags:          []string{"Recurring Bills"},
		DefaultStatus: http.StatusNoContent,
	}, h.delete)
}

func (h *RecurringBillHandler) create(ctx context.Context, input *CreateRecurringBillInput) (*CreateRecurringBillOutput, error) {
	amount, err := shared.ParseAmount("amount", input.Body.Amount)
	if err != nil {
		return nil, err
	}

	id, err := h.RuleService.CreateRecurringBill(ctx, service.RecurringBill{
		Name:   input.Body.Name,
		Amount: amount,
		DueDay: input.Body.DueDay,
	})
	if err != nil {
		return nil, shared.ServiceError("failed to create recurring bill", err)
	}

	return &CreateRecurringBillOutput{
		Status: http.StatusCreated,
		Body:   CreatedResponse{ID: id.String()},
	}, nil
}

func (h *RecurringBillHandler) list(ctx context.Context, _ *struct{}) (*ListRecurringBillsOutput, error) {
	templates, err := h.RuleService.ListRecurringBills(ctx)
	if err != nil {
		return nil, shared.ServiceError("failed to list recurring bills", err)
	}

	out := &ListRecurringBillsOutput{}
	out.Body.RecurringBills = make([]RecurringBill, len(templates))
	for i, b := range templates {
		out.Body.RecurringBills[i] = toRecurringBill(b)
	}
	return out, nil
}

func (h *RecurringBillHandler) delete(ctx context.Context, input *IDInput) (*struct{}, error) {
	id, err := shared.ParseID("id", input.ID)
	if err != nil {
		return nil, err
	}
	if err := h.RuleService.DeleteRecurringBill(ctx, id); err != nil {
		return nil, shared.ServiceError("failed to delete recurring bill", err)
	}
	return nil, nil
}
