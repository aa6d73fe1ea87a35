package rules

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-reconciler/internal/handlers/v1/shared"
	"github.com/carson-networks/budget-reconciler/internal/logging"
	"github.com/carson-networks/budget-reconciler/internal/service"
)

// CreateRuleBody is the request body for creating a rule.
type CreateRuleBody struct {
	Name      string `json:"name" minLength:"1" doc:"Display name"`
	Reference string `json:"reference" minLength:"1" doc:"Description text to match"`
	Amount    string `json:"amount" doc:"Expected monthly amount (e.g. '2000.00')"`
	DueDay    *int   `json:"dueDay,omitempty" minimum:"1" maximum:"31" doc:"Day of month the income is expected"`
}

type CreateRuleInput struct {
	Body CreateRuleBody
}

type CreateRuleOutput struct {
	Status int
	Body   CreatedResponse
}

type ListRulesOutput struct {
	Body struct {
		Rules []Rule `json:"rules" doc:"Rules in creation order"`
	}
}

// ruleManager is the interface for rule CRUD.
type ruleManager interface {
	CreateRule(ctx context.Context, rule service.Rule) (uuid.UUID, error)
	ListRules(ctx context.Context) ([]service.Rule, error)
	DeleteRule(ctx context.Context, id uuid.UUID) error
}

// RuleHandler serves /v1/rules.
type RuleHandler struct {
	RuleService ruleManager
}

func NewRuleHandler(svc ruleManager) *RuleHandler {
	return &RuleHandler{RuleService: svc}
}

// Register registers the rule endpoints with the Huma API.
func (h *RuleHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-rule",
		Method:      http.MethodPost,
		Path:        "/v1/rules",
		Summary:     "Create rule",
		Description: "Creates an expected income rule matched against transaction descriptions.",
		Tags:        []string{"Rules"},
	}, h.create)
	huma.Register(api, huma.Operation{
		OperationID: "list-rules",
		Method:      http.MethodGet,
		Path:        "/v1/rules",
		Summary:     "List rules",
		Tags:        []string{"Rules"},
	}, h.list)
	huma.Register(api, huma.Operation{
		OperationID:   "delete-rule",
		Method:        http.MethodDelete,
		Path:          "/v1/rules/{id}",
		Summary:       "Delete rule",
		Tags:          []string{"Rules"},
		DefaultStatus: http.StatusNoContent,
	}, h.delete)
}

func parseCreateRuleInput(input *CreateRuleInput) (service.Rule, error) {
	amount, err := shared.ParseAmount("amount", input.Body.Amount)
	if err != nil {
		return service.Rule{}, err
	}
	return service.Rule{
		Name:      input.Body.Name,
		Reference: input.Body.Reference,
		Amount:    amount,
		DueDay:    input.Body.DueDay,
	}, nil
}

func (h *RuleHandler) create(ctx context.Context, input *CreateRuleInput) (*CreateRuleOutput, error) {
	rule, err := parseCreateRuleInput(input)
	if err != nil {
		return nil, err
	}

	id, err := h.RuleService.CreateRule(ctx, rule)
	if err != nil {
		return nil, shared.ServiceError("failed to create rule", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("ruleID", id.String())
	}

	return &CreateRuleOutput{
		Status: http.StatusCreated,
		Body:   CreatedResponse{ID: id.String()},
	}, nil
}

func (h *RuleHandler) list(ctx context.Context, _ *struct{}) (*ListRulesOutput, error) {
	rules, err := h.RuleService.ListRules(ctx)
	if err != nil {
		return nil, shared.ServiceError("failed to list rules", err)
	}

	out := &ListRulesOutput{}
	out.Body.Rules = make([]Rule, len(rules))
	for i, r := range rules {
		out.Body.Rules[i] = toRule(r)
	}
	return out, nil
}

func (h *RuleHandler) delete(ctx context.Context, input *IDInput) (*struct{}, error) {
	id, err := shared.ParseID("id", input.ID)
	if err != nil {
		return nil, err
	}
	if err := h.RuleService.DeleteRule(ctx, id); err != nil {
		return nil, shared.ServiceError("failed to delete rule", err)
	}
	return nil, nil
}
