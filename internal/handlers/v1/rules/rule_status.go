package rules

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-reconciler/internal/handlers/v1/shared"
	"github.com/carson-networks/budget-reconciler/internal/logging"
	"github.com/carson-networks/budget-reconciler/internal/service"
)

// RuleStatus is the API response model for one reconciled rule.
type RuleStatus struct {
	RuleID    string `json:"ruleID" doc:"Rule UUID"`
	Name      string `json:"name" doc:"Rule name"`
	Reference string `json:"reference" doc:"Matched reference text"`
	Expected  string `json:"expected" doc:"Expected amount"`
	Paid      string `json:"paid" doc:"Sum of matching income this month"`
	DueDay    *int   `json:"dueDay,omitempty" doc:"Expected day of month"`
	Status    string `json:"status" enum:"PAID,PARTIAL,UNPAID" doc:"Payment status"`
	Tag       string `json:"tag" enum:"success,warning,danger" doc:"Presentation hint"`
}

type RuleStatusInput struct {
	Month int `query:"month" minimum:"0" maximum:"12" doc:"Month 1-12, defaults to the current month"`
	Year  int `query:"year" minimum:"0" doc:"Year, defaults to the current year"`
}

type RuleStatusResponseBody struct {
	Month int          `json:"month" doc:"Reconciled month"`
	Year  int          `json:"year" doc:"Reconciled year"`
	Rules []RuleStatus `json:"rules" doc:"One status per rule, in rule order"`
}

type RuleStatusOutput struct {
	Body RuleStatusResponseBody
}

type monthlyStatusGetter interface {
	MonthlyStatus(ctx context.Context, month time.Month, year int) (*service.MonthlyStatus, error)
}

// RuleStatusHandler handles GET /v1/rules/status.
type RuleStatusHandler struct {
	ReconcileService monthlyStatusGetter
	Now              func() time.Time
}

func NewRuleStatusHandler(svc monthlyStatusGetter) *RuleStatusHandler {
	return &RuleStatusHandler{ReconcileService: svc, Now: time.Now}
}

func (h *RuleStatusHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-rule-status",
		Method:      http.MethodGet,
		Path:        "/v1/rules/status",
		Summary:     "Rule status",
		Description: "Reconciles the month's income against every rule.",
		Tags:        []string{"Rules"},
	}, h.handle)
}

func (h *RuleStatusHandler) handle(ctx context.Context, input *RuleStatusInput) (*RuleStatusOutput, error) {
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
		return nil, shared.ServiceError("failed to reconcile rules", err)
	}

	resp := RuleStatusResponseBody{
		Month: int(status.Month),
		Year:  status.Year,
		Rules: make([]RuleStatus, len(status.Rules)),
	}
	for i, rs := range status.Rules {
		resp.Rules[i] = RuleStatus{
			RuleID:    rs.RuleID.String(),
			Name:      rs.Name,
			Reference: rs.Reference,
			Expected:  rs.Expected.StringFixed(2),
			Paid:      rs.Paid.StringFixed(2),
			DueDay:    rs.DueDay,
			Status:    string(rs.Status),
			Tag:       rs.Tag,
		}
	}
	return &RuleStatusOutput{Body: resp}, nil
}
