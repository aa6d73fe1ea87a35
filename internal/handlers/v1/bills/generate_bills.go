package bills

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-reconciler/internal/handlers/v1/shared"
	"github.com/carson-networks/budget-reconciler/internal/logging"
	"github.com/carson-networks/budget-reconciler/internal/service"
)

type GenerateBillsBody struct {
	Month int `json:"month" minimum:"1" maximum:"12" doc:"Month to generate bills for"`
	Year  int `json:"year" minimum:"1" doc:"Year to generate bills for"`
}

type GenerateBillsInput struct {
	Body GenerateBillsBody
}

type GenerationFailure struct {
	TemplateID string `json:"templateID" doc:"Recurring bill template UUID"`
	Name       string `json:"name" doc:"Template name"`
	Error      string `json:"error" doc:"Why the bill could not be generated"`
}

type GenerateBillsResponseBody struct {
	Month    int                 `json:"month" doc:"Generated month"`
	Year     int                 `json:"year" doc:"Generated year"`
	Created  int                 `json:"created" doc:"Bills created by this run"`
	Existing int                 `json:"existing" doc:"Templates that already had a bill this month"`
	Failures []GenerationFailure `json:"failures" doc:"Templates skipped because of an error"`
}

type GenerateBillsOutput struct {
	Body GenerateBillsResponseBody
}

type billGenerator interface {
	Generate(ctx context.Context, month time.Month, year int) (*service.GenerationResult, error)
}

// GenerateBillsHandler handles POST /v1/bills/generate.
type GenerateBillsHandler struct {
	BillService billGenerator
}

func NewGenerateBillsHandler(svc billGenerator) *GenerateBillsHandler {
	return &GenerateBillsHandler{BillService: svc}
}

func (h *GenerateBillsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "generate-bills",
		Method:      http.MethodPost,
		Path:        "/v1/bills/generate",
		Summary:     "Generate bills",
		Description: "Creates the month's bill for each recurring template. Running it again for the same month creates nothing.",
		Tags:        []string{"Bills"},
	}, h.handle)
}

func (h *GenerateBillsHandler) handle(ctx context.Context, input *GenerateBillsInput) (*GenerateBillsOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("generateBillsMs")
	}
	result, err := h.BillService.Generate(ctx, time.Month(input.Body.Month), input.Body.Year)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, shared.ServiceError("failed to generate bills", err)
	}

	if logData != nil {
		logData.AddData("created", result.Created)
		logData.AddData("failed", len(result.Failures))
	}

	resp := GenerateBillsResponseBody{
		Month:    int(result.Month),
		Year:     result.Year,
		Created:  result.Created,
		Existing: result.Existing,
		Failures: make([]GenerationFailure, len(result.Failures)),
	}
	for i, f := range result.Failures {
		resp.Failures[i] = GenerationFailure{
			TemplateID: f.TemplateID.String(),
			Name:       f.Name,
			Error:      f.Err.Error(),
		}
	}
	return &GenerateBillsOutput{Body: resp}, nil
}
