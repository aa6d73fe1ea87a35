package imports

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-reconciler/internal/handlers/v1/shared"
	"github.com/carson-networks/budget-reconciler/internal/service"
)

type ListImportsOutput struct {
	Body struct {
		Imports []Import `json:"imports" doc:"Import ledger, newest upload first"`
	}
}

type importLister interface {
	ListImports(ctx context.Context) ([]service.Import, error)
}

// ListImportsHandler handles GET /v1/imports.
type ListImportsHandler struct {
	ImportService importLister
}

func NewListImportsHandler(svc importLister) *ListImportsHandler {
	return &ListImportsHandler{ImportService: svc}
}

func (h *ListImportsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-imports",
		Method:      http.MethodGet,
		Path:        "/v1/imports",
		Summary:     "List imports",
		Tags:        []string{"Imports"},
	}, h.handle)
}

func (h *ListImportsHandler) handle(ctx context.Context, _ *struct{}) (*ListImportsOutput, error) {
	imports, err := h.ImportService.ListImports(ctx)
	if err != nil {
		return nil, shared.ServiceError("failed to list imports", err)
	}

	out := &ListImportsOutput{}
	out.Body.Imports = make([]Import, len(imports))
	for i, imp := range imports {
		out.Body.Imports[i] = Import{
			ID:         imp.ID.String(),
			Filename:   imp.Filename,
			StartDate:  shared.FormatDate(imp.StartDate),
			EndDate:    shared.FormatDate(imp.EndDate),
			UploadDate: imp.UploadDate.Format(time.RFC3339),
		}
	}
	return out, nil
}
