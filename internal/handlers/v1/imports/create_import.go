package imports

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-reconciler/internal/handlers/v1/shared"
	"github.com/carson-networks/budget-reconciler/internal/logging"
	"github.com/carson-networks/budget-reconciler/internal/service"
)

// CreateImportInput is the Huma input for uploading a statement.
type CreateImportInput struct {
	Filename string `query:"filename" required:"true" minLength:"1" doc:"Name the statement is stored and keyed under"`
	RawBody  []byte `contentType:"text/csv"`
}

// CreateImportOutput is the Huma output for uploading a statement.
type CreateImportOutput struct {
	Body ImportResult
}

type statementUploader interface {
	ImportUpload(ctx context.Context, filename string, r io.Reader) (*service.ImportResult, error)
}

// CreateImportHandler handles POST /v1/imports.
type CreateImportHandler struct {
	ImportService statementUploader
}

func NewCreateImportHandler(svc statementUploader) *CreateImportHandler {
	return &CreateImportHandler{ImportService: svc}
}

// Register registers the upload endpoint with the Huma API.
func (h *CreateImportHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:  "create-import",
		Method:       http.MethodPost,
		Path:         "/v1/imports",
		Summary:      "Import statement",
		Description:  "Stores a CSV bank statement and imports its rows. Re-uploading an imported filename is a no-op.",
		Tags:         []string{"Imports"},
		MaxBodyBytes: 32 << 20,
	}, h.handle)
}

func (h *CreateImportHandler) handle(ctx context.Context, input *CreateImportInput) (*CreateImportOutput, error) {
	logData := logging.GetLogData(ctx)
	if logData != nil {
		logData.AddData("filename", input.Filename)
		logData.AddData("bytes", len(input.RawBody))
	}

	result, err := h.ImportService.ImportUpload(ctx, input.Filename, bytes.NewReader(input.RawBody))
	var batchErr *service.BatchError
	if err != nil && !errors.As(err, &batchErr) {
		return nil, shared.ServiceError("failed to import statement", err)
	}

	if logData != nil {
		logData.AddData("importStatus", string(result.Status))
		logData.AddData("imported", result.Imported)
	}
	return &CreateImportOutput{Body: toImportResult(result)}, nil
}
