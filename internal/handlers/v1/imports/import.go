package imports

import (
	"github.com/carson-networks/budget-reconciler/internal/handlers/v1/shared"
	"github.com/carson-networks/budget-reconciler/internal/service"
)

// ImportResult is the API response model for one import attempt.
type ImportResult struct {
	Status      string `json:"status" enum:"imported,skipped,empty,failed" doc:"Outcome of the import"`
	Filename    string `json:"filename" doc:"Ledger key of the file"`
	ImportID    string `json:"importID,omitempty" doc:"Import UUID when rows were stored"`
	Imported    int    `json:"imported" doc:"Transactions stored"`
	RowsSkipped int    `json:"rowsSkipped" doc:"Rows dropped because amount or date could not be parsed"`
	StartDate   string `json:"startDate,omitempty" doc:"Earliest transaction date"`
	EndDate     string `json:"endDate,omitempty" doc:"Latest transaction date"`
	Error       string `json:"error,omitempty" doc:"Failure reason for failed imports"`
}

// Import is the API response model for a ledger entry.
type Import struct {
	ID         string `json:"id" doc:"Import UUID"`
	Filename   string `json:"filename" doc:"Source file name"`
	StartDate  string `json:"startDate,omitempty" doc:"Earliest transaction date"`
	EndDate    string `json:"endDate,omitempty" doc:"Latest transaction date"`
	UploadDate string `json:"uploadDate" doc:"RFC3339 upload time"`
}

func toImportResult(r *service.ImportResult) ImportResult {
	out := ImportResult{
		Status:      string(r.Status),
		Filename:    r.Filename,
		Imported:    r.Imported,
		RowsSkipped: r.RowsSkipped,
		StartDate:   shared.FormatDate(r.StartDate),
		EndDate:     shared.FormatDate(r.EndDate),
	}
	if r.Status == service.ImportStatusImported {
		out.ImportID = r.ImportID.String()
	}
	if r.Err != nil {
		out.Error = r.Err.Error()
	}
	return out
}
