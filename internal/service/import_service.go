package service

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-reconciler/internal/operator/actions"
	"github.com/carson-networks/budget-reconciler/internal/storage"
	"github.com/carson-networks/budget-reconciler/internal/storage/sqlconfig"
	"github.com/carson-networks/budget-reconciler/internal/upload"
)

// ImportService is the import ledger: it guards against re-importing a file
// and turns each file into one atomic batch of transactions.
type ImportService struct {
	storage   *storage.Storage
	processor actionProcessor
	uploadDir string
	logger    logrus.FieldLogger
	now       func() time.Time
}

func NewImportService(store *storage.Storage, processor actionProcessor, uploadDir string, logger logrus.FieldLogger) *ImportService {
	return &ImportService{
		storage:   store,
		processor: processor,
		uploadDir: uploadDir,
		logger:    logger,
		now:       time.Now,
	}
}

// Import ingests the file at path, keyed by its base name. The returned error
// is non-nil only for ImportStatusFailed and is then a *BatchError.
func (s *ImportService) Import(ctx context.Context, path string) (*ImportResult, error) {
	return s.importFile(ctx, filepath.Base(path), path)
}

// importFile ingests the file at path keyed by filename, which may differ
// from the file's own name while an upload is staged.
func (s *ImportService) importFile(ctx context.Context, filename, path string) (*ImportResult, error) {
	action := &actions.ImportStatement{
		Filename:   filename,
		Open:       func() (io.ReadCloser, error) { return os.Open(path) },
		UploadDate: s.now().UTC(),
		Logger:     s.logger,
	}

	err := s.processor.Process(ctx, action)
	result := &ImportResult{Filename: filename}
	switch {
	case err == nil:
		result.Status = ImportStatusImported
		result.ImportID = action.ImportID
		result.Imported = action.Imported
		result.RowsSkipped = action.RowsSkipped
		result.StartDate = action.StartDate
		result.EndDate = action.EndDate
	case errors.Is(err, actions.ErrDuplicateImport):
		result.Status = ImportStatusSkipped
	case errors.Is(err, actions.ErrEmptyInput):
		result.Status = ImportStatusEmpty
	default:
		result.Status = ImportStatusFailed
		result.Err = &BatchError{Filename: filename, Err: err}
	}

	log := s.logger.WithFields(logrus.Fields{
		"filename":    filename,
		"status":      result.Status,
		"imported":    result.Imported,
		"rowsSkipped": result.RowsSkipped,
	})
	if result.Err != nil {
		log.WithError(err).Error("ImportService.Import.Failed")
		return result, result.Err
	}
	log.Info("ImportService.Import.Complete")
	return result, nil
}

// ImportDir imports every statement file in dir in name order. Failed files
// are reported in their result and do not stop the others.
func (s *ImportService) ImportDir(ctx context.Context, dir string) ([]*ImportResult, error) {
	paths, err := upload.Scan(dir)
	if err != nil {
		return nil, err
	}

	results := make([]*ImportResult, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		result, _ := s.Import(ctx, path)
		results = append(results, result)
	}
	return results, nil
}

// ImportUpload imports an uploaded stream and stores it in the upload
// directory. The stream is staged under a private name and only the upload
// that wins the ledger claim is renamed into place, so a filename already in
// the ledger never has its stored copy replaced.
func (s *ImportService) ImportUpload(ctx context.Context, filename string, r io.Reader) (*ImportResult, error) {
	name, err := upload.SafeName(filename)
	if err != nil {
		return nil, errors.Join(ErrInvalid, err)
	}
	log := s.logger.WithField("filename", name)

	_, err = s.storage.Imports.FindByFilename(ctx, name)
	if err == nil {
		log.Info("ImportService.ImportUpload.AlreadyImported")
		return &ImportResult{Status: ImportStatusSkipped, Filename: name}, nil
	}
	if !errors.Is(err, sqlconfig.ErrNotFound) {
		return nil, err
	}

	staged, err := upload.Stage(s.uploadDir, name, r)
	if err != nil {
		return nil, err
	}

	result, err := s.importFile(ctx, name, staged)
	if result.Status != ImportStatusImported {
		if rmErr := os.Remove(staged); rmErr != nil {
			log.WithError(rmErr).Warn("ImportService.ImportUpload.DiscardStagedFailed")
		}
		return result, err
	}

	if _, err := upload.Promote(staged, s.uploadDir, name); err != nil {
		log.WithError(err).Error("ImportService.ImportUpload.StoreFailed")
		return nil, err
	}
	return result, nil
}

// ListImports returns the ledger, newest upload first.
func (s *ImportService) ListImports(ctx context.Context) ([]Import, error) {
	rows, err := s.storage.Imports.List(ctx)
	if err != nil {
		return nil, err
	}
	imports := make([]Import, len(rows))
	for i, row := range rows {
		imports[i] = importFromRow(row)
	}
	return imports, nil
}

// CalendarEvents returns the covered date span of every import that stored
// at least one transaction.
func (s *ImportService) CalendarEvents(ctx context.Context) ([]CalendarEvent, error) {
	rows, err := s.storage.Imports.List(ctx)
	if err != nil {
		return nil, err
	}
	events := make([]CalendarEvent, 0, len(rows))
	for _, row := range rows {
		if row.StartDate == nil || row.EndDate == nil {
			continue
		}
		events = append(events, CalendarEvent{
			Title: "Data: " + row.Filename,
			Start: *row.StartDate,
			End:   *row.EndDate,
			Color: calendarEventColor,
		})
	}
	return events, nil
}
