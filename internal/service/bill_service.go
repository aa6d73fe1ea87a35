package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-reconciler/internal/operator/actions"
	"github.com/carson-networks/budget-reconciler/internal/storage"
	"github.com/carson-networks/budget-reconciler/internal/storage/sqlconfig"
)

// DueDate builds the due date of a template for year/month. Days past the
// end of the month are clamped to its last day.
func DueDate(year int, month time.Month, dueDay int) (time.Time, error) {
	if month < time.January || month > time.December {
		return time.Time{}, fmt.Errorf("%w: month %d is outside 1..12", ErrInvalid, month)
	}
	if err := validateDueDay(dueDay); err != nil {
		return time.Time{}, err
	}

	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if dueDay > lastDay {
		dueDay = lastDay
	}
	return time.Date(year, month, dueDay, 0, 0, 0, 0, time.UTC), nil
}

// BillService expands templates into bills and manages bill payment state.
type BillService struct {
	storage   *storage.Storage
	processor actionProcessor
	logger    logrus.FieldLogger
	now       func() time.Time
}

func NewBillService(store *storage.Storage, processor actionProcessor, logger logrus.FieldLogger) *BillService {
	return &BillService{
		storage:   store,
		processor: processor,
		logger:    logger,
		now:       time.Now,
	}
}

// Generate creates the month's bill for every recurring template that does
// not have one yet. Each template runs in its own transaction so one failure
// does not stop the rest.
func (s *BillService) Generate(ctx context.Context, month time.Month, year int) (*GenerationResult, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: month %d is outside 1..12", ErrInvalid, month)
	}

	templates, err := s.storage.RecurringBills.List(ctx)
	if err != nil {
		return nil, err
	}

	result := &GenerationResult{Month: month, Year: year}
	for _, template := range templates {
		err := s.generateOne(ctx, template, month, year)
		switch {
		case err == nil:
			result.Created++
		case errors.Is(err, actions.ErrBillExists):
			result.Existing++
		default:
			if ctxErr := ctx.Err(); ctxErr != nil {
				return result, ctxErr
			}
			s.logger.WithError(err).WithFields(logrus.Fields{
				"template": template.Name,
				"month":    int(month),
				"year":     year,
			}).Warn("BillService.Generate.templateFailed")
			result.Failures = append(result.Failures, GenerationFailure{
				TemplateID: template.ID,
				Name:       template.Name,
				Err:        err,
			})
		}
	}

	s.logger.WithFields(logrus.Fields{
		"month":    int(month),
		"year":     year,
		"created":  result.Created,
		"existing": result.Existing,
		"failed":   len(result.Failures),
	}).Info("BillService.Generate.Complete")

	return result, nil
}

func (s *BillService) generateOne(ctx context.Context, template *sqlconfig.RecurringBill, month time.Month, year int) error {
	due, err := DueDate(year, month, template.DueDay)
	if err != nil {
		return err
	}
	return s.processor.Process(ctx, &actions.GenerateBill{
		Name:    template.Name,
		Amount:  template.Amount,
		DueDate: due,
	})
}

func (s *BillService) CreateBill(ctx context.Context, bill Bill) (uuid.UUID, error) {
	bill.Name = strings.TrimSpace(bill.Name)
	if bill.Name == "" {
		return uuid.Nil, fmt.Errorf("%w: bill name is required", ErrInvalid)
	}
	if bill.DueDate.IsZero() {
		return uuid.Nil, fmt.Errorf("%w: bill due date is required", ErrInvalid)
	}

	action := &actions.CreateBill{Create: sqlconfig.BillCreate{
		Name:    bill.Name,
		DueDate: bill.DueDate,
		Amount:  bill.Amount,
	}}
	if err := s.processor.Process(ctx, action); err != nil {
		return uuid.Nil, err
	}
	return action.ID, nil
}

// ListBills returns bills by due date. A zero filter returns every bill.
func (s *BillService) ListBills(ctx context.Context, filter TransactionFilter) ([]Bill, error) {
	rows, err := s.storage.Bills.List(ctx, &sqlconfig.BillFilter{Month: filter.Month, Year: filter.Year})
	if err != nil {
		return nil, err
	}
	bills := make([]Bill, len(rows))
	for i, row := range rows {
		bills[i] = billFromRow(row)
	}
	return bills, nil
}

// TogglePaid flips the paid state of a bill, optionally linking the
// transaction that paid it.
func (s *BillService) TogglePaid(ctx context.Context, id uuid.UUID, transactionID *uuid.UUID) (*Bill, error) {
	action := &actions.ToggleBillPaid{
		ID:            id,
		TransactionID: transactionID,
		PaidOn:        truncateToDay(s.now()),
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	bill := billFromRow(action.Bill)
	return &bill, nil
}

func (s *BillService) DeleteBill(ctx context.Context, id uuid.UUID) error {
	return s.processor.Process(ctx, &actions.DeleteBill{ID: id})
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
