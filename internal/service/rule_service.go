package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-reconciler/internal/operator/actions"
	"github.com/carson-networks/budget-reconciler/internal/storage"
	"github.com/carson-networks/budget-reconciler/internal/storage/sqlconfig"
)

type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// RuleService manages rules and recurring bill templates.
type RuleService struct {
	storage   *storage.Storage
	processor actionProcessor
}

func NewRuleService(store *storage.Storage, processor actionProcessor) *RuleService {
	return &RuleService{storage: store, processor: processor}
}

func (s *RuleService) CreateRule(ctx context.Context, rule Rule) (uuid.UUID, error) {
	rule.Name = strings.TrimSpace(rule.Name)
	if rule.Name == "" {
		return uuid.Nil, fmt.Errorf("%w: rule name is required", ErrInvalid)
	}
	if rule.Reference == "" {
		return uuid.Nil, fmt.Errorf("%w: rule reference is required", ErrInvalid)
	}
	if rule.Amount.IsNegative() {
		return uuid.Nil, fmt.Errorf("%w: rule amount must not be negative", ErrInvalid)
	}
	if rule.DueDay != nil {
		if err := validateDueDay(*rule.DueDay); err != nil {
			return uuid.Nil, err
		}
	}

	action := &actions.CreateRule{Create: sqlconfig.RuleCreate{
		Name:      rule.Name,
		Reference: rule.Reference,
		Amount:    rule.Amount,
		DueDay:    rule.DueDay,
	}}
	if err := s.processor.Process(ctx, action); err != nil {
		return uuid.Nil, err
	}
	return action.ID, nil
}

func (s *RuleService) ListRules(ctx context.Context) ([]Rule, error) {
	rows, err := s.storage.Rules.List(ctx)
	if err != nil {
		return nil, err
	}
	return rulesFromRows(rows), nil
}

func (s *RuleService) DeleteRule(ctx context.Context, id uuid.UUID) error {
	return s.processor.Process(ctx, &actions.DeleteRule{ID: id})
}

func (s *RuleService) CreateRecurringBill(ctx context.Context, template RecurringBill) (uuid.UUID, error) {
	template.Name = strings.TrimSpace(template.Name)
	if template.Name == "" {
		return uuid.Nil, fmt.Errorf("%w: bill name is required", ErrInvalid)
	}
	if err := validateDueDay(template.DueDay); err != nil {
		return uuid.Nil, err
	}

	action := &actions.CreateRecurringBill{Create: sqlconfig.RecurringBillCreate{
		Name:   template.Name,
		Amount: template.Amount,
		DueDay: template.DueDay,
	}}
	if err := s.processor.Process(ctx, action); err != nil {
		return uuid.Nil, err
	}
	return action.ID, nil
}

func (s *RuleService) ListRecurringBills(ctx context.Context) ([]RecurringBill, error) {
	rows, err := s.storage.RecurringBills.List(ctx)
	if err != nil {
		return nil, err
	}
	return recurringBillsFromRows(rows), nil
}

func (s *RuleService) DeleteRecurringBill(ctx context.Context, id uuid.UUID) error {
	return s.processor.Process(ctx, &actions.DeleteRecurringBill{ID: id})
}

func validateDueDay(day int) error {
	if day < 1 || day > 31 {
		return fmt.Errorf("%w: due day %d is outside 1..31", ErrInvalid, day)
	}
	return nil
}
