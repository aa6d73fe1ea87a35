package service

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-reconciler/internal/storage"
	"github.com/carson-networks/budget-reconciler/internal/storage/sqlconfig"
)

func newTestRuleService(t *testing.T) (*RuleService, *sqlconfig.MockIRuleTable, *sqlconfig.MockIRecurringBillTable, *fakeProcessor) {
	t.Helper()
	rules := sqlconfig.NewMockIRuleTable(t)
	recurring := sqlconfig.NewMockIRecurringBillTable(t)
	store := &storage.Storage{Rules: rules, RecurringBills: recurring}
	processor := &fakeProcessor{writer: &storage.Writer{Rules: rules, RecurringBills: recurring}}
	return NewRuleService(store, processor), rules, recurring, processor
}

// -- Rule tests --

func TestCreateRule_Success(t *testing.T) {
	svc, rules, _, _ := newTestRuleService(t)
	id := uuid.Must(uuid.NewV4())

	rules.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *sqlconfig.RuleCreate) bool {
		return c.Name == "Salary" && c.Reference == "ACME" && c.Amount.Equal(decimal.NewFromInt(2500)) && *c.DueDay == 28
	})).Return(id, nil)

	got, err := svc.CreateRule(context.Background(), Rule{
		Name:      "Salary ",
		Reference: "ACME",
		Amount:    decimal.NewFromInt(2500),
		DueDay:    intPtr(28),
	})
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestCreateRule_Validation(t *testing.T) {
	svc, _, _, processor := newTestRuleService(t)

	tests := []struct {
		name string
		rule Rule
	}{
		{name: "missing name", rule: Rule{Reference: "X"}},
		{name: "missing reference", rule: Rule{Name: "X"}},
		{name: "negative amount", rule: Rule{Name: "X", Reference: "X", Amount: decimal.NewFromInt(-1)}},
		{name: "bad due day", rule: Rule{Name: "X", Reference: "X", DueDay: intPtr(0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateRule(context.Background(), tt.rule)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
	assert.Empty(t, processor.actions)
}

func TestListRules(t *testing.T) {
	svc, rules, _, _ := newTestRuleService(t)
	rules.EXPECT().List(mock.Anything).Return([]*sqlconfig.Rule{{Name: "Salary", Reference: "ACME"}}, nil)

	got, err := svc.ListRules(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "ACME", got[0].Reference)
}

func TestDeleteRule_NotFound(t *testing.T) {
	svc, rules, _, _ := newTestRuleService(t)
	id := uuid.Must(uuid.NewV4())
	rules.EXPECT().Delete(mock.Anything, id).Return(sqlconfig.ErrNotFound)

	assert.ErrorIs(t, svc.DeleteRule(context.Background(), id), ErrNotFound)
}

// -- Recurring bill tests --

func TestCreateRecurringBill(t *testing.T) {
	svc, _, recurring, _ := newTestRuleService(t)
	id := uuid.Must(uuid.NewV4())

	recurring.EXPECT().Insert(mock.Anything, &sqlconfig.RecurringBillCreate{
		Name:   "Internet",
		Amount: decimal.NewFromInt(35),
		DueDay: 31,
	}).Return(id, nil)

	got, err := svc.CreateRecurringBill(context.Background(), RecurringBill{Name: "Internet", Amount: decimal.NewFromInt(35), DueDay: 31})
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestCreateRecurringBill_BadDueDay(t *testing.T) {
	svc, _, _, _ := newTestRuleService(t)

	_, err := svc.CreateRecurringBill(context.Background(), RecurringBill{Name: "Internet", DueDay: 32})
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestListRecurringBills(t *testing.T) {
	svc, _, recurring, _ := newTestRuleService(t)
	recurring.EXPECT().List(mock.Anything).Return([]*sqlconfig.RecurringBill{{Name: "Internet", DueDay: 3}}, nil)

	got, err := svc.ListRecurringBills(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, got[0].DueDay)
}
