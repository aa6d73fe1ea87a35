package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-reconciler/internal/storage"
	"github.com/carson-networks/budget-reconciler/internal/storage/sqlconfig"
)

type fakeFinisher struct {
	rollbacks int
}

func (f *fakeFinisher) Commit(context.Context) error { return nil }

func (f *fakeFinisher) Rollback(context.Context) error {
	f.rollbacks++
	return nil
}

type fakeSnapshots struct {
	reader *storage.Reader
	err    error
}

func (f *fakeSnapshots) Read(context.Context) (*storage.Reader, error) {
	return f.reader, f.err
}

func TestMonthlyStatus_ReconcilesMonthFromOneSnapshot(t *testing.T) {
	rules := sqlconfig.NewMockIRuleTable(t)
	transactions := sqlconfig.NewMockITransactionTable(t)
	finisher := &fakeFinisher{}
	reader := &storage.Reader{Tx: finisher, Rules: rules, Transactions: transactions}

	ruleID := uuid.Must(uuid.NewV4())
	rules.EXPECT().List(mock.Anything).Return([]*sqlconfig.Rule{{
		ID:        ruleID,
		Name:      "Rent",
		Reference: "RENT",
		Amount:    decimal.NewFromInt(1000),
		DueDay:    intPtr(1),
	}}, nil)
	transactions.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *sqlconfig.TransactionFilter) bool {
		return *f.Month == time.April && *f.Year == 2024
	})).Return([]*sqlconfig.Transaction{
		{Description: "Rent flat 1", Amount: decimal.NewFromInt(600), Date: date(2024, 4, 2)},
		{Description: "Rent refund", Amount: decimal.NewFromInt(-50), Date: date(2024, 4, 1)},
	}, nil)

	svc := NewReconcileService(&fakeSnapshots{reader: reader}, quietLogger())
	status, err := svc.MonthlyStatus(context.Background(), time.April, 2024)
	require.NoError(t, err)

	require.Len(t, status.Rules, 1)
	assert.Equal(t, ruleID, status.Rules[0].RuleID)
	assert.Equal(t, PaymentStatusPartial, status.Rules[0].Status)
	assert.Equal(t, 1, *status.Rules[0].DueDay)
	require.Len(t, status.Transactions, 2)
	assert.Equal(t, "Rent", status.Transactions[0].MatchedRule)
	assert.Empty(t, status.Transactions[1].MatchedRule)
	assert.Equal(t, 1, finisher.rollbacks)
}

func TestMonthlyStatus_ReleasesSnapshotOnError(t *testing.T) {
	rules := sqlconfig.NewMockIRuleTable(t)
	finisher := &fakeFinisher{}
	reader := &storage.Reader{Tx: finisher, Rules: rules}

	rules.EXPECT().List(mock.Anything).Return(nil, errors.New("read failed"))

	svc := NewReconcileService(&fakeSnapshots{reader: reader}, quietLogger())
	_, err := svc.MonthlyStatus(context.Background(), time.April, 2024)

	assert.EqualError(t, err, "read failed")
	assert.Equal(t, 1, finisher.rollbacks)
}

func TestMonthlyStatus_SnapshotError(t *testing.T) {
	svc := NewReconcileService(&fakeSnapshots{err: errors.New("too many connections")}, quietLogger())

	_, err := svc.MonthlyStatus(context.Background(), time.April, 2024)
	assert.EqualError(t, err, "too many connections")
}
