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

func newTestTransactionService(t *testing.T) (*TransactionService, *sqlconfig.MockITransactionTable) {
	t.Helper()
	mockTable := sqlconfig.NewMockITransactionTable(t)
	store := &storage.Storage{Transactions: mockTable}
	return NewTransactionService(store), mockTable
}

// -- Query tests --

func TestQuery_PassesMonthAndYear(t *testing.T) {
	svc, mockTable := newTestTransactionService(t)
	id := uuid.Must(uuid.NewV4())
	importID := uuid.Must(uuid.NewV4())

	mockTable.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *sqlconfig.TransactionFilter) bool {
		return f.Month != nil && *f.Month == time.March && f.Year != nil && *f.Year == 2024
	})).Return([]*sqlconfig.Transaction{{
		ID:          id,
		Date:        date(2024, 3, 5),
		Description: "SALARY",
		Amount:      decimal.RequireFromString("2000.00"),
		SourceFile:  "march.csv",
		ImportID:    importID,
	}}, nil)

	txs, err := svc.Query(context.Background(), TransactionFilter{Month: monthPtr(time.March), Year: intPtr(2024)})
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, id, txs[0].ID)
	assert.Equal(t, "march.csv", txs[0].SourceFile)
	assert.Equal(t, importID, txs[0].ImportID)
}

func TestQuery_NoFilter(t *testing.T) {
	svc, mockTable := newTestTransactionService(t)

	mockTable.EXPECT().List(mock.Anything, &sqlconfig.TransactionFilter{}).Return(nil, nil)

	txs, err := svc.Query(context.Background(), TransactionFilter{})
	assert.NoError(t, err)
	assert.Empty(t, txs)
}

func TestQuery_StorageError(t *testing.T) {
	svc, mockTable := newTestTransactionService(t)

	mockTable.EXPECT().List(mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	txs, err := svc.Query(context.Background(), TransactionFilter{})
	assert.EqualError(t, err, "connection refused")
	assert.Nil(t, txs)
}
