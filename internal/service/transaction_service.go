package service

import (
	"context"

	"github.com/carson-networks/budget-reconciler/internal/storage"
	"github.com/carson-networks/budget-reconciler/internal/storage/sqlconfig"
)

// TransactionService is the read side over imported transactions.
type TransactionService struct {
	storage *storage.Storage
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage) *TransactionService {
	return &TransactionService{storage: store}
}

// Query returns the transactions inside filter, newest first.
func (s *TransactionService) Query(ctx context.Context, filter TransactionFilter) ([]Transaction, error) {
	rows, err := s.storage.Transactions.List(ctx, &sqlconfig.TransactionFilter{
		Month: filter.Month,
		Year:  filter.Year,
	})
	if err != nil {
		return nil, err
	}
	return transactionsFromRows(rows), nil
}
