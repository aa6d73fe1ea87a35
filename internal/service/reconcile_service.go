package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-reconciler/internal/storage"
	"github.com/carson-networks/budget-reconciler/internal/storage/sqlconfig"
)

type snapshotReader interface {
	Read(ctx context.Context) (*storage.Reader, error)
}

// MonthlyStatus is the reconciliation of one calendar month.
type MonthlyStatus struct {
	Month        time.Month
	Year         int
	Rules        []RuleStatus
	Transactions []AnnotatedTransaction
}

// ReconcileService computes rule status on demand from a consistent snapshot.
type ReconcileService struct {
	storage snapshotReader
	logger  logrus.FieldLogger
}

func NewReconcileService(store snapshotReader, logger logrus.FieldLogger) *ReconcileService {
	return &ReconcileService{storage: store, logger: logger}
}

func (s *ReconcileService) MonthlyStatus(ctx context.Context, month time.Month, year int) (*MonthlyStatus, error) {
	reader, err := s.storage.Read(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := reader.Close(); closeErr != nil {
			s.logger.WithError(closeErr).Warn("ReconcileService.MonthlyStatus.close")
		}
	}()

	ruleRows, err := reader.Rules.List(ctx)
	if err != nil {
		return nil, err
	}
	txRows, err := reader.Transactions.List(ctx, &sqlconfig.TransactionFilter{Month: &month, Year: &year})
	if err != nil {
		return nil, err
	}

	statuses, annotated := Reconcile(rulesFromRows(ruleRows), transactionsFromRows(txRows))
	return &MonthlyStatus{
		Month:        month,
		Year:         year,
		Rules:        statuses,
		Transactions: annotated,
	}, nil
}
