package service

import (
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-reconciler/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Import      *ImportService
	Transaction *TransactionService
	Reconcile   *ReconcileService
	Bill        *BillService
	Rule        *RuleService
}

// NewService wires every service onto the same storage and write queue.
func NewService(store *storage.Storage, processor actionProcessor, uploadDir string, logger logrus.FieldLogger) *Service {
	return &Service{
		Import:      NewImportService(store, processor, uploadDir, logger),
		Transaction: NewTransactionService(store),
		Reconcile:   NewReconcileService(store, logger),
		Bill:        NewBillService(store, processor, logger),
		Rule:        NewRuleService(store, processor),
	}
}
