package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/budget-reconciler/internal/config"
	"github.com/carson-networks/budget-reconciler/internal/storage/sqlconfig"
)

type Storage struct {
	DB             *sql.DB
	db             bob.DB
	Transactions   sqlconfig.ITransactionTable
	Imports        sqlconfig.IImportTable
	Rules          sqlconfig.IRuleTable
	RecurringBills sqlconfig.IRecurringBillTable
	Bills          sqlconfig.IBillTable
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresURL())
	if err != nil {
		return nil, fmt.Errorf("storage: open postgres: %w", err)
	}
	return New(db), nil
}

// New wraps an already opened postgres handle.
func New(db *sql.DB) *Storage {
	bobDB := bob.NewDB(db)
	return &Storage{
		DB:             db,
		db:             bobDB,
		Transactions:   sqlconfig.NewTransactionsTable(bobDB),
		Imports:        sqlconfig.NewImportsTable(bobDB),
		Rules:          sqlconfig.NewRulesTable(bobDB),
		RecurringBills: sqlconfig.NewRecurringBillsTable(bobDB),
		Bills:          sqlconfig.NewBillsTable(bobDB),
	}
}

// Write opens a read-write transaction. The caller must Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("storage: begin write: %w", err)
	}
	return NewWriter(tx), nil
}

// Read opens a read-only snapshot so that every query made through the
// returned Reader observes the same committed state. The caller must Close it.
func (s *Storage) Read(ctx context.Context) (*Reader, error) {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{
		Isolation: sql.LevelRepeatableRead,
		ReadOnly:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: begin read: %w", err)
	}
	return NewReader(tx), nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
