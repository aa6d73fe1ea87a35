package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/carson-networks/budget-reconciler/internal/service"
)

type importer interface {
	Import(ctx context.Context, path string) (*service.ImportResult, error)
	ImportDir(ctx context.Context, dir string) ([]*service.ImportResult, error)
}

type billGenerator interface {
	Generate(ctx context.Context, month time.Month, year int) (*service.GenerationResult, error)
}

type monthlyStatusGetter interface {
	MonthlyStatus(ctx context.Context, month time.Month, year int) (*service.MonthlyStatus, error)
}

type transactionQuerier interface {
	Query(ctx context.Context, filter service.TransactionFilter) ([]service.Transaction, error)
}

// Backend is what the commands operate on once the process is wired.
type Backend struct {
	Imports      importer
	Bills        billGenerator
	Reconcile    monthlyStatusGetter
	Transactions transactionQuerier
	UploadDir    string
}

// Opener wires a Backend. The returned func releases it.
type Opener func(ctx context.Context) (*Backend, func(), error)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand(open Opener) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "budgetctl",
		Short: "Import bank statements and reconcile them against rules and bills",
		Long: `budgetctl drives the budget reconciler without the HTTP server.

Example:
  budgetctl import statements/march.csv
  budgetctl generate-bills --month 3 --year 2024
  budgetctl status --month 3 --year 2024`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	now := time.Now
	rootCmd.AddCommand(newImportCommand(open))
	rootCmd.AddCommand(newImportDirCommand(open))
	rootCmd.AddCommand(newGenerateBillsCommand(open, now))
	rootCmd.AddCommand(newStatusCommand(open, now))
	rootCmd.AddCommand(newTransactionsCommand(open))

	return rootCmd
}

// withBackend opens the backend for the duration of fn.
func withBackend(cmd *cobra.Command, open Opener, fn func(ctx context.Context, b *Backend) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	backend, release, err := open(ctx)
	if err != nil {
		return err
	}
	defer release()
	return fn(ctx, backend)
}

// resolvePeriod defaults to the current month when either flag is unset.
func resolvePeriod(month, year int, now func() time.Time) (time.Month, int) {
	if month == 0 || year == 0 {
		t := now()
		return t.Month(), t.Year()
	}
	return time.Month(month), year
}
