package commands

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/carson-networks/budget-reconciler/internal/service"
)

func newGenerateBillsCommand(open Opener, now func() time.Time) *cobra.Command {
	var month, year int

	cmd := &cobra.Command{
		Use:   "generate-bills",
		Short: "Create the month's bills from the recurring templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, y := resolvePeriod(month, year, now)
			return withBackend(cmd, open, func(ctx context.Context, b *Backend) error {
				result, err := b.Bills.Generate(ctx, m, y)
				if err != nil {
					return fmt.Errorf("generating bills: %w", err)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s %d: %d created, %d already present\n", m, y, result.Created, result.Existing)
				for _, f := range result.Failures {
					fmt.Fprintf(out, "skipped %s: %v\n", f.Name, f.Err)
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&month, "month", 0, "month 1-12 (default current)")
	cmd.Flags().IntVar(&year, "year", 0, "year (default current)")
	return cmd
}

func newStatusCommand(open Opener, now func() time.Time) *cobra.Command {
	var month, year int

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Print how much of each rule's expected income has arrived",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, y := resolvePeriod(month, year, now)
			if m < time.January || m > time.December {
				return fmt.Errorf("month %d is outside 1..12", month)
			}
			return withBackend(cmd, open, func(ctx context.Context, b *Backend) error {
				status, err := b.Reconcile.MonthlyStatus(ctx, m, y)
				if err != nil {
					return fmt.Errorf("reconciling %s %d: %w", m, y, err)
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintf(w, "RULE\tEXPECTED\tPAID\tSTATUS\tDUE\n")
				for _, rs := range status.Rules {
					due := ""
					if rs.DueDay != nil {
						due = strconv.Itoa(*rs.DueDay)
					}
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
						rs.Name, rs.Expected.StringFixed(2), rs.Paid.StringFixed(2), rs.Status, due)
				}
				return w.Flush()
			})
		},
	}

	cmd.Flags().IntVar(&month, "month", 0, "month 1-12 (default current)")
	cmd.Flags().IntVar(&year, "year", 0, "year (default current)")
	return cmd
}

func newTransactionsCommand(open Opener) *cobra.Command {
	var month, year int

	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "List stored transactions, newest first",
		Long: `List stored transactions, newest first.

Either --month or --year may be given alone; with neither every
transaction is listed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter service.TransactionFilter
			if month != 0 {
				if month < 1 || month > 12 {
					return fmt.Errorf("month %d is outside 1..12", month)
				}
				m := time.Month(month)
				filter.Month = &m
			}
			if year != 0 {
				filter.Year = &year
			}

			return withBackend(cmd, open, func(ctx context.Context, b *Backend) error {
				txs, err := b.Transactions.Query(ctx, filter)
				if err != nil {
					return fmt.Errorf("querying transactions: %w", err)
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintf(w, "DATE\tAMOUNT\tDESCRIPTION\tSOURCE\n")
				for _, tx := range txs {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
						tx.Date.Format("2006-01-02"), tx.Amount.StringFixed(2), tx.Description, tx.SourceFile)
				}
				return w.Flush()
			})
		},
	}

	cmd.Flags().IntVar(&month, "month", 0, "month 1-12")
	cmd.Flags().IntVar(&year, "year", 0, "year")
	return cmd
}
