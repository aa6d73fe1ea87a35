package commands

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/carson-networks/budget-reconciler/internal/service"
)

func newImportCommand(open Opener) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>...",
		Short: "Import one or more CSV statements",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBackend(cmd, open, func(ctx context.Context, b *Backend) error {
				results := make([]*service.ImportResult, 0, len(args))
				for _, path := range args {
					result, _ := b.Imports.Import(ctx, path)
					results = append(results, result)
				}
				return printImportResults(cmd.OutOrStdout(), results)
			})
		},
	}
}

func newImportDirCommand(open Opener) *cobra.Command {
	return &cobra.Command{
		Use:   "import-dir [directory]",
		Short: "Import every CSV statement in a directory (defaults to the upload directory)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBackend(cmd, open, func(ctx context.Context, b *Backend) error {
				dir := b.UploadDir
				if len(args) > 0 {
					dir = args[0]
				}
				results, err := b.Imports.ImportDir(ctx, dir)
				if err != nil {
					return fmt.Errorf("importing %s: %w", dir, err)
				}
				return printImportResults(cmd.OutOrStdout(), results)
			})
		},
	}
}

func printImportResults(out io.Writer, results []*service.ImportResult) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FILE\tSTATUS\tIMPORTED\tSKIPPED ROWS\tSPAN")

	failed := 0
	for _, r := range results {
		span := ""
		if r.StartDate != nil && r.EndDate != nil {
			span = r.StartDate.Format("2006-01-02") + " .. " + r.EndDate.Format("2006-01-02")
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n", r.Filename, r.Status, r.Imported, r.RowsSkipped, span)
		if r.Status == service.ImportStatusFailed {
			failed++
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(out, "error: %v\n", r.Err)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d imports failed", failed, len(results))
	}
	return nil
}
