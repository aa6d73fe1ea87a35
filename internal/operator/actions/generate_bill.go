package actions

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-reconciler/internal/storage"
	"github.com/carson-networks/budget-reconciler/internal/storage/sqlconfig"
)

// GenerateBill materializes one recurring template for the month of DueDate.
type GenerateBill struct {
	Name    string
	Amount  decimal.Decimal
	DueDate time.Time

	BillID uuid.UUID
}

func (g *GenerateBill) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := writer.Bills.LockNameAndMonth(ctx, g.Name, g.DueDate.Year(), g.DueDate.Month()); err != nil {
		return err
	}

	existing, err := writer.Bills.FindByNameAndMonth(ctx, g.Name, g.DueDate.Year(), g.DueDate.Month())
	if err != nil && !errors.Is(err, sqlconfig.ErrNotFound) {
		return err
	}
	if existing != nil {
		g.BillID = existing.ID
		return ErrBillExists
	}

	id, err := writer.Bills.Insert(ctx, &sqlconfig.BillCreate{
		Name:    g.Name,
		DueDate: g.DueDate,
		Amount:  g.Amount,
	})
	if err != nil {
		return err
	}
	g.BillID = id
	return nil
}
