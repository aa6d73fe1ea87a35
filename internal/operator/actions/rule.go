package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-reconciler/internal/storage"
	"github.com/carson-networks/budget-reconciler/internal/storage/sqlconfig"
)

type CreateRule struct {
	Create sqlconfig.RuleCreate

	ID uuid.UUID
}

func (c *CreateRule) Perform(ctx context.Context, writer *storage.Writer) error {
	id, err := writer.Rules.Insert(ctx, &c.Create)
	if err != nil {
		return err
	}
	c.ID = id
	return nil
}

type DeleteRule struct {
	ID uuid.UUID
}

func (d *DeleteRule) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Rules.Delete(ctx, d.ID)
}

type CreateRecurringBill struct {
	Create sqlconfig.RecurringBillCreate

	ID uuid.UUID
}

func (c *CreateRecurringBill) Perform(ctx context.Context, writer *storage.Writer) error {
	id, err := writer.RecurringBills.Insert(ctx, &c.Create)
	if err != nil {
		return err
	}
	c.ID = id
	return nil
}

type DeleteRecurringBill struct {
	ID uuid.UUID
}

func (d *DeleteRecurringBill) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.RecurringBills.Delete(ctx, d.ID)
}
