package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-reconciler/internal/storage"
	"github.com/carson-networks/budget-reconciler/internal/storage/sqlconfig"
)

type CreateBill struct {
	Create sqlconfig.BillCreate

	ID uuid.UUID
}

func (c *CreateBill) Perform(ctx context.Context, writer *storage.Writer) error {
	id, err := writer.Bills.Insert(ctx, &c.Create)
	if err != nil {
		return err
	}
	c.ID = id
	return nil
}

// ToggleBillPaid flips the paid flag. Marking paid stamps PaidOn and links
// TransactionID when given; marking unpaid clears both.
type ToggleBillPaid struct {
	ID            uuid.UUID
	TransactionID *uuid.UUID
	PaidOn        time.Time

	Bill *sqlconfig.Bill
}

func (t *ToggleBillPaid) Perform(ctx context.Context, writer *storage.Writer) error {
	bill, err := writer.Bills.FindByID(ctx, t.ID)
	if err != nil {
		return err
	}

	update := &sqlconfig.BillPaidUpdate{IsPaid: !bill.IsPaid}
	if update.IsPaid {
		paidOn := t.PaidOn
		update.PaidDate = &paidOn
		update.TransactionID = t.TransactionID
	}

	if err := writer.Bills.SetPaid(ctx, t.ID, update); err != nil {
		return err
	}

	bill.IsPaid = update.IsPaid
	bill.PaidDate = update.PaidDate
	bill.TransactionID = update.TransactionID
	t.Bill = bill
	return nil
}

type DeleteBill struct {
	ID uuid.UUID
}

func (d *DeleteBill) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Bills.Delete(ctx, d.ID)
}
