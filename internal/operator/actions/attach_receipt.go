package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expense-server/internal/apperror"
	"github.com/carson-networks/expense-server/internal/storage"
)

// AttachReceipt records a receipt object key on an expense, or clears it
// when Detach is set. Only the expense's owner may change its receipt.
type AttachReceipt struct {
	CallerID        int64
	TargetExpenseID int64
	Detach          bool

	ReceiptKey uuid.UUID
}

func (a *AttachReceipt) Name() string { return "AttachReceipt" }

func (a *AttachReceipt) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Expenses.FindByIDForUpdate(ctx, a.TargetExpenseID)
	if err != nil {
		return err
	}
	if row == nil {
		return apperror.NotFound("expense not found")
	}
	if row.UserID != a.CallerID {
		return apperror.Forbidden("you can only change receipts on your own expenses")
	}

	if a.Detach {
		if row.ReceiptKey == nil {
			return apperror.NotFound("expense has no receipt")
		}
		return writer.Expenses.SetReceiptKey(ctx, row.ID, nil)
	}

	key, err := uuid.NewV4()
	if err != nil {
		return err
	}
	if err := writer.Expenses.SetReceiptKey(ctx, row.ID, &key); err != nil {
		return err
	}

	a.ReceiptKey = key
	return nil
}
