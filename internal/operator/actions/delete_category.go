package actions

import (
	"context"

	"github.com/carson-networks/expense-server/internal/apperror"
	"github.com/carson-networks/expense-server/internal/storage"
)

// DeleteCategory removes one of the caller's categories. Categories that
// still have expenses attached cannot be deleted.
type DeleteCategory struct {
	CallerID         int64
	TargetCategoryID int64
}

func (a *DeleteCategory) Name() string { return "DeleteCategory" }

func (a *DeleteCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Categories.FindByID(ctx, a.TargetCategoryID)
	if err != nil {
		return err
	}
	if row == nil || row.UserID != a.CallerID {
		return apperror.NotFound("category not found")
	}

	count, err := writer.Expenses.CountByCategory(ctx, row.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperror.Conflict("category has expenses and cannot be deleted")
	}

	return writer.Categories.Delete(ctx, row.ID)
}
