package actions

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-server/internal/apperror"
	"github.com/carson-networks/expense-server/internal/storage"
)

var maxAmount = decimal.New(1, 10) // 10 integer digits

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return apperror.Validation("amount must be positive")
	}
	if amount.Exponent() < -2 {
		return apperror.Validation("amount must have at most 2 decimal places")
	}
	if amount.GreaterThanOrEqual(maxAmount) {
		return apperror.Validation("amount must have at most 10 integer digits")
	}
	return nil
}

func validateExpenseDate(date time.Time) error {
	if date.IsZero() {
		return apperror.Validation("date is required")
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if date.After(today) {
		return apperror.Validation("date must not be in the future")
	}
	return nil
}

// requireOwnCategory checks that the category exists and belongs to the
// user before an expense may reference it.
func requireOwnCategory(ctx context.Context, writer *storage.Writer, userID, categoryID int64) error {
	category, err := writer.Categories.FindByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if category == nil || category.UserID != userID {
		return apperror.NotFound("category not found")
	}
	return nil
}
