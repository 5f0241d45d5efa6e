package actions

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-server/internal/apperror"
	"github.com/carson-networks/expense-server/internal/service"
	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/expense"
	"github.com/carson-networks/expense-server/internal/storage/team"
)

// UpdateExpense mutates an expense's category, amount, description, and
// date. A personal expense is editable only by its owner; a team expense
// by any member holding at least MEMBER.
type UpdateExpense struct {
	CallerID        int64
	TargetExpenseID int64
	CategoryID      int64
	Amount          decimal.Decimal
	Description     string
	ExpenseDate     time.Time
}

func (a *UpdateExpense) Name() string { return "UpdateExpense" }

func (a *UpdateExpense) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := validateAmount(a.Amount); err != nil {
		return err
	}
	if err := validateExpenseDate(a.ExpenseDate); err != nil {
		return err
	}

	row, err := writer.Expenses.FindByIDForUpdate(ctx, a.TargetExpenseID)
	if err != nil {
		return err
	}
	if row == nil {
		return apperror.NotFound("expense not found")
	}

	if err := a.authorize(ctx, writer, row); err != nil {
		return err
	}

	// The category must belong to the expense's owner, who is not
	// necessarily the caller on a team expense.
	if err := requireOwnCategory(ctx, writer, row.UserID, a.CategoryID); err != nil {
		return err
	}

	return writer.Expenses.Update(ctx, row.ID, &expense.ExpenseUpdate{
		CategoryID:  a.CategoryID,
		Amount:      a.Amount,
		Description: a.Description,
		ExpenseDate: a.ExpenseDate,
	})
}

func (a *UpdateExpense) authorize(ctx context.Context, writer *storage.Writer, row *expense.Expense) error {
	if row.TeamID == nil {
		if row.UserID != a.CallerID {
			return apperror.Forbidden("you can only edit your own expenses")
		}
		return nil
	}

	acl := service.NewTeamACL(writer.Teams)
	_, err := acl.RequireMembership(ctx, a.CallerID, *row.TeamID,
		team.RoleOwner, team.RoleAdmin, team.RoleMember)
	return err
}
