package actions

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-server/internal/service"
	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/expense"
	"github.com/carson-networks/expense-server/internal/storage/team"
)

// CreateExpense records a new expense, personal or team-scoped. Creating
// in a team requires at least MEMBER; viewers cannot write. ExpenseID is
// set on success.
type CreateExpense struct {
	CallerID    int64
	CategoryID  int64
	TeamID      *int64
	Amount      decimal.Decimal
	Description string
	ExpenseDate time.Time

	ExpenseID int64
}

func (a *CreateExpense) Name() string { return "CreateExpense" }

func (a *CreateExpense) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := validateAmount(a.Amount); err != nil {
		return err
	}
	if err := validateExpenseDate(a.ExpenseDate); err != nil {
		return err
	}
	if err := requireOwnCategory(ctx, writer, a.CallerID, a.CategoryID); err != nil {
		return err
	}

	if a.TeamID != nil {
		acl := service.NewTeamACL(writer.Teams)
		if _, err := acl.RequireMembership(ctx, a.CallerID, *a.TeamID,
			team.RoleOwner, team.RoleAdmin, team.RoleMember); err != nil {
			return err
		}
	}

	id, err := writer.Expenses.Insert(ctx, &expense.ExpenseCreate{
		UserID:      a.CallerID,
		CategoryID:  a.CategoryID,
		TeamID:      a.TeamID,
		Amount:      a.Amount,
		Description: a.Description,
		ExpenseDate: a.ExpenseDate,
	})
	if err != nil {
		return err
	}

	a.ExpenseID = id
	return nil
}
