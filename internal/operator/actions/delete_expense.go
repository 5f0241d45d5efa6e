package actions

import (
	"context"

	"github.com/carson-networks/expense-server/internal/apperror"
	"github.com/carson-networks/expense-server/internal/service"
	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/team"
)

// DeleteExpense removes an expense. A personal expense is deletable only
// by its owner; a team expense by its creator or by a team OWNER/ADMIN.
type DeleteExpense struct {
	CallerID        int64
	TargetExpenseID int64
}

func (a *DeleteExpense) Name() string { return "DeleteExpense" }

func (a *DeleteExpense) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Expenses.FindByIDForUpdate(ctx, a.TargetExpenseID)
	if err != nil {
		return err
	}
	if row == nil {
		return apperror.NotFound("expense not found")
	}

	if row.TeamID == nil {
		if row.UserID != a.CallerID {
			return apperror.Forbidden("you can only delete your own expenses")
		}
	} else if row.UserID != a.CallerID {
		acl := service.NewTeamACL(writer.Teams)
		if _, err := acl.RequireMembership(ctx, a.CallerID, *row.TeamID,
			team.RoleOwner, team.RoleAdmin); err != nil {
			return err
		}
	}

	return writer.Expenses.Delete(ctx, row.ID)
}
