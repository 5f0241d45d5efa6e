package actions

import (
	"context"

	"github.com/carson-networks/expense-server/internal/apperror"
	"github.com/carson-networks/expense-server/internal/service"
	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/expense"
)

// ShareMode selects how a personal expense enters team scope.
type ShareMode string

const (
	// ShareModeMove re-scopes the existing row: same id, gone from the
	// personal list.
	ShareModeMove ShareMode = "MOVE"
	// ShareModeCopyReference inserts an independent duplicate into the
	// team; the original stays personal and the two rows share no link.
	ShareModeCopyReference ShareMode = "COPY_REFERENCE"
)

// ParseShareMode validates an external share mode string.
func ParseShareMode(s string) (ShareMode, bool) {
	switch ShareMode(s) {
	case ShareModeMove, ShareModeCopyReference:
		return ShareMode(s), true
	default:
		return "", false
	}
}

// ShareExpense transfers a personal expense into a team. The caller must
// own the expense and be a member (any role) of the destination team.
// ExpenseID is set on success: the original id for MOVE, the new row's id
// for COPY_REFERENCE.
type ShareExpense struct {
	CallerID        int64
	TargetExpenseID int64
	TeamID          int64
	Mode            ShareMode

	ExpenseID int64
}

func (a *ShareExpense) Name() string { return "ShareExpense" }

func (a *ShareExpense) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Expenses.FindByIDForUpdate(ctx, a.TargetExpenseID)
	if err != nil {
		return err
	}
	if row == nil {
		return apperror.NotFound("expense not found")
	}

	if row.UserID != a.CallerID {
		return apperror.Forbidden("you can only share your own expenses")
	}
	if row.TeamID != nil {
		return apperror.Validation("expense is already shared with a team")
	}

	acl := service.NewTeamACL(writer.Teams)
	if _, err := acl.RequireMembership(ctx, a.CallerID, a.TeamID); err != nil {
		return err
	}

	switch a.Mode {
	case ShareModeMove:
		if err := writer.Expenses.SetTeam(ctx, row.ID, a.TeamID); err != nil {
			return err
		}
		a.ExpenseID = row.ID
		return nil
	case ShareModeCopyReference:
		teamID := a.TeamID
		// Fresh created_at: the copy is a new row with its own cursor
		// position, independently editable from here on.
		copyID, err := writer.Expenses.Insert(ctx, &expense.ExpenseCreate{
			UserID:      row.UserID,
			CategoryID:  row.CategoryID,
			TeamID:      &teamID,
			Amount:      row.Amount,
			Description: row.Description,
			ExpenseDate: row.ExpenseDate,
		})
		if err != nil {
			return err
		}
		a.ExpenseID = copyID
		return nil
	default:
		return apperror.Validation("mode must be MOVE or COPY_REFERENCE")
	}
}
