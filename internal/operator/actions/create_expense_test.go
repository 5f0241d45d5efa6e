package actions

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/expense-server/internal/apperror"
	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/category"
	"github.com/carson-networks/expense-server/internal/storage/expense"
	"github.com/carson-networks/expense-server/internal/storage/team"
)

func ownCategory(categories *mockCategoryWriter, userID, categoryID int64) {
	categories.On("FindByID", mock.Anything, categoryID).
		Return(&category.Category{ID: categoryID, UserID: userID, Name: "food"}, nil)
}

func TestCreateExpense_Personal(t *testing.T) {
	categories := new(mockCategoryWriter)
	ownCategory(categories, callerID, 3)

	expenses := new(mockExpenseWriter)
	expenses.On("Insert", mock.Anything, mock.MatchedBy(func(c *expense.ExpenseCreate) bool {
		return c.UserID == callerID && c.CategoryID == 3 && c.TeamID == nil
	})).Return(int64(100), nil)

	action := &CreateExpense{
		CallerID:    callerID,
		CategoryID:  3,
		Amount:      decimal.RequireFromString("12.50"),
		Description: "lunch",
		ExpenseDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	err := action.Perform(context.Background(), &storage.Writer{Expenses: expenses, Categories: categories})

	assert.NoError(t, err)
	assert.Equal(t, int64(100), action.ExpenseID)
}

func TestCreateExpense_InTeamRequiresMemberRole(t *testing.T) {
	categories := new(mockCategoryWriter)
	ownCategory(categories, callerID, 3)

	teams := new(mockTeamWriter)
	expectMembership(teams, callerID, team.RoleViewer)

	teamID := testTeamID
	action := &CreateExpense{
		CallerID:    callerID,
		CategoryID:  3,
		TeamID:      &teamID,
		Amount:      decimal.RequireFromString("12.50"),
		ExpenseDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	err := action.Perform(context.Background(), &storage.Writer{
		Expenses:   new(mockExpenseWriter),
		Categories: categories,
		Teams:      teams,
	})

	assert.True(t, apperror.IsKind(err, apperror.KindForbidden))
}

func TestCreateExpense_RejectsBadAmounts(t *testing.T) {
	cases := []struct {
		name   string
		amount string
	}{
		{"zero", "0"},
		{"negative", "-3.00"},
		{"three decimal places", "3.999"},
		{"eleven integer digits", "10000000000.00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			action := &CreateExpense{
				CallerID:    callerID,
				CategoryID:  3,
				Amount:      decimal.RequireFromString(tc.amount),
				ExpenseDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			}
			err := action.Perform(context.Background(), &storage.Writer{})
			assert.True(t, apperror.IsKind(err, apperror.KindValidation))
		})
	}
}

func TestCreateExpense_RejectsFutureDate(t *testing.T) {
	action := &CreateExpense{
		CallerID:    callerID,
		CategoryID:  3,
		Amount:      decimal.RequireFromString("5.00"),
		ExpenseDate: time.Now().UTC().Add(48 * time.Hour),
	}
	err := action.Perform(context.Background(), &storage.Writer{})

	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestCreateExpense_ForeignCategory(t *testing.T) {
	categories := new(mockCategoryWriter)
	categories.On("FindByID", mock.Anything, int64(3)).
		Return(&category.Category{ID: 3, UserID: targetID, Name: "food"}, nil)

	action := &CreateExpense{
		CallerID:    callerID,
		CategoryID:  3,
		Amount:      decimal.RequireFromString("5.00"),
		ExpenseDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	err := action.Perform(context.Background(), &storage.Writer{Categories: categories})

	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}
