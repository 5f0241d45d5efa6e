package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/expense-server/internal/storage/expense"
	"github.com/carson-networks/expense-server/internal/storage/team"
)

type mockExpenseReader struct {
	mock.Mock
}

func (m *mockExpenseReader) FindByID(ctx context.Context, id int64) (*expense.Expense, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*expense.Expense)
	return row, args.Error(1)
}

func (m *mockExpenseReader) ListFiltered(ctx context.Context, filter *expense.Filter) ([]*expense.Expense, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]*expense.Expense)
	return rows, args.Error(1)
}

func (m *mockExpenseReader) Aggregate(ctx context.Context, filter *expense.Filter) (*expense.Totals, error) {
	args := m.Called(ctx, filter)
	totals, _ := args.Get(0).(*expense.Totals)
	return totals, args.Error(1)
}

func (m *mockExpenseReader) AggregateByCategory(ctx context.Context, filter *expense.Filter) ([]expense.CategoryTotal, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]expense.CategoryTotal)
	return rows, args.Error(1)
}

func (m *mockExpenseReader) AggregateByDay(ctx context.Context, filter *expense.Filter) ([]expense.DailyTotal, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]expense.DailyTotal)
	return rows, args.Error(1)
}

func (m *mockExpenseReader) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

type mockTeamReader struct {
	mock.Mock
}

func (m *mockTeamReader) FindTeam(ctx context.Context, id int64) (*team.Team, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*team.Team)
	return row, args.Error(1)
}

func (m *mockTeamReader) TeamExists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockTeamReader) FindMember(ctx context.Context, teamID, userID int64) (*team.Member, error) {
	args := m.Called(ctx, teamID, userID)
	row, _ := args.Get(0).(*team.Member)
	return row, args.Error(1)
}

func (m *mockTeamReader) MemberExists(ctx context.Context, teamID, userID int64) (bool, error) {
	args := m.Called(ctx, teamID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *mockTeamReader) ListMembers(ctx context.Context, teamID int64) ([]*team.Member, error) {
	args := m.Called(ctx, teamID)
	rows, _ := args.Get(0).([]*team.Member)
	return rows, args.Error(1)
}

func (m *mockTeamReader) ListTeamsByUser(ctx context.Context, userID int64) ([]*team.Team, error) {
	args := m.Called(ctx, userID)
	rows, _ := args.Get(0).([]*team.Team)
	return rows, args.Error(1)
}

func (m *mockTeamReader) ListTeamIDsByUser(ctx context.Context, userID int64) ([]int64, error) {
	args := m.Called(ctx, userID)
	ids, _ := args.Get(0).([]int64)
	return ids, args.Error(1)
}

func (m *mockTeamReader) CountMembersByRole(ctx context.Context, teamID int64, role team.Role) (int64, error) {
	args := m.Called(ctx, teamID, role)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTeamReader) UserExists(ctx context.Context, userID int64) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}
