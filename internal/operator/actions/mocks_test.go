package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/expense-server/internal/storage/category"
	"github.com/carson-networks/expense-server/internal/storage/expense"
	"github.com/carson-networks/expense-server/internal/storage/team"
)

type mockExpenseWriter struct {
	mock.Mock
}

func (m *mockExpenseWriter) FindByID(ctx context.Context, id int64) (*expense.Expense, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*expense.Expense)
	return row, args.Error(1)
}

func (m *mockExpenseWriter) ListFiltered(ctx context.Context, filter *expense.Filter) ([]*expense.Expense, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]*expense.Expense)
	return rows, args.Error(1)
}

func (m *mockExpenseWriter) Aggregate(ctx context.Context, filter *expense.Filter) (*expense.Totals, error) {
	args := m.Called(ctx, filter)
	totals, _ := args.Get(0).(*expense.Totals)
	return totals, args.Error(1)
}

func (m *mockExpenseWriter) AggregateByCategory(ctx context.Context, filter *expense.Filter) ([]expense.CategoryTotal, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]expense.CategoryTotal)
	return rows, args.Error(1)
}

func (m *mockExpenseWriter) AggregateByDay(ctx context.Context, filter *expense.Filter) ([]expense.DailyTotal, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]expense.DailyTotal)
	return rows, args.Error(1)
}

func (m *mockExpenseWriter) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockExpenseWriter) FindByIDForUpdate(ctx context.Context, id int64) (*expense.Expense, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*expense.Expense)
	return row, args.Error(1)
}

func (m *mockExpenseWriter) Insert(ctx context.Context, create *expense.ExpenseCreate) (int64, error) {
	args := m.Called(ctx, create)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockExpenseWriter) Update(ctx context.Context, id int64, update *expense.ExpenseUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

func (m *mockExpenseWriter) SetTeam(ctx context.Context, id int64, teamID int64) error {
	args := m.Called(ctx, id, teamID)
	return args.Error(0)
}

func (m *mockExpenseWriter) SetReceiptKey(ctx context.Context, id int64, key *uuid.UUID) error {
	args := m.Called(ctx, id, key)
	return args.Error(0)
}

func (m *mockExpenseWriter) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockTeamWriter struct {
	mock.Mock
}

func (m *mockTeamWriter) FindTeam(ctx context.Context, id int64) (*team.Team, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*team.Team)
	return row, args.Error(1)
}

func (m *mockTeamWriter) TeamExists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockTeamWriter) FindMember(ctx context.Context, teamID, userID int64) (*team.Member, error) {
	args := m.Called(ctx, teamID, userID)
	row, _ := args.Get(0).(*team.Member)
	return row, args.Error(1)
}

func (m *mockTeamWriter) MemberExists(ctx context.Context, teamID, userID int64) (bool, error) {
	args := m.Called(ctx, teamID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *mockTeamWriter) ListMembers(ctx context.Context, teamID int64) ([]*team.Member, error) {
	args := m.Called(ctx, teamID)
	rows, _ := args.Get(0).([]*team.Member)
	return rows, args.Error(1)
}

func (m *mockTeamWriter) ListTeamsByUser(ctx context.Context, userID int64) ([]*team.Team, error) {
	args := m.Called(ctx, userID)
	rows, _ := args.Get(0).([]*team.Team)
	return rows, args.Error(1)
}

func (m *mockTeamWriter) ListTeamIDsByUser(ctx context.Context, userID int64) ([]int64, error) {
	args := m.Called(ctx, userID)
	ids, _ := args.Get(0).([]int64)
	return ids, args.Error(1)
}

func (m *mockTeamWriter) CountMembersByRole(ctx context.Context, teamID int64, role team.Role) (int64, error) {
	args := m.Called(ctx, teamID, role)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTeamWriter) UserExists(ctx context.Context, userID int64) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *mockTeamWriter) LockMembers(ctx context.Context, teamID int64) error {
	args := m.Called(ctx, teamID)
	return args.Error(0)
}

func (m *mockTeamWriter) InsertTeam(ctx context.Context, name string, ownerID int64) (int64, error) {
	args := m.Called(ctx, name, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTeamWriter) InsertMember(ctx context.Context, teamID, userID int64, role team.Role) (int64, error) {
	args := m.Called(ctx, teamID, userID, role)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTeamWriter) UpdateMemberRole(ctx context.Context, teamID, userID int64, role team.Role) error {
	args := m.Called(ctx, teamID, userID, role)
	return args.Error(0)
}

func (m *mockTeamWriter) DeleteMember(ctx context.Context, teamID, userID int64) error {
	args := m.Called(ctx, teamID, userID)
	return args.Error(0)
}

func (m *mockTeamWriter) UpdateTeamName(ctx context.Context, teamID int64, name string) error {
	args := m.Called(ctx, teamID, name)
	return args.Error(0)
}

func (m *mockTeamWriter) DeleteTeam(ctx context.Context, teamID int64) error {
	args := m.Called(ctx, teamID)
	return args.Error(0)
}

type mockCategoryWriter struct {
	mock.Mock
}

func (m *mockCategoryWriter) FindByID(ctx context.Context, id int64) (*category.Category, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*category.Category)
	return row, args.Error(1)
}

func (m *mockCategoryWriter) FindByUserAndName(ctx context.Context, userID int64, name string) (*category.Category, error) {
	args := m.Called(ctx, userID, name)
	row, _ := args.Get(0).(*category.Category)
	return row, args.Error(1)
}

func (m *mockCategoryWriter) ListByUser(ctx context.Context, userID int64) ([]*category.Category, error) {
	args := m.Called(ctx, userID)
	rows, _ := args.Get(0).([]*category.Category)
	return rows, args.Error(1)
}

func (m *mockCategoryWriter) Insert(ctx context.Context, userID int64, name string) (int64, error) {
	args := m.Called(ctx, userID, name)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCategoryWriter) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
