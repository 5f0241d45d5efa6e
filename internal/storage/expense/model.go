package expense

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-server/internal/cursor"
)

// Expense represents an expense record. A nil TeamID means the expense is
// personal and visible only to its owning user.
type Expense struct {
	ID          int64           `db:"id"`
	UserID      int64           `db:"user_id"`
	CategoryID  int64           `db:"category_id"`
	TeamID      *int64          `db:"team_id"`
	Amount      decimal.Decimal `db:"amount"`
	Description string          `db:"description"`
	ExpenseDate time.Time       `db:"expense_date"`
	ReceiptKey  *uuid.UUID      `db:"receipt_key"`
	CreatedAt   time.Time       `db:"created_at"`
}

// Filter describes one expense query. Only set fields contribute predicates;
// UserID and/or TeamID scope the query and at least one must be set.
type Filter struct {
	UserID       *int64
	TeamID       *int64
	CategoryID   *int64
	CategoryName string // empty means no category-name predicate
	CategoryLike bool   // substring match instead of exact
	FromDate     *time.Time
	ToDate       *time.Time
	MinAmount    *decimal.Decimal
	MaxAmount    *decimal.Decimal
	HasReceipt   *bool
	Search       string
	Anchor       *cursor.Anchor
	Limit        int // page size; the reader fetches one extra row
}

// ExpenseCreate is the input for inserting a new expense.
type ExpenseCreate struct {
	UserID      int64
	CategoryID  int64
	TeamID      *int64
	Amount      decimal.Decimal
	Description string
	ExpenseDate time.Time
	ReceiptKey  *uuid.UUID
	CreatedAt   time.Time // defaults to now() if zero
}

// ExpenseUpdate carries the mutable fields of an expense.
type ExpenseUpdate struct {
	CategoryID  int64
	Amount      decimal.Decimal
	Description string
	ExpenseDate time.Time
}

// Totals is the sum/count aggregate over a filter.
type Totals struct {
	TotalAmount decimal.Decimal `db:"total_amount"`
	Count       int64           `db:"count"`
}

// CategoryTotal is one row of the per-category breakdown.
type CategoryTotal struct {
	CategoryID  int64           `db:"category_id"`
	TotalAmount decimal.Decimal `db:"total_amount"`
}

// DailyTotal is one row of the per-day breakdown.
type DailyTotal struct {
	Date        time.Time       `db:"expense_date"`
	TotalAmount decimal.Decimal `db:"total_amount"`
	Count       int64           `db:"count"`
}

// IExpenseReader defines read operations over expenses. The aggregate
// methods share the exact predicate construction with ListFiltered so
// statistics and pages can never disagree.
//
//go:generate mockery --name IExpenseReader --output mock_IExpenseReader.go
type IExpenseReader interface {
	FindByID(ctx context.Context, id int64) (*Expense, error)
	ListFiltered(ctx context.Context, filter *Filter) ([]*Expense, error)
	Aggregate(ctx context.Context, filter *Filter) (*Totals, error)
	AggregateByCategory(ctx context.Context, filter *Filter) ([]CategoryTotal, error)
	AggregateByDay(ctx context.Context, filter *Filter) ([]DailyTotal, error)
	CountByCategory(ctx context.Context, categoryID int64) (int64, error)
}

// IExpenseWriter defines transactional write operations over expenses.
//
//go:generate mockery --name IExpenseWriter --output mock_IExpenseWriter.go
type IExpenseWriter interface {
	IExpenseReader
	FindByIDForUpdate(ctx context.Context, id int64) (*Expense, error)
	Insert(ctx context.Context, create *ExpenseCreate) (int64, error)
	Update(ctx context.Context, id int64, update *ExpenseUpdate) error
	SetTeam(ctx context.Context, id int64, teamID int64) error
	SetReceiptKey(ctx context.Context, id int64, key *uuid.UUID) error
	Delete(ctx context.Context, id int64) error
}
