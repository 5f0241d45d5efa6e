package service

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-server/internal/apperror"
	"github.com/carson-networks/expense-server/internal/storage/expense"
)

// Expense represents an expense in the service layer.
type Expense struct {
	ID          int64
	UserID      int64
	CategoryID  int64
	TeamID      *int64
	Amount      decimal.Decimal
	Description string
	ExpenseDate time.Time
	HasReceipt  bool
	CreatedAt   time.Time
}

func expenseFromStorage(row *expense.Expense) Expense {
	return Expense{
		ID:          row.ID,
		UserID:      row.UserID,
		CategoryID:  row.CategoryID,
		TeamID:      row.TeamID,
		Amount:      row.Amount,
		Description: row.Description,
		ExpenseDate: row.ExpenseDate,
		HasReceipt:  row.ReceiptKey != nil,
		CreatedAt:   row.CreatedAt,
	}
}

// Page is one cursor-paginated slice of expenses. NextCursor is empty iff
// HasNext is false.
type Page struct {
	Items      []Expense
	NextCursor string
	HasNext    bool
	Size       int
}

// DailyStat is one entry of the per-day statistics breakdown.
type DailyStat struct {
	Date        time.Time
	TotalAmount decimal.Decimal
	Count       int64
}

// Stats aggregates all expenses matching a filter. TotalAmount is zero,
// never unset, when nothing matches.
type Stats struct {
	TotalAmount decimal.Decimal
	Count       int64
	ByCategory  map[int64]decimal.Decimal
	ByDate      []DailyStat
}

const (
	defaultLimit = 20
	maxLimit     = 100

	categoryMatchExact = "exact"
	categoryMatchLike  = "like"
)

// FilterRequest is the external filter specification for listing and
// aggregating expenses. All fields are optional; Limit is clamped rather
// than rejected.
type FilterRequest struct {
	CategoryID    *int64
	Category      string
	CategoryMatch string // "exact" (default) or "like", case-insensitive
	FromDate      *time.Time
	ToDate        *time.Time
	MinAmount     *decimal.Decimal
	MaxAmount     *decimal.Decimal
	HasReceipt    *bool
	TeamID        *int64
	Search        string
	Cursor        string
	Limit         int
}

// validate rejects inconsistent field combinations before any predicate is
// built and returns the normalized page size and category match mode.
func (r *FilterRequest) validate() (limit int, categoryLike bool, err error) {
	switch strings.ToLower(r.CategoryMatch) {
	case "", categoryMatchExact:
		categoryLike = false
	case categoryMatchLike:
		categoryLike = true
	default:
		return 0, false, apperror.Validation("categoryMatch must be 'exact' or 'like'")
	}

	if r.FromDate != nil && r.ToDate != nil && r.FromDate.After(*r.ToDate) {
		return 0, false, apperror.Validation("fromDate must not be after toDate")
	}

	if err := validateAmountBound(r.MinAmount, "minAmount"); err != nil {
		return 0, false, err
	}
	if err := validateAmountBound(r.MaxAmount, "maxAmount"); err != nil {
		return 0, false, err
	}
	if r.MinAmount != nil && r.MaxAmount != nil && r.MinAmount.GreaterThan(*r.MaxAmount) {
		return 0, false, apperror.Validation("minAmount must not exceed maxAmount")
	}

	limit = r.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return limit, categoryLike, nil
}

var maxAmountBound = decimal.New(1, 10) // 10 integer digits

func validateAmountBound(amount *decimal.Decimal, field string) error {
	if amount == nil {
		return nil
	}
	if !amount.IsPositive() {
		return apperror.Validation(field + " must be positive")
	}
	if amount.Exponent() < -2 {
		return apperror.Validation(field + " must have at most 2 decimal places")
	}
	if amount.GreaterThanOrEqual(maxAmountBound) {
		return apperror.Validation(field + " must have at most 10 integer digits")
	}
	return nil
}
