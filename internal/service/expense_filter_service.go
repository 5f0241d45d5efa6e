package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-server/internal/cursor"
	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/expense"
)

// ExpenseFilterService answers filtered, cursor-paginated expense queries
// and the matching statistics. Both paths share one predicate construction
// so a page and its stats can never disagree.
type ExpenseFilterService struct {
	reader *storage.Reader
	acl    *TeamACL
}

func NewExpenseFilterService(reader *storage.Reader, acl *TeamACL) *ExpenseFilterService {
	return &ExpenseFilterService{reader: reader, acl: acl}
}

// List returns one page of the caller's expenses matching the filter,
// ordered by (created_at DESC, id DESC). A team filter requires the caller
// to be a member of that team.
func (s *ExpenseFilterService) List(ctx context.Context, userID int64, req FilterRequest) (*Page, error) {
	filter, limit, err := s.buildFilter(ctx, userID, req, true)
	if err != nil {
		return nil, err
	}
	return s.paginate(ctx, filter, limit)
}

// Statistics aggregates every expense matching the filter, ignoring cursor
// and limit.
func (s *ExpenseFilterService) Statistics(ctx context.Context, userID int64, req FilterRequest) (*Stats, error) {
	req.Cursor = ""
	filter, _, err := s.buildFilter(ctx, userID, req, true)
	if err != nil {
		return nil, err
	}
	return s.aggregate(ctx, filter)
}

// ListTeamExpenses pages through all members' expenses of one team. The
// caller may hold any role; visibility only requires membership.
func (s *ExpenseFilterService) ListTeamExpenses(ctx context.Context, userID, teamID int64, cursorStr string, limit int) (*Page, error) {
	if _, err := s.acl.RequireMembership(ctx, userID, teamID); err != nil {
		return nil, err
	}

	req := FilterRequest{Cursor: cursorStr, Limit: limit}
	pageSize, _, err := req.validate()
	if err != nil {
		return nil, err
	}
	anchor, err := cursor.Decode(cursorStr)
	if err != nil {
		return nil, err
	}

	filter := &expense.Filter{
		TeamID: &teamID,
		Anchor: anchor,
		Limit:  pageSize,
	}
	return s.paginate(ctx, filter, pageSize)
}

// buildFilter validates the request, decodes the cursor, checks team
// membership when a team scope is requested, and translates everything
// into the storage filter. The caller scope (user_id) is always applied.
func (s *ExpenseFilterService) buildFilter(ctx context.Context, userID int64, req FilterRequest, ownScope bool) (*expense.Filter, int, error) {
	limit, categoryLike, err := req.validate()
	if err != nil {
		return nil, 0, err
	}

	anchor, err := cursor.Decode(req.Cursor)
	if err != nil {
		return nil, 0, err
	}

	if req.TeamID != nil {
		if _, err := s.acl.RequireMembership(ctx, userID, *req.TeamID); err != nil {
			return nil, 0, err
		}
	}

	filter := &expense.Filter{
		TeamID:       req.TeamID,
		CategoryID:   req.CategoryID,
		CategoryName: req.Category,
		CategoryLike: categoryLike,
		FromDate:     req.FromDate,
		ToDate:       req.ToDate,
		MinAmount:    req.MinAmount,
		MaxAmount:    req.MaxAmount,
		HasReceipt:   req.HasReceipt,
		Search:       req.Search,
		Anchor:       anchor,
		Limit:        limit,
	}
	if ownScope {
		filter.UserID = &userID
	}
	return filter, limit, nil
}

// paginate runs the fetch-one-extra technique: the reader returns up to
// limit+1 rows, the extra row only signals a following page.
func (s *ExpenseFilterService) paginate(ctx context.Context, filter *expense.Filter, limit int) (*Page, error) {
	rows, err := s.reader.Expenses.ListFiltered(ctx, filter)
	if err != nil {
		return nil, err
	}

	hasNext := len(rows) > limit
	if hasNext {
		rows = rows[:limit]
	}

	items := make([]Expense, len(rows))
	for i, row := range rows {
		items[i] = expenseFromStorage(row)
	}

	nextCursor := ""
	if hasNext {
		last := rows[len(rows)-1]
		nextCursor = cursor.Encode(last.CreatedAt, last.ID)
	}

	return &Page{
		Items:      items,
		NextCursor: nextCursor,
		HasNext:    hasNext,
		Size:       len(items),
	}, nil
}

func (s *ExpenseFilterService) aggregate(ctx context.Context, filter *expense.Filter) (*Stats, error) {
	totals, err := s.reader.Expenses.Aggregate(ctx, filter)
	if err != nil {
		return nil, err
	}

	byCategory, err := s.reader.Expenses.AggregateByCategory(ctx, filter)
	if err != nil {
		return nil, err
	}

	byDay, err := s.reader.Expenses.AggregateByDay(ctx, filter)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		TotalAmount: totals.TotalAmount,
		Count:       totals.Count,
		ByCategory:  make(map[int64]decimal.Decimal, len(byCategory)),
		ByDate:      make([]DailyStat, len(byDay)),
	}
	for _, row := range byCategory {
		stats.ByCategory[row.CategoryID] = row.TotalAmount
	}
	for i, row := range byDay {
		stats.ByDate[i] = DailyStat{
			Date:        row.Date,
			TotalAmount: row.TotalAmount,
			Count:       row.Count,
		}
	}
	return stats, nil
}
