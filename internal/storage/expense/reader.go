package expense

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/mods"
	"github.com/stephenafamo/scan"
)

var _ IExpenseReader = (*Reader)(nil)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

func selectColumns() bob.Mod[*dialect.SelectQuery] {
	return sm.Columns(
		colID, colUserID, colCategoryID, colTeamID,
		colAmount, colDescription, colExpenseDate, colReceiptKey, colCreatedAt,
	)
}

// FindByID returns the expense or nil when no such row exists.
func (r *Reader) FindByID(ctx context.Context, id int64) (*Expense, error) {
	q := psql.Select(
		selectColumns(),
		sm.From("expenses"),
		sm.Where(colID.EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[*Expense]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

// ListFiltered returns matching expenses ordered by (created_at DESC, id DESC),
// fetching one row beyond the filter's limit so the caller can detect a
// following page without a COUNT query.
func (r *Reader) ListFiltered(ctx context.Context, filter *Filter) ([]*Expense, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		selectColumns(),
		sm.From("expenses"),
	}
	queryMods = appendWhere(queryMods, filter.whereMods())
	queryMods = append(queryMods,
		sm.OrderBy(colCreatedAt).Desc(),
		sm.OrderBy(colID).Desc(),
	)
	if filter.Limit > 0 {
		queryMods = append(queryMods, sm.Limit(filter.Limit+1))
	}

	return bob.All(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[*Expense]())
}

// Aggregate computes the sum/count totals for a filter. The sum is zero,
// never null, on an empty result set.
func (r *Reader) Aggregate(ctx context.Context, filter *Filter) (*Totals, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(
			psql.Raw("COALESCE(SUM(expenses.amount), 0) AS total_amount"),
			psql.Raw("COUNT(*) AS count"),
		),
		sm.From("expenses"),
	}
	queryMods = appendWhere(queryMods, filter.whereMods())

	totals, err := bob.One(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[Totals]())
	if err != nil {
		return nil, err
	}
	return &totals, nil
}

func (r *Reader) AggregateByCategory(ctx context.Context, filter *Filter) ([]CategoryTotal, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(
			colCategoryID,
			psql.Raw("COALESCE(SUM(expenses.amount), 0) AS total_amount"),
		),
		sm.From("expenses"),
	}
	queryMods = appendWhere(queryMods, filter.whereMods())
	queryMods = append(queryMods,
		sm.GroupBy(colCategoryID),
		sm.OrderBy(colCategoryID).Asc(),
	)

	return bob.All(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[CategoryTotal]())
}

func (r *Reader) AggregateByDay(ctx context.Context, filter *Filter) ([]DailyTotal, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(
			colExpenseDate,
			psql.Raw("COALESCE(SUM(expenses.amount), 0) AS total_amount"),
			psql.Raw("COUNT(*) AS count"),
		),
		sm.From("expenses"),
	}
	queryMods = appendWhere(queryMods, filter.whereMods())
	queryMods = append(queryMods,
		sm.GroupBy(colExpenseDate),
		sm.OrderBy(colExpenseDate).Asc(),
	)

	return bob.All(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[DailyTotal]())
}

func (r *Reader) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	q := psql.Select(
		sm.Columns(psql.Raw("COUNT(*) AS count")),
		sm.From("expenses"),
		sm.Where(colCategoryID.EQ(psql.Arg(categoryID))),
	)
	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[Totals]())
	if err != nil {
		return 0, err
	}
	return row.Count, nil
}

func appendWhere(
	queryMods []bob.Mod[*dialect.SelectQuery],
	whereMods []mods.Where[*dialect.SelectQuery],
) []bob.Mod[*dialect.SelectQuery] {
	if len(whereMods) == 1 {
		return append(queryMods, whereMods[0])
	}
	if len(whereMods) > 1 {
		return append(queryMods, psql.WhereAnd(whereMods...))
	}
	return queryMods
}
