package expense

import (
	"strings"

	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/mods"
)

var (
	colID          = psql.Quote("expenses", "id")
	colUserID      = psql.Quote("expenses", "user_id")
	colCategoryID  = psql.Quote("expenses", "category_id")
	colTeamID      = psql.Quote("expenses", "team_id")
	colAmount      = psql.Quote("expenses", "amount")
	colDescription = psql.Quote("expenses", "description")
	colExpenseDate = psql.Quote("expenses", "expense_date")
	colReceiptKey  = psql.Quote("expenses", "receipt_key")
	colCreatedAt   = psql.Quote("expenses", "created_at")
)

// whereMods translates the filter into a conjunction of predicates. Absent
// fields contribute nothing. Every query over expenses, paginated or
// aggregated, goes through this one builder.
func (f *Filter) whereMods() []mods.Where[*dialect.SelectQuery] {
	var whereMods []mods.Where[*dialect.SelectQuery]

	if f.UserID != nil {
		whereMods = append(whereMods, sm.Where(colUserID.EQ(psql.Arg(*f.UserID))))
	}
	if f.TeamID != nil {
		whereMods = append(whereMods, sm.Where(colTeamID.EQ(psql.Arg(*f.TeamID))))
	}

	// CategoryID wins over a category-name match when both are set.
	if f.CategoryID != nil {
		whereMods = append(whereMods, sm.Where(colCategoryID.EQ(psql.Arg(*f.CategoryID))))
	} else if name := strings.TrimSpace(f.CategoryName); name != "" {
		lowered := strings.ToLower(name)
		if f.CategoryLike {
			whereMods = append(whereMods, sm.Where(psql.Raw(
				"EXISTS (SELECT 1 FROM categories WHERE categories.id = expenses.category_id AND LOWER(categories.name) LIKE ?)",
				"%"+lowered+"%",
			)))
		} else {
			whereMods = append(whereMods, sm.Where(psql.Raw(
				"EXISTS (SELECT 1 FROM categories WHERE categories.id = expenses.category_id AND LOWER(categories.name) = ?)",
				lowered,
			)))
		}
	}

	if f.FromDate != nil {
		whereMods = append(whereMods, sm.Where(colExpenseDate.GTE(psql.Arg(*f.FromDate))))
	}
	if f.ToDate != nil {
		whereMods = append(whereMods, sm.Where(colExpenseDate.LTE(psql.Arg(*f.ToDate))))
	}

	if f.MinAmount != nil {
		whereMods = append(whereMods, sm.Where(colAmount.GTE(psql.Arg(*f.MinAmount))))
	}
	if f.MaxAmount != nil {
		whereMods = append(whereMods, sm.Where(colAmount.LTE(psql.Arg(*f.MaxAmount))))
	}

	if f.HasReceipt != nil {
		if *f.HasReceipt {
			whereMods = append(whereMods, sm.Where(colReceiptKey.IsNotNull()))
		} else {
			whereMods = append(whereMods, sm.Where(colReceiptKey.IsNull()))
		}
	}

	if term := strings.TrimSpace(f.Search); term != "" {
		whereMods = append(whereMods, sm.Where(psql.Raw(
			"LOWER(expenses.description) LIKE ?",
			"%"+strings.ToLower(term)+"%",
		)))
	}

	// Keyset anchor: strictly before the anchor row in (created_at, id)
	// descending order. The id tie-break keeps rows sharing a created_at
	// from being skipped or repeated across pages.
	if f.Anchor != nil {
		whereMods = append(whereMods, sm.Where(
			colCreatedAt.LT(psql.Arg(f.Anchor.CreatedAt)).Or(
				colCreatedAt.EQ(psql.Arg(f.Anchor.CreatedAt)).And(colID.LT(psql.Arg(f.Anchor.ID))),
			),
		))
	}

	return whereMods
}
