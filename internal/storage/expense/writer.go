package expense

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var _ IExpenseWriter = (*Writer)(nil)

type Writer struct {
	tx bob.Tx
	Reader
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

func (w *Writer) FindByIDForUpdate(ctx context.Context, id int64) (*Expense, error) {
	q := psql.Select(
		selectColumns(),
		sm.From("expenses"),
		sm.Where(colID.EQ(psql.Arg(id))),
		sm.ForUpdate(),
	)
	row, err := bob.One(ctx, w.tx, q, scan.StructMapper[*Expense]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

// Insert creates a new expense and returns its generated ID. A zero
// CreatedAt defers to the column default (now()).
func (w *Writer) Insert(ctx context.Context, create *ExpenseCreate) (int64, error) {
	columns := []string{
		"user_id", "category_id", "team_id", "amount",
		"description", "expense_date", "receipt_key",
	}
	values := []bob.Expression{
		psql.Arg(create.UserID),
		psql.Arg(create.CategoryID),
		psql.Arg(create.TeamID),
		psql.Arg(create.Amount),
		psql.Arg(create.Description),
		psql.Arg(create.ExpenseDate),
		psql.Arg(create.ReceiptKey),
	}
	if !create.CreatedAt.IsZero() {
		columns = append(columns, "created_at")
		values = append(values, psql.Arg(create.CreatedAt))
	}

	q := psql.Insert(
		im.Into("expenses", columns...),
		im.Values(values...),
		im.Returning("id"),
	)
	ids, err := bob.All(ctx, w.tx, q, scan.SingleColumnMapper[int64])
	if err != nil {
		return 0, err
	}
	if len(ids) != 1 {
		return 0, errors.New("expense insert returned no id")
	}
	return ids[0], nil
}

func (w *Writer) Update(ctx context.Context, id int64, update *ExpenseUpdate) error {
	q := psql.Update(
		um.Table("expenses"),
		um.SetCol("category_id").ToArg(update.CategoryID),
		um.SetCol("amount").ToArg(update.Amount),
		um.SetCol("description").ToArg(update.Description),
		um.SetCol("expense_date").ToArg(update.ExpenseDate),
		um.Where(colID.EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, w.tx, q)
	return err
}

// SetTeam moves an expense into team scope in place: same row, same id.
func (w *Writer) SetTeam(ctx context.Context, id int64, teamID int64) error {
	q := psql.Update(
		um.Table("expenses"),
		um.SetCol("team_id").ToArg(teamID),
		um.Where(colID.EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, w.tx, q)
	return err
}

func (w *Writer) SetReceiptKey(ctx context.Context, id int64, key *uuid.UUID) error {
	q := psql.Update(
		um.Table("expenses"),
		um.SetCol("receipt_key").ToArg(key),
		um.Where(colID.EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, w.tx, q)
	return err
}

func (w *Writer) Delete(ctx context.Context, id int64) error {
	q := psql.Delete(
		dm.From("expenses"),
		dm.Where(colID.EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, w.tx, q)
	return err
}
