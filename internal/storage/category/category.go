package category

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

// Category is a user-scoped expense label, unique per (name, user_id),
// case-sensitive.
type Category struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

//go:generate mockery --name ICategoryReader --output mock_ICategoryReader.go
type ICategoryReader interface {
	FindByID(ctx context.Context, id int64) (*Category, error)
	FindByUserAndName(ctx context.Context, userID int64, name string) (*Category, error)
	ListByUser(ctx context.Context, userID int64) ([]*Category, error)
}

//go:generate mockery --name ICategoryWriter --output mock_ICategoryWriter.go
type ICategoryWriter interface {
	ICategoryReader
	Insert(ctx context.Context, userID int64, name string) (int64, error)
	Delete(ctx context.Context, id int64) error
}

var (
	colID     = psql.Quote("categories", "id")
	colUserID = psql.Quote("categories", "user_id")
	colName   = psql.Quote("categories", "name")
)

var _ ICategoryReader = (*Reader)(nil)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

func (r *Reader) FindByID(ctx context.Context, id int64) (*Category, error) {
	q := psql.Select(
		sm.Columns(colID, colUserID, colName, psql.Quote("categories", "created_at")),
		sm.From("categories"),
		sm.Where(colID.EQ(psql.Arg(id))),
	)
	return one(ctx, r.exec, q)
}

func (r *Reader) FindByUserAndName(ctx context.Context, userID int64, name string) (*Category, error) {
	q := psql.Select(
		sm.Columns(colID, colUserID, colName, psql.Quote("categories", "created_at")),
		sm.From("categories"),
		sm.Where(colUserID.EQ(psql.Arg(userID))),
		sm.Where(colName.EQ(psql.Arg(name))),
	)
	return one(ctx, r.exec, q)
}

func (r *Reader) ListByUser(ctx context.Context, userID int64) ([]*Category, error) {
	q := psql.Select(
		sm.Columns(colID, colUserID, colName, psql.Quote("categories", "created_at")),
		sm.From("categories"),
		sm.Where(colUserID.EQ(psql.Arg(userID))),
		sm.OrderBy(colName).Asc(),
	)
	return bob.All(ctx, r.exec, q, scan.StructMapper[*Category]())
}

func one(ctx context.Context, exec bob.Executor, q bob.Query) (*Category, error) {
	row, err := bob.One(ctx, exec, q, scan.StructMapper[*Category]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

var _ ICategoryWriter = (*Writer)(nil)

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

func (w *Writer) Insert(ctx context.Context, userID int64, name string) (int64, error) {
	q := psql.Insert(
		im.Into("categories", "user_id", "name"),
		im.Values(psql.Arg(userID), psql.Arg(name)),
		im.Returning("id"),
	)
	ids, err := bob.All(ctx, w.tx, q, scan.SingleColumnMapper[int64])
	if err != nil {
		return 0, err
	}
	if len(ids) != 1 {
		return 0, errors.New("category insert returned no id")
	}
	return ids[0], nil
}

func (w *Writer) Delete(ctx context.Context, id int64) error {
	q := psql.Delete(
		dm.From("categories"),
		dm.Where(colID.EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, w.tx, q)
	return err
}
