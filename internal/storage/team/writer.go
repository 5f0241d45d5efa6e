package team

import (
	"context"
	"errors"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var _ ITeamWriter = (*Writer)(nil)

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

// LockMembers takes FOR UPDATE locks on every membership row of a team.
// Concurrent role mutations on the same team serialize here, so an owner
// count read after this call stays valid until commit.
func (w *Writer) LockMembers(ctx context.Context, teamID int64) error {
	q := psql.Select(
		sm.Columns(colMemberID),
		sm.From("team_members"),
		sm.Where(colMemberTeamID.EQ(psql.Arg(teamID))),
		sm.ForUpdate(),
	)
	_, err := bob.All(ctx, w.tx, q, scan.SingleColumnMapper[int64])
	return err
}

func (w *Writer) InsertTeam(ctx context.Context, name string, ownerID int64) (int64, error) {
	q := psql.Insert(
		im.Into("teams", "name", "owner_id"),
		im.Values(psql.Arg(name), psql.Arg(ownerID)),
		im.Returning("id"),
	)
	return insertedID(ctx, w.tx, q)
}

func (w *Writer) InsertMember(ctx context.Context, teamID, userID int64, role Role) (int64, error) {
	q := psql.Insert(
		im.Into("team_members", "team_id", "user_id", "role"),
		im.Values(psql.Arg(teamID), psql.Arg(userID), psql.Arg(string(role))),
		im.Returning("id"),
	)
	return insertedID(ctx, w.tx, q)
}

func (w *Writer) UpdateMemberRole(ctx context.Context, teamID, userID int64, role Role) error {
	q := psql.Update(
		um.Table("team_members"),
		um.SetCol("role").ToArg(string(role)),
		um.Where(colMemberTeamID.EQ(psql.Arg(teamID))),
		um.Where(colMemberUserID.EQ(psql.Arg(userID))),
	)
	_, err := bob.Exec(ctx, w.tx, q)
	return err
}

func (w *Writer) DeleteMember(ctx context.Context, teamID, userID int64) error {
	q := psql.Delete(
		dm.From("team_members"),
		dm.Where(colMemberTeamID.EQ(psql.Arg(teamID))),
		dm.Where(colMemberUserID.EQ(psql.Arg(userID))),
	)
	_, err := bob.Exec(ctx, w.tx, q)
	return err
}

func (w *Writer) UpdateTeamName(ctx context.Context, teamID int64, name string) error {
	q := psql.Update(
		um.Table("teams"),
		um.SetCol("name").ToArg(name),
		um.Where(colTeamID.EQ(psql.Arg(teamID))),
	)
	_, err := bob.Exec(ctx, w.tx, q)
	return err
}

// DeleteTeam removes the team row. Memberships cascade via FK; team
// expenses fall back to personal scope via ON DELETE SET NULL.
func (w *Writer) DeleteTeam(ctx context.Context, teamID int64) error {
	q := psql.Delete(
		dm.From("teams"),
		dm.Where(colTeamID.EQ(psql.Arg(teamID))),
	)
	_, err := bob.Exec(ctx, w.tx, q)
	return err
}

func insertedID(ctx context.Context, exec bob.Executor, q bob.Query) (int64, error) {
	ids, err := bob.All(ctx, exec, q, scan.SingleColumnMapper[int64])
	if err != nil {
		return 0, err
	}
	if len(ids) != 1 {
		return 0, errors.New("insert returned no id")
	}
	return ids[0], nil
}
