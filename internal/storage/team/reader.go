package team

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var (
	colTeamID        = psql.Quote("teams", "id")
	colTeamName      = psql.Quote("teams", "name")
	colTeamOwnerID   = psql.Quote("teams", "owner_id")
	colTeamCreatedAt = psql.Quote("teams", "created_at")

	colMemberID        = psql.Quote("team_members", "id")
	colMemberTeamID    = psql.Quote("team_members", "team_id")
	colMemberUserID    = psql.Quote("team_members", "user_id")
	colMemberRole      = psql.Quote("team_members", "role")
	colMemberCreatedAt = psql.Quote("team_members", "created_at")
)

var _ ITeamReader = (*Reader)(nil)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

func (r *Reader) FindTeam(ctx context.Context, id int64) (*Team, error) {
	q := psql.Select(
		sm.Columns(colTeamID, colTeamName, colTeamOwnerID, colTeamCreatedAt),
		sm.From("teams"),
		sm.Where(colTeamID.EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[*Team]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *Reader) TeamExists(ctx context.Context, id int64) (bool, error) {
	team, err := r.FindTeam(ctx, id)
	if err != nil {
		return false, err
	}
	return team != nil, nil
}

func (r *Reader) FindMember(ctx context.Context, teamID, userID int64) (*Member, error) {
	q := psql.Select(
		sm.Columns(colMemberID, colMemberTeamID, colMemberUserID, colMemberRole, colMemberCreatedAt),
		sm.From("team_members"),
		sm.Where(colMemberTeamID.EQ(psql.Arg(teamID))),
		sm.Where(colMemberUserID.EQ(psql.Arg(userID))),
	)
	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[*Member]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *Reader) MemberExists(ctx context.Context, teamID, userID int64) (bool, error) {
	member, err := r.FindMember(ctx, teamID, userID)
	if err != nil {
		return false, err
	}
	return member != nil, nil
}

func (r *Reader) ListMembers(ctx context.Context, teamID int64) ([]*Member, error) {
	q := psql.Select(
		sm.Columns(colMemberID, colMemberTeamID, colMemberUserID, colMemberRole, colMemberCreatedAt),
		sm.From("team_members"),
		sm.Where(colMemberTeamID.EQ(psql.Arg(teamID))),
		sm.OrderBy(colMemberID).Asc(),
	)
	return bob.All(ctx, r.exec, q, scan.StructMapper[*Member]())
}

func (r *Reader) ListTeamsByUser(ctx context.Context, userID int64) ([]*Team, error) {
	q := psql.Select(
		sm.Columns(colTeamID, colTeamName, colTeamOwnerID, colTeamCreatedAt),
		sm.From("teams"),
		sm.InnerJoin("team_members").On(colMemberTeamID.EQ(colTeamID)),
		sm.Where(colMemberUserID.EQ(psql.Arg(userID))),
		sm.OrderBy(colTeamID).Asc(),
	)
	return bob.All(ctx, r.exec, q, scan.StructMapper[*Team]())
}

func (r *Reader) ListTeamIDsByUser(ctx context.Context, userID int64) ([]int64, error) {
	q := psql.Select(
		sm.Columns(colMemberTeamID),
		sm.From("team_members"),
		sm.Where(colMemberUserID.EQ(psql.Arg(userID))),
		sm.OrderBy(colMemberTeamID).Asc(),
	)
	return bob.All(ctx, r.exec, q, scan.SingleColumnMapper[int64])
}

func (r *Reader) CountMembersByRole(ctx context.Context, teamID int64, role Role) (int64, error) {
	q := psql.Select(
		sm.Columns(psql.Raw("COUNT(*) AS count")),
		sm.From("team_members"),
		sm.Where(colMemberTeamID.EQ(psql.Arg(teamID))),
		sm.Where(colMemberRole.EQ(psql.Arg(string(role)))),
	)
	counts, err := bob.All(ctx, r.exec, q, scan.SingleColumnMapper[int64])
	if err != nil {
		return 0, err
	}
	if len(counts) != 1 {
		return 0, errors.New("member count returned no row")
	}
	return counts[0], nil
}

func (r *Reader) UserExists(ctx context.Context, userID int64) (bool, error) {
	q := psql.Select(
		sm.Columns(psql.Raw("COUNT(*) AS count")),
		sm.From("users"),
		sm.Where(psql.Quote("users", "id").EQ(psql.Arg(userID))),
	)
	counts, err := bob.All(ctx, r.exec, q, scan.SingleColumnMapper[int64])
	if err != nil {
		return false, err
	}
	return len(counts) == 1 && counts[0] > 0, nil
}
