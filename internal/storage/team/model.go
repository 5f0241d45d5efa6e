package team

import (
	"context"
	"time"
)

// Role is a team member's privilege level. Ordering of privilege is
// OWNER > ADMIN > MEMBER > VIEWER; it only determines which operations a
// role may perform.
type Role string

const (
	RoleOwner  Role = "OWNER"
	RoleAdmin  Role = "ADMIN"
	RoleMember Role = "MEMBER"
	RoleViewer Role = "VIEWER"

	// RoleNone is the sentinel for "not a member"; it is never stored.
	RoleNone Role = ""
)

// ParseRole validates an external role string.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleOwner, RoleAdmin, RoleMember, RoleViewer:
		return Role(s), true
	default:
		return RoleNone, false
	}
}

// Team is a named expense-pooling group. OwnerID records the creating
// user; the OWNER role on memberships governs permissions.
type Team struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	OwnerID   int64     `db:"owner_id"`
	CreatedAt time.Time `db:"created_at"`
}

// Member is the (team, user, role) join row, unique per (team, user).
type Member struct {
	ID        int64     `db:"id"`
	TeamID    int64     `db:"team_id"`
	UserID    int64     `db:"user_id"`
	Role      Role      `db:"role"`
	CreatedAt time.Time `db:"created_at"`
}

//go:generate mockery --name ITeamReader --output mock_ITeamReader.go
type ITeamReader interface {
	FindTeam(ctx context.Context, id int64) (*Team, error)
	TeamExists(ctx context.Context, id int64) (bool, error)
	FindMember(ctx context.Context, teamID, userID int64) (*Member, error)
	MemberExists(ctx context.Context, teamID, userID int64) (bool, error)
	ListMembers(ctx context.Context, teamID int64) ([]*Member, error)
	ListTeamsByUser(ctx context.Context, userID int64) ([]*Team, error)
	ListTeamIDsByUser(ctx context.Context, userID int64) ([]int64, error)
	CountMembersByRole(ctx context.Context, teamID int64, role Role) (int64, error)
	UserExists(ctx context.Context, userID int64) (bool, error)
}

//go:generate mockery --name ITeamWriter --output mock_ITeamWriter.go
type ITeamWriter interface {
	ITeamReader
	// LockMembers acquires row locks on all membership rows of a team so
	// owner counting and the following mutation are atomic.
	LockMembers(ctx context.Context, teamID int64) error
	InsertTeam(ctx context.Context, name string, ownerID int64) (int64, error)
	InsertMember(ctx context.Context, teamID, userID int64, role Role) (int64, error)
	UpdateMemberRole(ctx context.Context, teamID, userID int64, role Role) error
	DeleteMember(ctx context.Context, teamID, userID int64) error
	UpdateTeamName(ctx context.Context, teamID int64, name string) error
	DeleteTeam(ctx context.Context, teamID int64) error
}
