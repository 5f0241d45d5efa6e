package service

import (
	"context"
	"fmt"

	"github.com/carson-networks/expense-server/internal/apperror"
	"github.com/carson-networks/expense-server/internal/storage/team"
)

// TeamACL is the single authorization chokepoint for team-scoped
// operations. Every team operation, read or write, goes through
// RequireMembership before touching team data.
type TeamACL struct {
	teams team.ITeamReader
}

func NewTeamACL(teams team.ITeamReader) *TeamACL {
	return &TeamACL{teams: teams}
}

// RequireMembership returns the caller's membership in the team.
// A missing team is NotFound; a missing membership is Forbidden; when
// allowedRoles is non-empty, a role outside the set is Forbidden.
func (a *TeamACL) RequireMembership(ctx context.Context, userID, teamID int64, allowedRoles ...team.Role) (*team.Member, error) {
	exists, err := a.teams.TeamExists(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperror.NotFound("team not found")
	}

	member, err := a.teams.FindMember(ctx, teamID, userID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, apperror.Forbidden("user is not a member of the team")
	}

	if len(allowedRoles) > 0 {
		allowed := false
		for _, role := range allowedRoles {
			if member.Role == role {
				allowed = true
				break
			}
		}
		if !allowed {
			return nil, apperror.Forbidden(fmt.Sprintf("insufficient permissions, required roles: %v", allowedRoles))
		}
	}

	return member, nil
}

// ListTeamIDs returns the ids of every team the user belongs to.
func (a *TeamACL) ListTeamIDs(ctx context.Context, userID int64) ([]int64, error) {
	return a.teams.ListTeamIDsByUser(ctx, userID)
}

// IsMember reports membership without distinguishing why it is absent.
func (a *TeamACL) IsMember(ctx context.Context, userID, teamID int64) (bool, error) {
	return a.teams.MemberExists(ctx, teamID, userID)
}

// Role returns the user's role in the team, or RoleNone when the user is
// not a member. Unlike RequireMembership this never fails on absence; it
// serves permission decisions that tolerate non-membership.
func (a *TeamACL) Role(ctx context.Context, userID, teamID int64) (team.Role, error) {
	member, err := a.teams.FindMember(ctx, teamID, userID)
	if err != nil {
		return team.RoleNone, err
	}
	if member == nil {
		return team.RoleNone, nil
	}
	return member.Role, nil
}
