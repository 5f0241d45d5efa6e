package actions

import (
	"context"

	"github.com/carson-networks/expense-server/internal/apperror"
	"github.com/carson-networks/expense-server/internal/service"
	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/team"
)

// AddMember enrolls a user into a team with the requested role. The caller
// must hold OWNER or ADMIN. Adding an existing member is a conflict; the
// unique (team_id, user_id) constraint backstops concurrent adds.
type AddMember struct {
	CallerID     int64
	TeamID       int64
	TargetUserID int64
	Role         team.Role
}

func (a *AddMember) Name() string { return "AddMember" }

func (a *AddMember) Perform(ctx context.Context, writer *storage.Writer) error {
	acl := service.NewTeamACL(writer.Teams)
	if _, err := acl.RequireMembership(ctx, a.CallerID, a.TeamID, team.RoleOwner, team.RoleAdmin); err != nil {
		return err
	}

	alreadyMember, err := writer.Teams.MemberExists(ctx, a.TeamID, a.TargetUserID)
	if err != nil {
		return err
	}
	if alreadyMember {
		return apperror.Conflict("user is already a member of the team")
	}

	exists, err := writer.Teams.UserExists(ctx, a.TargetUserID)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.NotFound("user not found")
	}

	_, err = writer.Teams.InsertMember(ctx, a.TeamID, a.TargetUserID, a.Role)
	return err
}
