package actions

import (
	"context"

	"github.com/carson-networks/expense-server/internal/apperror"
	"github.com/carson-networks/expense-server/internal/service"
	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/team"
)

// RemoveMember takes a user out of a team. Self-removal is open to any
// role but an OWNER may not remove themself while they are the last one.
// Removing someone else requires OWNER or ADMIN.
//
// TODO: removing another member skips the last-owner count, so an ADMIN
// can remove the sole OWNER; pending product decision whether this should
// mirror the change-role guard.
type RemoveMember struct {
	CallerID     int64
	TeamID       int64
	TargetUserID int64
}

func (a *RemoveMember) Name() string { return "RemoveMember" }

func (a *RemoveMember) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := writer.Teams.LockMembers(ctx, a.TeamID); err != nil {
		return err
	}

	target, err := writer.Teams.FindMember(ctx, a.TeamID, a.TargetUserID)
	if err != nil {
		return err
	}
	if target == nil {
		return apperror.NotFound("team member not found")
	}

	if a.CallerID == a.TargetUserID {
		if target.Role == team.RoleOwner {
			owners, err := writer.Teams.CountMembersByRole(ctx, a.TeamID, team.RoleOwner)
			if err != nil {
				return err
			}
			if owners <= 1 {
				return apperror.Conflict("cannot remove the last owner")
			}
		}
	} else {
		acl := service.NewTeamACL(writer.Teams)
		if _, err := acl.RequireMembership(ctx, a.CallerID, a.TeamID, team.RoleOwner, team.RoleAdmin); err != nil {
			return err
		}
	}

	return writer.Teams.DeleteMember(ctx, a.TeamID, a.TargetUserID)
}
