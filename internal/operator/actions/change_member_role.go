package actions

import (
	"context"

	"github.com/carson-networks/expense-server/internal/apperror"
	"github.com/carson-networks/expense-server/internal/service"
	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/team"
)

// ChangeMemberRole applies a role transition to a team member. Guards: the
// caller holds OWNER or ADMIN; promoting to OWNER requires the caller to be
// an OWNER; demoting the last remaining OWNER is rejected.
type ChangeMemberRole struct {
	CallerID     int64
	TeamID       int64
	TargetUserID int64
	NewRole      team.Role
}

func (a *ChangeMemberRole) Name() string { return "ChangeMemberRole" }

func (a *ChangeMemberRole) Perform(ctx context.Context, writer *storage.Writer) error {
	acl := service.NewTeamACL(writer.Teams)
	caller, err := acl.RequireMembership(ctx, a.CallerID, a.TeamID, team.RoleOwner, team.RoleAdmin)
	if err != nil {
		return err
	}

	// Lock the team's membership rows so the owner count cannot change
	// between the check and the update.
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

	if target.Role == team.RoleOwner && a.NewRole != team.RoleOwner {
		owners, err := writer.Teams.CountMembersByRole(ctx, a.TeamID, team.RoleOwner)
		if err != nil {
			return err
		}
		if owners <= 1 {
			return apperror.Conflict("cannot demote the last owner")
		}
	}

	if a.NewRole == team.RoleOwner && target.Role != team.RoleOwner && caller.Role != team.RoleOwner {
		return apperror.Forbidden("only an owner can assign the owner role")
	}

	return writer.Teams.UpdateMemberRole(ctx, a.TeamID, a.TargetUserID, a.NewRole)
}
