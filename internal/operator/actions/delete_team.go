package actions

import (
	"context"

	"github.com/carson-networks/expense-server/internal/apperror"
	"github.com/carson-networks/expense-server/internal/service"
	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/team"
)

// DeleteTeam removes a team and, via cascade, all its memberships. The
// caller must hold the OWNER role and be the team's recorded owner.
type DeleteTeam struct {
	CallerID int64
	TeamID   int64
}

func (a *DeleteTeam) Name() string { return "DeleteTeam" }

func (a *DeleteTeam) Perform(ctx context.Context, writer *storage.Writer) error {
	acl := service.NewTeamACL(writer.Teams)
	if _, err := acl.RequireMembership(ctx, a.CallerID, a.TeamID, team.RoleOwner); err != nil {
		return err
	}

	row, err := writer.Teams.FindTeam(ctx, a.TeamID)
	if err != nil {
		return err
	}
	if row == nil {
		return apperror.NotFound("team not found")
	}
	if row.OwnerID != a.CallerID {
		return apperror.Forbidden("only the team owner can delete the team")
	}

	return writer.Teams.DeleteTeam(ctx, a.TeamID)
}
