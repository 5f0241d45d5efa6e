package actions

import (
	"context"
	"strings"

	"github.com/carson-networks/expense-server/internal/apperror"
	"github.com/carson-networks/expense-server/internal/service"
	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/team"
)

// UpdateTeamName renames a team. The caller must hold OWNER or ADMIN.
type UpdateTeamName struct {
	CallerID int64
	TeamID   int64
	NewName  string
}

func (a *UpdateTeamName) Name() string { return "UpdateTeamName" }

func (a *UpdateTeamName) Perform(ctx context.Context, writer *storage.Writer) error {
	name := strings.TrimSpace(a.NewName)
	if name == "" {
		return apperror.Validation("team name is required")
	}

	acl := service.NewTeamACL(writer.Teams)
	if _, err := acl.RequireMembership(ctx, a.CallerID, a.TeamID, team.RoleOwner, team.RoleAdmin); err != nil {
		return err
	}

	return writer.Teams.UpdateTeamName(ctx, a.TeamID, name)
}
