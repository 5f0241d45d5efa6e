package actions

import (
	"context"
	"strings"

	"github.com/carson-networks/expense-server/internal/apperror"
	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/team"
)

// CreateTeam creates a team and enrolls its creator as the sole OWNER
// member. TeamID is set on success.
type CreateTeam struct {
	OwnerID  int64
	TeamName string

	TeamID int64
}

func (a *CreateTeam) Name() string { return "CreateTeam" }

func (a *CreateTeam) Perform(ctx context.Context, writer *storage.Writer) error {
	name := strings.TrimSpace(a.TeamName)
	if name == "" {
		return apperror.Validation("team name is required")
	}

	exists, err := writer.Teams.UserExists(ctx, a.OwnerID)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.NotFound("user not found")
	}

	teamID, err := writer.Teams.InsertTeam(ctx, name, a.OwnerID)
	if err != nil {
		return err
	}
	if _, err := writer.Teams.InsertMember(ctx, teamID, a.OwnerID, team.RoleOwner); err != nil {
		return err
	}

	a.TeamID = teamID
	return nil
}
