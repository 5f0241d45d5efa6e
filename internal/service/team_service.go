package service

import (
	"context"

	"github.com/carson-networks/expense-server/internal/apperror"
	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/team"
)

// TeamMember is a membership row in the service layer.
type TeamMember struct {
	UserID int64
	Role   team.Role
}

// TeamDetails is a team with its member list.
type TeamDetails struct {
	ID      int64
	Name    string
	OwnerID int64
	Members []TeamMember
}

// Team is a team summary.
type Team struct {
	ID   int64
	Name string
}

// TeamService handles team read operations. Mutations run through the
// operator so each executes in one transaction.
type TeamService struct {
	reader *storage.Reader
	acl    *TeamACL
}

func NewTeamService(reader *storage.Reader, acl *TeamACL) *TeamService {
	return &TeamService{reader: reader, acl: acl}
}

// ListMyTeams returns every team the user belongs to.
func (s *TeamService) ListMyTeams(ctx context.Context, userID int64) ([]Team, error) {
	rows, err := s.reader.Teams.ListTeamsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	teams := make([]Team, len(rows))
	for i, row := range rows {
		teams[i] = Team{ID: row.ID, Name: row.Name}
	}
	return teams, nil
}

// GetTeam returns the team with its members. The caller must be a member.
func (s *TeamService) GetTeam(ctx context.Context, userID, teamID int64) (*TeamDetails, error) {
	if _, err := s.acl.RequireMembership(ctx, userID, teamID); err != nil {
		return nil, err
	}

	row, err := s.reader.Teams.FindTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, apperror.NotFound("team not found")
	}

	memberRows, err := s.reader.Teams.ListMembers(ctx, teamID)
	if err != nil {
		return nil, err
	}

	details := &TeamDetails{
		ID:      row.ID,
		Name:    row.Name,
		OwnerID: row.OwnerID,
		Members: make([]TeamMember, len(memberRows)),
	}
	for i, member := range memberRows {
		details.Members[i] = TeamMember{UserID: member.UserID, Role: member.Role}
	}
	return details, nil
}
