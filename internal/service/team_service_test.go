package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/expense-server/internal/apperror"
	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/team"
)

func newTeamService(teams *mockTeamReader) *TeamService {
	reader := &storage.Reader{Teams: teams}
	return NewTeamService(reader, NewTeamACL(teams))
}

func TestListMyTeams(t *testing.T) {
	teams := new(mockTeamReader)
	teams.On("ListTeamsByUser", mock.Anything, int64(1)).Return([]*team.Team{
		{ID: 7, Name: "trip", OwnerID: 1},
		{ID: 9, Name: "household", OwnerID: 2},
	}, nil)

	svc := newTeamService(teams)
	result, err := svc.ListMyTeams(context.Background(), 1)

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, "trip", result[0].Name)
	assert.Equal(t, int64(9), result[1].ID)
}

func TestGetTeam_WithMembers(t *testing.T) {
	teams := new(mockTeamReader)
	teams.On("TeamExists", mock.Anything, int64(7)).Return(true, nil)
	teams.On("FindMember", mock.Anything, int64(7), int64(1)).
		Return(&team.Member{TeamID: 7, UserID: 1, Role: team.RoleMember}, nil)
	teams.On("FindTeam", mock.Anything, int64(7)).
		Return(&team.Team{ID: 7, Name: "trip", OwnerID: 2}, nil)
	teams.On("ListMembers", mock.Anything, int64(7)).Return([]*team.Member{
		{TeamID: 7, UserID: 2, Role: team.RoleOwner},
		{TeamID: 7, UserID: 1, Role: team.RoleMember},
	}, nil)

	svc := newTeamService(teams)
	details, err := svc.GetTeam(context.Background(), 1, 7)

	assert.NoError(t, err)
	assert.Equal(t, "trip", details.Name)
	assert.Equal(t, int64(2), details.OwnerID)
	assert.Len(t, details.Members, 2)
	assert.Equal(t, team.RoleOwner, details.Members[0].Role)
}

func TestGetTeam_NonMember(t *testing.T) {
	teams := new(mockTeamReader)
	teams.On("TeamExists", mock.Anything, int64(7)).Return(true, nil)
	teams.On("FindMember", mock.Anything, int64(7), int64(1)).Return((*team.Member)(nil), nil)

	svc := newTeamService(teams)
	_, err := svc.GetTeam(context.Background(), 1, 7)

	assert.True(t, apperror.IsKind(err, apperror.KindForbidden))
	teams.AssertNotCalled(t, "FindTeam")
}
