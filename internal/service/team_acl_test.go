package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/expense-server/internal/apperror"
	"github.com/carson-networks/expense-server/internal/storage/team"
)

func TestRequireMembership_TeamMissing(t *testing.T) {
	teams := new(mockTeamReader)
	teams.On("TeamExists", mock.Anything, int64(7)).Return(false, nil)

	acl := NewTeamACL(teams)
	member, err := acl.RequireMembership(context.Background(), 1, 7)

	assert.Nil(t, member)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	teams.AssertNotCalled(t, "FindMember")
}

func TestRequireMembership_NotAMember(t *testing.T) {
	teams := new(mockTeamReader)
	teams.On("TeamExists", mock.Anything, int64(7)).Return(true, nil)
	teams.On("FindMember", mock.Anything, int64(7), int64(1)).Return((*team.Member)(nil), nil)

	acl := NewTeamACL(teams)
	member, err := acl.RequireMembership(context.Background(), 1, 7)

	assert.Nil(t, member)
	assert.True(t, apperror.IsKind(err, apperror.KindForbidden))
}

func TestRequireMembership_AnyRoleAccepted(t *testing.T) {
	teams := new(mockTeamReader)
	teams.On("TeamExists", mock.Anything, int64(7)).Return(true, nil)
	teams.On("FindMember", mock.Anything, int64(7), int64(1)).
		Return(&team.Member{TeamID: 7, UserID: 1, Role: team.RoleViewer}, nil)

	acl := NewTeamACL(teams)
	member, err := acl.RequireMembership(context.Background(), 1, 7)

	assert.NoError(t, err)
	assert.Equal(t, team.RoleViewer, member.Role)
}

func TestRequireMembership_RoleOutsideSet(t *testing.T) {
	teams := new(mockTeamReader)
	teams.On("TeamExists", mock.Anything, int64(7)).Return(true, nil)
	teams.On("FindMember", mock.Anything, int64(7), int64(1)).
		Return(&team.Member{TeamID: 7, UserID: 1, Role: team.RoleMember}, nil)

	acl := NewTeamACL(teams)
	member, err := acl.RequireMembership(context.Background(), 1, 7, team.RoleOwner, team.RoleAdmin)

	assert.Nil(t, member)
	assert.True(t, apperror.IsKind(err, apperror.KindForbidden))
}

func TestRequireMembership_RoleInSet(t *testing.T) {
	teams := new(mockTeamReader)
	teams.On("TeamExists", mock.Anything, int64(7)).Return(true, nil)
	teams.On("FindMember", mock.Anything, int64(7), int64(1)).
		Return(&team.Member{TeamID: 7, UserID: 1, Role: team.RoleAdmin}, nil)

	acl := NewTeamACL(teams)
	member, err := acl.RequireMembership(context.Background(), 1, 7, team.RoleOwner, team.RoleAdmin)

	assert.NoError(t, err)
	assert.Equal(t, team.RoleAdmin, member.Role)
}

func TestRole_NonMemberIsNone(t *testing.T) {
	teams := new(mockTeamReader)
	teams.On("FindMember", mock.Anything, int64(7), int64(1)).Return((*team.Member)(nil), nil)

	acl := NewTeamACL(teams)
	role, err := acl.Role(context.Background(), 1, 7)

	assert.NoError(t, err)
	assert.Equal(t, team.RoleNone, role)
}
