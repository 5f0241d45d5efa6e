package actions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/expense-server/internal/apperror"
	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/team"
)

func TestRemoveMember_SoleOwnerCannotLeave(t *testing.T) {
	teams := new(mockTeamWriter)
	teams.On("LockMembers", mock.Anything, testTeamID).Return(nil)
	teams.On("FindMember", mock.Anything, testTeamID, callerID).
		Return(&team.Member{TeamID: testTeamID, UserID: callerID, Role: team.RoleOwner}, nil)
	teams.On("CountMembersByRole", mock.Anything, testTeamID, team.RoleOwner).Return(int64(1), nil)

	action := &RemoveMember{CallerID: callerID, TeamID: testTeamID, TargetUserID: callerID}
	err := action.Perform(context.Background(), &storage.Writer{Teams: teams})

	assert.True(t, apperror.IsKind(err, apperror.KindConflict))
	teams.AssertNotCalled(t, "DeleteMember")
}

func TestRemoveMember_OwnerLeavesWithCoOwner(t *testing.T) {
	teams := new(mockTeamWriter)
	teams.On("LockMembers", mock.Anything, testTeamID).Return(nil)
	teams.On("FindMember", mock.Anything, testTeamID, callerID).
		Return(&team.Member{TeamID: testTeamID, UserID: callerID, Role: team.RoleOwner}, nil)
	teams.On("CountMembersByRole", mock.Anything, testTeamID, team.RoleOwner).Return(int64(2), nil)
	teams.On("DeleteMember", mock.Anything, testTeamID, callerID).Return(nil)

	action := &RemoveMember{CallerID: callerID, TeamID: testTeamID, TargetUserID: callerID}
	err := action.Perform(context.Background(), &storage.Writer{Teams: teams})

	assert.NoError(t, err)
	teams.AssertExpectations(t)
}

func TestRemoveMember_ViewerLeavesFreely(t *testing.T) {
	// Self-removal does not go through the OWNER/ADMIN gate.
	teams := new(mockTeamWriter)
	teams.On("LockMembers", mock.Anything, testTeamID).Return(nil)
	teams.On("FindMember", mock.Anything, testTeamID, callerID).
		Return(&team.Member{TeamID: testTeamID, UserID: callerID, Role: team.RoleViewer}, nil)
	teams.On("DeleteMember", mock.Anything, testTeamID, callerID).Return(nil)

	action := &RemoveMember{CallerID: callerID, TeamID: testTeamID, TargetUserID: callerID}
	err := action.Perform(context.Background(), &storage.Writer{Teams: teams})

	assert.NoError(t, err)
	teams.AssertNotCalled(t, "CountMembersByRole")
	teams.AssertExpectations(t)
}

func TestRemoveMember_AdminRemovesMember(t *testing.T) {
	teams := new(mockTeamWriter)
	teams.On("LockMembers", mock.Anything, testTeamID).Return(nil)
	teams.On("FindMember", mock.Anything, testTeamID, targetID).
		Return(&team.Member{TeamID: testTeamID, UserID: targetID, Role: team.RoleMember}, nil)
	teams.On("TeamExists", mock.Anything, testTeamID).Return(true, nil)
	teams.On("FindMember", mock.Anything, testTeamID, callerID).
		Return(&team.Member{TeamID: testTeamID, UserID: callerID, Role: team.RoleAdmin}, nil)
	teams.On("DeleteMember", mock.Anything, testTeamID, targetID).Return(nil)

	action := &RemoveMember{CallerID: callerID, TeamID: testTeamID, TargetUserID: targetID}
	err := action.Perform(context.Background(), &storage.Writer{Teams: teams})

	assert.NoError(t, err)
	teams.AssertExpectations(t)
}

func TestRemoveMember_MemberCannotRemoveOthers(t *testing.T) {
	teams := new(mockTeamWriter)
	teams.On("LockMembers", mock.Anything, testTeamID).Return(nil)
	teams.On("FindMember", mock.Anything, testTeamID, targetID).
		Return(&team.Member{TeamID: testTeamID, UserID: targetID, Role: team.RoleViewer}, nil)
	teams.On("TeamExists", mock.Anything, testTeamID).Return(true, nil)
	teams.On("FindMember", mock.Anything, testTeamID, callerID).
		Return(&team.Member{TeamID: testTeamID, UserID: callerID, Role: team.RoleMember}, nil)

	action := &RemoveMember{CallerID: callerID, TeamID: testTeamID, TargetUserID: targetID}
	err := action.Perform(context.Background(), &storage.Writer{Teams: teams})

	assert.True(t, apperror.IsKind(err, apperror.KindForbidden))
	teams.AssertNotCalled(t, "DeleteMember")
}

func TestRemoveMember_TargetNotAMember(t *testing.T) {
	teams := new(mockTeamWriter)
	teams.On("LockMembers", mock.Anything, testTeamID).Return(nil)
	teams.On("FindMember", mock.Anything, testTeamID, targetID).Return((*team.Member)(nil), nil)

	action := &RemoveMember{CallerID: callerID, TeamID: testTeamID, TargetUserID: targetID}
	err := action.Perform(context.Background(), &storage.Writer{Teams: teams})

	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestRemoveMember_AdminRemovesSoleOwner(t *testing.T) {
	// Removing another member never counts owners, so an admin can strip
	// the only owner from the team. See the note on RemoveMember.
	teams := new(mockTeamWriter)
	teams.On("LockMembers", mock.Anything, testTeamID).Return(nil)
	teams.On("FindMember", mock.Anything, testTeamID, targetID).
		Return(&team.Member{TeamID: testTeamID, UserID: targetID, Role: team.RoleOwner}, nil)
	teams.On("TeamExists", mock.Anything, testTeamID).Return(true, nil)
	teams.On("FindMember", mock.Anything, testTeamID, callerID).
		Return(&team.Member{TeamID: testTeamID, UserID: callerID, Role: team.RoleAdmin}, nil)
	teams.On("DeleteMember", mock.Anything, testTeamID, targetID).Return(nil)

	action := &RemoveMember{CallerID: callerID, TeamID: testTeamID, TargetUserID: targetID}
	err := action.Perform(context.Background(), &storage.Writer{Teams: teams})

	assert.NoError(t, err)
	teams.AssertNotCalled(t, "CountMembersByRole")
}
