package team

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/expense-server/internal/apperror"
	"github.com/carson-networks/expense-server/internal/service"
	storageteam "github.com/carson-networks/expense-server/internal/storage/team"
)

type mockTeamGetter struct {
	mock.Mock
}

func (m *mockTeamGetter) GetTeam(ctx context.Context, userID, teamID int64) (*service.TeamDetails, error) {
	args := m.Called(ctx, userID, teamID)
	details, _ := args.Get(0).(*service.TeamDetails)
	return details, args.Error(1)
}

func newGetTeamTestAPI(t *testing.T, svc teamGetter) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewGetTeamHandler(svc).Register(api)
	return api
}

func TestHTTP_GetTeam(t *testing.T) {
	mockSvc := new(mockTeamGetter)
	mockSvc.On("GetTeam", mock.Anything, int64(1), int64(7)).Return(&service.TeamDetails{
		ID:      7,
		Name:    "trip",
		OwnerID: 2,
		Members: []service.TeamMember{
			{UserID: 2, Role: storageteam.RoleOwner},
			{UserID: 1, Role: storageteam.RoleMember},
		},
	}, nil)

	resp := newGetTeamTestAPI(t, mockSvc).Get("/v1/team/7", "X-User-Id: 1")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body GetTeamResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "trip", body.Name)
	assert.Equal(t, int64(2), body.OwnerID)
	assert.Len(t, body.Members, 2)
	assert.Equal(t, "OWNER", body.Members[0].Role)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetTeam_NotFound(t *testing.T) {
	mockSvc := new(mockTeamGetter)
	mockSvc.On("GetTeam", mock.Anything, int64(1), int64(7)).
		Return((*service.TeamDetails)(nil), apperror.NotFound("team not found"))

	resp := newGetTeamTestAPI(t, mockSvc).Get("/v1/team/7", "X-User-Id: 1")

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_GetTeam_Forbidden(t *testing.T) {
	mockSvc := new(mockTeamGetter)
	mockSvc.On("GetTeam", mock.Anything, int64(1), int64(7)).
		Return((*service.TeamDetails)(nil), apperror.Forbidden("user is not a member of the team"))

	resp := newGetTeamTestAPI(t, mockSvc).Get("/v1/team/7", "X-User-Id: 1")

	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func TestHTTP_GetTeam_MissingCaller(t *testing.T) {
	mockSvc := new(mockTeamGetter)

	resp := newGetTeamTestAPI(t, mockSvc).Get("/v1/team/7")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockSvc.AssertNotCalled(t, "GetTeam")
}
