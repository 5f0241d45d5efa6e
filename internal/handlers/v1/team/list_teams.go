package team

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/expense-server/internal/service"
)

// ListTeamsInput is the Huma input for listing the caller's teams.
type ListTeamsInput struct {
	UserID int64 `header:"X-User-Id" doc:"Gateway-injected caller id"`
}

// ListTeamsResponseBody is the response body for listing teams.
type ListTeamsResponseBody struct {
	Teams []Team `json:"teams" doc:"Teams the caller belongs to"`
}

// ListTeamsOutput is the Huma output for listing teams.
type ListTeamsOutput struct {
	Body ListTeamsResponseBody
}

// teamLister is the interface for listing a user's teams.
type teamLister interface {
	ListMyTeams(ctx context.Context, userID int64) ([]service.Team, error)
}

// ListTeamsHandler handles GET /v1/team.
type ListTeamsHandler struct {
	TeamService teamLister
}

// NewListTeamsHandler creates a new ListTeamsHandler.
func NewListTeamsHandler(svc teamLister) *ListTeamsHandler {
	return &ListTeamsHandler{TeamService: svc}
}

// Register registers the list teams endpoint with the Huma API.
func (h *ListTeamsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-teams",
		Method:      http.MethodGet,
		Path:        "/v1/team",
		Summary:     "List teams",
		Description: "Returns every team the caller is a member of.",
		Tags:        []string{"Teams"},
	}, h.handle)
}

func (h *ListTeamsHandler) handle(ctx context.Context, input *ListTeamsInput) (*ListTeamsOutput, error) {
	if err := httperr.RequireCaller(input.UserID); err != nil {
		return nil, err
	}

	teams, err := h.TeamService.ListMyTeams(ctx, input.UserID)
	if err != nil {
		return nil, httperr.Map(err, "failed to list teams")
	}

	resp := ListTeamsResponseBody{Teams: make([]Team, len(teams))}
	for i, t := range teams {
		resp.Teams[i] = Team{ID: t.ID, Name: t.Name}
	}
	return &ListTeamsOutput{Body: resp}, nil
}
