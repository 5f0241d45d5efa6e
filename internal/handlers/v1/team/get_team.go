package team

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/expense-server/internal/service"
)

// GetTeamInput is the Huma input for fetching one team.
type GetTeamInput struct {
	UserID int64 `header:"X-User-Id" doc:"Gateway-injected caller id"`
	TeamID int64 `path:"teamID" doc:"Team id"`
}

// GetTeamResponseBody is the response body for fetching one team.
type GetTeamResponseBody struct {
	ID      int64    `json:"id" doc:"Team id"`
	Name    string   `json:"name" doc:"Team name"`
	OwnerID int64    `json:"ownerID" doc:"Id of the user who created the team"`
	Members []Member `json:"members" doc:"Current memberships"`
}

// GetTeamOutput is the Huma output for fetching one team.
type GetTeamOutput struct {
	Body GetTeamResponseBody
}

// teamGetter is the interface for fetching team details.
type teamGetter interface {
	GetTeam(ctx context.Context, userID, teamID int64) (*service.TeamDetails, error)
}

// GetTeamHandler handles GET /v1/team/{teamID}.
type GetTeamHandler struct {
	TeamService teamGetter
}

// NewGetTeamHandler creates a new GetTeamHandler.
func NewGetTeamHandler(svc teamGetter) *GetTeamHandler {
	return &GetTeamHandler{TeamService: svc}
}

// Register registers the get team endpoint with the Huma API.
func (h *GetTeamHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-team",
		Method:      http.MethodGet,
		Path:        "/v1/team/{teamID}",
		Summary:     "Get team",
		Description: "Returns a team with its member list. The caller must be a member.",
		Tags:        []string{"Teams"},
	}, h.handle)
}

func (h *GetTeamHandler) handle(ctx context.Context, input *GetTeamInput) (*GetTeamOutput, error) {
	if err := httperr.RequireCaller(input.UserID); err != nil {
		return nil, err
	}

	details, err := h.TeamService.GetTeam(ctx, input.UserID, input.TeamID)
	if err != nil {
		return nil, httperr.Map(err, "failed to get team")
	}

	resp := GetTeamResponseBody{
		ID:      details.ID,
		Name:    details.Name,
		OwnerID: details.OwnerID,
		Members: make([]Member, len(details.Members)),
	}
	for i, m := range details.Members {
		resp.Members[i] = Member{UserID: m.UserID, Role: string(m.Role)}
	}
	return &GetTeamOutput{Body: resp}, nil
}
