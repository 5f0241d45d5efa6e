package team

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/expense-server/internal/operator"
	"github.com/carson-networks/expense-server/internal/operator/actions"
)

// CreateTeamBody is the request body for creating a team.
type CreateTeamBody struct {
	Name string `json:"name" required:"true" doc:"Team name"`
}

// CreateTeamInput is the Huma input for creating a team.
type CreateTeamInput struct {
	UserID int64 `header:"X-User-Id" doc:"Gateway-injected caller id"`
	Body   CreateTeamBody
}

// CreateTeamResponseBody is the response body for creating a team.
type CreateTeamResponseBody struct {
	ID int64 `json:"id" doc:"Id of the created team"`
}

// CreateTeamOutput is the Huma output for creating a team.
type CreateTeamOutput struct {
	Status int
	Body   CreateTeamResponseBody
}

// CreateTeamHandler handles POST /v1/team.
type CreateTeamHandler struct {
	Operator *operator.OperatorDelegator
}

// NewCreateTeamHandler creates a new CreateTeamHandler.
func NewCreateTeamHandler(op *operator.OperatorDelegator) *CreateTeamHandler {
	return &CreateTeamHandler{Operator: op}
}

// Register registers the create team endpoint with the Huma API.
func (h *CreateTeamHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-team",
		Method:        http.MethodPost,
		Path:          "/v1/team",
		Summary:       "Create team",
		Description:   "Creates a team with the caller as its OWNER.",
		Tags:          []string{"Teams"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateTeamHandler) handle(ctx context.Context, input *CreateTeamInput) (*CreateTeamOutput, error) {
	if err := httperr.RequireCaller(input.UserID); err != nil {
		return nil, err
	}

	action := &actions.CreateTeam{
		OwnerID:  input.UserID,
		TeamName: input.Body.Name,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperr.Map(err, "failed to create team")
	}

	return &CreateTeamOutput{
		Status: http.StatusCreated,
		Body:   CreateTeamResponseBody{ID: action.TeamID},
	}, nil
}
