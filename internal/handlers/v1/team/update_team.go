package team

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/expense-server/internal/operator"
	"github.com/carson-networks/expense-server/internal/operator/actions"
)

// UpdateTeamBody is the request body for renaming a team.
type UpdateTeamBody struct {
	Name string `json:"name" required:"true" doc:"New team name"`
}

// UpdateTeamInput is the Huma input for renaming a team.
type UpdateTeamInput struct {
	UserID int64 `header:"X-User-Id" doc:"Gateway-injected caller id"`
	TeamID int64 `path:"teamID" doc:"Team id"`
	Body   UpdateTeamBody
}

// UpdateTeamOutput is the Huma output for renaming a team.
type UpdateTeamOutput struct {
	Status int
}

// UpdateTeamHandler handles PUT /v1/team/{teamID}.
type UpdateTeamHandler struct {
	Operator *operator.OperatorDelegator
}

// NewUpdateTeamHandler creates a new UpdateTeamHandler.
func NewUpdateTeamHandler(op *operator.OperatorDelegator) *UpdateTeamHandler {
	return &UpdateTeamHandler{Operator: op}
}

// Register registers the update team endpoint with the Huma API.
func (h *UpdateTeamHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-team",
		Method:      http.MethodPut,
		Path:        "/v1/team/{teamID}",
		Summary:     "Rename team",
		Description: "Renames the team. Requires OWNER or ADMIN.",
		Tags:        []string{"Teams"},
	}, h.handle)
}

func (h *UpdateTeamHandler) handle(ctx context.Context, input *UpdateTeamInput) (*UpdateTeamOutput, error) {
	if err := httperr.RequireCaller(input.UserID); err != nil {
		return nil, err
	}

	action := &actions.UpdateTeamName{
		CallerID: input.UserID,
		TeamID:   input.TeamID,
		NewName:  input.Body.Name,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperr.Map(err, "failed to rename team")
	}

	return &UpdateTeamOutput{Status: http.StatusOK}, nil
}
