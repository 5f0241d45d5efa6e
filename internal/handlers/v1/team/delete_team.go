package team

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/expense-server/internal/operator"
	"github.com/carson-networks/expense-server/internal/operator/actions"
)

// DeleteTeamInput is the Huma input for deleting a team.
type DeleteTeamInput struct {
	UserID int64 `header:"X-User-Id" doc:"Gateway-injected caller id"`
	TeamID int64 `path:"teamID" doc:"Team id"`
}

// DeleteTeamOutput is the Huma output for deleting a team.
type DeleteTeamOutput struct {
	Status int
}

// DeleteTeamHandler handles DELETE /v1/team/{teamID}.
type DeleteTeamHandler struct {
	Operator *operator.OperatorDelegator
}

// NewDeleteTeamHandler creates a new DeleteTeamHandler.
func NewDeleteTeamHandler(op *operator.OperatorDelegator) *DeleteTeamHandler {
	return &DeleteTeamHandler{Operator: op}
}

// Register registers the delete team endpoint with the Huma API.
func (h *DeleteTeamHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-team",
		Method:      http.MethodDelete,
		Path:        "/v1/team/{teamID}",
		Summary:     "Delete team",
		Description: "Deletes the team. Member expenses revert to personal scope. Only the team's owner may delete it.",
		Tags:        []string{"Teams"},
	}, h.handle)
}

func (h *DeleteTeamHandler) handle(ctx context.Context, input *DeleteTeamInput) (*DeleteTeamOutput, error) {
	if err := httperr.RequireCaller(input.UserID); err != nil {
		return nil, err
	}

	action := &actions.DeleteTeam{
		CallerID: input.UserID,
		TeamID:   input.TeamID,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperr.Map(err, "failed to delete team")
	}

	return &DeleteTeamOutput{Status: http.StatusOK}, nil
}
