package team

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/expense-server/internal/operator"
	"github.com/carson-networks/expense-server/internal/operator/actions"
)

// RemoveMemberInput is the Huma input for removing a team member.
type RemoveMemberInput struct {
	UserID       int64 `header:"X-User-Id" doc:"Gateway-injected caller id"`
	TeamID       int64 `path:"teamID" doc:"Team id"`
	TargetUserID int64 `path:"userID" doc:"Id of the member to remove"`
}

// RemoveMemberOutput is the Huma output for removing a team member.
type RemoveMemberOutput struct {
	Status int
}

// RemoveMemberHandler handles DELETE /v1/team/{teamID}/member/{userID}.
type RemoveMemberHandler struct {
	Operator *operator.OperatorDelegator
}

// NewRemoveMemberHandler creates a new RemoveMemberHandler.
func NewRemoveMemberHandler(op *operator.OperatorDelegator) *RemoveMemberHandler {
	return &RemoveMemberHandler{Operator: op}
}

// Register registers the remove member endpoint with the Huma API.
func (h *RemoveMemberHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "remove-team-member",
		Method:      http.MethodDelete,
		Path:        "/v1/team/{teamID}/member/{userID}",
		Summary:     "Remove team member",
		Description: "Removes a member from the team. Members may remove themselves; removing others requires OWNER or ADMIN. A sole OWNER cannot leave.",
		Tags:        []string{"Teams"},
	}, h.handle)
}

func (h *RemoveMemberHandler) handle(ctx context.Context, input *RemoveMemberInput) (*RemoveMemberOutput, error) {
	if err := httperr.RequireCaller(input.UserID); err != nil {
		return nil, err
	}

	action := &actions.RemoveMember{
		CallerID:     input.UserID,
		TeamID:       input.TeamID,
		TargetUserID: input.TargetUserID,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperr.Map(err, "failed to remove team member")
	}

	return &RemoveMemberOutput{Status: http.StatusOK}, nil
}
