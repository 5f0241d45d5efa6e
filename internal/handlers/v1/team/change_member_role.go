package team

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/expense-server/internal/operator"
	"github.com/carson-networks/expense-server/internal/operator/actions"
	storageteam "github.com/carson-networks/expense-server/internal/storage/team"
)

// ChangeMemberRoleBody is the request body for changing a member's role.
type ChangeMemberRoleBody struct {
	Role string `json:"role" required:"true" enum:"OWNER,ADMIN,MEMBER,VIEWER" doc:"New role"`
}

// ChangeMemberRoleInput is the Huma input for changing a member's role.
type ChangeMemberRoleInput struct {
	UserID       int64 `header:"X-User-Id" doc:"Gateway-injected caller id"`
	TeamID       int64 `path:"teamID" doc:"Team id"`
	TargetUserID int64 `path:"userID" doc:"Id of the member whose role changes"`
	Body         ChangeMemberRoleBody
}

// ChangeMemberRoleOutput is the Huma output for changing a member's role.
type ChangeMemberRoleOutput struct {
	Status int
}

// ChangeMemberRoleHandler handles PUT /v1/team/{teamID}/member/{userID}/role.
type ChangeMemberRoleHandler struct {
	Operator *operator.OperatorDelegator
}

// NewChangeMemberRoleHandler creates a new ChangeMemberRoleHandler.
func NewChangeMemberRoleHandler(op *operator.OperatorDelegator) *ChangeMemberRoleHandler {
	return &ChangeMemberRoleHandler{Operator: op}
}

// Register registers the change member role endpoint with the Huma API.
func (h *ChangeMemberRoleHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "change-member-role",
		Method:      http.MethodPut,
		Path:        "/v1/team/{teamID}/member/{userID}/role",
		Summary:     "Change member role",
		Description: "Changes a member's role. Requires OWNER or ADMIN; granting OWNER requires OWNER. The last owner cannot be demoted.",
		Tags:        []string{"Teams"},
	}, h.handle)
}

func (h *ChangeMemberRoleHandler) handle(ctx context.Context, input *ChangeMemberRoleInput) (*ChangeMemberRoleOutput, error) {
	if err := httperr.RequireCaller(input.UserID); err != nil {
		return nil, err
	}

	role, ok := storageteam.ParseRole(input.Body.Role)
	if !ok {
		return nil, huma.NewError(http.StatusBadRequest, "role must be OWNER, ADMIN, MEMBER, or VIEWER")
	}

	action := &actions.ChangeMemberRole{
		CallerID:     input.UserID,
		TeamID:       input.TeamID,
		TargetUserID: input.TargetUserID,
		NewRole:      role,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperr.Map(err, "failed to change member role")
	}

	return &ChangeMemberRoleOutput{Status: http.StatusOK}, nil
}
