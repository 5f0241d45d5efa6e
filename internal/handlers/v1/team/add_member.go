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

// AddMemberBody is the request body for adding a team member.
type AddMemberBody struct {
	UserID int64  `json:"userID" required:"true" doc:"Id of the user to add"`
	Role   string `json:"role" required:"true" enum:"OWNER,ADMIN,MEMBER,VIEWER" doc:"Role to grant"`
}

// AddMemberInput is the Huma input for adding a team member.
type AddMemberInput struct {
	UserID int64 `header:"X-User-Id" doc:"Gateway-injected caller id"`
	TeamID int64 `path:"teamID" doc:"Team id"`
	Body   AddMemberBody
}

// AddMemberOutput is the Huma output for adding a team member.
type AddMemberOutput struct {
	Status int
}

// AddMemberHandler handles POST /v1/team/{teamID}/member.
type AddMemberHandler struct {
	Operator *operator.OperatorDelegator
}

// NewAddMemberHandler creates a new AddMemberHandler.
func NewAddMemberHandler(op *operator.OperatorDelegator) *AddMemberHandler {
	return &AddMemberHandler{Operator: op}
}

// Register registers the add member endpoint with the Huma API.
func (h *AddMemberHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "add-team-member",
		Method:        http.MethodPost,
		Path:          "/v1/team/{teamID}/member",
		Summary:       "Add team member",
		Description:   "Adds a user to the team. Requires OWNER or ADMIN.",
		Tags:          []string{"Teams"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *AddMemberHandler) handle(ctx context.Context, input *AddMemberInput) (*AddMemberOutput, error) {
	if err := httperr.RequireCaller(input.UserID); err != nil {
		return nil, err
	}

	role, ok := storageteam.ParseRole(input.Body.Role)
	if !ok {
		return nil, huma.NewError(http.StatusBadRequest, "role must be OWNER, ADMIN, MEMBER, or VIEWER")
	}

	action := &actions.AddMember{
		CallerID:     input.UserID,
		TeamID:       input.TeamID,
		TargetUserID: input.Body.UserID,
		Role:         role,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperr.Map(err, "failed to add team member")
	}

	return &AddMemberOutput{Status: http.StatusCreated}, nil
}
