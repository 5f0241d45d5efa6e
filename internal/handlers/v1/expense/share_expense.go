package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/expense-server/internal/operator"
	"github.com/carson-networks/expense-server/internal/operator/actions"
)

// ShareExpenseBody is the request body for sharing an expense with a team.
type ShareExpenseBody struct {
	TeamID int64  `json:"teamID" required:"true" doc:"Destination team id"`
	Mode   string `json:"mode" required:"true" enum:"MOVE,COPY_REFERENCE" doc:"MOVE re-scopes the expense, COPY_REFERENCE leaves the original personal and inserts a team copy"`
}

// ShareExpenseInput is the Huma input for sharing an expense.
type ShareExpenseInput struct {
	UserID    int64 `header:"X-User-Id" doc:"Gateway-injected caller id"`
	ExpenseID int64 `path:"expenseID" doc:"Expense id"`
	Body      ShareExpenseBody
}

// ShareExpenseResponseBody is the response body for sharing an expense.
type ShareExpenseResponseBody struct {
	ID int64 `json:"id" doc:"Id of the team-scoped expense: the original for MOVE, the copy for COPY_REFERENCE"`
}

// ShareExpenseOutput is the Huma output for sharing an expense.
type ShareExpenseOutput struct {
	Body ShareExpenseResponseBody
}

// ShareExpenseHandler handles POST /v1/expense/{expenseID}/share.
type ShareExpenseHandler struct {
	Operator *operator.OperatorDelegator
}

// NewShareExpenseHandler creates a new ShareExpenseHandler.
func NewShareExpenseHandler(op *operator.OperatorDelegator) *ShareExpenseHandler {
	return &ShareExpenseHandler{Operator: op}
}

// Register registers the share expense endpoint with the Huma API.
func (h *ShareExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "share-expense",
		Method:      http.MethodPost,
		Path:        "/v1/expense/{expenseID}/share",
		Summary:     "Share expense with a team",
		Description: "Moves or copies a personal expense into a team the caller belongs to.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

func (h *ShareExpenseHandler) handle(ctx context.Context, input *ShareExpenseInput) (*ShareExpenseOutput, error) {
	if err := httperr.RequireCaller(input.UserID); err != nil {
		return nil, err
	}

	mode, ok := actions.ParseShareMode(input.Body.Mode)
	if !ok {
		return nil, huma.NewError(http.StatusBadRequest, "mode must be MOVE or COPY_REFERENCE")
	}

	action := &actions.ShareExpense{
		CallerID:        input.UserID,
		TargetExpenseID: input.ExpenseID,
		TeamID:          input.Body.TeamID,
		Mode:            mode,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperr.Map(err, "failed to share expense")
	}

	return &ShareExpenseOutput{Body: ShareExpenseResponseBody{ID: action.ExpenseID}}, nil
}
