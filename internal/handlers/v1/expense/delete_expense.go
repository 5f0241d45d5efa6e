package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/expense-server/internal/operator"
	"github.com/carson-networks/expense-server/internal/operator/actions"
)

// DeleteExpenseInput is the Huma input for deleting an expense.
type DeleteExpenseInput struct {
	UserID    int64 `header:"X-User-Id" doc:"Gateway-injected caller id"`
	ExpenseID int64 `path:"expenseID" doc:"Expense id"`
}

// DeleteExpenseOutput is the Huma output for deleting an expense.
type DeleteExpenseOutput struct {
	Status int
}

// DeleteExpenseHandler handles DELETE /v1/expense/{expenseID}.
type DeleteExpenseHandler struct {
	Operator *operator.OperatorDelegator
}

// NewDeleteExpenseHandler creates a new DeleteExpenseHandler.
func NewDeleteExpenseHandler(op *operator.OperatorDelegator) *DeleteExpenseHandler {
	return &DeleteExpenseHandler{Operator: op}
}

// Register registers the delete expense endpoint with the Huma API.
func (h *DeleteExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-expense",
		Method:      http.MethodDelete,
		Path:        "/v1/expense/{expenseID}",
		Summary:     "Delete expense",
		Description: "Deletes an expense.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

func (h *DeleteExpenseHandler) handle(ctx context.Context, input *DeleteExpenseInput) (*DeleteExpenseOutput, error) {
	if err := httperr.RequireCaller(input.UserID); err != nil {
		return nil, err
	}

	action := &actions.DeleteExpense{
		CallerID:        input.UserID,
		TargetExpenseID: input.ExpenseID,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperr.Map(err, "failed to delete expense")
	}

	return &DeleteExpenseOutput{Status: http.StatusOK}, nil
}
