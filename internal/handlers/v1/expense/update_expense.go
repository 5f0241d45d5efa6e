package expense

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/expense-server/internal/operator"
	"github.com/carson-networks/expense-server/internal/operator/actions"
)

// UpdateExpenseBody is the request body for updating an expense.
type UpdateExpenseBody struct {
	CategoryID  int64  `json:"categoryID" required:"true" doc:"Category id, must belong to the expense's owner"`
	Amount      string `json:"amount" required:"true" doc:"Decimal amount, positive, at most 2 decimal places"`
	Description string `json:"description" doc:"Free-form description"`
	ExpenseDate string `json:"expenseDate" required:"true" doc:"Expense date, YYYY-MM-DD, not in the future"`
}

// UpdateExpenseInput is the Huma input for updating an expense.
type UpdateExpenseInput struct {
	UserID    int64 `header:"X-User-Id" doc:"Gateway-injected caller id"`
	ExpenseID int64 `path:"expenseID" doc:"Expense id"`
	Body      UpdateExpenseBody
}

// UpdateExpenseOutput is the Huma output for updating an expense.
type UpdateExpenseOutput struct {
	Status int
}

// UpdateExpenseHandler handles PUT /v1/expense/{expenseID}.
type UpdateExpenseHandler struct {
	Operator *operator.OperatorDelegator
}

// NewUpdateExpenseHandler creates a new UpdateExpenseHandler.
func NewUpdateExpenseHandler(op *operator.OperatorDelegator) *UpdateExpenseHandler {
	return &UpdateExpenseHandler{Operator: op}
}

// Register registers the update expense endpoint with the Huma API.
func (h *UpdateExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-expense",
		Method:      http.MethodPut,
		Path:        "/v1/expense/{expenseID}",
		Summary:     "Update expense",
		Description: "Updates an expense's category, amount, description, and date.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

func (h *UpdateExpenseHandler) handle(ctx context.Context, input *UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	if err := httperr.RequireCaller(input.UserID); err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	expenseDate, err := time.Parse(time.DateOnly, input.Body.ExpenseDate)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid expenseDate", err)
	}

	action := &actions.UpdateExpense{
		CallerID:        input.UserID,
		TargetExpenseID: input.ExpenseID,
		CategoryID:      input.Body.CategoryID,
		Amount:          amount,
		Description:     input.Body.Description,
		ExpenseDate:     expenseDate,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperr.Map(err, "failed to update expense")
	}

	return &UpdateExpenseOutput{Status: http.StatusOK}, nil
}
