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

// CreateExpenseBody is the request body for creating an expense.
type CreateExpenseBody struct {
	CategoryID  int64  `json:"categoryID" required:"true" doc:"Category id, must belong to the caller"`
	TeamID      *int64 `json:"teamID,omitempty" doc:"Create the expense directly in this team"`
	Amount      string `json:"amount" required:"true" doc:"Decimal amount, positive, at most 2 decimal places"`
	Description string `json:"description" doc:"Free-form description"`
	ExpenseDate string `json:"expenseDate" required:"true" doc:"Expense date, YYYY-MM-DD, not in the future"`
}

// CreateExpenseInput is the Huma input for creating an expense.
type CreateExpenseInput struct {
	UserID int64 `header:"X-User-Id" doc:"Gateway-injected caller id"`
	Body   CreateExpenseBody
}

// CreateExpenseResponseBody is the response body for creating an expense.
type CreateExpenseResponseBody struct {
	ID int64 `json:"id" doc:"Id of the created expense"`
}

// CreateExpenseOutput is the Huma output for creating an expense.
type CreateExpenseOutput struct {
	Status int
	Body   CreateExpenseResponseBody
}

// CreateExpenseHandler handles POST /v1/expense.
type CreateExpenseHandler struct {
	Operator *operator.OperatorDelegator
}

// NewCreateExpenseHandler creates a new CreateExpenseHandler.
func NewCreateExpenseHandler(op *operator.OperatorDelegator) *CreateExpenseHandler {
	return &CreateExpenseHandler{Operator: op}
}

// Register registers the create expense endpoint with the Huma API.
func (h *CreateExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-expense",
		Method:        http.MethodPost,
		Path:          "/v1/expense",
		Summary:       "Create expense",
		Description:   "Records a new expense, personal or directly in a team.",
		Tags:          []string{"Expenses"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateExpenseHandler) handle(ctx context.Context, input *CreateExpenseInput) (*CreateExpenseOutput, error) {
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

	action := &actions.CreateExpense{
		CallerID:    input.UserID,
		CategoryID:  input.Body.CategoryID,
		TeamID:      input.Body.TeamID,
		Amount:      amount,
		Description: input.Body.Description,
		ExpenseDate: expenseDate,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperr.Map(err, "failed to create expense")
	}

	return &CreateExpenseOutput{
		Status: http.StatusCreated,
		Body:   CreateExpenseResponseBody{ID: action.ExpenseID},
	}, nil
}
