package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/expense-server/internal/operator"
	"github.com/carson-networks/expense-server/internal/operator/actions"
)

// AttachReceiptInput is the Huma input for attaching a receipt.
type AttachReceiptInput struct {
	UserID    int64 `header:"X-User-Id" doc:"Gateway-injected caller id"`
	ExpenseID int64 `path:"expenseID" doc:"Expense id"`
}

// AttachReceiptResponseBody is the response body for attaching a receipt.
type AttachReceiptResponseBody struct {
	ReceiptKey string `json:"receiptKey" doc:"Object storage key assigned to the receipt"`
}

// AttachReceiptOutput is the Huma output for attaching a receipt.
type AttachReceiptOutput struct {
	Body AttachReceiptResponseBody
}

// AttachReceiptHandler handles POST /v1/expense/{expenseID}/receipt.
type AttachReceiptHandler struct {
	Operator *operator.OperatorDelegator
}

// NewAttachReceiptHandler creates a new AttachReceiptHandler.
func NewAttachReceiptHandler(op *operator.OperatorDelegator) *AttachReceiptHandler {
	return &AttachReceiptHandler{Operator: op}
}

// Register registers the attach and detach receipt endpoints with the Huma API.
func (h *AttachReceiptHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "attach-receipt",
		Method:      http.MethodPost,
		Path:        "/v1/expense/{expenseID}/receipt",
		Summary:     "Attach receipt",
		Description: "Assigns a fresh receipt key to an expense, replacing any previous one.",
		Tags:        []string{"Expenses"},
	}, h.handleAttach)
	huma.Register(api, huma.Operation{
		OperationID: "detach-receipt",
		Method:      http.MethodDelete,
		Path:        "/v1/expense/{expenseID}/receipt",
		Summary:     "Detach receipt",
		Description: "Clears the receipt key from an expense.",
		Tags:        []string{"Expenses"},
	}, h.handleDetach)
}

func (h *AttachReceiptHandler) handleAttach(ctx context.Context, input *AttachReceiptInput) (*AttachReceiptOutput, error) {
	if err := httperr.RequireCaller(input.UserID); err != nil {
		return nil, err
	}

	action := &actions.AttachReceipt{
		CallerID:        input.UserID,
		TargetExpenseID: input.ExpenseID,
	}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperr.Map(err, "failed to attach receipt")
	}

	return &AttachReceiptOutput{
		Body: AttachReceiptResponseBody{ReceiptKey: action.ReceiptKey.String()},
	}, nil
}

// DetachReceiptOutput is the Huma output for detaching a receipt.
type DetachReceiptOutput struct {
	Status int
}

func (h *AttachReceiptHandler) handleDetach(ctx context.Context, input *AttachReceiptInput) (*DetachReceiptOutput, error) {
	if err := httperr.RequireCaller(input.UserID); err != nil {
		return nil, err
	}

	action := &actions.AttachReceipt{
		CallerID:        input.UserID,
		TargetExpenseID: input.ExpenseID,
		Detach:          true,
	}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperr.Map(err, "failed to detach receipt")
	}

	return &DetachReceiptOutput{Status: http.StatusOK}, nil
}
