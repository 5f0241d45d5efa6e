package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/expense-server/internal/operator"
	"github.com/carson-networks/expense-server/internal/operator/actions"
)

// DeleteCategoryInput is the Huma input for deleting a category.
type DeleteCategoryInput struct {
	UserID     int64 `header:"X-User-Id" doc:"Gateway-injected caller id"`
	CategoryID int64 `path:"categoryID" doc:"Category id"`
}

// DeleteCategoryOutput is the Huma output for deleting a category.
type DeleteCategoryOutput struct {
	Status int
}

// DeleteCategoryHandler handles DELETE /v1/category/{categoryID}.
type DeleteCategoryHandler struct {
	Operator *operator.OperatorDelegator
}

// NewDeleteCategoryHandler creates a new DeleteCategoryHandler.
func NewDeleteCategoryHandler(op *operator.OperatorDelegator) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{Operator: op}
}

// Register registers the delete category endpoint with the Huma API.
func (h *DeleteCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-category",
		Method:      http.MethodDelete,
		Path:        "/v1/category/{categoryID}",
		Summary:     "Delete category",
		Description: "Deletes one of the caller's categories. Categories with expenses attached cannot be deleted.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *DeleteCategoryHandler) handle(ctx context.Context, input *DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	if err := httperr.RequireCaller(input.UserID); err != nil {
		return nil, err
	}

	action := &actions.DeleteCategory{
		CallerID:         input.UserID,
		TargetCategoryID: input.CategoryID,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperr.Map(err, "failed to delete category")
	}

	return &DeleteCategoryOutput{Status: http.StatusOK}, nil
}
