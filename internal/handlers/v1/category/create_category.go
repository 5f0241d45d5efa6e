package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/expense-server/internal/operator"
	"github.com/carson-networks/expense-server/internal/operator/actions"
)

// CreateCategoryBody is the request body for creating a category.
type CreateCategoryBody struct {
	Name string `json:"name" required:"true" doc:"Category name, unique per user"`
}

// CreateCategoryInput is the Huma input for creating a category.
type CreateCategoryInput struct {
	UserID int64 `header:"X-User-Id" doc:"Gateway-injected caller id"`
	Body   CreateCategoryBody
}

// CreateCategoryResponseBody is the response body for creating a category.
type CreateCategoryResponseBody struct {
	ID int64 `json:"id" doc:"Id of the created category"`
}

// CreateCategoryOutput is the Huma output for creating a category.
type CreateCategoryOutput struct {
	Status int
	Body   CreateCategoryResponseBody
}

// CreateCategoryHandler handles POST /v1/category.
type CreateCategoryHandler struct {
	Operator *operator.OperatorDelegator
}

// NewCreateCategoryHandler creates a new CreateCategoryHandler.
func NewCreateCategoryHandler(op *operator.OperatorDelegator) *CreateCategoryHandler {
	return &CreateCategoryHandler{Operator: op}
}

// Register registers the create category endpoint with the Huma API.
func (h *CreateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-category",
		Method:        http.MethodPost,
		Path:          "/v1/category",
		Summary:       "Create category",
		Description:   "Creates a category for the caller.",
		Tags:          []string{"Categories"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateCategoryHandler) handle(ctx context.Context, input *CreateCategoryInput) (*CreateCategoryOutput, error) {
	if err := httperr.RequireCaller(input.UserID); err != nil {
		return nil, err
	}

	action := &actions.CreateCategory{
		CallerID:     input.UserID,
		CategoryName: input.Body.Name,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperr.Map(err, "failed to create category")
	}

	return &CreateCategoryOutput{
		Status: http.StatusCreated,
		Body:   CreateCategoryResponseBody{ID: action.CategoryID},
	}, nil
}
