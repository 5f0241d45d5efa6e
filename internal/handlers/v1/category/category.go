package category

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/expense-server/internal/service"
)

// Category is the API response model for a category.
type Category struct {
	ID        int64  `json:"id" doc:"Category id"`
	Name      string `json:"name" doc:"Category name, unique per user"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
}

// ListCategoriesInput is the Huma input for listing the caller's categories.
type ListCategoriesInput struct {
	UserID int64 `header:"X-User-Id" doc:"Gateway-injected caller id"`
}

// ListCategoriesResponseBody is the response body for listing categories.
type ListCategoriesResponseBody struct {
	Categories []Category `json:"categories" doc:"The caller's categories, sorted by name"`
}

// ListCategoriesOutput is the Huma output for listing categories.
type ListCategoriesOutput struct {
	Body ListCategoriesResponseBody
}

// categoryLister is the interface for listing a user's categories.
type categoryLister interface {
	ListCategories(ctx context.Context, userID int64) ([]service.Category, error)
}

// ListCategoriesHandler handles GET /v1/category.
type ListCategoriesHandler struct {
	CategoryService categoryLister
}

// NewListCategoriesHandler creates a new ListCategoriesHandler.
func NewListCategoriesHandler(svc categoryLister) *ListCategoriesHandler {
	return &ListCategoriesHandler{CategoryService: svc}
}

// Register registers the list categories endpoint with the Huma API.
func (h *ListCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/v1/category",
		Summary:     "List categories",
		Description: "Returns the caller's categories sorted by name.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *ListCategoriesHandler) handle(ctx context.Context, input *ListCategoriesInput) (*ListCategoriesOutput, error) {
	if err := httperr.RequireCaller(input.UserID); err != nil {
		return nil, err
	}

	categories, err := h.CategoryService.ListCategories(ctx, input.UserID)
	if err != nil {
		return nil, httperr.Map(err, "failed to list categories")
	}

	resp := ListCategoriesResponseBody{Categories: make([]Category, len(categories))}
	for i, c := range categories {
		resp.Categories[i] = Category{
			ID:        c.ID,
			Name:      c.Name,
			CreatedAt: c.CreatedAt.Format(time.RFC3339),
		}
	}
	return &ListCategoriesOutput{Body: resp}, nil
}
