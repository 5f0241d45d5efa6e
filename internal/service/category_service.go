package service

import (
	"context"
	"time"

	"github.com/carson-networks/expense-server/internal/storage"
)

// Category is a category in the service layer.
type Category struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

// CategoryService handles category read operations.
type CategoryService struct {
	reader *storage.Reader
}

func NewCategoryService(reader *storage.Reader) *CategoryService {
	return &CategoryService{reader: reader}
}

// ListCategories returns the user's categories ordered by name.
func (s *CategoryService) ListCategories(ctx context.Context, userID int64) ([]Category, error) {
	rows, err := s.reader.Categories.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	categories := make([]Category, len(rows))
	for i, row := range rows {
		categories[i] = Category{ID: row.ID, Name: row.Name, CreatedAt: row.CreatedAt}
	}
	return categories, nil
}
