package actions

import (
	"context"
	"strings"

	"github.com/carson-networks/expense-server/internal/apperror"
	"github.com/carson-networks/expense-server/internal/storage"
)

// CreateCategory adds a spending category for the caller. Names are unique
// per user.
type CreateCategory struct {
	CallerID     int64
	CategoryName string

	CategoryID int64
}

func (a *CreateCategory) Name() string { return "CreateCategory" }

func (a *CreateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	name := strings.TrimSpace(a.CategoryName)
	if name == "" {
		return apperror.Validation("category name must not be blank")
	}

	existing, err := writer.Categories.FindByUserAndName(ctx, a.CallerID, name)
	if err != nil {
		return err
	}
	if existing != nil {
		return apperror.Conflict("category already exists")
	}

	id, err := writer.Categories.Insert(ctx, a.CallerID, name)
	if err != nil {
		return err
	}

	a.CategoryID = id
	return nil
}
