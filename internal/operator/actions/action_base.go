package actions

import (
	"context"

	"github.com/carson-networks/expense-server/internal/storage"
)

// IAction is one transactional write operation. Perform runs inside a
// single transaction owned by the operator; returning an error rolls the
// whole operation back.
type IAction interface {
	Name() string
	Perform(ctx context.Context, writer *storage.Writer) error
}
