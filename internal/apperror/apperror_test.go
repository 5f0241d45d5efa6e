package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf_Tagged(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("bad cursor")))
	assert.Equal(t, KindNotFound, KindOf(NotFound("team not found")))
	assert.Equal(t, KindForbidden, KindOf(Forbidden("not a member")))
	assert.Equal(t, KindConflict, KindOf(Conflict("already a member")))
	assert.Equal(t, KindUnauthorized, KindOf(Unauthorized("no identity")))
}

func TestKindOf_Untagged(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(errors.New("connection refused")))
	assert.Equal(t, KindInternal, KindOf(nil))
}

func TestKindOf_Wrapped(t *testing.T) {
	cause := errors.New("pq: duplicate key value")
	err := Wrap(KindConflict, "category already exists", cause)

	wrapped := fmt.Errorf("create category: %w", err)
	assert.Equal(t, KindConflict, KindOf(wrapped))
	assert.True(t, errors.Is(wrapped, cause))
}

func TestError_MessageExcludesCauseForClients(t *testing.T) {
	err := Wrap(KindInternal, "failed to list expenses", errors.New("dial tcp: refused"))
	assert.Equal(t, "failed to list expenses", err.Message)
	assert.Contains(t, err.Error(), "dial tcp")
}

func TestIsKind(t *testing.T) {
	assert.True(t, IsKind(Conflict("x"), KindConflict))
	assert.False(t, IsKind(Conflict("x"), KindForbidden))
}
