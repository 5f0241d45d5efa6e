package httperr

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/expense-server/internal/apperror"
)

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var statusErr huma.StatusError
	assert.ErrorAs(t, err, &statusErr)
	return statusErr.GetStatus()
}

func TestMap_KindToStatus(t *testing.T) {
	cases := []struct {
		kind   apperror.Kind
		status int
	}{
		{apperror.KindValidation, http.StatusBadRequest},
		{apperror.KindNotFound, http.StatusNotFound},
		{apperror.KindForbidden, http.StatusForbidden},
		{apperror.KindConflict, http.StatusConflict},
		{apperror.KindUnauthorized, http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			err := Map(apperror.New(tc.kind, "boom"), "fallback")
			assert.Equal(t, tc.status, statusOf(t, err))
			assert.Contains(t, err.Error(), "boom")
		})
	}
}

func TestMap_UntaggedErrorHidesDetail(t *testing.T) {
	err := Map(errors.New(`pq: password authentication failed for user "admin"`), "failed to list expenses")

	assert.Equal(t, http.StatusInternalServerError, statusOf(t, err))

	body, marshalErr := json.Marshal(err)
	assert.NoError(t, marshalErr)
	assert.Contains(t, string(body), "failed to list expenses")
	assert.NotContains(t, string(body), "password authentication")
	assert.NotContains(t, string(body), "admin")
}

func TestMap_WrappedAppError(t *testing.T) {
	cause := apperror.Wrap(apperror.KindConflict, "category already exists", errors.New("unique_violation"))
	err := Map(cause, "fallback")

	assert.Equal(t, http.StatusConflict, statusOf(t, err))

	body, marshalErr := json.Marshal(err)
	assert.NoError(t, marshalErr)
	assert.Contains(t, string(body), "category already exists")
	assert.NotContains(t, string(body), "unique_violation")
}

func TestMap_Nil(t *testing.T) {
	assert.NoError(t, Map(nil, "fallback"))
}

func TestRequireCaller(t *testing.T) {
	assert.NoError(t, RequireCaller(1))

	err := RequireCaller(0)
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))

	err = RequireCaller(-3)
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
}
