// Package httperr translates service errors into Huma HTTP errors.
package httperr

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/expense-server/internal/apperror"
)

// Map converts an error into a huma error with the status matching its
// kind. Only the apperror message is serialized; the cause chain stays
// server-side. Untagged errors become a generic 500 with the fallback
// message and are logged, since nothing downstream will see them.
func Map(err error, fallback string) error {
	if err == nil {
		return nil
	}

	status := http.StatusInternalServerError
	message := fallback

	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		switch appErr.Kind {
		case apperror.KindValidation:
			status = http.StatusBadRequest
		case apperror.KindNotFound:
			status = http.StatusNotFound
		case apperror.KindForbidden:
			status = http.StatusForbidden
		case apperror.KindConflict:
			status = http.StatusConflict
		case apperror.KindUnauthorized:
			status = http.StatusUnauthorized
		}
		if status != http.StatusInternalServerError {
			message = appErr.Message
		}
	}

	if status == http.StatusInternalServerError {
		logrus.WithError(err).Error(fallback)
	}
	return huma.NewError(status, message)
}

// RequireCaller checks the gateway-injected X-User-Id header value.
// Authentication happens upstream; an absent or non-positive id means the
// request never passed the gateway.
func RequireCaller(userID int64) error {
	if userID <= 0 {
		return huma.NewError(http.StatusUnauthorized, "missing or invalid X-User-Id header")
	}
	return nil
}
