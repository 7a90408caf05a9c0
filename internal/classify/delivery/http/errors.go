package http

import (
	"errors"
	"net/http"

	"intent-classifier/internal/classify"
	pkgErrors "intent-classifier/pkg/errors"
	"intent-classifier/pkg/response"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, classify.ErrNoActiveSnapshot):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "classifier has no active registry yet")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, response.DefaultErrorMessage)
	}
}
