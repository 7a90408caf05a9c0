package http

import (
	"errors"
	"net/http"

	"intent-classifier/internal/intent"
	"intent-classifier/internal/registry"
	pkgErrors "intent-classifier/pkg/errors"
	"intent-classifier/pkg/response"
)

// mapError translates domain and registry errors into HTTP errors from
// pkg/errors. Validation failures never come through here; they carry their
// report through response.ValidationError instead.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, intent.ErrIntentNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "intent not found")
	case errors.Is(err, intent.ErrNoActiveSnapshot):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "registry has no active snapshot yet")
	case errors.Is(err, intent.ErrEmptyUpload):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "upload contains no rows")
	case errors.Is(err, intent.ErrSheetsDisabled):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "sheets import is not configured")
	case errors.Is(err, intent.ErrSheetsUnavailable):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, err.Error())
	case errors.Is(err, registry.ErrNothingStaged):
		return pkgErrors.NewHTTPError(http.StatusConflict, "nothing staged, upload first")
	case errors.Is(err, registry.ErrStaleStaged):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, registry.ErrConcurrentUpdate):
		return pkgErrors.NewHTTPError(http.StatusConflict, "registry busy, retry the update")
	case errors.Is(err, registry.ErrNotBootstrapped):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "registry not bootstrapped")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, response.DefaultErrorMessage)
	}
}
