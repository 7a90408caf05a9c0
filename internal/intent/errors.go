package intent

import "errors"

// Domain-specific errors for the intent package.
var (
	ErrIntentNotFound    = errors.New("intent not found")
	ErrNoActiveSnapshot  = errors.New("no active registry snapshot")
	ErrSheetsDisabled    = errors.New("sheets import is not configured")
	ErrSheetsUnavailable = errors.New("sheets source unavailable")
	ErrEmptyUpload       = errors.New("upload contains no rows")
	ErrRejectedUpload    = errors.New("upload rejected, nothing staged")
	ErrRejectedRecord    = errors.New("record rejected, registry unchanged")
)
