package classify

import "errors"

// Domain-specific errors for the classify package.
var (
	ErrNoActiveSnapshot = errors.New("no active registry snapshot")
)
