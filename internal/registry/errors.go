package registry

import "errors"

var (
	// ErrNothingStaged is returned when activation is requested with no
	// staged set.
	ErrNothingStaged = errors.New("nothing staged")
	// ErrStaleStaged is returned when the staged set was built against a
	// version that is no longer active. Re-stage to resolve.
	ErrStaleStaged = errors.New("staged set is stale")
	// ErrValidationFailed is returned when a merge produces an invalid set.
	ErrValidationFailed = errors.New("validation failed")
	// ErrConcurrentUpdate is returned when a merge keeps losing the publish
	// race after retries.
	ErrConcurrentUpdate = errors.New("concurrent registry update")
	// ErrNoSnapshot is returned by Bootstrap when neither persisted state
	// nor seed records are available. There is no safe default registry.
	ErrNoSnapshot = errors.New("no registry snapshot available")
	// ErrNotBootstrapped is returned when a mutation arrives before the
	// first snapshot exists.
	ErrNotBootstrapped = errors.New("registry not bootstrapped")
)
