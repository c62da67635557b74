package distribution

import "errors"

// Sentinel errors for distribution construction and evaluation.
var (
	// ErrInvalidInput indicates a structural invariant violation at
	// construction time: wrong length, negative probability, non-positive
	// sigma, probabilities not summing to one within Epsilon, n < 1, or
	// eta outside [0,1].
	ErrInvalidInput = errors.New("distribution: invalid input")

	// ErrOutOfDomain indicates a runtime PDF query at a value outside the
	// distribution's declared support. Fit rejects out-of-domain
	// observations with ErrInvalidInput instead.
	ErrOutOfDomain = errors.New("distribution: value out of domain")
)
