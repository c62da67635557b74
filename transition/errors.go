package transition

import "errors"

// Sentinel errors for transition-distribution construction and evaluation.
var (
	// ErrInvalidInput indicates a structural invariant violation at
	// construction time: fewer than one sub-distribution, or a nil
	// sub-distribution in the supplied slice.
	ErrInvalidInput = errors.New("transition: invalid input")

	// ErrOutOfDomain indicates a runtime query (PDF, Sample, Fit) with an
	// input that does not map to a valid sub-distribution index.
	ErrOutOfDomain = errors.New("transition: input out of domain")
)
