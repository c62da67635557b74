package mealy

import "errors"

// Sentinel errors for IOHMM construction and training.
var (
	// ErrInvalidInput indicates a construction-time invariant violation:
	// N < 1, a negative or non-normalized pi, or fewer than N transition
	// distributions supplied for A or B. Train also wraps it when eta lies
	// outside [0,1].
	ErrInvalidInput = errors.New("mealy: invalid input")

	// ErrEmptyObservation indicates Probability, Betas, or Train was
	// called with zero observations where at least one is required.
	ErrEmptyObservation = errors.New("mealy: empty observation sequence")
)
