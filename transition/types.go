package transition

import "github.com/katalvlaran/iohmm/rng"

// WeightedObservation pairs an (input, output) observation with a fit
// weight — the "weighted triple" (x, y, w) of spec §4.5/§4.6.4.
type WeightedObservation[I, O any] struct {
	Input  I
	Output O
	Weight float64
}

// TransitionDistribution is the joint distribution over (I,O) the Mealy
// engine composes for both its transition (A_i) and emission (B_i)
// components (spec §4.5). Sampling a pair without a given input is left
// policy-defined by the spec and is intentionally not part of this
// interface; only the input-conditioned form is required.
type TransitionDistribution[I, O any] interface {
	// PDF returns P(y | x). It returns ErrOutOfDomain if x does not map
	// to a valid sub-distribution.
	PDF(x I, y O) (float64, error)

	// Sample draws y ~ P(.|x), consuming r (or the default RNG if nil).
	Sample(x I, r rng.RNG) (O, error)

	// Fit partitions weighted by input and fits each input's
	// sub-distribution independently. Every per-input slice must itself
	// carry weights summing to one within distribution.Epsilon.
	Fit(weighted []WeightedObservation[I, O], eta float64) error

	// FitUnnormalized behaves like Fit without requiring per-input
	// slices to sum to one; each slice is locally renormalized.
	FitUnnormalized(weighted []WeightedObservation[I, O], eta float64) error

	// Randomize redraws every per-input sub-distribution from scratch
	// using r (or the default RNG if nil).
	Randomize(r rng.RNG) error
}
