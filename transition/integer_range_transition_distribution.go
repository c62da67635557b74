package transition

import "github.com/katalvlaran/iohmm/distribution"

// NewIntegerRangeTransitionDistribution builds a FiniteTransitionDistribution
// whose input type is int shifted onto [lower, upper] (spec §4.5:
// "IntegerRangeTransitionDistribution<O>"), one sub-distribution per
// integer input, built by calling gen(input) for input in [lower, upper].
func NewIntegerRangeTransitionDistribution[O any](lower, upper int, gen func(input int) distribution.Distribution[O]) (*FiniteTransitionDistribution[int, O], error) {
	if upper < lower {
		return nil, ErrInvalidInput
	}
	idx := distribution.ShiftedIndexMap(lower, upper)
	n := upper - lower + 1
	return NewFiniteTransitionDistributionFromGenerator[int, O](n, idx, func(k int) distribution.Distribution[O] {
		return gen(idx.FromIndex(k))
	})
}
