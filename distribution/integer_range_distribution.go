package distribution

// NewIntegerRangeDistribution builds a uniform distribution over the
// integers [lower, upper] (spec §4.3), bijected onto FiniteCategorical's
// {0..n-1} via index = value - lower. It returns ErrInvalidInput if
// upper < lower.
func NewIntegerRangeDistribution(lower, upper int) (*FiniteCategorical[int], error) {
	if upper < lower {
		return nil, ErrInvalidInput
	}
	n := upper - lower + 1
	return NewFiniteCategorical(n, ShiftedIndexMap(lower, upper))
}

// NewIntegerRangeDistributionFromProbabilities builds an
// IntegerRangeDistribution over [lower, lower+len(probs)-1] from an
// explicit probability vector.
func NewIntegerRangeDistributionFromProbabilities(lower int, probs []float64) (*FiniteCategorical[int], error) {
	n := len(probs)
	if n < 1 {
		return nil, ErrInvalidInput
	}
	upper := lower + n - 1
	return NewFiniteCategoricalFromProbabilities(probs, ShiftedIndexMap(lower, upper))
}
