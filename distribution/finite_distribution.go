package distribution

// NewFiniteDistribution builds a uniform FiniteDistribution over
// {0..n-1} (spec §4.3). It returns ErrInvalidInput if n < 1.
func NewFiniteDistribution(n int) (*FiniteCategorical[int], error) {
	return NewFiniteCategorical(n, IdentityIndexMap(n))
}

// NewFiniteDistributionFromProbabilities builds a FiniteDistribution from
// an explicit probability vector, one entry per category {0..n-1}.
func NewFiniteDistributionFromProbabilities(probs []float64) (*FiniteCategorical[int], error) {
	return NewFiniteCategoricalFromProbabilities(probs, IdentityIndexMap(len(probs)))
}
