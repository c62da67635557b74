package distribution

import (
	"sort"

	"github.com/katalvlaran/iohmm/rng"
)

// FiniteCategorical is a discrete distribution over a domain T that
// bijects onto {0..n-1} via idx. FiniteDistribution and
// IntegerRangeDistribution are both instances of this one type (spec §9:
// "finite-categorical" mixin), differing only in idx.
//
// Internal form: cum holds n-1 cumulative probabilities. Category k < n-1
// has mass cum[k] - cum[k-1] (cum[-1] == 0 by convention); category n-1
// has the implied remainder 1 - cum[n-2].
type FiniteCategorical[T any] struct {
	n   int
	cum []float64 // len n-1
	idx IndexMap[T]
}

// NewFiniteCategorical builds a uniform distribution over n categories
// using idx. It returns ErrInvalidInput if n < 1.
func NewFiniteCategorical[T any](n int, idx IndexMap[T]) (*FiniteCategorical[T], error) {
	if n < 1 {
		return nil, ErrInvalidInput
	}
	fc := &FiniteCategorical[T]{n: n, idx: idx}
	fc.Reset()
	return fc, nil
}

// NewFiniteCategoricalFromProbabilities builds a distribution with an
// explicit probability vector (one entry per category). It returns
// ErrInvalidInput if probs is empty, any entry is negative, or the
// entries do not sum to one within Epsilon.
func NewFiniteCategoricalFromProbabilities[T any](probs []float64, idx IndexMap[T]) (*FiniteCategorical[T], error) {
	n := len(probs)
	if n < 1 {
		return nil, ErrInvalidInput
	}
	sum := 0.0
	for _, p := range probs {
		if p < 0 {
			return nil, ErrInvalidInput
		}
		sum += p
	}
	if abs(sum-1.0) > Epsilon {
		return nil, ErrInvalidInput
	}
	cum := make([]float64, n-1)
	running := 0.0
	for k := 0; k < n-1; k++ {
		running += probs[k]
		cum[k] = running
	}
	return &FiniteCategorical[T]{n: n, cum: cum, idx: idx}, nil
}

// NumCategories returns n.
func (fc *FiniteCategorical[T]) NumCategories() int { return fc.n }

// Lower returns the domain value mapped to category index 0. For
// IntegerRangeDistribution this is the declared lower bound.
func (fc *FiniteCategorical[T]) Lower() T { return fc.idx.FromIndex(0) }

// Upper returns the domain value mapped to the last category index. For
// IntegerRangeDistribution this is the declared upper bound.
func (fc *FiniteCategorical[T]) Upper() T { return fc.idx.FromIndex(fc.n - 1) }

// massAt returns the probability mass of category k, assuming 0 <= k < n.
func (fc *FiniteCategorical[T]) massAt(k int) float64 {
	if fc.n == 1 {
		return 1.0
	}
	lo := 0.0
	if k > 0 {
		lo = fc.cum[k-1]
	}
	hi := 1.0
	if k < fc.n-1 {
		hi = fc.cum[k]
	}
	return hi - lo
}

// PDF returns the probability of category x, or ErrOutOfDomain if x maps
// outside {0..n-1}.
func (fc *FiniteCategorical[T]) PDF(x T) (float64, error) {
	k, ok := fc.idx.ToIndex(x)
	if !ok {
		return 0, ErrOutOfDomain
	}
	return fc.massAt(k), nil
}

// Sample draws a category index via cumulative-probability binary search
// (spec §4.3), giving O(log n) sampling at the cost of O(n) updates, and
// maps it back to T via idx.FromIndex.
func (fc *FiniteCategorical[T]) Sample(r rng.RNG) (T, error) {
	r = rng.OrDefault(r)
	if fc.n == 1 {
		return fc.idx.FromIndex(0), nil
	}
	u := r.NextUnit()
	k := sort.Search(len(fc.cum), func(i int) bool { return u < fc.cum[i] })
	return fc.idx.FromIndex(k), nil
}

// Fit accumulates the weighted observations per category and blends the
// resulting cumulative sequence: cum[k] = (1-eta)*cum[k] +
// eta*prefixSum(new, 0..k) (spec §4.3). The distribution is left unchanged
// if weighted is empty or its total weight is zero. Any observation outside
// the domain makes Fit return ErrInvalidInput without changing anything.
func (fc *FiniteCategorical[T]) Fit(weighted []WeightedObservation[T], eta float64) error {
	if !validEta(eta) {
		return ErrInvalidInput
	}
	if len(weighted) == 0 {
		return nil
	}
	mass := make([]float64, fc.n)
	total := 0.0
	for _, wo := range weighted {
		k, ok := fc.idx.ToIndex(wo.Value)
		if !ok {
			return ErrInvalidInput
		}
		mass[k] += wo.Weight
		total += wo.Weight
	}
	if total == 0 {
		return nil
	}
	newCum := make([]float64, fc.n-1)
	running := 0.0
	for k := 0; k < fc.n-1; k++ {
		running += mass[k] / total
		newCum[k] = running
	}
	for k := range fc.cum {
		fc.cum[k] = (1-eta)*fc.cum[k] + eta*newCum[k]
	}
	return nil
}

// FitUnnormalized renormalizes weighted (its weights need not sum to one)
// and delegates to Fit.
func (fc *FiniteCategorical[T]) FitUnnormalized(weighted []WeightedObservation[T], eta float64) error {
	normalized, err := normalize(weighted)
	if err != nil {
		return err
	}
	if normalized == nil {
		return nil
	}
	return fc.Fit(normalized, eta)
}

// Reset restores the uniform distribution: cum[k] = (k+1)/n.
func (fc *FiniteCategorical[T]) Reset() {
	if fc.n == 1 {
		fc.cum = nil
		return
	}
	fc.cum = make([]float64, fc.n-1)
	for k := 0; k < fc.n-1; k++ {
		fc.cum[k] = float64(k+1) / float64(fc.n)
	}
}

// Randomize replaces the distribution with a fresh uniform-simplex draw
// (Dirichlet(1,...,1) via normalized exponential spacings), remaining a
// valid distribution afterward.
func (fc *FiniteCategorical[T]) Randomize(r rng.RNG) error {
	r = rng.OrDefault(r)
	if fc.n == 1 {
		fc.cum = nil
		return nil
	}
	draws := make([]float64, fc.n)
	total := 0.0
	for i := range draws {
		u := r.NextUnit()
		for u == 0 {
			u = r.NextUnit()
		}
		draws[i] = -logFloat(u)
		total += draws[i]
	}
	cum := make([]float64, fc.n-1)
	running := 0.0
	for k := 0; k < fc.n-1; k++ {
		running += draws[k] / total
		cum[k] = running
	}
	fc.cum = cum
	return nil
}
