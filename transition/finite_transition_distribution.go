package transition

import (
	"github.com/katalvlaran/iohmm/distribution"
	"github.com/katalvlaran/iohmm/rng"
)

// FiniteTransitionDistribution stores one sub-distribution over O per
// valid input index, bijected from I via idx (spec §4.5/§9: "FiniteTransition{I,O}").
// NewFiniteTransitionDistribution copies the slice of sub-distributions but
// not the sub-distributions themselves, so Fit and Randomize mutate the
// values the caller passed in.
type FiniteTransitionDistribution[I, O any] struct {
	sub []distribution.Distribution[O]
	idx distribution.IndexMap[I]
}

// NewFiniteTransitionDistribution builds a FiniteTransitionDistribution
// from an explicit, ordered slice of sub-distributions (one per input
// index) and an IndexMap. It returns ErrInvalidInput if sub is empty or
// contains a nil entry.
func NewFiniteTransitionDistribution[I, O any](sub []distribution.Distribution[O], idx distribution.IndexMap[I]) (*FiniteTransitionDistribution[I, O], error) {
	if len(sub) < 1 {
		return nil, ErrInvalidInput
	}
	for _, d := range sub {
		if d == nil {
			return nil, ErrInvalidInput
		}
	}
	cp := make([]distribution.Distribution[O], len(sub))
	copy(cp, sub)
	return &FiniteTransitionDistribution[I, O]{sub: cp, idx: idx}, nil
}

// NewFiniteTransitionDistributionFromGenerator builds n sub-distributions
// by calling gen(k) for each index k in [0,n), matching the spec §6
// "new(lower, upper, generator: index -> Distribution<O>)" constructor
// variant generalized to an arbitrary IndexMap.
func NewFiniteTransitionDistributionFromGenerator[I, O any](n int, idx distribution.IndexMap[I], gen func(index int) distribution.Distribution[O]) (*FiniteTransitionDistribution[I, O], error) {
	if n < 1 {
		return nil, ErrInvalidInput
	}
	sub := make([]distribution.Distribution[O], n)
	for k := 0; k < n; k++ {
		d := gen(k)
		if d == nil {
			return nil, ErrInvalidInput
		}
		sub[k] = d
	}
	return &FiniteTransitionDistribution[I, O]{sub: sub, idx: idx}, nil
}

// NumInputs returns the number of distinct input indices this
// distribution was built for.
func (ftd *FiniteTransitionDistribution[I, O]) NumInputs() int { return len(ftd.sub) }

// PDF returns sub[InputMapper(x)].PDF(y), or ErrOutOfDomain if x is out
// of range.
func (ftd *FiniteTransitionDistribution[I, O]) PDF(x I, y O) (float64, error) {
	k, ok := ftd.idx.ToIndex(x)
	if !ok {
		return 0, ErrOutOfDomain
	}
	p, err := ftd.sub[k].PDF(y)
	if err != nil {
		return 0, err
	}
	return p, nil
}

// Sample returns sub[InputMapper(x)].Sample(r), or ErrOutOfDomain if x is
// out of range.
func (ftd *FiniteTransitionDistribution[I, O]) Sample(x I, r rng.RNG) (O, error) {
	var zero O
	k, ok := ftd.idx.ToIndex(x)
	if !ok {
		return zero, ErrOutOfDomain
	}
	return ftd.sub[k].Sample(r)
}

// partition groups weighted by input index, preserving each group's
// (y,w) pairs in original order.
func (ftd *FiniteTransitionDistribution[I, O]) partition(weighted []WeightedObservation[I, O]) ([][]distribution.WeightedObservation[O], error) {
	buckets := make([][]distribution.WeightedObservation[O], len(ftd.sub))
	for _, wo := range weighted {
		k, ok := ftd.idx.ToIndex(wo.Input)
		if !ok {
			return nil, ErrOutOfDomain
		}
		buckets[k] = append(buckets[k], distribution.WeightedObservation[O]{Value: wo.Output, Weight: wo.Weight})
	}
	return buckets, nil
}

// Fit filters weighted down to each input's slice and invokes that
// sub-distribution's Fit (spec §4.5): each per-input slice must itself
// carry weights summing to one.
func (ftd *FiniteTransitionDistribution[I, O]) Fit(weighted []WeightedObservation[I, O], eta float64) error {
	buckets, err := ftd.partition(weighted)
	if err != nil {
		return err
	}
	for k, bucket := range buckets {
		if len(bucket) == 0 {
			continue
		}
		if err := ftd.sub[k].Fit(bucket, eta); err != nil {
			return err
		}
	}
	return nil
}

// FitUnnormalized behaves like Fit but each per-input slice is locally
// renormalized by the sub-distribution's own FitUnnormalized, so weighted
// need not carry globally- or per-input-normalized weights (spec §4.5,
// §4.6.4 step 4).
func (ftd *FiniteTransitionDistribution[I, O]) FitUnnormalized(weighted []WeightedObservation[I, O], eta float64) error {
	buckets, err := ftd.partition(weighted)
	if err != nil {
		return err
	}
	for k, bucket := range buckets {
		if len(bucket) == 0 {
			continue
		}
		if err := ftd.sub[k].FitUnnormalized(bucket, eta); err != nil {
			return err
		}
	}
	return nil
}

// Randomize redraws every sub-distribution independently.
func (ftd *FiniteTransitionDistribution[I, O]) Randomize(r rng.RNG) error {
	for _, d := range ftd.sub {
		if err := d.Randomize(r); err != nil {
			return err
		}
	}
	return nil
}
