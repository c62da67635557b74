package distribution

import "github.com/katalvlaran/iohmm/rng"

// Epsilon is the published tolerance for probability-sum validation
// (spec §6). Every "sums to one" check in this module uses it.
const Epsilon = 1e-6

// WeightedObservation pairs an observed value with its weight for Fit.
type WeightedObservation[T any] struct {
	Value  T
	Weight float64
}

// Distribution is the capability interface every distribution family in
// this package implements (spec §4.2).
type Distribution[T any] interface {
	// PDF returns the probability mass/density at x. It returns
	// ErrOutOfDomain if x lies outside the declared support.
	PDF(x T) (float64, error)

	// Sample draws a value distributed according to PDF, consuming r (or
	// the package default RNG if r is nil).
	Sample(r rng.RNG) (T, error)

	// Fit blends the distribution toward the MLE of weighted, which must
	// carry weights summing to one within Epsilon. An empty weighted
	// leaves the distribution unchanged. eta must lie in [0,1].
	Fit(weighted []WeightedObservation[T], eta float64) error

	// FitUnnormalized behaves like Fit but does not require weighted's
	// weights to sum to one; the implementation renormalizes internally.
	FitUnnormalized(weighted []WeightedObservation[T], eta float64) error

	// Reset returns the distribution to its canonical initial state.
	Reset()

	// Randomize strongly perturbs the distribution, leaving it valid.
	// Used to escape degenerate models (spec §9).
	Randomize(r rng.RNG) error
}

// IndexMap bijects a domain T onto category indices {0..n-1}. It is the
// closure-pair form of the spec's tagged union
// {Shifted(lower), Identity, Custom(fn,fn)} (spec §9): a concrete type
// would force a type switch on every lookup, while two function values
// keep FiniteCategorical copyable and dispatch-free.
type IndexMap[T any] struct {
	// ToIndex maps a domain value to its category index. ok is false if
	// value lies outside the declared domain.
	ToIndex func(value T) (index int, ok bool)

	// FromIndex maps a category index back to its domain value. It is
	// only ever called with indices already known to be in range.
	FromIndex func(index int) T
}

// IdentityIndexMap returns the IndexMap for FiniteDistribution(n): domain
// values are category indices themselves, {0..n-1}.
func IdentityIndexMap(n int) IndexMap[int] {
	return IndexMap[int]{
		ToIndex: func(value int) (int, bool) {
			if value < 0 || value >= n {
				return 0, false
			}
			return value, true
		},
		FromIndex: func(index int) int { return index },
	}
}

// ShiftedIndexMap returns the IndexMap for IntegerRangeDistribution(lower,
// upper): domain values are integers in [lower, upper], shifted onto
// category indices by subtracting lower.
func ShiftedIndexMap(lower, upper int) IndexMap[int] {
	return IndexMap[int]{
		ToIndex: func(value int) (int, bool) {
			if value < lower || value > upper {
				return 0, false
			}
			return value - lower, true
		},
		FromIndex: func(index int) int { return lower + index },
	}
}

// normalize rescales weighted so its weights sum to one. A nil result with
// a nil error means "no observations" — callers treat it as a no-op Fit,
// same as an explicitly empty weighted. This covers both the literally
// empty slice and a slice whose weights sum to (numerically) zero, which
// arises whenever a hidden state carries zero posterior mass at every time
// step in a sequence (a structurally unreachable state is still a valid
// model per the π/A invariants).
func normalize[T any](weighted []WeightedObservation[T]) ([]WeightedObservation[T], error) {
	if len(weighted) == 0 {
		return nil, nil
	}
	sum := 0.0
	for _, wo := range weighted {
		sum += wo.Weight
	}
	if sum == 0 {
		return nil, nil
	}
	out := make([]WeightedObservation[T], len(weighted))
	for i, wo := range weighted {
		out[i] = WeightedObservation[T]{Value: wo.Value, Weight: wo.Weight / sum}
	}
	return out, nil
}

func validEta(eta float64) bool {
	return eta >= 0 && eta <= 1
}
