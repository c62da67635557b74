package mealy_test

import (
	"testing"

	"github.com/katalvlaran/iohmm/distribution"
	"github.com/katalvlaran/iohmm/mealy"
	"github.com/katalvlaran/iohmm/transition"
	"github.com/stretchr/testify/require"
)

// buildTwoState constructs a 2-state IOHMM with binary input {0,1} and
// binary output {0,1}. Input x biases how "sticky" the transition is;
// output probabilities also depend on x. This fixture mirrors the
// textbook two-state occasionally-dishonest-process shape used
// throughout the package's tests.
func buildTwoState(t *testing.T) *mealy.IOHMM[int, int] {
	t.Helper()

	aGen := func(state int) transition.TransitionDistribution[int, int] {
		gen := func(input int) distribution.Distribution[int] {
			var probs []float64
			switch {
			case state == 0 && input == 0:
				probs = []float64{0.9, 0.1}
			case state == 0 && input == 1:
				probs = []float64{0.6, 0.4}
			case state == 1 && input == 0:
				probs = []float64{0.3, 0.7}
			default:
				probs = []float64{0.1, 0.9}
			}
			d, err := distribution.NewFiniteDistributionFromProbabilities(probs)
			require.NoError(t, err)
			return d
		}
		d, err := transition.NewIntegerRangeTransitionDistribution[int](0, 1, gen)
		require.NoError(t, err)
		return d
	}

	bGen := func(state int) transition.TransitionDistribution[int, int] {
		gen := func(input int) distribution.Distribution[int] {
			var probs []float64
			switch {
			case state == 0 && input == 0:
				probs = []float64{0.8, 0.2}
			case state == 0 && input == 1:
				probs = []float64{0.7, 0.3}
			case state == 1 && input == 0:
				probs = []float64{0.2, 0.8}
			default:
				probs = []float64{0.1, 0.9}
			}
			d, err := distribution.NewFiniteDistributionFromProbabilities(probs)
			require.NoError(t, err)
			return d
		}
		d, err := transition.NewIntegerRangeTransitionDistribution[int](0, 1, gen)
		require.NoError(t, err)
		return d
	}

	m, err := mealy.NewFromGenerators[int, int]([]float64{0.5, 0.5}, aGen, bGen)
	require.NoError(t, err)
	return m
}

// twoStateAB builds the same per-state transition/emission distributions
// as buildTwoState, but returns them as slices so callers can exercise
// mealy.New directly (e.g. with a deliberately invalid pi).
func twoStateAB(t *testing.T) ([]transition.TransitionDistribution[int, int], []transition.TransitionDistribution[int, int]) {
	t.Helper()
	a := make([]transition.TransitionDistribution[int, int], 2)
	b := make([]transition.TransitionDistribution[int, int], 2)
	for i := 0; i < 2; i++ {
		state := i
		gen := func(input int) distribution.Distribution[int] {
			var probs []float64
			switch {
			case state == 0 && input == 0:
				probs = []float64{0.9, 0.1}
			case state == 0 && input == 1:
				probs = []float64{0.6, 0.4}
			case state == 1 && input == 0:
				probs = []float64{0.3, 0.7}
			default:
				probs = []float64{0.1, 0.9}
			}
			d, err := distribution.NewFiniteDistributionFromProbabilities(probs)
			require.NoError(t, err)
			return d
		}
		ad, err := transition.NewIntegerRangeTransitionDistribution[int](0, 1, gen)
		require.NoError(t, err)
		a[i] = ad

		genB := func(input int) distribution.Distribution[int] {
			var probs []float64
			switch {
			case state == 0 && input == 0:
				probs = []float64{0.8, 0.2}
			case state == 0 && input == 1:
				probs = []float64{0.7, 0.3}
			case state == 1 && input == 0:
				probs = []float64{0.2, 0.8}
			default:
				probs = []float64{0.1, 0.9}
			}
			d, err := distribution.NewFiniteDistributionFromProbabilities(probs)
			require.NoError(t, err)
			return d
		}
		bd, err := transition.NewIntegerRangeTransitionDistribution[int](0, 1, genB)
		require.NoError(t, err)
		b[i] = bd
	}
	return a, b
}

func fixedSeq() []mealy.Observation[int, int] {
	return []mealy.Observation[int, int]{
		{Input: 0, Output: 0},
		{Input: 1, Output: 1},
		{Input: 0, Output: 0},
	}
}
