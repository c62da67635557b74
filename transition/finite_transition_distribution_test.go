package transition_test

import (
	"testing"

	"github.com/katalvlaran/iohmm/distribution"
	"github.com/katalvlaran/iohmm/transition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildRowDistribution(t *testing.T, row []float64) distribution.Distribution[int] {
	t.Helper()
	d, err := distribution.NewFiniteDistributionFromProbabilities(row)
	require.NoError(t, err)
	return d
}

func TestIntegerRangeTransitionDistribution_PDF(t *testing.T) {
	rows := map[int][]float64{
		1: {0.5, 0.5},
		2: {0.3, 0.7},
	}
	td, err := transition.NewIntegerRangeTransitionDistribution[int](1, 2, func(input int) distribution.Distribution[int] {
		return buildRowDistribution(t, rows[input])
	})
	require.NoError(t, err)

	p, err := td.PDF(1, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, p, 1e-9)

	p, err = td.PDF(2, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.7, p, 1e-9)
}

func TestIntegerRangeTransitionDistribution_OutOfDomain(t *testing.T) {
	td, err := transition.NewIntegerRangeTransitionDistribution[int](1, 2, func(input int) distribution.Distribution[int] {
		return buildRowDistribution(t, []float64{0.5, 0.5})
	})
	require.NoError(t, err)

	_, err = td.PDF(3, 0)
	assert.ErrorIs(t, err, transition.ErrOutOfDomain)

	_, err = td.Sample(3, nil)
	assert.ErrorIs(t, err, transition.ErrOutOfDomain)
}

func TestFiniteTransitionDistribution_FitPartitionsByInput(t *testing.T) {
	td, err := transition.NewIntegerRangeTransitionDistribution[int](1, 2, func(input int) distribution.Distribution[int] {
		return buildRowDistribution(t, []float64{0.5, 0.5})
	})
	require.NoError(t, err)

	weighted := []transition.WeightedObservation[int, int]{
		{Input: 1, Output: 0, Weight: 1.0},
		{Input: 2, Output: 1, Weight: 1.0},
	}
	require.NoError(t, td.Fit(weighted, 1.0))

	p, err := td.PDF(1, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, p, 1e-9)

	p, err = td.PDF(2, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, p, 1e-9)
}

func TestFiniteTransitionDistribution_FitUnnormalizedRenormalizesPerInput(t *testing.T) {
	td, err := transition.NewIntegerRangeTransitionDistribution[int](1, 1, func(input int) distribution.Distribution[int] {
		return buildRowDistribution(t, []float64{0.5, 0.5})
	})
	require.NoError(t, err)

	weighted := []transition.WeightedObservation[int, int]{
		{Input: 1, Output: 0, Weight: 3.0},
		{Input: 1, Output: 1, Weight: 1.0},
	}
	require.NoError(t, td.FitUnnormalized(weighted, 1.0))

	p0, _ := td.PDF(1, 0)
	p1, _ := td.PDF(1, 1)
	assert.InDelta(t, 0.75, p0, 1e-9)
	assert.InDelta(t, 0.25, p1, 1e-9)
}

func TestNewFiniteTransitionDistribution_RejectsEmptyOrNil(t *testing.T) {
	_, err := transition.NewFiniteTransitionDistribution[int, int](nil, distribution.IdentityIndexMap(0))
	assert.ErrorIs(t, err, transition.ErrInvalidInput)

	_, err = transition.NewFiniteTransitionDistribution[int, int]([]distribution.Distribution[int]{nil}, distribution.IdentityIndexMap(1))
	assert.ErrorIs(t, err, transition.ErrInvalidInput)
}
