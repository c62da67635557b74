package mealy

import (
	"fmt"
	"iter"
	"slices"
)

// Alphas produces the forward variables alpha_t lazily, one per observation
// pulled from obs, in time order: alpha_0, alpha_1, .... It never
// materializes the whole sequence, so obs may be infinite.
//
// alpha_0[j] = pi_j * b_j(x_0, y_0)
// alpha_t[j] = (sum_i alpha_{t-1}[i] * a_i(x_{t-1}, j)) * b_j(x_t, y_t)
//
// The first time a PDF lookup fails, the iterator yields the error as the
// second value and then ends.
func (m *IOHMM[I, O]) Alphas(obs iter.Seq[Observation[I, O]]) iter.Seq2[[]float64, error] {
	return func(yield func([]float64, error) bool) {
		n := m.NumStates()
		var prev []float64
		var prevInput I
		first := true

		for o := range obs {
			cur := make([]float64, n)
			if first {
				for j := 0; j < n; j++ {
					bj, err := m.B(o.Input, j, o.Output)
					if err != nil {
						yield(nil, fmt.Errorf("mealy: alpha_0: %w", err))
						return
					}
					cur[j] = m.pi[j] * bj
				}
				first = false
			} else {
				for j := 0; j < n; j++ {
					sum := 0.0
					for i := 0; i < n; i++ {
						aij, err := m.A(prevInput, i, j)
						if err != nil {
							yield(nil, fmt.Errorf("mealy: alpha transition: %w", err))
							return
						}
						sum += prev[i] * aij
					}
					bj, err := m.B(o.Input, j, o.Output)
					if err != nil {
						yield(nil, fmt.Errorf("mealy: alpha emission: %w", err))
						return
					}
					cur[j] = sum * bj
				}
			}

			if !yield(cur, nil) {
				return
			}
			prev = cur
			prevInput = o.Input
		}
	}
}

// BetasReverse produces the backward variables beta_t lazily, consuming
// obsReversed in REVERSE time order (last observation first) and yielding
// beta_{T-1}, beta_{T-2}, ..., beta_0 in that same pulled order.
//
// beta_{T-1}[i] = 1
// beta_t[i] = sum_j a_i(x_t, j) * b_j(x_{t+1}, y_{t+1}) * beta_{t+1}[j]
//
// Since obsReversed is walked backward, each step needs the PRECEDING
// (in reversed-pull order, i.e. time-later) observation, which is cached
// from the previous iteration.
func (m *IOHMM[I, O]) BetasReverse(obsReversed iter.Seq[Observation[I, O]]) iter.Seq2[[]float64, error] {
	return func(yield func([]float64, error) bool) {
		n := m.NumStates()
		var prevBeta []float64
		var nextObs Observation[I, O]
		first := true

		for o := range obsReversed {
			cur := make([]float64, n)
			if first {
				for i := 0; i < n; i++ {
					cur[i] = 1.0
				}
				first = false
			} else {
				for i := 0; i < n; i++ {
					sum := 0.0
					for j := 0; j < n; j++ {
						aij, err := m.A(o.Input, i, j)
						if err != nil {
							yield(nil, fmt.Errorf("mealy: beta transition: %w", err))
							return
						}
						bj, err := m.B(nextObs.Input, j, nextObs.Output)
						if err != nil {
							yield(nil, fmt.Errorf("mealy: beta emission: %w", err))
							return
						}
						sum += aij * bj * prevBeta[j]
					}
					cur[i] = sum
				}
			}

			if !yield(cur, nil) {
				return
			}
			prevBeta = cur
			nextObs = o
		}
	}
}

// Betas materializes the backward variables in forward time order:
// beta[0], beta[1], ..., beta[len(o)-1]. Unlike BetasReverse it requires a
// finite, already-known observation slice.
func (m *IOHMM[I, O]) Betas(o []Observation[I, O]) ([][]float64, error) {
	if len(o) == 0 {
		return nil, ErrEmptyObservation
	}

	reversed := slices.Clone(o)
	slices.Reverse(reversed)

	betaRev := make([][]float64, 0, len(o))
	for b, err := range m.BetasReverse(slices.Values(reversed)) {
		if err != nil {
			return nil, err
		}
		betaRev = append(betaRev, b)
	}

	slices.Reverse(betaRev)
	return betaRev, nil
}

// Probability returns P(o) = sum_i alpha_{T-1}[i], the joint probability of
// the full input/output sequence o under the model.
func (m *IOHMM[I, O]) Probability(o []Observation[I, O]) (float64, error) {
	if len(o) == 0 {
		return 0, ErrEmptyObservation
	}

	var last []float64
	for a, err := range m.Alphas(slices.Values(o)) {
		if err != nil {
			return 0, err
		}
		last = a
	}

	sum := 0.0
	for _, v := range last {
		sum += v
	}
	return sum, nil
}
