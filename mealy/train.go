package mealy

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/iohmm/distribution"
	"github.com/katalvlaran/iohmm/rng"
	"github.com/katalvlaran/iohmm/transition"
)

// Train performs one Baum-Welch-style re-estimation pass over a single
// observation sequence o, blending pi and every per-state A_i/B_i toward
// the weights implied by o with coefficient eta (spec §4.6.4):
//
//	S_t      = sum_i alpha_t[i] * beta_t[i]                (== P(o) when S_t != 0)
//	gamma_0[i]     = alpha_0[i] * beta_0[i] / S_0
//	gamma_t[i]     = alpha_t[i] * beta_t[i] / S_t           (emission posterior)
//	xi_t(i,j)      = alpha_t[i] * a_i(x_t,j) * b_j(x_{t+1},y_{t+1}) * beta_{t+1}[j] / S_t
//
// Any time step t with S_t below distribution.Epsilon contributes nothing
// and is recorded in the returned TrainResult.DegenerateSteps (spec §7).
// Alphas and Betas are fully materialized before any parameter is mutated,
// so a lookup failure during the forward/backward pass leaves m unchanged.
func (m *IOHMM[I, O]) Train(o []Observation[I, O], eta float64) (TrainResult, error) {
	if len(o) == 0 {
		return TrainResult{}, ErrEmptyObservation
	}
	if eta < 0 || eta > 1 {
		return TrainResult{}, fmt.Errorf("mealy: %w: eta must be in [0,1]", ErrInvalidInput)
	}

	n := m.NumStates()
	T := len(o)

	alpha := make([][]float64, 0, T)
	for a, err := range m.Alphas(slices.Values(o)) {
		if err != nil {
			return TrainResult{}, err
		}
		alpha = append(alpha, a)
	}

	beta, err := m.Betas(o)
	if err != nil {
		return TrainResult{}, err
	}

	s := make([]float64, T)
	for t := 0; t < T; t++ {
		sum := 0.0
		for i := 0; i < n; i++ {
			sum += alpha[t][i] * beta[t][i]
		}
		s[t] = sum
	}

	result := TrainResult{}

	gamma0 := make([]float64, n)
	if s[0] < distribution.Epsilon {
		result.DegenerateSteps = append(result.DegenerateSteps, 0)
		copy(gamma0, m.pi)
	} else {
		for i := 0; i < n; i++ {
			gamma0[i] = alpha[0][i] * beta[0][i] / s[0]
		}
	}

	weightsA := make([][]transition.WeightedObservation[I, int], n)
	weightsB := make([][]transition.WeightedObservation[I, O], n)

	for t := 0; t < T; t++ {
		if s[t] < distribution.Epsilon {
			if t != 0 {
				result.DegenerateSteps = append(result.DegenerateSteps, t)
			}
			continue
		}

		for i := 0; i < n; i++ {
			gamma := alpha[t][i] * beta[t][i] / s[t]
			weightsB[i] = append(weightsB[i], transition.WeightedObservation[I, O]{
				Input: o[t].Input, Output: o[t].Output, Weight: gamma,
			})
		}

		if t == T-1 {
			continue
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				aij, err := m.A(o[t].Input, i, j)
				if err != nil {
					return TrainResult{}, err
				}
				bj, err := m.B(o[t+1].Input, j, o[t+1].Output)
				if err != nil {
					return TrainResult{}, err
				}
				xi := alpha[t][i] * aij * bj * beta[t+1][j] / s[t]
				weightsA[i] = append(weightsA[i], transition.WeightedObservation[I, int]{
					Input: o[t].Input, Output: j, Weight: xi,
				})
			}
		}
	}

	for i := 0; i < n; i++ {
		m.pi[i] = (1-eta)*m.pi[i] + eta*gamma0[i]
	}
	for i := 0; i < n; i++ {
		if len(weightsA[i]) > 0 {
			if err := m.a[i].FitUnnormalized(weightsA[i], eta); err != nil {
				return TrainResult{}, err
			}
		}
		if len(weightsB[i]) > 0 {
			if err := m.b[i].FitUnnormalized(weightsB[i], eta); err != nil {
				return TrainResult{}, err
			}
		}
	}

	return result, nil
}

// TrainMany runs Train sequentially over each sequence in obsList, in
// order, blending parameters with eta after every sequence before moving
// to the next (spec's sequential-batching scope; see Non-goals for
// joint multi-sequence aggregation). The returned TrainResult concatenates
// every sequence's degenerate steps in order.
func (m *IOHMM[I, O]) TrainMany(obsList [][]Observation[I, O], eta float64) (TrainResult, error) {
	total := TrainResult{}
	for _, o := range obsList {
		r, err := m.Train(o, eta)
		if err != nil {
			return TrainResult{}, err
		}
		total.merge(r)
	}
	return total, nil
}

// ResetPi resets pi to the uniform distribution 1/N over all states.
func (m *IOHMM[I, O]) ResetPi() {
	n := len(m.pi)
	u := 1.0 / float64(n)
	for i := range m.pi {
		m.pi[i] = u
	}
}

// Randomize redraws pi and every per-state A_i/B_i from scratch using r
// (or the default RNG if nil), leaving N and the A_i/B_i concrete types
// unchanged.
func (m *IOHMM[I, O]) Randomize(r rng.RNG) error {
	r = rng.OrDefault(r)
	n := len(m.pi)

	spacings := make([]float64, n)
	total := 0.0
	for i := 0; i < n; i++ {
		u := r.NextUnit()
		if u <= 0 {
			u = 1e-12
		}
		e := -math.Log(u)
		spacings[i] = e
		total += e
	}
	for i := 0; i < n; i++ {
		m.pi[i] = spacings[i] / total
	}

	for i := 0; i < n; i++ {
		if err := m.a[i].Randomize(r); err != nil {
			return err
		}
		if err := m.b[i].Randomize(r); err != nil {
			return err
		}
	}
	return nil
}
