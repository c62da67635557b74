// Package iohmm is the overview package for an Input-Output Hidden Markov
// Model (IOHMM) library in the Mealy flavor: a probabilistic sequence
// model where, at each discrete time step, an externally supplied input
// token influences both the hidden-state transition and the observable
// emission.
//
// What is a Mealy IOHMM?
//
//	At each time step t, an input x_t drives two distributions: the
//	transition A_i(.|x_t) from the current hidden state i to the next
//	state, and the emission B_i(.|x_t) of an observed output y_t from
//	state i. Unlike a Moore-style model, the emission depends on both the
//	state and the current input.
//
// Everything is organized under five subpackages:
//
//	rng/          — the uniform-sampling capability every distribution consumes
//	distribution/ — a small algebra of PDFs: finite categorical, integer-range, Gaussian
//	transition/   — input-conditioned transition distributions built on distribution/
//	mealy/        — the engine itself: forward/backward recurrences and Baum-Welch re-estimation
//	topology/     — inspection: export a trained model's per-input transition structure as a graph
//
// Quick usage sketch:
//
//	die, _ := distribution.NewIntegerRangeDistribution(1, 6)
//	a, _   := transition.NewIntegerRangeTransitionDistribution[int](1, 2, aGen)
//	b, _   := transition.NewIntegerRangeTransitionDistribution[int](1, 2, bGen)
//	m, _   := mealy.New([]float64{0.5, 0.5}, []transition.TransitionDistribution[int, int]{a0, a1}, []transition.TransitionDistribution[int, int]{b0, b1})
//	p, _   := m.Probability(observations)
//
// See mealy's package doc for the forward/backward recurrences and the
// Baum-Welch re-estimation contract.
package iohmm
