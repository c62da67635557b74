// Package mealy implements the Mealy-flavored Input-Output Hidden Markov
// Model engine (spec §4.6): the forward (alpha) and backward (beta)
// recurrences, the joint-sequence probability, and the Baum-Welch-style
// re-estimation that fits the initial-state distribution and the
// per-state transition and emission distributions.
//
// An IOHMM has no temporal state of its own — it is a pure function of
// its parameters (pi, A, B). Its only mutations are explicit parameter
// edits via Train, TrainMany, ResetPi, or Randomize; every read method
// (Pi, A, B, Probability, Alphas, Betas, BetasReverse) leaves it
// unchanged. No operation blocks or suspends; Alphas and BetasReverse
// produce their elements lazily (Go 1.23 range-over-func iterators) so
// an infinite forward-only alpha stream is possible, while Betas requires
// a finite, already-materialized observation slice.
//
// Mutating an IOHMM concurrently with any read is not supported; callers
// must serialize Train/TrainMany/ResetPi/Randomize against all other
// calls on the same instance themselves (spec §5).
package mealy
