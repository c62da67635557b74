// Package transition builds input-conditioned transition distributions on
// top of package distribution: for every valid input I, a full output
// distribution over O, with operations to evaluate, sample, and fit
// per-input slices (spec §4.5).
package transition
