// Package distribution defines a small algebra of probability
// distributions: a capability interface (PDF, Sample, Fit, FitUnnormalized,
// Reset, Randomize) plus three concrete families built on it.
//
//   - FiniteCategorical[T] — a discrete distribution over a domain T that
//     bijects onto {0..n-1} via an IndexMap[T]. FiniteDistribution and
//     IntegerRangeDistribution (spec §4.3) are both constructed as
//     FiniteCategorical[int] instances, differing only in their IndexMap.
//   - NormalDistribution — a 1-D Gaussian with weighted-moment fitting
//     (spec §4.4).
//
// All operations are synchronous and allocate no goroutines; every
// distribution owns its own state exclusively and is never safe for
// concurrent mutation (spec §5).
package distribution
