package transition

// Compile-time interface satisfaction check.
var _ TransitionDistribution[int, int] = (*FiniteTransitionDistribution[int, int])(nil)
