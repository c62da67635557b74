package distribution

// Compile-time interface satisfaction checks.
var (
	_ Distribution[int]     = (*FiniteCategorical[int])(nil)
	_ Distribution[float64] = (*NormalDistribution)(nil)
)
