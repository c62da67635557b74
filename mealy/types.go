package mealy

// Observation is one (input, output) pair (x_t, y_t) in a sequence fed to
// the engine.
type Observation[I, O any] struct {
	Input  I
	Output O
}

// TrainResult carries the diagnostic output of one Train/TrainMany call:
// the time steps (0-indexed within their own sequence) at which S_t == 0
// was observed and skipped (spec §4.6.4 step 2, §7 Degenerate).
type TrainResult struct {
	DegenerateSteps []int
}

// merge appends other's degenerate steps, offsetting nothing (TrainMany
// reports per-sequence local indices; callers correlate by sequence order).
func (tr *TrainResult) merge(other TrainResult) {
	tr.DegenerateSteps = append(tr.DegenerateSteps, other.DegenerateSteps...)
}
