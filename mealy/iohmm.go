package mealy

import (
	"github.com/katalvlaran/iohmm/distribution"
	"github.com/katalvlaran/iohmm/transition"
)

// IOHMM is a Mealy-flavored Input-Output Hidden Markov Model over N
// hidden states (spec §3, §4.6). It keeps its own copy of pi and of the
// A/B slices; the transition distributions in those slices are not
// copied, so Train and Randomize mutate the same A_i/B_i values the
// caller passed in.
type IOHMM[I, O any] struct {
	pi []float64
	a  []transition.TransitionDistribution[I, int]
	b  []transition.TransitionDistribution[I, O]
}

// New builds an IOHMM from an explicit pi vector and per-state transition
// (a) and emission (b) distributions. It returns ErrInvalidInput if N < 1,
// any pi_i < 0, sum(pi) is not 1 within distribution.Epsilon, or a/b have
// fewer than N entries. Extra entries beyond N are discarded (spec §4.6.6).
func New[I, O any](pi []float64, a []transition.TransitionDistribution[I, int], b []transition.TransitionDistribution[I, O]) (*IOHMM[I, O], error) {
	n := len(pi)
	if n < 1 {
		return nil, ErrInvalidInput
	}
	if len(a) < n || len(b) < n {
		return nil, ErrInvalidInput
	}
	sum := 0.0
	for _, p := range pi {
		if p < 0 {
			return nil, ErrInvalidInput
		}
		sum += p
	}
	if abs(sum-1.0) > distribution.Epsilon {
		return nil, ErrInvalidInput
	}
	for i := 0; i < n; i++ {
		if a[i] == nil || b[i] == nil {
			return nil, ErrInvalidInput
		}
	}

	piCopy := make([]float64, n)
	copy(piCopy, pi)
	aCopy := make([]transition.TransitionDistribution[I, int], n)
	copy(aCopy, a[:n])
	bCopy := make([]transition.TransitionDistribution[I, O], n)
	copy(bCopy, b[:n])

	return &IOHMM[I, O]{pi: piCopy, a: aCopy, b: bCopy}, nil
}

// NewFromGenerators builds an IOHMM of N = len(pi) states, calling aGen(i)
// and bGen(i) to build each state's transition and emission distribution
// (spec §6: "new(pi[], A_generator, B_generator)").
func NewFromGenerators[I, O any](pi []float64, aGen func(state int) transition.TransitionDistribution[I, int], bGen func(state int) transition.TransitionDistribution[I, O]) (*IOHMM[I, O], error) {
	n := len(pi)
	a := make([]transition.TransitionDistribution[I, int], n)
	b := make([]transition.TransitionDistribution[I, O], n)
	for i := 0; i < n; i++ {
		a[i] = aGen(i)
		b[i] = bGen(i)
	}
	return New(pi, a, b)
}

// NumStates returns N.
func (m *IOHMM[I, O]) NumStates() int { return len(m.pi) }

// Pi returns pi_i.
func (m *IOHMM[I, O]) Pi(i int) float64 { return m.pi[i] }

// A returns a_ij(x), the probability of transitioning from state i to
// state j under input x.
func (m *IOHMM[I, O]) A(x I, i, j int) (float64, error) {
	return m.a[i].PDF(x, j)
}

// B returns b_i(x,y), the probability of emitting y from state i under
// input x.
func (m *IOHMM[I, O]) B(x I, i int, y O) (float64, error) {
	return m.b[i].PDF(x, y)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
