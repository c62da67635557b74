package topology

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/iohmm/core"
	"github.com/katalvlaran/iohmm/mealy"
)

// ErrNoEdges is returned by TransitionGraph when no A(.|x) entry exceeds
// the threshold, leaving a graph with vertices but no edges.
var ErrNoEdges = errors.New("topology: transition graph has no edges above threshold")

// transitioner is the slice of *mealy.IOHMM[I, O] that TransitionGraph
// needs: NumStates and the per-input transition lookup A. Declaring it
// here (rather than depending on O) lets the graph view ignore the
// emission type entirely.
type transitioner[I any] interface {
	NumStates() int
	A(x I, i, j int) (float64, error)
}

// weightScale converts a transition probability in [0,1] into the int64
// edge weight core.Graph requires; core.Graph has no notion of float
// weights, so probabilities are scaled and rounded to six decimal places
// of precision.
const weightScale = 1_000_000

// TransitionGraph builds a directed, weighted core.Graph over m's hidden
// states under a single fixed input x: vertex "i" -> vertex "j" carries
// weight round(a_i(x,j) * 1e6) whenever a_i(x,j) exceeds threshold. Pass
// threshold 0 to include every strictly-positive transition.
func TransitionGraph[I any](m transitioner[I], x I, threshold float64) (*core.Graph, error) {
	n := m.NumStates()
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithLoops())

	for i := 0; i < n; i++ {
		if err := g.AddVertex(strconv.Itoa(i)); err != nil {
			return nil, fmt.Errorf("topology: add vertex %d: %w", i, err)
		}
	}

	edges := 0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			p, err := m.A(x, i, j)
			if err != nil {
				return nil, fmt.Errorf("topology: A(%d,%d): %w", i, j, err)
			}
			if p <= threshold {
				continue
			}
			weight := int64(p*weightScale + 0.5)
			if _, err := g.AddEdge(strconv.Itoa(i), strconv.Itoa(j), weight); err != nil {
				return nil, fmt.Errorf("topology: add edge %d->%d: %w", i, j, err)
			}
			edges++
		}
	}

	if edges == 0 {
		return g, ErrNoEdges
	}
	return g, nil
}

// AdjacencyMatrix is a dense N x N view of a transition structure: row i,
// column j holds a_i(x, j). Unlike TransitionGraph it keeps every entry,
// including zeros, so it is suitable for linear-algebra-style inspection.
type AdjacencyMatrix struct {
	N    int
	Data [][]float64
}

// At returns Data[i][j], or an error if either index is out of [0, N).
func (am AdjacencyMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= am.N || j < 0 || j >= am.N {
		return 0, fmt.Errorf("topology: index (%d,%d) out of range for N=%d", i, j, am.N)
	}
	return am.Data[i][j], nil
}

// RowSum returns the sum of row i, which should equal 1 (within the
// distribution's own tolerance) for any valid transition distribution.
func (am AdjacencyMatrix) RowSum(i int) float64 {
	sum := 0.0
	for _, v := range am.Data[i] {
		sum += v
	}
	return sum
}

// BuildAdjacencyMatrix materializes a's full A(.|x) table for input x.
func BuildAdjacencyMatrix[I any](m transitioner[I], x I) (AdjacencyMatrix, error) {
	n := m.NumStates()
	data := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, n)
		for j := 0; j < n; j++ {
			p, err := m.A(x, i, j)
			if err != nil {
				return AdjacencyMatrix{}, fmt.Errorf("topology: A(%d,%d): %w", i, j, err)
			}
			row[j] = p
		}
		data[i] = row
	}
	return AdjacencyMatrix{N: n, Data: data}, nil
}

// compile-time reminder that *mealy.IOHMM[I,O] satisfies transitioner[I]
// for any emission type O; exercised concretely by the package's tests.
var _ transitioner[int] = (*mealy.IOHMM[int, int])(nil)
