package topology

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/katalvlaran/iohmm/bfs"
	"github.com/katalvlaran/iohmm/core"
)

// structuralGraph builds an UNWEIGHTED directed core.Graph connecting
// state i to state j whenever a_i(x,j) exceeds threshold. bfs.BFS refuses
// weighted graphs (it only reports hop distances), so this is a separate,
// lighter construction from TransitionGraph rather than a reuse of it.
func structuralGraph[I any](m transitioner[I], x I, threshold float64) (*core.Graph, error) {
	n := m.NumStates()
	g := core.NewGraph(core.WithDirected(true), core.WithLoops())

	for i := 0; i < n; i++ {
		if err := g.AddVertex(strconv.Itoa(i)); err != nil {
			return nil, fmt.Errorf("topology: add vertex %d: %w", i, err)
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			p, err := m.A(x, i, j)
			if err != nil {
				return nil, fmt.Errorf("topology: A(%d,%d): %w", i, j, err)
			}
			if p <= threshold {
				continue
			}
			if _, err := g.AddEdge(strconv.Itoa(i), strconv.Itoa(j), 0); err != nil {
				return nil, fmt.Errorf("topology: add edge %d->%d: %w", i, j, err)
			}
		}
	}
	return g, nil
}

// ReachableStates returns every state reachable from `from` under input x,
// via transitions whose probability exceeds threshold, sorted ascending.
// `from` itself is included (distance zero).
func ReachableStates[I any](m transitioner[I], x I, from int, threshold float64) ([]int, error) {
	if from < 0 || from >= m.NumStates() {
		return nil, fmt.Errorf("topology: state %d out of range", from)
	}

	g, err := structuralGraph(m, x, threshold)
	if err != nil {
		return nil, err
	}

	result, err := bfs.BFS(g, strconv.Itoa(from))
	if err != nil {
		return nil, fmt.Errorf("topology: bfs: %w", err)
	}

	states := make([]int, 0, len(result.Order))
	for _, id := range result.Order {
		s, err := strconv.Atoi(id)
		if err != nil {
			return nil, fmt.Errorf("topology: non-integer vertex id %q: %w", id, err)
		}
		states = append(states, s)
	}
	sort.Ints(states)
	return states, nil
}
