package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/iohmm/core"
)

func TestGraph_AddEdgeConstraints(t *testing.T) {
	g := core.NewGraph() // unweighted, undirected, no loops

	if _, err := g.AddEdge(VertexA, VertexB, Weight1); !errors.Is(err, core.ErrBadWeight) {
		t.Fatalf("weight on unweighted graph: want ErrBadWeight, got %v", err)
	}
	if _, err := g.AddEdge(VertexA, VertexA, Weight0); !errors.Is(err, core.ErrLoopNotAllowed) {
		t.Fatalf("self-loop without WithLoops: want ErrLoopNotAllowed, got %v", err)
	}
	if _, err := g.AddEdge(VertexEmpty, VertexB, Weight0); !errors.Is(err, core.ErrEmptyVertexID) {
		t.Fatalf("empty endpoint: want ErrEmptyVertexID, got %v", err)
	}

	eid, err := g.AddEdge(VertexA, VertexB, Weight0)
	if err != nil {
		t.Fatalf("AddEdge(A,B,0): unexpected error %v", err)
	}
	if eid == "" {
		t.Fatalf("AddEdge should return a non-empty edge ID")
	}
}

func TestGraph_AddEdgeAutoCreatesVertices(t *testing.T) {
	g := core.NewGraph()
	if _, err := g.AddEdge(VertexA, VertexB, Weight0); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if !g.HasVertex(VertexA) || !g.HasVertex(VertexB) {
		t.Fatalf("AddEdge should auto-create both endpoints")
	}
}

func TestGraph_AddEdgeLoopsAllowed(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	if _, err := g.AddEdge(VertexA, VertexA, Weight0); err != nil {
		t.Fatalf("self-loop with WithLoops: unexpected error %v", err)
	}
	nbrs, err := g.NeighborIDs(VertexA)
	if err != nil {
		t.Fatalf("NeighborIDs: %v", err)
	}
	if len(nbrs) != 1 || nbrs[0] != VertexA {
		t.Fatalf("NeighborIDs(A) = %v, want [A]", nbrs)
	}
}

func TestGraph_AddEdgeDirectedDoesNotMirror(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	if _, err := g.AddEdge(VertexA, VertexB, Weight0); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	aNbrs, err := g.NeighborIDs(VertexA)
	if err != nil {
		t.Fatalf("NeighborIDs(A): %v", err)
	}
	if len(aNbrs) != 1 || aNbrs[0] != VertexB {
		t.Fatalf("NeighborIDs(A) = %v, want [B]", aNbrs)
	}

	bNbrs, err := g.NeighborIDs(VertexB)
	if err != nil {
		t.Fatalf("NeighborIDs(B): %v", err)
	}
	if len(bNbrs) != 0 {
		t.Fatalf("NeighborIDs(B) = %v, want [] (directed edge should not mirror)", bNbrs)
	}
}

func TestGraph_AddEdgeUndirectedMirrors(t *testing.T) {
	g := core.NewGraph(core.WithDirected(false))
	if _, err := g.AddEdge(VertexA, VertexB, Weight0); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	bNbrs, err := g.NeighborIDs(VertexB)
	if err != nil {
		t.Fatalf("NeighborIDs(B): %v", err)
	}
	if len(bNbrs) != 1 || bNbrs[0] != VertexA {
		t.Fatalf("NeighborIDs(B) = %v, want [A] (undirected edge should mirror)", bNbrs)
	}
}

func TestGraph_AddEdgeWeighted(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithDirected(true))
	if _, err := g.AddEdge(VertexA, VertexB, Weight2); err != nil {
		t.Fatalf("AddEdge with weight: %v", err)
	}
}

func TestGraph_AddEdgeRepeatUpdatesWeightInstead(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithDirected(true))
	first, err := g.AddEdge(VertexA, VertexB, Weight1)
	if err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	second, err := g.AddEdge(VertexA, VertexB, Weight2)
	if err != nil {
		t.Fatalf("AddEdge (repeat): %v", err)
	}
	if first != second {
		t.Fatalf("repeat AddEdge on the same pair should reuse the edge ID: got %q then %q", first, second)
	}
	nbrs, err := g.NeighborIDs(VertexA)
	if err != nil {
		t.Fatalf("NeighborIDs: %v", err)
	}
	if len(nbrs) != 1 {
		t.Fatalf("NeighborIDs(A) = %v, want exactly one neighbor (no multi-edges)", nbrs)
	}
}

func TestGraph_NeighborIDsUnknownVertex(t *testing.T) {
	g := core.NewGraph()
	if _, err := g.NeighborIDs(VertexEmpty); !errors.Is(err, core.ErrEmptyVertexID) {
		t.Fatalf("NeighborIDs(\"\"): want ErrEmptyVertexID, got %v", err)
	}
	if _, err := g.NeighborIDs(VertexA); !errors.Is(err, core.ErrVertexNotFound) {
		t.Fatalf("NeighborIDs(missing): want ErrVertexNotFound, got %v", err)
	}
}

func TestGraph_NeighborIDsSortedAscending(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	for _, to := range []string{VertexD, VertexB, VertexC} {
		if _, err := g.AddEdge(VertexA, to, Weight0); err != nil {
			t.Fatalf("AddEdge(A,%s): %v", to, err)
		}
	}

	got, err := g.NeighborIDs(VertexA)
	if err != nil {
		t.Fatalf("NeighborIDs: %v", err)
	}
	want := []string{VertexB, VertexC, VertexD}
	if len(got) != len(want) {
		t.Fatalf("NeighborIDs(A) length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("NeighborIDs(A)[%d] = %q, want %q (got %v)", i, got[i], want[i], got)
		}
	}
}
