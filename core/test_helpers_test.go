// Package core_test contains test helpers for core.Graph.
package core_test

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
)

// Common weights used across core tests.
const (
	Weight0 int64 = 0
	Weight1 int64 = 1
	Weight2 int64 = 2
)
