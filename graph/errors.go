package graph

import "errors"

var (
	// ErrTooFewNodes indicates nodeCount < 3; such graphs cannot contain a
	// Hamiltonian cycle and are rejected at construction.
	ErrTooFewNodes = errors.New("graph: node count must be at least 3")
	// ErrTooFewEdges indicates targetEdgeCount < nodeCount; a Hamiltonian
	// cycle alone requires nodeCount edges.
	ErrTooFewEdges = errors.New("graph: target edge count below node count")
	// ErrTooManyEdges indicates targetEdgeCount exceeds the complete-graph
	// bound nodeCount*(nodeCount-1)/2.
	ErrTooManyEdges = errors.New("graph: target edge count exceeds complete graph")
	// ErrNodeOutOfRange indicates a node index outside [0, nodeCount).
	ErrNodeOutOfRange = errors.New("graph: node index out of range")
	// ErrSelfLoop indicates an attempt to set an edge {i,i}.
	ErrSelfLoop = errors.New("graph: self-loops are not allowed")
	// ErrIntegrity indicates a completed graph violates an expected
	// invariant (asymmetry, loop, degree < 2, or edge-count mismatch).
	// It signals a defect, not a recoverable condition.
	ErrIntegrity = errors.New("graph: integrity violation")
)
