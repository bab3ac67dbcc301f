package graph

import "fmt"

// Graph is a fixed-size undirected simple graph backed by a symmetric
// boolean adjacency matrix.
//
// The node set and the target edge count are fixed at construction; only
// edge presence is mutable, and only through SetEdge. A Graph is created
// all-absent, populated by a generator in one pass, and read-only
// afterwards by convention (classification never mutates it).
//
// Memory: O(V²). Not safe for concurrent mutation; concurrent reads are
// fine once generation has completed.
type Graph struct {
	nodeCount       int
	targetEdgeCount int
	adjacency       [][]bool
}

// New allocates an all-absent Graph with the given dimensions.
//
// It returns ErrTooFewNodes if nodeCount < 3, ErrTooFewEdges if
// targetEdgeCount < nodeCount, and ErrTooManyEdges if targetEdgeCount
// exceeds nodeCount*(nodeCount-1)/2. These are caller mistakes and are
// never recovered automatically.
//
// Time Complexity: O(V²)
func New(nodeCount, targetEdgeCount int) (*Graph, error) {
	if nodeCount < MinNodeCount {
		return nil, fmt.Errorf("New: nodeCount=%d < min=%d: %w",
			nodeCount, MinNodeCount, ErrTooFewNodes)
	}
	if targetEdgeCount < nodeCount {
		return nil, fmt.Errorf("New: targetEdgeCount=%d < nodeCount=%d: %w",
			targetEdgeCount, nodeCount, ErrTooFewEdges)
	}
	if maxEdges := MaxEdgeCount(nodeCount); targetEdgeCount > maxEdges {
		return nil, fmt.Errorf("New: targetEdgeCount=%d > max=%d: %w",
			targetEdgeCount, maxEdges, ErrTooManyEdges)
	}

	adjacency := make([][]bool, nodeCount)
	for i := range adjacency {
		adjacency[i] = make([]bool, nodeCount)
	}

	return &Graph{
		nodeCount:       nodeCount,
		targetEdgeCount: targetEdgeCount,
		adjacency:       adjacency,
	}, nil
}

// MinNodeCount is the smallest node set admitting a Hamiltonian cycle.
const MinNodeCount = 3

// MaxEdgeCount returns the number of edges in the complete simple graph
// on n nodes, n*(n-1)/2.
func MaxEdgeCount(n int) int {
	return n * (n - 1) / 2
}

// NodeCount returns the fixed number of nodes.
func (g *Graph) NodeCount() int { return g.nodeCount }

// TargetEdgeCount returns the edge budget the generator must hit exactly.
func (g *Graph) TargetEdgeCount() int { return g.targetEdgeCount }

// SetEdge sets the presence of edge {i,j}, writing both mirrored cells so
// the symmetry invariant can never be observed broken. It returns
// ErrSelfLoop if i == j and ErrNodeOutOfRange on bad indices.
//
// Time Complexity: O(1)
func (g *Graph) SetEdge(i, j int, present bool) error {
	if err := g.checkNode(i); err != nil {
		return err
	}
	if err := g.checkNode(j); err != nil {
		return err
	}
	if i == j {
		return fmt.Errorf("SetEdge(%d,%d): %w", i, j, ErrSelfLoop)
	}
	g.adjacency[i][j] = present
	g.adjacency[j][i] = present

	return nil
}

// HasEdge reports whether edge {i,j} is present. Out-of-range indices and
// the diagonal report false.
//
// Time Complexity: O(1)
func (g *Graph) HasEdge(i, j int) bool {
	if i < 0 || i >= g.nodeCount || j < 0 || j >= g.nodeCount {
		return false
	}

	return g.adjacency[i][j]
}

// Degree returns the number of present edges incident to node i, or 0 for
// an out-of-range index.
//
// Time Complexity: O(V)
func (g *Graph) Degree(i int) int {
	if i < 0 || i >= g.nodeCount {
		return 0
	}
	d := 0
	for j := 0; j < g.nodeCount; j++ {
		if g.adjacency[i][j] {
			d++
		}
	}

	return d
}

// EdgeCount returns the total number of present edges (sum of degrees / 2).
//
// Time Complexity: O(V²)
func (g *Graph) EdgeCount() int {
	total := 0
	for i := 0; i < g.nodeCount; i++ {
		for j := i + 1; j < g.nodeCount; j++ {
			if g.adjacency[i][j] {
				total++
			}
		}
	}

	return total
}

// Neighbors returns the indices adjacent to node i in increasing order.
// The result is a fresh slice; mutating it does not affect the graph.
//
// Time Complexity: O(V)
func (g *Graph) Neighbors(i int) []int {
	if i < 0 || i >= g.nodeCount {
		return nil
	}
	var out []int
	for j := 0; j < g.nodeCount; j++ {
		if g.adjacency[i][j] {
			out = append(out, j)
		}
	}

	return out
}

// Reset clears every edge, returning the graph to its freshly constructed
// all-absent state. Used by generators restarting after an overshoot.
//
// Time Complexity: O(V²)
func (g *Graph) Reset() {
	for i := range g.adjacency {
		for j := range g.adjacency[i] {
			g.adjacency[i][j] = false
		}
	}
}

// Matrix returns a deep copy of the adjacency matrix, rows in node-index
// order. This is the snapshot form stored in dataset buckets; the live
// Graph is never retained.
//
// Time Complexity: O(V²)
func (g *Graph) Matrix() [][]bool {
	out := make([][]bool, g.nodeCount)
	for i := range g.adjacency {
		out[i] = make([]bool, g.nodeCount)
		copy(out[i], g.adjacency[i])
	}

	return out
}

// Clone returns an independent copy of g with identical dimensions and
// edge set.
//
// Time Complexity: O(V²)
func (g *Graph) Clone() *Graph {
	return &Graph{
		nodeCount:       g.nodeCount,
		targetEdgeCount: g.targetEdgeCount,
		adjacency:       g.Matrix(),
	}
}

// checkNode validates a single node index.
func (g *Graph) checkNode(i int) error {
	if i < 0 || i >= g.nodeCount {
		return fmt.Errorf("node %d not in [0,%d): %w", i, g.nodeCount, ErrNodeOutOfRange)
	}

	return nil
}
