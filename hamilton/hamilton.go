package hamilton

import (
	"errors"
	"fmt"

	"github.com/kul-sudo/graphs/graph"
)

// startNode anchors every search. Fixing the start loses no generality on
// a cycle and cuts the symmetric orderings explored by a factor of n.
const startNode = 0

// ErrInvalidCycle is returned by ValidateCycle when a sequence is not a
// Hamiltonian cycle of the given graph.
var ErrInvalidCycle = errors.New("hamilton: not a hamiltonian cycle")

// IsHamiltonian reports whether g contains a Hamiltonian cycle.
//
// The search runs a depth-first traversal from node 0 over the set of
// unvisited nodes, marking each node on entry and unmarking on backtrack.
// A branch succeeds when every node has been visited and an edge closes
// back to node 0. Neighbor candidates are tried in increasing node index.
//
// A nil graph is vacuously non-Hamiltonian.
//
// Time Complexity: O((V-1)!) worst case, heavily pruned by missing edges.
// Memory: O(V) for the marker array and recursion stack.
func IsHamiltonian(g *graph.Graph) bool {
	if g == nil {
		return false
	}
	n := g.NodeCount()
	visited := make([]bool, n)
	visited[startNode] = true

	return decide(g, visited, startNode, n-1)
}

// decide is the recursive core of the boolean form. remaining counts the
// nodes not yet visited; current is the last node on the partial path.
func decide(g *graph.Graph, visited []bool, current, remaining int) bool {
	if remaining == 0 {
		// All nodes placed; success iff an edge closes the cycle.
		return g.HasEdge(current, startNode)
	}
	for next := 0; next < g.NodeCount(); next++ {
		if visited[next] || !g.HasEdge(current, next) {
			continue
		}
		visited[next] = true
		if decide(g, visited, next, remaining-1) {
			return true
		}
		visited[next] = false // undo on backtrack
	}

	return false
}

// FindCycle returns a witness Hamiltonian cycle of g and true, or nil and
// false when no such cycle exists.
//
// The witness has length NodeCount()+1, starts and ends at node 0, and
// visits every other node exactly once. With neighbor exploration fixed
// to increasing node index the returned cycle is deterministic for a
// given graph, which makes it suitable for golden-output tests and for
// rendering shells that highlight the cycle.
//
// Time Complexity: O((V-1)!) worst case; Memory: O(V).
func FindCycle(g *graph.Graph) ([]int, bool) {
	if g == nil {
		return nil, false
	}
	n := g.NodeCount()
	path := make([]int, 1, n+1)
	path[0] = startNode
	visited := make([]bool, n)
	visited[startNode] = true

	cycle, ok := extend(g, path, visited)
	if !ok {
		return nil, false
	}

	return cycle, true
}

// extend grows the partial path by one node per recursion level. The
// visited marker array gives O(1) membership checks; both path and
// markers are rolled back on backtrack so a single allocation serves the
// whole search.
func extend(g *graph.Graph, path []int, visited []bool) ([]int, bool) {
	n := g.NodeCount()
	current := path[len(path)-1]
	if len(path) == n {
		// Path covers every node; close it back to the start if possible.
		if g.HasEdge(current, startNode) {
			return append(path, startNode), true
		}

		return nil, false
	}
	for next := 0; next < n; next++ {
		if visited[next] || !g.HasEdge(current, next) {
			continue
		}
		visited[next] = true
		if cycle, ok := extend(g, append(path, next), visited); ok {
			return cycle, true
		}
		visited[next] = false
	}

	return nil, false
}

// ValidateCycle checks that cycle is a sound witness for g: length
// NodeCount()+1, first and last entries equal to node 0, every node
// visited exactly once before closing, and every consecutive pair
// (including the closing pair) a present edge. A non-nil result wraps
// ErrInvalidCycle and names the first violation.
//
// Time Complexity: O(V)
func ValidateCycle(g *graph.Graph, cycle []int) error {
	if g == nil {
		return fmt.Errorf("ValidateCycle: nil graph: %w", ErrInvalidCycle)
	}
	n := g.NodeCount()
	if len(cycle) != n+1 {
		return fmt.Errorf("ValidateCycle: length %d, want %d: %w",
			len(cycle), n+1, ErrInvalidCycle)
	}
	if cycle[0] != startNode || cycle[n] != startNode {
		return fmt.Errorf("ValidateCycle: must start and end at node %d: %w",
			startNode, ErrInvalidCycle)
	}
	seen := make([]bool, n)
	for i := 0; i < n; i++ {
		v := cycle[i]
		if v < 0 || v >= n {
			return fmt.Errorf("ValidateCycle: node %d out of range: %w", v, ErrInvalidCycle)
		}
		if seen[v] {
			return fmt.Errorf("ValidateCycle: node %d visited twice: %w", v, ErrInvalidCycle)
		}
		seen[v] = true
		if !g.HasEdge(cycle[i], cycle[i+1]) {
			return fmt.Errorf("ValidateCycle: missing edge {%d,%d}: %w",
				cycle[i], cycle[i+1], ErrInvalidCycle)
		}
	}

	return nil
}
