package graph

import "fmt"

// Verify checks the structural invariants a completed, generator-produced
// Graph must satisfy:
//
//   - adjacency is symmetric with an empty diagonal;
//   - every node has degree ≥ 2 (a Hamiltonian cycle needs two incident
//     edges per node, so the generator guarantees this floor);
//   - EdgeCount() equals the target edge count exactly.
//
// A non-nil result wraps ErrIntegrity and names the first violated
// invariant. A failure signals a defect in the generation path, not a
// transient condition; callers should treat it as fatal.
//
// Time Complexity: O(V²)
func (g *Graph) Verify() error {
	for i := 0; i < g.nodeCount; i++ {
		if g.adjacency[i][i] {
			return fmt.Errorf("Verify: self-loop at node %d: %w", i, ErrIntegrity)
		}
		for j := i + 1; j < g.nodeCount; j++ {
			if g.adjacency[i][j] != g.adjacency[j][i] {
				return fmt.Errorf("Verify: asymmetry at {%d,%d}: %w", i, j, ErrIntegrity)
			}
		}
	}
	for i := 0; i < g.nodeCount; i++ {
		if d := g.Degree(i); d < MinDegree {
			return fmt.Errorf("Verify: node %d has degree %d < %d: %w",
				i, d, MinDegree, ErrIntegrity)
		}
	}
	if got := g.EdgeCount(); got != g.targetEdgeCount {
		return fmt.Errorf("Verify: edge count %d != target %d: %w",
			got, g.targetEdgeCount, ErrIntegrity)
	}

	return nil
}

// MinDegree is the degree floor every generated graph satisfies.
const MinDegree = 2
