// Package graph provides the fixed-size undirected graph used throughout
// the dataset synthesizer.
//
// A Graph is a symmetric boolean adjacency matrix over a fixed node set.
// Two invariants hold at every observable point in its lifecycle:
//
//   - adjacency[i][j] == adjacency[j][i] for every i, j (undirected);
//   - adjacency[i][i] == false for every i (no self-loops).
//
// Both are enforced by the single mutation primitive SetEdge, which writes
// the two mirrored cells together and rejects self-loops.
//
// Construction validates the parameter space up front: nodeCount must be at
// least 3 (smaller graphs cannot be Hamiltonian) and the target edge count
// must lie in [nodeCount, nodeCount*(nodeCount-1)/2] — a Hamiltonian cycle
// alone needs nodeCount edges, and the complete graph bounds from above.
// Violations are reported via sentinel errors checked with errors.Is.
package graph
