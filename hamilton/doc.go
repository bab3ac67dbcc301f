// Package hamilton decides Hamiltonicity of the fixed-size undirected
// graphs produced by this module.
//
// It offers two interchangeable forms over the same backtracking search:
//
//   - IsHamiltonian — boolean decision.
//   - FindCycle — returns a concrete witness cycle of length n+1,
//     starting and ending at node 0, or reports that none exists.
//
// Both are exact: they either extract a Hamiltonian cycle or prove, by
// exhausting the pruned search tree, that no cycle exists. The search
// explores at most (n-1)! vertex orderings in the worst case but prunes
// every branch lacking a connecting edge, which is decisive at the edge
// densities the generator produces.
//
// Complexity is exponential in the node count; the package is intended
// for the small graphs (single digits to low teens of nodes) this module
// targets, and must not be silently applied beyond that range.
//
// Functions here are pure: no shared state, no I/O, no logging. Repeated
// calls on the same immutable graph return the same decision and, since
// neighbors are explored in increasing node index, the same witness.
package hamilton
