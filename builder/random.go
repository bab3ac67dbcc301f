// SPDX-License-Identifier: MIT
// Package: graphs/builder
//
// random.go — implementations of Random and RandomDense.
//
// Canonical model (two-phase seed-then-repair):
//   • Phase 1 seeds the degree floor: every node ends with degree ≥ 2.
//   • Phase 2 repairs the total: Δ = target − current edge count.
//       Δ == 0 → accept;
//       Δ  > 0 → add Δ uniformly sampled absent pairs (degrees only grow);
//       Δ  < 0 → internal overshoot, restart from a zeroed matrix.
//
// Contract:
//   • Parameter domain is owned by graph.New; its sentinels propagate.
//   • Postconditions on success: EdgeCount() == targetEdgeCount and
//     Degree(i) ≥ 2 for every i. Violations would be a defect
//     (graph.ErrIntegrity), not an expected outcome.
//   • Returns only sentinel-wrapped errors; never panics at runtime.
//
// Complexity:
//   • Per attempt: O(V²) seeding + O(V²) absent-pair enumeration.
//   • Attempts are bounded by the restart budget; expected count is small
//     whenever the target sits comfortably below the complete-graph bound.
//
// Determinism:
//   • Stable node order (shuffled once per attempt from the caller's RNG)
//     and stable pair-enumeration order (i asc, then j asc) make outcomes
//     identical for the same seed and parameters.

package builder

import (
	"fmt"

	"github.com/kul-sudo/graphs/graph"
	"github.com/kul-sudo/graphs/hamilton"
)

// File-local constants (no magic literals; stable method tags).
const (
	methodRandom      = "Random"
	methodRandomDense = "RandomDense"
)

// seedFunc is one of the two seeding strategies applied in phase 1.
type seedFunc func(g *graph.Graph, cfg builderConfig) error

// Random samples a graph with exactly targetEdgeCount edges and minimum
// degree 2 using degree-floor seeding: nodes are visited in a shuffled
// order and each is topped up to degree 2 with uniformly chosen distinct
// partners, leaving already-saturated nodes untouched.
func Random(nodeCount, targetEdgeCount int, opts ...BuilderOption) (*graph.Graph, error) {
	return generate(methodRandom, nodeCount, targetEdgeCount, seedDegreeFloor, opts...)
}

// RandomDense samples a graph under the same postconditions using
// unconditional seeding: every node receives exactly two uniformly chosen
// distinct partners regardless of its current degree. Functionally
// equivalent to Random with a slightly higher overshoot (restart) rate.
func RandomDense(nodeCount, targetEdgeCount int, opts ...BuilderOption) (*graph.Graph, error) {
	return generate(methodRandomDense, nodeCount, targetEdgeCount, seedDense, opts...)
}

// generate runs the shared seed-then-repair loop for both strategies.
func generate(method string, nodeCount, targetEdgeCount int, seed seedFunc, opts ...BuilderOption) (*graph.Graph, error) {
	// 1) Resolve options into an immutable config (deterministic defaults).
	cfg := newBuilderConfig(opts...)

	// 2) Validate the parameter domain once; graph.New owns the rules and
	//    its sentinels surface unchanged (the caller's ConfigError class).
	g, err := graph.New(nodeCount, targetEdgeCount)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	// 3) Seed/repair until the exact target is hit or the budget runs out.
	for attempt := 0; attempt < cfg.maxRestarts; attempt++ {
		if err = seed(g, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}

		delta := targetEdgeCount - g.EdgeCount()
		switch {
		case delta == 0:
			// Seeding landed exactly on target.
			return g, nil
		case delta > 0:
			// Fill the deficit; adding absent pairs cannot lower degrees,
			// so the phase-1 floor survives.
			if err = addAbsentPairs(g, delta, cfg); err != nil {
				return nil, fmt.Errorf("%s: %w", method, err)
			}

			return g, nil
		default:
			// Overshoot: restart from scratch rather than deleting edges;
			// deletion could break the degree floor. Callers never see
			// these restarts.
			g.Reset()
		}
	}

	return nil, fmt.Errorf("%s: edge budget overshot in all %d attempts: %w",
		method, cfg.maxRestarts, ErrConstructFailed)
}

// seedDegreeFloor visits nodes in a shuffled order and connects each
// under-saturated node to uniformly chosen distinct non-neighbors until
// its degree reaches 2. Nodes already at degree ≥ 2 are skipped.
//
// Complexity: O(V²) time, O(V) extra space.
func seedDegreeFloor(g *graph.Graph, cfg builderConfig) error {
	n := g.NodeCount()
	order := permRange(n, cfg.rng)

	var candidates []int // reused across nodes to limit allocations
	for _, node := range order {
		need := graph.MinDegree - g.Degree(node)
		if need <= 0 {
			continue
		}

		// Candidate partners: every other node not already adjacent.
		candidates = candidates[:0]
		for j := 0; j < n; j++ {
			if j != node && !g.HasEdge(node, j) {
				candidates = append(candidates, j)
			}
		}

		// Uniform distinct picks; nodeCount ≥ 3 guarantees enough candidates.
		for _, pick := range sampleIndices(len(candidates), need, cfg.rng) {
			if err := g.SetEdge(node, candidates[pick], true); err != nil {
				return err
			}
		}
	}

	return nil
}

// seedDense connects every node, in a shuffled order, to exactly two
// uniformly chosen distinct partners regardless of current adjacency
// (re-setting a present edge is a no-op). After a node is processed its
// two chosen partners are both adjacent to it, so the degree floor holds.
//
// Complexity: O(V²) time, O(V) extra space.
func seedDense(g *graph.Graph, cfg builderConfig) error {
	n := g.NodeCount()
	order := permRange(n, cfg.rng)

	others := make([]int, 0, n-1)
	for _, node := range order {
		// All partners except the node itself.
		others = others[:0]
		for j := 0; j < n; j++ {
			if j != node {
				others = append(others, j)
			}
		}
		for _, pick := range sampleIndices(len(others), graph.MinDegree, cfg.rng) {
			if err := g.SetEdge(node, others[pick], true); err != nil {
				return err
			}
		}
	}

	return nil
}

// addAbsentPairs enumerates all currently-absent pairs {i,j}, i<j, in a
// stable order, samples delta of them uniformly without replacement, and
// sets each present. The target bound targetEdgeCount ≤ V(V−1)/2
// guarantees enough absent pairs exist.
//
// Complexity: O(V²) time and space.
func addAbsentPairs(g *graph.Graph, delta int, cfg builderConfig) error {
	n := g.NodeCount()
	absent := make([][2]int, 0, graph.MaxEdgeCount(n)-g.EdgeCount())
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !g.HasEdge(i, j) {
				absent = append(absent, [2]int{i, j})
			}
		}
	}

	for _, pick := range sampleIndices(len(absent), delta, cfg.rng) {
		pair := absent[pick]
		if err := g.SetEdge(pair[0], pair[1], true); err != nil {
			return err
		}
	}

	return nil
}

// RandomWithKind repeatedly samples graphs until one of the requested
// Hamiltonicity class appears, mirroring the demonstration flow where a
// fresh graph of a chosen class is drawn on demand. The class is decided
// solely by the hamilton oracle.
//
// Complexity: per attempt, generation cost plus an oracle run; attempt
// count is probabilistic and depends on the density regime.
func RandomWithKind(nodeCount, targetEdgeCount int, hamiltonian bool, opts ...BuilderOption) (*graph.Graph, error) {
	cfg := newBuilderConfig(opts...)
	for attempt := 0; attempt < cfg.maxRestarts; attempt++ {
		g, err := Random(nodeCount, targetEdgeCount, WithRand(cfg.rng), WithMaxRestarts(cfg.maxRestarts))
		if err != nil {
			return nil, err
		}
		if hamilton.IsHamiltonian(g) == hamiltonian {
			return g, nil
		}
	}

	return nil, fmt.Errorf("RandomWithKind: no graph of requested class in %d attempts: %w",
		cfg.maxRestarts, ErrConstructFailed)
}
