// SPDX-License-Identifier: MIT
// Package: graphs/builder
//
// Package builder produces random graphs satisfying the hard structural
// constraints the Hamiltonicity dataset requires:
//
//   - EdgeCount() equals the target edge count exactly;
//   - every node has degree ≥ 2;
//   - no self-loops; symmetric adjacency (enforced by package graph).
//
// Two sampling strategies are provided behind the same contract:
//
//   - Random — degree-floor seeding: each node, in a shuffled order, is
//     topped up to degree 2 with uniformly chosen distinct partners, then
//     the edge count is repaired to the target.
//   - RandomDense — unconditional seeding: every node receives exactly two
//     uniformly chosen partners regardless of current degree, then the
//     same repair. Functionally equivalent, slightly higher overshoot rate.
//
// Repair policy: if seeding falls short of the target, the deficit is
// filled by sampling currently-absent pairs without replacement (this can
// only raise degrees, so the floor survives). If seeding overshoots, the
// whole generation restarts from a zeroed matrix — removing edges could
// break the degree floor, and resampling is cheaper than a constrained
// deletion search. Restarts are internal and never surfaced; a generous
// cap guards against pathological parameter choices near the
// complete-graph bound, where the overshoot probability approaches 1 and
// no termination bound is provable. Within the supported regimes (small
// node counts, target comfortably below the maximum) restarts are rare.
//
// Determinism: all randomness flows through a single *rand.Rand resolved
// from functional options; the same seed and parameters yield the same
// graph. No time-based sources are hidden anywhere.
package builder
