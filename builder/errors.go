// SPDX-License-Identifier: MIT
// Package: graphs/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context via %w wrapping; sentinels are never
//     redefined with formatted strings.
//   • Builders MUST NOT panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).
//   • Parameter-domain violations are NOT redeclared here: graph.New owns
//     that validation and its sentinels (ErrTooFewNodes, ErrTooFewEdges,
//     ErrTooManyEdges) propagate through the builder unchanged.

package builder

import "errors"

// ErrConstructFailed indicates the builder exhausted its restart budget
// without producing a graph that meets the exact edge target. This can
// only happen for parameter choices where seeding overshoots the target
// almost surely (target near the complete-graph bound combined with a
// tight budget); within supported ranges it is not observed.
// Usage: if errors.Is(err, ErrConstructFailed) { /* retry with another seed */ }.
var ErrConstructFailed = errors.New("builder: construction failed")
