// SPDX-License-Identifier: MIT
// Package: graphs/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     builders themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import "math/rand"

// BuilderOption customizes a sampling run by mutating a builderConfig
// before generation begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Seed 0 selects the fixed default stream, so zero values stay
// reproducible rather than silently time-based.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand provides an explicit RNG, e.g. a per-worker stream derived via
// DeriveRNG. Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithMaxRestarts overrides the overshoot-restart budget. Panics if n < 1.
// Complexity: O(1) time, O(1) space.
func WithMaxRestarts(n int) BuilderOption {
	if n < 1 {
		panic("builder: WithMaxRestarts(n<1)")
	}
	return func(c *builderConfig) {
		c.maxRestarts = n
	}
}
