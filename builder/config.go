// SPDX-License-Identifier: MIT
// Package: graphs/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng         = rngFromSeed(0)      (fixed default stream; see rng.go)
//   • maxRestarts = defaultMaxRestarts

package builder

import "math/rand"

// builderConfig aggregates all knobs used by the sampling strategies.
// It is passed by VALUE to implementation helpers (immutable to callers).
type builderConfig struct {
	// RNG for all stochastic choices; never nil after resolution.
	rng *rand.Rand
	// Restart budget for the overshoot/repair loop.
	maxRestarts int
}

// defaultMaxRestarts bounds the overshoot-restart loop. The value is
// deliberately generous: for supported parameter ranges a handful of
// restarts suffices, and the cap exists only to turn a theoretically
// unbounded loop into a reportable ErrConstructFailed.
const defaultMaxRestarts = 4096

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (last-wins semantics).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:         nil, // resolved below; nil means “use default stream”
		maxRestarts: defaultMaxRestarts,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	// Resolve the default deterministic stream when no seed was given.
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}

	return cfg
}
