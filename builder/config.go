// SPDX-License-Identifier: MIT
// Package: regcolor/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng       = nil    (pure/deterministic unless seeded)
//   • offset    = 0      (topologies start at slot 0)
//   • lowerOnly = false  (edges stored in both directions)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// First slot used by a topology.
	offset int
	// Store each edge once, as adjacency[hi][lo], the way the lower-triangle
	// scan consumes it. Both endpoints are still marked valid.
	lowerOnly bool
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
