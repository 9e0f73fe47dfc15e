// SPDX-License-Identifier: MIT
// Package: regcolor/builder
//
// impl_wheel.go — implementation of Wheel(n) constructor.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices).
//   • Local nodes 0..n-2 form the rim C_{n-1}; local node n-1 is the hub.
//   • Rim edges are emitted first (same order as Cycle), spokes after.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/regcolor/igraph"
)

const methodWheel = "Wheel"

// Wheel returns a Constructor that builds W_n = C_{n-1} + hub.
func Wheel(n int) Constructor {
	return func(g *igraph.Graph, cfg builderConfig) error {
		if n < MinWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, MinWheelNodes, ErrTooFewVertices)
		}
		if err := reserve(methodWheel, g, cfg, n); err != nil {
			return err
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}
		hub := n - 1
		for i := 0; i < hub; i++ {
			if err := connect(methodWheel, g, cfg, hub, i); err != nil {
				return err
			}
		}

		return nil
	}
}
