// SPDX-License-Identifier: MIT
// Package: regcolor/builder
//
// impl_star.go — implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Local node 0 is the center; leaves 1..n-1 are spoked in ascending order.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/regcolor/igraph"
)

const methodStar = "Star"

// Star returns a Constructor that builds a star: one long-lived register
// interfering with n-1 short ones.
func Star(n int) Constructor {
	return func(g *igraph.Graph, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, MinStarNodes, ErrTooFewVertices)
		}
		if err := reserve(methodStar, g, cfg, n); err != nil {
			return err
		}
		for leaf := 1; leaf < n; leaf++ {
			if err := connect(methodStar, g, cfg, 0, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
