// SPDX-License-Identifier: MIT
// Package: regcolor/builder
//
// impl_path.go — implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits i—(i+1) for i = 0..n-2 in ascending order.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/regcolor/igraph"
)

const methodPath = "Path"

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(g *igraph.Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, MinPathNodes, ErrTooFewVertices)
		}
		if err := reserve(methodPath, g, cfg, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := connect(methodPath, g, cfg, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
