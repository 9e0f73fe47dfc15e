// SPDX-License-Identifier: MIT
// Package: regcolor/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits i—(i+1 mod n) for i = 0..n-1; the closing edge comes last.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/regcolor/igraph"
)

const methodCycle = "Cycle"

// Cycle returns a Constructor that builds the ring C_n. Odd rings need three
// colors, even rings two.
func Cycle(n int) Constructor {
	return func(g *igraph.Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}
		if err := reserve(methodCycle, g, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := connect(methodCycle, g, cfg, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
