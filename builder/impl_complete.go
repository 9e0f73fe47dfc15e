// SPDX-License-Identifier: MIT
// Package: regcolor/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Marks slots offset..offset+n-1 valid, then emits each pair {i,j}, i<j.
//
// Complexity:
//   • Time: O(n²) edges emission.
//   • Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/regcolor/igraph"
)

const methodComplete = "Complete"

// Complete returns a Constructor that builds the complete graph K_n, the
// worst case for any coloring: it needs exactly n colors.
func Complete(n int) Constructor {
	return func(g *igraph.Graph, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}
		if err := reserve(methodComplete, g, cfg, n); err != nil {
			return err
		}
		if err := markValid(methodComplete, g, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := connect(methodComplete, g, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
