// SPDX-License-Identifier: MIT
// Package: regcolor/builder

package builder

import (
	"fmt"

	"github.com/katalvlaran/regcolor/igraph"
)

const methodIsolated = "Isolated"

// Isolated returns a Constructor that marks n slots valid without any edge:
// registers whose live ranges overlap nothing.
// Complexity: O(n).
func Isolated(n int) Constructor {
	return func(g *igraph.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", methodIsolated, n, ErrTooFewVertices)
		}
		if err := reserve(methodIsolated, g, cfg, n); err != nil {
			return err
		}

		return markValid(methodIsolated, g, cfg, n)
	}
}
