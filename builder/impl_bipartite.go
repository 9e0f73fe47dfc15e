// SPDX-License-Identifier: MIT
// Package: regcolor/builder
//
// impl_bipartite.go — implementation of CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   • n1, n2 ≥ 1 (else ErrTooFewVertices).
//   • Left side occupies local nodes 0..n1-1, right side n1..n1+n2-1.
//   • Edges are emitted left-major: (0,n1), (0,n1+1), ..., (n1-1,n1+n2-1).
//
// Complexity: O(n1·n2) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/regcolor/igraph"
)

const methodCompleteBipartite = "CompleteBipartite"

// CompleteBipartite returns a Constructor that builds K_{n1,n2}, a dense
// graph that two colors always suffice for.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *igraph.Graph, cfg builderConfig) error {
		if n1 < MinPartition || n2 < MinPartition {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, MinPartition, ErrTooFewVertices)
		}
		if err := reserve(methodCompleteBipartite, g, cfg, n1+n2); err != nil {
			return err
		}
		for l := 0; l < n1; l++ {
			for r := n1; r < n1+n2; r++ {
				if err := connect(methodCompleteBipartite, g, cfg, l, r); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
