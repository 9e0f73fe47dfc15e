// SPDX-License-Identifier: MIT
// Package: regcolor/builder
//
// helpers.go — slot mapping and edge emission shared by all constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/regcolor/igraph"
)

// reserve checks that n nodes starting at cfg.offset fit into g.
// Complexity: O(1).
func reserve(method string, g *igraph.Graph, cfg builderConfig, n int) error {
	if cfg.offset+n > g.N() {
		return fmt.Errorf("%s: %d nodes at offset %d, capacity %d: %w",
			method, n, cfg.offset, g.N(), ErrCapacity)
	}

	return nil
}

// markValid sets the validity bit of local nodes 0..n-1.
func markValid(method string, g *igraph.Graph, cfg builderConfig, n int) error {
	for i := 0; i < n; i++ {
		if err := g.SetValid(cfg.offset+i, true); err != nil {
			return fmt.Errorf("%s: SetValid(%d): %w", method, cfg.offset+i, err)
		}
	}

	return nil
}

// connect emits the edge between local nodes u and v.
// Complexity: O(1).
func connect(method string, g *igraph.Graph, cfg builderConfig, u, v int) error {
	a, b := cfg.offset+u, cfg.offset+v
	if !cfg.lowerOnly {
		if err := g.AddEdge(a, b); err != nil {
			return fmt.Errorf("%s: AddEdge(%d,%d): %w", method, a, b, err)
		}
		return nil
	}
	if a < b {
		a, b = b, a
	}
	if err := g.SetEntry(a, b, true); err != nil {
		return fmt.Errorf("%s: SetEntry(%d,%d): %w", method, a, b, err)
	}
	if err := g.SetValid(a, true); err != nil {
		return fmt.Errorf("%s: SetValid(%d): %w", method, a, err)
	}
	if err := g.SetValid(b, true); err != nil {
		return fmt.Errorf("%s: SetValid(%d): %w", method, b, err)
	}

	return nil
}
