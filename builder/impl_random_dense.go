// SPDX-License-Identifier: MIT
// Package: regcolor/builder
//
// impl_random_dense.go - implementation of RandomDense(n, p) constructor.
//
// Model:
//   - Erdős–Rényi: include each unordered pair {i,j}, i<j, independently with prob p.
//   - Every one of the n nodes is marked valid, even when it draws no edge.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil for 0 < p < 1 (else ErrNeedRandSource);
//     p ∈ {0,1} is deterministic and needs no RNG.
//
// Complexity:
//   - Time: O(n²) Bernoulli trials.
//   - Space: O(1) extra.
//
// Determinism:
//   - Stable trial order: i asc, then j asc (j>i).

package builder

import (
	"fmt"

	"github.com/katalvlaran/regcolor/igraph"
)

const (
	methodRandomDense      = "RandomDense"
	minRandomDenseVertices = 1
)

// RandomDense returns a Constructor that samples a random interference graph
// over n valid nodes with independent edge probability p.
func RandomDense(n int, p float64) Constructor {
	return func(g *igraph.Graph, cfg builderConfig) error {
		if n < minRandomDenseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomDense, n, minRandomDenseVertices, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomDense, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		rng := cfg.rng
		if rng == nil && p > 0.0 && p < 1.0 {
			return fmt.Errorf("%s: rng is required: %w", methodRandomDense, ErrNeedRandSource)
		}
		if err := reserve(methodRandomDense, g, cfg, n); err != nil {
			return err
		}
		if err := markValid(methodRandomDense, g, cfg, n); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				var hit bool
				if rng == nil {
					hit = p == 1.0
				} else {
					hit = rng.Float64() < p
				}
				if !hit {
					continue
				}
				if err := connect(methodRandomDense, g, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
