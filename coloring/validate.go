// SPDX-License-Identifier: MIT
// Package: regcolor/coloring
//
// validate.go — edge and conflict counts of a candidate coloring.
//
// Contract:
//   • Only lower-triangular entries adjacency[j][k], k<j, are consulted, so
//     each symmetric pair is counted once and the diagonal never is.
//   • An edge is invalid when both endpoints share a color.
//   • With zero edges the percentage is not applicable (HasPercent == false).

package coloring

import (
	"fmt"

	"github.com/katalvlaran/regcolor/igraph"
)

// Metrics reports how many edges a coloring violates.
type Metrics struct {
	Edges          int     // lower-triangular entries set
	InvalidEdges   int     // edges whose endpoints share a color
	InvalidPercent float64 // InvalidEdges/Edges*100; meaningful only when HasPercent
	HasPercent     bool    // false when Edges == 0
}

// Percent returns the invalid-edge percentage and whether it is defined.
func (m Metrics) Percent() (float64, bool) { return m.InvalidPercent, m.HasPercent }

// String renders the metrics the way the batch log prints them.
func (m Metrics) String() string {
	if !m.HasPercent {
		return fmt.Sprintf("edges=%d invalid=%d invalid%%=n/a", m.Edges, m.InvalidEdges)
	}

	return fmt.Sprintf("edges=%d invalid=%d invalid%%=%.2f", m.Edges, m.InvalidEdges, m.InvalidPercent)
}

// Validate counts edges and conflicting edges of colors on g.
// Complexity: O(N²).
func Validate(g *igraph.Graph, colors Assignment) (Metrics, error) {
	if g == nil {
		return Metrics{}, ErrGraphNil
	}
	if len(colors) != g.N() {
		return Metrics{}, fmt.Errorf("Validate: %d colors for %d nodes: %w", len(colors), g.N(), ErrLengthMismatch)
	}

	var m Metrics
	for j := 0; j < g.N(); j++ {
		for k := 0; k < j; k++ {
			if !g.At(j, k) {
				continue
			}
			m.Edges++
			if colors[j] == colors[k] {
				m.InvalidEdges++
			}
		}
	}
	if m.Edges > 0 {
		m.InvalidPercent = float64(m.InvalidEdges) / float64(m.Edges) * 100
		m.HasPercent = true
	}

	return m, nil
}

// ValidatePrediction validates the effective colors of p on g.
func ValidatePrediction(g *igraph.Graph, p *Prediction) (Metrics, error) {
	colors, err := predictionColors(g, p)
	if err != nil {
		return Metrics{}, fmt.Errorf("ValidatePrediction: %w", err)
	}

	return Validate(g, colors)
}

// predictionColors checks that p matches g and returns its effective colors.
func predictionColors(g *igraph.Graph, p *Prediction) (Assignment, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if p == nil {
		return nil, ErrNilProbabilities
	}
	if p.Nodes() != g.N() {
		return nil, fmt.Errorf("%d rows for %d nodes: %w", p.Nodes(), g.N(), ErrBadShape)
	}

	return p.Colors(), nil
}
