// SPDX-License-Identifier: MIT
// Package: regcolor/coloring

package coloring

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/regcolor/igraph"
)

// Chromatic is the color view of the valid nodes of one instance.
type Chromatic struct {
	Colors   []int // colors of valid nodes, node-index order
	Distinct int   // number of distinct values in Colors
	Max      int   // largest value in Colors, 0 when there are none
}

// Empty reports whether the instance has no valid node.
func (c Chromatic) Empty() bool { return len(c.Colors) == 0 }

// Join renders Colors comma separated, the sequence handed to the
// downstream allocator.
func (c Chromatic) Join() string {
	parts := make([]string, len(c.Colors))
	for i, v := range c.Colors {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ",")
}

// Extract collects the colors of valid nodes and counts the distinct ones.
// Complexity: O(N).
func Extract(g *igraph.Graph, colors Assignment) (Chromatic, error) {
	if g == nil {
		return Chromatic{}, ErrGraphNil
	}
	if len(colors) != g.N() {
		return Chromatic{}, fmt.Errorf("Extract: %d colors for %d nodes: %w", len(colors), g.N(), ErrLengthMismatch)
	}

	out := Chromatic{Colors: make([]int, 0, g.N())}
	seen := make(map[int]struct{})
	for j := 0; j < g.N(); j++ {
		if !g.Valid(j) {
			continue
		}
		c := colors[j]
		out.Colors = append(out.Colors, c)
		seen[c] = struct{}{}
		if len(out.Colors) == 1 || c > out.Max {
			out.Max = c
		}
	}
	out.Distinct = len(seen)

	return out, nil
}

// ExtractPrediction extracts the effective colors of p on g.
func ExtractPrediction(g *igraph.Graph, p *Prediction) (Chromatic, error) {
	colors, err := predictionColors(g, p)
	if err != nil {
		return Chromatic{}, fmt.Errorf("ExtractPrediction: %w", err)
	}

	return Extract(g, colors)
}
