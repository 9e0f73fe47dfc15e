// SPDX-License-Identifier: MIT
// Package: regcolor/labels

package labels

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/regcolor/igraph"
)

// Sentinel errors.
var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("labels: graph is nil")

	// ErrLengthMismatch is returned when the raw label slice does not cover
	// exactly the graph's node slots.
	ErrLengthMismatch = errors.New("labels: label count does not match graph capacity")
)

// Canonical is the result of canonicalizing one instance.
type Canonical struct {
	// Labels holds the canonical id per node slot; 0 for invalid nodes.
	Labels []int

	// IDs maps each raw label seen on a valid node to its canonical id.
	IDs map[int64]int
}

// Distinct returns how many canonical ids were assigned, i.e. the number of
// colors the ground-truth allocation used on valid nodes.
func (c Canonical) Distinct() int { return len(c.IDs) }

// canonicalizer carries the per-instance state: mapping and next id.
type canonicalizer struct {
	ids  map[int64]int
	next int
}

func (c *canonicalizer) id(raw int64) int {
	if id, ok := c.ids[raw]; ok {
		return id
	}
	id := c.next
	c.ids[raw] = id
	c.next++

	return id
}

// Canonicalize maps raw labels of g's node slots to canonical ids.
// Complexity: O(N) time, O(distinct labels) space.
func Canonicalize(g *igraph.Graph, raw []int64) (Canonical, error) {
	if g == nil {
		return Canonical{}, ErrGraphNil
	}
	if len(raw) != g.N() {
		return Canonical{}, fmt.Errorf("Canonicalize: %d labels for %d nodes: %w", len(raw), g.N(), ErrLengthMismatch)
	}

	c := canonicalizer{ids: make(map[int64]int), next: 1}
	out := make([]int, len(raw))
	for j, r := range raw {
		if !g.Valid(j) {
			continue // stays 0
		}
		out[j] = c.id(r)
	}

	return Canonical{Labels: out, IDs: c.ids}, nil
}
