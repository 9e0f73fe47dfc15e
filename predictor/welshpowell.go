// SPDX-License-Identifier: MIT
// Package: regcolor/predictor
//
// welshpowell.go — greedy baseline coloring.
//
// Order: descending degree, ascending node id on ties. Each node takes the
// smallest color ≥ 1 not held by an already-colored neighbor. Only valid
// nodes and the edges between them take part (igraph.Graph.Undirected).

package predictor

import (
	"context"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/regcolor/igraph"
)

// WelshPowell is a deterministic classical-coloring Predictor.
type WelshPowell struct {
	Palette int // number of columns C of the output
}

// Predict implements Predictor.
func (p WelshPowell) Predict(ctx context.Context, g *igraph.Graph) (*mat.Dense, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGraphNil
	}
	if p.Palette < 1 {
		return nil, fmt.Errorf("WelshPowell: palette=%d: %w", p.Palette, ErrBadPalette)
	}

	return oneHot(GreedyColors(g), p.Palette), nil
}

// GreedyColors returns the Welsh–Powell coloring of the valid part of g,
// one entry per slot, 0 for invalid slots. Colors are not clamped.
// Complexity: O(N²).
func GreedyColors(g *igraph.Graph) []int {
	ug := g.Undirected()
	nodes := graph.NodesOf(ug.Nodes())
	degree := make(map[int64]int, len(nodes))
	for _, n := range nodes {
		degree[n.ID()] = ug.From(n.ID()).Len()
	}
	sort.Slice(nodes, func(a, b int) bool {
		da, db := degree[nodes[a].ID()], degree[nodes[b].ID()]
		if da != db {
			return da > db
		}
		return nodes[a].ID() < nodes[b].ID()
	})

	colors := make([]int, g.N())
	for _, n := range nodes {
		used := make(map[int]bool)
		for _, nb := range graph.NodesOf(ug.From(n.ID())) {
			if c := colors[nb.ID()]; c != 0 {
				used[c] = true
			}
		}
		c := 1
		for used[c] {
			c++
		}
		colors[n.ID()] = c
	}

	return colors
}
