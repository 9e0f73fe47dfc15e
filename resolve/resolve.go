// SPDX-License-Identifier: MIT
// Package: regcolor/resolve
//
// resolve.go — single-pass greedy conflict repair.
//
// State per call:
//   • colors   – working copy of the effective coloring, kept in sync with
//     every Prediction.Override so later pairs see earlier repairs.
//   • maxColor – current color budget, grows only by allocation.
//   • pairs    – stored lower-triangular entries, row-major.
//   • adj      – neighbor lists, either direction, invalid slots included.

package resolve

import (
	"fmt"

	"github.com/katalvlaran/regcolor/coloring"
	"github.com/katalvlaran/regcolor/igraph"
)

const methodResolve = "Resolve"

// Override records one repair.
type Override struct {
	J, K      int  // the conflicting pair, K < J
	Node      int  // the recolored endpoint (J or K)
	From, To  int  // color before and after
	Allocated bool // To was a freshly allocated color
}

// Result summarizes one Resolve call.
type Result struct {
	MaxColorBefore int                 // highest color among valid nodes on entry
	MaxColorAfter  int                 // budget after the pass
	Conflicts      int                 // conflicting pairs met during the scan
	Allocated      int                 // colors added beyond MaxColorBefore
	Overrides      []Override          // repairs in application order
	Colors         coloring.Assignment // effective coloring after the pass
	Empty          bool                // graph had no valid node; nothing was done
}

// pair is one stored entry adjacency[j][k], k<j.
type pair struct{ j, k int }

// resolver holds the per-call state.
type resolver struct {
	opts     Options
	pred     *coloring.Prediction
	colors   coloring.Assignment
	adj      [][]int
	maxColor int
	res      *Result
}

// Resolve repairs the conflicts of p on g in place: every repair is written
// to p through Prediction.Override and reported in the Result.
func Resolve(g *igraph.Graph, p *coloring.Prediction, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if p == nil {
		return nil, ErrPredictionNil
	}
	if p.Nodes() != g.N() {
		return nil, fmt.Errorf("%s: %d rows for %d nodes: %w", methodResolve, p.Nodes(), g.N(), ErrShapeMismatch)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, fmt.Errorf("%s: %w", methodResolve, o.err)
	}

	colors := p.Colors()
	res := &Result{Colors: colors}
	valid := g.ValidNodes()
	if len(valid) == 0 {
		res.Empty = true
		return res, nil
	}
	for _, j := range valid {
		if colors[j] > res.MaxColorBefore {
			res.MaxColorBefore = colors[j]
		}
	}

	r := &resolver{
		opts:     o,
		pred:     p,
		colors:   colors,
		adj:      neighborLists(g),
		maxColor: max(res.MaxColorBefore, o.MinMaxColor),
		res:      res,
	}
	for _, pr := range lowerPairs(g) {
		if colors[pr.j] != colors[pr.k] {
			continue
		}
		res.Conflicts++
		if err := r.repair(pr); err != nil {
			return nil, fmt.Errorf("%s: pair (%d,%d): %w", methodResolve, pr.j, pr.k, err)
		}
	}
	res.MaxColorAfter = r.maxColor
	res.Allocated = max(0, r.maxColor-max(res.MaxColorBefore, o.MinMaxColor))

	return res, nil
}

// repair fixes one conflicting pair: reuse the smallest color free at j,
// then at k, else allocate a new color for k.
func (r *resolver) repair(pr pair) error {
	for y := 1; y <= r.maxColor; y++ {
		if r.usable(pr.j, y) {
			return r.apply(pr, pr.j, y, false)
		}
		if r.usable(pr.k, y) {
			return r.apply(pr, pr.k, y, false)
		}
	}
	c := r.maxColor + 1
	for !r.usable(pr.k, c) {
		c++ // an invalid neighbor may already park a color above the budget
	}
	r.maxColor = c

	return r.apply(pr, pr.k, c, true)
}

// usable reports whether no neighbor of node holds color y.
func (r *resolver) usable(node, y int) bool {
	for _, z := range r.adj[node] {
		if r.colors[z] == y {
			return false
		}
	}

	return true
}

func (r *resolver) apply(pr pair, node, to int, allocated bool) error {
	if err := r.pred.Override(node, to); err != nil {
		return err
	}
	ov := Override{J: pr.j, K: pr.k, Node: node, From: r.colors[node], To: to, Allocated: allocated}
	r.colors[node] = to
	r.res.Overrides = append(r.res.Overrides, ov)
	r.opts.Logger.Debug().
		Int("j", ov.J).Int("k", ov.K).Int("node", ov.Node).
		Int("from", ov.From).Int("to", ov.To).Bool("allocated", ov.Allocated).
		Msg("override")
	if r.opts.OnOverride != nil {
		r.opts.OnOverride(ov)
	}

	return nil
}

// lowerPairs lists the stored entries adjacency[j][k], k<j, row-major.
// Complexity: O(N²).
func lowerPairs(g *igraph.Graph) []pair {
	var out []pair
	for j := 0; j < g.N(); j++ {
		for k := 0; k < j; k++ {
			if g.At(j, k) {
				out = append(out, pair{j: j, k: k})
			}
		}
	}

	return out
}

// neighborLists precomputes Graph.Neighbors for every slot.
// Complexity: O(N²).
func neighborLists(g *igraph.Graph) [][]int {
	out := make([][]int, g.N())
	for j := range out {
		out[j] = g.Neighbors(j)
	}

	return out
}
