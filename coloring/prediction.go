// SPDX-License-Identifier: MIT
// Package: regcolor/coloring
//
// prediction.go — probability output + explicit override layer.
//
// Contract:
//   • The wrapped matrix is never written; callers must not mutate it either.
//   • Color(j) = override[j] if present, else the first arg-max of row j.
//   • Override replaces any earlier override of the same node (latest wins),
//     so the node's effective color is always the one written last.
//   • Overrides may exceed the palette; Materialize widens the matrix to fit.

package coloring

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DefaultInjectedValue is the value Materialize writes for an override.
// Any value above 1 outranks every genuine probability.
const DefaultInjectedValue = 2.0

// Prediction is the predictor's N×C probability output for one instance,
// plus the overrides applied by conflict resolution.
type Prediction struct {
	probs     *mat.Dense
	rows      int
	cols      int
	overrides map[int]int
}

// NewPrediction wraps probs after checking it is non-empty and finite.
// Complexity: O(N·C).
func NewPrediction(probs *mat.Dense) (*Prediction, error) {
	if probs == nil {
		return nil, ErrNilProbabilities
	}
	if probs.IsEmpty() {
		return nil, fmt.Errorf("NewPrediction: empty matrix: %w", ErrBadShape)
	}
	r, c := probs.Dims()
	for i := 0; i < r; i++ {
		for _, v := range probs.RawRowView(i) {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("NewPrediction: row %d: %w", i, ErrNaNInf)
			}
		}
	}

	return &Prediction{probs: probs, rows: r, cols: c, overrides: make(map[int]int)}, nil
}

// Nodes returns the number of rows (node slots).
func (p *Prediction) Nodes() int { return p.rows }

// Palette returns the number of columns (palette size C).
func (p *Prediction) Palette() int { return p.cols }

// ArgMax returns the first index of the largest probability in row j,
// ignoring overrides.
func (p *Prediction) ArgMax(j int) int {
	return floats.MaxIdx(p.probs.RawRowView(j))
}

// Color returns the effective color of node j. It panics on an out-of-range
// index like any slice access; use Nodes to bound loops.
func (p *Prediction) Color(j int) int {
	if c, ok := p.overrides[j]; ok {
		return c
	}

	return p.ArgMax(j)
}

// Colors returns the effective color of every node.
// Complexity: O(N·C).
func (p *Prediction) Colors() Assignment {
	out := make(Assignment, p.rows)
	for j := range out {
		out[j] = p.Color(j)
	}

	return out
}

// Override forces node j to color c from now on.
func (p *Prediction) Override(j, c int) error {
	if j < 0 || j >= p.rows {
		return fmt.Errorf("Override(%d,%d): %w", j, c, ErrOutOfRange)
	}
	if c < 0 {
		return fmt.Errorf("Override(%d,%d): %w", j, c, ErrBadColor)
	}
	p.overrides[j] = c

	return nil
}

// Overridden returns the forced color of node j, if any.
func (p *Prediction) Overridden(j int) (int, bool) {
	c, ok := p.overrides[j]

	return c, ok
}

// Overrides returns the forced nodes in ascending order.
func (p *Prediction) Overrides() []int {
	out := make([]int, 0, len(p.overrides))
	for j := range p.overrides {
		out = append(out, j)
	}
	sort.Ints(out)

	return out
}

// Materialize renders the overrides into a fresh probability matrix in the
// legacy form: each forced entry [j][c] holds injected, every other entry is
// copied. Columns are added when an override names a color beyond the
// palette. injected must exceed every genuine probability for a plain arg-max
// to recover Colors; DefaultInjectedValue does for normalized rows.
// Complexity: O(N·C').
func (p *Prediction) Materialize(injected float64) *mat.Dense {
	width := p.cols
	for _, c := range p.overrides {
		if c+1 > width {
			width = c + 1
		}
	}
	out := mat.NewDense(p.rows, width, nil)
	for i := 0; i < p.rows; i++ {
		copy(out.RawRowView(i), p.probs.RawRowView(i))
	}
	for j, c := range p.overrides {
		out.Set(j, c, injected)
	}

	return out
}
