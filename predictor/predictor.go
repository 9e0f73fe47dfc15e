// SPDX-License-Identifier: MIT
// Package: regcolor/predictor

package predictor

import (
	"context"
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/regcolor/igraph"
)

var (
	// ErrGraphNil indicates a nil *igraph.Graph.
	ErrGraphNil = errors.New("predictor: graph is nil")

	// ErrBadPalette indicates a palette with fewer than one color.
	ErrBadPalette = errors.New("predictor: palette must be >= 1")

	// ErrBadOutput indicates a nil or empty probability matrix.
	ErrBadOutput = errors.New("predictor: empty output")
)

// Predictor maps an interference graph to an N×C probability matrix.
// Implementations must be safe for concurrent use: the pipeline calls
// Predict from several goroutines.
type Predictor interface {
	Predict(ctx context.Context, g *igraph.Graph) (*mat.Dense, error)
}

// Func adapts an ordinary function to Predictor.
type Func func(ctx context.Context, g *igraph.Graph) (*mat.Dense, error)

// Predict calls f(ctx, g).
func (f Func) Predict(ctx context.Context, g *igraph.Graph) (*mat.Dense, error) {
	return f(ctx, g)
}

// oneHot renders colors as one-hot rows over a palette of c colors.
// Colors at or beyond c are clamped to c-1.
func oneHot(colors []int, c int) *mat.Dense {
	out := mat.NewDense(len(colors), c, nil)
	for j, col := range colors {
		out.Set(j, min(col, c-1), 1)
	}

	return out
}

// Constant proposes Color for every valid node and 0 for invalid slots.
type Constant struct {
	Palette int
	Color   int
}

// Predict implements Predictor.
// Complexity: O(N·C).
func (p Constant) Predict(ctx context.Context, g *igraph.Graph) (*mat.Dense, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGraphNil
	}
	if p.Palette < 1 {
		return nil, fmt.Errorf("Constant: palette=%d: %w", p.Palette, ErrBadPalette)
	}
	colors := make([]int, g.N())
	for _, j := range g.ValidNodes() {
		colors[j] = max(p.Color, 0)
	}

	return oneHot(colors, p.Palette), nil
}
