// SPDX-License-Identifier: MIT
// Package: regcolor/predictor
//
// softmax.go — row-wise softmax over raw scores.
//
// Each row is shifted by its maximum before exponentiation so large logits
// cannot overflow. The arg-max of every row is preserved.

package predictor

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/regcolor/igraph"
)

// Softmax returns a new matrix whose rows are the softmax of the rows of
// logits. logits is not modified and must be non-empty.
// Complexity: O(N·C).
func Softmax(logits mat.Matrix) *mat.Dense {
	r, _ := logits.Dims()
	out := mat.DenseCopyOf(logits)
	for i := 0; i < r; i++ {
		row := out.RawRowView(i)
		floats.AddConst(-floats.Max(row), row)
		for k, v := range row {
			row[k] = math.Exp(v)
		}
		floats.Scale(1/floats.Sum(row), row)
	}

	return out
}

// WithSoftmax wraps a logit-emitting predictor so that it emits probabilities.
func WithSoftmax(p Predictor) Predictor {
	return Func(func(ctx context.Context, g *igraph.Graph) (*mat.Dense, error) {
		logits, err := p.Predict(ctx, g)
		if err != nil {
			return nil, err
		}
		if logits == nil || logits.IsEmpty() {
			return nil, fmt.Errorf("WithSoftmax: %w", ErrBadOutput)
		}

		return Softmax(logits), nil
	})
}
