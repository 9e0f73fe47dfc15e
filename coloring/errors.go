// SPDX-License-Identifier: MIT
// Package: regcolor/coloring
//
// errors.go — sentinel errors. Callers match with errors.Is; context is added
// with %w at call sites.

package coloring

import "errors"

var (
	// ErrGraphNil indicates a nil *igraph.Graph.
	ErrGraphNil = errors.New("coloring: graph is nil")

	// ErrNilProbabilities indicates a nil probability matrix.
	ErrNilProbabilities = errors.New("coloring: probability matrix is nil")

	// ErrBadShape indicates a probability matrix whose row count does not match
	// the graph or which has no columns.
	ErrBadShape = errors.New("coloring: invalid probability shape")

	// ErrNaNInf indicates a NaN or ±Inf probability.
	ErrNaNInf = errors.New("coloring: NaN or Inf probability")

	// ErrLengthMismatch indicates an assignment whose length differs from the
	// graph capacity.
	ErrLengthMismatch = errors.New("coloring: assignment length does not match graph capacity")

	// ErrOutOfRange indicates a node index outside the prediction.
	ErrOutOfRange = errors.New("coloring: node index out of range")

	// ErrBadColor indicates a negative color.
	ErrBadColor = errors.New("coloring: color must be >= 0")
)
