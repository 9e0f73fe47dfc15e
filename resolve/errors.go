// SPDX-License-Identifier: MIT
// Package: regcolor/resolve

package resolve

import "errors"

var (
	// ErrGraphNil indicates a nil *igraph.Graph.
	ErrGraphNil = errors.New("resolve: graph is nil")

	// ErrPredictionNil indicates a nil *coloring.Prediction.
	ErrPredictionNil = errors.New("resolve: prediction is nil")

	// ErrShapeMismatch indicates a prediction whose row count differs from
	// the graph capacity.
	ErrShapeMismatch = errors.New("resolve: prediction does not match graph")

	// ErrOptionViolation indicates that a WithX(...) option received a
	// meaningless value. The error is recorded by the option and returned by
	// Resolve before any work is done.
	ErrOptionViolation = errors.New("resolve: invalid option value")
)
