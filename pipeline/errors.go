// SPDX-License-Identifier: MIT
// Package: regcolor/pipeline

package pipeline

import (
	"errors"
	"fmt"
)

var (
	// ErrNilConfig indicates a nil *config.Config.
	ErrNilConfig = errors.New("pipeline: config is nil")

	// ErrNilPredictor indicates a nil predictor.Predictor.
	ErrNilPredictor = errors.New("pipeline: predictor is nil")

	// ErrPredictionShape indicates predictor output whose row count differs
	// from the graph capacity.
	ErrPredictionShape = errors.New("pipeline: prediction rows do not match graph capacity")
)

// InstanceError reports the failure of one instance of a batch.
type InstanceError struct {
	Index int    // zero-based row index
	ID    string // identifier column, when present
	Err   error
}

func (e *InstanceError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("instance %d (%s): %v", e.Index, e.ID, e.Err)
	}
	return fmt.Sprintf("instance %d: %v", e.Index, e.Err)
}

func (e *InstanceError) Unwrap() error { return e.Err }
