// Package coloring holds color assignments, the predictor's probability
// output with its deterministic override layer, and the two measurements the
// pipeline takes before and after conflict resolution.
//
// What
//
//   - Assignment: one color per node slot; 0 means "no color / not a node".
//   - Prediction: an N×C probability matrix plus an explicit override map
//     (node → forced color). Color(j) is the override when present, otherwise
//     arg-max of row j with the first index winning ties. Overrides may name
//     colors beyond the palette.
//   - Validate: edges, conflicting edges and the invalid-edge percentage over
//     lower-triangular entries adjacency[j][k], k<j.
//   - Extract: colors of valid nodes in index order, their distinct count
//     (the observed chromatic number) and their maximum.
//
// Why an override map
//
//	The reference pipeline repaired colorings by writing a value of 2 into the
//	probability row, relying on every genuine probability being ≤ 1. The map
//	keeps that decision auditable and leaves the predictor output untouched;
//	Materialize still produces the injected tensor for consumers that expect it.
//
// Complexity
//
//   - Color: O(1) with an override, O(C) otherwise.
//   - Validate: O(N²). Extract: O(N).
//
// Errors
//
//   - ErrGraphNil, ErrNilProbabilities, ErrBadShape, ErrNaNInf,
//     ErrLengthMismatch, ErrOutOfRange, ErrBadColor.
package coloring
