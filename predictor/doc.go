// Package predictor defines the collaborator that turns an interference graph
// into per-node color probabilities, and ships baseline implementations.
//
// What:
//
//	– Predictor: Predict(ctx, g) returns an N×C matrix of non-negative
//	  scores; the arg-max of row j is the color proposed for node j.
//	– Func: adapts a plain function to Predictor.
//	– Softmax / WithSoftmax: row-wise, numerically stable softmax for
//	  predictors that emit raw logits.
//	– WelshPowell: deterministic greedy coloring by descending degree,
//	  emitted as one-hot rows. Colors start at 1; invalid slots get color 0.
//	– Constant: every valid node on one color, the worst possible guess.
//
// Baselines clamp colors to the palette (C-1 at most), so a too-small
// palette yields conflicts for the resolver to repair rather than an error.
//
// Complexity:
//
//	– Softmax: O(N·C).
//	– WelshPowell: O(N² + N·C) with N the capacity.
//
// Errors (sentinel):
//
//	– ErrGraphNil    nil graph.
//	– ErrBadPalette  palette size < 1.
//	– ErrBadOutput   a wrapped predictor returned a nil or empty matrix.
package predictor
