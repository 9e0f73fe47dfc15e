// Package resolve repairs a predicted register coloring so that no two
// interfering registers share a color.
//
// What:
//
//	Resolve walks every stored lower-triangular entry adjacency[j][k], k<j, in
//	row-major order. A pair whose endpoints currently share a color is a
//	conflict. For each conflict the colors 1..max_color are tried in order:
//	the first color unused by every neighbor of j recolors j, otherwise the
//	first color unused by every neighbor of k recolors k. When no existing
//	color fits either endpoint a new color is allocated for k.
//
// Why:
//
//	The predictor is a heuristic and routinely emits colorings with a few
//	conflicting edges. A single greedy pass turns them into a proper coloring
//	while reusing the predicted palette wherever possible.
//
// Guarantees:
//
//	– A recolored node only ever receives a color none of its neighbors
//	  holds, so repairs never introduce new conflicts and one pass leaves
//	  zero invalid edges.
//	– A conflict-free input is returned unchanged (no overrides).
//	– Output is a pure function of the graph and the prediction.
//	– max_color never decreases.
//
// Neighbors are read in both directions (adjacency[j][z] or adjacency[z][j])
// and include invalid slots, so a color parked on an invalid slot is still
// avoided.
//
// Complexity:
//
//	– Time:  O(N² + P·M·D) where P is the conflict count, M the final
//	  max_color and D the largest degree.
//	– Space: O(N²) for the pair list and neighbor lists.
//
// Errors (sentinel):
//
//	– ErrGraphNil           nil graph.
//	– ErrPredictionNil      nil prediction.
//	– ErrShapeMismatch      prediction rows differ from the graph capacity.
//	– ErrOptionViolation    an Option received a meaningless value.
//
// Example:
//
//	res, err := resolve.Resolve(g, pred, resolve.WithLogger(log))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.MaxColorAfter, len(res.Overrides))
package resolve
