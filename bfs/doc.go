// Package bfs provides breadth-first search over an igraph.Graph, returning
// hop distances, parent links, and visit order, plus connected components of
// the valid part of the graph.
//
// What
//
//   - Explore node slots in non-decreasing hop distance from a start slot.
//   - Neighbors are read in both directions (igraph.Graph.Neighbors) and
//     visited in ascending slot order, so traversal is fully reproducible.
//   - Returns a BFSResult containing:
//   - Order:  visit sequence
//   - Depth:  per slot, distance from start or -1 when unreached
//   - Parent: per slot, predecessor in the BFS tree or -1
//   - Hooks: OnEnqueue, OnDequeue, OnVisit (may abort with an error).
//   - WithFilterNeighbor prunes individual edges; WithValidOnly skips
//     invalid slots entirely.
//   - Components groups valid nodes into interference-connected sets. Each
//     set can be colored independently.
//
// Complexity (N = capacity)
//
//   - Time:   O(N²)  (neighbor lists are computed from the bit rows)
//   - Memory: O(N)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start slot is out of range.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
//   - ctx.Err() when the context passed via WithContext ends.
package bfs
