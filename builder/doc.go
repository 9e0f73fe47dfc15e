// Package builder provides deterministic fixture constructors for
// interference graphs.
//
// Every constructor is a Constructor closure applied to an *igraph.Graph by
// BuildGraph (fresh graph) or Apply (existing graph). Topologies occupy a
// contiguous run of node slots starting at the configured offset; slots
// outside that run are left untouched, so invalid padding slots behave
// exactly as they do in generator output.
//
// The package offers:
//
//   - Topologies: Complete, Path, Cycle, Star, Wheel, CompleteBipartite,
//     Grid, Isolated and the seeded RandomDense.
//   - Options (BuilderOption):
//     – WithSeed / WithRand: RNG for RandomDense.
//     – WithOffset:          first slot of the topology.
//     – WithLowerOnly:       store each edge once, as adjacency[hi][lo].
//
// Guarantees:
//
//   - Determinism: equal capacity, options, seed and constructor order yield
//     identical graphs.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors return sentinel errors (ErrTooFewVertices,
//     ErrInvalidProbability, ErrNeedRandSource, ErrCapacity,
//     ErrConstructFailed) and never panic.
//   - Every node a topology touches is valid.
//
// Complexity is documented per constructor; all are O(size of the topology).
package builder
