// Package builder defines shared constants used by graph builders, ensuring
// consistent validation across all topology constructors.
package builder

// Minimum node counts per topology.
const (
	// MinCompleteNodes: K_1 is a single valid node without edges.
	MinCompleteNodes = 1
	// MinPathNodes: a path of fewer than 2 nodes has no edges.
	MinPathNodes = 2
	// MinCycleNodes: a ring needs 3 nodes without loops or multi-edges.
	MinCycleNodes = 3
	// MinStarNodes: one center plus at least one leaf.
	MinStarNodes = 2
	// MinWheelNodes: a cycle of at least 3 nodes plus one hub.
	MinWheelNodes = 4
	// MinGridDim is the smallest allowed dimension (rows or cols) for a Grid.
	MinGridDim = 1
	// MinPartition is the smallest side of a complete bipartite graph.
	MinPartition = 1
)

// Probability bounds for RandomDense, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
