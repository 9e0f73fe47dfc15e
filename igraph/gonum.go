// SPDX-License-Identifier: MIT
// Package: regcolor/igraph
//
// gonum.go — export to a gonum simple.UndirectedGraph.

package igraph

import "gonum.org/v1/gonum/graph/simple"

// Undirected exports the valid nodes of g and every interference between two
// valid nodes as a gonum undirected graph. Node IDs equal slot indices.
// Invalid slots are left out: they carry no register.
// Complexity: O(N²).
func (g *Graph) Undirected() *simple.UndirectedGraph {
	ug := simple.NewUndirectedGraph()
	for j := 0; j < g.n; j++ {
		if g.valid.has(j) {
			ug.AddNode(simple.Node(j))
		}
	}
	for j := 0; j < g.n; j++ {
		if !g.valid.has(j) {
			continue
		}
		for k := 0; k < j; k++ {
			if g.valid.has(k) && g.Adjacent(j, k) {
				ug.SetEdge(simple.Edge{F: simple.Node(j), T: simple.Node(k)})
			}
		}
	}

	return ug
}
