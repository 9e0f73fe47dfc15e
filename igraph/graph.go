// SPDX-License-Identifier: MIT
// Package: regcolor/igraph
//
// graph.go — the Graph type and its read/write primitives.
//
// Design:
//   • Each row is stored as two 64-bit words (WordBits*2 == MaxNodes columns).
//   • The diagonal never lives in the row words; validity has its own mask.
//   • Accessors are bounds-checked where the index comes from callers
//     (SetEntry, AddEdge, SetValid); hot-path readers (At, Adjacent, Valid)
//     are total over the valid index range and return false outside it.

package igraph

import "fmt"

// Capacity constants of the encoding.
const (
	// WordBits is the width of one packed adjacency word.
	WordBits = 64

	// MaxNodes is the largest capacity two words per row can address.
	MaxNodes = 2 * WordBits

	// DefaultNodes is the capacity used by the reference deployment.
	DefaultNodes = 100
)

const (
	methodNew      = "New"
	methodSetEntry = "SetEntry"
	methodAddEdge  = "AddEdge"
	methodSetValid = "SetValid"
)

// row holds the adjacency bits of one node: row[0] covers columns 0..63,
// row[1] covers columns 64..127.
type row [2]uint64

// Graph is one interference-graph instance of fixed capacity N.
//
// Entries are directed as stored by the generator (adjacency[j][k]) but every
// consumer in this module treats the relation as undirected through Adjacent.
// Graph is not safe for concurrent mutation; concurrent reads are fine.
type Graph struct {
	n     int   // capacity N
	rows  []row // adjacency bits, diagonal always clear
	valid row   // validity mask (the overloaded diagonal of the source format)
}

// New returns an empty Graph with n node slots, all invalid and unconnected.
// Complexity: O(n).
func New(n int) (*Graph, error) {
	if n < 1 || n > MaxNodes {
		return nil, fmt.Errorf("%s: n=%d not in [1,%d]: %w", methodNew, n, MaxNodes, ErrBadSize)
	}

	return &Graph{n: n, rows: make([]row, n)}, nil
}

// N returns the capacity of the graph.
func (g *Graph) N() int { return g.n }

// inRange reports whether i addresses a node slot.
func (g *Graph) inRange(i int) bool { return i >= 0 && i < g.n }

func (r row) has(k int) bool { return r[k/WordBits]>>(uint(k)%WordBits)&1 == 1 }

func (r *row) set(k int, on bool) {
	mask := uint64(1) << (uint(k) % WordBits)
	if on {
		r[k/WordBits] |= mask
	} else {
		r[k/WordBits] &^= mask
	}
}

// Valid reports whether node j denotes a real virtual register.
// Out-of-range indices are never valid.
func (g *Graph) Valid(j int) bool {
	return g.inRange(j) && g.valid.has(j)
}

// At returns the stored entry adjacency[j][k]. For j == k it returns the
// validity bit, mirroring the source format's overloaded diagonal.
// Complexity: O(1).
func (g *Graph) At(j, k int) bool {
	if !g.inRange(j) || !g.inRange(k) {
		return false
	}
	if j == k {
		return g.valid.has(j)
	}

	return g.rows[j].has(k)
}

// Adjacent reports whether j and k interfere, reading the entry in either
// direction. A node is never adjacent to itself.
// Complexity: O(1).
func (g *Graph) Adjacent(j, k int) bool {
	if j == k {
		return false
	}

	return g.At(j, k) || g.At(k, j)
}

// SetEntry writes the single directed entry adjacency[j][k].
// The diagonal is rejected with ErrSelfLoop; use SetValid for it.
func (g *Graph) SetEntry(j, k int, on bool) error {
	if !g.inRange(j) || !g.inRange(k) {
		return fmt.Errorf("%s(%d,%d): %w", methodSetEntry, j, k, ErrOutOfRange)
	}
	if j == k {
		return fmt.Errorf("%s(%d,%d): %w", methodSetEntry, j, k, ErrSelfLoop)
	}
	g.rows[j].set(k, on)

	return nil
}

// AddEdge records an undirected interference between j and k: both directed
// entries are set and both endpoints become valid, exactly what the
// generator emits for a real pair of overlapping live intervals.
func (g *Graph) AddEdge(j, k int) error {
	if !g.inRange(j) || !g.inRange(k) {
		return fmt.Errorf("%s(%d,%d): %w", methodAddEdge, j, k, ErrOutOfRange)
	}
	if j == k {
		return fmt.Errorf("%s(%d,%d): %w", methodAddEdge, j, k, ErrSelfLoop)
	}
	g.rows[j].set(k, true)
	g.rows[k].set(j, true)
	g.valid.set(j, true)
	g.valid.set(k, true)

	return nil
}

// SetValid sets the validity bit of node j.
func (g *Graph) SetValid(j int, on bool) error {
	if !g.inRange(j) {
		return fmt.Errorf("%s(%d): %w", methodSetValid, j, ErrOutOfRange)
	}
	g.valid.set(j, on)

	return nil
}

// Neighbors returns every z != j adjacent to j in either direction, in
// ascending index order. Invalid neighbors are included: adjacency alone
// decides interference.
// Complexity: O(N).
func (g *Graph) Neighbors(j int) []int {
	if !g.inRange(j) {
		return nil
	}
	out := make([]int, 0, 8)
	for z := 0; z < g.n; z++ {
		if z != j && (g.rows[j].has(z) || g.rows[z].has(j)) {
			out = append(out, z)
		}
	}

	return out
}

// ValidNodes returns the indices of valid nodes in ascending order.
func (g *Graph) ValidNodes() []int {
	out := make([]int, 0, g.n)
	for j := 0; j < g.n; j++ {
		if g.valid.has(j) {
			out = append(out, j)
		}
	}

	return out
}

// Clone returns an independent deep copy.
// Complexity: O(N).
func (g *Graph) Clone() *Graph {
	rows := make([]row, len(g.rows))
	copy(rows, g.rows)

	return &Graph{n: g.n, rows: rows, valid: g.valid}
}

// Stats summarizes the structure of a Graph.
type Stats struct {
	Nodes      int // capacity N
	ValidNodes int // nodes with the validity bit set
	Entries    int // stored directed entries, diagonal excluded
	Edges      int // lower-triangular entries adjacency[j][k], k<j
	MaxDegree  int // largest undirected degree over all nodes

	// Referenced counts invalid slots that still appear as a column in some
	// other row: the footprint of the overloaded validity rule.
	Referenced int
}

// Stats computes structural counters in one pass.
// Complexity: O(N²).
func (g *Graph) Stats() Stats {
	s := Stats{Nodes: g.n}
	for j := 0; j < g.n; j++ {
		if g.valid.has(j) {
			s.ValidNodes++
		}
		degree := 0
		referenced := false
		for k := 0; k < g.n; k++ {
			if k == j {
				continue
			}
			if g.rows[j].has(k) {
				s.Entries++
				if k < j {
					s.Edges++
				}
			}
			if g.rows[j].has(k) || g.rows[k].has(j) {
				degree++
			}
			if g.rows[k].has(j) {
				referenced = true
			}
		}
		if degree > s.MaxDegree {
			s.MaxDegree = degree
		}
		if referenced && !g.valid.has(j) {
			s.Referenced++
		}
	}

	return s
}
