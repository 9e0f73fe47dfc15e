// SPDX-License-Identifier: MIT
// Package: regcolor/igraph
//
// encode.go — Graph → lo/hi word pairs, the inverse of Decode.

package igraph

import "fmt"

const methodEncode = "Encode"

// Encode renders g as per-node word pairs such that Decode(g.N(), lo, hi)
// reproduces g.
//
// A valid node with no entries would encode as lo == hi == 0 and decode as
// invalid, so Encode sets that node's own diagonal bit to keep it present.
// An invalid node that owns entries cannot be represented and yields
// ErrNotEncodable.
// Complexity: O(N).
func Encode(g *Graph) (lo, hi []uint64, err error) {
	lo = make([]uint64, g.n)
	hi = make([]uint64, g.n)
	for j := 0; j < g.n; j++ {
		r := g.rows[j]
		valid := g.valid.has(j)
		if !valid && (r[0] != 0 || r[1] != 0) {
			return nil, nil, fmt.Errorf("%s: node %d invalid with entries: %w", methodEncode, j, ErrNotEncodable)
		}
		if valid && r[0] == 0 && r[1] == 0 {
			r.set(j, true)
		}
		lo[j], hi[j] = r[0], r[1]
	}

	return lo, hi, nil
}
