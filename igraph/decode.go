// SPDX-License-Identifier: MIT
// Package: regcolor/igraph
//
// decode.go — lo/hi word pairs → Graph.
//
// Contract:
//   • Bit b of lo[j] sets adjacency[j][b]; bit b of hi[j] sets adjacency[j][64+b].
//   • Columns at or beyond N are ignored (the words may be wider than the graph).
//   • valid[j] = lo[j] != 0 || hi[j] != 0, computed on the raw words, so a
//     node whose only bit is its own diagonal (or an ignored column) is valid.
//   • Diagonal bits never reach the row storage.
//
// Complexity:
//   • Time: O(N) word operations.
//   • Space: O(N).

package igraph

import "fmt"

const (
	methodDecode       = "Decode"
	methodDecodeRecord = "DecodeRecord"
)

// columnMasks returns the masks keeping only columns < n in the low and high
// words of a row.
func columnMasks(n int) (lo, hi uint64) {
	switch {
	case n >= MaxNodes:
		return ^uint64(0), ^uint64(0)
	case n > WordBits:
		return ^uint64(0), uint64(1)<<uint(n-WordBits) - 1
	case n == WordBits:
		return ^uint64(0), 0
	default:
		return uint64(1)<<uint(n) - 1, 0
	}
}

// Decode builds a Graph of capacity n from per-node word pairs.
// len(lo) and len(hi) must both equal n.
func Decode(n int, lo, hi []uint64) (*Graph, error) {
	g, err := New(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodDecode, err)
	}
	if len(lo) != n || len(hi) != n {
		return nil, fmt.Errorf("%s: len(lo)=%d len(hi)=%d want %d: %w",
			methodDecode, len(lo), len(hi), n, ErrBadSize)
	}

	loMask, hiMask := columnMasks(n)
	for j := 0; j < n; j++ {
		// Raw words decide validity before any masking.
		if lo[j] == 0 && hi[j] == 0 {
			continue
		}
		g.rows[j] = row{lo[j] & loMask, hi[j] & hiMask}
		g.rows[j].set(j, false) // diagonal lives in the validity mask
		g.valid.set(j, true)
	}

	return g, nil
}

// DecodeRecord decodes the adjacency part of a parsed Record.
func DecodeRecord(rec Record) (*Graph, error) {
	g, err := Decode(len(rec.Lo), rec.Lo, rec.Hi)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", methodDecodeRecord, rec.ID, err)
	}

	return g, nil
}
