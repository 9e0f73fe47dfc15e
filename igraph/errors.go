// SPDX-License-Identifier: MIT
// Package: regcolor/igraph
//
// errors.go — sentinel errors for the igraph package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Implementations attach context with fmt.Errorf("%s: ...: %w", method, ErrX).
//   • Nothing in this package panics on user-supplied input.

package igraph

import "errors"

var (
	// ErrBadSize indicates a capacity outside 1..MaxNodes or word/label slices
	// whose length does not match the capacity.
	ErrBadSize = errors.New("igraph: invalid size")

	// ErrOutOfRange indicates a node index outside 0..N-1.
	ErrOutOfRange = errors.New("igraph: node index out of range")

	// ErrSelfLoop indicates an attempt to add an edge from a node to itself.
	// The diagonal is reserved for the validity bit.
	ErrSelfLoop = errors.New("igraph: self-loop not representable")

	// ErrMalformedRecord indicates a row that cannot be decoded: wrong field
	// count or a non-numeric field. The instance must be skipped, never
	// zero-filled.
	ErrMalformedRecord = errors.New("igraph: malformed record")
)

// ErrNotEncodable indicates a Graph whose state the word encoding cannot
// carry: an invalid node that still owns adjacency entries would decode as
// valid.
var ErrNotEncodable = errors.New("igraph: graph not representable in word encoding")

// ErrBadLayout indicates an unknown record layout token.
var ErrBadLayout = errors.New("igraph: unknown record layout")
