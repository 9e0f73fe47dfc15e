// SPDX-License-Identifier: MIT
// Package: regcolor/igraph
//
// record.go — one CSV row → Record.
//
// Row layout for capacity N:
//   [id,] lo_0, hi_0, lo_1, hi_1, ..., lo_{N-1}, hi_{N-1}, label_0, ..., label_{N-1}
//
//   • LayoutPlain expects exactly 3N fields.
//   • LayoutIndexed expects 3N+1 fields, the first one being an opaque id.
//   • LayoutAuto accepts either and picks by field count.
//   • A single trailing empty field is dropped first: the generator terminates
//     every word with ", " and leaves one behind.
//   • Fields are trimmed; words parse as base-10 uint64, labels as int64
//     (an integral float such as "3.0" is accepted for labels).

package igraph

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const methodParseRecord = "ParseRecord"

// Layout selects how many leading columns precede the word columns.
type Layout int

const (
	// LayoutAuto detects an identifier column from the field count.
	LayoutAuto Layout = iota
	// LayoutPlain has no identifier column.
	LayoutPlain
	// LayoutIndexed has exactly one leading identifier column.
	LayoutIndexed
)

// String returns the configuration token of the layout.
func (l Layout) String() string {
	switch l {
	case LayoutPlain:
		return "plain"
	case LayoutIndexed:
		return "indexed"
	default:
		return "auto"
	}
}

// ParseLayout maps a configuration token to a Layout.
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return LayoutAuto, nil
	case "plain":
		return LayoutPlain, nil
	case "indexed":
		return LayoutIndexed, nil
	default:
		return LayoutAuto, fmt.Errorf("ParseLayout(%q): %w", s, ErrBadLayout)
	}
}

// Record is one parsed graph instance before decoding.
type Record struct {
	ID     string   // identifier column, empty for LayoutPlain
	Lo     []uint64 // low adjacency word per node slot
	Hi     []uint64 // high adjacency word per node slot
	Labels []int64  // raw label per node slot
}

// ParseRecord parses the fields of one row for capacity n.
// Any failure wraps ErrMalformedRecord with the offending column.
func ParseRecord(fields []string, n int, layout Layout) (Record, error) {
	if n < 1 || n > MaxNodes {
		return Record{}, fmt.Errorf("%s: n=%d not in [1,%d]: %w", methodParseRecord, n, MaxNodes, ErrBadSize)
	}
	if l := len(fields); l > 0 && strings.TrimSpace(fields[l-1]) == "" {
		fields = fields[:l-1]
	}

	want := 3 * n
	offset := 0
	switch layout {
	case LayoutPlain:
	case LayoutIndexed:
		offset = 1
	default:
		if len(fields) == want+1 {
			offset = 1
		}
	}
	if len(fields) != want+offset {
		return Record{}, fmt.Errorf("%s: %d fields, want %d (layout %s): %w",
			methodParseRecord, len(fields), want+offset, layout, ErrMalformedRecord)
	}

	rec := Record{
		Lo:     make([]uint64, n),
		Hi:     make([]uint64, n),
		Labels: make([]int64, n),
	}
	if offset == 1 {
		rec.ID = strings.TrimSpace(fields[0])
	}
	words := fields[offset : offset+2*n]
	for j := 0; j < n; j++ {
		var err error
		if rec.Lo[j], err = parseWord(words[2*j]); err != nil {
			return Record{}, fmt.Errorf("%s: column %d (lo of node %d): %v: %w",
				methodParseRecord, offset+2*j, j, err, ErrMalformedRecord)
		}
		if rec.Hi[j], err = parseWord(words[2*j+1]); err != nil {
			return Record{}, fmt.Errorf("%s: column %d (hi of node %d): %v: %w",
				methodParseRecord, offset+2*j+1, j, err, ErrMalformedRecord)
		}
	}
	labels := fields[offset+2*n:]
	for j := 0; j < n; j++ {
		var err error
		if rec.Labels[j], err = parseLabel(labels[j]); err != nil {
			return Record{}, fmt.Errorf("%s: column %d (label of node %d): %v: %w",
				methodParseRecord, offset+2*n+j, j, err, ErrMalformedRecord)
		}
	}

	return rec, nil
}

func parseWord(s string) (uint64, error) {
	return strconv.ParseUint(strings.TrimSpace(s), 10, 64)
}

func parseLabel(s string) (int64, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		return v, nil
	}
	f, ferr := strconv.ParseFloat(s, 64)
	if ferr != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) ||
		f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, err
	}

	return int64(f), nil
}
