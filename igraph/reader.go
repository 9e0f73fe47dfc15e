// SPDX-License-Identifier: MIT
// Package: regcolor/igraph
//
// reader.go — streaming Record reader over CSV input.

package igraph

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// Reader yields one Record per CSV row. A malformed row surfaces as an error
// wrapping ErrMalformedRecord from Next; the Reader stays usable and the
// following call continues with the next row.
type Reader struct {
	csv    *csv.Reader
	n      int
	layout Layout
	row    int // zero-based index of the last row returned or rejected
}

// NewReader wraps r for graphs of capacity n.
func NewReader(r io.Reader, n int, layout Layout) (*Reader, error) {
	if n < 1 || n > MaxNodes {
		return nil, fmt.Errorf("NewReader: n=%d not in [1,%d]: %w", n, MaxNodes, ErrBadSize)
	}
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // field count is validated per row by ParseRecord
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	return &Reader{csv: cr, n: n, layout: layout, row: -1}, nil
}

// Row returns the zero-based index of the row most recently read.
func (r *Reader) Row() int { return r.row }

// Next returns the next Record, or io.EOF once the input is exhausted.
func (r *Reader) Next() (Record, error) {
	fields, err := r.csv.Read()
	if errors.Is(err, io.EOF) {
		return Record{}, io.EOF
	}
	r.row++
	if err != nil {
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			return Record{}, fmt.Errorf("row %d: %v: %w", r.row, err, ErrMalformedRecord)
		}
		return Record{}, fmt.Errorf("row %d: %w", r.row, err)
	}
	rec, err := ParseRecord(fields, r.n, r.layout)
	if err != nil {
		return Record{}, fmt.Errorf("row %d: %w", r.row, err)
	}

	return rec, nil
}
