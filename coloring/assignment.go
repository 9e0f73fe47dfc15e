// SPDX-License-Identifier: MIT
// Package: regcolor/coloring

package coloring

// NoColor marks a slot without a color (not a real node).
const NoColor = 0

// Assignment holds one color per node slot.
type Assignment []int

// Clone returns an independent copy.
func (a Assignment) Clone() Assignment {
	out := make(Assignment, len(a))
	copy(out, a)

	return out
}

// Equal reports whether a and b assign the same color to every slot.
func (a Assignment) Equal(b Assignment) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
