// SPDX-License-Identifier: MIT

package sparse

import "cmp"

// Key is a (row, col) coordinate. Keys order row-major: by Row, then Col.
// Coordinates are free-form integers; negative values are legal.
type Key struct {
	Row int
	Col int
}

// Compare returns -1, 0 or +1 following row-major order.
func (k Key) Compare(o Key) int {
	if c := cmp.Compare(k.Row, o.Row); c != 0 {
		return c
	}
	return cmp.Compare(k.Col, o.Col)
}

// Less reports whether k sorts before o.
func (k Key) Less(o Key) bool { return k.Compare(o) < 0 }

// Entry is a single stored (row, col, value) triple.
type Entry struct {
	Row   int
	Col   int
	Value int64
}

// Key returns the coordinate of e.
func (e Entry) Key() Key { return Key{Row: e.Row, Col: e.Col} }

// Confirmer decides whether Add/Sub should proceed when a and b have
// different shapes. It may block, e.g. on a terminal prompt.
type Confirmer func(a, b *Matrix) bool

// Always is a Confirmer that accepts every mismatch.
func Always(_, _ *Matrix) bool { return true }

// Never is a Confirmer that declines every mismatch.
func Never(_, _ *Matrix) bool { return false }
