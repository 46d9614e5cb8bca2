// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"maps"
	"slices"
)

const opNew = "New"

// Matrix is a sparse integer matrix: a declared shape plus the stored
// entries keyed by coordinate. The zero value is an empty 0×0 matrix.
//
// Matrices returned by this package are owned by the caller and never share
// storage with the operands they were computed from.
type Matrix struct {
	rows, cols int
	entries    map[Key]int64
}

// New returns an empty rows×cols matrix.
// Returns ErrInvalidDimensions if rows < 0 or cols < 0.
func New(rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, sparseErrorf(opNew, fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidDimensions))
	}

	return newMatrix(rows, cols, 0), nil
}

// FromEntries returns a rows×cols matrix holding entries.
// Later entries overwrite earlier ones at the same coordinate.
func FromEntries(rows, cols int, entries ...Entry) (*Matrix, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		m.entries[e.Key()] = e.Value
	}

	return m, nil
}

// newMatrix allocates a matrix without validating the shape.
func newMatrix(rows, cols, capHint int) *Matrix {
	return &Matrix{rows: rows, cols: cols, entries: make(map[Key]int64, capHint)}
}

// Rows returns the declared number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the declared number of columns.
func (m *Matrix) Cols() int { return m.cols }

// NNZ returns the number of stored entries, explicit zeros included.
func (m *Matrix) NNZ() int { return len(m.entries) }

// At returns the value stored at (row, col) and whether it is present.
func (m *Matrix) At(row, col int) (int64, bool) {
	v, ok := m.entries[Key{Row: row, Col: col}]
	return v, ok
}

// Get returns the value at (row, col), or 0 when absent.
func (m *Matrix) Get(row, col int) int64 {
	return m.entries[Key{Row: row, Col: col}]
}

// Set stores v at (row, col), replacing any previous value.
// Set is meant for building a matrix; operands passed to arithmetic are
// only ever read.
func (m *Matrix) Set(row, col int, v int64) {
	if m.entries == nil {
		m.entries = make(map[Key]int64)
	}
	m.entries[Key{Row: row, Col: col}] = v
}

// Delete removes the entry at (row, col), if any.
func (m *Matrix) Delete(row, col int) {
	delete(m.entries, Key{Row: row, Col: col})
}

// Keys returns all stored coordinates in row-major order.
func (m *Matrix) Keys() []Key {
	keys := slices.Collect(maps.Keys(m.entries))
	slices.SortFunc(keys, Key.Compare)

	return keys
}

// Entries returns all stored entries in row-major order.
// Complexity: O(nnz log nnz).
func (m *Matrix) Entries() []Entry {
	keys := m.Keys()
	out := make([]Entry, len(keys))
	for i, k := range keys {
		out[i] = Entry{Row: k.Row, Col: k.Col, Value: m.entries[k]}
	}

	return out
}

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{rows: m.rows, cols: m.cols, entries: maps.Clone(m.nonNilEntries())}
}

// Prune returns a copy of m without explicitly stored zeros.
func (m *Matrix) Prune() *Matrix {
	out := m.Clone()
	out.prune()

	return out
}

// prune deletes zero-valued entries in place. Only used on fresh results.
func (m *Matrix) prune() {
	maps.DeleteFunc(m.entries, func(_ Key, v int64) bool { return v == 0 })
}

// Equal reports whether m and o have the same shape and the same stored
// entries. A stored zero and an absent entry are not equal.
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}

	return maps.Equal(m.nonNilEntries(), o.nonNilEntries())
}

// String returns a short description such as "3x4 (nnz=5)".
func (m *Matrix) String() string {
	return fmt.Sprintf("%dx%d (nnz=%d)", m.rows, m.cols, len(m.entries))
}

func (m *Matrix) nonNilEntries() map[Key]int64 {
	if m.entries == nil {
		return map[Key]int64{}
	}
	return m.entries
}
