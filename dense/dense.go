// SPDX-License-Identifier: MIT

// Package dense provides a row-major int64 matrix used as the O(r·c) reference
// for the sparse engine and for rendering small matrices as grids.
//
// Dense stores elements in a flat slice for cache friendliness. It is never
// used on the hot path of sparse arithmetic; callers convert explicitly via
// sparse.ToDense when they want a materialized grid.
package dense

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

var (
	// ErrInvalidDimensions is returned for a zero or negative shape.
	ErrInvalidDimensions = errors.New("dense: dimensions must be > 0")
	// ErrOutOfRange is returned for a coordinate outside the grid.
	ErrOutOfRange = errors.New("dense: index out of range")
	// ErrDimensionMismatch is returned when operand shapes do not line up.
	ErrDimensionMismatch = errors.New("dense: dimension mismatch")
	// ErrNilMatrix is returned when an operand is nil.
	ErrNilMatrix = errors.New("dense: nil matrix")
)

// cellErrorf tags err with the accessor and the coordinate it was called with.
func cellErrorf(accessor string, i, j int, err error) error {
	return fmt.Errorf("Dense.%s[%d][%d]: %w", accessor, i, j, err)
}

// Dense is an r×c grid of int64 stored row after row in one slice.
type Dense struct {
	r, c int
	data []int64 // len(data) == r*c; cell (i,j) lives at i*c+j
}

// NewDense allocates a zero-filled rows×cols grid.
// Complexity: O(rows·cols).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Dense{r: rows, c: cols, data: make([]int64, rows*cols)}, nil
}

// FromRows builds a Dense from a rectangular slice of rows.
// Every row must have the same non-zero length.
func FromRows(rows [][]int64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	d, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != d.c {
			return nil, fmt.Errorf("FromRows: row %d: %w", i, ErrDimensionMismatch)
		}
		copy(d.data[i*d.c:(i+1)*d.c], row)
	}

	return d, nil
}

func (m *Dense) Rows() int { return m.r }

func (m *Dense) Cols() int { return m.c }

// offset maps (i, j) to its slot in data.
func (m *Dense) offset(accessor string, i, j int) (int, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return -1, cellErrorf(accessor, i, j, ErrOutOfRange)
	}

	return i*m.c + j, nil
}

// At reads cell (i, j).
func (m *Dense) At(i, j int) (int64, error) {
	off, err := m.offset("At", i, j)
	if err != nil {
		return 0, err
	}

	return m.data[off], nil
}

// Set writes v into cell (i, j).
func (m *Dense) Set(i, j int, v int64) error {
	off, err := m.offset("Set", i, j)
	if err != nil {
		return err
	}
	m.data[off] = v

	return nil
}

// Clone returns an independent copy.
// Complexity: O(r·c).
func (m *Dense) Clone() *Dense {
	return &Dense{r: m.r, c: m.c, data: slices.Clone(m.data)}
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]int64, error) {
	if _, err := m.offset("Row", i, 0); err != nil {
		return nil, err
	}
	out := make([]int64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Equal reports whether m and o have the same shape and elements.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}

	return m.r == o.r && m.c == o.c && slices.Equal(m.data, o.data)
}

// String prints one bracketed row per line, e.g. "[1, -2]\n[0, 3]\n".
func (m *Dense) String() string {
	var sb strings.Builder
	cells := make([]string, m.c)
	for i := range m.r {
		for j := range m.c {
			cells[j] = strconv.FormatInt(m.data[i*m.c+j], 10)
		}
		sb.WriteString("[" + strings.Join(cells, ", ") + "]\n")
	}

	return sb.String()
}
