// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"

	"github.com/katalvlaran/sparsemat/dense"
)

const (
	opToDense   = "ToDense"
	opFromDense = "FromDense"
)

// ToDense materializes m as a rows×cols dense.Dense.
// Entries outside [0,rows)×[0,cols) yield ErrOutOfRange; a shape with zero
// rows or columns yields dense.ErrInvalidDimensions.
// Complexity: O(r·c + nnz) memory and time.
func ToDense(m *Matrix) (*dense.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, sparseErrorf(opToDense, err)
	}
	d, err := dense.NewDense(m.rows, m.cols)
	if err != nil {
		return nil, sparseErrorf(opToDense, err)
	}
	for k, v := range m.entries {
		if err := d.Set(k.Row, k.Col, v); err != nil {
			return nil, sparseErrorf(opToDense,
				fmt.Errorf("(%d,%d) in %dx%d: %w", k.Row, k.Col, m.rows, m.cols, ErrOutOfRange))
		}
	}

	return d, nil
}

// FromDense returns the sparse form of d, storing only non-zero cells.
func FromDense(d *dense.Dense) (*Matrix, error) {
	if d == nil {
		return nil, sparseErrorf(opFromDense, ErrNilMatrix)
	}
	m := newMatrix(d.Rows(), d.Cols(), 0)
	for i := 0; i < d.Rows(); i++ {
		row, err := d.Row(i)
		if err != nil {
			return nil, sparseErrorf(opFromDense, err)
		}
		for j, v := range row {
			if v != 0 {
				m.entries[Key{Row: i, Col: j}] = v
			}
		}
	}

	return m, nil
}
