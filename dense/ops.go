// SPDX-License-Identifier: MIT
// Package: dense
//
// Purpose:
//   - Element-wise Add/Sub and the classic triple-loop Mul over *Dense.
//   - These kernels materialize every cell on purpose: they are the
//     reference the sparse engine is measured and verified against.
//
// Determinism:
//   - Fixed loop orders (flat 0..n-1 for Add/Sub, i→k→j for Mul).

package dense

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd = "Add"
	opSub = "Sub"
	opMul = "Mul"
)

// denseOpErrorf wraps an underlying error with the given operation tag.
func denseOpErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
func ValidateSameShape(a, b *Dense) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.r != b.r || a.c != b.c {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateMulShape ensures a and b are non-nil and a.Cols() == b.Rows().
func ValidateMulShape(a, b *Dense) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.c != b.r {
		return ErrDimensionMismatch
	}

	return nil
}

// Add returns a new Dense containing the element-wise sum a + b.
// Complexity: O(r·c) time and memory.
func Add(a, b *Dense) (*Dense, error) {
	return addSub(opAdd, a, b, 1)
}

// Sub returns a new Dense containing the element-wise difference a - b.
// Complexity: O(r·c) time and memory.
func Sub(a, b *Dense) (*Dense, error) {
	return addSub(opSub, a, b, -1)
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
// Operands are not mutated; a fresh Dense is allocated.
func addSub(op string, a, b *Dense, sign int64) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, denseOpErrorf(op, err)
	}
	res, err := NewDense(a.r, a.c)
	if err != nil {
		return nil, denseOpErrorf(op, err)
	}
	for idx := range res.data {
		res.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return res, nil
}

// Mul returns the matrix product a × b.
// Complexity: O(r·n·c) time; O(r·c) memory.
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulShape(a, b); err != nil {
		return nil, denseOpErrorf(opMul, err)
	}
	aRows, aCols, bCols := a.r, a.c, b.c
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, denseOpErrorf(opMul, err)
	}

	var (
		i, j, k    int // loop iterators
		av         int64
		rowOffsetA int
		rowOffsetB int
		rowOffsetR int
	)
	// row-major: a.data at i*aCols+k, b.data at k*bCols+j
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}
