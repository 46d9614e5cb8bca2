// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//  - Single source of truth for operand checks shared by the engine.
//  - Return sentinels tagged with the validator name; call sites add the
//    operation tag on top.
//
// All checks are O(1) and allocate nothing on success.

package sparse

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil returns ErrNilMatrix if m is nil.
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateOperands is the composite NotNil(a) → NotNil(b).
func ValidateOperands(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}

	return ValidateNotNil(b)
}

// ValidateSameShape ensures a and b declare equal rows and cols.
// Assumes both are non-nil.
func ValidateSameShape(a, b *Matrix) error {
	if a.rows != b.rows || a.cols != b.cols {
		return validatorErrorf("ValidateSameShape",
			fmt.Errorf("%dx%d vs %dx%d: %w", a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch))
	}

	return nil
}

// ValidateMulShape ensures a.Cols() == b.Rows(). Assumes both are non-nil.
func ValidateMulShape(a, b *Matrix) error {
	if a.cols != b.rows {
		return validatorErrorf("ValidateMulShape",
			fmt.Errorf("%dx%d × %dx%d: %w", a.rows, a.cols, b.rows, b.cols, ErrIncompatibleDimensions))
	}

	return nil
}
