// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// All operations return these sentinels wrapped with an operation tag
// ("Add: ...", "Decode: ..."); callers match them with errors.Is.

package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat is matched by every *FormatError produced by the decoder.
	ErrFormat = errors.New("sparse: malformed matrix text")

	// ErrDimensionMismatch indicates Add/Sub operands with different shapes
	// and no Confirmer to decide whether to proceed.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrCancelled is returned when a Confirmer declined a mismatched Add/Sub.
	// It marks the "no result" outcome rather than a failure.
	ErrCancelled = errors.New("sparse: operation cancelled")

	// ErrIncompatibleDimensions indicates Mul operands with a.Cols() != b.Rows().
	ErrIncompatibleDimensions = errors.New("sparse: incompatible dimensions for multiplication")

	// ErrNilMatrix indicates that a nil *Matrix was passed to an operation.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrInvalidDimensions indicates negative rows or columns.
	ErrInvalidDimensions = errors.New("sparse: dimensions must be >= 0")

	// ErrOutOfRange indicates an entry outside the declared shape where one is
	// not allowed (dense conversion).
	ErrOutOfRange = errors.New("sparse: entry outside declared shape")

	// ErrInvalidDensity indicates a random-generator density outside [0,1].
	ErrInvalidDensity = errors.New("sparse: density must be in [0,1]")

	// ErrInvalidValueRange indicates a random value range that cannot yield a
	// non-zero value.
	ErrInvalidValueRange = errors.New("sparse: value range has no non-zero value")
)

// sparseErrorf wraps an underlying error with the given operation tag.
func sparseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// FormatError describes why a line of matrix text was rejected.
// It matches ErrFormat under errors.Is and unwraps to the numeric parse
// error, if any.
type FormatError struct {
	Line   int    // 1-based line number
	Text   string // offending line, without line terminator
	Reason string
	Err    error // underlying cause, may be nil
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("sparse: line %d %q: %s: %v", e.Line, e.Text, e.Reason, e.Err)
	}
	return fmt.Sprintf("sparse: line %d %q: %s", e.Line, e.Text, e.Reason)
}

// Is reports ErrFormat as a match.
func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// Unwrap returns the underlying cause.
func (e *FormatError) Unwrap() error { return e.Err }
