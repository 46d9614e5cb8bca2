// SPDX-License-Identifier: MIT
// Package: sparse
//
// Arithmetic engine: Add, Sub and Mul over *Matrix.
//
// Contract:
//   - Operands are read-only; every result is a freshly allocated Matrix.
//   - No dense grid is materialized.
//   - Results do not depend on map iteration order: Add/Sub touch each key
//     once per operand and Mul accumulates additively.

package sparse

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opNegate    = "Negate"
	opScale     = "Scale"
	opTranspose = "Transpose"
	opMap       = "Map"
	opFilter    = "Filter"
)

// Add returns a + b over the union of both key sets.
//
// Shapes that differ are passed to the Confirmer installed with WithConfirm:
// without one Add fails with ErrDimensionMismatch, a declining one yields
// ErrCancelled. The result shape is (max rows, max cols).
// Complexity: O(nnzA + nnzB).
func Add(a, b *Matrix, opts ...Option) (*Matrix, error) {
	return combine(opAdd, a, b, 1, gatherOptions(opts...))
}

// Sub returns a - b over the union of both key sets.
// Shape policy and complexity are those of Add.
func Sub(a, b *Matrix, opts ...Option) (*Matrix, error) {
	return combine(opSub, a, b, -1, gatherOptions(opts...))
}

// combine computes out[k] = a[k] + sign*b[k] for sign ∈ {+1, -1}.
// Implementation:
//   - Stage 1: nil checks, then the shape policy (confirm on mismatch).
//   - Stage 2: copy a, then fold b in with sign; keys only in b start at 0.
//   - Stage 3: optional zero pruning.
func combine(op string, a, b *Matrix, sign int64, o Options) (*Matrix, error) {
	if err := ValidateOperands(a, b); err != nil {
		return nil, sparseErrorf(op, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		if o.confirm == nil {
			return nil, sparseErrorf(op, err)
		}
		if !o.confirm(a, b) {
			return nil, sparseErrorf(op, ErrCancelled)
		}
	}

	res := newMatrix(max(a.rows, b.rows), max(a.cols, b.cols), len(a.entries)+len(b.entries))
	for k, v := range a.entries {
		res.entries[k] = v
	}
	for k, w := range b.entries {
		res.entries[k] += sign * w
	}

	if o.pruneZeros {
		res.prune()
	}

	return res, nil
}

// Mul returns the matrix product a × b.
//
// Requires a.Cols() == b.Rows(); otherwise ErrIncompatibleDimensions is
// returned and no Confirmer is consulted. The result shape is
// (a.Rows(), b.Cols()).
//
// Implementation:
//   - Stage 1: index b by row (row → col → value), O(nnzB).
//   - Stage 2: for each (r,c)=v in a, visit row c of b and accumulate
//     out[(r,j)] += v*w for every (j,w) there.
//
// Complexity: O(nnzB + nnzA · avg row density of b).
func Mul(a, b *Matrix, opts ...Option) (*Matrix, error) {
	if err := ValidateOperands(a, b); err != nil {
		return nil, sparseErrorf(opMul, err)
	}
	if err := ValidateMulShape(a, b); err != nil {
		return nil, sparseErrorf(opMul, err)
	}
	o := gatherOptions(opts...)

	idx := buildRowIndex(b)
	res := newMatrix(a.rows, b.cols, 0)
	var out Key
	for k, v := range a.entries {
		row, ok := idx[k.Col]
		if !ok {
			continue
		}
		out.Row = k.Row
		for j, w := range row {
			out.Col = j
			res.entries[out] += v * w
		}
	}

	if o.pruneZeros {
		res.prune()
	}

	return res, nil
}
