// SPDX-License-Identifier: MIT

// Package sparse implements an integer sparse matrix keyed by (row, col)
// coordinates, the arithmetic engine over it (Add, Sub, Mul), and the
// line-oriented text codec used to move matrices in and out of files.
//
// Text format:
//
//	rows=<int>
//	cols=<int>
//	(<row>, <col>, <value>)
//	...
//
// Decode accepts tuples with or without parentheses and overwrites repeated
// coordinates (last occurrence wins). Encode always writes tuples sorted by
// row, then column.
//
// Arithmetic never mutates its operands and never materializes the dense grid:
//
//   - Add/Sub walk the union of both key sets, O(nnzA + nnzB).
//   - Mul indexes the right operand by row once and then visits only the
//     matching rows, O(nnzA · avg row density of B).
//
// Shape policy:
//
//   - Add/Sub on mismatched shapes consult the Confirmer passed with
//     WithConfirm. Without one the call fails with ErrDimensionMismatch; a
//     declining Confirmer yields ErrCancelled and no matrix. The result shape
//     is the element-wise maximum of both shapes.
//   - Mul requires a.Cols() == b.Rows() and fails with
//     ErrIncompatibleDimensions otherwise.
//
// Zero results:
//
//	Values that cancel to zero during Add/Sub/Mul are stored as explicit
//	zeros. Pass WithPruneZeros(true), or call Matrix.Prune, to drop them.
//
// Entry coordinates are not checked against the declared shape; only the
// dense bridge (ToDense) rejects out-of-shape entries.
package sparse
