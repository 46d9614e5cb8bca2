// SPDX-License-Identifier: MIT

package sparse

// rowIndex maps a row number to that row's (col → value) pairs.
// It gives Mul O(1) access to the row of B matching each column of A.
type rowIndex map[int]map[int]int64

// buildRowIndex groups the entries of m by row.
// Complexity: O(nnz) time and memory.
func buildRowIndex(m *Matrix) rowIndex {
	idx := make(rowIndex)
	for k, v := range m.entries {
		row, ok := idx[k.Row]
		if !ok {
			row = make(map[int]int64)
			idx[k.Row] = row
		}
		row[k.Col] = v
	}

	return idx
}
