// SPDX-License-Identifier: MIT

package sparse

// Negate returns -m.
func Negate(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, sparseErrorf(opNegate, err)
	}

	return scale(m, -1), nil
}

// Scale returns k·m. Scaling by 0 keeps every key with a zero value.
func Scale(m *Matrix, k int64) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, sparseErrorf(opScale, err)
	}

	return scale(m, k), nil
}

func scale(m *Matrix, k int64) *Matrix {
	res := newMatrix(m.rows, m.cols, len(m.entries))
	for key, v := range m.entries {
		res.entries[key] = k * v
	}

	return res
}

// Transpose returns mᵀ: shape (cols, rows) and every (r,c) moved to (c,r).
func Transpose(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, sparseErrorf(opTranspose, err)
	}
	res := newMatrix(m.cols, m.rows, len(m.entries))
	for k, v := range m.entries {
		res.entries[Key{Row: k.Col, Col: k.Row}] = v
	}

	return res, nil
}

// Map returns a matrix of the same shape whose values are fn applied to each
// stored entry. Absent entries are not visited. The first error aborts.
// Entries are visited in row-major order so failures are reproducible.
func Map(m *Matrix, fn func(Entry) (int64, error)) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, sparseErrorf(opMap, err)
	}
	res := newMatrix(m.rows, m.cols, len(m.entries))
	for _, e := range m.Entries() {
		v, err := fn(e)
		if err != nil {
			return nil, sparseErrorf(opMap, err)
		}
		res.entries[e.Key()] = v
	}

	return res, nil
}

// Filter returns a matrix of the same shape holding the entries for which
// keep reports true.
func Filter(m *Matrix, keep func(Entry) (bool, error)) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, sparseErrorf(opFilter, err)
	}
	res := newMatrix(m.rows, m.cols, 0)
	for _, e := range m.Entries() {
		ok, err := keep(e)
		if err != nil {
			return nil, sparseErrorf(opFilter, err)
		}
		if ok {
			res.entries[e.Key()] = e.Value
		}
	}

	return res, nil
}
