// SPDX-License-Identifier: MIT

package sparse

import "math"

// Stats summarizes a matrix without materializing it.
type Stats struct {
	Rows, Cols int
	NNZ        int
	Zeros      int     // explicitly stored zero values
	Density    float64 // NNZ / (Rows·Cols); 0 for an empty shape
	Min, Max   int64   // value range; both 0 when NNZ == 0
	Sum        int64
	// Extent of the stored coordinates; meaningful only when NNZ > 0.
	MinRow, MaxRow int
	MinCol, MaxCol int
	OutOfShape     int // entries outside [0,Rows)×[0,Cols)
}

// Summarize computes Stats for m in one pass. Complexity: O(nnz).
func Summarize(m *Matrix) (Stats, error) {
	if err := ValidateNotNil(m); err != nil {
		return Stats{}, sparseErrorf("Summarize", err)
	}
	s := Stats{Rows: m.rows, Cols: m.cols, NNZ: len(m.entries)}
	if area := float64(m.rows) * float64(m.cols); area > 0 {
		s.Density = float64(s.NNZ) / area
	}
	if s.NNZ == 0 {
		return s, nil
	}

	s.Min, s.Max = math.MaxInt64, math.MinInt64
	s.MinRow, s.MinCol = math.MaxInt, math.MaxInt
	s.MaxRow, s.MaxCol = math.MinInt, math.MinInt
	for k, v := range m.entries {
		s.Sum += v
		s.Min, s.Max = min(s.Min, v), max(s.Max, v)
		s.MinRow, s.MaxRow = min(s.MinRow, k.Row), max(s.MaxRow, k.Row)
		s.MinCol, s.MaxCol = min(s.MinCol, k.Col), max(s.MaxCol, k.Col)
		if v == 0 {
			s.Zeros++
		}
		if k.Row < 0 || k.Row >= m.rows || k.Col < 0 || k.Col >= m.cols {
			s.OutOfShape++
		}
	}

	return s, nil
}
