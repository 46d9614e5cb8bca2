// Package render prints matrices for humans.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/katalvlaran/sparsemat/sparse"
)

var (
	positive = color.New(color.FgGreen)
	negative = color.New(color.FgRed)
	absent   = color.New(color.Faint)
	header   = color.New(color.Bold)
)

// Summary writes the shape and statistics of m.
func Summary(w io.Writer, name string, s sparse.Stats) error {
	_, err := header.Fprintf(w, "%s: %dx%d\n", name, s.Rows, s.Cols)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "  nnz=%d zeros=%d density=%.4f\n", s.NNZ, s.Zeros, s.Density)
	if err != nil || s.NNZ == 0 {
		return err
	}
	_, err = fmt.Fprintf(w, "  values=[%d,%d] sum=%d extent=rows[%d,%d] cols[%d,%d] outOfShape=%d\n",
		s.Min, s.Max, s.Sum, s.MinRow, s.MaxRow, s.MinCol, s.MaxCol, s.OutOfShape)
	return err
}

// Grid writes m as right-aligned columns, one row per line. Cells that m
// does not store print as "." so explicit zeros stay visible.
func Grid(w io.Writer, m *sparse.Matrix) error {
	d, err := sparse.ToDense(m)
	if err != nil {
		return err
	}

	width := 1
	for i := 0; i < d.Rows(); i++ {
		row, _ := d.Row(i)
		for _, v := range row {
			width = max(width, len(strconv.FormatInt(v, 10)))
		}
	}

	var sb strings.Builder
	for i := 0; i < d.Rows(); i++ {
		sb.Reset()
		row, _ := d.Row(i)
		for j, v := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			cell := strconv.FormatInt(v, 10)
			pad := strings.Repeat(" ", width-len(cell))
			switch _, stored := m.At(i, j); {
			case !stored:
				sb.WriteString(strings.Repeat(" ", width-1) + absent.Sprint("."))
			case v > 0:
				sb.WriteString(pad + positive.Sprint(cell))
			case v < 0:
				sb.WriteString(pad + negative.Sprint(cell))
			default:
				sb.WriteString(pad + cell)
			}
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}

	return nil
}

// Fits reports whether a rows×cols grid stays within limit cells.
func Fits(rows, cols, limit int) bool {
	return rows > 0 && cols > 0 && int64(rows)*int64(cols) <= int64(limit)
}
