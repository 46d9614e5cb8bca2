package dense_test

import (
	"testing"

	"github.com/katalvlaran/sparsemat/dense"
	"github.com/stretchr/testify/require"
)

func mustRows(t *testing.T, rows [][]int64) *dense.Dense {
	t.Helper()
	d, err := dense.FromRows(rows)
	require.NoError(t, err)
	return d
}

func TestNewDense_InvalidDimensions(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name       string
		rows, cols int
	}{
		{"zero rows", 0, 3},
		{"zero cols", 3, 0},
		{"negative", -1, 2},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := dense.NewDense(tc.rows, tc.cols)
			require.ErrorIs(t, err, dense.ErrInvalidDimensions)
		})
	}
}

func TestDense_AtSetBounds(t *testing.T) {
	t.Parallel()

	d, err := dense.NewDense(2, 3)
	require.NoError(t, err)
	require.NoError(t, d.Set(1, 2, 7))

	v, err := d.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, int64(7), v)

	_, err = d.At(2, 0)
	require.ErrorIs(t, err, dense.ErrOutOfRange)
	require.ErrorIs(t, d.Set(0, -1, 1), dense.ErrOutOfRange)
}

func TestDense_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	d := mustRows(t, [][]int64{{1, 2}, {3, 4}})
	c := d.Clone()
	require.NoError(t, c.Set(0, 0, 99))

	v, _ := d.At(0, 0)
	require.Equal(t, int64(1), v)
	require.False(t, d.Equal(c))
}

func TestFromRows_Ragged(t *testing.T) {
	t.Parallel()

	_, err := dense.FromRows([][]int64{{1, 2}, {3}})
	require.ErrorIs(t, err, dense.ErrDimensionMismatch)
}

func TestAddSub(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]int64{{1, 2}, {3, 4}})
	b := mustRows(t, [][]int64{{5, 6}, {7, 8}})

	sum, err := dense.Add(a, b)
	require.NoError(t, err)
	require.True(t, sum.Equal(mustRows(t, [][]int64{{6, 8}, {10, 12}})))

	diff, err := dense.Sub(a, b)
	require.NoError(t, err)
	require.True(t, diff.Equal(mustRows(t, [][]int64{{-4, -4}, {-4, -4}})))

	_, err = dense.Add(a, mustRows(t, [][]int64{{1, 2, 3}}))
	require.ErrorIs(t, err, dense.ErrDimensionMismatch)
	_, err = dense.Sub(nil, a)
	require.ErrorIs(t, err, dense.ErrNilMatrix)
}

func TestMul(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]int64{{1, 2}, {3, 4}})
	b := mustRows(t, [][]int64{{2, 0}, {1, 2}})
	res, err := dense.Mul(a, b)
	require.NoError(t, err)
	// [[1*2+2*1, 1*0+2*2], [3*2+4*1, 3*0+4*2]]
	require.True(t, res.Equal(mustRows(t, [][]int64{{4, 4}, {10, 8}})))
}

func TestMul_DimensionMismatch(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]int64{{1, 2, 3}, {4, 5, 6}})
	b := mustRows(t, [][]int64{{1, 2}, {3, 4}})
	_, err := dense.Mul(a, b)
	require.ErrorIs(t, err, dense.ErrDimensionMismatch)
}

func TestString(t *testing.T) {
	t.Parallel()

	d := mustRows(t, [][]int64{{1, -2}, {0, 4}})
	require.Equal(t, "[1, -2]\n[0, 4]\n", d.String())
}
