package sparse_test

import (
	"testing"

	"github.com/katalvlaran/sparsemat/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidDimensions(t *testing.T) {
	t.Parallel()

	_, err := sparse.New(-1, 2)
	require.ErrorIs(t, err, sparse.ErrInvalidDimensions)

	m, err := sparse.New(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, m.NNZ())
}

func TestMatrix_SetAtDelete(t *testing.T) {
	t.Parallel()

	m := mustMatrix(t, 3, 3)
	m.Set(1, 2, 5)
	m.Set(-4, 10, 7) // out-of-shape coordinates are accepted

	v, ok := m.At(1, 2)
	require.True(t, ok)
	require.Equal(t, int64(5), v)
	require.Equal(t, int64(7), m.Get(-4, 10))
	require.Equal(t, int64(0), m.Get(0, 0))

	m.Delete(1, 2)
	_, ok = m.At(1, 2)
	require.False(t, ok)
	require.Equal(t, 1, m.NNZ())
}

func TestMatrix_ZeroValueIsUsable(t *testing.T) {
	t.Parallel()

	var m sparse.Matrix
	require.Equal(t, 0, m.NNZ())
	require.Empty(t, m.Entries())
	m.Set(0, 0, 1)
	require.Equal(t, 1, m.NNZ())
}

func TestMatrix_EntriesSortedRowMajor(t *testing.T) {
	t.Parallel()

	m := mustMatrix(t, 3, 3, e(2, 0, 1), e(0, 2, 2), e(0, 1, 3), e(1, 1, 4), e(-1, 5, 5))
	requireEntries(t, []sparse.Entry{e(-1, 5, 5), e(0, 1, 3), e(0, 2, 2), e(1, 1, 4), e(2, 0, 1)}, m)
	require.Equal(t, []sparse.Key{{-1, 5}, {0, 1}, {0, 2}, {1, 1}, {2, 0}}, m.Keys())
}

func TestMatrix_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	m := mustMatrix(t, 2, 2, e(0, 0, 1))
	c := m.Clone()
	c.Set(0, 0, 9)
	c.Set(1, 1, 2)

	require.Equal(t, int64(1), m.Get(0, 0))
	require.Equal(t, 1, m.NNZ())
	require.False(t, m.Equal(c))
}

func TestMatrix_Equal(t *testing.T) {
	t.Parallel()

	a := mustMatrix(t, 2, 2, e(0, 0, 1))
	tests := []struct {
		name string
		b    *sparse.Matrix
		want bool
	}{
		{"same", mustMatrix(t, 2, 2, e(0, 0, 1)), true},
		{"different shape", mustMatrix(t, 2, 3, e(0, 0, 1)), false},
		{"different value", mustMatrix(t, 2, 2, e(0, 0, 2)), false},
		{"explicit zero is not absence", mustMatrix(t, 2, 2, e(0, 0, 1), e(1, 1, 0)), false},
		{"nil", nil, false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, a.Equal(tc.b))
		})
	}
}

func TestMatrix_Prune(t *testing.T) {
	t.Parallel()

	m := mustMatrix(t, 2, 2, e(0, 0, 0), e(1, 1, 3))
	p := m.Prune()
	requireEntries(t, []sparse.Entry{e(1, 1, 3)}, p)
	require.Equal(t, 2, m.NNZ(), "Prune must not touch the receiver")
}

func TestMatrix_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "2x3 (nnz=1)", mustMatrix(t, 2, 3, e(0, 0, 1)).String())
}

func TestKey_Compare(t *testing.T) {
	t.Parallel()

	require.True(t, sparse.Key{Row: 0, Col: 9}.Less(sparse.Key{Row: 1, Col: 0}))
	require.True(t, sparse.Key{Row: 1, Col: 0}.Less(sparse.Key{Row: 1, Col: 1}))
	require.Equal(t, 0, sparse.Key{Row: 2, Col: 2}.Compare(sparse.Key{Row: 2, Col: 2}))
}
