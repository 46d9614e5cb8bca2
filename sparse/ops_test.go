package sparse_test

import (
	"testing"

	"github.com/katalvlaran/sparsemat/sparse"
	"github.com/stretchr/testify/require"
)

func TestAdd_Scenario(t *testing.T) {
	t.Parallel()

	a := mustDecode(t, "rows=2\ncols=2\n(0,0,1)\n(1,1,2)")
	b := mustDecode(t, "rows=2\ncols=2\n(0,0,3)\n(0,1,4)")

	c, err := sparse.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, 2, c.Rows())
	require.Equal(t, 2, c.Cols())
	requireEntries(t, []sparse.Entry{e(0, 0, 4), e(0, 1, 4), e(1, 1, 2)}, c)
}

func TestAdd_Commutative(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 20; seed++ {
		a, b := randomPair(t, 6, 7, 6, 7, 0.3, seed, seed+100)
		ab, err := sparse.Add(a, b)
		require.NoError(t, err)
		ba, err := sparse.Add(b, a)
		require.NoError(t, err)
		require.True(t, ab.Equal(ba), "seed=%d", seed)
	}
}

func TestAdd_UnionSemantics(t *testing.T) {
	t.Parallel()

	a, b := randomPair(t, 8, 8, 8, 8, 0.25, 7, 8)
	c, err := sparse.Add(a, b)
	require.NoError(t, err)

	seen := map[sparse.Key]bool{}
	for _, k := range append(a.Keys(), b.Keys()...) {
		seen[k] = true
		require.Equal(t, a.Get(k.Row, k.Col)+b.Get(k.Row, k.Col), c.Get(k.Row, k.Col))
	}
	require.Equal(t, len(seen), c.NNZ())
}

func TestSub_EqualsAddNegated(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 20; seed++ {
		a, b := randomPair(t, 5, 5, 5, 5, 0.4, seed, seed*31)
		diff, err := sparse.Sub(a, b)
		require.NoError(t, err)
		nb, err := sparse.Negate(b)
		require.NoError(t, err)
		sum, err := sparse.Add(a, nb)
		require.NoError(t, err)
		require.True(t, diff.Equal(sum), "seed=%d", seed)
	}
}

func TestAddSub_KeepsZeroResults(t *testing.T) {
	t.Parallel()

	a := mustMatrix(t, 2, 2, e(0, 0, 5), e(1, 1, 1))
	b := mustMatrix(t, 2, 2, e(0, 0, -5))

	c, err := sparse.Add(a, b)
	require.NoError(t, err)
	requireEntries(t, []sparse.Entry{e(0, 0, 0), e(1, 1, 1)}, c)

	d, err := sparse.Sub(a, a)
	require.NoError(t, err)
	requireEntries(t, []sparse.Entry{e(0, 0, 0), e(1, 1, 0)}, d)
}

func TestAddSub_PruneZeros(t *testing.T) {
	t.Parallel()

	a := mustMatrix(t, 2, 2, e(0, 0, 5), e(1, 1, 1))
	b := mustMatrix(t, 2, 2, e(0, 0, -5))

	c, err := sparse.Add(a, b, sparse.WithPruneZeros(true))
	require.NoError(t, err)
	requireEntries(t, []sparse.Entry{e(1, 1, 1)}, c)

	d, err := sparse.Sub(a, a, sparse.WithPruneZeros(true))
	require.NoError(t, err)
	require.Equal(t, 0, d.NNZ())
}

func TestAddSub_ShapeMismatchPolicy(t *testing.T) {
	t.Parallel()

	a := mustMatrix(t, 2, 3, e(0, 0, 1), e(1, 2, 2))
	b := mustMatrix(t, 4, 1, e(3, 0, 7))

	type opFn func(a, b *sparse.Matrix, opts ...sparse.Option) (*sparse.Matrix, error)
	for name, op := range map[string]opFn{"add": sparse.Add, "sub": sparse.Sub} {
		op := op
		t.Run(name+"/no confirmer", func(t *testing.T) {
			c, err := op(a, b)
			require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
			require.Nil(t, c)
		})
		t.Run(name+"/declined", func(t *testing.T) {
			c, err := op(a, b, sparse.WithConfirm(sparse.Never))
			require.ErrorIs(t, err, sparse.ErrCancelled)
			require.NotErrorIs(t, err, sparse.ErrDimensionMismatch)
			require.Nil(t, c)
		})
		t.Run(name+"/accepted", func(t *testing.T) {
			c, err := op(a, b, sparse.WithConfirm(sparse.Always))
			require.NoError(t, err)
			require.Equal(t, 4, c.Rows())
			require.Equal(t, 3, c.Cols())
			require.Equal(t, 3, c.NNZ())
		})
	}
}

func TestAdd_ConfirmerSeesOperands(t *testing.T) {
	t.Parallel()

	a := mustMatrix(t, 1, 1)
	b := mustMatrix(t, 2, 2)
	var calls int
	_, err := sparse.Add(a, b, sparse.WithConfirm(func(x, y *sparse.Matrix) bool {
		calls++
		require.Same(t, a, x)
		require.Same(t, b, y)
		return true
	}))
	require.NoError(t, err)
	require.Equal(t, 1, calls)

	// Equal shapes never consult the confirmer.
	_, err = sparse.Add(a, a, sparse.WithConfirm(func(_, _ *sparse.Matrix) bool {
		t.Fatal("confirmer called on equal shapes")
		return false
	}))
	require.NoError(t, err)
}

func TestAdd_DoesNotMutateOperands(t *testing.T) {
	t.Parallel()

	a := mustMatrix(t, 2, 2, e(0, 0, 1))
	b := mustMatrix(t, 2, 2, e(0, 0, 2), e(1, 0, 3))
	aBefore, bBefore := a.Clone(), b.Clone()

	c, err := sparse.Add(a, b)
	require.NoError(t, err)
	c.Set(0, 0, 100)

	require.True(t, a.Equal(aBefore))
	require.True(t, b.Equal(bBefore))
}

func TestMul_IdentityScenario(t *testing.T) {
	t.Parallel()

	id := mustDecode(t, "rows=2\ncols=2\n(0,0,1)\n(1,1,1)\n")
	b := mustDecode(t, "rows=2\ncols=2\n(0,0,5)\n(0,1,6)\n(1,0,7)\n(1,1,8)\n")

	c, err := sparse.Mul(id, b)
	require.NoError(t, err)
	require.True(t, c.Equal(b))
	requireEntries(t, []sparse.Entry{e(0, 0, 5), e(0, 1, 6), e(1, 0, 7), e(1, 1, 8)}, c)
}

func TestMul_Rectangular(t *testing.T) {
	t.Parallel()

	// [1 0 2]   [0 3]   [ 8  3]
	// [0 4 0] × [0 1] = [ 0  4]
	//           [4 0]
	a := mustMatrix(t, 2, 3, e(0, 0, 1), e(0, 2, 2), e(1, 1, 4))
	b := mustMatrix(t, 3, 2, e(0, 1, 3), e(1, 1, 1), e(2, 0, 4))

	c, err := sparse.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, 2, c.Rows())
	require.Equal(t, 2, c.Cols())
	requireEntries(t, []sparse.Entry{e(0, 0, 8), e(0, 1, 3), e(1, 1, 4)}, c)
}

func TestMul_IncompatibleDimensions(t *testing.T) {
	t.Parallel()

	a := mustMatrix(t, 2, 3)
	b := mustMatrix(t, 2, 3)
	called := false
	c, err := sparse.Mul(a, b, sparse.WithConfirm(func(_, _ *sparse.Matrix) bool {
		called = true
		return true
	}))
	require.ErrorIs(t, err, sparse.ErrIncompatibleDimensions)
	require.Nil(t, c)
	require.False(t, called, "Mul has no confirmation path")
}

func TestMul_CancellingProductsAreStored(t *testing.T) {
	t.Parallel()

	// row 0 of a · col 0 of b = 1*1 + 1*(-1) = 0
	a := mustMatrix(t, 1, 2, e(0, 0, 1), e(0, 1, 1))
	b := mustMatrix(t, 2, 1, e(0, 0, 1), e(1, 0, -1))

	c, err := sparse.Mul(a, b)
	require.NoError(t, err)
	requireEntries(t, []sparse.Entry{e(0, 0, 0)}, c)

	c, err = sparse.Mul(a, b, sparse.WithPruneZeros(true))
	require.NoError(t, err)
	require.Equal(t, 0, c.NNZ())
}

func TestOps_NilOperands(t *testing.T) {
	t.Parallel()

	m := mustMatrix(t, 1, 1)
	for name, fn := range map[string]func() error{
		"add left":  func() error { _, err := sparse.Add(nil, m); return err },
		"sub right": func() error { _, err := sparse.Sub(m, nil); return err },
		"mul":       func() error { _, err := sparse.Mul(nil, nil); return err },
		"negate":    func() error { _, err := sparse.Negate(nil); return err },
		"transpose": func() error { _, err := sparse.Transpose(nil); return err },
		"encode":    func() error { return sparse.Encode(nil, nil) },
	} {
		fn := fn
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, fn(), sparse.ErrNilMatrix)
		})
	}
}
