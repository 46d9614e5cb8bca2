// SPDX-License-Identifier: MIT
// Package sparse_test contains test helpers.
//
// Purpose:
//   • Small deterministic fixtures for the engine and codec tests.
//   • A dense reference path (via package dense) to check sparse results.

package sparse_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/sparsemat/dense"
	"github.com/katalvlaran/sparsemat/sparse"
	"github.com/stretchr/testify/require"
)

// mustMatrix builds a rows×cols matrix from entries or fails the test.
func mustMatrix(t testing.TB, rows, cols int, entries ...sparse.Entry) *sparse.Matrix {
	t.Helper()
	m, err := sparse.FromEntries(rows, cols, entries...)
	require.NoError(t, err)
	return m
}

// mustDecode parses matrix text or fails the test.
func mustDecode(t testing.TB, text string) *sparse.Matrix {
	t.Helper()
	m, err := sparse.Unmarshal([]byte(text))
	require.NoError(t, err)
	return m
}

// e is a terse Entry constructor for tables.
func e(row, col int, v int64) sparse.Entry {
	return sparse.Entry{Row: row, Col: col, Value: v}
}

// requireEntries compares the sorted entries of m with want and prints a
// cmp diff on mismatch.
func requireEntries(t testing.TB, want []sparse.Entry, m *sparse.Matrix) {
	t.Helper()
	if want == nil {
		want = []sparse.Entry{}
	}
	if diff := cmp.Diff(want, m.Entries()); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
}

// requireDenseEqual asserts that the sparse result, once materialized, equals
// the dense reference.
func requireDenseEqual(t testing.TB, want *dense.Dense, got *sparse.Matrix) {
	t.Helper()
	gd, err := sparse.ToDense(got)
	require.NoError(t, err)
	require.Truef(t, want.Equal(gd), "dense mismatch:\nwant:\n%sgot:\n%s", want, gd)
}

// randomPair draws two matrices with the given shapes from seeds s1, s2.
func randomPair(t testing.TB, r1, c1, r2, c2 int, density float64, s1, s2 int64) (*sparse.Matrix, *sparse.Matrix) {
	t.Helper()
	a, err := sparse.Random(r1, c1, density, sparse.WithSeed(s1))
	require.NoError(t, err)
	b, err := sparse.Random(r2, c2, density, sparse.WithSeed(s2))
	require.NoError(t, err)
	return a, b
}
