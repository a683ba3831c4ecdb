// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures shared by the matrix tests.
//   - Fail fast (t.Fatal via require) so callers can assume non-nil results.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strassen/matrix"
)

// testSeed keeps every random fixture reproducible.
const testSeed int64 = 42

// MustDense allocates an r×c zero *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustRows builds a *Dense from literal rows or fails the test.
func MustRows(t testing.TB, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustRandom returns an n×n matrix with entries in (-bound, bound).
func MustRandom(t testing.TB, g *matrix.Generator, n int) *matrix.Dense {
	t.Helper()
	m, err := g.NewRandom(n, n)
	require.NoError(t, err)

	return m
}

// MustGenerator returns a Generator seeded with seed and DefaultBound.
func MustGenerator(t testing.TB, seed int64) *matrix.Generator {
	t.Helper()
	g, err := matrix.NewGenerator(seed, matrix.DefaultBound)
	require.NoError(t, err)

	return g
}

// MustIdentity returns the n×n identity or fails the test.
func MustIdentity(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.Identity(n)
	require.NoError(t, err)

	return m
}

// requireRows asserts that m holds exactly want.
func requireRows(t testing.TB, want [][]int64, m matrix.Matrix) {
	t.Helper()
	got, err := matrix.ToRows(m)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

// requireSameMatrix asserts entry-for-entry equality and prints both on failure.
func requireSameMatrix(t testing.TB, want, got matrix.Matrix) {
	t.Helper()
	require.Truef(t, matrix.Equal(want, got), "want:\n%v\ngot:\n%v", want, got)
}
