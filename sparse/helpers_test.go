// SPDX-License-Identifier: MIT
// Package sparse_test contains test helpers.
//
// Purpose:
//   - Build small fixtures from literal rows and deterministic random fills.
//   - Read matrices back as [][]T for whole-matrix assertions.

package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmat/numeric"
	"github.com/katalvlaran/lvmat/sparse"
)

// fromRows builds a sparse matrix from literal rows; zero cells are skipped
// by AddValue itself.
func fromRows[T numeric.Number](t testing.TB, rows [][]T) *sparse.Matrix[T] {
	t.Helper()
	m, err := sparse.New[T](len(rows), len(rows[0]))
	require.NoError(t, err)
	for i, row := range rows {
		for j, v := range row {
			require.NoError(t, m.AddValue(i, j, v))
		}
	}

	return m
}

// toRows materializes m cell by cell through Value.
func toRows[T numeric.Number](t testing.TB, m *sparse.Matrix[T]) [][]T {
	t.Helper()
	out := make([][]T, m.Rows())
	for i := range out {
		out[i] = make([]T, m.Cols())
		for j := range out[i] {
			v, err := m.Value(i, j)
			require.NoError(t, err)
			out[i][j] = v
		}
	}

	return out
}

// randomInts fills roughly density·rows·cols cells with values in [-5, 5].
// Insertion order is random on purpose: the store must sort by itself.
func randomInts(t testing.TB, rng *rand.Rand, rows, cols int, density float64) *sparse.Matrix[int] {
	t.Helper()
	m, err := sparse.New[int](rows, cols)
	require.NoError(t, err)
	for _, cell := range rng.Perm(rows * cols) {
		if rng.Float64() < density {
			require.NoError(t, m.AddValue(cell/cols, cell%cols, rng.Intn(11)-5))
		}
	}

	return m
}

// diagDominant returns an n×n float matrix with |a_ii| > Σ|a_ij|, hence non-singular.
func diagDominant(t testing.TB, rng *rand.Rand, n int) *sparse.Matrix[float64] {
	t.Helper()
	m, err := sparse.New[float64](n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := rng.Float64()*2 - 1
			if i == j {
				v += float64(n) + 1
			}
			require.NoError(t, m.AddValue(i, j, v))
		}
	}

	return m
}

// requireRowMajor asserts the stored entries are strictly increasing by (row, col).
func requireRowMajor[T numeric.Number](t testing.TB, m *sparse.Matrix[T]) {
	t.Helper()
	pr, pc := -1, -1
	m.Do(func(r, c int, v T) bool {
		require.NotZero(t, v, "stored zero at (%d,%d)", r, c)
		require.True(t, r > pr || (r == pr && c > pc), "(%d,%d) after (%d,%d)", r, c, pr, pc)
		pr, pc = r, c
		return true
	})
}
