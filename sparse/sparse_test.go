// SPDX-License-Identifier: MIT

package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmat/sparse"
)

// TestNewInvalidDimensions ensures New rejects non-positive dimensions.
func TestNewInvalidDimensions(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct{ r, c int }{{0, 3}, {3, 0}, {-1, 2}, {2, -4}} {
		_, err := sparse.New[int](tc.r, tc.c)
		require.ErrorIs(t, err, sparse.ErrInvalidDimensions, "New(%d,%d)", tc.r, tc.c)
	}
}

func TestNewShape(t *testing.T) {
	t.Parallel()
	m, err := sparse.New[int](3, 3)
	require.NoError(t, err)
	r, c := m.Shape()
	assert.Equal(t, 3, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 0, m.NonZeroCount())
}

// TestAddValueGetValue checks that stored values read back and unset cells read 0.
func TestAddValueGetValue(t *testing.T) {
	t.Parallel()
	m, err := sparse.New[int](3, 3)
	require.NoError(t, err)
	require.NoError(t, m.AddValue(0, 0, 5))
	require.NoError(t, m.AddValue(1, 2, 3))

	v, err := m.Value(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	v, err = m.Value(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	v, err = m.Value(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, v)
}

func TestAddValueOutOfRange(t *testing.T) {
	t.Parallel()
	m, err := sparse.New[int](3, 3)
	require.NoError(t, err)

	require.ErrorIs(t, m.AddValue(3, 3, 5), sparse.ErrOutOfRange)
	require.ErrorIs(t, m.AddValue(-1, 0, 5), sparse.ErrOutOfRange)
	require.ErrorIs(t, m.AddValue(0, 3, 5), sparse.ErrOutOfRange)
	assert.Equal(t, 0, m.NonZeroCount())
}

func TestValueOutOfRange(t *testing.T) {
	t.Parallel()
	m, err := sparse.New[int](3, 3)
	require.NoError(t, err)

	_, err = m.Value(3, 3)
	require.ErrorIs(t, err, sparse.ErrOutOfRange)
	_, err = m.Value(0, -1)
	require.ErrorIs(t, err, sparse.ErrOutOfRange)
}

// TestAddValueZeroIsDropped verifies zero insertions are never stored.
func TestAddValueZeroIsDropped(t *testing.T) {
	t.Parallel()
	m, err := sparse.New[float64](2, 2)
	require.NoError(t, err)

	require.NoError(t, m.AddValue(1, 1, 0))
	assert.Equal(t, 0, m.NonZeroCount())
	assert.True(t, m.IsZero())
}

// TestAddValueOverwrite verifies one entry per cell.
func TestAddValueOverwrite(t *testing.T) {
	t.Parallel()
	m, err := sparse.New[int](2, 2)
	require.NoError(t, err)

	require.NoError(t, m.AddValue(0, 1, 4))
	require.NoError(t, m.AddValue(0, 1, 9))
	assert.Equal(t, 1, m.NonZeroCount())
	v, err := m.Value(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 9, v)

	// zero on an occupied cell is a no-op as well
	require.NoError(t, m.AddValue(0, 1, 0))
	v, err = m.Value(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 9, v)
}

// TestAddValueKeepsRowMajorOrder inserts in reverse order and checks the store.
func TestAddValueKeepsRowMajorOrder(t *testing.T) {
	t.Parallel()
	m, err := sparse.New[int](3, 3)
	require.NoError(t, err)
	require.NoError(t, m.AddValue(2, 2, 1))
	require.NoError(t, m.AddValue(2, 0, 2))
	require.NoError(t, m.AddValue(0, 1, 3))
	require.NoError(t, m.AddValue(1, 2, 4))
	require.NoError(t, m.AddValue(0, 0, 5))

	requireRowMajor(t, m)
	assert.Equal(t, "(0, 0) = 5\n(0, 1) = 3\n(1, 2) = 4\n(2, 0) = 2\n(2, 2) = 1\n", m.String())
}

func TestDoStopsEarly(t *testing.T) {
	t.Parallel()
	m := fromRows(t, [][]int{{1, 2}, {3, 4}})
	var seen int
	m.Do(func(_, _ int, _ int) bool {
		seen++
		return seen < 2
	})
	assert.Equal(t, 2, seen)
}

func TestClear(t *testing.T) {
	t.Parallel()
	m := fromRows(t, [][]int{{1, 0}, {0, 4}})
	m.Clear()

	assert.True(t, m.IsZero())
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 2, m.Cols())
	require.NoError(t, m.AddValue(1, 0, 7))
	assert.Equal(t, 1, m.NonZeroCount())
}

// TestCloneIndependence ensures Clone shares no storage with the original.
func TestCloneIndependence(t *testing.T) {
	t.Parallel()
	m := fromRows(t, [][]int{{1, 0}, {0, 2}})
	c := m.Clone()
	require.True(t, m.Equal(c))

	require.NoError(t, c.AddValue(0, 1, 3))
	require.NoError(t, c.AddValue(0, 0, 8))

	assert.Equal(t, [][]int{{1, 0}, {0, 2}}, toRows(t, m))
	assert.Equal(t, [][]int{{8, 3}, {0, 2}}, toRows(t, c))
	assert.False(t, m.Equal(c))
}

func TestFillDiagonal(t *testing.T) {
	t.Parallel()
	m, err := sparse.New[int](2, 3)
	require.NoError(t, err)
	m.FillDiagonal(7)
	assert.Equal(t, [][]int{{7, 0, 0}, {0, 7, 0}}, toRows(t, m))
}

func TestEqual(t *testing.T) {
	t.Parallel()
	a := fromRows(t, [][]int{{1, 0}, {0, 2}})
	b := fromRows(t, [][]int{{1, 0}, {0, 2}})
	c := fromRows(t, [][]int{{1, 0, 0}, {0, 2, 0}})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c), "different shapes")
	assert.False(t, a.Equal(nil))
}
