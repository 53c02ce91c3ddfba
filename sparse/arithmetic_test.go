// SPDX-License-Identifier: MIT

package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmat/sparse"
)

func TestAdd(t *testing.T) {
	t.Parallel()
	a := fromRows(t, [][]int{{1, 0, 0}, {0, 2, 0}, {0, 0, 0}})
	b := fromRows(t, [][]int{{3, 0, 0}, {0, 4, 0}, {0, 0, 0}})

	sum, err := sparse.Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{4, 0, 0}, {0, 6, 0}, {0, 0, 0}}, toRows(t, sum))
	requireRowMajor(t, sum)
}

func TestSub(t *testing.T) {
	t.Parallel()
	a := fromRows(t, [][]int{{5, 0, 0}, {0, 4, 0}, {0, 0, 0}})
	b := fromRows(t, [][]int{{3, 0, 1}, {0, 2, 0}, {0, 0, 0}})

	diff, err := sparse.Sub(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{2, 0, -1}, {0, 2, 0}, {0, 0, 0}}, toRows(t, diff))
	requireRowMajor(t, diff)
}

// TestAddCancellation: opposite values leave no stored entry behind.
func TestAddCancellation(t *testing.T) {
	t.Parallel()
	a := fromRows(t, [][]int{{-3, 1}, {0, 0}})
	b := fromRows(t, [][]int{{3, 0}, {0, 0}})

	sum, err := sparse.Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.NonZeroCount())
	v, err := sum.Value(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, v)

	diff, err := sparse.Sub(a, a)
	require.NoError(t, err)
	assert.True(t, diff.IsZero())
}

func TestAddSubDimensionMismatch(t *testing.T) {
	t.Parallel()
	a, err := sparse.New[int](2, 2)
	require.NoError(t, err)
	b, err := sparse.New[int](3, 3)
	require.NoError(t, err)

	_, err = sparse.Add(a, b)
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
	_, err = sparse.Sub(a, b)
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
	_, err = sparse.Add(a, nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}

// TestAddDoesNotMutateOperands guards the functional style of the kernels.
func TestAddDoesNotMutateOperands(t *testing.T) {
	t.Parallel()
	a := fromRows(t, [][]int{{1, 2}, {3, 4}})
	b := fromRows(t, [][]int{{-1, 0}, {0, 1}})
	ac, bc := a.Clone(), b.Clone()

	_, err := sparse.Add(a, b)
	require.NoError(t, err)
	_, err = sparse.Mul(a, b)
	require.NoError(t, err)

	assert.True(t, a.Equal(ac))
	assert.True(t, b.Equal(bc))
}

// TestAddSubProperties: (A+B)−B == A and A+B == B+A on random operands.
func TestAddSubProperties(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(1337))
	for trial := 0; trial < 50; trial++ {
		a := randomInts(t, rng, 5, 7, 0.3)
		b := randomInts(t, rng, 5, 7, 0.3)

		ab, err := sparse.Add(a, b)
		require.NoError(t, err)
		ba, err := sparse.Add(b, a)
		require.NoError(t, err)
		require.True(t, ab.Equal(ba), "commutativity, trial %d", trial)

		back, err := sparse.Sub(ab, b)
		require.NoError(t, err)
		require.True(t, back.Equal(a), "round-trip, trial %d", trial)
		requireRowMajor(t, back)
	}
}

func TestMul(t *testing.T) {
	t.Parallel()
	a, err := sparse.New[int](2, 3)
	require.NoError(t, err)
	require.NoError(t, a.AddValue(0, 0, 1))
	require.NoError(t, a.AddValue(1, 2, 2))

	b, err := sparse.New[int](3, 2)
	require.NoError(t, err)
	require.NoError(t, b.AddValue(0, 1, 3))
	require.NoError(t, b.AddValue(2, 0, 4))

	p, err := sparse.Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 3}, {8, 0}}, toRows(t, p))
}

func TestMulDense(t *testing.T) {
	t.Parallel()
	a := fromRows(t, [][]int{{1, 2}, {3, 4}})
	b := fromRows(t, [][]int{{5, 6}, {7, 8}})

	p, err := sparse.Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{19, 22}, {43, 50}}, toRows(t, p))
	requireRowMajor(t, p)
}

// TestMulCancellation: contributions summing to zero store nothing.
func TestMulCancellation(t *testing.T) {
	t.Parallel()
	a := fromRows(t, [][]int{{1, 1}})
	b := fromRows(t, [][]int{{2, 1}, {-2, 1}})

	p, err := sparse.Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, 1, p.NonZeroCount())
	assert.Equal(t, [][]int{{0, 2}}, toRows(t, p))
}

func TestMulDimensionMismatch(t *testing.T) {
	t.Parallel()
	a, err := sparse.New[int](2, 3)
	require.NoError(t, err)
	b, err := sparse.New[int](4, 2)
	require.NoError(t, err)

	_, err = sparse.Mul(a, b)
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
	_, err = sparse.Mul(nil, b)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}

// TestMulAssociativity: (AB)C == A(BC) exactly for integer entries.
func TestMulAssociativity(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(4242))
	for trial := 0; trial < 30; trial++ {
		a := randomInts(t, rng, 4, 5, 0.4)
		b := randomInts(t, rng, 5, 3, 0.4)
		c := randomInts(t, rng, 3, 6, 0.4)

		ab, err := sparse.Mul(a, b)
		require.NoError(t, err)
		left, err := sparse.Mul(ab, c)
		require.NoError(t, err)

		bc, err := sparse.Mul(b, c)
		require.NoError(t, err)
		right, err := sparse.Mul(a, bc)
		require.NoError(t, err)

		require.True(t, left.Equal(right), "trial %d:\n%v\nvs\n%v", trial, left, right)
	}
}

func TestScale(t *testing.T) {
	t.Parallel()
	m := fromRows(t, [][]float64{{1, 0}, {0, -2}})

	s, err := sparse.Scale(m, 2.5)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{2.5, 0}, {0, -5}}, toRows(t, s))
	assert.Equal(t, [][]float64{{1, 0}, {0, -2}}, toRows(t, m), "operand untouched")

	_, err = sparse.Scale[float64](nil, 1)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}

// TestScaleByZeroKeepsEntries documents that Scale does not purge zeroed entries.
func TestScaleByZeroKeepsEntries(t *testing.T) {
	t.Parallel()
	m := fromRows(t, [][]int{{1, 0}, {0, 2}})

	s, err := sparse.Scale(m, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, s.NonZeroCount())
	assert.Equal(t, [][]int{{0, 0}, {0, 0}}, toRows(t, s))

	s.Clear()
	assert.True(t, s.IsZero())
}
