// SPDX-License-Identifier: MIT

package block_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmat/block"
	"github.com/katalvlaran/lvmat/matrix"
)

// seq returns an r×c Dense holding 1..r*c in row-major order.
func seq(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDense(r, c)
	require.NoError(t, err)
	require.NoError(t, d.Apply(func(i, j int, _ float64) float64 { return float64(i*c + j + 1) }))

	return d
}

func randomDense(t *testing.T, rng *rand.Rand, r, c int) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDense(r, c)
	require.NoError(t, err)
	require.NoError(t, d.Apply(func(_, _ int, _ float64) float64 { return float64(rng.Intn(11) - 5) }))

	return d
}

func mustFromDense(t *testing.T, d *matrix.Dense, br, bc int) *block.BlockMatrix {
	t.Helper()
	b, err := block.FromDense(d, br, bc)
	require.NoError(t, err)

	return b
}

func mustToDense(t *testing.T, b *block.BlockMatrix) *matrix.Dense {
	t.Helper()
	d, err := b.ToDense()
	require.NoError(t, err)

	return d
}

func TestNewValidation(t *testing.T) {
	t.Parallel()
	for _, dims := range [][4]int{{0, 2, 1, 1}, {2, 0, 1, 1}, {2, 2, 0, 1}, {2, 2, 1, -1}} {
		_, err := block.New(dims[0], dims[1], dims[2], dims[3])
		require.ErrorIs(t, err, block.ErrInvalidDimensions, "%v", dims)
	}
	_, err := block.FromDense(nil, 1, 1)
	require.ErrorIs(t, err, block.ErrNilMatrix)
}

func TestGeometryWithEdgeTiles(t *testing.T) {
	t.Parallel()
	b, err := block.New(5, 7, 2, 3)
	require.NoError(t, err)

	gr, gc := b.GridShape()
	assert.Equal(t, 3, gr)
	assert.Equal(t, 3, gc)
	br, bc := b.BlockShape()
	assert.Equal(t, 2, br)
	assert.Equal(t, 3, bc)

	corner, err := b.Block(2, 2)
	require.NoError(t, err)
	r, c := corner.Shape()
	assert.Equal(t, 1, r, "bottom tiles are truncated")
	assert.Equal(t, 1, c, "right tiles are truncated")

	_, err = b.Block(3, 0)
	require.ErrorIs(t, err, block.ErrOutOfRange)
}

func TestFromDenseRoundTrip(t *testing.T) {
	t.Parallel()
	d := seq(t, 5, 4)
	b := mustFromDense(t, d, 2, 3)
	require.True(t, matrix.Equal(d, mustToDense(t, b)))

	v, err := b.At(4, 3)
	require.NoError(t, err)
	require.Equal(t, 20.0, v)

	tile, err := b.Block(1, 1)
	require.NoError(t, err)
	require.Equal(t, "[12]\n[16]\n", tile.String())

	// tiles are copies of the source
	require.NoError(t, d.Set(0, 0, 100))
	v, err = b.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

func TestAtSet(t *testing.T) {
	t.Parallel()
	b, err := block.New(3, 3, 2, 2)
	require.NoError(t, err)
	require.NoError(t, b.Set(2, 1, 7))

	tile, err := b.Block(1, 0)
	require.NoError(t, err)
	got, err := tile.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 7.0, got)

	require.ErrorIs(t, b.Set(3, 0, 1), block.ErrOutOfRange)
	_, err = b.At(0, -1)
	require.ErrorIs(t, err, block.ErrOutOfRange)
	require.ErrorIs(t, b.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
}

func TestSetBlock(t *testing.T) {
	t.Parallel()
	b, err := block.New(3, 3, 2, 2)
	require.NoError(t, err)

	require.NoError(t, b.SetBlock(0, 1, seq(t, 2, 1)))
	v, err := b.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 2.0, v)

	require.ErrorIs(t, b.SetBlock(0, 1, seq(t, 2, 2)), block.ErrBlockShape)
	require.ErrorIs(t, b.SetBlock(0, 0, nil), block.ErrNilMatrix)
	require.ErrorIs(t, b.SetBlock(2, 0, seq(t, 2, 2)), block.ErrOutOfRange)
}

func TestAddSubScale(t *testing.T) {
	t.Parallel()
	a := mustFromDense(t, seq(t, 3, 4), 2, 2)
	b := mustFromDense(t, seq(t, 3, 4), 2, 2)

	sum, err := block.Add(a, b)
	require.NoError(t, err)
	twice, err := block.Scale(a, 2)
	require.NoError(t, err)
	require.True(t, block.Equal(sum, twice))

	diff, err := block.Sub(a, b)
	require.NoError(t, err)
	require.Zero(t, diff.FrobeniusNorm())

	other := mustFromDense(t, seq(t, 3, 4), 3, 2)
	_, err = block.Add(a, other)
	require.ErrorIs(t, err, block.ErrDimensionMismatch, "different tiling")
	_, err = block.Sub(a, nil)
	require.ErrorIs(t, err, block.ErrNilMatrix)
}

func TestMulMatchesDense(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(2718))
	tests := []struct {
		name       string
		r, n, c    int
		br, bk, bc int
	}{
		{"even", 4, 4, 4, 2, 2, 2},
		{"edge tiles", 5, 7, 3, 2, 3, 2},
		{"single tile", 3, 2, 4, 8, 8, 8},
		{"scalar tiles", 3, 3, 3, 1, 1, 1},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			da := randomDense(t, rng, tc.r, tc.n)
			db := randomDense(t, rng, tc.n, tc.c)
			a := mustFromDense(t, da, tc.br, tc.bk)
			b := mustFromDense(t, db, tc.bk, tc.bc)

			got, err := block.Mul(a, b)
			require.NoError(t, err)
			want, err := matrix.Mul(da, db)
			require.NoError(t, err)
			require.True(t, matrix.Equal(want, mustToDense(t, got)), "got\n%v want\n%v", got, want)
		})
	}
}

func TestMulValidation(t *testing.T) {
	t.Parallel()
	a := mustFromDense(t, seq(t, 2, 4), 2, 2)
	_, err := block.Mul(a, mustFromDense(t, seq(t, 3, 2), 2, 2))
	require.ErrorIs(t, err, block.ErrDimensionMismatch, "inner dimension")
	_, err = block.Mul(a, mustFromDense(t, seq(t, 4, 2), 3, 2))
	require.ErrorIs(t, err, block.ErrDimensionMismatch, "inner tiling")
}

func TestTranspose(t *testing.T) {
	t.Parallel()
	d := seq(t, 5, 3)
	b := mustFromDense(t, d, 2, 2)
	bt, err := block.Transpose(b)
	require.NoError(t, err)

	require.Equal(t, 3, bt.Rows())
	require.Equal(t, 5, bt.Cols())
	br, bc := bt.BlockShape()
	require.Equal(t, [2]int{2, 2}, [2]int{br, bc})

	dt, err := matrix.Transpose(d)
	require.NoError(t, err)
	require.True(t, matrix.Equal(dt, mustToDense(t, bt)))

	back, err := block.Transpose(bt)
	require.NoError(t, err)
	require.True(t, block.Equal(b, back))
}

func TestConcat(t *testing.T) {
	t.Parallel()
	left := mustFromDense(t, seq(t, 2, 2), 2, 2)
	right := mustFromDense(t, seq(t, 2, 1), 1, 1)

	h, err := block.HConcat(left, right)
	require.NoError(t, err)
	require.Equal(t, "[1, 2, 1]\n[3, 4, 2]\n", h.String())
	br, bc := h.BlockShape()
	require.Equal(t, [2]int{2, 2}, [2]int{br, bc}, "keeps the left tiling")

	bottom := mustFromDense(t, seq(t, 1, 2), 1, 1)
	v, err := block.VConcat(left, bottom)
	require.NoError(t, err)
	require.Equal(t, "[1, 2]\n[3, 4]\n[1, 2]\n", v.String())

	_, err = block.HConcat(left, bottom)
	require.ErrorIs(t, err, block.ErrDimensionMismatch)
	_, err = block.VConcat(left, right)
	require.ErrorIs(t, err, block.ErrDimensionMismatch)
}

func TestFrobeniusNormAndClone(t *testing.T) {
	t.Parallel()
	b := mustFromDense(t, seq(t, 2, 2), 1, 2)
	require.InDelta(t, math.Sqrt(1+4+9+16), b.FrobeniusNorm(), 1e-12)

	cp := b.Clone()
	require.True(t, block.Equal(b, cp))
	require.NoError(t, cp.Set(0, 0, -1))
	require.False(t, block.Equal(b, cp))
	require.True(t, block.Equal(nil, nil))
}
