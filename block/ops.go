// SPDX-License-Identifier: MIT

package block

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmat/matrix"
)

const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opScale     = "Scale"
	opTranspose = "Transpose"
	opHConcat   = "HConcat"
	opVConcat   = "VConcat"
)

func opErrorf(tag string, err error) error {
	return fmt.Errorf("block.%s: %w", tag, err)
}

// sameTiling reports identical shape and tile shape.
func sameTiling(a, b *BlockMatrix) bool {
	return a.rows == b.rows && a.cols == b.cols && a.blockRows == b.blockRows && a.blockCols == b.blockCols
}

// emptyLike returns a BlockMatrix with a's geometry and unset tiles.
func emptyLike(rows, cols, blockRows, blockCols int) *BlockMatrix {
	b := &BlockMatrix{
		rows:      rows,
		cols:      cols,
		blockRows: blockRows,
		blockCols: blockCols,
		gridRows:  ceilDiv(rows, blockRows),
		gridCols:  ceilDiv(cols, blockCols),
	}
	b.tiles = make([]*matrix.Dense, b.gridRows*b.gridCols)

	return b
}

// tileWise applies f to every pair of corresponding tiles.
func tileWise(a, b *BlockMatrix, op string, f func(x, y matrix.Matrix) (matrix.Matrix, error)) (*BlockMatrix, error) {
	if a == nil || b == nil {
		return nil, opErrorf(op, ErrNilMatrix)
	}
	if !sameTiling(a, b) {
		return nil, opErrorf(op, ErrDimensionMismatch)
	}
	res := emptyLike(a.rows, a.cols, a.blockRows, a.blockCols)
	for k := range a.tiles {
		t, err := f(a.tiles[k], b.tiles[k])
		if err != nil {
			return nil, opErrorf(op, err)
		}
		res.tiles[k] = t.(*matrix.Dense)
	}

	return res, nil
}

// Add returns a + b tile by tile.
// Errors: ErrNilMatrix, ErrDimensionMismatch (shape or tiling differs).
func Add(a, b *BlockMatrix) (*BlockMatrix, error) { return tileWise(a, b, opAdd, matrix.Add) }

// Sub returns a - b tile by tile.
// Errors: ErrNilMatrix, ErrDimensionMismatch (shape or tiling differs).
func Sub(a, b *BlockMatrix) (*BlockMatrix, error) { return tileWise(a, b, opSub, matrix.Sub) }

// Mul returns the block product a × b.
// Implementation:
//   - Stage 1: require a.Cols() == b.Rows() and a's tile width == b's tile height,
//     which makes a's grid columns line up with b's grid rows.
//   - Stage 2: C[i][j] = Σ_k A[i][k]·B[k][j] using the dense kernels.
//
// The result is tiled a.blockRows × b.blockCols.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b *BlockMatrix) (*BlockMatrix, error) {
	if a == nil || b == nil {
		return nil, opErrorf(opMul, ErrNilMatrix)
	}
	if a.cols != b.rows || a.blockCols != b.blockRows {
		return nil, opErrorf(opMul, ErrDimensionMismatch)
	}
	res, err := New(a.rows, b.cols, a.blockRows, b.blockCols)
	if err != nil {
		return nil, opErrorf(opMul, err)
	}

	var acc, prod matrix.Matrix
	for i := 0; i < res.gridRows; i++ {
		for j := 0; j < res.gridCols; j++ {
			acc = res.tile(i, j)
			for k := 0; k < a.gridCols; k++ {
				if prod, err = matrix.Mul(a.tile(i, k), b.tile(k, j)); err != nil {
					return nil, opErrorf(opMul, err)
				}
				if acc, err = matrix.Add(acc, prod); err != nil {
					return nil, opErrorf(opMul, err)
				}
			}
			res.tiles[i*res.gridCols+j] = acc.(*matrix.Dense)
		}
	}

	return res, nil
}

// Scale returns alpha·m.
// Errors: ErrNilMatrix, matrix.ErrNaNInf (non-finite alpha).
func Scale(m *BlockMatrix, alpha float64) (*BlockMatrix, error) {
	if m == nil {
		return nil, opErrorf(opScale, ErrNilMatrix)
	}
	res := emptyLike(m.rows, m.cols, m.blockRows, m.blockCols)
	for k, t := range m.tiles {
		s, err := matrix.Scale(t, alpha)
		if err != nil {
			return nil, opErrorf(opScale, err)
		}
		res.tiles[k] = s.(*matrix.Dense)
	}

	return res, nil
}

// Transpose returns mᵀ: the tile grid is transposed, every tile is
// transposed and the tile shape is swapped.
// Errors: ErrNilMatrix.
func Transpose(m *BlockMatrix) (*BlockMatrix, error) {
	if m == nil {
		return nil, opErrorf(opTranspose, ErrNilMatrix)
	}
	res := emptyLike(m.cols, m.rows, m.blockCols, m.blockRows)
	for bi := 0; bi < m.gridRows; bi++ {
		for bj := 0; bj < m.gridCols; bj++ {
			t, err := matrix.Transpose(m.tile(bi, bj))
			if err != nil {
				return nil, opErrorf(opTranspose, err)
			}
			res.tiles[bj*res.gridCols+bi] = t.(*matrix.Dense)
		}
	}

	return res, nil
}

// HConcat returns [a | b]; the result keeps a's tiling.
// Errors: ErrNilMatrix, ErrDimensionMismatch (row counts differ).
func HConcat(a, b *BlockMatrix) (*BlockMatrix, error) {
	if a == nil || b == nil {
		return nil, opErrorf(opHConcat, ErrNilMatrix)
	}
	if a.rows != b.rows {
		return nil, opErrorf(opHConcat, ErrDimensionMismatch)
	}

	return concat(a, b, a.rows, a.cols+b.cols, 0, a.cols, opHConcat)
}

// VConcat returns a stacked on top of b; the result keeps a's tiling.
// Errors: ErrNilMatrix, ErrDimensionMismatch (column counts differ).
func VConcat(a, b *BlockMatrix) (*BlockMatrix, error) {
	if a == nil || b == nil {
		return nil, opErrorf(opVConcat, ErrNilMatrix)
	}
	if a.cols != b.cols {
		return nil, opErrorf(opVConcat, ErrDimensionMismatch)
	}

	return concat(a, b, a.rows+b.rows, a.cols, a.rows, 0, opVConcat)
}

// concat writes a at (0,0) and b at (bRow0,bCol0) of a rows×cols result.
func concat(a, b *BlockMatrix, rows, cols, bRow0, bCol0 int, op string) (*BlockMatrix, error) {
	res, err := New(rows, cols, a.blockRows, a.blockCols)
	if err != nil {
		return nil, opErrorf(op, err)
	}
	copyInto := func(src *BlockMatrix, r0, c0 int) error {
		for i := 0; i < src.rows; i++ {
			for j := 0; j < src.cols; j++ {
				v, err := src.At(i, j)
				if err != nil {
					return err
				}
				if err = res.Set(r0+i, c0+j, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
	if err = copyInto(a, 0, 0); err != nil {
		return nil, opErrorf(op, err)
	}
	if err = copyInto(b, bRow0, bCol0); err != nil {
		return nil, opErrorf(op, err)
	}

	return res, nil
}

// FrobeniusNorm returns sqrt(Σ m[i,j]²).
// Accumulates with math.Hypot so large entries do not overflow the sum of squares.
func (b *BlockMatrix) FrobeniusNorm() float64 {
	norm := 0.0
	for _, t := range b.tiles {
		t.Do(func(_, _ int, v float64) bool {
			norm = math.Hypot(norm, v)
			return true
		})
	}

	return norm
}

// Equal reports identical shape, tiling and values.
func Equal(a, b *BlockMatrix) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !sameTiling(a, b) {
		return false
	}
	for k := range a.tiles {
		if !matrix.Equal(a.tiles[k], b.tiles[k]) {
			return false
		}
	}

	return true
}
