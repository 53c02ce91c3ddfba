// SPDX-License-Identifier: MIT

package block

import (
	"fmt"

	"github.com/katalvlaran/lvmat/matrix"
)

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxBlock    = "Block"
	ctxSetBlock = "SetBlock"
)

// blockErrorf mirrors the Dense accessor wrappers: "BlockMatrix.<method>(i,j): <err>".
func blockErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("BlockMatrix.%s(%d,%d): %w", method, i, j, err)
}

// BlockMatrix is a rows×cols matrix stored as a grid of dense tiles.
type BlockMatrix struct {
	rows, cols           int
	blockRows, blockCols int
	gridRows, gridCols   int
	tiles                []*matrix.Dense // gridRows*gridCols, row-major over the grid
}

// ceilDiv returns ⌈a/b⌉ for positive operands.
func ceilDiv(a, b int) int { return (a + b - 1) / b }

// New returns a zero rows×cols BlockMatrix tiled in blockRows×blockCols tiles.
// A tile shape larger than the matrix yields a single (truncated) tile.
//
// Errors:
//   - ErrInvalidDimensions if any argument is ≤ 0.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func New(rows, cols, blockRows, blockCols int) (*BlockMatrix, error) {
	if rows <= 0 || cols <= 0 || blockRows <= 0 || blockCols <= 0 {
		return nil, ErrInvalidDimensions
	}
	b := &BlockMatrix{
		rows:      rows,
		cols:      cols,
		blockRows: blockRows,
		blockCols: blockCols,
		gridRows:  ceilDiv(rows, blockRows),
		gridCols:  ceilDiv(cols, blockCols),
	}
	b.tiles = make([]*matrix.Dense, b.gridRows*b.gridCols)
	for bi := 0; bi < b.gridRows; bi++ {
		for bj := 0; bj < b.gridCols; bj++ {
			h, w := b.tileShape(bi, bj)
			t, err := matrix.NewDense(h, w)
			if err != nil {
				return nil, err
			}
			b.tiles[bi*b.gridCols+bj] = t
		}
	}

	return b, nil
}

// FromDense tiles a copy of d.
// Each tile is copied out of a no-copy window over d.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions.
func FromDense(d *matrix.Dense, blockRows, blockCols int) (*BlockMatrix, error) {
	if d == nil {
		return nil, ErrNilMatrix
	}
	b, err := New(d.Rows(), d.Cols(), blockRows, blockCols)
	if err != nil {
		return nil, err
	}
	for bi := 0; bi < b.gridRows; bi++ {
		for bj := 0; bj < b.gridCols; bj++ {
			h, w := b.tileShape(bi, bj)
			view, err := d.View(bi*blockRows, bj*blockCols, h, w)
			if err != nil {
				return nil, err
			}
			t, err := view.ToDense()
			if err != nil {
				return nil, err
			}
			b.tiles[bi*b.gridCols+bj] = t
		}
	}

	return b, nil
}

// Rows returns the number of matrix rows.
func (b *BlockMatrix) Rows() int { return b.rows }

// Cols returns the number of matrix columns.
func (b *BlockMatrix) Cols() int { return b.cols }

// BlockShape returns the nominal tile shape.
func (b *BlockMatrix) BlockShape() (blockRows, blockCols int) { return b.blockRows, b.blockCols }

// GridShape returns the number of tile rows and tile columns.
func (b *BlockMatrix) GridShape() (gridRows, gridCols int) { return b.gridRows, b.gridCols }

// tileShape returns the actual (possibly truncated) shape of tile (bi,bj).
func (b *BlockMatrix) tileShape(bi, bj int) (h, w int) {
	return min(b.blockRows, b.rows-bi*b.blockRows), min(b.blockCols, b.cols-bj*b.blockCols)
}

func (b *BlockMatrix) tile(bi, bj int) *matrix.Dense { return b.tiles[bi*b.gridCols+bj] }

func (b *BlockMatrix) checkTile(bi, bj int) error {
	if bi < 0 || bi >= b.gridRows || bj < 0 || bj >= b.gridCols {
		return ErrOutOfRange
	}

	return nil
}

// Block returns a copy of tile (bi, bj).
// Errors: ErrOutOfRange.
func (b *BlockMatrix) Block(bi, bj int) (*matrix.Dense, error) {
	if err := b.checkTile(bi, bj); err != nil {
		return nil, blockErrorf(ctxBlock, bi, bj, err)
	}

	return b.tile(bi, bj).Clone().(*matrix.Dense), nil
}

// SetBlock replaces tile (bi, bj) with a copy of d.
//
// Errors:
//   - ErrOutOfRange for a tile index outside the grid.
//   - ErrNilMatrix for a nil tile.
//   - ErrBlockShape when d's shape differs from the (possibly truncated) tile shape.
func (b *BlockMatrix) SetBlock(bi, bj int, d *matrix.Dense) error {
	if err := b.checkTile(bi, bj); err != nil {
		return blockErrorf(ctxSetBlock, bi, bj, err)
	}
	if d == nil {
		return blockErrorf(ctxSetBlock, bi, bj, ErrNilMatrix)
	}
	h, w := b.tileShape(bi, bj)
	if d.Rows() != h || d.Cols() != w {
		return fmt.Errorf("BlockMatrix.%s(%d,%d): got %dx%d, want %dx%d: %w",
			ctxSetBlock, bi, bj, d.Rows(), d.Cols(), h, w, ErrBlockShape)
	}
	b.tiles[bi*b.gridCols+bj] = d.Clone().(*matrix.Dense)

	return nil
}

// locate maps element (i,j) to its tile and the offset inside that tile.
func (b *BlockMatrix) locate(i, j int) (t *matrix.Dense, ti, tj int, err error) {
	if i < 0 || i >= b.rows || j < 0 || j >= b.cols {
		return nil, 0, 0, ErrOutOfRange
	}

	return b.tile(i/b.blockRows, j/b.blockCols), i % b.blockRows, j % b.blockCols, nil
}

// At returns element (i, j).
// Errors: ErrOutOfRange.
func (b *BlockMatrix) At(i, j int) (float64, error) {
	t, ti, tj, err := b.locate(i, j)
	if err != nil {
		return 0, blockErrorf(ctxAt, i, j, err)
	}

	return t.At(ti, tj)
}

// Set stores v at element (i, j), subject to the tile's numeric policy.
// Errors: ErrOutOfRange, matrix.ErrNaNInf.
func (b *BlockMatrix) Set(i, j int, v float64) error {
	t, ti, tj, err := b.locate(i, j)
	if err != nil {
		return blockErrorf(ctxSet, i, j, err)
	}

	return t.Set(ti, tj, v)
}

// ToDense assembles the tiles into a single Dense.
// Complexity: O(rows*cols).
func (b *BlockMatrix) ToDense() (*matrix.Dense, error) {
	out, err := matrix.NewDense(b.rows, b.cols)
	if err != nil {
		return nil, err
	}
	for bi := 0; bi < b.gridRows; bi++ {
		for bj := 0; bj < b.gridCols; bj++ {
			r0, c0 := bi*b.blockRows, bj*b.blockCols
			b.tile(bi, bj).Do(func(i, j int, v float64) bool {
				err = out.Set(r0+i, c0+j, v)
				return err == nil
			})
			if err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// Clone returns a deep copy.
func (b *BlockMatrix) Clone() *BlockMatrix {
	cp := *b
	cp.tiles = make([]*matrix.Dense, len(b.tiles))
	for k, t := range b.tiles {
		cp.tiles[k] = t.Clone().(*matrix.Dense)
	}

	return &cp
}

// String renders the assembled matrix in the Dense format.
func (b *BlockMatrix) String() string {
	d, err := b.ToDense()
	if err != nil {
		return err.Error()
	}

	return d.String()
}
