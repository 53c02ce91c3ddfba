// SPDX-License-Identifier: MIT

// Package block partitions a matrix into a grid of dense tiles.
//
// A BlockMatrix of shape rows×cols with tile shape blockRows×blockCols holds
// ⌈rows/blockRows⌉ × ⌈cols/blockCols⌉ tiles of type *matrix.Dense, stored in
// one row-major slice. Tiles on the bottom and right edges are truncated when
// the tile shape does not divide the matrix shape, so every element belongs to
// exactly one tile.
//
// Operations work tile by tile on top of the matrix kernels:
//
//   - Add, Sub: identical shape and tiling.
//   - Mul: a.Cols() == b.Rows() and a's tile width equals b's tile height;
//     C[i][j] = Σ_k A[i][k]·B[k][j].
//   - Transpose: the grid and every tile are transposed.
//   - HConcat, VConcat: the result keeps the tiling of the left/top operand.
//
// BlockMatrix is not safe for concurrent mutation.
package block
