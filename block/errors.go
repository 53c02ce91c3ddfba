// SPDX-License-Identifier: MIT
// Package block: sentinel error set.

package block

import "errors"

var (
	// ErrInvalidDimensions indicates non-positive matrix or tile dimensions.
	ErrInvalidDimensions = errors.New("block: dimensions must be > 0")

	// ErrOutOfRange indicates an element or tile index outside the grid.
	ErrOutOfRange = errors.New("block: index out of range")

	// ErrDimensionMismatch indicates operands whose shapes or tilings are incompatible.
	ErrDimensionMismatch = errors.New("block: dimension mismatch")

	// ErrBlockShape indicates a tile whose shape differs from the grid cell it replaces.
	ErrBlockShape = errors.New("block: tile shape mismatch")

	// ErrNilMatrix indicates a nil operand.
	ErrNilMatrix = errors.New("block: nil matrix")
)
