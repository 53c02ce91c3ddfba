// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// Operations return these sentinels wrapped with an operation tag
// ("Add: sparse: dimension mismatch"); match them with errors.Is.

package sparse

import "errors"

var (
	// ErrInvalidDimensions is returned by New when rows or cols is not positive.
	ErrInvalidDimensions = errors.New("sparse: dimensions must be > 0")

	// ErrOutOfRange indicates a row or column index outside [0, rows) / [0, cols).
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes:
	// Add/Sub with different shapes, or Mul where a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required
	// (Trace, Determinant, Cofactor, Adjugate, Inverse).
	ErrNonSquare = errors.New("sparse: matrix is not square")

	// ErrSingular is returned by Inverse when the determinant is exactly zero.
	// The shape was valid; the inverse does not exist.
	ErrSingular = errors.New("sparse: singular matrix")

	// ErrEmpty is returned by Max/Min when the matrix stores no entries.
	ErrEmpty = errors.New("sparse: no stored entries")

	// ErrNilMatrix indicates that a nil *Matrix was passed to an operation.
	ErrNilMatrix = errors.New("sparse: nil matrix")
)
