// SPDX-License-Identifier: MIT
// Package sparse - arithmetic kernels.
//
// Purpose:
//   - Add/Sub as a two-pointer merge over two row-major stores; no dense
//     intermediate, no revisiting of an index.
//   - Mul with a per-row accumulator so partial sums that pass through zero
//     never leave stale or duplicate entries behind.
//   - Scale as a copy-and-multiply over the stored values.
//
// All binary kernels are pure: operands are never mutated and a freshly
// allocated matrix is returned.

package sparse

import (
	"slices"

	"github.com/katalvlaran/lvmat/numeric"
)

// Operation name constants for unified error wrapping.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opScale       = "Scale"
	opTrace       = "Trace"
	opMax         = "Max"
	opMin         = "Min"
	opDeterminant = "Determinant"
	opCofactor    = "Cofactor"
	opAdjugate    = "Adjugate"
	opInverse     = "Inverse"
)

// validateSameShape: NotNil(a) → NotNil(b) → equal rows and cols.
func validateSameShape[T numeric.Number](a, b *Matrix[T]) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.rows != b.rows || a.cols != b.cols {
		return ErrDimensionMismatch
	}

	return nil
}

// validateMulCompatible: NotNil(a) → NotNil(b) → a.cols == b.rows.
func validateMulCompatible[T numeric.Number](a, b *Matrix[T]) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.cols != b.rows {
		return ErrDimensionMismatch
	}

	return nil
}

// Add returns a + b.
//
// Implementation:
//   - Stage 1: validate equal shapes.
//   - Stage 2: merge both row-major entry lists with two cursors; equal
//     positions are summed and dropped when the sum is zero.
//
// Behavior highlights:
//   - Opposite values cancel: the result stores nothing at that cell.
//   - Output is row-major by construction.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(nnzA + nnzB), Space O(nnzA + nnzB).
func Add[T numeric.Number](a, b *Matrix[T]) (*Matrix[T], error) {
	return merge(a, b, false, opAdd)
}

// Sub returns a - b. Same algorithm and guarantees as Add with b negated.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(nnzA + nnzB), Space O(nnzA + nnzB).
func Sub[T numeric.Number](a, b *Matrix[T]) (*Matrix[T], error) {
	return merge(a, b, true, opSub)
}

// merge is the shared two-pointer kernel behind Add and Sub.
func merge[T numeric.Number](a, b *Matrix[T], negate bool, op string) (*Matrix[T], error) {
	if err := validateSameShape(a, b); err != nil {
		return nil, opErrorf(op, err)
	}

	na, nb := len(a.values), len(b.values)
	out := newZeroOK[T](a.rows, a.cols, na+nb)

	var i, j int
	var v T
	for i < na && j < nb {
		switch comparePos(a.rowIdx[i], a.colIdx[i], b.rowIdx[j], b.colIdx[j]) {
		case -1: // only a has this cell
			out.appendEntry(a.rowIdx[i], a.colIdx[i], a.values[i])
			i++
		case 1: // only b has this cell
			v = b.values[j]
			if negate {
				v = -v
			}
			out.appendEntry(b.rowIdx[j], b.colIdx[j], v)
			j++
		default: // both: combine, drop on cancellation
			if negate {
				v = a.values[i] - b.values[j]
			} else {
				v = a.values[i] + b.values[j]
			}
			if v != 0 {
				out.appendEntry(a.rowIdx[i], a.colIdx[i], v)
			}
			i++
			j++
		}
	}
	for ; i < na; i++ {
		out.appendEntry(a.rowIdx[i], a.colIdx[i], a.values[i])
	}
	for ; j < nb; j++ {
		v = b.values[j]
		if negate {
			v = -v
		}
		out.appendEntry(b.rowIdx[j], b.colIdx[j], v)
	}

	return out, nil
}

// Mul returns the matrix product a × b.
//
// Implementation:
//   - Stage 1: validate a.Cols() == b.Rows(); index the rows of b.
//   - Stage 2: for each stored row r of a, and each entry (r, k, v), add
//     v·b[k, c] into a dense accumulator of width b.Cols().
//   - Stage 3: emit the accumulator's non-zero cells in column order and
//     reset only the touched cells.
//
// Behavior highlights:
//   - A cell whose contributions cancel to exactly zero is not stored.
//   - Each output cell is written once, so no duplicate triplets can arise.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(Σ_{(r,k)∈A} nnz(B row k) + output sort), Space O(b.Cols() + nnz(C)).
func Mul[T numeric.Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := validateMulCompatible(a, b); err != nil {
		return nil, opErrorf(opMul, err)
	}

	out := newZeroOK[T](a.rows, b.cols, 0)
	if len(a.values) == 0 || len(b.values) == 0 {
		return out, nil
	}

	bOff := b.rowOffsets()
	acc := make([]T, b.cols)        // running sums for the current output row
	touched := make([]bool, b.cols) // whether acc[c] received a contribution
	cols := make([]int, 0, b.cols)  // touched columns, sorted before emission
	na := len(a.values)

	var i, p, r, k, c int
	var v T
	for i < na {
		r = a.rowIdx[i]
		for ; i < na && a.rowIdx[i] == r; i++ {
			k, v = a.colIdx[i], a.values[i]
			for p = bOff[k]; p < bOff[k+1]; p++ {
				c = b.colIdx[p]
				if !touched[c] {
					touched[c] = true
					cols = append(cols, c)
				}
				acc[c] += v * b.values[p]
			}
		}
		slices.Sort(cols)
		for _, c = range cols {
			if acc[c] != 0 {
				out.appendEntry(r, c, acc[c])
			}
			acc[c] = 0
			touched[c] = false
		}
		cols = cols[:0]
	}

	return out, nil
}

// Scale returns a copy of m with every stored value multiplied by alpha.
//
// Behavior highlights:
//   - alpha == 0 is not special-cased: the copy keeps its entries with value 0.
//     Use Clear or rebuild when a normalized zero matrix is needed.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(nnz), Space O(nnz).
func Scale[T numeric.Number](m *Matrix[T], alpha T) (*Matrix[T], error) {
	if m == nil {
		return nil, opErrorf(opScale, ErrNilMatrix)
	}
	out := m.Clone()
	for k := range out.values {
		out.values[k] *= alpha
	}

	return out, nil
}
