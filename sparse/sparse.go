// SPDX-License-Identifier: MIT

// Package sparse - coordinate store & safe accessors.
//
// Purpose:
//   - Hold the non-zero entries of a rows×cols matrix in three parallel slices.
//   - Keep row-major order on every insertion so that merge kernels never see
//     an unsorted operand.
//   - Guarantee safety at the public surface: AddValue/Value return errors
//     instead of panicking.

package sparse

import (
	"cmp"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/katalvlaran/lvmat/numeric"
)

// ---------- error context tags ----------

const (
	ctxAddValue = "AddValue"
	ctxValue    = "Value"
	ctxSumRow   = "SumRow"
	ctxSumCol   = "SumColumn"
	ctxRowNNZ   = "NonZeroCountInRow"
	ctxColNNZ   = "NonZeroCountInColumn"
	ctxMinor    = "Minor"
)

// storeErrorf wraps a sentinel with the method name and the offending coordinates.
// Complexity: O(1).
func storeErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Sparse.%s(%d,%d): %w", method, row, col, err)
}

// lineErrorf is storeErrorf for methods addressed by a single row or column.
func lineErrorf(method string, idx int, err error) error {
	return fmt.Errorf("Sparse.%s(%d): %w", method, idx, err)
}

// opErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Call only with a non-nil err.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Matrix is a rows×cols sparse matrix storing only non-zero entries.
// Entry k is the value values[k] at (rowIdx[k], colIdx[k]).
//
// The zero value is not usable; construct with New.
type Matrix[T numeric.Number] struct {
	rows, cols int   // declared shape (>=0; zero only for internal recursion bases)
	rowIdx     []int // row index of entry k, non-decreasing
	colIdx     []int // column index of entry k, increasing within a row
	values     []T   // non-zero value of entry k
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[float64])(nil)

// New creates an empty rows×cols sparse matrix.
//
// Errors:
//   - ErrInvalidDimensions when rows <= 0 or cols <= 0.
//
// Complexity: O(1); storage grows with insertions.
func New[T numeric.Number](rows, cols int) (*Matrix[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Matrix[T]{rows: rows, cols: cols}, nil
}

// newZeroOK builds an empty matrix and allows 0×0 shapes.
// Minor of a 1×1 matrix is 0×0; its determinant is the empty product 1.
func newZeroOK[T numeric.Number](rows, cols, capacity int) *Matrix[T] {
	return &Matrix[T]{
		rows:   rows,
		cols:   cols,
		rowIdx: make([]int, 0, capacity),
		colIdx: make([]int, 0, capacity),
		values: make([]T, 0, capacity),
	}
}

// Rows returns the declared row count. Complexity: O(1).
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the declared column count. Complexity: O(1).
func (m *Matrix[T]) Cols() int { return m.cols }

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix[T]) Shape() (rows, cols int) { return m.rows, m.cols }

// NonZeroCount returns the number of stored entries. Complexity: O(1).
func (m *Matrix[T]) NonZeroCount() int { return len(m.values) }

// Clone returns a deep copy; no slice is shared with m.
// Complexity: O(nnz).
func (m *Matrix[T]) Clone() *Matrix[T] {
	return &Matrix[T]{
		rows:   m.rows,
		cols:   m.cols,
		rowIdx: slices.Clone(m.rowIdx),
		colIdx: slices.Clone(m.colIdx),
		values: slices.Clone(m.values),
	}
}

// checkIndex validates 0 ≤ row < rows and 0 ≤ col < cols.
func (m *Matrix[T]) checkIndex(row, col int) error {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return ErrOutOfRange
	}

	return nil
}

// search returns the position of (row, col) in the store, or the position
// where it would have to be inserted to keep row-major order.
// Complexity: O(log nnz).
func (m *Matrix[T]) search(row, col int) (pos int, found bool) {
	n := len(m.values)
	pos = sort.Search(n, func(k int) bool {
		return comparePos(m.rowIdx[k], m.colIdx[k], row, col) >= 0
	})

	return pos, pos < n && m.rowIdx[pos] == row && m.colIdx[pos] == col
}

// comparePos orders positions row-major: by row, then by column.
func comparePos(r1, c1, r2, c2 int) int {
	if c := cmp.Compare(r1, r2); c != 0 {
		return c
	}

	return cmp.Compare(c1, c2)
}

// AddValue stores v at (row, col).
//
// Implementation:
//   - Stage 1: bounds check; zero values are dropped (stored values stay non-zero).
//   - Stage 2: binary-search the row-major position.
//   - Stage 3: overwrite an existing entry or insert in place.
//
// Behavior highlights:
//   - A second AddValue on the same cell replaces the stored value; the store
//     never holds two entries for one position.
//   - AddValue(row, col, 0) is a no-op, even on an occupied cell.
//
// Errors:
//   - ErrOutOfRange when row or col is negative or not below the dimension.
//
// Complexity:
//   - Time O(log nnz + nnz) (search + slice shift), Space amortized O(1).
func (m *Matrix[T]) AddValue(row, col int, v T) error {
	if err := m.checkIndex(row, col); err != nil {
		return storeErrorf(ctxAddValue, row, col, err)
	}
	if v == 0 {
		return nil
	}
	pos, found := m.search(row, col)
	if found {
		m.values[pos] = v
		return nil
	}
	m.rowIdx = slices.Insert(m.rowIdx, pos, row)
	m.colIdx = slices.Insert(m.colIdx, pos, col)
	m.values = slices.Insert(m.values, pos, v)

	return nil
}

// appendEntry pushes an entry at the tail. Kernels that emit entries in
// row-major order use it to skip the search; v must be non-zero and
// (row, col) must sort after the current last entry.
func (m *Matrix[T]) appendEntry(row, col int, v T) {
	m.rowIdx = append(m.rowIdx, row)
	m.colIdx = append(m.colIdx, col)
	m.values = append(m.values, v)
}

// Value returns the value at (row, col), or 0 when nothing is stored there.
//
// Errors:
//   - ErrOutOfRange on invalid indices.
//
// Complexity: O(log nnz).
func (m *Matrix[T]) Value(row, col int) (T, error) {
	if err := m.checkIndex(row, col); err != nil {
		return 0, storeErrorf(ctxValue, row, col, err)
	}

	return m.at(row, col), nil
}

// at is the unchecked lookup used by kernels after validation.
func (m *Matrix[T]) at(row, col int) T {
	if pos, found := m.search(row, col); found {
		return m.values[pos]
	}

	return 0
}

// Clear drops every stored entry. The shape is unchanged.
func (m *Matrix[T]) Clear() {
	m.rowIdx = m.rowIdx[:0]
	m.colIdx = m.colIdx[:0]
	m.values = m.values[:0]
}

// FillDiagonal stores v at every (i, i) with i < min(rows, cols).
// A zero v stores nothing, like AddValue.
func (m *Matrix[T]) FillDiagonal(v T) {
	n := min(m.rows, m.cols)
	for i := 0; i < n; i++ {
		_ = m.AddValue(i, i, v) // in range by construction
	}
}

// Do visits stored entries in row-major order and stops early when f returns false.
// Complexity: O(nnz), no allocations.
func (m *Matrix[T]) Do(f func(row, col int, v T) bool) {
	for k := range m.values {
		if !f(m.rowIdx[k], m.colIdx[k], m.values[k]) {
			return
		}
	}
}

// Equal reports whether other has the same shape and the same stored entries.
// Because the store is canonical (sorted, unique, non-zero), this is a slice
// comparison. Complexity: O(nnz).
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	if m == nil || other == nil {
		return m == other
	}

	return m.rows == other.rows && m.cols == other.cols &&
		slices.Equal(m.rowIdx, other.rowIdx) &&
		slices.Equal(m.colIdx, other.colIdx) &&
		slices.Equal(m.values, other.values)
}

// String lists stored entries, one "(row, col) = value" line each.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	for k := range m.values {
		fmt.Fprintf(&b, "(%d, %d) = %v\n", m.rowIdx[k], m.colIdx[k], m.values[k])
	}

	return b.String()
}

// rowOffsets returns off with len rows+1 where entries of row r occupy
// [off[r], off[r+1]). Complexity: O(rows + nnz).
func (m *Matrix[T]) rowOffsets() []int {
	off := make([]int, m.rows+1)
	for _, r := range m.rowIdx {
		off[r+1]++
	}
	for r := 0; r < m.rows; r++ {
		off[r+1] += off[r]
	}

	return off
}

// rowSpan returns the half-open range of entries stored in row.
// Complexity: O(log nnz).
func (m *Matrix[T]) rowSpan(row int) (lo, hi int) {
	lo, _ = slices.BinarySearch(m.rowIdx, row)
	hi, _ = slices.BinarySearch(m.rowIdx, row+1)

	return lo, hi
}
