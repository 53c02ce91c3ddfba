// SPDX-License-Identifier: MIT
// Package sparse - structural predicates and aggregates.
//
// Every query reads stored entries only; implicit zeros are never
// enumerated. Queries never mutate the receiver.

package sparse

import "github.com/katalvlaran/lvmat/numeric"

// IsZero reports whether the matrix stores no entries.
// Stored values are non-zero, so this is exactly "every cell is 0".
func (m *Matrix[T]) IsZero() bool { return len(m.values) == 0 }

// IsEmpty is IsZero under the name used by callers that think in terms of
// an empty coordinate list.
func (m *Matrix[T]) IsEmpty() bool { return m.IsZero() }

// IsSquare reports whether rows == cols.
func (m *Matrix[T]) IsSquare() bool { return m.rows == m.cols }

// IsDiagonal reports whether no entry is stored off the main diagonal.
// Missing diagonal cells are implicit zeros and do not disqualify the matrix;
// the zero matrix is diagonal. Rectangular shapes are accepted.
// Complexity: O(nnz).
func (m *Matrix[T]) IsDiagonal() bool {
	for k := range m.values {
		if m.rowIdx[k] != m.colIdx[k] {
			return false
		}
	}

	return true
}

// IsIdentity reports whether m is square, every stored diagonal entry is 1
// and every stored off-diagonal entry is 0.
// Only stored entries are inspected: an unstored diagonal cell does not
// disqualify the matrix, so the square zero matrix reports true.
// Complexity: O(nnz).
func (m *Matrix[T]) IsIdentity() bool {
	if !m.IsSquare() {
		return false
	}
	for k, v := range m.values {
		if m.rowIdx[k] == m.colIdx[k] {
			if v != 1 {
				return false
			}
		} else if v != 0 {
			return false
		}
	}

	return true
}

// Trace returns the sum of the diagonal. Unstored diagonal cells add 0.
//
// Errors:
//   - ErrNonSquare.
//
// Complexity: O(nnz).
func (m *Matrix[T]) Trace() (T, error) {
	if !m.IsSquare() {
		return 0, opErrorf(opTrace, ErrNonSquare)
	}
	var sum T
	for k, v := range m.values {
		if m.rowIdx[k] == m.colIdx[k] {
			sum += v
		}
	}

	return sum, nil
}

// SumRow returns the sum of row.
//
// Errors:
//   - ErrOutOfRange when row is outside [0, rows).
//
// Complexity: O(log nnz + row fill).
func (m *Matrix[T]) SumRow(row int) (T, error) {
	if row < 0 || row >= m.rows {
		return 0, lineErrorf(ctxSumRow, row, ErrOutOfRange)
	}
	lo, hi := m.rowSpan(row)
	var sum T
	for k := lo; k < hi; k++ {
		sum += m.values[k]
	}

	return sum, nil
}

// SumColumn returns the sum of column col.
//
// Errors:
//   - ErrOutOfRange when col is outside [0, cols).
//
// Complexity: O(nnz).
func (m *Matrix[T]) SumColumn(col int) (T, error) {
	if col < 0 || col >= m.cols {
		return 0, lineErrorf(ctxSumCol, col, ErrOutOfRange)
	}
	var sum T
	for k, v := range m.values {
		if m.colIdx[k] == col {
			sum += v
		}
	}

	return sum, nil
}

// TotalSum returns the sum of every stored value. Complexity: O(nnz).
func (m *Matrix[T]) TotalSum() T {
	var sum T
	for _, v := range m.values {
		sum += v
	}

	return sum
}

// Max returns the largest stored value. Implicit zeros are not considered.
// The result is always a stored value; a stored NaN is returned as is.
//
// Errors:
//   - ErrEmpty when nothing is stored.
//
// Complexity: O(nnz).
func (m *Matrix[T]) Max() (T, error) {
	if len(m.values) == 0 {
		return 0, opErrorf(opMax, ErrEmpty)
	}
	best := numeric.Lowest[T]()
	for _, v := range m.values {
		if numeric.IsNaN(v) {
			return v, nil
		}
		if v > best {
			best = v
		}
	}

	return best, nil
}

// Min returns the smallest stored value. Implicit zeros are not considered.
// The result is always a stored value; a stored NaN is returned as is.
//
// Errors:
//   - ErrEmpty when nothing is stored.
//
// Complexity: O(nnz).
func (m *Matrix[T]) Min() (T, error) {
	if len(m.values) == 0 {
		return 0, opErrorf(opMin, ErrEmpty)
	}
	best := numeric.Highest[T]()
	for _, v := range m.values {
		if numeric.IsNaN(v) {
			return v, nil
		}
		if v < best {
			best = v
		}
	}

	return best, nil
}

// Density returns nnz / (rows·cols), in [0, 1]. A 0-cell matrix has density 0.
func (m *Matrix[T]) Density() float64 {
	cells := m.rows * m.cols
	if cells == 0 {
		return 0
	}

	return float64(len(m.values)) / float64(cells)
}

// NonZeroCountInRow returns the number of stored entries in row.
//
// Errors:
//   - ErrOutOfRange.
//
// Complexity: O(log nnz).
func (m *Matrix[T]) NonZeroCountInRow(row int) (int, error) {
	if row < 0 || row >= m.rows {
		return 0, lineErrorf(ctxRowNNZ, row, ErrOutOfRange)
	}
	lo, hi := m.rowSpan(row)

	return hi - lo, nil
}

// NonZeroCountInColumn returns the number of stored entries in column col.
//
// Errors:
//   - ErrOutOfRange.
//
// Complexity: O(nnz).
func (m *Matrix[T]) NonZeroCountInColumn(col int) (int, error) {
	if col < 0 || col >= m.cols {
		return 0, lineErrorf(ctxColNNZ, col, ErrOutOfRange)
	}
	var n int
	for _, c := range m.colIdx {
		if c == col {
			n++
		}
	}

	return n, nil
}
