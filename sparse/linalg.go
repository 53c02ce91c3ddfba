// SPDX-License-Identifier: MIT
// Package sparse - linear algebra in sparse form.
//
// Purpose:
//   - Transpose and Minor rebuild their result in row-major order, so every
//     derived matrix is a valid Add/Sub operand.
//   - Determinant by Laplace (cofactor) expansion along row 0, recursing on
//     minors; Cofactor, Adjugate and Inverse build on it.
//
// Determinism & Performance:
//   - Expansion skips unstored row-0 cells: their term is 0, so sparse rows
//     prune whole subtrees of the recursion.
//   - Worst case (dense input) is O(n!); intended for small n only.

package sparse

// Transpose returns mᵀ in row-major order.
//
// Implementation:
//   - Stage 1: count entries per source column (= result row).
//   - Stage 2: scatter entries in source order; inside each result row the
//     source rows arrive increasing, which are the result columns.
//
// Complexity:
//   - Time O(cols + nnz), Space O(cols + nnz).
func (m *Matrix[T]) Transpose() *Matrix[T] {
	n := len(m.values)
	off := make([]int, m.cols+1)
	for _, c := range m.colIdx {
		off[c+1]++
	}
	for c := 0; c < m.cols; c++ {
		off[c+1] += off[c]
	}

	out := &Matrix[T]{
		rows:   m.cols,
		cols:   m.rows,
		rowIdx: make([]int, n),
		colIdx: make([]int, n),
		values: make([]T, n),
	}
	var dst int
	for k, v := range m.values {
		dst = off[m.colIdx[k]]
		off[m.colIdx[k]]++
		out.rowIdx[dst] = m.colIdx[k]
		out.colIdx[dst] = m.rowIdx[k]
		out.values[dst] = v
	}

	return out
}

// Minor returns the (rows-1)×(cols-1) matrix obtained by deleting row and col.
// Remaining indices above the deleted ones shift down by one; the shift is
// monotonic, so row-major order is preserved.
//
// Errors:
//   - ErrOutOfRange when row or col is outside the matrix.
//
// Complexity: O(nnz).
func (m *Matrix[T]) Minor(row, col int) (*Matrix[T], error) {
	if err := m.checkIndex(row, col); err != nil {
		return nil, storeErrorf(ctxMinor, row, col, err)
	}

	return m.minor(row, col), nil
}

// minor is Minor without the bounds check.
func (m *Matrix[T]) minor(row, col int) *Matrix[T] {
	out := newZeroOK[T](m.rows-1, m.cols-1, len(m.values))
	var r, c int
	for k, v := range m.values {
		r, c = m.rowIdx[k], m.colIdx[k]
		if r == row || c == col {
			continue
		}
		if r > row {
			r--
		}
		if c > col {
			c--
		}
		out.appendEntry(r, c, v)
	}

	return out
}

// Determinant returns det(m).
//
// Implementation:
//   - 0×0: 1 (empty product); 1×1: the sole value; 2×2: ad − bc with
//     unstored cells read as 0.
//   - n > 2: det = Σ_j (−1)^j · m[0,j] · det(minor(0,j)) over stored m[0,j].
//
// Errors:
//   - ErrNonSquare.
//
// Complexity:
//   - Time O(n!) worst case; Space O(n·nnz) for the recursion's minors.
func (m *Matrix[T]) Determinant() (T, error) {
	if !m.IsSquare() {
		return 0, opErrorf(opDeterminant, ErrNonSquare)
	}

	return m.det(), nil
}

// det is the recursive kernel; m is square.
func (m *Matrix[T]) det() T {
	switch m.rows {
	case 0:
		return 1
	case 1:
		return m.at(0, 0)
	case 2:
		return m.at(0, 0)*m.at(1, 1) - m.at(0, 1)*m.at(1, 0)
	}

	var sum, term T
	for k := 0; k < len(m.values) && m.rowIdx[k] == 0; k++ {
		term = m.values[k] * m.minor(0, m.colIdx[k]).det()
		if m.colIdx[k]%2 == 0 {
			sum += term
		} else {
			sum -= term
		}
	}

	return sum
}

// Cofactor returns C with C[i,j] = (−1)^(i+j) · det(minor(i,j)).
// A 1×1 matrix has cofactor [1].
//
// Errors:
//   - ErrNonSquare.
//
// Complexity: O(n² · cost(det of (n−1)×(n−1))).
func (m *Matrix[T]) Cofactor() (*Matrix[T], error) {
	if !m.IsSquare() {
		return nil, opErrorf(opCofactor, ErrNonSquare)
	}

	return m.cofactor(), nil
}

// cofactor emits cells in i→j order, which is row-major.
func (m *Matrix[T]) cofactor() *Matrix[T] {
	n := m.rows
	out := newZeroOK[T](n, n, n*n)
	var v T
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v = m.minor(i, j).det()
			if (i+j)%2 == 1 {
				v = -v
			}
			if v != 0 {
				out.appendEntry(i, j, v)
			}
		}
	}

	return out
}

// Adjugate returns the transpose of the cofactor matrix.
//
// Errors:
//   - ErrNonSquare.
func (m *Matrix[T]) Adjugate() (*Matrix[T], error) {
	if !m.IsSquare() {
		return nil, opErrorf(opAdjugate, ErrNonSquare)
	}

	return m.cofactor().Transpose(), nil
}

// Inverse returns adj(m) / det(m).
//
// Behavior highlights:
//   - For integer element types the division truncates; quotients that
//     truncate to 0 are not stored.
//
// Errors:
//   - ErrNonSquare; ErrSingular when det(m) == 0.
//
// Complexity: dominated by the adjugate, O(n² · (n−1)!).
func (m *Matrix[T]) Inverse() (*Matrix[T], error) {
	if !m.IsSquare() {
		return nil, opErrorf(opInverse, ErrNonSquare)
	}
	d := m.det()
	if d == 0 {
		return nil, opErrorf(opInverse, ErrSingular)
	}

	adj := m.cofactor().Transpose()
	out := newZeroOK[T](adj.rows, adj.cols, len(adj.values))
	var q T
	for k, v := range adj.values {
		q = v / d
		if q != 0 {
			out.appendEntry(adj.rowIdx[k], adj.colIdx[k], q)
		}
	}

	return out, nil
}
