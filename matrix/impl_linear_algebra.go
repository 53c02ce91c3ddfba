// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition, subtraction and Hadamard product, matrix and
// matrix-vector multiplication, transpose, scalar scaling, determinant,
// cofactor/adjugate and inverse. All functions
// perform fail-fast validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Declare the canonical linear-algebra kernels used across the module.
//   - Define operation tags and shared constants for error reporting.
//
// Notes:
//   - Kernels never mutate their inputs; results are freshly allocated *Dense.
//   - When every operand is *Dense, kernels run on the flat data slices;
//     otherwise they fall back to At/Set in fixed i→j order.

package matrix

import (
	"errors"
	"fmt"
	"math"
)

// ZeroSum is the initial value of accumulations.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot during elimination.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opScale       = "Scale"
	opTrace       = "Trace"
	opHadamard    = "Hadamard"
	opMatVec      = "MatVec"
	opDeterminant = "Determinant"
	opInverse     = "Inverse"
	opCofactor    = "Cofactor"
	opAdjugate    = "Adjugate"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseCopy returns an independent *Dense holding m's values with validation
// disabled, used as elimination scratch space.
// Complexity: O(r*c).
func denseCopy(m Matrix) (*Dense, error) {
	rows, cols := m.Rows(), m.Cols()
	res, err := newDenseZeroOK(rows, cols)
	if err != nil {
		return nil, err
	}
	res.validateNaNInf = false

	if d, ok := m.(*Dense); ok {
		copy(res.data, d.data)

		return res, nil
	}

	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			res.data[i*cols+j] = v
		}
	}

	return res, nil
}

// addSub implements C = A + sign*B.
// Implementation:
//   - Stage 1: validate non-nil operands and identical shapes.
//   - Stage 2: allocate the result.
//   - Stage 3: *Dense fast path (single flat loop) or At/Set fallback.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(i, j, av+sign*bv); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and skip zeros;
//     otherwise use i→j→k with a fixed order and zero-skip on A[i,k].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowA, rowB, rowR int
			for i = 0; i < aRows; i++ {
				rowA = i * aCols
				rowR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowA+k]
					if av == 0 {
						continue
					}
					rowB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowR+j] += av * db.data[rowB+j]
					}
				}
			}

			return res, nil
		}
	}

	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, matrixErrorf(opMul, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := newDenseZeroOK(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	if d, ok := m.(*Dense); ok {
		res.validateNaNInf = d.validateNaNInf
		for i := 0; i < rows; i++ {
			base := i * cols
			for j := 0; j < cols; j++ {
				res.data[j*rows+i] = d.data[base+j]
			}
		}

		return res, nil
	}

	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("Set(%d,%d): %w", j, i, err))
			}
		}
	}

	return res, nil
}

// Scale returns alpha·m as a new Dense.
// Errors: ErrNilMatrix; ErrNaNInf if alpha or a product is non-finite.
// Complexity: O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if isNonFinite(alpha) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}
	res, err := denseCopy(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res.validateNaNInf = DefaultValidateNaNInf
	if err = res.Apply(func(_, _ int, v float64) float64 { return v * alpha }); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return res, nil
}

// Equal reports whether a and b have the same shape and identical values.
// Two nil matrices are equal; a nil and a non-nil matrix are not.
// Complexity: O(r*c).
func Equal(a, b Matrix) bool {
	aNil, bNil := ValidateNotNil(a) != nil, ValidateNotNil(b) != nil
	if aNil || bNil {
		return aNil == bNil
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if da.data[idx] != db.data[idx] {
					return false
				}
			}

			return true
		}
	}
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, errA := a.At(i, j)
			bv, errB := b.At(i, j)
			if errA != nil || errB != nil || av != bv {
				return false
			}
		}
	}

	return true
}

// Trace returns Σ m[i,i] of a square matrix.
// Errors: ErrNilMatrix, ErrNonSquare.
func Trace(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	sum := ZeroSum
	for i := 0; i < m.Rows(); i++ {
		v, err := m.At(i, i)
		if err != nil {
			return 0, matrixErrorf(opTrace, err)
		}
		sum += v
	}

	return sum, nil
}

// Hadamard returns the element-wise product C[i,j] = A[i,j]·B[i,j].
// It is not matrix multiplication; use Mul for A×B.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Hadamard(a, b Matrix) (Matrix, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = da.data[idx] * db.data[idx]
			}

			return res, nil
		}
	}

	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opHadamard, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opHadamard, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(i, j, av*bv); err != nil {
				return nil, matrixErrorf(opHadamard, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// MatVec computes y = m·x for a column vector x.
// Contract: m non-nil; len(x) == m.Cols().
// Complexity: Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < rows; i++ {
			acc = ZeroSum
			base = i * cols
			for j = 0; j < cols; j++ {
				if x[j] != 0 {
					acc += d.data[base+j] * x[j]
				}
			}
			y[i] = acc
		}

		return y, nil
	}

	var mv float64
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// pivotRow returns the row p ≥ k maximizing |a[p,k]| (first wins on ties).
func pivotRow(a *Dense, k int) int {
	n := a.c
	p := k
	best := math.Abs(a.data[k*n+k])
	for i := k + 1; i < a.r; i++ {
		if v := math.Abs(a.data[i*n+k]); v > best {
			p, best = i, v
		}
	}

	return p
}

// swapRows exchanges rows i and j in place.
func swapRows(a *Dense, i, j int) {
	if i == j {
		return
	}
	ri := a.data[i*a.c : (i+1)*a.c]
	rj := a.data[j*a.c : (j+1)*a.c]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}

// Determinant computes det(m) from the pivoted LU factorization P·A = L·U.
// Implementation:
//   - Stage 1: validate m is square and factor it (see LU).
//   - Stage 2: det = det(P) · Π U[k,k], multiplied in pivot order.
//
// Behavior highlights:
//   - A column without a non-zero pivot yields exactly 0.
//   - The 0×0 matrix has determinant 1.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Determinant(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	f, err := factorLU(m)
	if errors.Is(err, ErrSingular) {
		return 0, nil
	}
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	n := f.a.r
	det := f.sign
	for k := 0; k < n; k++ {
		det *= f.a.data[k*n+k]
	}

	return det, nil
}

// Inverse computes m⁻¹ column by column from the pivoted LU factorization:
// for every basis vector e_col it solves L·y = P·e_col, then U·x = y.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (no non-zero pivot in a column).
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// Notes:
//   - Singularity is detected on exact zero pivots; use IsSingular with an
//     epsilon to screen near-singular inputs first.
func Inverse(m Matrix) (Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	f, err := factorLU(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := f.a.r
	inv, err := newDenseZeroOK(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	b := make([]float64, n)
	x := make([]float64, n)
	for col := 0; col < n; col++ {
		for i := range b {
			b[i] = 0
			if f.perm[i] == col {
				b[i] = 1
			}
		}
		f.solve(x, b)
		for i := 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}

// Cofactor returns the cofactor matrix C with C[i,j] = (-1)^(i+j)·det(M_ij),
// where M_ij is m without row i and column j.
// The cofactor of a 1×1 matrix is [1] (the empty minor has determinant 1).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n⁵), Space O(n²); intended for small matrices.
func Cofactor(m Matrix) (Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}
	a, err := denseCopy(m)
	if err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}
	n := a.r
	res, err := newDenseZeroOK(n, n)
	if err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}

	keep := func(skip int) []int {
		idx := make([]int, 0, n-1)
		for x := 0; x < n; x++ {
			if x != skip {
				idx = append(idx, x)
			}
		}

		return idx
	}

	var minor *Dense
	var d float64
	for i := 0; i < n; i++ {
		rowsIdx := keep(i)
		for j := 0; j < n; j++ {
			if minor, err = a.Induced(rowsIdx, keep(j)); err != nil {
				return nil, matrixErrorf(opCofactor, err)
			}
			if d, err = Determinant(minor); err != nil {
				return nil, matrixErrorf(opCofactor, err)
			}
			if (i+j)%2 == 1 {
				d = -d
			}
			res.data[i*n+j] = d
		}
	}

	return res, nil
}

// Adjugate returns adj(m) = Cofactor(m)ᵀ, so that m·adj(m) = det(m)·I.
// Errors: ErrNilMatrix, ErrNonSquare.
func Adjugate(m Matrix) (Matrix, error) {
	c, err := Cofactor(m)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	adj, err := Transpose(c)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return adj, nil
}
