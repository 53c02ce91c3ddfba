// SPDX-License-Identifier: MIT
// Package matrix - factorizations: pivoted LU, Householder QR and the
// symmetric Jacobi eigensolver.
//
// Every factorization works on a private *Dense copy of its input, so the
// argument may be any Matrix and is never mutated.

package matrix

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

const (
	opLU    = "LU"
	opQR    = "QR"
	opEigen = "Eigen"
)

// luFactors is the packed result of P·A = L·U: the strict lower triangle of
// a holds L (its unit diagonal is implied), the upper triangle holds U.
type luFactors struct {
	a    *Dense
	perm []int   // row i of P·A is row perm[i] of A
	sign float64 // det(P) = ±1
}

// factorLU runs Doolittle elimination with partial pivoting on a copy of m.
// The caller has already validated m as square.
// Returns ErrSingular when a column has no non-zero pivot.
// Complexity: Time O(n³), Space O(n²).
func factorLU(m Matrix) (*luFactors, error) {
	a, err := denseCopy(m)
	if err != nil {
		return nil, err
	}
	n := a.r
	f := &luFactors{a: a, perm: make([]int, n), sign: 1}
	for i := range f.perm {
		f.perm[i] = i
	}

	var i, j, k, p int
	var pivot, l float64
	for k = 0; k < n; k++ {
		p = pivotRow(a, k)
		if a.data[p*n+k] == ZeroPivot {
			return nil, ErrSingular
		}
		if p != k {
			swapRows(a, p, k)
			f.perm[p], f.perm[k] = f.perm[k], f.perm[p]
			f.sign = -f.sign
		}
		pivot = a.data[k*n+k]
		for i = k + 1; i < n; i++ {
			l = a.data[i*n+k] / pivot
			a.data[i*n+k] = l
			if l == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				a.data[i*n+j] -= l * a.data[k*n+j]
			}
		}
	}

	return f, nil
}

// solve writes into x the solution of L·U·x = b, where b is already permuted.
// x and b must have length n; b is not modified.
func (f *luFactors) solve(x, b []float64) {
	n := f.a.r
	d := f.a.data
	var i, k int
	var sum float64
	for i = 0; i < n; i++ {
		sum = ZeroSum
		for k = 0; k < i; k++ {
			sum += d[i*n+k] * x[k]
		}
		x[i] = b[i] - sum
	}
	for i = n - 1; i >= 0; i-- {
		sum = ZeroSum
		for k = i + 1; k < n; k++ {
			sum += d[i*n+k] * x[k]
		}
		x[i] = (x[i] - sum) / d[i*n+i]
	}
}

// LU computes the partially pivoted factorization P·A = L·U.
// Implementation:
//   - Stage 1: validate m (not nil, square) and copy it.
//   - Stage 2: for each column pick the largest |pivot| at or below the
//     diagonal, swap it up and eliminate below it.
//   - Stage 3: unpack L (unit lower triangular) and U (upper triangular).
//
// Returns:
//   - L, U as fresh *Dense.
//   - perm: row i of P·A is row perm[i] of A.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (a column has no non-zero pivot).
//
// Determinism:
//   - Ties between equal |pivot| candidates go to the upper row.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func LU(m Matrix) (Matrix, Matrix, []int, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	f, err := factorLU(m)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}

	n := f.a.r
	l, err := newDenseZeroOK(n, n)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	u, err := newDenseZeroOK(n, n)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	var i, j, base int
	for i = 0; i < n; i++ {
		base = i * n
		for j = 0; j < i; j++ {
			l.data[base+j] = f.a.data[base+j]
		}
		l.data[base+i] = 1
		for j = i; j < n; j++ {
			u.data[base+j] = f.a.data[base+j]
		}
	}

	return l, u, f.perm, nil
}

// QR computes a Householder factorization A = Q·R.
// Implementation:
//   - Stage 1: validate m (not nil, square); copy it into R; start Qᵀ = I.
//   - Stage 2: for k = 0..n-1 build the reflector H_k = I - τ·v·vᵀ that
//     zeroes column k below the diagonal and apply it to R and to Qᵀ.
//   - Stage 3: Q = (H_{n-1}···H_0)ᵀ.
//
// Behavior highlights:
//   - Entries below the diagonal of R are stored as exact zeros.
//   - No sign canonicalization: diag(R) may be negative.
//   - Zero columns are skipped (their reflector is the identity).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func QR(m Matrix) (Matrix, Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	r, err := denseCopy(m)
	if err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	n := r.r
	qt, err := newDenseZeroOK(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	for i := 0; i < n; i++ {
		qt.data[i*n+i] = 1
	}

	v := make([]float64, n)
	var (
		i, j, k                int
		norm, alpha, beta, tau float64
		dot                    float64
	)
	for k = 0; k < n; k++ {
		norm = ZeroSum
		for i = k; i < n; i++ {
			norm = math.Hypot(norm, r.data[i*n+k])
		}
		if norm == 0 {
			continue
		}
		alpha = -math.Copysign(norm, r.data[k*n+k])

		beta = ZeroSum
		for i = k; i < n; i++ {
			v[i] = r.data[i*n+k]
		}
		v[k] -= alpha
		for i = k; i < n; i++ {
			beta += v[i] * v[i]
		}
		if beta == 0 {
			continue
		}
		tau = 2 / beta

		// Column k becomes (alpha, 0, ..., 0) by construction.
		r.data[k*n+k] = alpha
		for i = k + 1; i < n; i++ {
			r.data[i*n+k] = 0
		}
		for j = k + 1; j < n; j++ {
			dot = ZeroSum
			for i = k; i < n; i++ {
				dot += v[i] * r.data[i*n+j]
			}
			for i = k; i < n; i++ {
				r.data[i*n+j] -= tau * v[i] * dot
			}
		}
		for j = 0; j < n; j++ {
			dot = ZeroSum
			for i = k; i < n; i++ {
				dot += v[i] * qt.data[i*n+j]
			}
			for i = k; i < n; i++ {
				qt.data[i*n+j] -= tau * v[i] * dot
			}
		}
	}

	q, err := Transpose(qt)
	if err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	r.validateNaNInf = DefaultValidateNaNInf

	return q, r, nil
}

// Eigen computes the eigenvalues and eigenvectors of a symmetric matrix by
// classical Jacobi rotations, so that m = Q·diag(λ)·Qᵀ.
// Implementation:
//   - Stage 1: ValidateSymmetric(m, tol); copy m; start Q = I.
//   - Stage 2: repeatedly pick (p,q), p<q, with the largest |A[p,q]| in
//     i→j order and rotate it to zero, until max |A[p,q]| ≤ tol.
//   - Stage 3: sort eigenvalues ascending and permute Q's columns to match.
//
// Inputs:
//   - tol: symmetry and convergence threshold (|tol| is used).
//   - maxIter: cap on the number of rotations.
//
// Returns:
//   - eigenvalues in ascending order.
//   - Q: orthogonal, column k is the unit eigenvector of eigenvalue k.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf (non-finite tol),
//     ErrAsymmetry, ErrEigenFailed (not converged after maxIter rotations).
//
// Complexity:
//   - Time O(maxIter·n), plus O(n²) per pivot search; Space O(n²).
func Eigen(m Matrix, tol float64, maxIter int) ([]float64, Matrix, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	tol = math.Abs(tol)
	a, err := denseCopy(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	n := a.r
	q, err := newDenseZeroOK(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	for i := 0; i < n; i++ {
		q.data[i*n+i] = 1
	}

	var (
		i, p, r        int
		maxOff         float64
		app, aqq, apq  float64
		aip, aiq       float64
		theta, t, c, s float64
		converged      bool
		iter           int
	)
	for iter = 0; ; iter++ {
		maxOff, p, r = offDiagonalPivot(a)
		if maxOff <= tol {
			converged = true

			break
		}
		if iter >= maxIter {
			break
		}

		app, aqq, apq = a.data[p*n+p], a.data[r*n+r], a.data[p*n+r]
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1 / math.Hypot(t, 1)
		s = t * c

		for i = 0; i < n; i++ {
			if i == p || i == r {
				continue
			}
			aip, aiq = a.data[i*n+p], a.data[i*n+r]
			a.data[i*n+p] = c*aip - s*aiq
			a.data[p*n+i] = a.data[i*n+p]
			a.data[i*n+r] = s*aip + c*aiq
			a.data[r*n+i] = a.data[i*n+r]
		}
		a.data[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		a.data[r*n+r] = s*s*app + 2*c*s*apq + c*c*aqq
		a.data[p*n+r], a.data[r*n+p] = 0, 0

		for i = 0; i < n; i++ {
			aip, aiq = q.data[i*n+p], q.data[i*n+r]
			q.data[i*n+p] = c*aip - s*aiq
			q.data[i*n+r] = s*aip + c*aiq
		}
	}
	if !converged {
		return nil, nil, matrixErrorf(opEigen, fmt.Errorf("%d rotations: %w", maxIter, ErrEigenFailed))
	}

	order := make([]int, n)
	for i = range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(x, y int) int {
		return cmp.Compare(a.data[x*n+x], a.data[y*n+y])
	})
	values := make([]float64, n)
	vectors, err := newDenseZeroOK(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	for k, src := range order {
		values[k] = a.data[src*n+src]
		for i = 0; i < n; i++ {
			vectors.data[i*n+k] = q.data[i*n+src]
		}
	}

	return values, vectors, nil
}

// offDiagonalPivot returns the largest |a[p,q]| over p<q and its position
// (first in i→j order on ties). For n < 2 it returns 0.
func offDiagonalPivot(a *Dense) (maxOff float64, p, q int) {
	n := a.r
	var off float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if off = math.Abs(a.data[i*n+j]); off > maxOff {
				maxOff, p, q = off, i, j
			}
		}
	}

	return maxOff, p, q
}
