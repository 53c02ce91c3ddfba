// SPDX-License-Identifier: MIT

// Package matrix - structural and spectral predicates.
//
// Every predicate compares against an epsilon (DefaultEpsilon unless
// WithEpsilon is passed): a value x counts as zero when |x| ≤ eps and two
// values are equal when |x-y| ≤ eps.
// Shape-dependent predicates answer false for non-square input instead of
// failing; only a nil matrix is an error.
package matrix

import "math"

const opPredicate = "Predicate"

// cells returns a flat row-major copy of m for read-only scans.
func cells(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opPredicate, err)
	}
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	d, err := denseCopy(m)
	if err != nil {
		return nil, matrixErrorf(opPredicate, err)
	}

	return d, nil
}

func near(x, y, eps float64) bool { return math.Abs(x-y) <= eps }

// IsSquare reports Rows == Cols.
func IsSquare(m Matrix) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, matrixErrorf(opPredicate, err)
	}

	return m.Rows() == m.Cols(), nil
}

// IsZero reports whether every entry is zero within eps.
func IsZero(m Matrix, opts ...Option) (bool, error) {
	d, err := cells(m)
	if err != nil {
		return false, err
	}
	eps := gatherOptions(opts...).eps
	for _, v := range d.data {
		if !near(v, 0, eps) {
			return false, nil
		}
	}

	return true, nil
}

// IsSymmetric reports m[i,j] ≈ m[j,i] for all i<j of a square matrix.
// Complexity: O(n²), upper triangle only.
func IsSymmetric(m Matrix, opts ...Option) (bool, error) {
	d, err := cells(m)
	if err != nil {
		return false, err
	}
	if d.r != d.c {
		return false, nil
	}
	eps := gatherOptions(opts...).eps
	n := d.r
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !near(d.data[i*n+j], d.data[j*n+i], eps) {
				return false, nil
			}
		}
	}

	return true, nil
}

// IsDiagonal reports whether every off-diagonal entry is zero within eps.
// Rectangular matrices are accepted.
func IsDiagonal(m Matrix, opts ...Option) (bool, error) {
	return scanTriangle(m, func(i, j int) bool { return i != j }, opts)
}

// IsUpperTriangular reports whether every entry below the diagonal is zero within eps.
func IsUpperTriangular(m Matrix, opts ...Option) (bool, error) {
	return scanTriangle(m, func(i, j int) bool { return i > j }, opts)
}

// IsLowerTriangular reports whether every entry above the diagonal is zero within eps.
func IsLowerTriangular(m Matrix, opts ...Option) (bool, error) {
	return scanTriangle(m, func(i, j int) bool { return i < j }, opts)
}

// scanTriangle checks that every cell selected by mustBeZero is ≈ 0.
func scanTriangle(m Matrix, mustBeZero func(i, j int) bool, opts []Option) (bool, error) {
	d, err := cells(m)
	if err != nil {
		return false, err
	}
	eps := gatherOptions(opts...).eps
	ok := true
	d.Do(func(i, j int, v float64) bool {
		if mustBeZero(i, j) && !near(v, 0, eps) {
			ok = false
		}

		return ok
	})

	return ok, nil
}

// IsTriangular reports upper or lower triangularity of a square matrix.
func IsTriangular(m Matrix, opts ...Option) (bool, error) {
	if sq, err := IsSquare(m); err != nil || !sq {
		return false, err
	}
	up, err := IsUpperTriangular(m, opts...)
	if err != nil || up {
		return up, err
	}

	return IsLowerTriangular(m, opts...)
}

// IsIdentity reports a square matrix with ones on the diagonal and zeros elsewhere (within eps).
func IsIdentity(m Matrix, opts ...Option) (bool, error) {
	d, err := cells(m)
	if err != nil {
		return false, err
	}
	if d.r != d.c {
		return false, nil
	}
	eps := gatherOptions(opts...).eps
	ok := true
	d.Do(func(i, j int, v float64) bool {
		want := 0.0
		if i == j {
			want = 1
		}
		ok = near(v, want, eps)

		return ok
	})

	return ok, nil
}

// IsSingular reports |det(m)| ≤ eps.
// Errors: ErrNilMatrix, ErrNonSquare.
func IsSingular(m Matrix, opts ...Option) (bool, error) {
	det, err := Determinant(m)
	if err != nil {
		return false, err
	}

	return near(det, 0, gatherOptions(opts...).eps), nil
}

// IsOrthogonal reports m·mᵀ ≈ I for a square matrix.
// Complexity: O(n³).
func IsOrthogonal(m Matrix, opts ...Option) (bool, error) {
	if sq, err := IsSquare(m); err != nil || !sq {
		return false, err
	}
	mt, err := Transpose(m)
	if err != nil {
		return false, err
	}
	prod, err := Mul(m, mt)
	if err != nil {
		return false, err
	}

	return IsIdentity(prod, opts...)
}

// IsNormal reports m·mᵀ ≈ mᵀ·m (cell by cell, within eps) for a square matrix.
// Symmetric and orthogonal matrices are normal.
// Complexity: O(n³).
func IsNormal(m Matrix, opts ...Option) (bool, error) {
	if sq, err := IsSquare(m); err != nil || !sq {
		return false, err
	}
	mt, err := Transpose(m)
	if err != nil {
		return false, err
	}
	left, err := Mul(m, mt)
	if err != nil {
		return false, err
	}
	right, err := Mul(mt, m)
	if err != nil {
		return false, err
	}
	l, err := cells(left)
	if err != nil {
		return false, err
	}
	r, err := cells(right)
	if err != nil {
		return false, err
	}
	eps := gatherOptions(opts...).eps
	for k := range l.data {
		if !near(l.data[k], r.data[k], eps) {
			return false, nil
		}
	}

	return true, nil
}

// eigenRotationsPerCell bounds the Jacobi rotations IsDiagonalizable allows
// per matrix cell.
const eigenRotationsPerCell = 64

// IsDiagonalizable reports whether m is orthogonally diagonalizable over the
// reals, m = Q·Λ·Qᵀ with Q orthogonal. That is exactly the symmetric case:
// non-symmetric input answers false.
// For symmetric input Eigen computes the decomposition and every eigenpair
// is checked with MatVec: |(m·q)[i] - λ·q[i]| ≤ n·eps·max(1, max|m[i,j]|).
//
// Errors:
//   - ErrNilMatrix.
//   - ErrEigenFailed when the rotations do not converge.
//
// Complexity: O(n⁴) worst case (rotation cap), O(n³) typical.
func IsDiagonalizable(m Matrix, opts ...Option) (bool, error) {
	sym, err := IsSymmetric(m, opts...)
	if err != nil || !sym {
		return false, err
	}
	d, err := cells(m)
	if err != nil {
		return false, err
	}
	n := d.r
	eps := gatherOptions(opts...).eps
	values, q, err := Eigen(d, eps, eigenRotationsPerCell*n*n)
	if err != nil {
		return false, err
	}

	scale := 1.0
	for _, v := range d.data {
		scale = math.Max(scale, math.Abs(v))
	}
	bound := float64(n) * eps * scale
	vec := make([]float64, n)
	for k, lambda := range values {
		for i := 0; i < n; i++ {
			if vec[i], err = q.At(i, k); err != nil {
				return false, err
			}
		}
		y, err := MatVec(d, vec)
		if err != nil {
			return false, err
		}
		for i := range y {
			if !near(y[i], lambda*vec[i], bound) {
				return false, nil
			}
		}
	}

	return true, nil
}
