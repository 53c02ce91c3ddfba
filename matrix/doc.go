// SPDX-License-Identifier: MIT

// Package matrix provides a dense float64 matrix and the kernels that operate on it.
//
// The matrix package provides:
//
//   - Dense: a row-major matrix backed by one flat slice, with bounds-checked
//     At/Set, an optional finite-only numeric policy, no-copy views and
//     copy-based submatrices.
//   - Kernels over the Matrix interface: Add, Sub, Hadamard, Mul, MatVec,
//     Scale, Transpose, Equal, Trace. Two *Dense operands take a flat-slice
//     fast path.
//   - Factorizations: LU with partial pivoting, Householder QR and the
//     symmetric Jacobi eigensolver (Eigen).
//   - Linear algebra: Determinant and Inverse (both from the pivoted LU),
//     Cofactor and Adjugate.
//   - Predicates with an epsilon: IsSymmetric, IsIdentity, IsZero,
//     IsDiagonal, IsUpperTriangular, IsLowerTriangular, IsTriangular,
//     IsSingular, IsOrthogonal, IsNormal, IsDiagonalizable.
//
// Errors are package sentinels (see errors.go) wrapped with an operation tag;
// match them with errors.Is.
//
// The block package tiles Dense matrices into a BlockMatrix; the sparse
// package holds the generic coordinate-list engine.
package matrix
