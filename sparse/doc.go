// SPDX-License-Identifier: MIT

// Package sparse implements a generic coordinate-list (COO) sparse matrix.
//
// What & Why:
//
//	Matrix[T] stores only the non-zero entries of a rows×cols matrix as three
//	parallel slices (row index, column index, value). At all times:
//	  - no two entries share a (row, col) position;
//	  - every stored value is non-zero (zero insertions are dropped);
//	  - entries are kept in row-major order (row, then column).
//	The ordering is enforced by the store itself on every mutation, so every
//	matrix, including transposes and minors, is a valid operand of the
//	merge-based Add/Sub kernels.
//
// Operations:
//
//	Store & access : New, AddValue, Value, Clear, FillDiagonal, Do, Equal.
//	Arithmetic     : Add, Sub (two-pointer merge), Mul (row accumulator), Scale.
//	Queries        : IsZero, IsSquare, IsDiagonal, IsIdentity, Trace, sums,
//	                 Max/Min, Density, per-row/column non-zero counts.
//	Linear algebra : Transpose, Minor, Determinant, Cofactor, Adjugate, Inverse.
//
// Complexity:
//
//	AddValue is O(log nnz) search plus O(nnz) slice insertion; Value is
//	O(log nnz). Add/Sub are O(nnzA + nnzB). Mul is O(nnzA · avg row fill of B).
//	Determinant is Laplace expansion along row 0: O(n!) in the dense case.
//	It is meant for small matrices; callers must bound the input size.
//
// Concurrency:
//
//	A Matrix is not safe for concurrent mutation. Concurrent reads of a
//	matrix that nobody mutates are safe; every operator allocates its result.
package sparse
