// Package lvmat is a small numeric-matrix toolkit: dense, sparse and
// block-structured matrices with arithmetic, structural predicates and
// classic linear algebra (determinant, cofactors, adjugate, inverse).
//
// 🚀 What is inside?
//
//	• numeric/ — Number constraint and per-type numeric limits
//	• sparse/  — generic coordinate-list (COO) matrix: merge-based Add/Sub,
//	             row-accumulated Mul, minors, determinant, adjugate, inverse
//	• matrix/  — row-major float64 Dense with pivoted determinant/inverse
//	             and classification predicates
//	• block/   — a grid of Dense tiles with tile-wise arithmetic,
//	             concatenation, transposition and Frobenius norm
//
// ✨ Why lvmat?
//
//   - Deterministic – fixed loop orders, no map iteration in kernels
//   - Safe surface – sentinel errors instead of panics, errors.Is friendly
//   - Value semantics – binary operators never mutate their operands
//
// Sparse determinant uses plain Laplace expansion and is O(n!): it targets
// small matrices only. Callers must bound input size.
//
//	go get github.com/katalvlaran/lvmat
package lvmat
