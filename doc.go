// Package lvmatrix is a small, dependable dense-matrix toolkit for Go:
// build a matrix, do arithmetic on it, and take its determinant or inverse.
//
// 🚀 What is lvmatrix/matrix?
//
//	A single package with a row-major float64 Dense type and:
//		• Construction: zero-filled r×c, default 3×3, from a 2-D literal, identity
//		• Ownership: deep copy, buffer move (the source becomes 0×0), resize
//		• Arithmetic: Add, Sub, Scale, Mul, Transpose (pure and in-place forms)
//		• Comparison: Equal within the 1e-6 tolerance Epsilon
//		• Determinant family: Minor, Determinant, Cofactors, Adjugate, Inverse
//		• Interop: copy to and from gonum.org/v1/gonum/mat
//
// ✨ Why choose lvmatrix?
//
//   - Explicit errors - every failure is a sentinel matched with errors.Is
//   - Exact for small integer matrices - no pivoting, no rounding surprises
//   - Predictable - no global state, no logging, no goroutines
//
// Layout:
//
//	matrix/    - the Dense type, kernels, validators and options
//	examples/  - runnable programs (linear system, power iteration)
//
// Quick example:
//
//	| 2  5  7 |⁻¹   |   1  -1   1 |
//	| 6  3  4 |   = | -38  41 -34 |
//	| 5 -2 -3 |     |  27 -29  24 |
//
//	go get github.com/katalvlaran/lvmatrix/matrix
package lvmatrix
