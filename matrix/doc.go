// Package matrix provides a dense, row-major matrix of float64 values with
// the classical linear-algebra operations.
//
// The package provides:
//
//   - Dense: an owning r×c container with safe accessors (At, Set, Ref),
//     deep copy (Clone, Copy, CopyFrom), ownership transfer (Move, Take)
//     and resizing that keeps the overlapping block (Resize, SetRows, SetCols).
//   - Element-wise Add/Sub, Scale, Mul and Transpose, each as a pure function
//     and, where it mutates, as an *InPlace method sharing the same loop.
//   - Equal/EqualApprox with the absolute tolerance Epsilon (1e-6).
//   - Minor, Determinant (Laplace expansion along row 0), Cofactors, Adjugate
//     and Inverse (adj(A)/det(A)).
//   - ToGonum/FromGonum to exchange values with gonum.org/v1/gonum/mat.
//
// Errors are package sentinels (ErrInvalidDimensions, ErrIndexOutOfBounds,
// ErrDimensionMismatch, ErrNotSquare, ErrSingularMatrix, ...) wrapped with the
// failing operation; match them with errors.Is.
//
// Determinant and Inverse cost O(n!) and use no pivoting: they target small
// matrices. A Dense is not safe for concurrent mutation; distinct instances
// share nothing.
//
// See the examples in this package for usage patterns.
package matrix
