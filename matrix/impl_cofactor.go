// SPDX-License-Identifier: MIT
// Package matrix - minors, determinant, cofactors, adjugate and inverse.
//
// Purpose:
//   - One shared minor kernel (minorInto) feeds both the determinant recursion
//     and the cofactor matrix, so both see identical row/column deletion.
//   - Determinant is Laplace (cofactor) expansion along row 0.
//   - Inverse is the classical adjugate formula adj(A)/det(A).
//
// Known limitation:
//   - Laplace expansion costs O(n!) time. It is exact-in-structure and fine for
//     the small matrices this package targets (n ≲ 10), and deliberately has no
//     pivoting or LU fallback.
//   - The adjugate inverse is numerically unstable for ill-conditioned input.
//
// AI-Hints:
//   - Determinant/Cofactors allocate one scratch matrix per size 1..n-1 up front
//     (minorPool) and reuse it across the whole recursion.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for error wrapping.
const (
	opMinor       = "Minor"
	opDeterminant = "Determinant"
	opCofactors   = "Cofactors"
	opAdjugate    = "Adjugate"
	opInverse     = "Inverse"
)

// minorInto copies every cell of the n×n src outside row `row` and column `col`
// into the (n-1)×(n-1) dst, preserving the relative order of what remains.
// Indices and shapes are validated by callers.
// Complexity: O(n^2).
func minorInto(dst, src *Dense, row, col int) {
	n := src.c
	var i, j, base, k int // k is the write cursor in dst.data
	for i = 0; i < src.r; i++ {
		if i == row {
			continue
		}
		base = i * n
		for j = 0; j < n; j++ {
			if j == col {
				continue
			}
			dst.data[k] = src.data[base+j]
			k++
		}
	}
}

// minorPool holds one scratch matrix per size: pool[k] is k×k for k in [1, n-1].
// A recursion level working on a k×k matrix writes its minors into pool[k-1],
// which no deeper level touches.
type minorPool []*Dense

// newMinorPool allocates the scratch matrices needed below an n×n matrix.
func newMinorPool(n int) minorPool {
	pool := make(minorPool, n)
	for k := 1; k < n; k++ {
		pool[k] = &Dense{r: k, c: k, data: make([]float64, k*k)}
	}

	return pool
}

// det expands src along row 0: Σ_i (-1)^i * src[0][i] * det(minor(0,i)).
// src must be square and non-empty.
func (p minorPool) det(src *Dense) float64 {
	n := src.r
	if n == 1 {
		return src.data[0]
	}

	sub := p[n-1]
	det := ZeroSum
	sign := 1.0
	for i := 0; i < n; i++ {
		minorInto(sub, src, 0, i)
		det += sign * src.data[i] * p.det(sub)
		sign = -sign
	}

	return det
}

// Minor returns the (n-1)×(n-1) submatrix of the square m obtained by deleting
// row `row` and column `col`.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (empty input, or a 1×1 input which has no minor),
//     ErrNonSquare, ErrOutOfRange (row/col outside [0,n)).
//
// Complexity: O(n^2).
func Minor(m Matrix, row, col int) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if err := ValidateIndex(m, row, col); err != nil {
		return nil, matrixErrorf(opMinor, fmt.Errorf("(%d,%d): %w", row, col, err))
	}
	n := m.Rows()
	if n == 1 {
		return nil, matrixErrorf(opMinor, ErrInvalidDimensions)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	dst, err := NewDense(n-1, n-1)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	minorInto(dst, src, row, col)

	return dst, nil
}

// Determinant returns det(m) by cofactor expansion along the first row.
// MAIN DESCRIPTION:
//   - 1×1: the single cell.
//   - n×n: Σ_i (-1)^i * m[0][i] * det(minor(0,i)), recursively.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (empty), ErrNonSquare.
//
// Complexity:
//   - Time O(n!), Space O(n^2) for the scratch pool. See the package note above.
func Determinant(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	src, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return newMinorPool(src.r).det(src), nil
}

// Cofactors returns the cofactor matrix C with C[i][j] = (-1)^(i+j) * det(minor(i,j)).
// By convention the cofactor matrix of a 1×1 matrix is [[1]].
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (empty), ErrNonSquare.
//
// Complexity: Time O(n^2 · (n-1)!), Space O(n^2).
func Cofactors(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opCofactors, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opCofactors, err)
	}
	n := src.r
	res, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opCofactors, err)
	}
	if n == 1 {
		res.data[0] = 1

		return res, nil
	}

	pool := newMinorPool(n)
	sub := pool[n-1]
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			minorInto(sub, src, i, j)
			v = pool.det(sub)
			if (i+j)%2 == 1 {
				v = -v
			}
			res.data[i*n+j] = v
		}
	}

	return res, nil
}

// Adjugate returns adj(m) = Cofactors(m)ᵀ.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (empty), ErrNonSquare.
func Adjugate(m Matrix) (*Dense, error) {
	cof, err := Cofactors(m)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	adj, err := transpose(cof)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return adj, nil
}

// Inverse returns m⁻¹ = adj(m) / det(m).
// MAIN DESCRIPTION:
//   - Stage 1: d := Determinant(m) (propagates ErrNonSquare).
//   - Stage 2: |d| <= Epsilon ⇒ ErrSingular.
//   - Stage 3: Adjugate(m) scaled by 1/d.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (empty), ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Dominated by Cofactors: Time O(n^2 · (n-1)!), Space O(n^2).
func Inverse(m Matrix) (Matrix, error) {
	d, err := Determinant(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if math.Abs(d) <= Epsilon {
		return nil, matrixErrorf(opInverse, fmt.Errorf("det=%g: %w", d, ErrSingular))
	}
	adj, err := Adjugate(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err = scaleInto(adj, adj, 1/d); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return adj, nil
}
