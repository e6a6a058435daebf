// SPDX-License-Identifier: MIT
// Package matrix - gonum interop.
//
// Purpose:
//   - Hand a Matrix to gonum.org/v1/gonum/mat routines (ToGonum) and bring a
//     gonum result back (FromGonum). Both directions deep-copy; no buffer is
//     ever shared between a Dense and a mat.Dense.
//
// Notes:
//   - gonum panics on zero-sized matrices, so empty operands are rejected up front.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

// ToGonum returns a *mat.Dense holding a copy of m.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (empty m).
//
// Complexity: O(r*c).
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateOperand(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	buf := make([]float64, len(src.data))
	copy(buf, src.data)

	// mat.NewDense adopts buf; it uses the same row-major layout (stride == cols).
	return mat.NewDense(src.r, src.c, buf), nil
}

// FromGonum returns a new *Dense holding a copy of g.
//
// Errors:
//   - ErrNilMatrix when g is nil (a typed nil *mat.Dense included), ErrInvalidDimensions when g has a zero dimension.
//
// Complexity: O(r*c).
func FromGonum(g mat.Matrix) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	if d, ok := g.(*mat.Dense); ok && d == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	rows, cols := g.Dims()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, fmt.Errorf("dims %dx%d: %w", rows, cols, err))
	}
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			res.data[i*cols+j] = g.At(i, j)
		}
	}

	return res, nil
}
