// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, scalar scaling, matrix multiplication
// and transpose. All functions perform strict fail-fast validation and return
// clear errors on nil, empty or mismatched operands.
//
// Purpose:
//   - Each operation exists in two shapes sharing ONE core loop:
//     a pure function returning a fresh *Dense (Add, Sub, Scale, Mul) and a
//     mutating *Dense method (AddInPlace, SubInPlace, ScaleInPlace, MulInPlace).
//   - Operation tags are constants so error messages stay greppable.
//
// Notes:
//   - Fast paths run on the flat data slice when operands are *Dense;
//     other Matrix implementations go through At/Set in fixed i→j order.

package matrix

import (
	"fmt"
)

// ZeroSum is the initial value of dot-product accumulators.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd          = "Add"
	opSub          = "Sub"
	opMul          = "Mul"
	opTranspose    = "Transpose"
	opScale        = "Scale"
	opAddInPlace   = "AddInPlace"
	opSubInPlace   = "SubInPlace"
	opMulInPlace   = "MulInPlace"
	opScaleInPlace = "ScaleInPlace"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// materialize copies any Matrix into a fresh *Dense via At, in i→j order.
// Kernels that need flat storage (determinant, cofactors, interop) call it for
// non-*Dense inputs. Assumes m passed ValidateOperand.
// Complexity: O(r*c).
func materialize(m Matrix) (*Dense, error) {
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			res.data[i*cols+j] = v
		}
	}

	return res, nil
}

// asDense returns m itself when it is a *Dense, otherwise a materialized copy.
// Callers must treat the result as read-only.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}

	return materialize(m)
}

// addSubInto writes dst = a + sign*b element-wise, for sign ∈ {+1, -1}.
// Shapes are validated by the caller. dst may be a itself (in-place form), and
// b may alias a or dst: every cell is read before it is written.
//
// Determinism:
//   - Fast-path: single flat slice walk 0..(r*c−1).
//   - Fallback: fixed nested loops i=0..r−1, j=0..c−1.
//
// Complexity: Time O(r*c), Space O(1).
func addSubInto(dst *Dense, a, b Matrix, sign float64) error {
	rows, cols := a.Rows(), a.Cols()

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			n := rows * cols
			for idx := 0; idx < n; idx++ {
				dst.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			dst.data[i*cols+j] = av + sign*bv
		}
	}

	return nil
}

// addSub is the pure form shared by Add/Sub: validate, allocate, run addSubInto.
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res, err := NewDense(a.Rows(), a.Cols())
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	if err = addSubInto(res, a, b, sign); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (empty operand), ErrDimensionMismatch.
//
// Complexity: Time O(r*c), Space O(r*c). Inputs are never mutated.
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (empty operand), ErrDimensionMismatch.
//
// Complexity: Time O(r*c), Space O(r*c). Inputs are never mutated.
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// AddInPlace accumulates m += b. On error m is unchanged.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrDimensionMismatch.
func (m *Dense) AddInPlace(b Matrix) error {
	if err := ValidateBinarySameShape(m, b); err != nil {
		return matrixErrorf(opAddInPlace, err)
	}
	if err := addSubInto(m, m, b, +1); err != nil {
		return matrixErrorf(opAddInPlace, err)
	}

	return nil
}

// SubInPlace accumulates m -= b. On error m is unchanged.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrDimensionMismatch.
func (m *Dense) SubInPlace(b Matrix) error {
	if err := ValidateBinarySameShape(m, b); err != nil {
		return matrixErrorf(opSubInPlace, err)
	}
	if err := addSubInto(m, m, b, -1); err != nil {
		return matrixErrorf(opSubInPlace, err)
	}

	return nil
}

// mulInto computes res = A × B into a fresh zeroed res (a.Rows × b.Cols).
// res must not alias a or b; that is what lets MulInPlace multiply m by itself.
//
// Implementation:
//   - Fast path (*Dense × *Dense): i→k→j over row-major strides.
//   - Fallback: i→j→k with At, accumulating from ZeroSum.
//
// Complexity: Time O(r*n*c), Space O(1) beyond res.
func mulInto(res *Dense, a, b Matrix) error {
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	var (
		i, j, k         int
		av, bv, current float64
		err             error
	)

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k; db.data layout: k*bCols + j.
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return nil
		}
	}

	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return fmt.Errorf("At(%d,%d): %w", i, k, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return fmt.Errorf("At(%d,%d): %w", k, j, err)
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return nil
}

// Mul performs standard matrix multiplication C = A × B.
// MAIN DESCRIPTION:
//   - c[i][j] = Σ_k a[i][k]*b[k][j], plain triple loop, one allocation for C.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - Matrix: new Dense C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (empty operand), ErrDimensionMismatch (A.Cols != B.Rows).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res, err := NewDense(a.Rows(), b.Cols())
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err = mulInto(res, a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return res, nil
}

// MulInPlace replaces m with m × b; m takes the shape m.Rows() × b.Cols().
// The product is computed into a fresh buffer which m then adopts, so
// m.MulInPlace(m) is correct. On error m is unchanged.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrDimensionMismatch.
func (m *Dense) MulInPlace(b Matrix) error {
	if err := ValidateMulCompatible(m, b); err != nil {
		return matrixErrorf(opMulInPlace, err)
	}
	res, err := NewDense(m.r, b.Cols())
	if err != nil {
		return matrixErrorf(opMulInPlace, err)
	}
	if err = mulInto(res, m, b); err != nil {
		return matrixErrorf(opMulInPlace, err)
	}
	m.adopt(res)

	return nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The input is never mutated.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (empty operand).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	res, err := transpose(m)
	if err != nil {
		return nil, err
	}

	return res, nil
}

// transpose is Transpose with a concrete *Dense result, used by Adjugate.
func transpose(m Matrix) (*Dense, error) {
	if err := ValidateOperand(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// scaleInto writes dst = alpha * src; dst may be src itself.
// Complexity: O(r*c).
func scaleInto(dst *Dense, src Matrix, alpha float64) error {
	if ds, ok := src.(*Dense); ok {
		n := len(ds.data)
		for idx := 0; idx < n; idx++ {
			dst.data[idx] = ds.data[idx] * alpha
		}

		return nil
	}

	rows, cols := src.Rows(), src.Cols()
	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = src.At(i, j); err != nil {
				return fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			dst.data[i*cols+j] = v * alpha
		}
	}

	return nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// There is no dimension constraint; NaN/Inf in alpha propagate.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (empty operand) only.
//
// Complexity: Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateOperand(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if err = scaleInto(res, m, alpha); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return res, nil
}

// ScaleInPlace multiplies every cell of m by alpha.
// Fails only when m is nil or empty.
func (m *Dense) ScaleInPlace(alpha float64) error {
	if err := ValidateOperand(m); err != nil {
		return matrixErrorf(opScaleInPlace, err)
	}
	if err := scaleInto(m, m, alpha); err != nil {
		return matrixErrorf(opScaleInPlace, err)
	}

	return nil
}
