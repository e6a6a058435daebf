// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil/square checks here.
//  - Return sentinel errors wrapped only with the validator tag, so call sites
//    can wrap once more with their operation tag.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing on success.
//
// Note:
//  - Composite validators follow a fixed sequence: NotNil → NotEmpty → Shape.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateShape checks requested dimensions for construction and resize.
// Returns ErrInvalidDimensions unless rows>0 and cols>0 and rows*cols fits in int.
func ValidateShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return validatorErrorf("ValidateShape", ErrInvalidDimensions)
	}
	if cols > math.MaxInt/rows {
		return validatorErrorf("ValidateShape", fmt.Errorf("%dx%d overflows int: %w", rows, cols, ErrInvalidDimensions))
	}

	return nil
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil (*Dense)(nil) stored in the interface is rejected too.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateNotEmpty rejects the moved-from 0×0 state (and any implementation
// reporting a non-positive dimension) with ErrInvalidDimensions.
// Assumes m is not nil.
func ValidateNotEmpty(m Matrix) error {
	if m.Rows() <= 0 || m.Cols() <= 0 {
		return validatorErrorf("ValidateNotEmpty", ErrInvalidDimensions)
	}

	return nil
}

// ValidateOperand is a composite check: NotNil → NotEmpty.
// Every kernel validates each operand with this before touching it.
func ValidateOperand(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	return ValidateNotEmpty(m)
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape is a composite check: Operand(a) → Operand(b) → SameShape.
// Used by Add/Sub and their in-place forms.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateOperand(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateOperand(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquare is a composite check: Operand(m) → Rows == Cols.
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrNonSquare.
func ValidateSquare(m Matrix) error {
	if err := ValidateOperand(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateMulCompatible is a composite check: Operand(a) → Operand(b) → a.Cols == b.Rows.
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrDimensionMismatch.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateOperand(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateOperand(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateIndex checks 0 ≤ row < m.Rows() and 0 ≤ col < m.Cols().
// Assumes m is not nil. Errors: ErrOutOfRange.
func ValidateIndex(m Matrix, row, col int) error {
	if row < 0 || row >= m.Rows() || col < 0 || col >= m.Cols() {
		return validatorErrorf("ValidateIndex", ErrOutOfRange)
	}

	return nil
}
