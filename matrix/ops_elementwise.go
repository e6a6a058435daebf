// SPDX-License-Identifier: MIT
// Package matrix - element-wise comparison kernels.
//
// Purpose:
//   - Equal compares two matrices cell by cell against the package tolerance Epsilon.
//   - EqualApprox does the same with a caller-supplied absolute tolerance.
//   - Both are predicates: invalid operands (nil, empty, different shape) yield false.
//
// Numeric policy:
//   - Identical values (including equal infinities) always match.
//   - NaN never matches anything, itself included.

package matrix

import "math"

// Equal reports whether a and b have the same shape and every pair of cells
// satisfies |a[i][j] - b[i][j]| <= Epsilon.
// Nil or empty (moved-from) operands are never equal to anything.
// Complexity: O(r*c), early exit on the first mismatch.
func Equal(a, b Matrix) bool { return ewWithin(a, b, Epsilon) }

// EqualApprox is Equal with a caller-supplied absolute tolerance.
// A negative eps is used as |eps|; a NaN eps makes every comparison fail.
func EqualApprox(a, b Matrix, eps float64) bool { return ewWithin(a, b, math.Abs(eps)) }

// Equal reports whether m equals other within Epsilon; see the package-level Equal.
func (m *Dense) Equal(other Matrix) bool { return ewWithin(m, other, Epsilon) }

// ewWithin is the shared comparison loop behind Equal and EqualApprox.
func ewWithin(a, b Matrix, eps float64) bool {
	if ValidateOperand(a) != nil || ValidateOperand(b) != nil {
		return false
	}
	if ValidateSameShape(a, b) != nil {
		return false
	}

	// Dense fast-path: operate over flat slices when both are *Dense.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !cellWithin(da.data[idx], db.data[idx], eps) {
					return false
				}
			}

			return true
		}
	}

	// Generic fallback via At; a read error counts as a mismatch.
	r, c := a.Rows(), a.Cols()
	var av, bv float64
	var errA, errB error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, errA = a.At(i, j)
			bv, errB = b.At(i, j)
			if errA != nil || errB != nil || !cellWithin(av, bv, eps) {
				return false
			}
		}
	}

	return true
}

// cellWithin is the single-cell predicate: exact match, or |x-y| <= eps.
func cellWithin(x, y, eps float64) bool {
	if x == y {
		return true
	}

	return math.Abs(x-y) <= eps
}
