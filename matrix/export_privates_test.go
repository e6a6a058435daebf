// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private kernels and the options snapshot.
//
// Purpose:
//   - Expose the unexported minor kernel and the resolved Options to matrix_test ONLY.
//   - The file name ends in _test.go, so none of this reaches production builds.
//
// Risks & Maintenance:
//   - Keep OptionsSnapshot in sync with the internal Options fields.

// OptionsSnapshot is a read-only copy of the internal Options fields.
type OptionsSnapshot struct {
	ValidateNaNInf bool
}

// GatherOptionsSnapshot_TestOnly resolves opts exactly like the constructors do.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{ValidateNaNInf: o.validateNaNInf}
}

// PolicyOf_TestOnly reports the NaN/Inf policy carried by m.
func PolicyOf_TestOnly(m *Dense) bool { return m.validateNaNInf }

// MinorInto_TestOnly forwards to minorInto; the caller supplies an
// (n-1)×(n-1) dst for an n×n src.
func MinorInto_TestOnly(dst, src *Dense, row, col int) { minorInto(dst, src, row, col) }

// PoolDeterminant_TestOnly runs the scratch-pool recursion directly, skipping validation.
func PoolDeterminant_TestOnly(src *Dense) float64 { return newMinorPool(src.r).det(src) }
