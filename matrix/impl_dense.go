// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major), ownership & safe accessors.
//
// Purpose:
//   - Provide a single owned row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Ref return errors instead of panicking.
//   - Express copy (Clone/Copy/CopyFrom) and transfer of ownership (Move/Take) explicitly.
//   - Support resizing that keeps the overlapping top-left block and zero-fills the rest.
//
// AI-Hints:
//   - Kernels in impl_linear_algebra.go and impl_cofactor.go work on the flat data slice directly.
//   - A moved-from Dense is 0×0 with a nil buffer; every dimension-dependent call on it
//     returns ErrInvalidDimensions until Resize revives it.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Ref: O(1); Clone/Copy: O(r*c); Move/Take: O(1);
//     Resize: O(r'*c').

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxRef      = "Ref"      // method tag used in error wrappers
	ctxApply    = "Apply"    // method tag used in error wrappers
	ctxResize   = "Resize"   // method tag used in error wrappers
	ctxCopy     = "Copy"     // method tag used in error wrappers
	ctxCopyFrom = "CopyFrom" // method tag used in error wrappers
	ctxTake     = "Take"     // method tag used in error wrappers
	ctxFromRows = "NewDenseFromRows"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w". Preserves the sentinel for errors.Is.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix that exclusively owns its buffer.
//   - r,c hold dimensions (rows, cols); both are 0 only in the moved-from state.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set/Apply (see options.go).
type Dense struct {
	r, c           int       // row and column counts (>=1, or 0×0 when moved-from)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation and numeric policy from opts.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer.
//   - Stage 3: resolve options (defaults + user setters).
//
// Inputs:
//   - rows, cols: positive dimensions.
//   - opts: optional numeric policy setters (WithValidateNaNInf, ...).
//
// Returns:
//   - *Dense: newly allocated matrix, all cells 0.0.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	// Validate shape before any allocation.
	if err := ValidateShape(rows, cols); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols), // make() zero-fills deterministically
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewDefaultDense returns the default DefaultRows×DefaultCols (3×3) zero matrix.
// It cannot fail: the default shape is valid by construction.
func NewDefaultDense() *Dense {
	return &Dense{
		r:              DefaultRows,
		c:              DefaultCols,
		data:           make([]float64, DefaultRows*DefaultCols),
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// NewDenseFromRows builds a Dense from a literal slice of rows (copied, never aliased).
//
// Errors:
//   - ErrInvalidDimensions when there are no rows or the first row is empty.
//   - ErrDimensionMismatch when a row length differs from the first row.
//   - ErrNaNInf when the policy from opts rejects a value.
//
// Complexity: O(r*c).
func NewDenseFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w",
				ctxFromRows, i, len(rows[i]), c, ErrDimensionMismatch)
		}
		for j = 0; j < c; j++ {
			if err = m.Set(i, j, rows[i][j]); err != nil {
				return nil, fmt.Errorf("%s: %w", ctxFromRows, err)
			}
		}
	}

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsEmpty reports whether m is in the moved-from 0×0 state.
func (m *Dense) IsEmpty() bool { return m.r == 0 || m.c == 0 }

// indexOf computes the row-major offset or returns a plain sentinel.
// Public methods (At/Set/Ref) wrap the sentinel with coordinates and method name.
//
// Errors:
//   - ErrInvalidDimensions when m is empty (moved-from).
//   - ErrOutOfRange when indices are invalid.
//
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if m.IsEmpty() {
		return 0, ErrInvalidDimensions
	}
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col).
//
// Errors:
//   - ErrOutOfRange when out of bounds; ErrInvalidDimensions on an empty matrix.
//
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrInvalidDimensions on an empty matrix;
//     ErrNaNInf when the policy is enabled and v is not finite.
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Ref returns a pointer to the cell (row, col), so callers may read and write
// through it in place: `p, _ := m.Ref(1, 2); *p += 3`.
//
// Notes:
//   - Writes through the pointer bypass the NaN/Inf policy.
//   - The pointer is invalidated by Resize, Move, Take, CopyFrom and MulInPlace,
//     which replace the buffer.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrInvalidDimensions on an empty matrix.
func (m *Dense) Ref(row, col int) (*float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return nil, denseErrorf(ctxRef, row, col, err)
	}

	return &m.data[off], nil
}

// Clone returns a deep copy (new buffer, same numeric policy) as a Matrix.
// Cloning an empty matrix yields another empty matrix.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	return m.clone()
}

// Copy returns a deep, independent copy typed as *Dense.
//
// Errors:
//   - ErrInvalidDimensions when m is empty (moved-from).
//
// Complexity: O(r*c).
func (m *Dense) Copy() (*Dense, error) {
	if m.IsEmpty() {
		return nil, denseErrorf(ctxCopy, m.r, m.c, ErrInvalidDimensions)
	}

	return m.clone(), nil
}

// clone is the shared deep-copy kernel for Clone and Copy.
func (m *Dense) clone() *Dense {
	var cp []float64
	if m.data != nil {
		cp = make([]float64, len(m.data))
		copy(cp, m.data)
	}

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// CopyFrom makes m a deep copy of src: m takes src's shape and values.
// The receiver keeps its own numeric policy and enforces it on the copied
// values. m.CopyFrom(m) is a no-op.
//
// Implementation:
//   - Stage 1: validate src (non-nil, non-empty).
//   - Stage 2: build the new buffer completely (fast path for *Dense).
//   - Stage 3: with the policy on, reject any non-finite cell; m is untouched.
//   - Stage 4: swap it in; the old buffer is released afterwards.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrNaNInf (policy on).
//
// Complexity: O(r*c).
func (m *Dense) CopyFrom(src Matrix) error {
	if err := ValidateNotNil(src); err != nil {
		return fmt.Errorf("Dense.%s: %w", ctxCopyFrom, err)
	}
	if err := ValidateNotEmpty(src); err != nil {
		return fmt.Errorf("Dense.%s: %w", ctxCopyFrom, err)
	}
	var tmp *Dense
	if d, ok := src.(*Dense); ok {
		if d == m {
			return nil
		}
		tmp = d.clone()
	} else {
		var err error
		if tmp, err = materialize(src); err != nil {
			return fmt.Errorf("Dense.%s: %w", ctxCopyFrom, err)
		}
	}
	if m.validateNaNInf {
		for idx, v := range tmp.data {
			if isNonFinite(v) {
				return denseErrorf(ctxCopyFrom, idx/tmp.c, idx%tmp.c, ErrNaNInf)
			}
		}
	}
	m.adopt(tmp)

	return nil
}

// Move transfers ownership of m's buffer to a new Dense and leaves m empty
// (0×0, nil buffer). No element is copied.
// Complexity: O(1).
func (m *Dense) Move() *Dense {
	out := &Dense{
		r:              m.r,
		c:              m.c,
		data:           m.data,
		validateNaNInf: m.validateNaNInf,
	}
	m.r, m.c, m.data = 0, 0, nil

	return out
}

// Take makes m adopt src's buffer, shape and policy, leaving src empty.
// m.Take(m) is a no-op. Whatever m owned before is released.
//
// Errors:
//   - ErrNilMatrix when src is nil.
//
// Complexity: O(1).
func (m *Dense) Take(src *Dense) error {
	if src == nil {
		return fmt.Errorf("Dense.%s: %w", ctxTake, ErrNilMatrix)
	}
	if src == m {
		return nil
	}
	m.r, m.c, m.data, m.validateNaNInf = src.r, src.c, src.data, src.validateNaNInf
	src.r, src.c, src.data = 0, 0, nil

	return nil
}

// adopt replaces m's storage with res's buffer; res must not be used afterwards.
// Used by in-place kernels that compute into a fresh result first.
func (m *Dense) adopt(res *Dense) {
	m.r, m.c, m.data = res.r, res.c, res.data
}

// Resize reallocates m to rows×cols in a single call (both axes may change).
// MAIN DESCRIPTION:
//   - Keep the overlapping block (i < min(oldR,rows), j < min(oldC,cols)); zero elsewhere.
//
// Implementation:
//   - Stage 1: validate the new shape; on error m is untouched.
//   - Stage 2: allocate the new zero buffer and copy the overlap row by row.
//   - Stage 3: swap the buffer in (old one released only after the new one exists).
//
// Behavior highlights:
//   - Resizing an empty (moved-from) matrix revives it as a zero matrix.
//   - Same shape is a no-op.
//
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func (m *Dense) Resize(rows, cols int) error {
	if err := ValidateShape(rows, cols); err != nil {
		return denseErrorf(ctxResize, rows, cols, err)
	}
	if rows == m.r && cols == m.c {
		return nil
	}

	buf := make([]float64, rows*cols)
	keepR, keepC := min(m.r, rows), min(m.c, cols)
	var i, src, dst int
	for i = 0; i < keepR; i++ {
		src = i * m.c
		dst = i * cols
		copy(buf[dst:dst+keepC], m.data[src:src+keepC])
	}
	m.r, m.c, m.data = rows, cols, buf

	return nil
}

// SetRows changes only the row count; see Resize.
func (m *Dense) SetRows(rows int) error { return m.Resize(rows, m.c) }

// SetCols changes only the column count; see Resize.
func (m *Dense) SetCols(cols int) error { return m.Resize(m.r, cols) }

// String renders rows as "[a, b]\n" lines with %g values, for diagnostics.
// An empty matrix renders as "".
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Read-only; no allocations.
// Complexity: O(r*c).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place, row-major.
//
// Behavior highlights:
//   - Respects validateNaNInf; an error aborts and earlier cells stay updated.
//
// Errors:
//   - ErrNaNInf when the transformer produced a non-finite value (policy ON).
//
// Complexity: O(r*c).
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var i, j, base int
	var nv float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if m.validateNaNInf && isNonFinite(nv) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }
