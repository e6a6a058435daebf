// SPDX-License-Identifier: MIT

// Package matrix: numeric constants and functional options for Dense construction.
// This file defines:
//   - documented defaults (constants, single source of truth),
//   - Option / Options (functional options with internal state),
//   - gatherOptions helper (internal) used by every constructor.
//
// Design goals:
//   - Deterministic behavior: no global mutable state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

// ---------- Defaults (single source of truth) ----------

// Epsilon is the absolute tolerance used by Equal and by the singular check in
// Inverse: two cells are equal when |a-b| <= Epsilon, and a matrix is singular
// when |det| <= Epsilon.
const Epsilon = 1e-6

// Default shape of NewDefaultDense.
const (
	DefaultRows = 3
	DefaultCols = 3
)

// DefaultValidateNaNInf toggles strict finite-value validation on Set and Apply.
// Off by default: scalar multiplication must never fail, even by ±Inf.
const DefaultValidateNaNInf = false

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public constructors accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// WithValidateNaNInf enables strict finite-value validation.
// When enabled, Set and Apply reject NaN and ±Inf with ErrNaNInf.
//
// Notes:
//   - The flag is captured at construction and carried by Clone/Copy/Move.
//   - Kernel results (Add, Mul, Inverse, ...) are created with the defaults.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (the default).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions applies user-provided setters on top of the defaults.
// Last-writer-wins. Complexity: O(len(user)).
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
