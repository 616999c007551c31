// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for constructors, factories and views.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state except the documented default RNG.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Shape options (WithRows/WithCols) are read only by factories that have
//     an optional dimension (Eye, Diag). Other constructors ignore them.
//   - WithSpecies is read only by view constructors and Wrap*.
package matrix

import (
	"math"
	"math/rand"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set.
	// Off: NaN and ±Inf are ordinary float64 values unless a caller opts in.
	DefaultValidateNaNInf = false

	// DefaultDiagonalValue is the value Eye writes on the main diagonal.
	DefaultDiagonalValue = 1.0

	// DefaultEpsilon is the tolerance used by AllClose-style helpers when
	// callers do not supply one.
	DefaultEpsilon = 1e-9
)

// unsetDim marks a shape option that was not provided.
const unsetDim = 0

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicRowsInvalid  = "matrix: WithRows: rows must be positive"
	panicColsInvalid  = "matrix: WithCols: cols must be positive"
	panicValueInvalid = "matrix: WithValue: value must be finite"
	panicRNGNil       = "matrix: WithRNG: rng must be non-nil"
	panicSpeciesNil   = "matrix: WithSpecies: species must be non-nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	validateNaNInf bool           // DefaultValidateNaNInf
	rows           int            // unsetDim ⇒ factory default
	cols           int            // unsetDim ⇒ factory default
	value          float64        // DefaultDiagonalValue
	rng            func() float64 // nil ⇒ defaultRNG
	species        Species        // nil ⇒ DenseSpecies
}

// WithValidateNaNInf makes newly created matrices reject NaN/±Inf in Set.
// The flag is per-instance and survives Clone.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (the default).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithRows sets the row count for factories with an optional row dimension.
// Panics when rows <= 0.
func WithRows(rows int) Option {
	if rows <= 0 {
		panic(panicRowsInvalid)
	}

	return func(o *Options) { o.rows = rows }
}

// WithCols sets the column count for factories with an optional column dimension.
// Panics when cols <= 0.
func WithCols(cols int) Option {
	if cols <= 0 {
		panic(panicColsInvalid)
	}

	return func(o *Options) { o.cols = cols }
}

// WithValue sets the diagonal value written by Eye.
// Panics when v is NaN or ±Inf.
func WithValue(v float64) Option {
	if isNonFinite(v) {
		panic(panicValueInvalid)
	}

	return func(o *Options) { o.value = v }
}

// WithRNG injects the generator used by Rand and RandInt.
// Passing a fixed function makes random factories fully deterministic.
func WithRNG(rng func() float64) Option {
	if rng == nil {
		panic(panicRNGNil)
	}

	return func(o *Options) { o.rng = rng }
}

// WithSpecies overrides the species declared by a view or wrapper, i.e. the
// type materialized when an operation is invoked through it.
func WithSpecies(s Species) Option {
	if s == nil {
		panic(panicSpeciesNil)
	}

	return func(o *Options) { o.species = s }
}

// NewOptions resolves opts over documented defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user options in order over defaults.
// Nil options are skipped so callers can build option lists conditionally.
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
		rows:           unsetDim,
		cols:           unsetDim,
		value:          DefaultDiagonalValue,
	}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// random returns the configured generator or the package default.
func (o Options) random() func() float64 {
	if o.rng != nil {
		return o.rng
	}

	return defaultRNG
}

// defaultRNG draws uniformly from [0,1) using the runtime-seeded global source.
func defaultRNG() float64 { return rand.Float64() }

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }
