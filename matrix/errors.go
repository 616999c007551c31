// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Constructors, views and kernels MUST return these sentinels and
// tests MUST check them via errors.Is. No function panics on user-triggered
// error conditions; panics are reserved for nonsensical Option values.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every sentinel is prefixed with "matrix: ..." for easy grepping. Detection
// sites put the human-readable reason FIRST and the sentinel LAST:
//
//	fmt.Errorf("%s: %w", "nColumns must be a positive integer", ErrDimension)
//
// so message prefixes stay stable for callers matching text, while errors.Is
// keeps working for callers matching kinds.
//
// ERROR PRIORITY (documented, enforced in tests):
// argument -> dimension -> shape -> index -> dimension mismatch -> species.

var (
	// ErrArgument is returned when a constructor input is missing or of an
	// unrecognized kind (no arguments, nil, unsupported Go type, zero first dim).
	ErrArgument = errors.New("matrix: invalid argument")

	// ErrDimension is returned when a requested dimension is not a positive integer.
	ErrDimension = errors.New("matrix: invalid dimension")

	// ErrShape is returned for empty, jagged or length-mismatched array input.
	ErrShape = errors.New("matrix: invalid shape")

	// ErrIndex indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrIndex = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrSpecies signals that a Species factory produced an unusable result
	// (nil, wrong shape, or a non-owning view).
	ErrSpecies = errors.New("matrix: species produced an invalid matrix")

	// ErrNaNInf signals a NaN or ±Inf value was written into a matrix whose
	// numeric policy requires finite values.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// ErrOutOfRange names the same condition as ErrIndex.
// Keep it as an alias so errors.Is(err, ErrOutOfRange) remains true.
var ErrOutOfRange = ErrIndex

// Stable reason strings. Tests match these as message prefixes.
const (
	msgFirstArgument    = "First argument must be a positive number or an array"
	msgRowsPositive     = "nRows must be a positive integer"
	msgColumnsPositive  = "nColumns must be a positive integer"
	msgData2D           = "Data must be a 2D array with at least one element"
	msgData2DOnly       = "Data must be a 2D array"
	msgInconsistentDims = "Inconsistent array dimensions"
	msgDataLength       = "Data length does not match given dimensions"
	msgTooLarge         = "nRows*nColumns exceeds the addressable size"
)

// reasonf attaches a stable reason in front of a sentinel.
// Use only at the detection site; callers further up wrap with matrixErrorf.
func reasonf(reason string, err error) error {
	return fmt.Errorf("%s: %w", reason, err)
}

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
