// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil/index checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil (interface or typed pointer).
// Returns ErrArgument when m is nil.
func ValidateNotNil(m Matrix) error {
	if isNilMatrix(m) {
		return validatorErrorf("ValidateNotNil", ErrArgument)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf(fmt.Sprintf("ValidateSameShape: rows %d != %d", a.Rows(), b.Rows()), ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf(fmt.Sprintf("ValidateSameShape: columns %d != %d", a.Cols(), b.Cols()), ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
//
// Errors: ErrArgument, ErrDimensionMismatch.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
//
// Errors: ErrArgument, ErrDimensionMismatch.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf(fmt.Sprintf("ValidateMulCompatible: %dx%d * %dx%d", a.Rows(), a.Cols(), b.Rows(), b.Cols()), ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrArgument)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// validateIndex checks 0 <= idx < n for one axis.
// axis names the dimension in the message ("row"/"column").
func validateIndex(axis string, idx, n int) error {
	if idx < 0 || idx >= n {
		return fmt.Errorf("%s index %d not in [0,%d): %w", axis, idx, n, ErrIndex)
	}

	return nil
}

// validateIndexList applies validateIndex to each element; an empty list is a shape error.
func validateIndexList(axis string, idx []int, n int) error {
	if len(idx) == 0 {
		return fmt.Errorf("%s selection must not be empty: %w", axis, ErrShape)
	}
	for _, v := range idx {
		if err := validateIndex(axis, v, n); err != nil {
			return err
		}
	}

	return nil
}

// validateRange checks an inclusive [start,end] range over an axis of length n.
func validateRange(axis string, start, end, n int) error {
	if err := validateIndex(axis, start, n); err != nil {
		return err
	}
	if err := validateIndex(axis, end, n); err != nil {
		return err
	}
	if end < start {
		return fmt.Errorf("%s range [%d,%d] is reversed: %w", axis, start, end, ErrIndex)
	}

	return nil
}

// validateFinite rejects the first NaN/±Inf cell of a freshly built Dense.
func validateFinite(m *Dense) error {
	for idx, v := range m.data {
		if isNonFinite(v) {
			return denseErrorf(ctxSet, idx/m.c, idx%m.c, ErrNaNInf)
		}
	}

	return nil
}
