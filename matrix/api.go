// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication; each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders, species resolution or numeric
//     policy of the underlying kernels.

package matrix

import "math"

// ---------- Constructors & Utilities ----------

// Identity returns I_n (n×n identity). Alias of Eye; WithCols and WithValue
// give the rectangular and scaled forms.
func Identity(n int, opts ...Option) (*Dense, error) { return Eye(n, opts...) }

// Diagonal is an alias of Diag.
func Diagonal(values []float64, opts ...Option) (*Dense, error) { return Diag(values, opts...) }

// ZerosLike returns a zero matrix with the same shape and species as m.
func ZerosLike(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}
	out, err := materialize(SpeciesOf(m), m.Rows(), m.Cols())
	if err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return out, nil
}

// IdentityLike returns an identity with the same shape and species as m
// (square or not: ones on (i,i) for i < min(rows, cols)).
func IdentityLike(m Matrix) (Matrix, error) {
	out, err := ZerosLike(m)
	if err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}
	for i := 0; i < min(out.Rows(), out.Cols()); i++ {
		if err = out.Set(i, i, DefaultDiagonalValue); err != nil {
			return nil, matrixErrorf("IdentityLike", err)
		}
	}

	return out, nil
}

// ---------- Algebra aliases ----------

// Sum is an alias of Add.
func Sum(a, b Matrix) (Matrix, error) { return Add(a, b) }

// Diff is an alias of Sub.
func Diff(a, b Matrix) (Matrix, error) { return Sub(a, b) }

// Product is an alias of Mul.
func Product(a, b Matrix) (Matrix, error) { return Mul(a, b) }

// T is a short alias of Transpose (materialized).
func T(m Matrix) (Matrix, error) { return Transpose(m) }

// ScaleBy is an alias of Scale.
func ScaleBy(m Matrix, alpha float64) (Matrix, error) { return Scale(m, alpha) }

// MatVecMul is an alias of MatVec.
func MatVecMul(m Matrix, x []float64) ([]float64, error) { return MatVec(m, x) }

// Symmetrize returns (m + mᵀ) / 2 for a square m, in m's species.
func Symmetrize(m Matrix) (Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("Symmetrize", err)
	}
	tv, err := NewTransposeView(m)
	if err != nil {
		return nil, matrixErrorf("Symmetrize", err)
	}
	sum, err := ewBinary("Symmetrize", SpeciesOf(m), m, tv, cellAdd)
	if err != nil {
		return nil, err
	}

	return ewScalar("Symmetrize", SpeciesOf(m), sum, 0.5, cellMul)
}

// ---------- Sanitization & numeric compare (thin wrappers → ew*) ----------

// Clip returns a copy of m with elements clamped into [lo, hi].
//
//	out[i,j] = min(max(A[i,j], lo), hi).
//
// Policy: If lo > hi, bounds are swapped (normalized). NaN bounds are rejected.
func Clip(m Matrix, lo, hi float64) (Matrix, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return nil, matrixErrorf("Clip", ErrNaNInf)
	}
	if lo > hi {
		lo, hi = hi, lo
	}

	return ewUnary("Clip", SpeciesOf(m), m, func(x float64) float64 {
		return min(max(x, lo), hi)
	})
}

// ReplaceInfNaN returns a copy of m where any {±Inf, NaN} are replaced by val.
//
// Policy: val must be finite; otherwise ErrNaNInf is returned.
func ReplaceInfNaN(m Matrix, val float64) (Matrix, error) {
	if isNonFinite(val) {
		return nil, matrixErrorf("ReplaceInfNaN", ErrNaNInf)
	}

	return ewUnary("ReplaceInfNaN", SpeciesOf(m), m, func(x float64) float64 {
		if isNonFinite(x) {
			return val
		}
		return x
	})
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
//
// AI-Hints:
//   - AllClose with small atol/rtol is ideal for invariance tests in unit tests.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}
