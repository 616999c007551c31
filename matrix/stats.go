// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide common statistical transforms (centering, normalization, covariance)
//     as deterministic compositions over the reductions (reduce.go), the ew*
//     micro-kernels and the transpose view.
//
// Exposed API:
//   - CenterColumns(X)   -> (Xc, means)  // subtract per-column mean
//   - CenterRows(X)      -> (Xc, means)  // subtract per-row mean
//   - NormalizeRowsL1(X) -> (Y, norms)   // L1 row normalization (zero rows unchanged)
//   - NormalizeRowsL2(X) -> (Y, norms)   // L2 row normalization (zero rows unchanged)
//   - Covariance(X)      -> (Cov, means) // sample covariance of columns: (Xcᵀ Xc)/(r-1)
//
// Every matrix result is of X's species.

package matrix

import "math"

const (
	opCenterColumns   = "CenterColumns"
	opCenterRows      = "CenterRows"
	opNormalizeRowsL1 = "NormalizeRowsL1"
	opNormalizeRowsL2 = "NormalizeRowsL2"
	opCovariance      = "Covariance"
)

// CenterColumns subtracts the per-column mean from every element.
//
// Implementation:
//   - Stage 1: Column sums in one i→j pass, divided by r.
//   - Stage 2: Broadcast-subtract the means over rows into a fresh X-species value.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) (+ O(c) means).
func CenterColumns(X Matrix) (Matrix, []float64, error) {
	means, err := axisSums(opCenterColumns, X, false)
	if err != nil {
		return nil, nil, err
	}
	r := float64(X.Rows())
	for j := range means {
		means[j] /= r
	}
	Xc, err := ewIndexed(opCenterColumns, SpeciesOf(X), X, func(_, j int, x float64) float64 {
		return x - means[j]
	})
	if err != nil {
		return nil, nil, err
	}

	return Xc, means, nil
}

// CenterRows subtracts the per-row mean from every element.
func CenterRows(X Matrix) (Matrix, []float64, error) {
	means, err := axisSums(opCenterRows, X, true)
	if err != nil {
		return nil, nil, err
	}
	c := float64(X.Cols())
	for i := range means {
		means[i] /= c
	}
	Xc, err := ewIndexed(opCenterRows, SpeciesOf(X), X, func(i, _ int, x float64) float64 {
		return x - means[i]
	})
	if err != nil {
		return nil, nil, err
	}

	return Xc, means, nil
}

// NormalizeRowsL1 divides each row by its L1 norm Σ|x|. Rows with norm 0 are
// copied unchanged. Returns the normalized copy and the norms.
func NormalizeRowsL1(X Matrix) (Matrix, []float64, error) {
	return normalizeRows(opNormalizeRowsL1, X, math.Abs, func(s float64) float64 { return s })
}

// NormalizeRowsL2 divides each row by its L2 norm sqrt(Σx²), with the same
// zero-row policy as NormalizeRowsL1.
func NormalizeRowsL2(X Matrix) (Matrix, []float64, error) {
	return normalizeRows(opNormalizeRowsL2, X, func(x float64) float64 { return x * x }, math.Sqrt)
}

// normalizeRows accumulates term(x) per row, finalizes the norm, then scales.
func normalizeRows(tag string, X Matrix, term, finish func(float64) float64) (Matrix, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(tag, err)
	}
	norms := make([]float64, X.Rows())
	if err := fold(tag, X, func(i, _ int, v float64) { norms[i] += term(v) }); err != nil {
		return nil, nil, err
	}
	for i := range norms {
		norms[i] = finish(norms[i])
	}
	Y, err := ewIndexed(tag, SpeciesOf(X), X, func(i, _ int, x float64) float64 {
		if norms[i] == 0 {
			return x
		}
		return x / norms[i]
	})
	if err != nil {
		return nil, nil, err
	}

	return Y, norms, nil
}

// Covariance returns the c×c sample covariance of the columns of X and the
// column means.
//
// Implementation:
//   - Stage 1: Require r >= 2; center columns.
//   - Stage 2: G = Xcᵀ Xc through a transpose view (no copy of Xcᵀ).
//   - Stage 3: Scale G by 1/(r-1).
//
// Errors:
//   - ErrArgument (nil X), ErrDimensionMismatch (fewer than two rows).
//
// Complexity:
//   - Time O(r*c²), Space O(r*c + c²).
func Covariance(X Matrix) (Matrix, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	r := X.Rows()
	if r < 2 {
		return nil, nil, matrixErrorf(opCovariance, ErrDimensionMismatch)
	}
	Xc, means, err := CenterColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	Xct, err := NewTransposeView(Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	G, err := mulWith(SpeciesOf(X), Xct, Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	Cov, err := ewScalar(opCovariance, SpeciesOf(X), G, 1.0/float64(r-1), cellMul)
	if err != nil {
		return nil, nil, err
	}

	return Cov, means, nil
}
