// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise arithmetic, matrix multiplication, transpose and scalar maps.
// All functions perform strict fail-fast validation and return clear errors
// on dimension mismatches.
//
// Purpose:
//   - Instance form of every arithmetic operation: the FIRST operand decides
//     the species of the result (see species.go). A Dense yields a Dense, a
//     View yields its declared species (Dense by default), a user type that
//     implements SpeciesProvider yields its own type.
//
// Notes:
//   - Every function returns a freshly materialized value; none returns a View
//     and none mutates its inputs.
//   - The same kernels back the Ops dispatch tables (dispatch.go).

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value for accumulations.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opHadamard  = "Hadamard"
	opDiv       = "Div"
	opMod       = "Mod"
	opPow       = "Pow"
	opMin       = "Min"
	opMax       = "Max"
	opMul       = "Mul"
	opMatVec    = "MatVec"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opAddScalar = "AddScalar"
	opSubScalar = "SubScalar"
	opDivScalar = "DivScalar"
	opAbs       = "Abs"
	opNeg       = "Neg"
	opMap       = "Map"
	opClone     = "Clone"
)

// Add computes the element-wise sum C = A + B.
//
// Implementation:
//   - Stage 1: Validate both operands are non-nil and have identical shapes.
//   - Stage 2: Materialize SpeciesOf(a); flat loop when everything is *Dense,
//     otherwise the i→j At/Set fallback.
//
// Errors:
//   - ErrArgument (nil input), ErrDimensionMismatch (shape mismatch),
//     ErrSpecies (species contract broken).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (Matrix, error) {
	return ewBinary(opAdd, SpeciesOf(a), a, b, cellAdd)
}

// Sub computes the element-wise difference C = A - B.
func Sub(a, b Matrix) (Matrix, error) {
	return ewBinary(opSub, SpeciesOf(a), a, b, cellSub)
}

// Hadamard computes the element-wise product C = A ⊙ B.
func Hadamard(a, b Matrix) (Matrix, error) {
	return ewBinary(opHadamard, SpeciesOf(a), a, b, cellMul)
}

// Div computes the element-wise quotient C = A ./ B. Division by zero follows
// IEEE-754 (±Inf or NaN), which a policy-enabled species will reject.
func Div(a, b Matrix) (Matrix, error) {
	return ewBinary(opDiv, SpeciesOf(a), a, b, cellDiv)
}

// Mod computes the element-wise remainder math.Mod(A, B).
func Mod(a, b Matrix) (Matrix, error) {
	return ewBinary(opMod, SpeciesOf(a), a, b, cellMod)
}

// Pow computes the element-wise power math.Pow(A, B).
func Pow(a, b Matrix) (Matrix, error) {
	return ewBinary(opPow, SpeciesOf(a), a, b, cellPow)
}

// Min computes the element-wise minimum.
func Min(a, b Matrix) (Matrix, error) {
	return ewBinary(opMin, SpeciesOf(a), a, b, cellMin)
}

// Max computes the element-wise maximum.
func Max(a, b Matrix) (Matrix, error) {
	return ewBinary(opMax, SpeciesOf(a), a, b, cellMax)
}

// AddScalar returns m[i,j] + k.
func AddScalar(m Matrix, k float64) (Matrix, error) {
	return ewScalar(opAddScalar, SpeciesOf(m), m, k, cellAdd)
}

// SubScalar returns m[i,j] - k.
func SubScalar(m Matrix, k float64) (Matrix, error) {
	return ewScalar(opSubScalar, SpeciesOf(m), m, k, cellSub)
}

// Scale returns alpha * m[i,j]. alpha = 0 yields an explicit zero matrix.
func Scale(m Matrix, alpha float64) (Matrix, error) {
	return ewScalar(opScale, SpeciesOf(m), m, alpha, cellMul)
}

// DivScalar returns m[i,j] / k.
func DivScalar(m Matrix, k float64) (Matrix, error) {
	return ewScalar(opDivScalar, SpeciesOf(m), m, k, cellDiv)
}

// Abs returns |m[i,j]|.
func Abs(m Matrix) (Matrix, error) {
	return ewUnary(opAbs, SpeciesOf(m), m, math.Abs)
}

// Neg returns -m[i,j].
func Neg(m Matrix) (Matrix, error) {
	return ewUnary(opNeg, SpeciesOf(m), m, func(x float64) float64 { return -x })
}

// Map returns f(m[i,j]) for every cell, in a matrix of m's species.
// Errors:
//   - ErrArgument when f is nil.
func Map(m Matrix, f func(float64) float64) (Matrix, error) {
	if f == nil {
		return nil, matrixErrorf(opMap, fmt.Errorf("nil mapper: %w", ErrArgument))
	}

	return ewUnary(opMap, SpeciesOf(m), m, f)
}

// Clone returns an independent copy of m in m's species.
// A Clone of a View owns its storage: later writes to the view's owner are
// not visible in the clone.
func Clone(m Matrix) (Matrix, error) {
	return ewUnary(opClone, SpeciesOf(m), m, func(x float64) float64 { return x })
}

// Mul computes the matrix product C = A × B.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b). Materialize SpeciesOf(a) as a.Rows()×b.Cols().
//   - Stage 2: If a, b and the result are *Dense, run the i→k→j flat kernel;
//     otherwise the generic i→j→k triple loop via At/Set.
//
// Errors:
//   - ErrArgument (nil), ErrDimensionMismatch (a.Cols() != b.Rows()), ErrSpecies.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
//
// Notes:
//   - Zero entries of A are skipped in both paths; the result is unchanged.
func Mul(a, b Matrix) (Matrix, error) {
	return mulWith(SpeciesOf(a), a, b)
}

func mulWith(s Species, a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	out, err := materialize(s, aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int // loop iterators
		av, bv, current float64
	)

	// Fast-path for two Dense matrices into a raw Dense result.
	if dst, ok := rawDense(out); ok {
		if da, okA := a.(*Dense); okA {
			if db, okB := b.(*Dense); okB {
				var rowOffsetA, rowOffsetB, rowOffsetR int
				for i = 0; i < aRows; i++ {
					rowOffsetA = i * aCols
					rowOffsetR = i * bCols
					for k = 0; k < aCols; k++ {
						av = da.data[rowOffsetA+k]
						if av == 0 {
							continue
						}
						rowOffsetB = k * bCols
						for j = 0; j < bCols; j++ {
							dst[rowOffsetR+j] += av * db.data[rowOffsetB+j]
						}
					}
				}
				return out, nil
			}
		}
	}

	// Fallback: generic interface triple-loop (i-j-k).
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				current += av * bv
			}
			if err = out.Set(i, j, current); err != nil {
				return nil, matrixErrorf(opMul, err)
			}
		}
	}

	return out, nil
}

// Transpose returns a NEW matrix mᵀ of m's species. For a zero-copy
// transpose use NewTransposeView.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	return transposeWith(SpeciesOf(m), m)
}

func transposeWith(s Species, m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	out, err := materialize(s, cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dst, ok := rawDense(out); ok {
		if dm, okM := m.(*Dense); okM {
			// data[i*cols + j] → dst[j*rows + i]
			var baseSrc int
			for i = 0; i < rows; i++ {
				baseSrc = i * cols
				for j = 0; j < cols; j++ {
					dst[j*rows+i] = dm.data[baseSrc+j]
				}
			}
			return out, nil
		}
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			if err = out.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
		}
	}

	return out, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		var base int
		var acc float64
		for i := 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j := 0; j < d.c; j++ {
				if x[j] != 0 {
					acc += d.data[base+j] * x[j]
				}
			}
			y[i] = acc
		}

		return y, nil
	}

	var mv float64
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}
