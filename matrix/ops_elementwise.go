// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* element-wise kernels (ew*) shared by every
//     public arithmetic entry point, so loops, validation and species
//     materialization live in exactly one place.
//
// Design:
//   - All ew* are UNEXPORTED (internal micro-kernels). Public API reaches
//     them through instance functions (ops.go) or an Ops table (dispatch.go).
//   - The output is always built by materialize(species, r, c).
//
// Determinism & Performance:
//   - Fixed loop orders (i→j or flat 0..n-1).
//   - Fast path when the operands are *Dense and the output is a policy-free
//     *Dense: one flat loop, no interface calls.

package matrix

import "math"

// binaryFunc combines two cells.
type binaryFunc func(x, y float64) float64

// unaryFunc transforms one cell.
type unaryFunc func(x float64) float64

// Cell combinators shared by the public entry points.
var (
	cellAdd binaryFunc = func(x, y float64) float64 { return x + y }
	cellSub binaryFunc = func(x, y float64) float64 { return x - y }
	cellMul binaryFunc = func(x, y float64) float64 { return x * y }
	cellDiv binaryFunc = func(x, y float64) float64 { return x / y }
	cellMod binaryFunc = math.Mod
	cellMin binaryFunc = math.Min
	cellMax binaryFunc = math.Max
	cellPow binaryFunc = math.Pow
)

// ewBinary computes out[i,j] = f(a[i,j], b[i,j]) for identical shapes.
//
// Errors:
//   - ErrArgument (nil operand), ErrDimensionMismatch (shapes differ),
//     species errors, wrapped At/Set errors; all tagged with tag.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ewBinary(tag string, s Species, a, b Matrix, f binaryFunc) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	r, c := a.Rows(), a.Cols()
	out, err := materialize(s, r, c)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	// Dense fast-path: single pass over three flat buffers.
	if dst, ok := rawDense(out); ok {
		if da, okA := a.(*Dense); okA {
			if db, okB := b.(*Dense); okB {
				for idx := range dst {
					dst[idx] = f(da.data[idx], db.data[idx])
				}
				return out, nil
			}
		}
	}

	// Generic fallback via At/Set (still deterministic).
	var av, bv float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(tag, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(tag, err)
			}
			if err = out.Set(i, j, f(av, bv)); err != nil {
				return nil, matrixErrorf(tag, err)
			}
		}
	}

	return out, nil
}

// ewScalar computes out[i,j] = f(a[i,j], k).
func ewScalar(tag string, s Species, a Matrix, k float64, f binaryFunc) (Matrix, error) {
	return ewUnary(tag, s, a, func(x float64) float64 { return f(x, k) })
}

// ewUnary computes out[i,j] = f(a[i,j]).
func ewUnary(tag string, s Species, a Matrix, f unaryFunc) (Matrix, error) {
	return ewIndexed(tag, s, a, func(_, _ int, x float64) float64 { return f(x) })
}

// ewIndexed computes out[i,j] = f(i, j, a[i,j]); the broadcast kernels of
// stats.go use the coordinates to pick a per-row or per-column operand.
func ewIndexed(tag string, s Species, a Matrix, f func(i, j int, x float64) float64) (Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	r, c := a.Rows(), a.Cols()
	out, err := materialize(s, r, c)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	if dst, ok := rawDense(out); ok {
		if da, okA := a.(*Dense); okA {
			for idx := range dst {
				dst[idx] = f(idx/c, idx%c, da.data[idx])
			}
			return out, nil
		}
	}

	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(tag, err)
			}
			if err = out.Set(i, j, f(i, j, v)); err != nil {
				return nil, matrixErrorf(tag, err)
			}
		}
	}

	return out, nil
}

// ewAllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected.
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf("AllClose", ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}

	var av, bv float64
	var err error
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf("AllClose", err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf("AllClose", err)
			}
			if av == bv { // covers equal infinities
				continue
			}
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) || math.IsNaN(av-bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
