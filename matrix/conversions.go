// SPDX-License-Identifier: MIT

// Package matrix - canonical array forms and structural equality.
//
// To1D / To2D are the only way the package turns a matrix-like value into
// plain slices. They read element by element through At (with a flat-copy
// fast path for *Dense), so a Dense, a wrapper and any View composition of
// equal values produce identical output. Results are snapshots: the caller
// may mutate them freely.

package matrix

import "fmt"

// To1D returns the row-major flattening of m.
//
// Errors:
//   - ErrArgument for a nil m; any At error from a custom implementation.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func To1D(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("To1D", err)
	}
	if d, ok := m.(*Dense); ok {
		return d.RawRowMajor(), nil
	}

	r, c := m.Rows(), m.Cols()
	out := make([]float64, r*c)
	var i, j int
	var v float64
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf("To1D", err)
			}
			out[i*c+j] = v
		}
	}

	return out, nil
}

// To2D returns m as nested rows. Every row is its own slice.
func To2D(m Matrix) ([][]float64, error) {
	flat, err := To1D(m)
	if err != nil {
		return nil, matrixErrorf("To2D", err)
	}
	r, c := m.Rows(), m.Cols()
	out := make([][]float64, r)
	for i := 0; i < r; i++ {
		out[i] = flat[i*c : (i+1)*c : (i+1)*c] // full slice expression: appends never bleed into the next row
	}

	return out, nil
}

// Equal reports structural equality: same shape and == on every element.
// NaN never equals NaN. Concrete types are irrelevant (Dense vs View vs wrapper).
// A nil operand equals only another nil operand.
func Equal(a, b Matrix) bool {
	na, nb := isNilMatrix(a), isNilMatrix(b)
	if na || nb {
		return na && nb
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if da.data[idx] != db.data[idx] {
					return false
				}
			}
			return true
		}
	}

	var av, bv float64
	var err error
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false
			}
			if bv, err = b.At(i, j); err != nil {
				return false
			}
			if av != bv {
				return false
			}
		}
	}

	return true
}

// MustTo2D is To2D for values known to be well-formed (Dense, View, wrappers).
// Panics on error; intended for examples and tests.
func MustTo2D(m Matrix) [][]float64 {
	out, err := To2D(m)
	if err != nil {
		panic(fmt.Sprintf("matrix: MustTo2D: %v", err))
	}

	return out
}
