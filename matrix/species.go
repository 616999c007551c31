// SPDX-License-Identifier: MIT

// Package matrix - species resolution.
//
// Purpose:
//   - Decide, for every operation that materializes a new matrix-shaped
//     value, which concrete type is constructed.
//   - Rule: the species of the primary operand (the receiver of the call,
//     or the Ops table the call went through). Types that do not implement
//     SpeciesProvider resolve to DenseSpecies.
//
// Invariant:
//   - materialize never hands back a *View: results own their storage.

package matrix

import "fmt"

// Species is a virtual factory: given a shape it returns a fresh, zero-filled,
// independently owned matrix of the declaring type.
type Species func(rows, cols int) (Matrix, error)

// DenseSpecies is the default species: a zero-filled *Dense.
func DenseSpecies(rows, cols int) (Matrix, error) {
	return NewDense(rows, cols)
}

// SpeciesOf resolves the species declared by m, falling back to DenseSpecies
// for nil values, types without a declaration, or a nil declaration.
func SpeciesOf(m Matrix) Species {
	if isNilMatrix(m) {
		return DenseSpecies
	}
	if sp, ok := m.(SpeciesProvider); ok {
		if s := sp.Species(); s != nil {
			return s
		}
	}

	return DenseSpecies
}

// materialize invokes s and enforces the species contract.
//
// Errors:
//   - whatever s returns (e.g. ErrDimension for a bad shape);
//   - ErrSpecies when s returns nil, a different shape, or a *View.
func materialize(s Species, rows, cols int) (Matrix, error) {
	if s == nil {
		s = DenseSpecies
	}
	out, err := s(rows, cols)
	if err != nil {
		return nil, err
	}
	if isNilMatrix(out) {
		return nil, fmt.Errorf("nil result for %dx%d: %w", rows, cols, ErrSpecies)
	}
	if out.Rows() != rows || out.Cols() != cols {
		return nil, fmt.Errorf("want %dx%d, got %dx%d: %w", rows, cols, out.Rows(), out.Cols(), ErrSpecies)
	}
	if _, isView := out.(*View); isView {
		return nil, fmt.Errorf("result %dx%d is a non-owning view: %w", rows, cols, ErrSpecies)
	}

	return out, nil
}

// rawDense returns the backing buffer when out is a plain *Dense without a
// numeric policy, enabling flat-slice writes in kernels that just materialized it.
func rawDense(out Matrix) ([]float64, bool) {
	if d, ok := out.(*Dense); ok && !d.validateNaNInf {
		return d.data, true
	}

	return nil, false
}
