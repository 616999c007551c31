// SPDX-License-Identifier: MIT

// Package matrix: the matrix capability contract.
// This file intentionally contains ONLY the interfaces every matrix-like
// value satisfies. Concrete storage lives in dense.go and wrap.go, the
// index-mapping views in view.go, result typing in species.go.
package matrix

import "golang.org/x/exp/constraints"

// Matrix is the capability contract of a two-dimensional mutable array of
// float64 values: a Dense buffer, a View over someone else's buffer, or any
// user type that can answer these four calls.
//
// Conversions (To1D, To2D), equality (Equal) and JSON are package-level so
// every implementation gets identical behavior for free.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix (>= 1).
	Rows() int

	// Cols returns the number of columns in the matrix (>= 1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrIndex if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrIndex if indices are invalid.
	Set(i, j int, v float64) error
}

// SpeciesProvider is implemented by matrix-like types that declare which
// concrete type must be built when an operation materializes a new value
// from them. Types that do not implement it resolve to DenseSpecies.
type SpeciesProvider interface {
	Species() Species
}

// Number is the element constraint accepted by the generic constructors.
// Every integer and float kind converts losslessly enough for a float64 cell.
type Number interface {
	constraints.Integer | constraints.Float
}
