// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic test fixtures and utilities for kernels and views.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force non-*Dense (fallback) paths.
//
// Notes:
//   - hide does not implement SpeciesProvider, so it resolves to DenseSpecies.
//   - Wrap ONLY the operand you want to de-opt; keep the other one *Dense to
//     isolate path differences.
type hide struct{ matrix.Matrix }

// tagged is a user-defined matrix type that declares its own species, so
// tests can observe which type an operation materialized.
type tagged struct{ *matrix.Dense }

// Species makes every result derived from a tagged value a tagged value.
func (tagged) Species() matrix.Species { return newTagged }

func newTagged(rows, cols int) (matrix.Matrix, error) {
	d, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}

	return tagged{d}, nil
}

// MustDense ALLOCATES an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustRows builds a *Dense from nested rows or fails the test.
func MustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// NewFilledDense builds an r×c *Dense from a row-major slice or fails the test.
func NewFilledDense(t *testing.T, r, c int, flat []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.From1D(r, c, flat)
	require.NoError(t, err)

	return m
}

// MustAt reads m(i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// requireRows asserts the nested form of m.
func requireRows(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	got, err := matrix.To2D(m)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

// requireAtMatchesTo2D checks the canonical form against element-wise reads.
func requireAtMatchesTo2D(t *testing.T, m matrix.Matrix) {
	t.Helper()
	rows, err := matrix.To2D(m)
	require.NoError(t, err)
	require.Len(t, rows, m.Rows())
	for i := range rows {
		require.Len(t, rows[i], m.Cols())
		for j := range rows[i] {
			require.Equal(t, rows[i][j], MustAt(t, m, i, j), "(%d,%d)", i, j)
		}
	}
}

// sample23 returns [[1,2,3],[4,5,6]].
func sample23(t *testing.T) *matrix.Dense {
	t.Helper()

	return NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
}
