// SPDX-License-Identifier: MIT

package matrix_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

func TestFrom1D(t *testing.T) {
	t.Parallel()

	m, err := matrix.From1D(3, 2, []float64{0, 1, 2, 3, 4, 5})
	require.NoError(t, err)
	requireRows(t, [][]float64{{0, 1}, {2, 3}, {4, 5}}, m)

	_, err = matrix.From1D(3, 2, []float64{0, 1, 2, 3, 4})
	require.ErrorIs(t, err, matrix.ErrShape)
	require.True(t, strings.HasPrefix(err.Error(), "Data length does not match given dimensions"))

	_, err = matrix.From1D(0, 2, nil)
	require.ErrorIs(t, err, matrix.ErrDimension)
}

func TestVectors(t *testing.T) {
	t.Parallel()

	row, err := matrix.RowVector([]float64{1, 2, 3})
	require.NoError(t, err)
	requireRows(t, [][]float64{{1, 2, 3}}, row)

	col, err := matrix.ColumnVector([]float64{1, 2, 3})
	require.NoError(t, err)
	requireRows(t, [][]float64{{1}, {2}, {3}}, col)

	_, err = matrix.RowVector(nil)
	require.ErrorIs(t, err, matrix.ErrShape)
	_, err = matrix.ColumnVector([]float64{})
	require.ErrorIs(t, err, matrix.ErrShape)
}

func TestConstantFactories(t *testing.T) {
	t.Parallel()

	z, err := matrix.Zeros(2, 2)
	require.NoError(t, err)
	requireRows(t, [][]float64{{0, 0}, {0, 0}}, z)

	o, err := matrix.Ones(1, 3)
	require.NoError(t, err)
	requireRows(t, [][]float64{{1, 1, 1}}, o)

	f, err := matrix.Fill(2, 1, -2.5)
	require.NoError(t, err)
	requireRows(t, [][]float64{{-2.5}, {-2.5}}, f)
}

func TestRand(t *testing.T) {
	t.Parallel()

	fake := func() float64 { return 2 }
	m, err := matrix.Rand(2, 2, matrix.WithRNG(fake))
	require.NoError(t, err)
	requireRows(t, [][]float64{{2, 2}, {2, 2}}, m)

	def, err := matrix.Rand(4, 4)
	require.NoError(t, err)
	for _, v := range def.RawRowMajor() {
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}

func TestRandInt(t *testing.T) {
	t.Parallel()

	m, err := matrix.RandInt(1, 2, 10, matrix.WithRNG(func() float64 { return 0.55 }))
	require.NoError(t, err)
	requireRows(t, [][]float64{{5, 5}}, m)

	def, err := matrix.RandInt(3, 3, 4)
	require.NoError(t, err)
	for _, v := range def.RawRowMajor() {
		require.Contains(t, []float64{0, 1, 2, 3}, v)
	}

	_, err = matrix.RandInt(1, 1, 0)
	require.ErrorIs(t, err, matrix.ErrArgument)
}

func TestEye(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rows int
		opts []matrix.Option
		want [][]float64
	}{
		{"square", 2, nil, [][]float64{{1, 0}, {0, 1}}},
		{"tall", 3, []matrix.Option{matrix.WithCols(2)}, [][]float64{{1, 0}, {0, 1}, {0, 0}}},
		{"wide", 2, []matrix.Option{matrix.WithCols(3)}, [][]float64{{1, 0, 0}, {0, 1, 0}}},
		{"value", 3, []matrix.Option{matrix.WithCols(3), matrix.WithValue(3)}, [][]float64{{3, 0, 0}, {0, 3, 0}, {0, 0, 3}}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := matrix.Eye(tc.rows, tc.opts...)
			require.NoError(t, err)
			requireRows(t, tc.want, m)
		})
	}

	id, err := matrix.Identity(2)
	require.NoError(t, err)
	requireRows(t, [][]float64{{1, 0}, {0, 1}}, id)

	id, err = matrix.Identity(2, matrix.WithCols(3), matrix.WithValue(5))
	require.NoError(t, err)
	requireRows(t, [][]float64{{5, 0, 0}, {0, 5, 0}}, id)

	_, err = matrix.Eye(0)
	require.ErrorIs(t, err, matrix.ErrDimension)
}

func TestDiag(t *testing.T) {
	t.Parallel()

	values := []float64{1, 2, 3}
	tests := []struct {
		name string
		opts []matrix.Option
		want [][]float64
	}{
		{"default", nil, [][]float64{{1, 0, 0}, {0, 2, 0}, {0, 0, 3}}},
		{"truncate rows", []matrix.Option{matrix.WithRows(2)}, [][]float64{{1, 0}, {0, 2}}},
		{"wide", []matrix.Option{matrix.WithRows(2), matrix.WithCols(4)}, [][]float64{{1, 0, 0, 0}, {0, 2, 0, 0}}},
		{"pad", []matrix.Option{matrix.WithRows(4), matrix.WithCols(4)}, [][]float64{{1, 0, 0, 0}, {0, 2, 0, 0}, {0, 0, 3, 0}, {0, 0, 0, 0}}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := matrix.Diag(values, tc.opts...)
			require.NoError(t, err)
			requireRows(t, tc.want, m)
		})
	}

	alias, err := matrix.Diagonal([]float64{7})
	require.NoError(t, err)
	requireRows(t, [][]float64{{7}}, alias)

	_, err = matrix.Diag(nil)
	require.ErrorIs(t, err, matrix.ErrShape)
}
