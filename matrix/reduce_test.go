// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

func TestScalarReductions(t *testing.T) {
	t.Parallel()

	m := sample23(t)
	for name, in := range map[string]matrix.Matrix{"dense": m, "hidden": hide{m}} {
		total, err := matrix.Total(in)
		require.NoError(t, err, name)
		require.Equal(t, 21.0, total, name)

		mean, err := matrix.Mean(in)
		require.NoError(t, err, name)
		require.Equal(t, 3.5, mean, name)

		lo, err := matrix.MinValue(in)
		require.NoError(t, err, name)
		require.Equal(t, 1.0, lo, name)

		hi, err := matrix.MaxValue(in)
		require.NoError(t, err, name)
		require.Equal(t, 6.0, hi, name)
	}

	_, err := matrix.Total(nil)
	require.ErrorIs(t, err, matrix.ErrArgument)
	_, err = matrix.Mean(nil)
	require.ErrorIs(t, err, matrix.ErrArgument)
}

func TestMinMaxValue_NaN(t *testing.T) {
	t.Parallel()

	m := MustRows(t, [][]float64{{math.NaN(), 2, -1}})
	lo, err := matrix.MinValue(m)
	require.NoError(t, err)
	require.Equal(t, -1.0, lo)
	hi, err := matrix.MaxValue(m)
	require.NoError(t, err)
	require.Equal(t, 2.0, hi)

	all := MustRows(t, [][]float64{{math.NaN()}})
	lo, err = matrix.MinValue(all)
	require.NoError(t, err)
	require.True(t, math.IsNaN(lo))
}

func TestAxisReductions(t *testing.T) {
	t.Parallel()

	m := sample23(t)
	tests := []struct {
		name string
		fn   func(matrix.Matrix) (matrix.Matrix, error)
		want [][]float64
	}{
		{"RowSums", matrix.RowSums, [][]float64{{6}, {15}}},
		{"ColSums", matrix.ColSums, [][]float64{{5, 7, 9}}},
		{"RowMeans", matrix.RowMeans, [][]float64{{2}, {5}}},
		{"ColMeans", matrix.ColMeans, [][]float64{{2.5, 3.5, 4.5}}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			fast, err := tc.fn(m)
			require.NoError(t, err)
			slow, err := tc.fn(hide{m})
			require.NoError(t, err)
			requireRows(t, tc.want, fast)
			requireRows(t, tc.want, slow)

			// Species follows the operand.
			out, err := tc.fn(tagged{m})
			require.NoError(t, err)
			require.IsType(t, tagged{}, out)
			requireRows(t, tc.want, out)

			_, err = tc.fn(nil)
			require.ErrorIs(t, err, matrix.ErrArgument)
		})
	}
}

func TestAxisReductions_OverViews(t *testing.T) {
	t.Parallel()

	m := sample23(t)
	tv, err := matrix.NewTransposeView(m)
	require.NoError(t, err)

	rows, err := matrix.RowSums(tv)
	require.NoError(t, err)
	cols, err := matrix.ColSums(m)
	require.NoError(t, err)

	// Row sums of the transpose are the column sums of the owner.
	rowsT, err := matrix.Transpose(rows)
	require.NoError(t, err)
	require.True(t, matrix.Equal(cols, rowsT))
}
