// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

// TestElementwise_FastAndFallback_Match runs every binary kernel on *Dense
// operands and on hidden operands; both paths must agree bitwise.
func TestElementwise_FastAndFallback_Match(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]float64{{1, -2}, {3, 8}})
	b := MustRows(t, [][]float64{{4, 2}, {-3, 3}})
	tests := []struct {
		name string
		fn   func(x, y matrix.Matrix) (matrix.Matrix, error)
		want [][]float64
	}{
		{"Add", matrix.Add, [][]float64{{5, 0}, {0, 11}}},
		{"Sub", matrix.Sub, [][]float64{{-3, -4}, {6, 5}}},
		{"Hadamard", matrix.Hadamard, [][]float64{{4, -4}, {-9, 24}}},
		{"Div", matrix.Div, [][]float64{{0.25, -1}, {-1, 8.0 / 3}}},
		{"Mod", matrix.Mod, [][]float64{{1, -0}, {0, 2}}},
		{"Pow", matrix.Pow, [][]float64{{1, 4}, {math.Pow(3, -3), math.Pow(8, 3)}}},
		{"Min", matrix.Min, [][]float64{{1, -2}, {-3, 3}}},
		{"Max", matrix.Max, [][]float64{{4, 2}, {3, 8}}},
		{"Sum", matrix.Sum, [][]float64{{5, 0}, {0, 11}}},
		{"Diff", matrix.Diff, [][]float64{{-3, -4}, {6, 5}}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			fast, err := tc.fn(a, b)
			require.NoError(t, err)
			slow, err := tc.fn(hide{a}, hide{b})
			require.NoError(t, err)
			requireRows(t, tc.want, fast)
			requireRows(t, tc.want, slow)
		})
	}
}

func TestElementwise_ShapeMismatch(t *testing.T) {
	t.Parallel()

	a := MustDense(t, 2, 2)
	b := MustDense(t, 2, 3)
	for name, fn := range map[string]func(x, y matrix.Matrix) (matrix.Matrix, error){
		"Add": matrix.Add, "Sub": matrix.Sub, "Hadamard": matrix.Hadamard, "Div": matrix.Div,
		"Min": matrix.Min, "Max": matrix.Max,
	} {
		_, err := fn(a, b)
		require.ErrorIs(t, err, matrix.ErrDimensionMismatch, name)
		_, err = fn(a, nil)
		require.ErrorIs(t, err, matrix.ErrArgument, name)
	}
}

func TestScalarAndUnary(t *testing.T) {
	t.Parallel()

	m := MustRows(t, [][]float64{{1, -2}, {0, 4}})
	hm := hide{m}
	tests := []struct {
		name string
		fn   func(x matrix.Matrix) (matrix.Matrix, error)
		want [][]float64
	}{
		{"AddScalar", func(x matrix.Matrix) (matrix.Matrix, error) { return matrix.AddScalar(x, 1) }, [][]float64{{2, -1}, {1, 5}}},
		{"SubScalar", func(x matrix.Matrix) (matrix.Matrix, error) { return matrix.SubScalar(x, 1) }, [][]float64{{0, -3}, {-1, 3}}},
		{"Scale", func(x matrix.Matrix) (matrix.Matrix, error) { return matrix.Scale(x, -2) }, [][]float64{{-2, 4}, {0, -8}}},
		{"ScaleBy", func(x matrix.Matrix) (matrix.Matrix, error) { return matrix.ScaleBy(x, 0) }, [][]float64{{0, 0}, {0, 0}}},
		{"DivScalar", func(x matrix.Matrix) (matrix.Matrix, error) { return matrix.DivScalar(x, 2) }, [][]float64{{0.5, -1}, {0, 2}}},
		{"Abs", matrix.Abs, [][]float64{{1, 2}, {0, 4}}},
		{"Neg", matrix.Neg, [][]float64{{-1, 2}, {0, -4}}},
		{"Map", func(x matrix.Matrix) (matrix.Matrix, error) {
			return matrix.Map(x, func(v float64) float64 { return v * v })
		}, [][]float64{{1, 4}, {0, 16}}},
		{"Clone", matrix.Clone, [][]float64{{1, -2}, {0, 4}}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			fast, err := tc.fn(m)
			require.NoError(t, err)
			slow, err := tc.fn(hm)
			require.NoError(t, err)
			requireRows(t, tc.want, fast)
			requireRows(t, tc.want, slow)
		})
	}

	_, err := matrix.Map(m, nil)
	require.ErrorIs(t, err, matrix.ErrArgument)
	_, err = matrix.Abs(nil)
	require.ErrorIs(t, err, matrix.ErrArgument)
}

func TestClone_OwnsStorage(t *testing.T) {
	t.Parallel()

	src := sample23(t)
	tv, err := matrix.NewTransposeView(src)
	require.NoError(t, err)
	cp, err := matrix.Clone(tv)
	require.NoError(t, err)

	require.NoError(t, src.Set(0, 0, 100))
	require.Equal(t, 1.0, MustAt(t, cp, 0, 0))
	require.Equal(t, 100.0, MustAt(t, tv, 0, 0))
}

func TestMul(t *testing.T) {
	t.Parallel()

	a := sample23(t)
	b := NewFilledDense(t, 3, 2, []float64{7, 8, 9, 10, 11, 12})
	want := [][]float64{{58, 64}, {139, 154}}

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	requireRows(t, want, fast)

	slow, err := matrix.Mul(hide{a}, b)
	require.NoError(t, err)
	requireRows(t, want, slow)

	prod, err := matrix.Product(a, b)
	require.NoError(t, err)
	require.True(t, matrix.Equal(fast, prod))

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(nil, a)
	require.ErrorIs(t, err, matrix.ErrArgument)
}

func TestTranspose_Materialized(t *testing.T) {
	t.Parallel()

	src := sample23(t)
	for _, in := range []matrix.Matrix{src, hide{src}} {
		out, err := matrix.T(in)
		require.NoError(t, err)
		require.IsType(t, &matrix.Dense{}, out)
		requireRows(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, out)
	}

	out, err := matrix.Transpose(src)
	require.NoError(t, err)
	require.NoError(t, src.Set(0, 1, 20))
	require.Equal(t, 2.0, MustAt(t, out, 1, 0)) // a copy, not a view

	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrArgument)
}

func TestMatVec(t *testing.T) {
	t.Parallel()

	m := sample23(t)
	x := []float64{1, 0, -1}
	for _, in := range []matrix.Matrix{m, hide{m}} {
		y, err := matrix.MatVecMul(in, x)
		require.NoError(t, err)
		require.Equal(t, []float64{-2, -2}, y)
	}

	_, err := matrix.MatVec(m, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(m, nil)
	require.ErrorIs(t, err, matrix.ErrArgument)
}

func TestPolicyOperandsProduceDefaultResults(t *testing.T) {
	t.Parallel()

	// Results come from the species, not from the operand's policy: a strict
	// operand does not make Div by zero fail.
	strict, err := matrix.NewFromRows([][]float64{{1}}, matrix.WithValidateNaNInf())
	require.NoError(t, err)
	zero := MustDense(t, 1, 1)

	out, err := matrix.Div(strict, zero)
	require.NoError(t, err)
	require.True(t, math.IsInf(MustAt(t, out, 0, 0), 1))
}
