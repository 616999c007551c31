// SPDX-License-Identifier: MIT

package matrix_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

func TestJSON_CanonicalFormIsShared(t *testing.T) {
	t.Parallel()

	const want = "[[0,1],[2,3]]"

	m := NewFilledDense(t, 2, 2, []float64{0, 1, 2, 3})
	w1, err := matrix.Wrap1D([]float64{0, 1, 2, 3}, 2)
	require.NoError(t, err)
	w2, err := matrix.Wrap2D([][]float64{{0, 1}, {2, 3}})
	require.NoError(t, err)
	tv, err := matrix.NewTransposeView(m)
	require.NoError(t, err)
	tt, err := matrix.NewTransposeView(tv)
	require.NoError(t, err)

	for name, v := range map[string]any{"dense": m, "wrap1d": w1, "wrap2d": w2, "double transpose": tt} {
		b, err := json.Marshal(v)
		require.NoError(t, err, name)
		require.Equal(t, want, string(b), name)
	}

	// The package function serves any implementation, hidden ones included.
	b, err := matrix.MarshalJSON(hide{m})
	require.NoError(t, err)
	require.Equal(t, want, string(b))

	b, err = json.Marshal(tv)
	require.NoError(t, err)
	require.Equal(t, "[[0,2],[1,3]]", string(b))

	_, err = matrix.MarshalJSON(nil)
	require.ErrorIs(t, err, matrix.ErrArgument)
}

func TestJSON_Nested(t *testing.T) {
	t.Parallel()

	type payload struct {
		Name string        `json:"name"`
		M    *matrix.Dense `json:"m"`
	}
	in := payload{Name: "a", M: MustRows(t, [][]float64{{1.5, -2}})}
	b, err := json.Marshal(in)
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"a","m":[[1.5,-2]]}`, string(b))

	var out payload
	require.NoError(t, json.Unmarshal(b, &out))
	require.True(t, matrix.Equal(in.M, out.M))
}

func TestJSON_Unmarshal(t *testing.T) {
	t.Parallel()

	var d matrix.Dense
	require.NoError(t, json.Unmarshal([]byte("[[1,2,3],[4,5,6]]"), &d))
	requireRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, &d)

	tests := []struct {
		name string
		in   string
	}{
		{"empty", "[]"},
		{"empty row", "[[]]"},
		{"jagged", "[[1,2],[3]]"},
		{"flat", "[1,2]"},
		{"object", `{"a":1}`},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var m matrix.Dense
			require.ErrorIs(t, json.Unmarshal([]byte(tc.in), &m), matrix.ErrShape)
		})
	}
}

func TestJSON_UnmarshalKeepsPolicy(t *testing.T) {
	t.Parallel()

	strict, err := matrix.NewDense(1, 2, matrix.WithValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte("[[1,2]]"), strict))
	requireRows(t, [][]float64{{1, 2}}, strict)
	require.ErrorIs(t, strict.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
}

func TestJSON_UnmarshalKeepsShape(t *testing.T) {
	t.Parallel()

	d := MustDense(t, 3, 3)
	v, err := matrix.NewSubView(d, 2, 2, 2, 2)
	require.NoError(t, err)

	// A different shape is rejected and the live buffer is left alone.
	err = json.Unmarshal([]byte("[[1]]"), d)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Equal(t, 3, d.Rows())
	require.Equal(t, 3, d.Cols())
	require.Equal(t, 0.0, MustAt(t, v, 0, 0))

	// The same shape is decoded in place and stays visible through the view.
	require.NoError(t, json.Unmarshal([]byte("[[1,2,3],[4,5,6],[7,8,9]]"), d))
	require.Equal(t, 9.0, MustAt(t, v, 0, 0))
	require.NoError(t, v.Set(0, 0, 90))
	require.Equal(t, 90.0, MustAt(t, d, 2, 2))
}
