// SPDX-License-Identifier: MIT

// Package matrix - validation & construction front door.
//
// Purpose:
//   - Turn heterogeneous inputs (dimension pairs, nested numeric slices,
//     decoded JSON values, existing matrix-likes) into a validated *Dense or
//     a descriptive sentinel error.
//   - Keep the typed constructors (NewDense, NewFromRows, FromRows,
//     NewFromMatrix) as the idiomatic surface; New and CheckMatrix are the
//     dynamic entry points used by the Ops dispatch table.
//
// Error priority:
//   - argument (nothing recognizable) -> dimension -> shape (empty/jagged/1D).
package matrix

import (
	"fmt"
	"math"
)

// NewFromRows builds a Dense from a nested row slice, copying every value.
//
// Implementation:
//   - Stage 1: reject an empty outer slice or an empty first row (msgData2D).
//   - Stage 2: reject rows whose length differs from the first (msgInconsistentDims).
//   - Stage 3: copy row by row into one contiguous buffer.
//
// Errors:
//   - ErrShape.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(data [][]float64, opts ...Option) (*Dense, error) {
	return FromRows(data, opts...)
}

// FromRows is the generic form of NewFromRows for any integer or float element type.
func FromRows[T Number](data [][]T, opts ...Option) (*Dense, error) {
	rows := len(data)
	if rows == 0 || len(data[0]) == 0 {
		return nil, reasonf(msgData2D, ErrShape)
	}
	cols := len(data[0])
	var i, j int
	for i = 1; i < rows; i++ {
		if len(data[i]) != cols {
			return nil, reasonf(msgInconsistentDims, ErrShape)
		}
	}

	o := gatherOptions(opts...)
	buf := make([]float64, rows*cols)
	for i = 0; i < rows; i++ {
		base := i * cols
		for j = 0; j < cols; j++ {
			buf[base+j] = float64(data[i][j])
		}
	}
	m := newDenseFromData(rows, cols, buf, o.validateNaNInf)
	if o.validateNaNInf {
		if err := validateFinite(m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// NewFromMatrix clones any matrix-like value into an independent Dense.
// Views are materialized through their mapping; the source is never aliased.
func NewFromMatrix(src Matrix, opts ...Option) (*Dense, error) {
	if isNilMatrix(src) {
		return nil, reasonf(msgFirstArgument, ErrArgument)
	}
	o := gatherOptions(opts...)
	data, err := To1D(src)
	if err != nil {
		return nil, err
	}
	m := newDenseFromData(src.Rows(), src.Cols(), data, o.validateNaNInf)
	if o.validateNaNInf {
		if err = validateFinite(m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// maxIntFloat is the smallest float64 that int() cannot represent.
const maxIntFloat = float64(math.MaxInt)

// New is the dynamic constructor mirroring an overloaded "new Matrix(...)":
//
//	New(rows, cols)        zero matrix; ints or integral floats
//	New([][]T)             validated copy; T any integer/float kind
//	New([]any{[]any{..}})  validated copy of decoded JSON
//	New(m Matrix)          independent clone
//
// Errors:
//   - ErrArgument (msgFirstArgument) with no input, nil, an unsupported type,
//     or a first dimension that is not a positive integer (the latter also
//     matches ErrDimension).
//   - ErrDimension (msgColumnsPositive) when the column count is missing or invalid.
//   - ErrDimension (msgTooLarge) for a dimension or product beyond int.
//   - ErrShape for empty, jagged or one-dimensional array input.
func New(args ...any) (*Dense, error) {
	if len(args) == 0 || args[0] == nil {
		return nil, reasonf(msgFirstArgument, ErrArgument)
	}

	first := args[0]
	if n, isNum, isInt := numberValue(first); isNum {
		if !isInt || n <= 0 {
			return nil, fmt.Errorf("%s: %w: %w", msgFirstArgument, ErrArgument, ErrDimension)
		}
		if n >= maxIntFloat {
			return nil, fmt.Errorf("%s (got %g): %w", msgTooLarge, n, ErrDimension)
		}
		if len(args) < 2 {
			return nil, reasonf(msgColumnsPositive, ErrDimension)
		}
		c, cNum, cInt := numberValue(args[1])
		if !cNum || !cInt || c <= 0 {
			return nil, reasonf(msgColumnsPositive, ErrDimension)
		}
		if c >= maxIntFloat {
			return nil, fmt.Errorf("%s (got %g): %w", msgTooLarge, c, ErrDimension)
		}

		return NewDense(int(n), int(c))
	}
	if len(args) > 1 {
		return nil, fmt.Errorf("%s: unexpected %d extra argument(s): %w", msgFirstArgument, len(args)-1, ErrArgument)
	}

	return fromValue(first)
}

// fromValue dispatches a single non-numeric argument by Go type.
func fromValue(v any) (*Dense, error) {
	switch x := v.(type) {
	case Matrix:
		return NewFromMatrix(x)
	case [][]float64:
		return FromRows(x)
	case [][]float32:
		return FromRows(x)
	case [][]int:
		return FromRows(x)
	case [][]int32:
		return FromRows(x)
	case [][]int64:
		return FromRows(x)
	case []any:
		rows, err := rowsFromAny(x)
		if err != nil {
			return nil, err
		}
		return FromRows(rows)
	case []float64, []float32, []int, []int32, []int64:
		return nil, reasonf(msgData2DOnly, ErrShape)
	default:
		return nil, fmt.Errorf("%s (got %T): %w", msgFirstArgument, v, ErrArgument)
	}
}

// rowsFromAny converts a decoded JSON-like []any into nested float rows.
// Elements must themselves be slices; scalars at the outer level mean a 1D array.
func rowsFromAny(v []any) ([][]float64, error) {
	if len(v) == 0 {
		return nil, reasonf(msgData2D, ErrShape)
	}
	out := make([][]float64, len(v))
	for i, row := range v {
		switch r := row.(type) {
		case []float64:
			out[i] = r
		case []any:
			vals := make([]float64, len(r))
			for j, cell := range r {
				f, ok := floatValue(cell)
				if !ok {
					return nil, fmt.Errorf("%s: cell (%d,%d) is %T: %w", msgData2DOnly, i, j, cell, ErrShape)
				}
				vals[j] = f
			}
			out[i] = vals
		default:
			return nil, reasonf(msgData2DOnly, ErrShape)
		}
	}

	return out, nil
}

// CheckMatrix returns x unchanged when it already satisfies Matrix (no copy,
// no species conversion); otherwise it builds a Dense via New and propagates
// the construction error.
func CheckMatrix(x any) (Matrix, error) {
	if m, ok := x.(Matrix); ok && !isNilMatrix(m) {
		return m, nil
	}

	return New(x)
}

// IsMatrix reports whether x satisfies the matrix capability contract.
// The check is structural (interface conformance), never by type name.
func IsMatrix(x any) bool {
	m, ok := x.(Matrix)

	return ok && !isNilMatrix(m)
}

// isNilMatrix catches both a nil interface and typed nil pointers of the
// package's own implementations.
func isNilMatrix(m Matrix) bool {
	switch x := m.(type) {
	case nil:
		return true
	case *Dense:
		return x == nil
	case *View:
		return x == nil
	case *Wrapper1D:
		return x == nil
	case *Wrapper2D:
		return x == nil
	default:
		return false
	}
}

// numberValue classifies v: (value, isNumber, isInteger).
func numberValue(v any) (float64, bool, bool) {
	f, ok := floatValue(v)
	if !ok {
		return 0, false, false
	}

	return f, true, !isNonFinite(f) && f == math.Trunc(f)
}

// floatValue converts any Go numeric kind to float64.
func floatValue(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	default:
		return 0, false
	}
}
