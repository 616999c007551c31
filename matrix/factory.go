// SPDX-License-Identifier: MIT

// Package matrix - factories.
//
// Every factory returns a fresh, independently owned *Dense. Optional
// dimensions and values come in through Options (WithRows, WithCols,
// WithValue, WithRNG) instead of positional defaults.
//
// Determinism:
//   - All factories except Rand/RandInt are fully deterministic.
//   - Rand/RandInt are deterministic whenever WithRNG supplies the generator.

package matrix

import (
	"fmt"
	"math"
)

// From1D unpacks a row-major flat slice into a rows×cols Dense (copy).
//
// Errors:
//   - ErrDimension from NewDense for non-positive dimensions.
//   - ErrShape (msgDataLength) when len(flat) != rows*cols.
func From1D(rows, cols int, flat []float64, opts ...Option) (*Dense, error) {
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	if len(flat) != rows*cols {
		return nil, fmt.Errorf("%s (len %d, want %d): %w", msgDataLength, len(flat), rows*cols, ErrShape)
	}
	copy(m.data, flat)
	if m.validateNaNInf {
		if err = validateFinite(m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// RowVector builds a 1×N matrix from N values (copy).
func RowVector(values []float64, opts ...Option) (*Dense, error) {
	if len(values) == 0 {
		return nil, reasonf(msgData2D, ErrShape)
	}

	return From1D(1, len(values), values, opts...)
}

// ColumnVector builds an N×1 matrix from N values (copy).
func ColumnVector(values []float64, opts ...Option) (*Dense, error) {
	if len(values) == 0 {
		return nil, reasonf(msgData2D, ErrShape)
	}

	return From1D(len(values), 1, values, opts...)
}

// Zeros returns a rows×cols matrix of zeros. Alias of NewDense with an
// intention-revealing name.
func Zeros(rows, cols int, opts ...Option) (*Dense, error) {
	return NewDense(rows, cols, opts...)
}

// Ones returns a rows×cols matrix filled with 1.
func Ones(rows, cols int, opts ...Option) (*Dense, error) {
	return Fill(rows, cols, 1, opts...)
}

// Fill returns a rows×cols matrix with every cell set to v.
func Fill(rows, cols int, v float64, opts ...Option) (*Dense, error) {
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	if m.validateNaNInf && isNonFinite(v) {
		return nil, denseErrorf(ctxSet, 0, 0, ErrNaNInf)
	}
	for idx := range m.data {
		m.data[idx] = v
	}

	return m, nil
}

// Rand returns a rows×cols matrix whose cells are drawn from the generator.
//
// Behavior highlights:
//   - WithRNG(fn): each cell = fn(), row-major order (fully deterministic).
//   - default: uniform [0,1) from math/rand/v2.
func Rand(rows, cols int, opts ...Option) (*Dense, error) {
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	rng := gatherOptions(opts...).random()
	for idx := range m.data {
		m.data[idx] = rng()
	}
	if m.validateNaNInf {
		if err = validateFinite(m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// RandInt returns a rows×cols matrix of integers floor(rng()*maxValue),
// i.e. uniform over [0, maxValue) for the default generator.
//
// Errors:
//   - ErrArgument when maxValue <= 0.
func RandInt(rows, cols, maxValue int, opts ...Option) (*Dense, error) {
	if maxValue <= 0 {
		return nil, fmt.Errorf("RandInt: maxValue %d must be positive: %w", maxValue, ErrArgument)
	}
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	rng := gatherOptions(opts...).random()
	scale := float64(maxValue)
	for idx := range m.data {
		m.data[idx] = math.Floor(rng() * scale)
	}

	return m, nil
}

// Eye returns a rows×cols matrix with value on cells (i,i), i < min(rows, cols),
// and 0 elsewhere.
//
// Inputs:
//   - rows: row count (> 0).
//   - WithCols(c): column count, default rows.
//   - WithValue(v): diagonal value, default DefaultDiagonalValue (1).
//
// Complexity:
//   - Time O(rows*cols) zeroing + O(min(rows,cols)) writes.
func Eye(rows int, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	cols := rows
	if o.cols != unsetDim {
		cols = o.cols
	}
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	n := min(rows, cols)
	for i := 0; i < n; i++ {
		m.data[i*cols+i] = o.value
	}

	return m, nil
}

// Diag returns a matrix with values[i] on cell (i,i).
//
// Behavior highlights:
//   - Shape defaults to len(values)×len(values); WithRows/WithCols override
//     each dimension independently (WithRows alone keeps cols == rows).
//   - Values beyond min(rows, cols) are dropped; missing diagonal cells are 0.
//
// Errors:
//   - ErrShape when values is empty and no shape option is given.
func Diag(values []float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	rows, cols := len(values), len(values)
	if o.rows != unsetDim {
		rows = o.rows
		cols = rows
	}
	if o.cols != unsetDim {
		cols = o.cols
	}
	if rows == 0 {
		return nil, reasonf(msgData2D, ErrShape)
	}
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	n := min(rows, cols, len(values))
	for i := 0; i < n; i++ {
		m.data[i*cols+i] = values[i]
	}
	if m.validateNaNInf {
		if err = validateFinite(m); err != nil {
			return nil, err
		}
	}

	return m, nil
}
