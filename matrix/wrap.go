// SPDX-License-Identifier: MIT

// Package matrix - non-copying wrappers over caller-owned slices.
//
// Wrap1D and Wrap2D adapt plain Go slices to the Matrix contract without
// copying: reads and writes hit the caller's memory. The caller keeps
// ownership and must not reslice the data while a wrapper is in use.
// Like views, wrappers materialize DenseSpecies results unless built
// WithSpecies(...).

package matrix

import "fmt"

// Wrapper1D reads a flat row-major slice as a rows×(len/rows) matrix.
type Wrapper1D struct {
	data    []float64
	r, c    int
	species Species
}

// Wrapper2D reads a rectangular [][]float64 in place.
type Wrapper2D struct {
	data    [][]float64
	c       int
	species Species
}

var (
	_ Matrix          = (*Wrapper1D)(nil)
	_ Matrix          = (*Wrapper2D)(nil)
	_ SpeciesProvider = (*Wrapper1D)(nil)
	_ SpeciesProvider = (*Wrapper2D)(nil)
)

// Wrap1D wraps data as a matrix with the given row count.
//
// Errors:
//   - ErrShape when data is empty.
//   - ErrDimension when rows is not positive.
//   - ErrShape (msgDataLength) when len(data) is not a multiple of rows.
func Wrap1D(data []float64, rows int, opts ...Option) (*Wrapper1D, error) {
	if len(data) == 0 {
		return nil, reasonf(msgData2D, ErrShape)
	}
	if rows <= 0 {
		return nil, fmt.Errorf("%s (got %d): %w", msgRowsPositive, rows, ErrDimension)
	}
	if len(data)%rows != 0 {
		return nil, fmt.Errorf("%s (len %d, rows %d): %w", msgDataLength, len(data), rows, ErrShape)
	}
	o := gatherOptions(opts...)

	return &Wrapper1D{data: data, r: rows, c: len(data) / rows, species: o.species}, nil
}

// Wrap2D wraps a rectangular nested slice.
//
// Errors:
//   - ErrShape (msgData2D / msgInconsistentDims) like NewFromRows.
func Wrap2D(data [][]float64, opts ...Option) (*Wrapper2D, error) {
	if len(data) == 0 || len(data[0]) == 0 {
		return nil, reasonf(msgData2D, ErrShape)
	}
	cols := len(data[0])
	for i := 1; i < len(data); i++ {
		if len(data[i]) != cols {
			return nil, reasonf(msgInconsistentDims, ErrShape)
		}
	}
	o := gatherOptions(opts...)

	return &Wrapper2D{data: data, c: cols, species: o.species}, nil
}

// Rows returns the number of rows.
func (w *Wrapper1D) Rows() int { return w.r }

// Cols returns the number of columns.
func (w *Wrapper1D) Cols() int { return w.c }

// Species returns the declared species or DenseSpecies.
func (w *Wrapper1D) Species() Species {
	if w.species != nil {
		return w.species
	}

	return DenseSpecies
}

// At reads data[i*cols+j].
func (w *Wrapper1D) At(i, j int) (float64, error) {
	if i < 0 || i >= w.r || j < 0 || j >= w.c {
		return 0, fmt.Errorf("Wrapper1D.At(%d,%d): %w", i, j, ErrIndex)
	}

	return w.data[i*w.c+j], nil
}

// Set writes data[i*cols+j].
func (w *Wrapper1D) Set(i, j int, v float64) error {
	if i < 0 || i >= w.r || j < 0 || j >= w.c {
		return fmt.Errorf("Wrapper1D.Set(%d,%d): %w", i, j, ErrIndex)
	}
	w.data[i*w.c+j] = v

	return nil
}

// Rows returns the number of rows.
func (w *Wrapper2D) Rows() int { return len(w.data) }

// Cols returns the number of columns.
func (w *Wrapper2D) Cols() int { return w.c }

// Species returns the declared species or DenseSpecies.
func (w *Wrapper2D) Species() Species {
	if w.species != nil {
		return w.species
	}

	return DenseSpecies
}

// At reads data[i][j].
func (w *Wrapper2D) At(i, j int) (float64, error) {
	if i < 0 || i >= len(w.data) || j < 0 || j >= w.c {
		return 0, fmt.Errorf("Wrapper2D.At(%d,%d): %w", i, j, ErrIndex)
	}

	return w.data[i][j], nil
}

// Set writes data[i][j].
func (w *Wrapper2D) Set(i, j int, v float64) error {
	if i < 0 || i >= len(w.data) || j < 0 || j >= w.c {
		return fmt.Errorf("Wrapper2D.Set(%d,%d): %w", i, j, ErrIndex)
	}
	w.data[i][j] = v

	return nil
}
