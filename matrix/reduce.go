// SPDX-License-Identifier: MIT

// Package matrix - reductions.
//
// Scalar reductions (Total, Mean, MinValue, MaxValue) return float64.
// Axis reductions (RowSums, ColSums, RowMeans, ColMeans) return a matrix of
// the operand's species: r×1 for rows, 1×c for columns.
//
// Determinism:
//   - Summation order is fixed (i→j), so results are bit-reproducible and
//     identical between the *Dense fast path and the generic path.

package matrix

import "math"

const (
	opTotal    = "Total"
	opMean     = "Mean"
	opMinValue = "MinValue"
	opMaxValue = "MaxValue"
	opRowSums  = "RowSums"
	opColSums  = "ColSums"
	opRowMeans = "RowMeans"
	opColMeans = "ColMeans"
)

// fold visits every cell in i→j order.
func fold(tag string, m Matrix, visit func(i, j int, v float64)) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(tag, err)
	}
	if d, ok := m.(*Dense); ok {
		for idx, v := range d.data {
			visit(idx/d.c, idx%d.c, v)
		}
		return nil
	}

	var v float64
	var err error
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return matrixErrorf(tag, err)
			}
			visit(i, j, v)
		}
	}

	return nil
}

// Total returns the sum of every element.
func Total(m Matrix) (float64, error) {
	sum := ZeroSum
	if err := fold(opTotal, m, func(_, _ int, v float64) { sum += v }); err != nil {
		return 0, err
	}

	return sum, nil
}

// Mean returns the arithmetic mean of every element.
func Mean(m Matrix) (float64, error) {
	sum, err := Total(m)
	if err != nil {
		return 0, matrixErrorf(opMean, err)
	}

	return sum / float64(m.Rows()*m.Cols()), nil
}

// MinValue returns the smallest element. NaN cells are skipped unless every
// cell is NaN, in which case the result is NaN.
func MinValue(m Matrix) (float64, error) {
	best := math.NaN()
	err := fold(opMinValue, m, func(_, _ int, v float64) {
		if math.IsNaN(best) || v < best {
			best = v
		}
	})
	if err != nil {
		return 0, err
	}

	return best, nil
}

// MaxValue returns the largest element, with the same NaN rule as MinValue.
func MaxValue(m Matrix) (float64, error) {
	best := math.NaN()
	err := fold(opMaxValue, m, func(_, _ int, v float64) {
		if math.IsNaN(best) || v > best {
			best = v
		}
	})
	if err != nil {
		return 0, err
	}

	return best, nil
}

// axisSums accumulates along rows (byRow) or columns into a fresh vector.
func axisSums(tag string, m Matrix, byRow bool) ([]float64, error) {
	var sums []float64
	if !isNilMatrix(m) {
		if byRow {
			sums = make([]float64, m.Rows())
		} else {
			sums = make([]float64, m.Cols())
		}
	}
	err := fold(tag, m, func(i, j int, v float64) {
		if byRow {
			sums[i] += v
		} else {
			sums[j] += v
		}
	})
	if err != nil {
		return nil, err
	}

	return sums, nil
}

// vectorOf materializes sums as an r×1 (column) or 1×c (row) matrix of species s.
func vectorOf(tag string, s Species, sums []float64, column bool) (Matrix, error) {
	r, c := 1, len(sums)
	if column {
		r, c = len(sums), 1
	}
	out, err := materialize(s, r, c)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if dst, ok := rawDense(out); ok {
		copy(dst, sums)
		return out, nil
	}
	for k, v := range sums {
		if column {
			err = out.Set(k, 0, v)
		} else {
			err = out.Set(0, k, v)
		}
		if err != nil {
			return nil, matrixErrorf(tag, err)
		}
	}

	return out, nil
}

// RowSums returns the r×1 matrix of per-row sums.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func RowSums(m Matrix) (Matrix, error) {
	sums, err := axisSums(opRowSums, m, true)
	if err != nil {
		return nil, err
	}

	return vectorOf(opRowSums, SpeciesOf(m), sums, true)
}

// ColSums returns the 1×c matrix of per-column sums.
func ColSums(m Matrix) (Matrix, error) {
	sums, err := axisSums(opColSums, m, false)
	if err != nil {
		return nil, err
	}

	return vectorOf(opColSums, SpeciesOf(m), sums, false)
}

// RowMeans returns the r×1 matrix of per-row means.
func RowMeans(m Matrix) (Matrix, error) {
	sums, err := axisSums(opRowMeans, m, true)
	if err != nil {
		return nil, err
	}
	n := float64(m.Cols())
	for i := range sums {
		sums[i] /= n
	}

	return vectorOf(opRowMeans, SpeciesOf(m), sums, true)
}

// ColMeans returns the 1×c matrix of per-column means.
func ColMeans(m Matrix) (Matrix, error) {
	sums, err := axisSums(opColMeans, m, false)
	if err != nil {
		return nil, err
	}
	n := float64(m.Rows())
	for j := range sums {
		sums[j] /= n
	}

	return vectorOf(opColMeans, SpeciesOf(m), sums, false)
}
