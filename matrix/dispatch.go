// SPDX-License-Identifier: MIT

// Package matrix - static dispatch tables.
//
// An Ops value is the type-level ("static") entry point of a species: every
// method accepts loosely typed operands (any Matrix, or anything New accepts,
// and for element-wise operations also a plain number), normalizes them
// through CheckMatrix, and materializes the result with the table's species
// regardless of the operands' own species.
//
//	Static.Sub([][]float64{{1, 2}}, [][]float64{{3, 1}}) // [[-2, 1]] as *Dense
//
// Instance form (ops.go) differs only in where the species comes from: there
// it is the first operand's.

package matrix

import (
	"fmt"
	"math"
)

// Ops is a dispatch table bound to one species.
type Ops struct {
	species Species
}

// Static is the dispatch table of the default species (Dense).
var Static = NewOps(DenseSpecies)

// ViewOps is the dispatch table reached from views. Views materialize Dense
// results, so ViewOps and Static produce equal values.
var ViewOps = OpsOf(&View{})

// NewOps binds a dispatch table to s. A nil species means DenseSpecies.
func NewOps(s Species) Ops {
	if s == nil {
		s = DenseSpecies
	}

	return Ops{species: s}
}

// OpsOf returns the dispatch table of m's species.
func OpsOf(m Matrix) Ops { return NewOps(SpeciesOf(m)) }

// Species returns the species results are materialized with.
func (o Ops) Species() Species {
	if o.species == nil {
		return DenseSpecies
	}

	return o.species
}

// operand normalizes x for the table; tag prefixes construction errors.
// A bare number is rejected with ErrArgument: only a second operand may be scalar.
func operand(tag string, x any) (Matrix, error) {
	if _, isNum := floatValue(x); isNum {
		return nil, fmt.Errorf("%s: operand must be a matrix, got scalar %T: %w", tag, x, ErrArgument)
	}
	m, err := CheckMatrix(x)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return m, nil
}

// binary runs f over a matrix and either a matrix or a scalar operand.
func (o Ops) binary(tag string, a, b any, f binaryFunc) (Matrix, error) {
	ma, err := operand(tag, a)
	if err != nil {
		return nil, err
	}
	if k, ok := floatValue(b); ok {
		return ewScalar(tag, o.Species(), ma, k, f)
	}
	mb, err := operand(tag, b)
	if err != nil {
		return nil, err
	}

	return ewBinary(tag, o.Species(), ma, mb, f)
}

// Add returns a + b; b may be a matrix or a number.
func (o Ops) Add(a, b any) (Matrix, error) { return o.binary(opAdd, a, b, cellAdd) }

// Sub returns a - b; b may be a matrix or a number.
func (o Ops) Sub(a, b any) (Matrix, error) { return o.binary(opSub, a, b, cellSub) }

// Hadamard returns a ⊙ b; b may be a matrix or a number.
func (o Ops) Hadamard(a, b any) (Matrix, error) { return o.binary(opHadamard, a, b, cellMul) }

// Div returns a ./ b; b may be a matrix or a number.
func (o Ops) Div(a, b any) (Matrix, error) { return o.binary(opDiv, a, b, cellDiv) }

// Mod returns math.Mod(a, b) per cell; b may be a matrix or a number.
func (o Ops) Mod(a, b any) (Matrix, error) { return o.binary(opMod, a, b, cellMod) }

// Pow returns math.Pow(a, b) per cell; b may be a matrix or a number.
func (o Ops) Pow(a, b any) (Matrix, error) { return o.binary(opPow, a, b, cellPow) }

// Min returns the element-wise minimum; b may be a matrix or a number.
func (o Ops) Min(a, b any) (Matrix, error) { return o.binary(opMin, a, b, cellMin) }

// Max returns the element-wise maximum; b may be a matrix or a number.
func (o Ops) Max(a, b any) (Matrix, error) { return o.binary(opMax, a, b, cellMax) }

// Mul returns the matrix product a × b.
func (o Ops) Mul(a, b any) (Matrix, error) {
	ma, err := operand(opMul, a)
	if err != nil {
		return nil, err
	}
	mb, err := operand(opMul, b)
	if err != nil {
		return nil, err
	}

	return mulWith(o.Species(), ma, mb)
}

// Transpose returns a materialized transpose of a.
func (o Ops) Transpose(a any) (Matrix, error) {
	m, err := operand(opTranspose, a)
	if err != nil {
		return nil, err
	}

	return transposeWith(o.Species(), m)
}

// Scale returns alpha * a.
func (o Ops) Scale(a any, alpha float64) (Matrix, error) {
	m, err := operand(opScale, a)
	if err != nil {
		return nil, err
	}

	return ewScalar(opScale, o.Species(), m, alpha, cellMul)
}

// Abs returns |a| per cell.
func (o Ops) Abs(a any) (Matrix, error) {
	m, err := operand(opAbs, a)
	if err != nil {
		return nil, err
	}

	return ewUnary(opAbs, o.Species(), m, math.Abs)
}

// Neg returns -a per cell.
func (o Ops) Neg(a any) (Matrix, error) {
	m, err := operand(opNeg, a)
	if err != nil {
		return nil, err
	}

	return ewUnary(opNeg, o.Species(), m, func(x float64) float64 { return -x })
}

// Clone copies a into the table's species. Use it to convert between species:
// NewOps(mySpecies).Clone(dense) returns a value of mySpecies.
func (o Ops) Clone(a any) (Matrix, error) {
	m, err := operand(opClone, a)
	if err != nil {
		return nil, err
	}

	return ewUnary(opClone, o.Species(), m, func(x float64) float64 { return x })
}

// Zeros materializes a zero-filled rows×cols value of the table's species.
func (o Ops) Zeros(rows, cols int) (Matrix, error) {
	out, err := materialize(o.Species(), rows, cols)
	if err != nil {
		return nil, fmt.Errorf("Ops.Zeros(%d,%d): %w", rows, cols, err)
	}

	return out, nil
}
