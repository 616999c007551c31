// SPDX-License-Identifier: MIT

// Package matrix - zero-copy views.
//
// Purpose:
//   - Let a transformed index mapping stand in for a matrix without copying:
//     transpose, inclusive sub-ranges, explicit selections, single rows or
//     columns, and axis flips.
//   - Reads and writes pass through the mapping to the owner, so owner
//     mutations are visible through the view and vice versa.
//
// Ownership:
//   - A View keeps a strong reference to its owner and never copies it.
//   - The owner of a View is never itself a *View: constructors compose the
//     new transformation into the source mapping instead of nesting.
//
// Species:
//   - Operations invoked through a view materialize DenseSpecies unless the
//     view was built WithSpecies(...). A view of a view inherits the
//     source's species.
//
// Complexity quicksheet:
//   - Transpose/Sub/Row/Column: O(1) build. Selection/Flip: O(len(index)) build.
//   - At/Set: O(1) plus the owner's cost.

package matrix

import "fmt"

// ViewKind names the outermost transformation applied to build a View.
type ViewKind int

// View kinds.
const (
	ViewTranspose ViewKind = iota
	ViewSub
	ViewSelection
	ViewRowSelection
	ViewColumnSelection
	ViewRow
	ViewColumn
	ViewFlipRow
	ViewFlipColumn
)

var viewKindNames = [...]string{
	ViewTranspose:       "transpose",
	ViewSub:             "sub",
	ViewSelection:       "selection",
	ViewRowSelection:    "row-selection",
	ViewColumnSelection: "column-selection",
	ViewRow:             "row",
	ViewColumn:          "column",
	ViewFlipRow:         "flip-row",
	ViewFlipColumn:      "flip-column",
}

// String implements fmt.Stringer.
func (k ViewKind) String() string {
	if k < 0 || int(k) >= len(viewKindNames) {
		return fmt.Sprintf("ViewKind(%d)", int(k))
	}

	return viewKindNames[k]
}

// View is a non-owning matrix-like window over an owner's storage.
type View struct {
	owner   Matrix   // never a *View
	mp      mapping  // view (i,j) -> owner (p,q)
	kind    ViewKind // outermost transformation
	species Species  // nil ⇒ DenseSpecies
}

var (
	_ Matrix          = (*View)(nil)
	_ SpeciesProvider = (*View)(nil)
)

// newView flattens src (if it is a View) and composes step into its mapping.
func newView(kind ViewKind, src Matrix, step func(base mapping) mapping, opts []Option) *View {
	var (
		owner   Matrix
		base    mapping
		species Species
	)
	if v, ok := src.(*View); ok {
		owner, base, species = v.owner, v.mp, v.species
	} else {
		owner, base = src, identityMapping(src.Rows(), src.Cols())
	}
	if o := gatherOptions(opts...); o.species != nil {
		species = o.species
	}

	return &View{owner: owner, mp: step(base), kind: kind, species: species}
}

// viewSource rejects nil sources for every view constructor.
func viewSource(ctor string, src Matrix) error {
	if isNilMatrix(src) {
		return fmt.Errorf("%s: %w", ctor, ErrArgument)
	}

	return nil
}

// NewTransposeView returns the view (i,j) -> src(j,i), shape src.Cols()×src.Rows().
//
// Behavior highlights:
//   - Transposing a transpose view yields an identity mapping over the
//     original owner, never a two-level chain.
//
// Errors:
//   - ErrArgument for a nil source.
//
// Complexity:
//   - Time O(1), Space O(1).
func NewTransposeView(src Matrix, opts ...Option) (*View, error) {
	if err := viewSource("NewTransposeView", src); err != nil {
		return nil, err
	}

	return newView(ViewTranspose, src, mapping.transposed, opts), nil
}

// NewSubView returns the inclusive window rows [r0,r1] × cols [c0,c1] of src.
//
// Errors:
//   - ErrArgument (nil source), ErrIndex (out-of-range or reversed bounds).
func NewSubView(src Matrix, r0, r1, c0, c1 int, opts ...Option) (*View, error) {
	const ctor = "NewSubView"
	if err := viewSource(ctor, src); err != nil {
		return nil, err
	}
	if err := validateRange("row", r0, r1, src.Rows()); err != nil {
		return nil, matrixErrorf(ctor, err)
	}
	if err := validateRange("column", c0, c1, src.Cols()); err != nil {
		return nil, matrixErrorf(ctor, err)
	}

	return newView(ViewSub, src, func(b mapping) mapping {
		return b.withRows(b.rows.span(r0, r1)).withCols(b.cols.span(c0, c1))
	}, opts), nil
}

// NewSelectionView returns src restricted to explicit row and column index
// lists (order preserved, duplicates allowed).
//
// Errors:
//   - ErrArgument (nil source), ErrShape (empty list), ErrIndex (bad index).
//
// Complexity:
//   - Time O(len(rows)+len(cols)) to compose, Space the same.
func NewSelectionView(src Matrix, rows, cols []int, opts ...Option) (*View, error) {
	const ctor = "NewSelectionView"
	if err := viewSource(ctor, src); err != nil {
		return nil, err
	}
	if err := validateIndexList("row", rows, src.Rows()); err != nil {
		return nil, matrixErrorf(ctor, err)
	}
	if err := validateIndexList("column", cols, src.Cols()); err != nil {
		return nil, matrixErrorf(ctor, err)
	}

	return newView(ViewSelection, src, func(b mapping) mapping {
		return b.withRows(b.rows.pick(rows)).withCols(b.cols.pick(cols))
	}, opts), nil
}

// NewRowSelectionView keeps the listed rows and every column.
func NewRowSelectionView(src Matrix, rows []int, opts ...Option) (*View, error) {
	const ctor = "NewRowSelectionView"
	if err := viewSource(ctor, src); err != nil {
		return nil, err
	}
	if err := validateIndexList("row", rows, src.Rows()); err != nil {
		return nil, matrixErrorf(ctor, err)
	}

	return newView(ViewRowSelection, src, func(b mapping) mapping {
		return b.withRows(b.rows.pick(rows))
	}, opts), nil
}

// NewColumnSelectionView keeps every row and the listed columns.
func NewColumnSelectionView(src Matrix, cols []int, opts ...Option) (*View, error) {
	const ctor = "NewColumnSelectionView"
	if err := viewSource(ctor, src); err != nil {
		return nil, err
	}
	if err := validateIndexList("column", cols, src.Cols()); err != nil {
		return nil, matrixErrorf(ctor, err)
	}

	return newView(ViewColumnSelection, src, func(b mapping) mapping {
		return b.withCols(b.cols.pick(cols))
	}, opts), nil
}

// NewRowView returns row `row` of src as a 1×Cols() view.
func NewRowView(src Matrix, row int, opts ...Option) (*View, error) {
	const ctor = "NewRowView"
	if err := viewSource(ctor, src); err != nil {
		return nil, err
	}
	if err := validateIndex("row", row, src.Rows()); err != nil {
		return nil, matrixErrorf(ctor, err)
	}

	return newView(ViewRow, src, func(b mapping) mapping {
		return b.withRows(b.rows.span(row, row))
	}, opts), nil
}

// NewColumnView returns column `col` of src as a Rows()×1 view.
func NewColumnView(src Matrix, col int, opts ...Option) (*View, error) {
	const ctor = "NewColumnView"
	if err := viewSource(ctor, src); err != nil {
		return nil, err
	}
	if err := validateIndex("column", col, src.Cols()); err != nil {
		return nil, matrixErrorf(ctor, err)
	}

	return newView(ViewColumn, src, func(b mapping) mapping {
		return b.withCols(b.cols.span(col, col))
	}, opts), nil
}

// NewFlipRowView mirrors every row: (i,j) -> src(i, Cols()-1-j).
func NewFlipRowView(src Matrix, opts ...Option) (*View, error) {
	if err := viewSource("NewFlipRowView", src); err != nil {
		return nil, err
	}

	return newView(ViewFlipRow, src, func(b mapping) mapping {
		return b.withCols(b.cols.reversed())
	}, opts), nil
}

// NewFlipColumnView mirrors every column: (i,j) -> src(Rows()-1-i, j).
func NewFlipColumnView(src Matrix, opts ...Option) (*View, error) {
	if err := viewSource("NewFlipColumnView", src); err != nil {
		return nil, err
	}

	return newView(ViewFlipColumn, src, func(b mapping) mapping {
		return b.withRows(b.rows.reversed())
	}, opts), nil
}

// Rows returns the number of rows in the view.
func (v *View) Rows() int { return v.mp.rows.n }

// Cols returns the number of columns in the view.
func (v *View) Cols() int { return v.mp.cols.n }

// Owner returns the matrix whose storage the view reads and writes.
func (v *View) Owner() Matrix { return v.owner }

// Kind reports the outermost transformation that produced v.
func (v *View) Kind() ViewKind { return v.kind }

// IsIdentity reports whether v reads its owner unchanged (same shape, same order),
// e.g. the transpose of a transpose.
func (v *View) IsIdentity() bool {
	return v.mp.isIdentity(v.owner.Rows(), v.owner.Cols())
}

// Depth is the number of index transformations between v and its owner after
// composition: 0 for an identity mapping, 1 otherwise. Chains never grow.
func (v *View) Depth() int {
	if v.IsIdentity() {
		return 0
	}

	return 1
}

// Species returns the species declared at construction, or DenseSpecies.
func (v *View) Species() Species {
	if v.species != nil {
		return v.species
	}

	return DenseSpecies
}

// At reads element (i,j) through the mapping or returns ErrIndex.
func (v *View) At(i, j int) (float64, error) {
	if i < 0 || i >= v.mp.rows.n || j < 0 || j >= v.mp.cols.n {
		return 0, fmt.Errorf("View.At(%d,%d): %w", i, j, ErrIndex)
	}
	p, q := v.mp.owner(i, j)
	if d, ok := v.owner.(*Dense); ok {
		return d.data[p*d.c+q], nil // mapping stays inside the owner by construction
	}
	val, err := v.owner.At(p, q)
	if err != nil {
		return 0, fmt.Errorf("View.At(%d,%d): %w", i, j, err)
	}

	return val, nil
}

// Set writes element (i,j) through the mapping, honoring the owner's numeric policy.
func (v *View) Set(i, j int, val float64) error {
	if i < 0 || i >= v.mp.rows.n || j < 0 || j >= v.mp.cols.n {
		return fmt.Errorf("View.Set(%d,%d): %w", i, j, ErrIndex)
	}
	p, q := v.mp.owner(i, j)
	if err := v.owner.Set(p, q, val); err != nil {
		return fmt.Errorf("View.Set(%d,%d): %w", i, j, err)
	}

	return nil
}
