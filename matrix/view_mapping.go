// SPDX-License-Identifier: MIT

// Package matrix - index mappings behind every View.
//
// A mapping sends view coordinates (i,j) to owner coordinates:
//
//	p = rows.at(i), q = cols.at(j)
//	owner = (p,q)            when !swap
//	owner = (q,p)            when swap
//
// Every view constructor composes its own transformation into the mapping
// of its source, so a view of a view is still one mapping over the original
// owner. Transpose twice flips swap twice and exchanges the axes twice:
// the mapping is the identity again.

package matrix

// axis maps a view index to an owner index along one dimension.
//   - idx == nil: contiguous run off, off+1, ..., off+n-1 (no allocation).
//   - idx != nil: explicit indices, n == len(idx), off unused.
type axis struct {
	idx []int
	off int
	n   int
}

// identityAxis covers 0..n-1.
func identityAxis(n int) axis { return axis{n: n} }

// at returns the owner index for view index i (caller bounds-checks i).
func (a axis) at(i int) int {
	if a.idx == nil {
		return a.off + i
	}

	return a.idx[i]
}

// span narrows the axis to the inclusive view range [start,end].
// A contiguous axis stays contiguous.
func (a axis) span(start, end int) axis {
	n := end - start + 1
	if a.idx == nil {
		return axis{off: a.off + start, n: n}
	}
	out := make([]int, n)
	copy(out, a.idx[start:end+1])

	return axis{idx: out, n: n}
}

// pick composes an explicit selection (view indices) into the axis.
func (a axis) pick(sel []int) axis {
	out := make([]int, len(sel))
	for k, v := range sel {
		out[k] = a.at(v)
	}

	return axis{idx: out, n: len(out)}
}

// reversed walks the axis backwards.
func (a axis) reversed() axis {
	out := make([]int, a.n)
	for k := 0; k < a.n; k++ {
		out[k] = a.at(a.n - 1 - k)
	}

	return axis{idx: out, n: a.n}
}

// isIdentityOver reports whether the axis is exactly 0..n-1.
func (a axis) isIdentityOver(n int) bool {
	if a.n != n {
		return false
	}
	if a.idx == nil {
		return a.off == 0
	}
	for k, v := range a.idx {
		if v != k {
			return false
		}
	}

	return true
}

// mapping is the full (i,j) -> owner(p,q) translation of a View.
type mapping struct {
	swap bool // owner coordinates are (cols.at(j), rows.at(i))
	rows axis // view row axis
	cols axis // view column axis
}

// identityMapping maps an r×c owner onto itself.
func identityMapping(r, c int) mapping {
	return mapping{rows: identityAxis(r), cols: identityAxis(c)}
}

// owner translates view coordinates into owner coordinates.
func (mp mapping) owner(i, j int) (int, int) {
	p, q := mp.rows.at(i), mp.cols.at(j)
	if mp.swap {
		return q, p
	}

	return p, q
}

// transposed exchanges the view axes and flips swap.
func (mp mapping) transposed() mapping {
	return mapping{swap: !mp.swap, rows: mp.cols, cols: mp.rows}
}

// withRows replaces the view row axis.
func (mp mapping) withRows(a axis) mapping {
	mp.rows = a

	return mp
}

// withCols replaces the view column axis.
func (mp mapping) withCols(a axis) mapping {
	mp.cols = a

	return mp
}

// isIdentity reports whether the mapping reads the owner unchanged.
func (mp mapping) isIdentity(ownerRows, ownerCols int) bool {
	return !mp.swap && mp.rows.isIdentityOver(ownerRows) && mp.cols.isIdentityOver(ownerCols)
}
