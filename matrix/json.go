// SPDX-License-Identifier: MIT

// Package matrix - canonical interchange form.
//
// Every matrix-like type in the package serializes to the nested 2D array
// produced by To2D, so a Dense, a wrapper and any View composition over the
// same values encode to identical bytes. Internal layout (flat buffers,
// owners, mappings) never leaks into the encoding.

package matrix

import (
	"encoding/json"
	"fmt"
)

var (
	_ json.Marshaler   = (*Dense)(nil)
	_ json.Unmarshaler = (*Dense)(nil)
	_ json.Marshaler   = (*View)(nil)
	_ json.Marshaler   = (*Wrapper1D)(nil)
	_ json.Marshaler   = (*Wrapper2D)(nil)
)

// MarshalJSON encodes m as its nested 2D form.
func MarshalJSON(m Matrix) ([]byte, error) {
	rows, err := To2D(m)
	if err != nil {
		return nil, matrixErrorf("MarshalJSON", err)
	}

	return json.Marshal(rows)
}

// MarshalJSON implements json.Marshaler.
func (m *Dense) MarshalJSON() ([]byte, error) { return MarshalJSON(m) }

// MarshalJSON implements json.Marshaler.
func (v *View) MarshalJSON() ([]byte, error) { return MarshalJSON(v) }

// MarshalJSON implements json.Marshaler.
func (w *Wrapper1D) MarshalJSON() ([]byte, error) { return MarshalJSON(w) }

// MarshalJSON implements json.Marshaler.
func (w *Wrapper2D) MarshalJSON() ([]byte, error) { return MarshalJSON(w) }

// UnmarshalJSON decodes the nested 2D form, validating it like NewFromRows.
// The receiver's numeric policy is kept and enforced on the decoded values.
//
// Shape policy:
//   - A zero-value Dense adopts the decoded shape.
//   - A shaped Dense keeps its shape and buffer (views over it stay valid);
//     the values are copied in place, and a differing shape is rejected with
//     ErrDimensionMismatch leaving m untouched.
func (m *Dense) UnmarshalJSON(b []byte) error {
	var rows [][]float64
	if err := json.Unmarshal(b, &rows); err != nil {
		return fmt.Errorf("Dense.UnmarshalJSON: %v: %w", err, ErrShape)
	}
	var opts []Option
	if m.validateNaNInf {
		opts = append(opts, WithValidateNaNInf())
	}
	d, err := NewFromRows(rows, opts...)
	if err != nil {
		return matrixErrorf("Dense.UnmarshalJSON", err)
	}
	if m.r == 0 && m.c == 0 && m.data == nil {
		*m = *d
		return nil
	}
	if d.r != m.r || d.c != m.c {
		return fmt.Errorf("Dense.UnmarshalJSON: decoded %dx%d into %dx%d: %w", d.r, d.c, m.r, m.c, ErrDimensionMismatch)
	}
	copy(m.data, d.data)

	return nil
}
