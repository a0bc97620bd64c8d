// Package matrix implements the 2-D field-element arrays, Reed-Solomon
// and super-invertible matrix constructions, and ordered-selection
// combinators that sit between GF(2^W) arithmetic and packed secret
// sharing.
package matrix

import (
	"fmt"

	"github.com/luxfi/pss/pkg/math/gf"
)

// Matrix is a row-major 2-D array of field elements.
type Matrix struct {
	field      *gf.Field
	rows, cols int
	data       []gf.Element
}

// New builds a Matrix from a flat, row-major slice of length rows*cols.
func New(field *gf.Field, rows, cols int, data []gf.Element) (*Matrix, error) {
	if len(data) != rows*cols {
		return nil, fmt.Errorf("matrix: flat data has length %d, want %d (%dx%d)", len(data), rows*cols, rows, cols)
	}
	cp := make([]gf.Element, len(data))
	copy(cp, data)
	return &Matrix{field: field, rows: rows, cols: cols, data: cp}, nil
}

// Zero returns a rows x cols matrix of zero elements.
func Zero(field *gf.Field, rows, cols int) *Matrix {
	return &Matrix{field: field, rows: rows, cols: cols, data: make([]gf.Element, rows*cols)}
}

// Field returns the field this matrix's elements live in.
func (m *Matrix) Field() *gf.Field { return m.field }

// Shape returns (rows, cols).
func (m *Matrix) Shape() (int, int) { return m.rows, m.cols }

// At returns the element at (row, col).
func (m *Matrix) At(row, col int) gf.Element { return m.data[row*m.cols+col] }

// Set writes the element at (row, col).
func (m *Matrix) Set(row, col int, v gf.Element) { m.data[row*m.cols+col] = v }

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []gf.Element {
	out := make([]gf.Element, m.cols)
	copy(out, m.data[i*m.cols:(i+1)*m.cols])
	return out
}

// Col returns a copy of column j.
func (m *Matrix) Col(j int) []gf.Element {
	out := make([]gf.Element, m.rows)
	for i := 0; i < m.rows; i++ {
		out[i] = m.data[i*m.cols+j]
	}
	return out
}

// AppendColumn returns a new matrix with col appended as the last column.
func (m *Matrix) AppendColumn(col []gf.Element) (*Matrix, error) {
	if len(col) != m.rows {
		return nil, fmt.Errorf("matrix: AppendColumn got %d entries, want %d", len(col), m.rows)
	}
	out := Zero(m.field, m.rows, m.cols+1)
	for i := 0; i < m.rows; i++ {
		copy(out.data[i*out.cols:i*out.cols+m.cols], m.data[i*m.cols:(i+1)*m.cols])
		out.data[i*out.cols+m.cols] = col[i]
	}
	return out, nil
}

// Dot computes the matrix-vector product m * v.
func (m *Matrix) Dot(v []gf.Element) ([]gf.Element, error) {
	if len(v) != m.cols {
		return nil, fmt.Errorf("matrix: Dot got vector of length %d, want %d columns", len(v), m.cols)
	}
	out := make([]gf.Element, m.rows)
	for i := 0; i < m.rows; i++ {
		acc := m.field.Zero()
		base := i * m.cols
		for j := 0; j < m.cols; j++ {
			acc = m.field.Add(acc, m.field.Mul(m.data[base+j], v[j]))
		}
		out[i] = acc
	}
	return out, nil
}

// SliceRows returns the sub-matrix spanning rows [from, to).
func (m *Matrix) SliceRows(from, to int) *Matrix {
	out := Zero(m.field, to-from, m.cols)
	copy(out.data, m.data[from*m.cols:to*m.cols])
	return out
}
