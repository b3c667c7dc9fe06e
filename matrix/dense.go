// SPDX-License-Identifier: MIT
// Package matrix: the Dense container.
// Dense is a row-major matrix of scalar expressions, storing entry handles in
// a flat slice. Every entry is an OWNED sx.Expr handle: the matrix retains
// what it stores and releases what it replaces, so matrix lifetime composes
// with the scalar reference-counting rules (Free the matrix, and every
// entry's reference is released).

package matrix

import (
	"strings"

	"github.com/joycejAGMT/casadi/sx"
)

// Dense is a row-major matrix of scalar expressions.
// r is rows, c is columns, and data holds r*c owned entry handles.
type Dense struct {
	r, c int
	data []sx.Expr
}

// NewDense creates an r×c Dense with every entry set to the canonical zero.
// Returns ErrBadShape when rows or cols are not positive.
// Complexity: O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf("NewDense", ErrBadShape)
	}
	data := make([]sx.Expr, rows*cols)
	for i := range data {
		data[i] = sx.Zero()
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// FromScalar wraps a scalar expression as a 1×1 matrix, the conversion used
// when a scalar meets a matrix operand. The matrix takes its own reference;
// the caller keeps ownership of x.
func FromScalar(x sx.Expr) *Dense {
	return &Dense{r: 1, c: 1, data: []sx.Expr{x.Clone()}}
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// IsScalar reports whether m is 1×1, the shape that promotes against any
// operand in the elementwise operations.
func (m *Dense) IsScalar() bool { return m.r == 1 && m.c == 1 }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns a BORROWED handle to the entry at (row, col): read it or Clone
// it, but do not Free it — the matrix keeps the reference.
func (m *Dense) At(row, col int) (sx.Expr, error) {
	if m == nil {
		return sx.Expr{}, matrixErrorf("At", ErrNilMatrix)
	}
	idx, err := m.indexOf(row, col)
	if err != nil {
		return sx.Expr{}, matrixErrorf("At", err)
	}

	return m.data[idx], nil
}

// Set stores v at (row, col), releasing the entry it replaces. The matrix
// takes its own reference; the caller keeps ownership of v.
func (m *Dense) Set(row, col int, v sx.Expr) error {
	if m == nil {
		return matrixErrorf("Set", ErrNilMatrix)
	}
	idx, err := m.indexOf(row, col)
	if err != nil {
		return matrixErrorf("Set", err)
	}
	old := m.data[idx]
	m.data[idx] = v.Clone()
	old.Free()

	return nil
}

// Clone returns a deep copy of the shape with shared entries: every entry
// handle is cloned, so both matrices own one reference each and the
// underlying expression nodes are shared, never duplicated.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	data := make([]sx.Expr, len(m.data))
	for i, e := range m.data {
		data[i] = e.Clone()
	}

	return &Dense{r: m.r, c: m.c, data: data}
}

// Free releases every entry handle. The matrix must not be used afterwards.
func (m *Dense) Free() {
	for i := range m.data {
		m.data[i].Free()
	}
	m.data = nil
}

// String renders the matrix row by row with the process-wide print budget.
func (m *Dense) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i := 0; i < m.r; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(m.data[i*m.c+j].String())
		}
	}
	b.WriteString("]")

	return b.String()
}
