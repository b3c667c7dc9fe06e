// SPDX-License-Identifier: MIT
// Package matrix: elementwise kernels.
// One private kernel (ewBinary) carries the loop, the shape validation, and
// the 1×1 scalar promotion; the public operations are thin wrappers binding
// it to the scalar engine's rewrite chains. Loop order is a fixed row-major
// scan, so entry construction order — and with it node identity — is
// deterministic for a given pair of operands.

package matrix

import "github.com/joycejAGMT/casadi/sx"

// ewBinary applies f entrywise over a and b and returns a fresh matrix.
// Shapes must match, or either operand may be 1×1 and broadcasts against the
// other. f follows the scalar ownership contract: it returns an owned handle
// which the result matrix keeps.
func ewBinary(op string, a, b *Dense, f func(x, y sx.Expr) sx.Expr) (*Dense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(op, ErrNilMatrix)
	}
	rows, cols := a.r, a.c
	if a.IsScalar() {
		rows, cols = b.r, b.c
	}
	sameShape := a.r == b.r && a.c == b.c
	if !sameShape && !a.IsScalar() && !b.IsScalar() {
		return nil, matrixErrorf(op, ErrDimensionMismatch)
	}

	data := make([]sx.Expr, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			x := a.entryFor(i, j)
			y := b.entryFor(i, j)
			data[i*cols+j] = f(x, y)
		}
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// entryFor returns the borrowed entry serving position (i, j), collapsing
// onto the single entry when m is 1×1 (broadcast).
func (m *Dense) entryFor(i, j int) sx.Expr {
	if m.IsScalar() {
		return m.data[0]
	}

	return m.data[i*m.c+j]
}

// Add returns the elementwise sum a+b.
func (a *Dense) Add(b *Dense) (*Dense, error) {
	return ewBinary("Add", a, b, sx.Expr.Add)
}

// Sub returns the elementwise difference a-b.
func (a *Dense) Sub(b *Dense) (*Dense, error) {
	return ewBinary("Sub", a, b, sx.Expr.Sub)
}

// Mul returns the elementwise product a*b.
func (a *Dense) Mul(b *Dense) (*Dense, error) {
	return ewBinary("Mul", a, b, sx.Expr.Mul)
}

// Div returns the elementwise quotient a/b. Division by a zero entry is
// defined by the scalar engine: that entry folds to the NaN singleton.
func (a *Dense) Div(b *Dense) (*Dense, error) {
	return ewBinary("Div", a, b, sx.Expr.Div)
}

// Fmin returns the elementwise minimum of a and b.
func (a *Dense) Fmin(b *Dense) (*Dense, error) {
	return ewBinary("Fmin", a, b, sx.Expr.Fmin)
}

// Fmax returns the elementwise maximum of a and b.
func (a *Dense) Fmax(b *Dense) (*Dense, error) {
	return ewBinary("Fmax", a, b, sx.Expr.Fmax)
}

// Constpow returns the elementwise constant power a^n.
func (a *Dense) Constpow(n *Dense) (*Dense, error) {
	return ewBinary("Constpow", a, n, sx.Expr.Constpow)
}

// Map applies f to every entry and returns a fresh matrix, preserving the
// shape. f follows the scalar ownership contract.
func (m *Dense) Map(f func(sx.Expr) sx.Expr) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf("Map", ErrNilMatrix)
	}
	data := make([]sx.Expr, len(m.data))
	for i, e := range m.data {
		data[i] = f(e)
	}

	return &Dense{r: m.r, c: m.c, data: data}, nil
}
