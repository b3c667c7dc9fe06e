// SPDX-License-Identifier: MIT

// Package matrix provides the dense container over scalar symbolic
// expressions that equation builders compose: a row-major matrix whose
// entries are sx.Expr handles, with elementwise arithmetic delegating every
// cell to the scalar engine's rewrite chains.
//
// Shape model:
//
//   - NewDense(r, c) builds an r×c matrix of canonical zeros.
//   - FromScalar(x) is the scalar→1×1 conversion used when a scalar meets a
//     matrix operand.
//   - Elementwise operations (Add, Sub, Mul, Div, Fmin, Fmax, Constpow)
//     require matching shapes, except that a 1×1 operand broadcasts against
//     any shape. There is no general broadcasting.
//
// Ownership: entries are owned handles. Set releases the entry it replaces,
// Clone clones every entry (sharing the underlying nodes), and Free releases
// the whole matrix. At returns a borrowed view, mirroring sx.Expr.Dep.
//
// Errors: ErrBadShape, ErrOutOfRange, ErrDimensionMismatch and ErrNilMatrix
// are returned (never panicked) and matched with errors.Is.
package matrix
