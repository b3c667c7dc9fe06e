// Package sx_test verifies the transcendental shortcuts.
package sx_test

import (
	"testing"

	"github.com/joycejAGMT/casadi/sx"
	"github.com/stretchr/testify/require"
)

func TestZeroArgumentShortcuts(t *testing.T) {
	zero := sx.Zero()
	defer zero.Free()

	withoutAllocating(t, func() {
		s := zero.Sin()
		require.True(t, s.IsZero())
		s.Free()

		c := zero.Cos()
		require.True(t, c.IsOne())
		c.Free()

		ta := zero.Tan()
		require.True(t, ta.IsZero())
		ta.Free()

		sh := zero.Sinh()
		require.True(t, sh.IsZero())
		sh.Free()

		ch := zero.Cosh()
		require.True(t, ch.IsOne())
		ch.Free()

		th := zero.Tanh()
		require.True(t, th.IsZero())
		th.Free()
	})

	// Nonzero arguments allocate the unary node.
	x := sx.NewSymbol("x")
	defer x.Free()
	s := x.Sin()
	defer s.Free()
	require.True(t, s.IsOp(sx.OpSin))
	require.True(t, s.Dep(0).IsEqual(x))
}

func TestSqrt(t *testing.T) {
	x := sx.NewSymbol("x")
	defer x.Free()
	zero := sx.Zero()
	defer zero.Free()
	one := sx.One()
	defer one.Free()

	withoutAllocating(t, func() {
		r := zero.Sqrt()
		require.True(t, r.IsZero())
		r.Free()

		r2 := one.Sqrt()
		require.True(t, r2.IsOne())
		r2.Free()
	})

	sq := x.Mul(x)
	defer sq.Free()
	r := sq.Sqrt() // sqrt(x*x) -> |x|
	defer r.Free()
	require.True(t, r.IsOp(sx.OpFabs))
	require.True(t, r.Dep(0).IsEqual(x))

	plain := x.Sqrt()
	defer plain.Free()
	require.True(t, plain.IsOp(sx.OpSqrt))
}

func TestFabs(t *testing.T) {
	x := sx.NewSymbol("x")
	defer x.Free()

	c := sx.NewReal(3.5)
	defer c.Free()
	withoutAllocating(t, func() {
		// Nonnegative constants pass through.
		r := c.Fabs()
		require.True(t, r.IsEqual(c))
		r.Free()
	})

	a := x.Fabs()
	defer a.Free()
	require.True(t, a.IsOp(sx.OpFabs))

	sq := x.Mul(x)
	defer sq.Free()
	withoutAllocating(t, func() {
		// Idempotent on absolute values and perfect squares.
		r := a.Fabs()
		require.True(t, r.IsEqual(a))
		r.Free()

		r2 := sq.Fabs()
		require.True(t, r2.IsEqual(sq))
		r2.Free()
	})

	// A negative constant still needs the node.
	m := sx.NewReal(-3.5)
	defer m.Free()
	r := m.Fabs()
	defer r.Free()
	require.True(t, r.IsOp(sx.OpFabs))
}

func TestSign(t *testing.T) {
	for _, tc := range []struct {
		in   int
		want func(sx.Expr) bool
	}{
		{in: -7, want: sx.Expr.IsMinusOne},
		{in: 0, want: sx.Expr.IsZero},
		{in: 42, want: sx.Expr.IsOne},
	} {
		c := sx.NewInt(tc.in) // may intern a fresh constant node
		withoutAllocating(t, func() {
			s := c.Sign()
			require.True(t, tc.want(s), "sign(%v)", tc.in)
			s.Free()
		})
		c.Free()
	}

	n := sx.NaN()
	defer n.Free()
	withoutAllocating(t, func() {
		s := n.Sign()
		require.True(t, s.IsNan())
		s.Free()
	})

	x := sx.NewSymbol("x")
	defer x.Free()
	s := x.Sign()
	defer s.Free()
	require.True(t, s.IsOp(sx.OpSign))
}

func TestLog10(t *testing.T) {
	x := sx.NewSymbol("x")
	defer x.Free()

	l := x.Log10()
	defer l.Free()

	// log10(x) = (1/ln 10) * log(x), constant canonicalized left.
	require.True(t, l.IsOp(sx.OpMul))
	require.True(t, l.Dep(0).IsConstant())
	require.True(t, l.Dep(1).IsOp(sx.OpLog))
}

func TestPlainUnaries(t *testing.T) {
	x := sx.NewSymbol("x")
	defer x.Free()

	for _, tc := range []struct {
		op    sx.Op
		build func(sx.Expr) sx.Expr
	}{
		{op: sx.OpExp, build: sx.Expr.Exp},
		{op: sx.OpLog, build: sx.Expr.Log},
		{op: sx.OpAsin, build: sx.Expr.Asin},
		{op: sx.OpAcos, build: sx.Expr.Acos},
		{op: sx.OpAtan, build: sx.Expr.Atan},
		{op: sx.OpFloor, build: sx.Expr.Floor},
		{op: sx.OpCeil, build: sx.Expr.Ceil},
		{op: sx.OpErf, build: sx.Expr.Erf},
		{op: sx.OpErfinv, build: sx.Expr.Erfinv},
	} {
		e := tc.build(x)
		require.True(t, e.IsOp(tc.op), "op %v", tc.op)
		require.True(t, e.Dep(0).IsEqual(x))
		e.Free()
	}
}
