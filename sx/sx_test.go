// Package sx_test verifies handle lifecycle, canonical constants, and the
// caller-contract sentinels.
package sx_test

import (
	"errors"
	"math"
	"testing"

	"github.com/joycejAGMT/casadi/sx"
	"github.com/stretchr/testify/require"
)

// mustPanicWith asserts that fn panics with an error matching sentinel.
func mustPanicWith(t *testing.T, sentinel error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value must be an error, got %T", r)
		require.True(t, errors.Is(err, sentinel), "panic %v must match %v", err, sentinel)
	}()
	fn()
}

func TestSingletonCanonicalization(t *testing.T) {
	for _, v := range []float64{0, 1, 2, -1} {
		a := sx.NewReal(v)
		b := sx.NewReal(v)
		c := sx.NewInt(int(v))
		require.True(t, a.IsEqual(b), "NewReal(%v) must be canonical", v)
		require.True(t, a.IsEqual(c), "NewInt(%v) must share the same node", v)
		a.Free()
		b.Free()
		c.Free()
	}

	z := sx.Zero()
	z2 := sx.NewReal(0)
	require.True(t, z.IsEqual(z2))
	require.True(t, z.IsZero())
	z.Free()
	z2.Free()

	n := sx.NewReal(math.NaN())
	require.True(t, n.IsNan())
	n2 := sx.NaN()
	require.True(t, n.IsEqual(n2))
	n.Free()
	n2.Free()

	p := sx.NewReal(math.Inf(1))
	require.True(t, p.IsInf())
	m := sx.NewReal(math.Inf(-1))
	require.True(t, m.IsMinusInf())
	p.Free()
	m.Free()
}

func TestConstantInterning(t *testing.T) {
	a := sx.NewInt(42)
	before := sx.LiveNodes()
	b := sx.NewInt(42)
	require.True(t, a.IsEqual(b), "equal integers must share one node")
	require.Equal(t, before, sx.LiveNodes(), "second construction must not allocate")

	r := sx.NewReal(3.25)
	mid := sx.LiveNodes()
	r2 := sx.NewReal(3.25)
	require.True(t, r.IsEqual(r2))
	require.Equal(t, mid, sx.LiveNodes())

	a.Free()
	b.Free()
	r.Free()
	r2.Free()
}

func TestSymbolsNeverInterned(t *testing.T) {
	x := sx.NewSymbol("x")
	y := sx.NewSymbol("x")
	require.False(t, x.IsEqual(y), "same-named symbols are distinct nodes")
	require.True(t, x.IsSymbolic())
	require.Equal(t, "x", x.Name())
	x.Free()
	y.Free()
}

func TestRefcountLifecycle(t *testing.T) {
	before := sx.LiveNodes()

	x := sx.NewSymbol("x")
	require.Equal(t, before+1, sx.LiveNodes())

	c := x.Clone()
	require.Equal(t, before+1, sx.LiveNodes(), "Clone shares the node")
	require.True(t, c.IsEqual(x))

	x.Free()
	require.Equal(t, before+1, sx.LiveNodes(), "one handle still live")

	c.Free()
	require.Equal(t, before, sx.LiveNodes(), "last release retires the node")
}

func TestFreeCollapsesUnsharedChain(t *testing.T) {
	before := sx.LiveNodes()

	x := sx.NewSymbol("x")
	y := sx.NewSymbol("y")
	s := x.Add(y) // ADD node referencing x and y
	require.Equal(t, before+3, sx.LiveNodes())

	x.Free()
	y.Free()
	require.Equal(t, before+3, sx.LiveNodes(), "operands kept alive by the sum")

	s.Free()
	require.Equal(t, before, sx.LiveNodes(), "whole chain reclaimed")
}

func TestAssign(t *testing.T) {
	before := sx.LiveNodes()

	x := sx.NewSymbol("x")
	y := sx.NewSymbol("y")

	// Self-assignment short-circuits.
	x.Assign(x)
	require.Equal(t, before+2, sx.LiveNodes())

	// Reassignment releases the old node.
	x.Assign(y)
	require.Equal(t, before+1, sx.LiveNodes(), "old x node retired")
	require.True(t, x.IsEqual(y))

	x.Free()
	y.Free()
	require.Equal(t, before, sx.LiveNodes())
}

func TestAssignNoFree(t *testing.T) {
	before := sx.LiveNodes()

	x := sx.NewSymbol("x")
	y := sx.NewSymbol("y")

	raw := x.AssignNoFree(y)
	require.NotNil(t, raw)
	require.True(t, x.IsEqual(y), "handle now shares y's node")
	require.Equal(t, before+2, sx.LiveNodes(), "old node survives the move")

	sx.ReleaseNode(raw)
	require.Equal(t, before+1, sx.LiveNodes(), "caller disposal retires it")

	x.Free()
	y.Free()
	require.Equal(t, before, sx.LiveNodes())
}

func TestPredicatesAndAccessors(t *testing.T) {
	x := sx.NewSymbol("x")
	defer x.Free()
	c := sx.NewReal(2.5)
	defer c.Free()
	s := x.Add(x)
	defer s.Free()

	require.True(t, x.IsLeaf())
	require.True(t, c.IsLeaf())
	require.False(t, s.IsLeaf())
	require.True(t, s.IsBinary())
	require.True(t, s.IsOp(sx.OpAdd))
	require.False(t, s.IsOp(sx.OpMul))
	require.True(t, s.IsCommutative())
	require.True(t, s.IsDoubled())

	require.True(t, c.IsConstant())
	require.False(t, c.IsInteger())
	require.Equal(t, 2.5, c.Value())

	i := sx.NewInt(7)
	defer i.Free()
	require.True(t, i.IsInteger())
	require.Equal(t, 7, i.IntValue())
	require.Equal(t, 7.0, i.Value())

	require.Equal(t, 2, s.NDeps())
	require.True(t, s.Dep(0).IsEqual(x))
	require.True(t, s.Dep(1).IsEqual(x))
	require.Equal(t, sx.OpNone, x.Op())
}

func TestContractViolationsPanic(t *testing.T) {
	x := sx.NewSymbol("x")
	defer x.Free()
	s := x.Sin()
	defer s.Free()

	mustPanicWith(t, sx.ErrTypeMismatch, func() { x.Value() })
	mustPanicWith(t, sx.ErrTypeMismatch, func() { s.Name() })
	mustPanicWith(t, sx.ErrTypeMismatch, func() {
		c := sx.NewReal(2.5)
		defer c.Free()
		c.IntValue()
	})

	mustPanicWith(t, sx.ErrArityMismatch, func() { x.NDeps() })
	mustPanicWith(t, sx.ErrArityMismatch, func() { x.IsCommutative() })
	mustPanicWith(t, sx.ErrArityMismatch, func() { x.Dep(0) })
	mustPanicWith(t, sx.ErrArityMismatch, func() { s.Dep(1) })

	mustPanicWith(t, sx.ErrInvalidIndex, func() { s.Dep(2) })
	mustPanicWith(t, sx.ErrInvalidIndex, func() { s.Dep(-1) })
}

func TestHashIdentity(t *testing.T) {
	x := sx.NewSymbol("x")
	defer x.Free()
	y := sx.NewSymbol("y")
	defer y.Free()

	c := x.Clone()
	defer c.Free()
	require.Equal(t, x.Hash(), c.Hash(), "shared node, same hash")
	require.NotEqual(t, x.Hash(), y.Hash(), "distinct nodes, distinct hash")
	require.NotZero(t, x.Hash())
}

func TestTempScratchField(t *testing.T) {
	x := sx.NewSymbol("x")
	defer x.Free()

	require.Equal(t, 0, x.Temp())
	x.SetTemp(41)
	require.Equal(t, 41, x.Temp())

	c := x.Clone()
	defer c.Free()
	require.Equal(t, 41, c.Temp(), "temp lives on the node, not the handle")
}
