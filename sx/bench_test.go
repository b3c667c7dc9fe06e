// Package sx_test: construction and rendering benchmarks.
package sx_test

import (
	"testing"

	"github.com/joycejAGMT/casadi/sx"
)

// BenchmarkAddChain measures raw operation-node construction and release.
func BenchmarkAddChain(b *testing.B) {
	x := sx.NewSymbol("x")
	defer x.Free()
	y := sx.NewSymbol("y")
	defer y.Free()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := x.Add(y)
		s.Free()
	}
}

// BenchmarkSimplifiedAdd measures the fast path where a rule fires and no
// node is allocated.
func BenchmarkSimplifiedAdd(b *testing.B) {
	x := sx.NewSymbol("x")
	defer x.Free()
	zero := sx.Zero()
	defer zero.Free()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := x.Add(zero)
		s.Free()
	}
}

// BenchmarkPow100 measures binary exponentiation at the chain cap.
func BenchmarkPow100(b *testing.B) {
	x := sx.NewSymbol("x")
	defer x.Free()
	n := sx.NewInt(100)
	defer n.Free()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := x.Pow(n)
		p.Free()
	}
}

// BenchmarkStringDeepChain measures budgeted rendering of a shared chain.
func BenchmarkStringDeepChain(b *testing.B) {
	e := sx.NewSymbol("x")
	for i := 0; i < 12; i++ {
		next := e.Mul(e)
		e.Free()
		e = next
	}
	defer e.Free()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.String()
	}
}
