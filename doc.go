// Package casadi is your in-memory playground for building, simplifying
// and printing scalar symbolic expressions — from atomic symbols and
// interned constants to full expression DAGs with reference-counted
// lifetimes.
//
// 🚀 What is casadi/sx?
//
//	A small, eager symbolic kernel that brings together:
//		• Scalar atoms: symbols, interned integer & real constants, canonical
//		  singletons (0, 1, 2, -1, nan, ±inf)
//		• Operations: arithmetic, transcendentals, comparisons, conditionals —
//		  each an ordered rewrite chain that simplifies at construction time
//		• Sharing: expressions form a DAG; identical subtrees are shared, and
//		  reference counting retires nodes the moment they go unused
//		• Structural equivalence with a bounded recursion depth
//		• Budgeted printing that renders huge shared graphs without blowing up
//
// ✨ Why choose casadi?
//
//   - Explicit ownership – every operation returns an owned handle; Clone
//     shares, Free releases, borrowed views never outlive their owner
//   - No simplify pass – identities collapse eagerly, so what you build is
//     already canonical
//   - Pure Go core – the kernel has no third-party dependencies
//   - Composable – the matrix package lifts every scalar operation to dense
//     matrices elementwise
//
// Under the hood, everything is organized under three packages:
//
//	sx/         — the scalar expression engine: nodes, handles, rewrite chains
//	matrix/     — dense matrices of scalar expressions + elementwise ops
//	cmd/sxdemo/ — a small CLI demonstrating simplification and printing
//
// Quick example:
//
//	x := sx.NewSymbol("x")
//	defer x.Free()
//	zero := sx.Zero()
//	defer zero.Free()
//	y := x.Add(zero) // collapses: y shares x's node
//	defer y.Free()
//	fmt.Println(y)   // prints "x"
//
//	go get github.com/joycejAGMT/casadi/sx
package casadi
