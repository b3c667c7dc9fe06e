// Package sx implements the scalar symbolic-expression core: an immutable,
// reference-counted DAG of expression nodes with eager algebraic
// simplification applied at construction time.
//
// The expression graph:
//
//   - Leaf nodes are symbolic atoms (NewSymbol) and constants (NewInt,
//     NewReal). The values 0, 1, 2, -1, NaN and ±infinity are canonical
//     process-wide singletons; every other constant is interned in an
//     append-only cache, so a numeric value has at most one live node.
//   - Operation nodes (add, mul, sqrt, step, ...) hold an Op tag and one or
//     two operand handles. Once constructed, a node never changes: the graph
//     is a DAG with no cycles by construction.
//   - Expr is the value-semantic handle every caller manipulates. Handles
//     own references; see the lifecycle rules in sx.go (constructors and
//     operations return owned handles, Clone shares, Free releases, Dep
//     borrows).
//
// Eager simplification:
//
// Every arithmetic, transcendental and comparison operation runs an ordered
// rewrite chain before allocating. A matching rule either returns an
// existing handle or folds to a canonical constant — never both allocating
// and simplifying. This keeps the graph minimal without a separate
// simplification pass:
//
//	x := sx.NewSymbol("x")
//	zero := sx.Zero()
//	sum := x.Add(zero)        // sum shares x's node, no allocation
//	diff := x.Sub(x)          // folds to the 0 singleton
//	sq := x.Pow(sx.NewInt(4)) // two multiplications, not three
//
// Comparisons lower onto step/equality nodes over 0/1-valued expressions,
// and boolean combinators are arithmetic over those (see compare.go).
//
// Concurrency model: graph construction is single-threaded by design.
// Reference counts and the temp scratch field are plain ints; only the
// constant-interning caches take a mutex, so that the single allocation path
// stays coherent if reads happen elsewhere. Confine construction to one
// goroutine or add external synchronization.
//
// Errors: the three sentinels ErrArityMismatch, ErrTypeMismatch and
// ErrInvalidIndex report caller contract violations and are raised by panic
// with the sentinel wrapped in context; match with errors.Is on the
// recovered value. Division by the zero node is not an error — it folds to
// the NaN singleton.
package sx
