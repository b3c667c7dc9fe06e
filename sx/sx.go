// Package sx: the Expr handle.
//
// Expr is the value-semantic, reference-counted wrapper that all client code
// manipulates. Go has no destructors, so the lifecycle is explicit:
//
//   - every constructor and every arithmetic operation returns an OWNED
//     handle — the caller must eventually Free it (or Assign over it);
//   - Clone shares the node and takes a new reference;
//   - Dep returns a BORROWED view of an operand — read it, Clone it to keep
//     it, but never Free it.
//
// A node is retired the instant its count reaches zero; there is no deferred
// collection and, because operands always point at previously constructed
// immutable nodes, no cycles.
package sx

import "math"

// Expr is a handle to exactly one node of the expression graph.
// The zero value is invalid; obtain handles from NewSymbol, NewInt, NewReal,
// the singleton accessors, or the arithmetic operations.
type Expr struct {
	n *Node
}

// NewSymbol returns a fresh symbolic atom named name. Symbols are never
// interned: two calls with the same name yield distinct nodes.
func NewSymbol(name string) Expr {
	n := allocNode(kindSymbol, OpNone)
	n.name = name
	retain(n)
	return Expr{n: n}
}

// NewInt returns the canonical handle for the integer value v.
// The values 0, 1, 2 and -1 map to the shared singletons; every other value
// is interned, so repeated construction never allocates a second node.
func NewInt(v int) Expr {
	switch v {
	case 0:
		return zeroH.Clone()
	case 1:
		return oneH.Clone()
	case 2:
		return twoH.Clone()
	case -1:
		return minusOneH.Clone()
	default:
		return internInt(v)
	}
}

// NewReal classifies v and returns its canonical handle: exact integers go
// through NewInt (hence the singletons), NaN and the infinities map to their
// singletons, and every other real is interned.
func NewReal(v float64) Expr {
	if math.IsNaN(v) {
		return nanH.Clone()
	}
	if math.IsInf(v, 1) {
		return infH.Clone()
	}
	if math.IsInf(v, -1) {
		return minusInfH.Clone()
	}
	// Exact-integer check; the range guard keeps the float→int conversion
	// defined for huge magnitudes, which are interned as reals instead.
	if v == math.Trunc(v) && v >= math.MinInt32 && v <= math.MaxInt32 {
		return NewInt(int(v))
	}
	return internReal(v)
}

// Zero returns an owned handle to the canonical 0 node.
func Zero() Expr { return zeroH.Clone() }

// One returns an owned handle to the canonical 1 node.
func One() Expr { return oneH.Clone() }

// Two returns an owned handle to the canonical 2 node.
func Two() Expr { return twoH.Clone() }

// MinusOne returns an owned handle to the canonical -1 node.
func MinusOne() Expr { return minusOneH.Clone() }

// NaN returns an owned handle to the canonical not-a-number node.
func NaN() Expr { return nanH.Clone() }

// Inf returns an owned handle to the canonical +infinity node.
func Inf() Expr { return infH.Clone() }

// MinusInf returns an owned handle to the canonical -infinity node.
func MinusInf() Expr { return minusInfH.Clone() }

// Clone returns a new owned handle sharing x's node. O(1).
func (x Expr) Clone() Expr {
	retain(x.n)
	return Expr{n: x.n}
}

// Free releases x's reference. If it was the last one the node is retired
// immediately, releasing its operand handles in turn. Freeing the zero-value
// handle is a no-op, so Free is safe after AssignNoFree-style moves.
func (x *Expr) Free() {
	if x.n != nil {
		release(x.n)
		x.n = nil
	}
}

// Assign redirects x to y's node: the old reference is released (retiring
// the old node at zero) and a new reference to y's node is taken. When both
// handles already share a node Assign short-circuits, avoiding a
// decrement/increment pair that could retire the node mid-flight.
func (x *Expr) Assign(y Expr) {
	if x.n == y.n {
		return
	}
	old := x.n
	x.n = y.n
	retain(x.n)
	if old != nil {
		release(old)
	}
}

// AssignNoFree redirects x to y's node like Assign, but never retires the
// previously held node: the handle's old reference travels with the returned
// raw node, and the caller becomes responsible for its eventual disposal via
// ReleaseNode. This is an explicit ownership transfer, not a leak — it lets
// a caller keep a node alive slightly longer than the handle's own lifetime
// would allow.
func (x *Expr) AssignNoFree(y Expr) *Node {
	old := x.n // the handle's reference now belongs to the caller
	x.n = y.n
	retain(x.n)
	return old
}

// IsEqual reports node identity: both handles reference the same node
// object. O(1). Weaker than Equivalent, stronger than numeric equality.
func (x Expr) IsEqual(y Expr) bool {
	return x.n == y.n
}

// Hash returns an allocation-order identity for x's node. It is stable only
// within a process run and must never be persisted or compared across runs.
func (x Expr) Hash() uint64 {
	if x.n == nil {
		return 0
	}
	return x.n.id
}

// --- Predicates (all O(1), node-local) ---

// IsLeaf reports whether x is a symbol or a constant.
func (x Expr) IsLeaf() bool {
	if x.n == nil {
		return true
	}
	return x.n.kind != kindOperation
}

// IsConstant reports whether x is any constant variant.
func (x Expr) IsConstant() bool { return x.n.isConstant() }

// IsInteger reports whether x is an integer-valued constant.
func (x Expr) IsInteger() bool { return x.n.isInteger() }

// IsSymbolic reports whether x is a named symbolic atom.
func (x Expr) IsSymbolic() bool { return x.n.kind == kindSymbol }

// IsBinary reports whether x is an operation node (one or two operands).
func (x Expr) IsBinary() bool { return x.n.kind == kindOperation }

// IsZero reports whether x is the canonical 0 node.
func (x Expr) IsZero() bool { return x.n.kind == kindZero }

// IsOne reports whether x is the canonical 1 node.
func (x Expr) IsOne() bool { return x.n.kind == kindOne }

// IsMinusOne reports whether x is the canonical -1 node.
func (x Expr) IsMinusOne() bool { return x.n.kind == kindMinusOne }

// IsNan reports whether x is the canonical NaN node.
func (x Expr) IsNan() bool { return x.n.kind == kindNaN }

// IsInf reports whether x is the canonical +infinity node.
func (x Expr) IsInf() bool { return x.n.kind == kindInf }

// IsMinusInf reports whether x is the canonical -infinity node.
func (x Expr) IsMinusInf() bool { return x.n.kind == kindMinusInf }

// IsOp reports whether x is an operation node tagged op.
func (x Expr) IsOp(op Op) bool {
	return x.IsBinary() && x.n.op == op
}

// IsDoubled reports whether x is e+e for structurally equivalent e.
func (x Expr) IsDoubled() bool {
	return x.IsOp(OpAdd) && x.Dep(0).Equivalent(x.Dep(1))
}

// IsSquared reports whether x is e*e for structurally equivalent e.
func (x Expr) IsSquared() bool {
	return x.IsOp(OpMul) && x.Dep(0).Equivalent(x.Dep(1))
}

// IsCommutative reports whether x's operation treats its operands
// symmetrically. Panics with ErrArityMismatch on a non-operation node.
func (x Expr) IsCommutative() bool {
	if !x.IsBinary() {
		failf("Expr.IsCommutative", ErrArityMismatch)
	}
	return x.n.op.Commutative()
}

// --- Accessors ---

// Op returns the operation tag of x (OpNone for leaves).
func (x Expr) Op() Op { return x.n.op }

// Name returns the symbol name. Panics with ErrTypeMismatch unless x is
// symbolic.
func (x Expr) Name() string {
	if !x.IsSymbolic() {
		failf("Expr.Name", ErrTypeMismatch)
	}
	return x.n.name
}

// Value returns the numeric value of a constant. Panics with ErrTypeMismatch
// on any other variant.
func (x Expr) Value() float64 {
	if !x.IsConstant() {
		failf("Expr.Value", ErrTypeMismatch)
	}
	return x.n.value()
}

// IntValue returns the value of an integer constant. Panics with
// ErrTypeMismatch on any other variant.
func (x Expr) IntValue() int {
	if !x.IsInteger() {
		failf("Expr.IntValue", ErrTypeMismatch)
	}
	return x.n.intValue()
}

// NDeps returns the registered arity of x's operation. Panics with
// ErrArityMismatch on a leaf.
func (x Expr) NDeps() int {
	if !x.IsBinary() {
		failf("Expr.NDeps", ErrArityMismatch)
	}
	return x.n.op.NDeps()
}

// Dep returns a borrowed handle to operand i. Panics with ErrInvalidIndex
// when i is outside {0, 1} and with ErrArityMismatch when i is within range
// but beyond the node's arity (including any i on a leaf).
//
// The returned handle shares the node's own reference: Clone it to keep it
// beyond the parent's lifetime, and never Free it directly.
func (x Expr) Dep(i int) Expr {
	if i < 0 || i > 1 {
		failf("Expr.Dep", ErrInvalidIndex)
	}
	if i >= x.n.ndeps {
		failf("Expr.Dep", ErrArityMismatch)
	}
	return x.n.dep[i]
}

// Temp returns the scratch field of x's node. The core never touches it;
// external passes (differentiation, equation sorting) use it for transient
// bookkeeping.
func (x Expr) Temp() int { return x.n.temp }

// SetTemp stores t in the scratch field of x's node.
func (x Expr) SetTemp(t int) { x.n.temp = t }
