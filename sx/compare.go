// Package sx: comparisons, boolean combinators, and structural equivalence.
//
// Comparison results are expressions over {0, 1}: a>=b lowers onto a step
// node over a-b, the remaining order comparisons derive from it by swap and
// negation, and the boolean combinators are arithmetic over those 0/1
// expressions. None of them allocates beyond the single lowered node.
package sx

// DefaultEquivalenceDepth bounds the structural recursion of Equivalent.
// A depth of one matches one operation layer plus an identity check on the
// operands, which is what the rewrite rules need.
const DefaultEquivalenceDepth = 1

// Equivalent reports structural equivalence at DefaultEquivalenceDepth.
func (x Expr) Equivalent(y Expr) bool {
	return x.EquivalentDepth(y, DefaultEquivalenceDepth)
}

// EquivalentDepth reports whether x and y compute the same value, judged
// structurally: identical nodes are equivalent; operation nodes with the
// same tag recurse into their operands (trying the crossed pairing too for
// commutative tags) with the depth budget decreasing per level; everything
// else — including distinct constant nodes that happen to hold the same
// value — is not equivalent. Constants only compare equivalent through the
// identity check, i.e. when they share a canonical node.
func (x Expr) EquivalentDepth(y Expr, depth int) bool {
	if x.IsEqual(y) {
		return true
	}
	if depth == 0 {
		return false
	}
	if !x.IsBinary() || !y.IsBinary() || x.Op() != y.Op() {
		return false
	}
	if x.n.ndeps == 1 {
		return x.Dep(0).EquivalentDepth(y.Dep(0), depth-1)
	}
	if x.Dep(0).EquivalentDepth(y.Dep(0), depth-1) &&
		x.Dep(1).EquivalentDepth(y.Dep(1), depth-1) {
		return true
	}
	return x.Op().Commutative() &&
		x.Dep(0).EquivalentDepth(y.Dep(1), depth-1) &&
		x.Dep(1).EquivalentDepth(y.Dep(0), depth-1)
}

// Ge returns the 0/1 expression for x >= y. Two constants compare
// numerically without touching the graph (NaN on either side yields 0).
// Otherwise the difference x-y decides the result: a perfect square or
// absolute value is always nonnegative (fold to 1), a constant difference
// evaluates numerically, anything else lowers to a step node over the
// difference.
func (x Expr) Ge(y Expr) Expr {
	if x.IsConstant() && y.IsConstant() {
		// Compare directly, not via the difference: inf-inf is NaN but
		// inf >= inf holds.
		if x.Value() >= y.Value() {
			return One()
		}
		return Zero()
	}
	d := x.Sub(y)
	defer d.Free()
	switch {
	case d.IsSquared() || d.IsOp(OpFabs):
		return One()
	case d.IsConstant():
		if d.Value() >= 0 {
			return One()
		}
		return Zero()
	default:
		return newOpNode(OpStep, d)
	}
}

// Le returns the 0/1 expression for x <= y.
func (x Expr) Le(y Expr) Expr {
	return y.Ge(x)
}

// Lt returns the 0/1 expression for x < y, built as !(x >= y).
func (x Expr) Lt(y Expr) Expr {
	g := x.Ge(y)
	r := g.Not()
	g.Free()
	return r
}

// Gt returns the 0/1 expression for x > y, built as !(x <= y).
func (x Expr) Gt(y Expr) Expr {
	l := x.Le(y)
	r := l.Not()
	l.Free()
	return r
}

// Eq returns the 0/1 expression for x == y. Identical handles fold to 1
// (which also covers two handles on the same canonical constant); distinct
// constants fold to 0; anything else allocates an equality node.
func (x Expr) Eq(y Expr) Expr {
	if x.IsEqual(y) {
		return One()
	}
	if x.IsConstant() && y.IsConstant() {
		return Zero()
	}
	return newOpNode(OpEquality, x, y)
}

// Ne returns the 0/1 expression for x != y, built as !(x == y).
func (x Expr) Ne(y Expr) Expr {
	e := x.Eq(y)
	r := e.Not()
	e.Free()
	return r
}

// Not returns the boolean negation 1-x of a 0/1 expression.
func (x Expr) Not() Expr {
	return oneH.Sub(x)
}

// And returns the boolean conjunction of two 0/1 expressions, built as
// x+y >= 2.
func (x Expr) And(y Expr) Expr {
	s := x.Add(y)
	r := s.Ge(twoH)
	s.Free()
	return r
}

// Or returns the boolean disjunction of two 0/1 expressions, built by
// De Morgan as !(!x && !y).
func (x Expr) Or(y Expr) Expr {
	nx := x.Not()
	ny := y.Not()
	a := nx.And(ny)
	nx.Free()
	ny.Free()
	r := a.Not()
	a.Free()
	return r
}
