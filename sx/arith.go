// Package sx: arithmetic construction rules.
//
// Every operation below is an ordered rewrite chain: the first matching rule
// wins, and only the final arm of each chain allocates a node. A rule may
// return an existing handle (a clone of an operand or sub-operand) or fold
// to a canonical constant, but must never wrap the result in an extra node.
// The order of the arms is load-bearing — do not reorder.
package sx

// Neg returns -x.
func (x Expr) Neg() Expr {
	switch {
	case x.IsOp(OpNeg): // -(-x) -> x
		return x.Dep(0).Clone()
	case x.IsZero():
		return Zero()
	case x.IsMinusOne():
		return One()
	case x.IsOne():
		return MinusOne()
	default:
		return newOpNode(OpNeg, x)
	}
}

// isHalfSum matches 0.5*e + 0.5*e with structurally equivalent e.
func isHalfSum(x, y Expr) bool {
	return x.IsOp(OpMul) && y.IsOp(OpMul) &&
		x.Dep(0).IsConstant() && x.Dep(0).Value() == 0.5 &&
		y.Dep(0).IsConstant() && y.Dep(0).Value() == 0.5 &&
		y.Dep(1).Equivalent(x.Dep(1))
}

// isHalvesSum matches e/2 + e/2 with structurally equivalent e.
func isHalvesSum(x, y Expr) bool {
	return x.IsOp(OpDiv) && y.IsOp(OpDiv) &&
		x.Dep(1).IsConstant() && x.Dep(1).Value() == 2 &&
		y.Dep(1).IsConstant() && y.Dep(1).Value() == 2 &&
		y.Dep(0).Equivalent(x.Dep(0))
}

// Add returns x+y.
func (x Expr) Add(y Expr) Expr {
	switch {
	case x.IsZero():
		return y.Clone()
	case y.IsZero():
		return x.Clone()
	case y.IsOp(OpNeg): // x + (-y) -> x - y
		return x.Sub(y.Dep(0))
	case x.IsOp(OpNeg): // (-x) + y -> y - x
		return y.Sub(x.Dep(0))
	case isHalfSum(x, y): // 0.5*e + 0.5*e -> e
		return x.Dep(1).Clone()
	case isHalvesSum(x, y): // e/2 + e/2 -> e
		return x.Dep(0).Clone()
	default:
		return newOpNode(OpAdd, x, y)
	}
}

// Sub returns x-y.
func (x Expr) Sub(y Expr) Expr {
	switch {
	case y.IsZero():
		return x.Clone()
	case x.IsZero():
		return y.Neg()
	case x.Equivalent(y): // x - x -> 0
		return Zero()
	case y.IsOp(OpNeg): // x - (-y) -> x + y
		return x.Add(y.Dep(0))
	default:
		return newOpNode(OpSub, x, y)
	}
}

// Mul returns x*y. A constant operand is canonicalized to the left, so the
// constant-folding patterns below only need to look at one side.
func (x Expr) Mul(y Expr) Expr {
	switch {
	case !x.IsConstant() && y.IsConstant():
		return y.Mul(x)
	case x.IsZero() || y.IsZero():
		return Zero()
	case x.IsOne():
		return y.Clone()
	case y.IsOne():
		return x.Clone()
	case y.IsMinusOne():
		return x.Neg()
	case x.IsMinusOne():
		return y.Neg()
	case y.IsOp(OpInv): // x * (1/y) -> x/y
		return x.Div(y.Dep(0))
	case x.IsOp(OpInv): // (1/x) * y -> y/x
		return y.Div(x.Dep(0))
	case x.IsConstant() && y.IsOp(OpMul) && y.Dep(0).IsConstant() &&
		x.Value()*y.Dep(0).Value() == 1: // 5 * (0.2*e) -> e
		return y.Dep(1).Clone()
	case x.IsConstant() && y.IsOp(OpDiv) && y.Dep(1).IsConstant() &&
		x.Value() == y.Dep(1).Value(): // 5 * (e/5) -> e
		return y.Dep(0).Clone()
	case x.IsOp(OpDiv) && x.Dep(1).Equivalent(y): // (a/y) * y -> a
		return x.Dep(0).Clone()
	case y.IsOp(OpDiv) && y.Dep(1).Equivalent(x): // x * (a/x) -> a
		return y.Dep(0).Clone()
	default:
		return newOpNode(OpMul, x, y)
	}
}

// Div returns x/y. Division by the zero node is defined, not an error: it
// folds to the NaN singleton.
func (x Expr) Div(y Expr) Expr {
	switch {
	case y.IsZero():
		return NaN()
	case x.IsZero():
		return Zero()
	case y.IsOne():
		return x.Clone()
	case x.Equivalent(y): // x/x -> 1
		return One()
	case x.IsDoubled() && y.IsEqual(twoH): // (e+e)/2 -> e
		return x.Dep(0).Clone()
	case x.IsOp(OpMul) && y.Equivalent(x.Dep(0)): // (e*f)/e -> f
		return x.Dep(1).Clone()
	case x.IsOp(OpMul) && y.Equivalent(x.Dep(1)): // (e*f)/f -> e
		return x.Dep(0).Clone()
	case x.IsOne(): // 1/y -> inv(y)
		return y.Inv()
	case y.IsOp(OpInv): // x/(1/y) -> x*y
		return x.Mul(y.Dep(0))
	case x.IsDoubled() && y.IsDoubled(): // (e+e)/(f+f) -> e/f
		return x.Dep(0).Div(y.Dep(0))
	case y.IsConstant() && x.IsOp(OpDiv) && x.Dep(1).IsConstant() &&
		y.Value()*x.Dep(1).Value() == 1: // (e/5)/0.2 -> e
		return x.Dep(0).Clone()
	case y.IsOp(OpMul) && y.Dep(1).Equivalent(x): // x/(c*x) -> 1/c
		return newOpNode(OpDiv, oneH, y.Dep(0))
	case x.IsOp(OpNeg) && x.Dep(0).Equivalent(y): // (-x)/x -> -1
		return MinusOne()
	case y.IsOp(OpNeg) && y.Dep(0).Equivalent(x): // x/(-x) -> -1
		return MinusOne()
	case x.IsOp(OpNeg) && y.IsOp(OpNeg) && x.Dep(0).Equivalent(y.Dep(0)): // (-x)/(-x) -> 1
		return One()
	default:
		return newOpNode(OpDiv, x, y)
	}
}

// Inv returns 1/x as an inversion node; inv(inv(x)) unwraps to x.
func (x Expr) Inv() Expr {
	if x.IsOp(OpInv) {
		return x.Dep(0).Clone()
	}
	return newOpNode(OpInv, x)
}

// Pow returns x^n. Constant exponents are resolved at construction time:
// integer exponents expand by binary exponentiation (logarithmic node count),
// magnitudes above 100 and non-integer constants become constant-power
// nodes, and 0.5 becomes sqrt.
func (x Expr) Pow(n Expr) Expr {
	if !n.IsConstant() {
		return newOpNode(OpPow, x, n)
	}
	if n.IsInteger() {
		nn := n.IntValue()
		switch {
		case nn == 0:
			return One()
		case nn > 100 || nn < -100: // cap the multiplication chain
			return newOpNode(OpConstpow, x, n)
		case nn < 0: // x^-n -> 1/x^n
			m := NewInt(-nn)
			p := x.Pow(m)
			m.Free()
			r := oneH.Div(p)
			p.Free()
			return r
		case nn%2 == 1: // odd: x * x^(n-1)
			m := NewInt(nn - 1)
			p := x.Pow(m)
			m.Free()
			r := x.Mul(p)
			p.Free()
			return r
		default: // even: (x^(n/2))^2
			m := NewInt(nn / 2)
			rt := x.Pow(m)
			m.Free()
			r := rt.Mul(rt)
			rt.Free()
			return r
		}
	}
	if n.Value() == 0.5 {
		return x.Sqrt()
	}
	return newOpNode(OpConstpow, x, n)
}

// Constpow returns a constant-power node x^n with no rewriting. The exponent
// is expected to be constant-valued at evaluation time; construction does not
// enforce it.
func (x Expr) Constpow(n Expr) Expr {
	return newOpNode(OpConstpow, x, n)
}

// Fmin returns the elementwise-minimum node fmin(x, y).
func (x Expr) Fmin(y Expr) Expr {
	return newOpNode(OpFmin, x, y)
}

// Fmax returns the elementwise-maximum node fmax(x, y).
func (x Expr) Fmax(y Expr) Expr {
	return newOpNode(OpFmax, x, y)
}

// Printme returns a diagnostic print-marker node: it evaluates to x but tags
// it with y for evaluators that trace intermediate values.
func (x Expr) Printme(y Expr) Expr {
	return newOpNode(OpPrintme, x, y)
}

// Binary builds op(x, y) directly, bypassing the rewrite chains. Panics with
// ErrArityMismatch unless op is a registered two-operand operation.
func Binary(op Op, x, y Expr) Expr {
	if op.NDeps() != 2 {
		failf("Binary", ErrArityMismatch)
	}
	return newOpNode(op, x, y)
}

// Unary builds op(x) directly, bypassing the rewrite chains. Panics with
// ErrArityMismatch unless op is a registered one-operand operation.
func Unary(op Op, x Expr) Expr {
	if op.NDeps() != 1 {
		failf("Unary", ErrArityMismatch)
	}
	return newOpNode(op, x)
}

// IfElse builds the arithmetic selection ifFalse + (ifTrue-ifFalse)*cond,
// which evaluates to ifTrue when cond is 1 and ifFalse when cond is 0.
func IfElse(cond, ifTrue, ifFalse Expr) Expr {
	d := ifTrue.Sub(ifFalse)
	m := d.Mul(cond)
	d.Free()
	r := ifFalse.Add(m)
	m.Free()
	return r
}
