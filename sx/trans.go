// Package sx: transcendental and rounding operations.
//
// Each function applies its zero/identity shortcut when the argument's
// structure admits an exact closed form, and otherwise allocates a unary
// operation node. Like the arithmetic chains, no shortcut ever allocates.
package sx

import "math"

// Exp returns e^x.
func (x Expr) Exp() Expr { return newOpNode(OpExp, x) }

// Log returns the natural logarithm of x.
func (x Expr) Log() Expr { return newOpNode(OpLog, x) }

// Log10 returns the base-10 logarithm, built as log(x)*(1/ln 10).
func (x Expr) Log10() Expr {
	l := x.Log()
	c := NewReal(1.0 / math.Ln10)
	r := l.Mul(c)
	l.Free()
	c.Free()
	return r
}

// Sqrt returns the square root of x; sqrt(e*e) folds to |e|.
func (x Expr) Sqrt() Expr {
	switch {
	case x.IsOne() || x.IsZero():
		return x.Clone()
	case x.IsSquared(): // sqrt(e*e) -> |e|
		return x.Dep(0).Fabs()
	default:
		return newOpNode(OpSqrt, x)
	}
}

// Sin returns sin(x); sin(0) folds to 0.
func (x Expr) Sin() Expr {
	if x.IsZero() {
		return Zero()
	}
	return newOpNode(OpSin, x)
}

// Cos returns cos(x); cos(0) folds to 1.
func (x Expr) Cos() Expr {
	if x.IsZero() {
		return One()
	}
	return newOpNode(OpCos, x)
}

// Tan returns tan(x); tan(0) folds to 0.
func (x Expr) Tan() Expr {
	if x.IsZero() {
		return Zero()
	}
	return newOpNode(OpTan, x)
}

// Asin returns arcsin(x).
func (x Expr) Asin() Expr { return newOpNode(OpAsin, x) }

// Acos returns arccos(x).
func (x Expr) Acos() Expr { return newOpNode(OpAcos, x) }

// Atan returns arctan(x).
func (x Expr) Atan() Expr { return newOpNode(OpAtan, x) }

// Sinh returns sinh(x); sinh(0) folds to 0.
func (x Expr) Sinh() Expr {
	if x.IsZero() {
		return Zero()
	}
	return newOpNode(OpSinh, x)
}

// Cosh returns cosh(x); cosh(0) folds to 1.
func (x Expr) Cosh() Expr {
	if x.IsZero() {
		return One()
	}
	return newOpNode(OpCosh, x)
}

// Tanh returns tanh(x); tanh(0) folds to 0.
func (x Expr) Tanh() Expr {
	if x.IsZero() {
		return Zero()
	}
	return newOpNode(OpTanh, x)
}

// Floor returns the floor of x.
func (x Expr) Floor() Expr { return newOpNode(OpFloor, x) }

// Ceil returns the ceiling of x.
func (x Expr) Ceil() Expr { return newOpNode(OpCeil, x) }

// Erf returns the error function of x.
func (x Expr) Erf() Expr { return newOpNode(OpErf, x) }

// Erfinv returns the inverse error function of x.
func (x Expr) Erfinv() Expr { return newOpNode(OpErfinv, x) }

// Fabs returns |x|. Known-nonnegative arguments — nonnegative constants,
// absolute values, perfect squares — pass through unchanged.
func (x Expr) Fabs() Expr {
	switch {
	case x.IsConstant() && x.Value() >= 0:
		return x.Clone()
	case x.IsOp(OpFabs):
		return x.Clone()
	case x.IsSquared():
		return x.Clone()
	default:
		return newOpNode(OpFabs, x)
	}
}

// Sign returns the sign of x. Constants are evaluated numerically to the
// matching canonical node (-1, 0, 1, or NaN).
func (x Expr) Sign() Expr {
	if x.IsConstant() {
		v := x.Value()
		switch {
		case math.IsNaN(v):
			return NaN()
		case v < 0:
			return MinusOne()
		case v > 0:
			return One()
		default:
			return Zero()
		}
	}
	return newOpNode(OpSign, x)
}
