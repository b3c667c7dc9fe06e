// Package sx: operation tags and their static registry.
//
// This file declares the closed Op enumeration used by operation nodes,
// together with the per-op metadata (arity, commutativity, print form) that
// the construction engine, the equivalence test, and the printer consult.
package sx

// Op identifies the operation performed by a non-leaf node.
// OpNone is reserved for leaf nodes (symbols and constants).
type Op uint8

// The fixed operation set. The order is part of the package contract only in
// that OpNone must remain zero; everything else dispatches through opTable.
const (
	OpNone Op = iota

	// Arithmetic
	OpNeg
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpInv
	OpPow
	OpConstpow

	// Transcendental and rounding
	OpSqrt
	OpSin
	OpCos
	OpTan
	OpAsin
	OpAcos
	OpAtan
	OpExp
	OpLog
	OpSinh
	OpCosh
	OpTanh
	OpFloor
	OpCeil
	OpErf
	OpErfinv
	OpFabs
	OpSign

	// Comparison / boolean support
	OpStep
	OpEquality

	// Binary extrema
	OpFmin
	OpFmax

	// Diagnostic print-marker
	OpPrintme

	opCount // sentinel, keep last
)

// opInfo is the static metadata for one operation tag.
type opInfo struct {
	ndeps       int    // registered arity: 1 or 2
	commutative bool   // operand order is irrelevant
	infix       string // non-empty: render "(a<infix>b)"
	name        string // function-call form and diagnostic name
}

// opTable is the single source of truth for operation metadata.
// Invariant: every Op in (OpNone, opCount) has an entry with ndeps 1 or 2.
var opTable = [opCount]opInfo{
	OpNeg:      {ndeps: 1, name: "neg", infix: ""},
	OpAdd:      {ndeps: 2, commutative: true, infix: "+", name: "add"},
	OpSub:      {ndeps: 2, infix: "-", name: "sub"},
	OpMul:      {ndeps: 2, commutative: true, infix: "*", name: "mul"},
	OpDiv:      {ndeps: 2, infix: "/", name: "div"},
	OpInv:      {ndeps: 1, name: "inv"},
	OpPow:      {ndeps: 2, name: "pow"},
	OpConstpow: {ndeps: 2, name: "constpow"},
	OpSqrt:     {ndeps: 1, name: "sqrt"},
	OpSin:      {ndeps: 1, name: "sin"},
	OpCos:      {ndeps: 1, name: "cos"},
	OpTan:      {ndeps: 1, name: "tan"},
	OpAsin:     {ndeps: 1, name: "asin"},
	OpAcos:     {ndeps: 1, name: "acos"},
	OpAtan:     {ndeps: 1, name: "atan"},
	OpExp:      {ndeps: 1, name: "exp"},
	OpLog:      {ndeps: 1, name: "log"},
	OpSinh:     {ndeps: 1, name: "sinh"},
	OpCosh:     {ndeps: 1, name: "cosh"},
	OpTanh:     {ndeps: 1, name: "tanh"},
	OpFloor:    {ndeps: 1, name: "floor"},
	OpCeil:     {ndeps: 1, name: "ceil"},
	OpErf:      {ndeps: 1, name: "erf"},
	OpErfinv:   {ndeps: 1, name: "erfinv"},
	OpFabs:     {ndeps: 1, name: "fabs"},
	OpSign:     {ndeps: 1, name: "sign"},
	OpStep:     {ndeps: 1, name: "step"},
	OpEquality: {ndeps: 2, commutative: true, infix: "==", name: "eq"},
	OpFmin:     {ndeps: 2, commutative: true, name: "fmin"},
	OpFmax:     {ndeps: 2, commutative: true, name: "fmax"},
	OpPrintme:  {ndeps: 2, name: "printme"},
}

// valid reports whether op identifies a registered operation (not OpNone).
func (op Op) valid() bool {
	return op > OpNone && op < opCount
}

// NDeps returns the registered arity (1 or 2) of op.
// Complexity: O(1).
func (op Op) NDeps() int {
	if !op.valid() {
		return 0
	}
	return opTable[op].ndeps
}

// Commutative reports whether op treats its two operands symmetrically.
// Unary operations are never commutative.
// Complexity: O(1).
func (op Op) Commutative() bool {
	return op.valid() && opTable[op].commutative
}

// String returns the diagnostic name of op ("add", "sqrt", ...).
func (op Op) String() string {
	if !op.valid() {
		return "none"
	}
	return opTable[op].name
}
