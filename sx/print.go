// Package sx: budgeted textual rendering.
//
// A shared subgraph is rendered once per occurrence, so an operator chain
// with heavy sharing can cost combinatorially many visits. Rendering is
// therefore metered: every node visit consumes one unit of a call budget,
// and an exhausted budget truncates with an ellipsis instead of recursing.
package sx

import (
	"io"
	"strconv"
	"strings"
)

// DefaultMaxPrintCalls is the process-wide rendering budget used by String
// and by Print callers that start from MaxPrintCalls.
const DefaultMaxPrintCalls = 10000

// maxPrintCalls is the one mutable piece of global configuration in the
// package. Like the graph itself it is not synchronized; set it before
// rendering from multiple goroutines.
var maxPrintCalls = DefaultMaxPrintCalls

// SetMaxPrintCalls replaces the process-wide rendering budget.
func SetMaxPrintCalls(n int) { maxPrintCalls = n }

// MaxPrintCalls returns the process-wide rendering budget.
func MaxPrintCalls() int { return maxPrintCalls }

// ws writes s, ignoring the writer error: rendering is best-effort
// diagnostics and strings.Builder never fails.
func ws(w io.Writer, s string) {
	_, _ = io.WriteString(w, s)
}

// Print renders x into w, consuming one unit of *remaining per node visited.
// When the budget is exhausted the output truncates with "..." instead of
// recursing further.
func (x Expr) Print(w io.Writer, remaining *int) {
	if *remaining <= 0 {
		ws(w, "...")
		return
	}
	*remaining--
	x.n.print(w, remaining)
}

// String renders x with the process-wide budget.
func (x Expr) String() string {
	var b strings.Builder
	remaining := MaxPrintCalls()
	x.Print(&b, &remaining)
	return b.String()
}

// print renders one node. Binary operations with an infix symbol render as
// "(a<sym>b)", every other operation as "name(args)"; negation and inversion
// keep their conventional "(-a)" and "(1/a)" forms.
func (n *Node) print(w io.Writer, remaining *int) {
	switch n.kind {
	case kindSymbol:
		ws(w, n.name)
	case kindInt:
		ws(w, strconv.Itoa(n.ival))
	case kindReal:
		ws(w, strconv.FormatFloat(n.rval, 'g', -1, 64))
	case kindZero:
		ws(w, "0")
	case kindOne:
		ws(w, "1")
	case kindTwo:
		ws(w, "2")
	case kindMinusOne:
		ws(w, "-1")
	case kindNaN:
		ws(w, "nan")
	case kindInf:
		ws(w, "inf")
	case kindMinusInf:
		ws(w, "-inf")
	case kindOperation:
		n.printOp(w, remaining)
	}
}

// printOp renders an operation node.
func (n *Node) printOp(w io.Writer, remaining *int) {
	info := opTable[n.op]
	switch {
	case n.op == OpNeg:
		ws(w, "(-")
		n.dep[0].Print(w, remaining)
		ws(w, ")")
	case n.op == OpInv:
		ws(w, "(1/")
		n.dep[0].Print(w, remaining)
		ws(w, ")")
	case info.ndeps == 2 && info.infix != "":
		ws(w, "(")
		n.dep[0].Print(w, remaining)
		ws(w, info.infix)
		n.dep[1].Print(w, remaining)
		ws(w, ")")
	case info.ndeps == 2:
		ws(w, info.name)
		ws(w, "(")
		n.dep[0].Print(w, remaining)
		ws(w, ",")
		n.dep[1].Print(w, remaining)
		ws(w, ")")
	default:
		ws(w, info.name)
		ws(w, "(")
		n.dep[0].Print(w, remaining)
		ws(w, ")")
	}
}
