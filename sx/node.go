// Package sx: the node layer.
//
// A Node is one immutable vertex of the expression DAG: either a leaf
// (symbol or constant) or an operation with one or two operand handles.
// Nodes are created only through the package's single allocation path
// (allocNode), which also maintains the live-node counter and hands out the
// process-local identity used by Hash.
//
// Lifetime is managed by an intrusive reference count: every owned Expr
// handle and every parent node holds one reference. The count and the temp
// scratch field are plain ints — graph construction is single-threaded by
// design (see doc.go); only the constant caches are guarded, so that the one
// allocation path stays safe under concurrent readers.
package sx

import (
	"math"
	"sync"
	"sync/atomic"
)

// kind discriminates the leaf variants of a node.
// kindOperation marks non-leaf nodes; their Op tag discriminates further.
type kind uint8

const (
	kindOperation kind = iota
	kindSymbol
	kindInt
	kindReal
	kindZero
	kindOne
	kindTwo
	kindMinusOne
	kindNaN
	kindInf
	kindMinusInf
)

// Node is the raw, immutable unit of the expression graph. Client code
// manipulates Expr handles; the only reason Node is exported is the
// AssignNoFree/ReleaseNode ownership-transfer escape hatch.
type Node struct {
	kind  kind
	op    Op // OpNone for leaves
	name  string
	ival  int
	rval  float64
	dep   [2]Expr // operand handles, first ndeps entries valid
	ndeps int

	count int    // live references: owned handles + parent nodes + caches
	temp  int    // scratch field for external passes; not used by the core
	id    uint64 // allocation-order identity, feeds Hash
}

// Package-wide allocation state. liveNodes and nextID are atomic so that
// diagnostics stay coherent even when a reader races the single construction
// thread; the caches share one mutex because interning is the only place
// where two lookups must agree.
var (
	liveNodes atomic.Int64
	nextID    atomic.Uint64

	cacheMu   sync.Mutex
	intCache  = make(map[int]*Node)
	realCache = make(map[float64]*Node)
)

// allocNode is the single allocation path for every node in the process.
func allocNode(k kind, op Op) *Node {
	liveNodes.Add(1)
	return &Node{kind: k, op: op, id: nextID.Add(1)}
}

// retain adds one reference to n.
func retain(n *Node) {
	n.count++
}

// release drops one reference to n and retires the node when the count
// reaches zero. Retiring releases the operand handles in turn, so an
// unshared chain collapses in one call.
func release(n *Node) {
	n.count--
	if n.count == 0 {
		for i := 0; i < n.ndeps; i++ {
			n.dep[i].Free()
			n.dep[i] = Expr{}
		}
		n.ndeps = 0
		liveNodes.Add(-1)
	}
}

// ReleaseNode disposes a raw node previously obtained from AssignNoFree.
// The caller transfers its (single) reference back; passing any node not
// obtained that way corrupts the count.
func ReleaseNode(n *Node) {
	if n != nil {
		release(n)
	}
}

// LiveNodes returns the number of currently live nodes, including the
// process-lifetime singletons and interned constants. Intended for
// diagnostics and for the no-new-node and refcount property tests.
func LiveNodes() int64 {
	return liveNodes.Load()
}

// Canonical singleton handles. Each is created once with one package-held
// reference, so its count never reaches zero and the node is never retired.
var (
	zeroH     = staticLeaf(kindZero)
	oneH      = staticLeaf(kindOne)
	twoH      = staticLeaf(kindTwo)
	minusOneH = staticLeaf(kindMinusOne)
	nanH      = staticLeaf(kindNaN)
	infH      = staticLeaf(kindInf)
	minusInfH = staticLeaf(kindMinusInf)
)

// staticLeaf builds a process-lifetime singleton handle.
func staticLeaf(k kind) Expr {
	n := allocNode(k, OpNone)
	retain(n)
	return Expr{n: n}
}

// internInt returns an owned handle for the integer constant v, reusing the
// cached node when one exists. The small canonical values never reach here;
// NewInt and NewReal route them to the singletons first.
func internInt(v int) Expr {
	cacheMu.Lock()
	n, ok := intCache[v]
	if !ok {
		n = allocNode(kindInt, OpNone)
		n.ival = v
		retain(n) // the cache's own reference; entries are never evicted
		intCache[v] = n
	}
	retain(n)
	cacheMu.Unlock()
	return Expr{n: n}
}

// internReal returns an owned handle for the real constant v, reusing the
// cached node when one exists. NaN and infinities never reach here.
func internReal(v float64) Expr {
	cacheMu.Lock()
	n, ok := realCache[v]
	if !ok {
		n = allocNode(kindReal, OpNone)
		n.rval = v
		retain(n)
		realCache[v] = n
	}
	retain(n)
	cacheMu.Unlock()
	return Expr{n: n}
}

// newOpNode allocates an operation node over the given operands and returns
// the owned handle wrapping it. Every simplification rule funnels its final
// "create a new branch" arm through here; rules that fire earlier return
// without allocating (the no-new-node invariant).
func newOpNode(op Op, deps ...Expr) Expr {
	if !op.valid() || len(deps) != opTable[op].ndeps {
		failf(op.String(), ErrArityMismatch)
	}
	n := allocNode(kindOperation, op)
	n.ndeps = len(deps)
	for i, d := range deps {
		n.dep[i] = d.Clone() // the node holds its own reference to each operand
	}
	retain(n)
	return Expr{n: n}
}

// isConstant reports whether n is any constant leaf variant.
func (n *Node) isConstant() bool {
	switch n.kind {
	case kindInt, kindReal, kindZero, kindOne, kindTwo, kindMinusOne, kindNaN, kindInf, kindMinusInf:
		return true
	default:
		return false
	}
}

// isInteger reports whether n is an integer-valued constant leaf.
func (n *Node) isInteger() bool {
	switch n.kind {
	case kindInt, kindZero, kindOne, kindTwo, kindMinusOne:
		return true
	default:
		return false
	}
}

// value returns the numeric value of a constant leaf.
// Callers must check isConstant first.
func (n *Node) value() float64 {
	switch n.kind {
	case kindInt:
		return float64(n.ival)
	case kindReal:
		return n.rval
	case kindZero:
		return 0
	case kindOne:
		return 1
	case kindTwo:
		return 2
	case kindMinusOne:
		return -1
	case kindNaN:
		return math.NaN()
	case kindInf:
		return math.Inf(1)
	case kindMinusInf:
		return math.Inf(-1)
	default:
		failf("Expr.Value", ErrTypeMismatch)
		return 0
	}
}

// intValue returns the value of an integer constant leaf.
// Callers must check isInteger first.
func (n *Node) intValue() int {
	switch n.kind {
	case kindInt:
		return n.ival
	case kindZero:
		return 0
	case kindOne:
		return 1
	case kindTwo:
		return 2
	case kindMinusOne:
		return -1
	default:
		failf("Expr.IntValue", ErrTypeMismatch)
		return 0
	}
}
