// Package sx: sentinel error set.
//
// All three sentinels report contract violations by the caller (programmer
// errors). The accessors that detect them panic with the sentinel wrapped in
// method context rather than return an error: a violated arity or type
// contract is never recoverable mid-expression, and must not be silently
// swallowed. Tests match them via errors.Is on the recovered value.
package sx

import (
	"errors"
	"fmt"
)

var (
	// ErrArityMismatch indicates a binary-only accessor was used on a node
	// with fewer operands (e.g. Dep(1) of a unary node, NDeps of a leaf).
	ErrArityMismatch = errors.New("sx: operand arity mismatch")

	// ErrTypeMismatch indicates a variant-specific accessor was used on the
	// wrong node variant (e.g. Value on a symbol, Name on a constant).
	ErrTypeMismatch = errors.New("sx: node variant mismatch")

	// ErrInvalidIndex indicates an operand index outside {0, 1}.
	ErrInvalidIndex = errors.New("sx: operand index out of range")
)

// failf panics with err wrapped in call-site context.
// Reserved for programmer errors; never used on data-dependent paths.
func failf(where string, err error) {
	panic(fmt.Errorf("sx.%s: %w", where, err))
}
