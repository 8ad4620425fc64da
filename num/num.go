// Package num provides number types for the leaves of amath expression trees.
//
// Each type decodes literals, prints itself in a form which decodes to the
// same value, and implements the arithmetic used by package eval. Values are
// immutable; every operation returns a new value.
package num

import "errors"

var (
	// ErrInvalid is returned for literals that are not finite numbers.
	ErrInvalid = errors.New("invalid number")
	// ErrDivisionByZero is returned for division or remainder by zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrDomain is returned when an operation has no real result, e.g. a
	// fractional power of a negative number.
	ErrDomain = errors.New("outside domain")
)
