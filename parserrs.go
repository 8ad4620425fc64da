package amath

import "errors"

// ErrSyntax is the error for any input that is not an expression: misplaced
// operators, unbalanced parentheses, malformed calls, and literals which the
// number type does not accept alike. The parser deliberately reports nothing
// more specific.
var ErrSyntax = errors.New("amath: invalid expression")
