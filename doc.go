// Package amath parses arithmetic expressions into trees and prints them back.
//
// The syntax is the usual infix arithmetic with + - * / % and ^, parentheses,
// and function calls with any number of comma-separated arguments, e.g.
// "max(1, 2 * 3) ^ 2". Full-width parentheses and the ÷ and × glyphs are
// accepted as well. A minus sign at the start of an expression, after an open
// parenthesis, or after another operator is part of the following number, so
// "3 + -5" adds a negative literal. Commas between digits outside of any
// parentheses group thousands: "12,345" is a single number.
//
// Trees are generic over the type of their number leaves. Any type which can
// decode its own literals and print itself, per the Number constraint, works;
// package num provides float64, big.Float and decimal implementations, and
// package eval computes the values of trees.
package amath

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'amath.parse'.
func tracer() tracing.Trace {
	return tracing.Select("amath.parse")
}
