package num

import (
	"math"
	"strconv"
)

// Float is a float64 number.
type Float float64

// ParseNumber decodes a decimal literal. Infinities and NaN are rejected.
func (Float) ParseNumber(text string) (Float, error) {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, ErrInvalid
	}
	return Float(f), nil
}

// String formats x without an exponent.
func (x Float) String() string {
	return strconv.FormatFloat(float64(x), 'f', -1, 64)
}

func (x Float) Add(y Float) Float { return x + y }
func (x Float) Sub(y Float) Float { return x - y }
func (x Float) Mul(y Float) Float { return x * y }
func (x Float) Neg() Float        { return -x }

// Quo returns x / y.
func (x Float) Quo(y Float) (Float, error) {
	if y == 0 {
		return 0, ErrDivisionByZero
	}
	return x / y, nil
}

// Rem returns the remainder of x / y with the sign of x.
func (x Float) Rem(y Float) (Float, error) {
	if y == 0 {
		return 0, ErrDivisionByZero
	}
	return Float(math.Mod(float64(x), float64(y))), nil
}

// Pow returns x ^ y.
func (x Float) Pow(y Float) (Float, error) {
	if x == 0 && y < 0 {
		return 0, ErrDivisionByZero
	}
	return finite(math.Pow(float64(x), float64(y)))
}

// Cmp compares x and y, returning -1, 0, or +1.
func (x Float) Cmp(y Float) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// Sign returns -1, 0, or +1 according to the sign of x.
func (x Float) Sign() int {
	return x.Cmp(0)
}

// Sqrt returns the square root of x.
func (x Float) Sqrt() (Float, error) {
	if x < 0 {
		return 0, ErrDomain
	}
	return Float(math.Sqrt(float64(x))), nil
}

// Exp returns e ^ x.
func (x Float) Exp() (Float, error) {
	return finite(math.Exp(float64(x)))
}

// Ln returns the natural logarithm of x.
func (x Float) Ln() (Float, error) {
	if x <= 0 {
		return 0, ErrDomain
	}
	return Float(math.Log(float64(x))), nil
}

// finite converts a float64 result, reporting NaN and infinities as errors.
func finite(f float64) (Float, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrDomain
	}
	return Float(f), nil
}
