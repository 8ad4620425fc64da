package num

import (
	"github.com/shopspring/decimal"
)

// Decimal is an exact decimal number. Quotients are rounded to
// decimal.DivisionPrecision digits.
type Decimal struct {
	d decimal.Decimal
}

// NewDecimal creates a Decimal from a decimal.Decimal.
func NewDecimal(d decimal.Decimal) Decimal {
	return Decimal{d}
}

// Decimal returns x as a decimal.Decimal.
func (x Decimal) Decimal() decimal.Decimal {
	return x.d
}

// ParseNumber decodes a decimal literal exactly. Literals with exponents
// beyond maxDecimalDigits are rejected.
func (Decimal) ParseNumber(text string) (Decimal, error) {
	d, err := decimal.NewFromString(text)
	if err != nil {
		return Decimal{}, ErrInvalid
	}
	if e := d.Exponent(); e > maxDecimalDigits || e < -maxDecimalDigits {
		return Decimal{}, ErrInvalid
	}
	return Decimal{d}, nil
}

// String formats x without an exponent.
func (x Decimal) String() string {
	return x.d.String()
}

func (x Decimal) Add(y Decimal) Decimal { return Decimal{x.d.Add(y.d)} }
func (x Decimal) Sub(y Decimal) Decimal { return Decimal{x.d.Sub(y.d)} }
func (x Decimal) Mul(y Decimal) Decimal { return Decimal{x.d.Mul(y.d)} }
func (x Decimal) Neg() Decimal          { return Decimal{x.d.Neg()} }

// Quo returns x / y.
func (x Decimal) Quo(y Decimal) (Decimal, error) {
	if y.d.IsZero() {
		return Decimal{}, ErrDivisionByZero
	}
	return Decimal{x.d.Div(y.d)}, nil
}

// Rem returns the remainder of x / y with the sign of x.
func (x Decimal) Rem(y Decimal) (Decimal, error) {
	if y.d.IsZero() {
		return Decimal{}, ErrDivisionByZero
	}
	return Decimal{x.d.Mod(y.d)}, nil
}

// maxDecimalExp and maxDecimalDigits bound the sizes of literals and powers.
const (
	maxDecimalExp    = 1 << 10
	maxDecimalDigits = 1 << 16
)

// Pow returns x ^ y. Only integer exponents are in the domain.
func (x Decimal) Pow(y Decimal) (Decimal, error) {
	if !y.d.Equal(y.d.Truncate(0)) {
		return Decimal{}, ErrDomain
	}
	if y.d.Abs().GreaterThan(decimal.NewFromInt(maxDecimalExp)) {
		return Decimal{}, ErrDomain
	}
	n := y.d.IntPart()
	if size(x.d)*abs(n) > maxDecimalDigits {
		return Decimal{}, ErrDomain
	}
	if x.d.IsZero() && n < 0 {
		return Decimal{}, ErrDivisionByZero
	}
	neg := n < 0
	if neg {
		n = -n
	}
	z, base := decimal.NewFromInt(1), x.d
	for {
		if n&1 != 0 {
			z = z.Mul(base)
		}
		if n >>= 1; n == 0 {
			break
		}
		base = base.Mul(base)
	}
	if neg {
		z = decimal.NewFromInt(1).Div(z)
	}
	return Decimal{z}, nil
}

// size is the number of digits needed to write d without an exponent.
func size(d decimal.Decimal) int64 {
	return int64(len(d.Coefficient().Text(10))) + abs(int64(d.Exponent()))
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

// Cmp compares x and y, returning -1, 0, or +1.
func (x Decimal) Cmp(y Decimal) int {
	return x.d.Cmp(y.d)
}

// Sign returns -1, 0, or +1 according to the sign of x.
func (x Decimal) Sign() int {
	return x.d.Sign()
}
