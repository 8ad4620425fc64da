package num

import (
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// BigPrec is the precision in bits of BigFloat literals. Results of
// operations have the larger precision of their operands.
const BigPrec = 128

// maxBigExp bounds the binary exponents of literals and of the results of
// powers and exponentials, so that every value prints in a manageable number
// of digits.
const maxBigExp = 1 << 16

// expLimit is the largest magnitude whose exponential stays within maxBigExp.
var expLimit = big.NewFloat(maxBigExp * math.Ln2)

// BigFloat is an arbitrary-precision binary floating-point number. The zero
// value is 0.
type BigFloat struct {
	x *big.Float
}

// NewBigFloat creates a BigFloat holding a copy of x.
func NewBigFloat(x *big.Float) BigFloat {
	return BigFloat{new(big.Float).Copy(x)}
}

// Float returns a copy of b as a *big.Float.
func (b BigFloat) Float() *big.Float {
	return new(big.Float).Copy(b.val())
}

// val returns b's value, treating the zero BigFloat as 0. The result must not
// be modified.
func (b BigFloat) val() *big.Float {
	if b.x == nil {
		return new(big.Float).SetPrec(BigPrec)
	}
	return b.x
}

// ParseNumber decodes a decimal literal to BigPrec bits. Infinities and
// literals with binary exponents beyond maxBigExp are rejected.
func (BigFloat) ParseNumber(text string) (BigFloat, error) {
	x, _, err := big.ParseFloat(text, 10, BigPrec, big.ToNearestEven)
	if err != nil || x.IsInf() || !inrange(x) {
		return BigFloat{}, ErrInvalid
	}
	return BigFloat{x}, nil
}

// String formats b without an exponent, using the fewest digits that decode
// back to the same value.
func (b BigFloat) String() string {
	return b.val().Text('f', -1)
}

// prec returns the result precision for an operation on b and c.
func (b BigFloat) prec(c BigFloat) uint {
	p := b.val().Prec()
	if q := c.val().Prec(); q > p {
		p = q
	}
	if p == 0 {
		p = BigPrec
	}
	return p
}

func (b BigFloat) z(c BigFloat) *big.Float {
	return new(big.Float).SetPrec(b.prec(c))
}

func (b BigFloat) Add(c BigFloat) BigFloat { return BigFloat{b.z(c).Add(b.val(), c.val())} }
func (b BigFloat) Sub(c BigFloat) BigFloat { return BigFloat{b.z(c).Sub(b.val(), c.val())} }
func (b BigFloat) Mul(c BigFloat) BigFloat { return BigFloat{b.z(c).Mul(b.val(), c.val())} }
func (b BigFloat) Neg() BigFloat           { return BigFloat{b.z(b).Neg(b.val())} }

// Quo returns b / c.
func (b BigFloat) Quo(c BigFloat) (BigFloat, error) {
	if c.Sign() == 0 {
		return BigFloat{}, ErrDivisionByZero
	}
	return BigFloat{b.z(c).Quo(b.val(), c.val())}, nil
}

// Rem returns b - c*trunc(b/c), which has the sign of b.
func (b BigFloat) Rem(c BigFloat) (BigFloat, error) {
	if c.Sign() == 0 {
		return BigFloat{}, ErrDivisionByZero
	}
	q := b.z(c).Quo(b.val(), c.val())
	t, _ := q.Int(nil)
	q.SetInt(t)
	q.Mul(q, c.val())
	return BigFloat{b.z(c).Sub(b.val(), q)}, nil
}

// Pow returns b ^ c. Integer powers are exact up to the result precision.
// Fractional powers of negative numbers are outside the domain, as are powers
// which might leave the exponent range of maxBigExp.
func (b BigFloat) Pow(c BigFloat) (BigFloat, error) {
	x, y := b.val(), c.val()
	if !powrange(x, y) {
		return BigFloat{}, ErrDomain
	}
	if y.IsInt() {
		n, _ := y.Int(nil)
		if x.Sign() == 0 && n.Sign() < 0 {
			return BigFloat{}, ErrDivisionByZero
		}
		return BigFloat{intpow(b.z(c), x, n)}, nil
	}
	switch x.Sign() {
	case -1:
		return BigFloat{}, ErrDomain
	case 0:
		if y.Sign() < 0 {
			return BigFloat{}, ErrDivisionByZero
		}
		return BigFloat{b.z(c)}, nil
	}
	// bigfloat works at the precision of its first argument.
	z := b.z(c)
	xx := new(big.Float).SetPrec(z.Prec()).Set(x)
	yy := new(big.Float).Copy(y)
	return BigFloat{bigfloat.Pow(z, xx, yy)}, nil
}

// inrange reports whether the binary exponent of x is within maxBigExp.
func inrange(x *big.Float) bool {
	e := x.MantExp(nil)
	return -maxBigExp <= e && e <= maxBigExp
}

// powrange reports whether x^y certainly has a binary exponent within
// maxBigExp. The bound is conservative for x near 1.
func powrange(x, y *big.Float) bool {
	if x.Sign() == 0 {
		return true
	}
	e := x.MantExp(nil)
	if e < 0 {
		e = -e
	}
	lim := big.NewFloat(float64(maxBigExp / (e + 1)))
	return new(big.Float).Abs(y).Cmp(lim) <= 0
}

// intpow sets z to x^n by repeated squaring and returns z.
func intpow(z, x *big.Float, n *big.Int) *big.Float {
	neg := n.Sign() < 0
	e := new(big.Int).Abs(n)
	base := new(big.Float).SetPrec(z.Prec()).Set(x)
	z.SetInt64(1)
	for i := 0; i < e.BitLen(); i++ {
		if e.Bit(i) != 0 {
			z.Mul(z, base)
		}
		base.Mul(base, base)
	}
	if neg {
		z.Quo(new(big.Float).SetPrec(z.Prec()).SetInt64(1), z)
	}
	return z
}

// Cmp compares b and c, returning -1, 0, or +1.
func (b BigFloat) Cmp(c BigFloat) int {
	return b.val().Cmp(c.val())
}

// Sign returns -1, 0, or +1 according to the sign of b.
func (b BigFloat) Sign() int {
	return b.val().Sign()
}

// Sqrt returns the square root of b.
func (b BigFloat) Sqrt() (BigFloat, error) {
	switch b.Sign() {
	case -1:
		return BigFloat{}, ErrDomain
	case 0:
		return BigFloat{b.z(b)}, nil
	}
	return BigFloat{b.z(b).Sqrt(b.val())}, nil
}

// Exp returns e ^ b. Results beyond the exponent range of maxBigExp are
// outside the domain.
func (b BigFloat) Exp() (BigFloat, error) {
	if new(big.Float).Abs(b.val()).Cmp(expLimit) > 0 {
		return BigFloat{}, ErrDomain
	}
	x := new(big.Float).Copy(b.val())
	return BigFloat{bigfloat.Exp(b.z(b), x)}, nil
}

// Ln returns the natural logarithm of b.
func (b BigFloat) Ln() (BigFloat, error) {
	if b.Sign() <= 0 {
		return BigFloat{}, ErrDomain
	}
	x := new(big.Float).Copy(b.val())
	return BigFloat{bigfloat.Log(b.z(b), x)}, nil
}
