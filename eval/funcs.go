package eval

import (
	"strconv"
)

// Func is a function callable from expressions.
type Func[N any] interface {
	// Call evaluates the function. args has a length for which CanCall
	// returned true. Call may modify the elements of args.
	Call(args []N) (N, error)

	// CanCall returns whether the function can be called with n arguments.
	// Calls with any other number of arguments are a *CallError.
	CanCall(n int) bool
}

type monadic[N any] struct {
	f func(N) (N, error)
}

func (m monadic[N]) Call(args []N) (N, error) {
	return m.f(args[0])
}

func (m monadic[N]) CanCall(n int) bool {
	return n == 1
}

// Monadic wraps a function of one argument into a Func.
func Monadic[N any](f func(N) (N, error)) Func[N] {
	return monadic[N]{f}
}

type variadic[N any] struct {
	least int
	f     func([]N) (N, error)
}

func (v variadic[N]) Call(args []N) (N, error) {
	return v.f(args)
}

func (v variadic[N]) CanCall(n int) bool {
	return n >= v.least
}

// Variadic wraps a function of any number of arguments, but no fewer than
// least, into a Func.
func Variadic[N any](least int, f func([]N) (N, error)) Func[N] {
	return variadic[N]{least, f}
}

// defaultFuncs creates the default function table for N.
func defaultFuncs[N Number[N]]() map[string]Func[N] {
	m := map[string]Func[N]{
		"abs": Monadic(func(x N) (N, error) {
			if x.Sign() < 0 {
				return x.Neg(), nil
			}
			return x, nil
		}),
		"min": Variadic(1, func(args []N) (N, error) {
			return extreme(args, -1), nil
		}),
		"max": Variadic(1, func(args []N) (N, error) {
			return extreme(args, 1), nil
		}),
		"sum": Variadic(0, func(args []N) (N, error) {
			return sum(args), nil
		}),
		"avg": Variadic(1, func(args []N) (N, error) {
			return sum(args).Quo(integer[N](len(args)))
		}),
	}
	var z N
	if _, ok := any(z).(Transcendental[N]); ok {
		m["sqrt"] = Monadic(func(x N) (N, error) { return any(x).(Transcendental[N]).Sqrt() })
		m["exp"] = Monadic(func(x N) (N, error) { return any(x).(Transcendental[N]).Exp() })
		m["ln"] = Monadic(func(x N) (N, error) { return any(x).(Transcendental[N]).Ln() })
		m["log"] = logfn[N]{}
	}
	return m
}

// extreme returns the least element of args if dir is -1 or the greatest if
// dir is 1.
func extreme[N Number[N]](args []N, dir int) N {
	r := args[0]
	for _, x := range args[1:] {
		if x.Cmp(r) == dir {
			r = x
		}
	}
	return r
}

func sum[N Number[N]](args []N) N {
	r := integer[N](0)
	for _, x := range args {
		r = r.Add(x)
	}
	return r
}

// integer converts n to N through its literal. Every number type accepts
// integer literals.
func integer[N Number[N]](n int) N {
	var z N
	r, err := z.ParseNumber(strconv.Itoa(n))
	if err != nil {
		panic("eval: number type rejects integer literal " + strconv.Itoa(n) + ": " + err.Error())
	}
	return r
}

// logfn is the common logarithm with one argument and the logarithm to the
// given base with two, log(x, b).
type logfn[N Number[N]] struct{}

func (logfn[N]) CanCall(n int) bool {
	return n == 1 || n == 2
}

func (logfn[N]) Call(args []N) (N, error) {
	var zero N
	b := integer[N](10)
	if len(args) == 2 {
		b = args[1]
	}
	lx, err := any(args[0]).(Transcendental[N]).Ln()
	if err != nil {
		return zero, err
	}
	lb, err := any(b).(Transcendental[N]).Ln()
	if err != nil {
		return zero, err
	}
	return lx.Quo(lb)
}
