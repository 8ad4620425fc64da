// Package eval computes the values of amath expression trees.
//
// The arithmetic is whatever the number type of the tree implements; see
// package num for float64, big.Float, and decimal number types. Functions are
// looked up by name in a Context, which provides abs, min, max, sum, and avg
// for every number type, and sqrt, exp, ln, and log for number types that
// implement Transcendental.
package eval

import (
	"errors"
	"math/big"

	"github.com/npillmayer/schuko/tracing"

	"github.com/zephyrtronium/amath"
)

// tracer traces with key 'amath.eval'.
func tracer() tracing.Trace {
	return tracing.Select("amath.eval")
}

// Number is the arithmetic a number type needs for evaluation. Operations
// must not modify their receivers or arguments.
type Number[N any] interface {
	amath.Number[N]

	Add(N) N
	Sub(N) N
	Mul(N) N
	Neg() N
	// Quo, Rem, and Pow return an error when the result is undefined, e.g.
	// for division by zero.
	Quo(N) (N, error)
	Rem(N) (N, error)
	Pow(N) (N, error)
	// Cmp returns -1, 0, or +1 as the receiver is less than, equal to, or
	// greater than the argument.
	Cmp(N) int
	Sign() int
}

// Transcendental is implemented by number types which provide sqrt, exp,
// and ln. Contexts for such types have the corresponding functions plus log.
type Transcendental[N any] interface {
	Sqrt() (N, error)
	Exp() (N, error)
	Ln() (N, error)
}

// Context is a context for evaluating expressions. A Context is not modified
// by evaluation, so it is safe to use concurrently.
type Context[N Number[N]] struct {
	funcs map[string]Func[N]
}

// ContextOption is an option used when creating a context.
type ContextOption[N Number[N]] interface {
	ctxOption(map[string]Func[N])
}

type (
	funcopt[N Number[N]] struct {
		name string
		fn   Func[N]
	}
	funcsopt[N Number[N]]   map[string]Func[N]
	nodefaults[N Number[N]] struct{}
)

func (o funcopt[N]) ctxOption(m map[string]Func[N]) {
	if o.fn == nil {
		delete(m, o.name)
		return
	}
	m[o.name] = o.fn
}

func (o funcsopt[N]) ctxOption(m map[string]Func[N]) {
	for k, v := range o {
		funcopt[N]{k, v}.ctxOption(m)
	}
}

func (nodefaults[N]) ctxOption(m map[string]Func[N]) {
	for k := range defaultFuncs[N]() {
		delete(m, k)
	}
}

// SetFunc sets a function in the context. To remove a function, pass nil for
// fn.
func SetFunc[N Number[N]](name string, fn Func[N]) ContextOption[N] {
	return funcopt[N]{name, fn}
}

// SetFuncs sets a group of functions in the context. Names mapped to nil are
// removed.
func SetFuncs[N Number[N]](fns map[string]Func[N]) ContextOption[N] {
	return funcsopt[N](fns)
}

// DisableDefaultFuncs removes the default functions. Functions set by earlier
// options under default names are removed as well.
func DisableDefaultFuncs[N Number[N]]() ContextOption[N] {
	return nodefaults[N]{}
}

// NewContext creates a new evaluation context with the default functions,
// then applies opts in order.
func NewContext[N Number[N]](opts ...ContextOption[N]) *Context[N] {
	ctx := Context[N]{funcs: defaultFuncs[N]()}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.ctxOption(ctx.funcs)
	}
	return &ctx
}

// Lookup returns the function with the given name, or nil if there is none.
func (ctx *Context[N]) Lookup(name string) Func[N] {
	return ctx.funcs[name]
}

// Eval evaluates an expression. Errors are a *DomainError when an operation
// has no result, a *FuncError for a call to an unknown function, or a
// *CallError for a call with the wrong number of arguments.
func (ctx *Context[N]) Eval(e *amath.Node[N]) (r N, err error) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		// big.Float panics on e.g. inf - inf.
		perr, ok := p.(error)
		var nan big.ErrNaN
		if !ok || !errors.As(perr, &nan) {
			panic(p)
		}
		var zero N
		r, err = zero, &DomainError{Expr: e.String(), Err: perr}
	}()
	r, err = ctx.eval(e)
	if err != nil {
		tracer().Debugf("evaluating %v: %v", e, err)
	}
	return r, err
}

func (ctx *Context[N]) eval(n *amath.Node[N]) (N, error) {
	var zero N
	switch n.Kind {
	case amath.KindNumber:
		return n.Value, nil
	case amath.KindParen:
		return ctx.eval(n.Left)
	case amath.KindAdd, amath.KindSub, amath.KindMul, amath.KindDiv, amath.KindMod, amath.KindPow:
		l, err := ctx.eval(n.Left)
		if err != nil {
			return zero, err
		}
		r, err := ctx.eval(n.Right)
		if err != nil {
			return zero, err
		}
		v, err := binary(n.Kind, l, r)
		if err != nil {
			return zero, &DomainError{Expr: n.String(), Func: n.Kind.Op(), Err: err}
		}
		return v, nil
	case amath.KindFunction:
		fn := ctx.funcs[n.Name]
		if fn == nil {
			return zero, &FuncError{Name: n.Name}
		}
		if !fn.CanCall(len(n.Args)) {
			return zero, &CallError{Func: n.Name, Len: len(n.Args)}
		}
		args := make([]N, len(n.Args))
		for i, a := range n.Args {
			v, err := ctx.eval(a)
			if err != nil {
				return zero, err
			}
			args[i] = v
		}
		v, err := fn.Call(args)
		if err != nil {
			var de *DomainError
			if !errors.As(err, &de) {
				err = &DomainError{Expr: n.String(), Func: n.Name, Err: err}
			}
			return zero, err
		}
		return v, nil
	default:
		panic("eval: invalid AST node " + n.Kind.String())
	}
}

func binary[N Number[N]](k amath.Kind, l, r N) (N, error) {
	switch k {
	case amath.KindAdd:
		return l.Add(r), nil
	case amath.KindSub:
		return l.Sub(r), nil
	case amath.KindMul:
		return l.Mul(r), nil
	case amath.KindDiv:
		return l.Quo(r)
	case amath.KindMod:
		return l.Rem(r)
	case amath.KindPow:
		return l.Pow(r)
	default:
		panic("eval: not a binary operator: " + k.String())
	}
}

// EvalString is a shortcut to parse and evaluate an expression. Parse errors
// are amath.ErrSyntax.
func EvalString[N Number[N]](src string, opts ...ContextOption[N]) (N, error) {
	e, err := amath.Parse[N](src)
	if err != nil {
		var zero N
		return zero, err
	}
	return NewContext[N](opts...).Eval(e)
}
