package eval_test

import (
	"fmt"

	"github.com/zephyrtronium/amath"
	"github.com/zephyrtronium/amath/eval"
	"github.com/zephyrtronium/amath/num"
)

func ExampleFunc() {
	nargin := eval.Variadic(0, func(args []num.Float) (num.Float, error) {
		return num.Float(len(args)), nil
	})
	ctx := eval.NewContext(eval.SetFunc("nargin", nargin))

	for _, src := range []string{"nargin()", "nargin(100)", "nargin(3, 2, 1"} {
		e, _ := amath.Parse[num.Float](src)
		r, _ := ctx.Eval(e)
		fmt.Println(r, e)
	}

	// Output:
	// 0 nargin()
	// 1 nargin(100)
	// 3 nargin(3, 2, 1)
}

func ExampleEvalString() {
	r, err := eval.EvalString[num.Decimal]("0.1 + 0.2 * 12,000")
	fmt.Println(r, err)
	_, err = eval.EvalString[num.Decimal]("avg(1, 2) / 0")
	fmt.Println(err)

	// Output:
	// 2400.1 <nil>
	// "avg(1, 2) / 0": division by zero
}
