package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"
	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/zephyrtronium/amath"
	"github.com/zephyrtronium/amath/eval"
	"github.com/zephyrtronium/amath/num"
)

var cli struct {
	Number string   `short:"n" enum:"float,big,decimal" default:"float" env:"AMATH_NUMBER" help:"Number type: float, big, or decimal."`
	Strict bool     `env:"AMATH_STRICT" help:"Don't retry unclosed expressions with a closing parenthesis."`
	Echo   bool     `short:"e" help:"Print the canonical form of each expression."`
	Dump   bool     `help:"Dump parse trees."`
	Trace  string   `default:"Error" env:"AMATH_TRACE" help:"Trace level [Debug|Info|Error]."`
	Exprs  []string `arg:"" optional:"" help:"Expressions to evaluate. With none, read expressions interactively."`
}

// trace is the command's own log.
var trace tracing.Trace = gologadapter.New()

func main() {
	kong.Parse(&cli,
		kong.Name("amath"),
		kong.Description("Evaluate arithmetic expressions like 12,345 + max(2, 3) ^ 2."),
	)
	initDisplay()
	level := tracing.TraceLevelFromString(cli.Trace)
	trace.SetTraceLevel(level)
	for _, key := range []string{"amath.parse", "amath.eval"} {
		tracing.Select(key).SetTraceLevel(level)
	}
	trace.Debugf("number type is %s", cli.Number)

	var ok bool
	switch cli.Number {
	case "big":
		ok = run(newCalc[num.BigFloat](os.Stdout))
	case "decimal":
		ok = run(newCalc[num.Decimal](os.Stdout))
	default:
		ok = run(newCalc[num.Float](os.Stdout))
	}
	if !ok {
		os.Exit(1)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  =",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// runner is the part of a calc that doesn't depend on the number type.
type runner interface {
	line(src string) error
	repl() error
}

// run evaluates the command line arguments, or starts an interactive session
// if there are none. It returns false if anything failed.
func run(c runner) bool {
	if len(cli.Exprs) == 0 {
		if err := c.repl(); err != nil {
			pterm.Error.Println(err)
			return false
		}
		return true
	}
	ok := true
	for _, src := range cli.Exprs {
		if err := c.line(src); err != nil {
			pterm.Error.Println(src + ": " + err.Error())
			ok = false
		}
	}
	return ok
}

// calc evaluates expressions with numbers of type N.
type calc[N eval.Number[N]] struct {
	ctx  *eval.Context[N]
	opts []amath.ParseOption
	out  io.Writer
	echo bool
	dump bool
}

func newCalc[N eval.Number[N]](out io.Writer) *calc[N] {
	c := calc[N]{
		ctx:  eval.NewContext[N](),
		out:  out,
		echo: cli.Echo,
		dump: cli.Dump,
	}
	if cli.Strict {
		c.opts = append(c.opts, amath.StrictClose())
	}
	return &c
}

// line parses and evaluates one expression, printing its result.
func (c *calc[N]) line(src string) error {
	e, err := amath.Parse[N](src, c.opts...)
	if err != nil {
		return err
	}
	if c.dump {
		fmt.Fprintln(c.out, repr.String(e, repr.Indent("  ")))
	}
	if c.echo {
		fmt.Fprintf(c.out, "%v : ", e)
	}
	r, err := c.ctx.Eval(e)
	if err != nil {
		if c.echo {
			fmt.Fprintln(c.out)
		}
		return err
	}
	fmt.Fprintln(c.out, r)
	return nil
}

// repl reads expressions until EOF.
func (c *calc[N]) repl() error {
	rl, err := readline.New("amath> ")
	if err != nil {
		return err
	}
	defer rl.Close()
	trace.Infof("Quit with <ctrl>D")
	for {
		src, err := rl.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			if src == "" {
				return nil
			}
			continue
		case io.EOF:
			return nil
		default:
			return err
		}
		if src = strings.TrimSpace(src); src == "" {
			continue
		}
		if err := c.line(src); err != nil {
			pterm.Error.Println(err)
		}
	}
}
