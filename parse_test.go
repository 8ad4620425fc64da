package amath

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/zephyrtronium/amath/num"
)

type tree = *Node[num.Float]

func n(x float64) tree {
	return Num(num.Float(x))
}

func TestParseTrees(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "amath.parse")
	defer teardown()
	cases := []struct {
		name string
		src  string
		want tree
	}{
		{"num", "1", n(1)},
		{"real", "1.25", n(1.25)},
		{"exp", "1.5e3", n(1500)},
		{"neg", "-1", n(-1)},
		{"group-commas", "12,345", n(12345)},
		{"add", "1+2", Add(n(1), n(2))},
		{"sub", "1 - 2", Sub(n(1), n(2))},
		{"mul", "1*2", Mul(n(1), n(2))},
		{"times", "1×2", Mul(n(1), n(2))},
		{"div", "1/2", Div(n(1), n(2))},
		{"obelus", "1÷2", Div(n(1), n(2))},
		{"mod", "1%2", Mod(n(1), n(2))},
		{"pow", "1^2", Pow(n(1), n(2))},

		{"sub-left", "8 - 3 - 2", Sub(Sub(n(8), n(3)), n(2))},
		{"add-sub-left", "1 + 2 - 3 + 4", Add(Sub(Add(n(1), n(2)), n(3)), n(4))},
		{"term-left", "2 * 3 % 4 / 5", Div(Mod(Mul(n(2), n(3)), n(4)), n(5))},
		{"pow-left", "2^3^2", Pow(Pow(n(2), n(3)), n(2))},
		{"prec", "2 + 3 * 4", Add(n(2), Mul(n(3), n(4)))},
		{"prec-pow", "2 * 3 ^ 4", Mul(n(2), Pow(n(3), n(4)))},
		{"prec-all", "1 - 2 * 3 ^ 4 % 5", Sub(n(1), Mod(Mul(n(2), Pow(n(3), n(4))), n(5)))},
		{"neg-pow", "-2^2", Pow(n(-2), n(2))},
		{"unary", "3 + -5", Add(n(3), n(-5))},
		{"unary-sub", "3 - -5", Sub(n(3), n(-5))},
		{"unary-mul", "3 * -5", Mul(n(3), n(-5))},

		{"paren", "(2 + 3) * 4", Mul(Group(Add(n(2), n(3))), n(4))},
		{"paren-num", "(1)", Group(n(1))},
		{"paren-nested", "((1))", Group(Group(n(1)))},
		{"paren-unary", "(-1)", Group(n(-1))},
		{"paren-open", "(1 + 2", Group(Add(n(1), n(2)))},
		{"paren-wide", "（1+2）×3", Mul(Group(Add(n(1), n(2))), n(3))},
		{"paren-right", "4 - (3 - 2)", Sub(n(4), Group(Sub(n(3), n(2))))},

		{"call", "max(1,2,3)", Call("max", n(1), n(2), n(3))},
		{"call-one", "sqrt(4)", Call("sqrt", n(4))},
		{"call-none", "f()", Call[num.Float]("f")},
		{"call-wide", "f（1）", Call("f", n(1))},
		{"call-exprs", "max(1 + 2, 3 * 4)", Call("max", Add(n(1), n(2)), Mul(n(3), n(4)))},
		{"call-nested", "f(g(1), 2)", Call("f", Call("g", n(1)), n(2))},
		{"call-operand", "1 + f(2) * 3", Add(n(1), Mul(Call("f", n(2)), n(3)))},
		{"call-pow", "f(2)^2", Pow(Call("f", n(2)), n(2))},
		{"call-unclosed", "max(1,2", Call("max", n(1), n(2))},
		{"call-unclosed-nested", "f(g(1)", Call("f", Call("g", n(1)))},
		{"call-trailing-comma", "max(1,)", Call("max", n(1))},
		{"call-bad-arg", "f(1+)", Call[num.Float]("f")},
		{"call-op-arg", "f(*)", Call[num.Float]("f")},
		{"call-sign-arg", "f(-)", Call[num.Float]("f")},
		{"call-bad-chain-arg", "f(* + 1)", Call[num.Float]("f")},
		{"call-bad-second-arg", "max(1, *)", Call("max", n(1))},
		{"call-grouped-arg", "max(12,345)", Call("max", n(12), n(345))},
		{"call-and-grouping", "12,345 + max(12,345)", Add(n(12345), Call("max", n(12), n(345)))},

		{"trailing-tokens", "1 + 2)", Add(n(1), n(2))},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Parse[num.Float](c.src)
			if err != nil {
				t.Fatalf("parsing %q: %v", c.src, err)
			}
			if !got.Equal(c.want) {
				t.Errorf("parsing %q: wrong tree\nwant %s\ngot  %s", c.src, spew.Sdump(c.want), spew.Sdump(got))
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "amath.parse")
	defer teardown()
	cases := []struct {
		name string
		src  string
	}{
		{"empty", ""},
		{"spaces", "   "},
		{"op", "+"},
		{"missing-rhs", "1 +"},
		{"missing-lhs", "* 2"},
		{"double-op", "1 ++ 2"},
		{"double-div", "1 / / 2"},
		{"pow-first", "^2"},
		{"name", "x"},
		{"name-rhs", "2 + x"},
		{"name-no-call", "max 1"},
		{"name-then-op", "pi + 1"},
		{"call-bad-first-arg", "f(,1)"},
		{"call-unclosed-group", "f(1, (2"},
		{"empty-parens", "()"},
		{"close", ")"},
		{"bad-exp", "1e"},
		{"bad-exp-sign", "1e-5"},
		{"inf", "inf"},
		{"nan", "1 + NaN"},
		{"double-dot", "1.2.3"},
		{"comma", ","},
		{"symbol", "$"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Parse[num.Float](c.src)
			if !errors.Is(err, ErrSyntax) {
				t.Errorf("parsing %q: want ErrSyntax, got %v", c.src, err)
			}
			if got != nil {
				t.Errorf("parsing %q: want no tree, got %v", c.src, got)
			}
		})
	}
}

func TestParseStrictClose(t *testing.T) {
	if _, err := Parse[num.Float]("max(1,2", StrictClose()); !errors.Is(err, ErrSyntax) {
		t.Errorf("strict parse of unclosed call: want ErrSyntax, got %v", err)
	}
	// Empty argument lists and arguments that fail on their own tokens don't
	// need the retry.
	for _, src := range []string{"f()", "f(*)", "max(1, *)"} {
		if _, err := Parse[num.Float](src, StrictClose()); err != nil {
			t.Errorf("strict parse of %q: %v", src, err)
		}
	}
	// An argument that consumes the closing parenthesis does.
	if _, err := Parse[num.Float]("f(1+)", StrictClose()); !errors.Is(err, ErrSyntax) {
		t.Errorf("strict parse of argument ending in an operator: want ErrSyntax, got %v", err)
	}
	// The closing parenthesis of a group is optional in any case.
	if _, err := Parse[num.Float]("(1+2", StrictClose()); err != nil {
		t.Errorf("strict parse of unclosed group: %v", err)
	}
	a, err := Parse[num.Float]("max(1,2")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Parse[num.Float]("max(1,2)", StrictClose())
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Errorf("recovered %v differs from closed %v", a, b)
	}
}

func TestParseRetriesOnce(t *testing.T) {
	// Two missing parentheses are one too many.
	if _, err := Parse[num.Float]("f(g(1"); !errors.Is(err, ErrSyntax) {
		t.Errorf("want ErrSyntax, got %v", err)
	}
}

func TestParseTokens(t *testing.T) {
	e, err := ParseTokens[num.Float]([]string{"2", "*", "(", "3", "+", "4", ")"})
	if err != nil {
		t.Fatal(err)
	}
	want := Mul(n(2), Group(Add(n(3), n(4))))
	if !e.Equal(want) {
		t.Errorf("want %v, got %v", want, e)
	}
	// No retry.
	if _, err := ParseTokens[num.Float](Tokenize("max(1,2")); !errors.Is(err, ErrSyntax) {
		t.Errorf("want ErrSyntax, got %v", err)
	}
}

func TestParseDecimalPayload(t *testing.T) {
	e, err := Parse[num.Decimal]("0.1 + 12,345.67")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := e.String(), "0.1 + 12345.67"; got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestRoundTrip(t *testing.T) {
	srcs := []string{
		"1",
		"8 - 3 - 2",
		"2 + 3 * 4",
		"(2 + 3) * 4",
		"3 + -5",
		"3--5",
		"-2^2",
		"2^-1",
		"2^3^2",
		"1 - 2 * 3 ^ 4 % 5",
		"4 - (3 - 2)",
		"((1))",
		"（1+2）×3÷4",
		"max(1,2,3)",
		"f()",
		"max(1, 2",
		"f(g(1), (2 + 3) * 4) ^ 2",
		"12,345 + max(12,345)",
		"0.000001 * 1e21",
		"10 % 3 % 2",
	}
	for _, src := range srcs {
		a, err := Parse[num.Float](src)
		if err != nil {
			t.Errorf("parsing %q: %v", src, err)
			continue
		}
		s := a.String()
		b, err := Parse[num.Float](s)
		if err != nil {
			t.Errorf("reparsing %q printed from %q: %v", s, src, err)
			continue
		}
		if !a.Equal(b) {
			t.Errorf("%q printed as %q reparses differently\nfirst  %s\nsecond %s", src, s, spew.Sdump(a), spew.Sdump(b))
		}
		if s2 := b.String(); s2 != s {
			t.Errorf("%q prints as %q, then as %q", src, s, s2)
		}
	}
}
