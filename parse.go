package amath

import (
	"strings"
	"unicode"
)

// Expr    = Term { ('+' | '-') Term }
// Term    = Factor { ('*' | '×' | '/' | '÷' | '%') Factor }
// Factor  = Primary { '^' Primary }
// Primary = num | name '(' [ Expr { ',' Expr } ] ')' | '(' Expr [ ')' ]
//
// Every repetition folds to the left, including ^.

// Parse parses an expression. Literals are decoded with N's ParseNumber after
// removing grouping commas. Any failure is reported as ErrSyntax.
//
// If src does not parse, Parse tries once more as though src ended with one
// more closing parenthesis, so that an unclosed call like "max(1, 2" is still
// accepted. StrictClose disables that. Tokens following a complete expression
// are ignored.
func Parse[N Number[N]](src string, opts ...ParseOption) (*Node[N], error) {
	var p parsectx
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	toks := Tokenize(src)
	if n := parsetokens[N](toks); n != nil {
		return n, nil
	}
	if p.strict {
		return nil, ErrSyntax
	}
	tracer().Debugf("retrying %q with closing parenthesis", src)
	// A ) always ends the token before it and never joins another token, so
	// appending one to the tokens is the same as appending one to src.
	toks = append(toks[:len(toks):len(toks)], ")")
	if n := parsetokens[N](toks); n != nil {
		return n, nil
	}
	return nil, ErrSyntax
}

// ParseTokens parses a token sequence as produced by Tokenize. Unlike Parse,
// it makes only one attempt.
func ParseTokens[N Number[N]](toks []string) (*Node[N], error) {
	if n := parsetokens[N](toks); n != nil {
		return n, nil
	}
	return nil, ErrSyntax
}

func parsetokens[N Number[N]](toks []string) *Node[N] {
	p := parser[N]{toks: toks}
	return p.expr()
}

// parser is a cursor over a token sequence. Each parsing method returns nil
// to indicate that the input is not an expression; callers propagate that
// without trying alternatives.
type parser[N Number[N]] struct {
	toks []string
	pos  int
}

// peek returns the next token without consuming it, or the empty string at the
// end of input.
func (p *parser[N]) peek() string {
	if p.pos >= len(p.toks) {
		return ""
	}
	return p.toks[p.pos]
}

func (p *parser[N]) expr() *Node[N] {
	return p.fold(p.term, sumop)
}

func (p *parser[N]) term() *Node[N] {
	return p.fold(p.factor, prodop)
}

func (p *parser[N]) factor() *Node[N] {
	return p.fold(p.primary, powop)
}

// fold parses operands separated by operators for which op returns a kind
// other than KindNone, building nodes left to right. The whole chain is
// consumed even when an operand fails.
func (p *parser[N]) fold(operand func() *Node[N], op func(string) Kind) *Node[N] {
	n := operand()
	for {
		k := op(p.peek())
		if k == KindNone {
			return n
		}
		p.pos++
		rhs := operand()
		if n == nil || rhs == nil {
			return nil
		}
		n = &Node[N]{Kind: k, Left: n, Right: rhs}
	}
}

func sumop(tok string) Kind {
	switch tok {
	case "+":
		return KindAdd
	case "-":
		return KindSub
	default:
		return KindNone
	}
}

func prodop(tok string) Kind {
	switch tok {
	case "*", "×":
		return KindMul
	case "/", "÷":
		return KindDiv
	case "%":
		return KindMod
	default:
		return KindNone
	}
}

func powop(tok string) Kind {
	if tok == "^" {
		return KindPow
	}
	return KindNone
}

func (p *parser[N]) primary() *Node[N] {
	if p.pos >= len(p.toks) {
		return nil
	}
	tok := p.toks[p.pos]
	p.pos++
	// A name is a call unless it is the last token.
	if isname(tok) && p.pos < len(p.toks) {
		return p.call(tok)
	}
	var zero N
	v, err := zero.ParseNumber(strings.ReplaceAll(tok, ",", ""))
	if err == nil {
		return &Node[N]{Kind: KindNumber, Value: v}
	}
	if isopen(tok) {
		x := p.expr()
		// The closing parenthesis is optional.
		if isclose(p.peek()) {
			p.pos++
		}
		if x == nil {
			return nil
		}
		return &Node[N]{Kind: KindParen, Left: x}
	}
	tracer().Debugf("no expression at token %d %q: %v", p.pos, tok, err)
	return nil
}

// call parses the parenthesized argument list of a call to name.
func (p *parser[N]) call(name string) *Node[N] {
	if !isopen(p.peek()) {
		return nil
	}
	p.pos++
	args := []*Node[N]{}
	for !isclose(p.peek()) {
		// An argument that fails to parse ends the list rather than the call.
		// Its tokens stay consumed.
		a := p.expr()
		if a == nil {
			break
		}
		args = append(args, a)
		if p.peek() != "," {
			break
		}
		p.pos++
	}
	if !isclose(p.peek()) {
		return nil
	}
	p.pos++
	return &Node[N]{Kind: KindFunction, Name: name, Args: args}
}

// isname reports whether tok is entirely letters.
func isname(tok string) bool {
	if tok == "" {
		return false
	}
	for _, r := range tok {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func isopen(tok string) bool {
	return tok == "(" || tok == string(wideOpen)
}

func isclose(tok string) bool {
	return tok == ")" || tok == string(wideClose)
}
