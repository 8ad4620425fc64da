package amath

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Operators contains the runes after which a minus sign begins a negative
// number rather than a subtraction.
const Operators = "+-×*/%^÷"

// Full-width bracket forms accepted in place of ( and ).
const (
	wideOpen  = '（'
	wideClose = '）'
)

// Tokenize splits src into tokens in a single pass. Tokens are numbers (which
// may carry a leading minus sign and letter suffixes), identifiers, and single
// operator, separator, or parenthesis runes. Full-width parentheses are
// emitted as ( and ), and ÷ as /. Whitespace separates nothing; it is simply
// dropped, so "1 2" is the single token "12".
//
// Tokenize never fails. Input that is not an expression yields tokens which
// the parser rejects.
func Tokenize(src string) []string {
	var (
		toks  []string
		acc   strings.Builder
		prev  rune
		seen  bool
		depth int
	)
	flush := func() {
		if acc.Len() > 0 {
			toks = append(toks, acc.String())
			acc.Reset()
		}
	}
	for _, r := range src {
		if unicode.IsSpace(r) {
			continue
		}
		switch r {
		case '(', wideOpen:
			depth++
		case ')', wideClose:
			depth--
		}
		switch {
		case unicode.IsNumber(r), r == '.', r == '-' && negates(prev, seen):
			acc.WriteRune(r)
		case r == ',' && depth == 0 && endsInNumber(acc.String()):
			// Thousands separator. It doesn't count as the previous rune.
			continue
		case unicode.IsLetter(r):
			// Names, and suffixes like the e in 1e5.
			acc.WriteRune(r)
		default:
			flush()
			switch r {
			case wideOpen:
				toks = append(toks, "(")
			case wideClose:
				toks = append(toks, ")")
			case '÷':
				toks = append(toks, "/")
			default:
				toks = append(toks, string(r))
			}
		}
		prev, seen = r, true
	}
	flush()
	return toks
}

// negates reports whether a minus sign following prev is a sign rather than
// an operator.
func negates(prev rune, seen bool) bool {
	if !seen {
		return true
	}
	return prev == '(' || prev == wideOpen || strings.ContainsRune(Operators, prev)
}

// endsInNumber reports whether the last rune of s is a number.
func endsInNumber(s string) bool {
	r, sz := utf8.DecodeLastRuneInString(s)
	return sz > 0 && unicode.IsNumber(r)
}
