package amath

import (
	"strings"
)

// Number is the constraint on the values at the leaves of an expression tree.
// ParseNumber decodes a literal token, with any grouping commas already
// removed; its receiver is the zero value and must not be used. String encodes
// a value such that ParseNumber decodes it to an equal value. Both must be
// deterministic.
type Number[N any] interface {
	ParseNumber(text string) (N, error)
	String() string
}

// Node is a node in an expression tree. Which fields are meaningful depends on
// Kind:
//
//	KindNumber                  Value
//	KindAdd ... KindPow         Left, Right
//	KindFunction                Name, Args
//	KindParen                   Left
//
// The parser never shares nodes between trees or modifies a tree after
// returning it.
type Node[N Number[N]] struct {
	Kind Kind

	Value N
	Name  string

	Left  *Node[N]
	Right *Node[N]
	Args  []*Node[N]
}

// Kind identifies the variant of a node.
type Kind int8

const (
	KindNone Kind = iota

	KindNumber   // literal Value
	KindAdd      // Left + Right
	KindSub      // Left - Right
	KindMul      // Left * Right
	KindDiv      // Left / Right
	KindMod      // Left % Right
	KindPow      // Left ^ Right
	KindFunction // Name(Args...)
	KindParen    // (Left)
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=Kind -trimprefix=Kind

// Priority is the binding strength of a node kind when printed. A child whose
// priority is lower than its parent's is parenthesized. Parsing does not use
// priorities; the grammar encodes precedence by itself.
func (k Kind) Priority() int {
	switch k {
	case KindAdd, KindSub:
		return 1
	case KindMul, KindDiv, KindMod:
		return 2
	case KindPow:
		return 3
	case KindFunction:
		return 4
	case KindParen:
		return 5
	case KindNumber:
		return 6
	default:
		return 0
	}
}

// Op returns the operator of a binary kind, or the empty string if k is not
// binary.
func (k Kind) Op() string {
	switch k {
	case KindAdd:
		return "+"
	case KindSub:
		return "-"
	case KindMul:
		return "*"
	case KindDiv:
		return "/"
	case KindMod:
		return "%"
	case KindPow:
		return "^"
	default:
		return ""
	}
}

// Binary reports whether k is an operator with two operands.
func (k Kind) Binary() bool {
	return k.Op() != ""
}

// Num creates a number leaf.
func Num[N Number[N]](v N) *Node[N] {
	return &Node[N]{Kind: KindNumber, Value: v}
}

// Add creates the node l + r.
func Add[N Number[N]](l, r *Node[N]) *Node[N] {
	return &Node[N]{Kind: KindAdd, Left: l, Right: r}
}

// Sub creates the node l - r.
func Sub[N Number[N]](l, r *Node[N]) *Node[N] {
	return &Node[N]{Kind: KindSub, Left: l, Right: r}
}

// Mul creates the node l * r.
func Mul[N Number[N]](l, r *Node[N]) *Node[N] {
	return &Node[N]{Kind: KindMul, Left: l, Right: r}
}

// Div creates the node l / r.
func Div[N Number[N]](l, r *Node[N]) *Node[N] {
	return &Node[N]{Kind: KindDiv, Left: l, Right: r}
}

// Mod creates the node l % r.
func Mod[N Number[N]](l, r *Node[N]) *Node[N] {
	return &Node[N]{Kind: KindMod, Left: l, Right: r}
}

// Pow creates the node l ^ r.
func Pow[N Number[N]](l, r *Node[N]) *Node[N] {
	return &Node[N]{Kind: KindPow, Left: l, Right: r}
}

// Call creates a function call node.
func Call[N Number[N]](name string, args ...*Node[N]) *Node[N] {
	if args == nil {
		args = []*Node[N]{}
	}
	return &Node[N]{Kind: KindFunction, Name: name, Args: args}
}

// Group creates an explicit parenthesis around x.
func Group[N Number[N]](x *Node[N]) *Node[N] {
	return &Node[N]{Kind: KindParen, Left: x}
}

// Priority returns the priority of the node's kind.
func (n *Node[N]) Priority() int {
	return n.Kind.Priority()
}

// Equal reports whether two trees have the same shape, function names, and
// values. Values are compared by their String forms.
func (n *Node[N]) Equal(m *Node[N]) bool {
	if n == nil || m == nil {
		return n == m
	}
	if n.Kind != m.Kind {
		return false
	}
	switch n.Kind {
	case KindNumber:
		return n.Value.String() == m.Value.String()
	case KindFunction:
		if n.Name != m.Name || len(n.Args) != len(m.Args) {
			return false
		}
		for i, a := range n.Args {
			if !a.Equal(m.Args[i]) {
				return false
			}
		}
		return true
	case KindParen:
		return n.Left.Equal(m.Left)
	default:
		return n.Left.Equal(m.Left) && n.Right.Equal(m.Right)
	}
}

// String renders the expression in canonical form. Parentheses appear only
// around explicitly grouped subexpressions and where an operand binds more
// loosely than its operator, so the result parses back to an equal tree.
func (n *Node[N]) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

func (n *Node[N]) fmt(b *strings.Builder) {
	switch n.Kind {
	case KindNumber:
		b.WriteString(n.Value.String())
	case KindAdd, KindSub, KindMul, KindDiv, KindMod, KindPow:
		p := n.Priority()
		n.Left.wrap(b, p)
		b.WriteByte(' ')
		b.WriteString(n.Kind.Op())
		b.WriteByte(' ')
		n.Right.wrap(b, p)
	case KindFunction:
		b.WriteString(n.Name)
		b.WriteByte('(')
		for i, a := range n.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			a.fmt(b)
		}
		b.WriteByte(')')
	case KindParen:
		b.WriteByte('(')
		n.Left.fmt(b)
		b.WriteByte(')')
	default:
		panic("amath: invalid node kind " + n.Kind.String())
	}
}

// wrap formats n, parenthesized if it binds more loosely than prio.
func (n *Node[N]) wrap(b *strings.Builder, prio int) {
	if n.Priority() < prio {
		b.WriteByte('(')
		n.fmt(b)
		b.WriteByte(')')
		return
	}
	n.fmt(b)
}
