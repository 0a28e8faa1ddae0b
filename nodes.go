package lox

import (
	"strconv"
	"strings"
)

// Expr is a node in the expression tree. The concrete types are *Literal,
// *Grouping, *Unary, and *Binary. Each node owns its children.
type Expr interface {
	// String formats the expression with every node parenthesized, e.g.
	// "(* (- 123) (group 45.67))".
	String() string

	fmt(b *strings.Builder)
	exprNode()
}

// Literal is a number, string, boolean, or nil literal.
type Literal struct {
	// Value is the literal token. Its kind is TokenNumber, TokenString,
	// TokenTrue, TokenFalse, or TokenNil.
	Value Token
}

// Grouping is a parenthesized expression.
type Grouping struct {
	Expr Expr
}

// Unary is a prefix operator applied to an operand.
type Unary struct {
	// Op is TokenBang or TokenMinus.
	Op    Token
	Right Expr
}

// Binary is an infix operator applied to two operands.
type Binary struct {
	Left  Expr
	Op    Token
	Right Expr
}

func (*Literal) exprNode()  {}
func (*Grouping) exprNode() {}
func (*Unary) exprNode()    {}
func (*Binary) exprNode()   {}

func (n *Literal) String() string  { return format(n) }
func (n *Grouping) String() string { return format(n) }
func (n *Unary) String() string    { return format(n) }
func (n *Binary) String() string   { return format(n) }

func format(e Expr) string {
	var b strings.Builder
	e.fmt(&b)
	return b.String()
}

func (n *Literal) fmt(b *strings.Builder) {
	switch n.Value.Kind {
	case TokenNumber:
		b.WriteString(formatNumber(n.Value.Num))
	case TokenString:
		b.WriteString(strconv.Quote(n.Value.Str))
	default:
		b.WriteString(n.Value.Lexeme)
	}
}

func (n *Grouping) fmt(b *strings.Builder) {
	b.WriteString("(group ")
	n.Expr.fmt(b)
	b.WriteByte(')')
}

func (n *Unary) fmt(b *strings.Builder) {
	b.WriteByte('(')
	b.WriteString(n.Op.Lexeme)
	b.WriteByte(' ')
	n.Right.fmt(b)
	b.WriteByte(')')
}

func (n *Binary) fmt(b *strings.Builder) {
	b.WriteByte('(')
	b.WriteString(n.Op.Lexeme)
	b.WriteByte(' ')
	n.Left.fmt(b)
	b.WriteByte(' ')
	n.Right.fmt(b)
	b.WriteByte(')')
}
