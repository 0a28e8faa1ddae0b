package lox

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTrees(t *testing.T) {
	cases := []struct {
		name string
		src  string
		tree string
	}{
		{"num", "1", "1"},
		{"real", "45.67", "45.67"},
		{"string", `"foo"`, `"foo"`},
		{"true", "true", "true"},
		{"false", "false", "false"},
		{"nil", "nil", "nil"},
		{"group", "(1)", "(group 1)"},
		{"nested-group", "((1))", "(group (group 1))"},
		{"neg", "-1", "(- 1)"},
		{"not", "!true", "(! true)"},
		{"notnot", "!!true", "(! (! true))"},
		{"negneg", "--5", "(- (- 5))"},
		{"add", "1 + 2", "(+ 1 2)"},
		{"sub3", "8 - 3 - 2", "(- (- 8 3) 2)"},
		{"div3", "8 / 4 / 2", "(/ (/ 8 4) 2)"},
		{"eq3", "1 == 2 == 3", "(== (== 1 2) 3)"},
		{"cmp3", "1 < 2 < 3", "(< (< 1 2) 3)"},
		{"prec-term-factor", "1 + 2 * 3", "(+ 1 (* 2 3))"},
		{"prec-factor-term", "1 * 2 + 3", "(+ (* 1 2) 3)"},
		{"prec-unary", "-1 * 2", "(* (- 1) 2)"},
		{"prec-cmp", "1 + 2 > 3", "(> (+ 1 2) 3)"},
		{"prec-eq", "1 > 2 == 3 <= 4", "(== (> 1 2) (<= 3 4))"},
		{"group-prec", "(1 + 2) * 3", "(* (group (+ 1 2)) 3)"},
		{"book", "-123 * (45.67)", "(* (- 123) (group 45.67))"},
		{"all", "!(1 + 2 * 3 - 4 / 5 >= 6) != nil", "(!= (! (group (>= (- (+ 1 (* 2 3)) (/ 4 5)) 6))) nil)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := ParseString(c.src)
			require.NoError(t, err)
			assert.Equal(t, c.tree, e.String())
		})
	}
}

func TestParseNodes(t *testing.T) {
	e, err := ParseString("(1) - -x2")
	require.Error(t, err, "identifiers are not expressions")
	assert.Nil(t, e)

	e, err = ParseString("(1) - -2")
	require.NoError(t, err)
	b, ok := e.(*Binary)
	require.True(t, ok, "root is %T", e)
	assert.Equal(t, TokenMinus, b.Op.Kind)
	g, ok := b.Left.(*Grouping)
	require.True(t, ok, "left is %T", b.Left)
	assert.Equal(t, &Literal{Value: Token{Kind: TokenNumber, Lexeme: "1", Num: 1, Line: 1, Col: 2}}, g.Expr)
	u, ok := b.Right.(*Unary)
	require.True(t, ok, "right is %T", b.Right)
	assert.Equal(t, 7, u.Op.Col)
	l, ok := u.Right.(*Literal)
	require.True(t, ok, "operand is %T", u.Right)
	assert.Equal(t, 2.0, l.Value.Num)
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		kind TokenKind
		msg  string
		err  string
	}{
		{"empty", "", TokenEOF, "Expect expression.", "[line 1] Error at end: Expect expression."},
		{"unclosed", "(1 + 2", TokenEOF, "Expect ')' after expression.", "[line 1] Error at end: Expect ')' after expression."},
		{"dangling-op", "1 +", TokenEOF, "Expect expression.", "[line 1] Error at end: Expect expression."},
		{"leading-op", "* 2", TokenStar, "Expect expression.", "[line 1] Error at '*': Expect expression."},
		{"empty-group", "()", TokenRightParen, "Expect expression.", "[line 1] Error at ')': Expect expression."},
		{"ident", "x", TokenIdentifier, "Expect expression.", "[line 1] Error at 'x': Expect expression."},
		{"keyword", "var", TokenVar, "Expect expression.", "[line 1] Error at 'var': Expect expression."},
		{"trailing", "1 2", TokenNumber, "Expect end of expression.", "[line 1] Error at '2': Expect end of expression."},
		{"extra-close", "(1))", TokenRightParen, "Expect end of expression.", "[line 1] Error at ')': Expect end of expression."},
		{"second-line", "1 +\n+", TokenPlus, "Expect expression.", "[line 2] Error at '+': Expect expression."},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := ParseString(c.src)
			assert.Nil(t, e)
			var perr *ParseError
			require.True(t, errors.As(err, &perr), "error is %#v", err)
			assert.Equal(t, c.kind, perr.Token.Kind)
			assert.Equal(t, c.msg, perr.Message)
			assert.Equal(t, c.err, perr.Error())
			var ierr InputError
			require.True(t, errors.As(err, &ierr))
			assert.Equal(t, perr.Token.Line, ierr.Pos())
		})
	}
}

func TestParseLexErrorsFatal(t *testing.T) {
	e, err := ParseString("1 + @")
	assert.Nil(t, e)
	var lerr *LexError
	require.True(t, errors.As(err, &lerr), "error is %#v", err)
}

func TestParseMissingEOF(t *testing.T) {
	// A sequence without its EOF token still parses as though it had one.
	e, err := Parse([]Token{{Kind: TokenNumber, Lexeme: "1", Num: 1, Line: 1, Col: 1}})
	require.NoError(t, err)
	assert.Equal(t, "1", e.String())

	_, err = Parse(nil)
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, TokenEOF, perr.Token.Kind)
}

func TestSynchronize(t *testing.T) {
	cases := []struct {
		name string
		src  string
		from int
		stop TokenKind
	}{
		{"semicolon", "1 + ; 2", 2, TokenNumber},
		{"keyword", "1 + print 2", 1, TokenPrint},
		{"eof", "1 + 2 3", 0, TokenEOF},
		{"at-end", "", 0, TokenEOF},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := ScanString(c.src)
			require.NoError(t, err)
			p := parser{toks: toks, cur: c.from}
			p.synchronize()
			assert.Equal(t, c.stop, p.peek().Kind)
		})
	}
}

func TestParseDoesNotShareState(t *testing.T) {
	toks, err := ScanString("1 + 2")
	require.NoError(t, err)
	a, err := Parse(toks)
	require.NoError(t, err)
	b, err := Parse(toks)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.NotSame(t, a, b)
}
