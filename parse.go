package lox

// Parse parses a token sequence, as produced by Scan, into a single
// expression. The entire sequence up to EOF must form the expression. On
// failure, the result is nil and a *ParseError.
func Parse(tokens []Token) (Expr, error) {
	p := parser{toks: tokens}
	e, err := p.expression()
	if err == nil && !p.atEnd() {
		err = p.error(p.peek(), "Expect end of expression.")
	}
	if err != nil {
		p.synchronize()
		return nil, err
	}
	return e, nil
}

// ParseString scans and parses src. Lexical errors are fatal.
func ParseString(src string) (Expr, error) {
	toks, err := ScanString(src)
	if err != nil {
		return nil, err
	}
	return Parse(toks)
}

type parser struct {
	toks []Token
	cur  int
}

// ladder lists the binary operators at each precedence level, least binding
// first. All of them are left-associative.
var ladder = [...][]TokenKind{
	{TokenBangEqual, TokenEqualEqual},
	{TokenGreater, TokenGreaterEqual, TokenLess, TokenLessEqual},
	{TokenMinus, TokenPlus},
	{TokenSlash, TokenStar},
}

func (p *parser) expression() (Expr, error) {
	return p.binary(0)
}

// binary parses a left-associative chain of operators at the given level of
// the ladder. Levels past the end of the ladder parse unary expressions.
func (p *parser) binary(level int) (Expr, error) {
	if level >= len(ladder) {
		return p.unary()
	}
	e, err := p.binary(level + 1)
	if err != nil {
		return nil, err
	}
	for p.match(ladder[level]...) {
		op := p.previous()
		r, err := p.binary(level + 1)
		if err != nil {
			return nil, err
		}
		e = &Binary{Left: e, Op: op, Right: r}
	}
	return e, nil
}

func (p *parser) unary() (Expr, error) {
	if p.match(TokenBang, TokenMinus) {
		op := p.previous()
		r, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &Unary{Op: op, Right: r}, nil
	}
	return p.primary()
}

func (p *parser) primary() (Expr, error) {
	if p.match(TokenFalse, TokenTrue, TokenNil, TokenNumber, TokenString) {
		return &Literal{Value: p.previous()}, nil
	}
	if p.match(TokenLeftParen) {
		e, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(TokenRightParen, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return &Grouping{Expr: e}, nil
	}
	return nil, p.error(p.peek(), "Expect expression.")
}

// synchronize discards tokens until the start of the next statement, i.e.
// just after a semicolon or at a statement keyword. Expressions contain
// neither, so after an expression error this skips to EOF.
func (p *parser) synchronize() {
	p.advance()
	for !p.atEnd() {
		if p.previous().Kind == TokenSemicolon {
			return
		}
		switch p.peek().Kind {
		case TokenClass, TokenFun, TokenVar, TokenFor, TokenIf, TokenWhile, TokenPrint, TokenReturn:
			return
		}
		p.advance()
	}
}

// match consumes the next token if it has any of the given kinds.
func (p *parser) match(kinds ...TokenKind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) consume(kind TokenKind, msg string) (Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return Token{}, p.error(p.peek(), msg)
}

func (p *parser) check(kind TokenKind) bool {
	if p.atEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *parser) advance() Token {
	if !p.atEnd() {
		p.cur++
	}
	return p.previous()
}

func (p *parser) atEnd() bool {
	return p.peek().Kind == TokenEOF
}

// peek returns the current token. A sequence missing its EOF token behaves
// as if it had one.
func (p *parser) peek() Token {
	if p.cur >= len(p.toks) {
		var t Token
		if n := len(p.toks); n > 0 {
			t.Line, t.Col = p.toks[n-1].Line, p.toks[n-1].Col
		}
		t.Kind = TokenEOF
		return t
	}
	return p.toks[p.cur]
}

func (p *parser) previous() Token {
	if p.cur == 0 {
		return Token{}
	}
	return p.toks[p.cur-1]
}

func (p *parser) error(tok Token, msg string) error {
	return &ParseError{Token: tok, Message: msg}
}
