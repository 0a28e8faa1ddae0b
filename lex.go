package lox

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"
)

// ErrorFunc receives diagnostics from the scanner. Scanning continues after
// each report.
type ErrorFunc func(err *LexError)

// Scan converts source text to tokens. Lexical errors are passed to report,
// which may be nil to ignore them, and do not stop scanning. The result
// always ends with exactly one TokenEOF.
//
// If reading src fails with an error other than io.EOF, that error is
// reported and the tokens scanned so far are returned.
func Scan(src io.RuneReader, report ErrorFunc) []Token {
	if report == nil {
		report = func(*LexError) {}
	}
	l := lexer{
		src:    src,
		line:   1,
		col:    1,
		report: report,
	}
	var toks []Token
	for {
		tok := l.next()
		toks = append(toks, tok)
		if tok.Kind == TokenEOF {
			break
		}
	}
	if l.err != nil && !errors.Is(l.err, io.EOF) {
		report(&LexError{Line: l.line, Col: l.col, Message: "Read failed.", Err: l.err})
	}
	return toks
}

// ScanString scans a string. Every lexical error is collected into the
// returned error, which is nil if there were none. The tokens are always
// returned so that callers may decide whether errors are fatal.
func ScanString(src string) ([]Token, error) {
	var errs *multierror.Error
	toks := Scan(strings.NewReader(src), func(err *LexError) {
		errs = multierror.Append(errs, err)
	})
	return toks, errs.ErrorOrNil()
}

// scanned is a rune read from the source along with its position.
type scanned struct {
	r         rune
	line, col int
	// bad is set when r replaces an invalid UTF-8 byte.
	bad bool
}

type lexer struct {
	src io.RuneReader
	// ahead holds runes that were read and then unread, next rune last.
	ahead []scanned
	// buf holds the lexeme of the token being scanned.
	buf strings.Builder
	// line and col are the position of the next rune.
	line, col int
	// err is the first error from src. Once set, the source is exhausted.
	err    error
	report ErrorFunc
}

// readRune reads a rune and advances the lexer's position info.
func (l *lexer) readRune() (scanned, error) {
	if n := len(l.ahead); n > 0 {
		s := l.ahead[n-1]
		l.ahead = l.ahead[:n-1]
		l.advance(s)
		return s, nil
	}
	if l.err != nil {
		return scanned{}, l.err
	}
	r, sz, err := l.src.ReadRune()
	if err != nil {
		l.err = err
		return scanned{}, err
	}
	s := scanned{r: r, line: l.line, col: l.col, bad: r == utf8.RuneError && sz == 1}
	l.advance(s)
	return s, nil
}

func (l *lexer) advance(s scanned) {
	if s.r == '\n' {
		l.line, l.col = s.line+1, 1
		return
	}
	l.line, l.col = s.line, s.col+1
}

// unreadRune pushes s back so that it is the next rune read. Runes must be
// unread in the reverse of the order in which they were read.
func (l *lexer) unreadRune(s scanned) {
	l.ahead = append(l.ahead, s)
	l.line, l.col = s.line, s.col
}

// match consumes the next rune if it is want.
func (l *lexer) match(want rune) bool {
	s, err := l.readRune()
	if err != nil {
		return false
	}
	if s.r != want {
		l.unreadRune(s)
		return false
	}
	l.buf.WriteRune(s.r)
	return true
}

// next scans the next token from the input. Once the input is exhausted, the
// result is an EOF token.
func (l *lexer) next() Token {
	for {
		l.buf.Reset()
		s, err := l.readRune()
		if err != nil {
			return Token{Kind: TokenEOF, Line: l.line, Col: l.col}
		}
		l.buf.WriteRune(s.r)
		switch s.r {
		case ' ', '\t', '\r', '\n':
			continue
		case '(':
			return l.token(TokenLeftParen, s)
		case ')':
			return l.token(TokenRightParen, s)
		case '{':
			return l.token(TokenLeftBrace, s)
		case '}':
			return l.token(TokenRightBrace, s)
		case ',':
			return l.token(TokenComma, s)
		case '.':
			return l.token(TokenDot, s)
		case '-':
			return l.token(TokenMinus, s)
		case '+':
			return l.token(TokenPlus, s)
		case ';':
			return l.token(TokenSemicolon, s)
		case '*':
			return l.token(TokenStar, s)
		case '!':
			return l.either('=', TokenBangEqual, TokenBang, s)
		case '=':
			return l.either('=', TokenEqualEqual, TokenEqual, s)
		case '<':
			return l.either('=', TokenLessEqual, TokenLess, s)
		case '>':
			return l.either('=', TokenGreaterEqual, TokenGreater, s)
		case '/':
			if l.match('/') {
				l.skipLine()
				continue
			}
			return l.token(TokenSlash, s)
		case '"':
			tok, ok := l.scanString(s)
			if !ok {
				continue
			}
			return tok
		}
		switch {
		case '0' <= s.r && s.r <= '9':
			return l.scanNum(s)
		case s.r == '_', unicode.IsLetter(s.r):
			return l.scanIdent(s)
		}
		if s.bad {
			l.report(&LexError{Line: s.line, Col: s.col, Message: "Invalid UTF-8."})
			continue
		}
		l.report(&LexError{Line: s.line, Col: s.col, Text: string(s.r), Message: "Unexpected character."})
	}
}

func (l *lexer) token(kind TokenKind, start scanned) Token {
	return Token{Kind: kind, Lexeme: l.buf.String(), Line: start.line, Col: start.col}
}

// either produces two if the next rune is want and one otherwise.
func (l *lexer) either(want rune, two, one TokenKind, start scanned) Token {
	if l.match(want) {
		return l.token(two, start)
	}
	return l.token(one, start)
}

// skipLine discards runes through the end of the line.
func (l *lexer) skipLine() {
	for {
		s, err := l.readRune()
		if err != nil || s.r == '\n' {
			return
		}
	}
}

// scanString scans a string literal after its opening quote. Strings may span
// lines. Invalid UTF-8 is reported and kept as U+FFFD. If the input ends
// before the closing quote, the error is reported and the result is false.
func (l *lexer) scanString(start scanned) (Token, bool) {
	for {
		s, err := l.readRune()
		if err != nil {
			l.report(&LexError{Line: l.line, Col: l.col, Text: l.buf.String(), Message: "Unterminated string."})
			return Token{}, false
		}
		if s.bad {
			l.report(&LexError{Line: s.line, Col: s.col, Message: "Invalid UTF-8."})
		}
		l.buf.WriteRune(s.r)
		if s.r == '"' {
			tok := l.token(TokenString, start)
			tok.Str = tok.Lexeme[1 : len(tok.Lexeme)-1]
			return tok, true
		}
	}
}

// scanNum scans a number literal. A fractional part requires at least one
// digit after the dot; otherwise the dot is left for the next token.
func (l *lexer) scanNum(start scanned) Token {
	l.digits()
	if dot, err := l.readRune(); err == nil {
		if dot.r != '.' {
			l.unreadRune(dot)
		} else if d, err := l.readRune(); err != nil {
			l.unreadRune(dot)
		} else if d.r < '0' || '9' < d.r {
			l.unreadRune(d)
			l.unreadRune(dot)
		} else {
			l.buf.WriteRune(dot.r)
			l.buf.WriteRune(d.r)
			l.digits()
		}
	}
	tok := l.token(TokenNumber, start)
	// The only possible error is overflow to ±Inf, and the float is correct
	// in that case.
	tok.Num, _ = strconv.ParseFloat(tok.Lexeme, 64)
	return tok
}

// digits consumes a run of decimal digits.
func (l *lexer) digits() {
	for {
		s, err := l.readRune()
		if err != nil {
			return
		}
		if s.r < '0' || '9' < s.r {
			l.unreadRune(s)
			return
		}
		l.buf.WriteRune(s.r)
	}
}

func (l *lexer) scanIdent(start scanned) Token {
	for {
		s, err := l.readRune()
		if err != nil {
			break
		}
		if s.r != '_' && !unicode.IsLetter(s.r) && !unicode.IsDigit(s.r) {
			l.unreadRune(s)
			break
		}
		l.buf.WriteRune(s.r)
	}
	tok := l.token(TokenIdentifier, start)
	if k, ok := keywords[tok.Lexeme]; ok {
		tok.Kind = k
	}
	return tok
}

// LexError is a lexical error. It implements InputError.
type LexError struct {
	// Line and Col are the position of the error.
	Line, Col int
	// Text is the offending source text, if any.
	Text string
	// Message describes the error.
	Message string
	// Err is the underlying read error, if any.
	Err error
}

func (err *LexError) Error() string {
	msg := "Error: " + err.Message
	if err.Text != "" {
		msg += " " + strconv.Quote(err.Text)
	}
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return errline(err.Line, msg)
}

func (err *LexError) Unwrap() error {
	return err.Err
}

func (err *LexError) Pos() int {
	return err.Line
}
