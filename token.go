package lox

import (
	"strconv"
)

// Token is a lexical token. Literal tokens carry their decoded value in Num
// or Str.
type Token struct {
	// Kind is the token's kind.
	Kind TokenKind
	// Lexeme is the source text of the token. It is empty for EOF.
	Lexeme string
	// Num is the value of a TokenNumber.
	Num float64
	// Str is the decoded contents of a TokenString, without quotes.
	Str string
	// Line is the 1-based line on which the token starts.
	Line int
	// Col is the 1-based rune column at which the token starts.
	Col int
}

func (t Token) String() string {
	s := t.Kind.String() + " " + strconv.Quote(t.Lexeme)
	switch t.Kind {
	case TokenNumber:
		s += " " + formatNumber(t.Num)
	case TokenString:
		s += " " + strconv.Quote(t.Str)
	}
	return s + " @" + strconv.Itoa(t.Line) + ":" + strconv.Itoa(t.Col)
}

// TokenKind is the kind of a lexical token.
type TokenKind int8

const (
	TokenNone TokenKind = iota

	// Single-character tokens.
	TokenLeftParen
	TokenRightParen
	TokenLeftBrace
	TokenRightBrace
	TokenComma
	TokenDot
	TokenMinus
	TokenPlus
	TokenSemicolon
	TokenSlash
	TokenStar

	// One- or two-character tokens.
	TokenBang
	TokenBangEqual
	TokenEqual
	TokenEqualEqual
	TokenGreater
	TokenGreaterEqual
	TokenLess
	TokenLessEqual

	// Literals.
	TokenIdentifier
	TokenString
	TokenNumber

	// Keywords.
	TokenAnd
	TokenClass
	TokenElse
	TokenFalse
	TokenFun
	TokenFor
	TokenIf
	TokenNil
	TokenOr
	TokenPrint
	TokenReturn
	TokenSuper
	TokenThis
	TokenTrue
	TokenVar
	TokenWhile

	// TokenEOF ends every scanned token sequence.
	TokenEOF
)

var kindnames = [...]string{
	TokenNone:         "None",
	TokenLeftParen:    "LeftParen",
	TokenRightParen:   "RightParen",
	TokenLeftBrace:    "LeftBrace",
	TokenRightBrace:   "RightBrace",
	TokenComma:        "Comma",
	TokenDot:          "Dot",
	TokenMinus:        "Minus",
	TokenPlus:         "Plus",
	TokenSemicolon:    "Semicolon",
	TokenSlash:        "Slash",
	TokenStar:         "Star",
	TokenBang:         "Bang",
	TokenBangEqual:    "BangEqual",
	TokenEqual:        "Equal",
	TokenEqualEqual:   "EqualEqual",
	TokenGreater:      "Greater",
	TokenGreaterEqual: "GreaterEqual",
	TokenLess:         "Less",
	TokenLessEqual:    "LessEqual",
	TokenIdentifier:   "Identifier",
	TokenString:       "String",
	TokenNumber:       "Number",
	TokenAnd:          "And",
	TokenClass:        "Class",
	TokenElse:         "Else",
	TokenFalse:        "False",
	TokenFun:          "Fun",
	TokenFor:          "For",
	TokenIf:           "If",
	TokenNil:          "Nil",
	TokenOr:           "Or",
	TokenPrint:        "Print",
	TokenReturn:       "Return",
	TokenSuper:        "Super",
	TokenThis:         "This",
	TokenTrue:         "True",
	TokenVar:          "Var",
	TokenWhile:        "While",
	TokenEOF:          "EOF",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(kindnames) {
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindnames[k]
}

// keywords maps reserved words to their token kinds.
var keywords = map[string]TokenKind{
	"and":    TokenAnd,
	"class":  TokenClass,
	"else":   TokenElse,
	"false":  TokenFalse,
	"for":    TokenFor,
	"fun":    TokenFun,
	"if":     TokenIf,
	"nil":    TokenNil,
	"or":     TokenOr,
	"print":  TokenPrint,
	"return": TokenReturn,
	"super":  TokenSuper,
	"this":   TokenThis,
	"true":   TokenTrue,
	"var":    TokenVar,
	"while":  TokenWhile,
}
