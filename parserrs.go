package lox

import "strconv"

// ParseError is an error indicating a token where the grammar does not allow
// it. It implements InputError.
type ParseError struct {
	// Token is the token at which parsing failed. It is an EOF token when the
	// input ended early.
	Token Token
	// Message describes what the parser expected.
	Message string
}

func (err *ParseError) Error() string {
	if err.Token.Kind == TokenEOF {
		return errline(err.Token.Line, "Error at end: "+err.Message)
	}
	return errline(err.Token.Line, "Error at '"+err.Token.Lexeme+"': "+err.Message)
}

func (err *ParseError) Pos() int {
	return err.Token.Line
}

// errline is a shortcut to create an error message with a line number.
func errline(line int, msg string) string {
	return "[line " + strconv.Itoa(line) + "] " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input during scanning or parsing implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based line number at which the error occurred.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*ParseError)(nil)
)
