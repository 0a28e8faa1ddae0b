package lox

// Eval evaluates an expression tree. The tree is not modified. Any type error
// aborts the whole evaluation with a *RuntimeError.
func Eval(e Expr) (Value, error) {
	return eval(e)
}

// EvalString is a shortcut to scan, parse, and evaluate an expression.
func EvalString(src string) (Value, error) {
	e, err := ParseString(src)
	if err != nil {
		return nil, err
	}
	return Eval(e)
}

func eval(e Expr) (Value, error) {
	switch e := e.(type) {
	case *Literal:
		return literal(e.Value)
	case *Grouping:
		return eval(e.Expr)
	case *Unary:
		return unary(e)
	case *Binary:
		return binary(e)
	default:
		panic("lox: invalid expression node")
	}
}

func literal(tok Token) (Value, error) {
	switch tok.Kind {
	case TokenNumber:
		return Number(tok.Num), nil
	case TokenString:
		return String(tok.Str), nil
	case TokenTrue:
		return Boolean(true), nil
	case TokenFalse:
		return Boolean(false), nil
	case TokenNil:
		return Nil{}, nil
	default:
		return nil, &RuntimeError{Token: tok, Message: "Invalid literal."}
	}
}

func unary(e *Unary) (Value, error) {
	r, err := eval(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Op.Kind {
	case TokenBang:
		return Boolean(!Truthy(r)), nil
	case TokenMinus:
		n, ok := r.(Number)
		if !ok {
			return nil, &RuntimeError{Token: e.Op, Message: "Operand must be a number."}
		}
		return -n, nil
	default:
		return nil, &RuntimeError{Token: e.Op, Message: "Invalid unary operator."}
	}
}

func binary(e *Binary) (Value, error) {
	l, err := eval(e.Left)
	if err != nil {
		return nil, err
	}
	r, err := eval(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Op.Kind {
	case TokenEqualEqual:
		return Boolean(Equal(l, r)), nil
	case TokenBangEqual:
		return Boolean(!Equal(l, r)), nil
	case TokenPlus:
		switch l := l.(type) {
		case Number:
			if r, ok := r.(Number); ok {
				return l + r, nil
			}
		case String:
			if r, ok := r.(String); ok {
				return l + r, nil
			}
		}
		return nil, &RuntimeError{Token: e.Op, Message: "Unsupported type for plus operator."}
	}
	a, aok := l.(Number)
	b, bok := r.(Number)
	if !aok || !bok {
		return nil, &RuntimeError{Token: e.Op, Message: "Operands must be numbers."}
	}
	switch e.Op.Kind {
	case TokenMinus:
		return a - b, nil
	case TokenStar:
		return a * b, nil
	case TokenSlash:
		return a / b, nil
	case TokenGreater:
		return Boolean(a > b), nil
	case TokenGreaterEqual:
		return Boolean(a >= b), nil
	case TokenLess:
		return Boolean(a < b), nil
	case TokenLessEqual:
		return Boolean(a <= b), nil
	default:
		return nil, &RuntimeError{Token: e.Op, Message: "Invalid binary operator."}
	}
}

// RuntimeError is an error from evaluating an operator on operands of the
// wrong types.
type RuntimeError struct {
	// Token is the operator or literal that failed.
	Token Token
	// Message describes the failure.
	Message string
}

func (err *RuntimeError) Error() string {
	return errline(err.Token.Line, err.Message)
}
