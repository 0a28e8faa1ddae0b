// Package lox implements the expression core of the Lox language: a scanner,
// a recursive-descent parser, and a tree-walking evaluator.
//
// The grammar, lowest precedence first:
//
//	expression = equality
//	equality   = comparison { ( "!=" | "==" ) comparison }
//	comparison = term { ( ">" | ">=" | "<" | "<=" ) term }
//	term       = factor { ( "-" | "+" ) factor }
//	factor     = unary { ( "/" | "*" ) unary }
//	unary      = ( "!" | "-" ) unary | primary
//	primary    = NUMBER | STRING | "true" | "false" | "nil" | "(" expression ")"
//
// Values are dynamically typed. Only nil and false are falsy. Arithmetic and
// comparison require numbers, except that + also concatenates two strings.
// Equality never fails; values of different types are simply unequal.
//
// Each of Scan, Parse, and Eval is a pure function of its input, so separate
// pipelines may run concurrently.
package lox
