package lox

import (
	"math"
	"strconv"
)

// Value is a runtime value: Number, String, Boolean, or Nil.
type Value interface {
	// String formats the value the way Lox prints it.
	String() string

	value()
}

// Number is a double-precision number.
type Number float64

// String is a string value.
type String string

// Boolean is true or false.
type Boolean bool

// Nil is the absence of a value.
type Nil struct{}

func (Number) value()  {}
func (String) value()  {}
func (Boolean) value() {}
func (Nil) value()     {}

func (v Number) String() string  { return formatNumber(float64(v)) }
func (v String) String() string  { return string(v) }
func (v Boolean) String() string { return strconv.FormatBool(bool(v)) }
func (Nil) String() string       { return "nil" }

// Truthy reports whether v counts as true. Only nil and false are falsy.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case Nil:
		return false
	case Boolean:
		return bool(v)
	default:
		return true
	}
}

// Equal reports whether a and b are the same type with the same contents.
// Numbers compare by IEEE equality, so NaN is not equal to itself.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case Number:
		b, ok := b.(Number)
		return ok && a == b
	case String:
		b, ok := b.(String)
		return ok && a == b
	case Boolean:
		b, ok := b.(Boolean)
		return ok && a == b
	case Nil:
		_, ok := b.(Nil)
		return ok
	default:
		panic("lox: Equal on invalid value")
	}
}

// formatNumber formats a float without a trailing ".0" for integers.
func formatNumber(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
