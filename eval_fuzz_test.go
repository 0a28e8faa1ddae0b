//go:build go1.18
// +build go1.18

package lox_test

import (
	"testing"

	"github.com/zephyrtronium/lox"
)

func FuzzEval(f *testing.F) {
	f.Add("1 + 2 * 3")
	f.Add(`"foo" + "bar"`)
	f.Add("!(nil == false)")
	f.Fuzz(func(t *testing.T, s string) {
		r, err := lox.EvalString(s)
		if (r == nil) == (err == nil) {
			t.Errorf("%q gave result %v with error %v", s, r, err)
		}
	})
}
