//go:build ordkeydebug

// Package debug provides invariant assertions for ordkey internals.
//
// This file is only compiled with -tags ordkeydebug. A failed assertion
// means an internal helper was called outside its contract, which is a
// programming defect, so it panics instead of returning an error.
package debug

import "fmt"

// Enabled reports whether assertions are compiled in.
const Enabled = true

// Assert panics with the formatted message when cond is false.
func Assert(cond bool, format string, args ...any) {
	if !cond {
		panic("ordkey: assertion failed: " + fmt.Sprintf(format, args...))
	}
}
