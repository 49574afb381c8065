//go:build !ordkeydebug

// Package debug provides invariant assertions for ordkey internals.
//
// This file provides no-op stubs for release builds. The compiler removes
// calls guarded by Enabled, so assertions cost nothing in production.
//
// To enable assertions, build or test with: go test -tags ordkeydebug ./...
package debug

// Enabled reports whether assertions are compiled in.
const Enabled = false

// Assert is a no-op in release builds.
func Assert(_ bool, _ string, _ ...any) {}
