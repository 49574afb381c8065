// Package errs defines the sentinel errors returned by ordkey packages.
//
// Callers should match them with errors.Is, since most are wrapped with
// additional context before being returned.
package errs

import "errors"

var (
	// ErrInvalidCapacity is returned when an encoder is configured with a non-positive initial capacity.
	ErrInvalidCapacity = errors.New("invalid initial capacity")

	// ErrInvalidDirection is returned when a sort direction is neither ascending nor descending.
	ErrInvalidDirection = errors.New("invalid sort direction")
)
