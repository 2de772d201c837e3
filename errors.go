package flow

import "errors"

var (
	// ErrInvalidConversion is returned, or panicked with, when a property is
	// converted into a property with a new seed.
	ErrInvalidConversion = errors.New("flow: invalid conversion")

	// ErrTypeMismatch reports an observable of the wrong kind, a nil one, or an
	// argument a combinator can't use.
	ErrTypeMismatch = errors.New("flow: type mismatch")
)
