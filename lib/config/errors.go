package config

import (
	"github.com/samber/oops"
)

// Sentinel errors for the configuration subsystem. Callers match with
// errors.Is; the wrapped instances carry the offending key or input.
var (
	// ErrMalformedCapacity reports a capacity string that does not match the
	// <number><unit> grammar.
	ErrMalformedCapacity = oops.Errorf("malformed capacity string")

	// ErrUnknownUnit reports a capacity unit token outside the supported set.
	ErrUnknownUnit = oops.Errorf("unknown capacity unit")

	// ErrMissingProperty reports a required property absent from the store.
	ErrMissingProperty = oops.Errorf("missing required property")

	// ErrInvalidPropertyValue reports a property value that failed to parse
	// as the requested type.
	ErrInvalidPropertyValue = oops.Errorf("invalid property value")

	// ErrNotMutable reports a write attempted against a frozen store.
	ErrNotMutable = oops.Errorf("config is not mutable")

	// ErrFatal marks errors for startup-critical values the worker cannot
	// run without. The daemon shell exits on these rather than continuing
	// with a bad identity or capacity.
	ErrFatal = oops.Errorf("fatal configuration error")
)
