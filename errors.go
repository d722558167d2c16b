package motion

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownEase is wrapped by a ConfigError naming an easing curve that
	// is not in the easing table.
	ErrUnknownEase = errors.New("unknown easing")

	// ErrUnknownVariant is wrapped by a ConfigError naming a variant that is
	// absent from the variants table.
	ErrUnknownVariant = errors.New("unknown variant")

	// ErrInvalidTransition is wrapped by a ConfigError for transition values
	// that cannot be driven (unknown type or repeat mode).
	ErrInvalidTransition = errors.New("invalid transition")
)

// ParseError reports a computed transform that is not the two-dimensional
// matrix(a, b, c, d, e, f) form.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("motion: cannot parse transform %q: want matrix(a, b, c, d, e, f)", e.Input)
}

// ConfigError reports invalid caller input: an unknown easing name, a
// variant reference missing from the table, or a malformed transition.
type ConfigError struct {
	Field string // prop or transition field that carried the bad value
	Value string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("motion: %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// KeyError wraps a failure that happened while evaluating a single property
// key. Other keys of the same pass are still processed.
type KeyError struct {
	Key string
	Err error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("motion: key %q: %v", e.Key, e.Err)
}

func (e *KeyError) Unwrap() error { return e.Err }
