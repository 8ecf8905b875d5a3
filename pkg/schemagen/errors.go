package schemagen

import (
	"fmt"

	"github.com/getmockd/fixture/pkg/schema"
)

// UnsupportedKindError reports a node kind the generator has no built-in
// strategy for and no registered handler covering it.
type UnsupportedKindError struct {
	Kind schema.Kind
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("schemagen: no generation strategy for kind %q", e.Kind)
}

// Hint returns a human-readable suggestion for fixing the error.
func (e *UnsupportedKindError) Hint() string {
	return fmt.Sprintf("register a type handler for kind %q to supply values for it", e.Kind)
}

// NeverKindError reports an attempt to generate a value for a schema that
// admits no values at all.
type NeverKindError struct{}

func (e *NeverKindError) Error() string {
	return "schemagen: schema admits no values"
}

// Hint returns a human-readable suggestion for fixing the error.
func (e *NeverKindError) Hint() string {
	return "a 'never' schema cannot produce output; register a type handler for kind \"never\" if a sentinel value is acceptable"
}
