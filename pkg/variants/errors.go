package variants

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownValue reports a choice that is not declared on its axis.
	ErrUnknownValue = errors.New("variants: unknown value")
	// ErrUnknownAxis reports a choice for an axis the spec does not declare.
	ErrUnknownAxis = errors.New("variants: unknown axis")
)

// UsageError describes a misconfigured resolution. It unwraps to
// ErrUnknownValue or ErrUnknownAxis.
type UsageError struct {
	Spec    string
	Axis    string
	Value   string
	Allowed []string
	Err     error
}

func (e *UsageError) Error() string {
	if e == nil {
		return ""
	}
	name := e.Spec
	if name == "" {
		name = "<anonymous>"
	}
	if errors.Is(e.Err, ErrUnknownAxis) {
		return fmt.Sprintf("variants: spec %s has no axis %q (value %q)", name, e.Axis, e.Value)
	}
	return fmt.Sprintf("variants: spec %s axis %q has no value %q (allowed: %s)", name, e.Axis, e.Value, strings.Join(e.Allowed, ", "))
}

func (e *UsageError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
