package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrBadState indicates a resume state file that cannot be parsed.
	ErrBadState = errors.New("malformed state file")

	// ErrOnceFragments indicates a one-shot invocation over more than
	// one fragment; resume state tracks a single scroll position.
	ErrOnceFragments = errors.New("once mode requires exactly one fragment")

	// ErrNoFragments indicates a configuration with nothing to show.
	ErrNoFragments = errors.New("no fragments configured")
)

// WrapError wraps an error with additional context if it's not nil.
// The format string uses fmt.Sprintf verbs (e.g., %s, %d) - do not use %w
// as wrapping is handled internally.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", msg, err)
}
