// Package errors holds the sentinel errors shared by every cipher layer. Domain packages wrap
// these sentinels so that handlers and the CLI can classify a failure without knowing which
// cipher produced it.
package errors

import (
	"errors"
	"fmt"
)

// Sentinels used across the application.
var (
	// ErrInvalidInput marks a rejected key, an unusable text or a malformed request.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound marks a lookup of something that does not exist (for example an unknown cipher route).
	ErrNotFound = errors.New("not found")

	// ErrTooLarge marks a payload exceeding a configured size limit.
	ErrTooLarge = errors.New("too large")
)

// New creates a new error with the given message.
func New(message string) error {
	return errors.New(message)
}

// Wrap prefixes err with message and keeps it in the chain. Returns nil for a nil err.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf is Wrap with a format string.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join combines errs into a single error, discarding nils.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
