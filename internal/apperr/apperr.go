// Package apperr defines the error type shared across hourclock packages.
// Errors are declared once as templates and specialised at the call site with
// Fmt or Wrap, so callers can still match them with errors.Is.
package apperr

import (
	"fmt"
)

// Error is an application error with an optional underlying cause.
type Error struct {
	Cause   error
	tmpl    *Error
	Message string
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return e.Message + ": " + e.Cause.Error()
}

// Fmt returns a copy of the error with its message formatted with the
// provided arguments.
func (e *Error) Fmt(a ...any) *Error {
	return &Error{
		Message: fmt.Sprintf(e.Message, a...),
		Cause:   e.Cause,
		tmpl:    e.root(),
	}
}

// Wrap returns a copy of the error that wraps err.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message: e.Message,
		Cause:   err,
		tmpl:    e.root(),
	}
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is the template this error was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e == t || e.root() == t.root()
}

func (e *Error) root() *Error {
	if e.tmpl != nil {
		return e.tmpl
	}

	return e
}
