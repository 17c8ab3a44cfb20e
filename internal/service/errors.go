package service

import (
	"errors"
	"fmt"
)

// ValidationError reports a missing or malformed field before any write is
// attempted.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError formats a ValidationError.
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError is a normal terminal state: no attendee matched, no template
// for an event, no certificate for an id. Kind names the missing thing so
// callers can render distinct states.
type NotFoundError struct {
	Kind    string // "attendee", "template", "certificate", "event"
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// NewNotFoundError formats a NotFoundError of the given kind.
func NewNotFoundError(kind, format string, args ...interface{}) *NotFoundError {
	return &NotFoundError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// FormatError reports unusable input data, e.g. a CSV without the required
// column.
type FormatError struct {
	Message string
}

func (e *FormatError) Error() string {
	return e.Message
}

// NewFormatError formats a FormatError.
func NewFormatError(format string, args ...interface{}) *FormatError {
	return &FormatError{Message: fmt.Sprintf(format, args...)}
}

// IOError wraps a transient infrastructure failure (store unreachable, image
// fetch failed). The wrapped operation leaves no partial record.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError wraps err with the failing operation's name.
func NewIOError(op string, err error) *IOError {
	return &IOError{Op: op, Err: err}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nfe *NotFoundError
	return errors.As(err, &nfe)
}

// NotFoundKind returns the Kind of a NotFoundError, or "".
func NotFoundKind(err error) string {
	var nfe *NotFoundError
	if errors.As(err, &nfe) {
		return nfe.Kind
	}
	return ""
}

// IsFormat reports whether err is a FormatError.
func IsFormat(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}
