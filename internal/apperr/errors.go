package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies an error so transport layers can map it to a status code.
type Kind string

const (
	KindValidation Kind = "VALIDATION"
	KindNotFound   Kind = "NOT_FOUND"
	KindAuth       Kind = "UNAUTHORIZED"
)

// Error is the typed error returned by the core packages.
// Fields carries the offending field names for validation failures.
type Error struct {
	Kind    Kind
	Message string
	Fields  []string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Message
	if len(e.Fields) > 0 {
		msg = fmt.Sprintf("%s (fields: %s)", msg, strings.Join(e.Fields, ", "))
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Validation builds a validation error naming the offending fields.
func Validation(message string, fields ...string) *Error {
	return &Error{Kind: KindValidation, Message: message, Fields: fields}
}

// NotFound builds a not-found error for an unknown identifier.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Auth builds an authentication/authorization error.
func Auth(message string) *Error {
	return &Error{Kind: KindAuth, Message: message}
}

// Wrap attaches a classification to an underlying error.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// IsKind reports whether err carries the given classification.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// As extracts the typed error if present.
func As(err error) (*Error, bool) {
	var appErr *Error
	ok := errors.As(err, &appErr)
	return appErr, ok
}
