// Package apperrors defines the stable error taxonomy shared by the
// service, repository, and handler layers. Codes describe what went
// wrong in business terms; handlers translate them to HTTP.
package apperrors

import "errors"

// Code categorizes a failure independent of the transport layer
type Code string

const (
	// CodeValidation covers malformed or incomplete input: missing
	// required fields, bio length out of bounds, no violation selected
	CodeValidation Code = "validation_failed"

	// CodeUnauthorized means the caller presented no valid identity
	CodeUnauthorized Code = "unauthorized"

	// CodeForbidden means the caller is authenticated but is not a
	// participant allowed to perform the operation
	CodeForbidden Code = "forbidden"

	CodeNotFound Code = "not_found"

	// CodeConflict means a state precondition failed, including losing
	// a concurrent-acceptance race. The client should refresh.
	CodeConflict Code = "conflict"

	// CodeLimitExceeded means a business cap was hit, such as the
	// five-pending-requests-per-case rule
	CodeLimitExceeded Code = "limit_exceeded"

	CodeInternal Code = "internal_error"
)

// Error wraps domain or infrastructure failures with a stable code
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return string(e.Code)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is enables errors.Is() to match errors by code
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New creates an error with the given code and message
func New(code Code, msg string) error {
	return &Error{Code: code, Message: msg}
}

// Wrap attaches a code and message to an existing error. If err already
// carries a code, that code is preserved.
func Wrap(err error, code Code, msg string) error {
	var existing *Error
	if errors.As(err, &existing) {
		return &Error{Code: existing.Code, Message: msg, Err: err}
	}
	return &Error{Code: code, Message: msg, Err: err}
}

// HasCode checks whether err carries the given code
func HasCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// CodeOf returns err's code, or CodeInternal for uncoded errors
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}
