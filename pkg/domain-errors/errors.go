// Package domainerrors carries coded errors across layers. Stores and the
// reducer return them so the dashboard service and HTTP boundary can react to
// the failure kind without string matching.
package domainerrors

import (
	"errors"
	"fmt"

	"tradedesk/pkg/platform/sentinel"
)

// Code names a failure kind.
type Code string

const (
	CodeNotFound           Code = "not_found"
	CodeDanglingReference  Code = "dangling_reference"
	CodeUnknownAction      Code = "unknown_action"
	CodeConflict           Code = "conflict"
	CodeInvalidState       Code = "invalid_state"
	CodeInvariantViolation Code = "invariant_violation"
	CodeValidation         Code = "validation_error"
	CodeBadRequest         Code = "bad_request"
	CodeInvalidInput       Code = "invalid_input"
	CodeInternal           Code = "internal_error"
)

// Error is a coded domain error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is match a coded error against the sentinel for the same fact.
func (e *Error) Is(target error) bool {
	s, ok := sentinelFor[e.Code]
	return ok && target == s
}

var sentinelFor = map[Code]error{
	CodeNotFound:      sentinel.ErrNotFound,
	CodeConflict:      sentinel.ErrConflict,
	CodeInvalidState:  sentinel.ErrInvalidState,
	CodeUnknownAction: sentinel.ErrUnsupported,
}

// New builds a coded error.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf builds a coded error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to err. A nil err yields nil.
func Wrap(err error, code Code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, Err: err}
}

// CodeOf returns the outermost code in err's chain, or CodeInternal.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// HasCode reports whether any error in err's chain carries code.
func HasCode(err error, code Code) bool {
	for err != nil {
		var de *Error
		if !errors.As(err, &de) {
			return false
		}
		if de.Code == code {
			return true
		}
		err = de.Err
	}
	return false
}

// Is is shorthand for HasCode.
func Is(err error, code Code) bool {
	return HasCode(err, code)
}
