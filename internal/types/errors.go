// Package types defines the structured error model shared by every weft
// package. Errors carry a stable code so the CLI can map them to exit
// classes and the logging sink can emit them as structured fields.
package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode identifies one failure class. Codes are sentinels: they
// implement error themselves, so callers test for a class with
// errors.Is(err, types.TEMPLATE_NOT_FOUND) without unwrapping.
type ErrorCode string

// Error returns the code name, making ErrorCode usable as an errors.Is
// target.
func (c ErrorCode) Error() string {
	return string(c)
}

// Interpolation error codes
const (
	INTERP_UNEXPECTED_VALUE        ErrorCode = "INTERP_UNEXPECTED_VALUE"
	INTERP_INVALID_ARGUMENT_NUMBER ErrorCode = "INTERP_INVALID_ARGUMENT_NUMBER"
	INTERP_INVALID_REPLACE_ARGS    ErrorCode = "INTERP_INVALID_REPLACE_ARGS"
	INTERP_INVALID_DATE            ErrorCode = "INTERP_INVALID_DATE"
	INTERP_EXPECTED_INTEGER        ErrorCode = "INTERP_EXPECTED_INTEGER"
	INTERP_INVALID_NUMBER          ErrorCode = "INTERP_INVALID_NUMBER"
)

// Configuration error codes
const (
	CONFIG_LOAD_FAILED       ErrorCode = "CONFIG_LOAD_FAILED"
	CONFIG_PARSE_FAILED      ErrorCode = "CONFIG_PARSE_FAILED"
	CONFIG_VALIDATION_FAILED ErrorCode = "CONFIG_VALIDATION_FAILED"
)

// Registry error codes
const (
	TEMPLATE_NOT_FOUND      ErrorCode = "TEMPLATE_NOT_FOUND"
	TEMPLATE_ALREADY_EXISTS ErrorCode = "TEMPLATE_ALREADY_EXISTS"
	TEMPLATE_INVALID        ErrorCode = "TEMPLATE_INVALID"
	TEMPLATE_YAML_FAILED    ErrorCode = "TEMPLATE_YAML_FAILED"
)

// Context error codes
const (
	CONTEXT_DECODE_FAILED ErrorCode = "CONTEXT_DECODE_FAILED"
)

// WeftError is a coded error. Message is the human-readable detail; for
// interpolation codes it is also the contractual message delivered to
// the sink. Cause, when set, is the underlying failure and participates
// in errors.Is/As chains.
type WeftError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Newf creates a WeftError with a formatted message.
func Newf(code ErrorCode, format string, args ...any) *WeftError {
	return &WeftError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a WeftError with a formatted message around an
// underlying cause.
func Wrap(code ErrorCode, cause error, format string, args ...any) *WeftError {
	return &WeftError{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Error renders "[CODE] message", appending ": cause" when a cause is
// attached.
func (e *WeftError) Error() string {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(string(e.Code))
	b.WriteString("] ")
	b.WriteString(e.Message)
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap exposes the cause to the errors package.
func (e *WeftError) Unwrap() error {
	return e.Cause
}

// Is matches an ErrorCode sentinel or another WeftError with the same
// code. Messages never participate in matching.
func (e *WeftError) Is(target error) bool {
	switch t := target.(type) {
	case ErrorCode:
		return e.Code == t
	case *WeftError:
		return t != nil && e.Code == t.Code
	}
	return false
}

// CodeOf extracts the ErrorCode from err if a WeftError appears anywhere
// in its chain. Returns the empty code and false otherwise.
func CodeOf(err error) (ErrorCode, bool) {
	var weftErr *WeftError
	if errors.As(err, &weftErr) {
		return weftErr.Code, true
	}
	return "", false
}
