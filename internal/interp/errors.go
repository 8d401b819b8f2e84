package interp

import (
	"github.com/weftlang/weft/internal/types"
)

// Helper family tags reported in arity and integer errors.
const (
	whereTwoArgumentHelper   = "twoArgumentHelper"
	whereThreeArgumentHelper = "threeArgumentHelper"
	whereReplaceHelper       = "replaceHelper"
	whereFormatDateHelper    = "formatDateHelper"
	whereFormatNumberHelper  = "formatNumberHelper"
)

// ErrorTag is the single stable tag under which all engine errors are
// reported to the Sink.
const ErrorTag = "interp"

// The message strings below are part of the observable contract: equal
// error kind plus fields always produce equal messages.

// NewUnexpectedValueError creates an error for a value lookup failure.
// The full dotted path (or offending token text) is reported.
func NewUnexpectedValueError(value string) error {
	return types.Newf(types.INTERP_UNEXPECTED_VALUE, "Unexpected value: %s", value)
}

// NewInvalidArgumentNumberError creates an error for a helper arity
// mismatch. The expected count includes the helper name itself; expected
// is a string so ranged arities like "2..3" render uniformly.
func NewInvalidArgumentNumberError(where, expected string, actual int) error {
	return types.Newf(types.INTERP_INVALID_ARGUMENT_NUMBER, "%s expected %s arguments, got %d", where, expected, actual)
}

// NewInvalidReplaceArgumentsError creates an error for replace arguments
// that are not both quoted literals. The tokens are reported in their
// textual form.
func NewInvalidReplaceArgumentsError(arg1, arg2 string) error {
	return types.Newf(types.INTERP_INVALID_REPLACE_ARGS, "Invalid replace arguments: %s, %s", arg1, arg2)
}

// NewInvalidDateError creates an error for a date parsing or
// pattern-quoting failure.
func NewInvalidDateError(argument string) error {
	return types.Newf(types.INTERP_INVALID_DATE, "Invalid date: %s", argument)
}

// NewExpectedIntegerError creates an error for an integer argument that
// does not parse as a non-negative integer.
func NewExpectedIntegerError(where string) error {
	return types.Newf(types.INTERP_EXPECTED_INTEGER, "%s expected integer", where)
}

// NewInvalidNumberError creates the raw numeric-format error produced when
// numberFormat is given a non-numeric literal.
func NewInvalidNumberError(literal string) error {
	return types.Newf(types.INTERP_INVALID_NUMBER, "For input string: %q", literal)
}
