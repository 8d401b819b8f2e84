package interp

import (
	"math"
	"strconv"
	"strings"
)

// ValueKind identifies the scalar kind of a resolved value.
type ValueKind int

// Resolved value kinds. Integer and double are kept distinct because
// numberFormat observes the original numeric kind (an integer context
// value formats without synthetic fraction digits).
const (
	ValueString ValueKind = iota
	ValueInt
	ValueDouble
)

// Value is a resolved scalar: the result of coercing a token through the
// value resolver.
type Value struct {
	Kind  ValueKind
	Str   string
	Int   int64
	Float float64
}

func stringValue(s string) Value  { return Value{Kind: ValueString, Str: s} }
func intValue(i int64) Value      { return Value{Kind: ValueInt, Int: i} }
func doubleValue(f float64) Value { return Value{Kind: ValueDouble, Float: f} }

// Render stringifies the value: strings pass through, integers render in
// decimal form, and doubles render half-up rounded to the nearest integer
// (2.34 renders "2", -55.7 renders "-56").
func (v Value) Render() string {
	switch v.Kind {
	case ValueInt:
		return strconv.FormatInt(v.Int, 10)
	case ValueDouble:
		return strconv.FormatInt(roundHalfUp(v.Float), 10)
	default:
		return v.Str
	}
}

// roundHalfUp rounds to the nearest integer with ties away from zero,
// matching half-up decimal rounding (-55.5 rounds to -56).
func roundHalfUp(f float64) int64 {
	if f < 0 {
		return -int64(math.Floor(-f + 0.5))
	}
	return int64(math.Floor(f + 0.5))
}

// resolveToken coerces a single token to a Value.
//
// Quoted literals resolve to their interior unchanged. Bare tokens are
// treated as dotted paths rooted at data, url, or user and navigated
// through the context; numeric bare tokens (integer or decimal literals)
// resolve to their own text. Anything else is an unexpected-value error
// carrying the full token text.
func resolveToken(tok Token, ctx *Context) (Value, error) {
	if tok.IsQuoted() {
		return stringValue(tok.Interior()), nil
	}

	path := tok.Text
	root := path
	if i := strings.IndexByte(path, '.'); i >= 0 {
		root = path[:i]
	}

	if knownKeywords[root] {
		return resolvePath(path, ctx)
	}

	if isNumericLiteral(path) {
		return stringValue(path), nil
	}

	return Value{}, NewUnexpectedValueError(path)
}

// resolvePath navigates a dotted path through the context and coerces the
// terminal scalar to a Value. Every failure mode reports the full dotted
// path: absent top-level keyword, missing intermediate segment, navigation
// through a non-map node, or a non-scalar terminal.
func resolvePath(path string, ctx *Context) (Value, error) {
	if ctx == nil {
		return Value{}, NewUnexpectedValueError(path)
	}

	raw, ok := ctx.Get(path)
	if !ok {
		return Value{}, NewUnexpectedValueError(path)
	}

	switch v := raw.(type) {
	case string:
		return stringValue(v), nil
	case int:
		return intValue(int64(v)), nil
	case int32:
		return intValue(int64(v)), nil
	case int64:
		return intValue(v), nil
	case float32:
		return doubleValue(float64(v)), nil
	case float64:
		return doubleValue(v), nil
	default:
		// Maps and anything else are not scalars.
		return Value{}, NewUnexpectedValueError(path)
	}
}

// isNumericLiteral reports whether a bare token is an integer or decimal
// literal, with an optional leading sign.
func isNumericLiteral(s string) bool {
	if s == "" {
		return false
	}
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return true
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
