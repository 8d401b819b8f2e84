package interp

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// localeTag pins every locale-sensitive operation (case mapping, date
// symbols, number rendering) to en-CA, independent of the process locale.
var localeTag = language.MustParse("en-CA")

// helperFunc evaluates one helper invocation. tokens is the full reduced
// stream including the helper name at index 0; stray parens are still
// present so they count toward the arity check.
type helperFunc func(tokens []Token, ctx *Context) (string, error)

// helperTable is the closed registry of built-in helpers, keyed by their
// case-sensitive names. date is an alias of dateFormat.
var helperTable = map[string]helperFunc{
	"lowercase":    helperLowercase,
	"uppercase":    helperUppercase,
	"replace":      helperReplace,
	"dropFirst":    helperDropFirst,
	"dropLast":     helperDropLast,
	"prefix":       helperPrefix,
	"suffix":       helperSuffix,
	"dateFormat":   helperDateFormat,
	"date":         helperDateFormat,
	"numberFormat": helperNumberFormat,
}

// argTokens validates the observed token count (helper name included),
// then strips stray parens from the argument positions. Unbalanced parens
// left by the reducer therefore surface as arity errors: either the raw
// count is off, or stripping leaves too few real arguments.
func argTokens(where string, expected int, tokens []Token) ([]Token, error) {
	if len(tokens) != expected {
		return nil, NewInvalidArgumentNumberError(where, strconv.Itoa(expected), len(tokens))
	}
	args := stripParens(tokens[1:])
	if len(args) != expected-1 {
		return nil, NewInvalidArgumentNumberError(where, strconv.Itoa(expected), len(tokens))
	}
	return args, nil
}

func helperLowercase(tokens []Token, ctx *Context) (string, error) {
	s, err := oneStringArg(whereTwoArgumentHelper, tokens, ctx)
	if err != nil {
		return "", err
	}
	return cases.Lower(localeTag).String(s), nil
}

func helperUppercase(tokens []Token, ctx *Context) (string, error) {
	s, err := oneStringArg(whereTwoArgumentHelper, tokens, ctx)
	if err != nil {
		return "", err
	}
	return cases.Upper(localeTag).String(s), nil
}

// oneStringArg implements the shared shape of the two-argument helpers:
// helper name plus a single value argument.
func oneStringArg(where string, tokens []Token, ctx *Context) (string, error) {
	args, err := argTokens(where, 2, tokens)
	if err != nil {
		return "", err
	}
	value, err := resolveToken(args[0], ctx)
	if err != nil {
		return "", err
	}
	return value.Render(), nil
}

func helperReplace(tokens []Token, ctx *Context) (string, error) {
	args, err := argTokens(whereReplaceHelper, 4, tokens)
	if err != nil {
		return "", err
	}

	oldTok, newTok := args[1], args[2]
	if !oldTok.IsQuoted() || !newTok.IsQuoted() {
		return "", NewInvalidReplaceArgumentsError(oldTok.Text, newTok.Text)
	}

	subject, err := resolveToken(args[0], ctx)
	if err != nil {
		return "", err
	}

	return strings.ReplaceAll(subject.Render(), oldTok.Interior(), newTok.Interior()), nil
}

// stringAndCount implements the shared shape of the three-argument
// helpers: a value argument followed by a non-negative integer count.
func stringAndCount(tokens []Token, ctx *Context) (string, int, error) {
	args, err := argTokens(whereThreeArgumentHelper, 3, tokens)
	if err != nil {
		return "", 0, err
	}

	value, err := resolveToken(args[0], ctx)
	if err != nil {
		return "", 0, err
	}

	countVal, err := resolveToken(args[1], ctx)
	if err != nil {
		return "", 0, err
	}
	n, err := strconv.Atoi(countVal.Render())
	if err != nil || n < 0 {
		return "", 0, NewExpectedIntegerError(whereThreeArgumentHelper)
	}

	return value.Render(), n, nil
}

func helperDropFirst(tokens []Token, ctx *Context) (string, error) {
	s, n, err := stringAndCount(tokens, ctx)
	if err != nil {
		return "", err
	}
	runes := []rune(s)
	if n >= len(runes) {
		return "", nil
	}
	return string(runes[n:]), nil
}

func helperDropLast(tokens []Token, ctx *Context) (string, error) {
	s, n, err := stringAndCount(tokens, ctx)
	if err != nil {
		return "", err
	}
	runes := []rune(s)
	if n >= len(runes) {
		return "", nil
	}
	return string(runes[:len(runes)-n]), nil
}

func helperPrefix(tokens []Token, ctx *Context) (string, error) {
	s, n, err := stringAndCount(tokens, ctx)
	if err != nil {
		return "", err
	}
	runes := []rune(s)
	if n >= len(runes) {
		return s, nil
	}
	return string(runes[:n]), nil
}

func helperSuffix(tokens []Token, ctx *Context) (string, error) {
	s, n, err := stringAndCount(tokens, ctx)
	if err != nil {
		return "", err
	}
	runes := []rune(s)
	if n >= len(runes) {
		return s, nil
	}
	return string(runes[len(runes)-n:]), nil
}

func helperDateFormat(tokens []Token, ctx *Context) (string, error) {
	args, err := argTokens(whereFormatDateHelper, 3, tokens)
	if err != nil {
		return "", err
	}

	patTok := args[1]
	if !patTok.IsQuoted() {
		return "", NewInvalidDateError(patTok.Text)
	}

	input, err := resolveToken(args[0], ctx)
	if err != nil {
		return "", err
	}

	return formatDate(input.Render(), patTok.Interior())
}

func helperNumberFormat(tokens []Token, ctx *Context) (string, error) {
	if len(tokens) < 2 || len(tokens) > 3 {
		return "", NewInvalidArgumentNumberError(whereFormatNumberHelper, "2..3", len(tokens))
	}
	args := stripParens(tokens[1:])
	if len(args) < 1 || len(args) > 2 {
		return "", NewInvalidArgumentNumberError(whereFormatNumberHelper, "2..3", len(tokens))
	}

	value, err := resolveToken(args[0], ctx)
	if err != nil {
		return "", err
	}

	style := styleDecimal
	if len(args) > 1 {
		style, err = resolveStyle(args[1], ctx)
		if err != nil {
			return "", err
		}
	}

	return formatNumber(value, style)
}

// resolveStyle coerces the optional style argument. Quoted styles are
// taken literally; bare styles resolve through the context first. Unknown
// style names fall back to decimal.
func resolveStyle(tok Token, ctx *Context) (numberStyle, error) {
	name := tok.Interior()
	if !tok.IsQuoted() {
		value, err := resolveToken(tok, ctx)
		if err != nil {
			return styleDecimal, err
		}
		name = value.Render()
	}

	switch name {
	case "none":
		return styleNone, nil
	case "currency":
		return styleCurrency, nil
	case "percent":
		return stylePercent, nil
	default:
		return styleDecimal, nil
	}
}
