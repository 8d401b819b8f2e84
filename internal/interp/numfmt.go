package interp

import (
	"strconv"

	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// numberStyle selects a numberFormat rendering style.
type numberStyle int

const (
	styleDecimal numberStyle = iota
	styleNone
	styleCurrency
	stylePercent
)

// numericValue holds a parsed numberFormat input with its original kind
// preserved: an integer context value renders without synthetic fraction
// digits, while a double keeps its fractional part through formatting.
type numericValue struct {
	isInt bool
	i     int64
	f     float64
}

func (n numericValue) float() float64 {
	if n.isInt {
		return float64(n.i)
	}
	return n.f
}

// parseNumeric coerces a resolved value to a number. String inputs parse
// as integer first, then as a double; failure is the raw numeric-format
// error carrying the offending literal.
func parseNumeric(v Value) (numericValue, error) {
	switch v.Kind {
	case ValueInt:
		return numericValue{isInt: true, i: v.Int}, nil
	case ValueDouble:
		return numericValue{f: v.Float}, nil
	default:
		if i, err := strconv.ParseInt(v.Str, 10, 64); err == nil {
			return numericValue{isInt: true, i: i}, nil
		}
		f, err := strconv.ParseFloat(v.Str, 64)
		if err != nil {
			return numericValue{}, NewInvalidNumberError(v.Str)
		}
		return numericValue{f: f}, nil
	}
}

// formatNumber renders a resolved value in the requested style using
// en-CA number formatting.
//
//	none      half-up rounded to an integer
//	decimal   up to 3 fraction digits, trailing zeros trimmed
//	currency  dollar sign prefix, exactly 2 fraction digits
//	percent   multiplied by 100, half-up rounded, % appended
func formatNumber(v Value, style numberStyle) (string, error) {
	n, err := parseNumeric(v)
	if err != nil {
		return "", err
	}

	p := message.NewPrinter(localeTag)

	switch style {
	case styleNone:
		if n.isInt {
			return strconv.FormatInt(n.i, 10), nil
		}
		return strconv.FormatInt(roundHalfUp(n.f), 10), nil

	case styleCurrency:
		return "$" + p.Sprint(number.Decimal(
			n.float(),
			number.MinFractionDigits(2),
			number.MaxFractionDigits(2),
		)), nil

	case stylePercent:
		return strconv.FormatInt(roundHalfUp(n.float()*100), 10) + "%", nil

	default:
		if n.isInt {
			return p.Sprint(number.Decimal(n.i)), nil
		}
		return p.Sprint(number.Decimal(n.f, number.MaxFractionDigits(3))), nil
	}
}
