package interp

import (
	"fmt"
	"strings"
	"time"
)

// Timestamp layouts tried in order when parsing a dateFormat input. The
// zoned layouts keep the parsed offset for rendering; the zoneless
// layouts are interpreted in local time.
var (
	zonedLayouts = []string{
		"2006-01-02T15:04:05-0700",
		"2006-01-02 15:04:05-0700",
	}
	localLayouts = []string{
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
	}
)

// CLDR en-CA date symbols. The abbreviated forms carry trailing periods
// ("Tue.", "Feb.", "a.m."), which differ from the Go standard library's
// bare abbreviations.
var (
	monthsFull = [...]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	monthsAbbr = [...]string{
		"Jan.", "Feb.", "Mar.", "Apr.", "May", "Jun.",
		"Jul.", "Aug.", "Sep.", "Oct.", "Nov.", "Dec.",
	}
	daysFull = [...]string{
		"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
	}
	daysAbbr = [...]string{
		"Sun.", "Mon.", "Tue.", "Wed.", "Thu.", "Fri.", "Sat.",
	}
	dayPeriods = [...]string{"a.m.", "p.m."}
)

// parseTimestamp tries each supported layout in order and returns the
// first successful parse.
func parseTimestamp(input string) (time.Time, bool) {
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, input); err == nil {
			return t, true
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, input, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// formatDate parses input as a timestamp and renders it using a
// symbol-count date pattern (yyyy, MM, MMM, EEEE, HH, a, 'literal', ...)
// with en-CA symbols. A failed parse reports the input with each space
// replaced by "T"; the layouts themselves are matched against the raw
// input.
func formatDate(input, pattern string) (string, error) {
	t, ok := parseTimestamp(input)
	if !ok {
		return "", NewInvalidDateError(strings.ReplaceAll(input, " ", "T"))
	}
	return renderPattern(t, pattern), nil
}

// renderPattern walks the pattern rune by rune, expanding runs of symbol
// letters and passing everything else through verbatim. Single quotes
// delimit literal text, with '' as an escaped quote.
func renderPattern(t time.Time, pattern string) string {
	var out strings.Builder
	runes := []rune(pattern)

	for i := 0; i < len(runes); {
		r := runes[i]

		if r == '\'' {
			i = appendQuoted(&out, runes, i)
			continue
		}

		if !isPatternLetter(r) {
			out.WriteRune(r)
			i++
			continue
		}

		n := i
		for n < len(runes) && runes[n] == r {
			n++
		}
		appendField(&out, t, r, n-i)
		i = n
	}

	return out.String()
}

// appendQuoted consumes a quoted literal starting at the opening quote
// and returns the index just past the closing quote. A doubled quote
// emits a single quote character.
func appendQuoted(out *strings.Builder, runes []rune, start int) int {
	if start+1 < len(runes) && runes[start+1] == '\'' {
		out.WriteRune('\'')
		return start + 2
	}
	i := start + 1
	for i < len(runes) && runes[i] != '\'' {
		out.WriteRune(runes[i])
		i++
	}
	if i < len(runes) {
		i++ // closing quote
	}
	return i
}

func isPatternLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// appendField renders one symbol run. Unrecognized symbol letters pass
// through verbatim so a malformed pattern degrades to literal text
// instead of failing.
func appendField(out *strings.Builder, t time.Time, symbol rune, count int) {
	switch symbol {
	case 'y':
		year := t.Year()
		if count == 2 {
			fmt.Fprintf(out, "%02d", year%100)
		} else {
			fmt.Fprintf(out, "%0*d", count, year)
		}
	case 'M':
		switch {
		case count >= 4:
			out.WriteString(monthsFull[t.Month()-1])
		case count == 3:
			out.WriteString(monthsAbbr[t.Month()-1])
		default:
			fmt.Fprintf(out, "%0*d", count, int(t.Month()))
		}
	case 'd':
		fmt.Fprintf(out, "%0*d", count, t.Day())
	case 'E':
		if count >= 4 {
			out.WriteString(daysFull[t.Weekday()])
		} else {
			out.WriteString(daysAbbr[t.Weekday()])
		}
	case 'H':
		fmt.Fprintf(out, "%0*d", count, t.Hour())
	case 'h':
		hour := t.Hour() % 12
		if hour == 0 {
			hour = 12
		}
		fmt.Fprintf(out, "%0*d", count, hour)
	case 'm':
		fmt.Fprintf(out, "%0*d", count, t.Minute())
	case 's':
		fmt.Fprintf(out, "%0*d", count, t.Second())
	case 'S':
		millis := t.Nanosecond() / int(time.Millisecond)
		fmt.Fprintf(out, "%0*d", count, millis)
	case 'a':
		if t.Hour() < 12 {
			out.WriteString(dayPeriods[0])
		} else {
			out.WriteString(dayPeriods[1])
		}
	case 'z', 'Z':
		out.WriteString(t.Format("-0700"))
	default:
		for i := 0; i < count; i++ {
			out.WriteRune(symbol)
		}
	}
}
