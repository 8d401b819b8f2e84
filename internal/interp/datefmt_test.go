package interp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDate(t *testing.T) {
	// 2022-02-01 19:46:31 UTC is a Tuesday.
	const input = "2022-02-01 19:46:31+0000"

	tests := []struct {
		name    string
		input   string
		pattern string
		want    string
	}{
		{"four-digit year", input, "yyyy", "2022"},
		{"two-digit year", input, "yy", "22"},
		{"numeric month padded", input, "MM", "02"},
		{"numeric month bare", input, "M", "2"},
		{"abbreviated month has period", input, "MMM", "Feb."},
		{"full month", input, "MMMM", "February"},
		{"day of month", input, "d", "1"},
		{"padded day of month", input, "dd", "01"},
		{"abbreviated weekday has period", input, "EEE", "Tue."},
		{"full weekday", input, "EEEE", "Tuesday"},
		{"24-hour clock", input, "HH", "19"},
		{"12-hour clock", input, "h", "7"},
		{"minutes and seconds", input, "mm:ss", "46:31"},
		{"pm period", input, "a", "p.m."},
		{"am period", "2022-02-01 09:00:00+0000", "aa", "a.m."},
		{"midnight renders as 12", "2022-02-01 00:05:00+0000", "h a", "12 a.m."},
		{"zone offset", "2022-02-01 19:46:31-0500", "Z", "-0500"},
		{"composed pattern", input, "EEEE, d", "Tuesday, 1"},
		{"literal text in single quotes", input, "yyyy'year'", "2022year"},
		{"escaped single quote", input, "''yyyy", "'2022"},
		{"non-letter characters pass through", input, "yyyy-MM-dd", "2022-02-01"},
		{"unknown symbol letters pass through", input, "QQ", "QQ"},
		{"T literal format parses", "2022-02-01T19:46:31+0000", "HH:mm", "19:46"},
		{"may has no period", "2022-05-03 10:00:00+0000", "MMM", "May"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formatDate(tt.input, tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatDateZonedInputKeepsOffset(t *testing.T) {
	// The rendered hour follows the parsed offset, not the host zone.
	got, err := formatDate("2022-02-01 19:46:31-0500", "HH")
	require.NoError(t, err)
	assert.Equal(t, "19", got)
}

func TestFormatDateInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"free text", "NOT A DATE!", "Invalid date: NOTTATDATE!"},
		{"date only", "2022-02-01", "Invalid date: 2022-02-01"},
		{"empty input", "", "Invalid date: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := formatDate(tt.input, "yyyy")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	t.Run("zoned layouts preserve offset", func(t *testing.T) {
		parsed, ok := parseTimestamp("2022-02-01T19:46:31-0500")
		require.True(t, ok)
		_, offset := parsed.Zone()
		assert.Equal(t, -5*60*60, offset)
	})

	t.Run("zoneless layouts parse in local time", func(t *testing.T) {
		parsed, ok := parseTimestamp("2022-02-01 19:46:31")
		require.True(t, ok)
		assert.Equal(t, time.Local, parsed.Location())
		assert.Equal(t, 19, parsed.Hour())
	})

	t.Run("unparseable input", func(t *testing.T) {
		_, ok := parseTimestamp("02/01/2022")
		assert.False(t, ok)
	})
}

func TestRenderPatternMilliseconds(t *testing.T) {
	ts := time.Date(2022, 2, 1, 19, 46, 31, 250*int(time.Millisecond), time.UTC)
	assert.Equal(t, "250", renderPattern(ts, "SSS"))
}
