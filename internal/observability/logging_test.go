package observability

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftlang/weft/internal/types"
)

func TestSlogSinkReport(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewJSONHandler(&buf, slog.LevelInfo))
	sink := NewSlogSink(logger)

	reportErr := types.Newf(types.INTERP_UNEXPECTED_VALUE, "Unexpected value: user.userid")
	sink.Report("interp", reportErr)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "interp", record["tag"])
	assert.Equal(t, string(types.INTERP_UNEXPECTED_VALUE), record["code"])
	assert.Contains(t, record["msg"], "Unexpected value: user.userid")
	assert.NotEmpty(t, record["report_id"])
}

func TestSlogSinkReportPlainError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewJSONHandler(&buf, slog.LevelInfo))
	sink := NewSlogSink(logger)

	sink.Report("interp", errors.New("plain failure"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "plain failure", record["msg"])
	_, hasCode := record["code"]
	assert.False(t, hasCode)
}

func TestSlogSinkNilLogger(t *testing.T) {
	sink := NewSlogSink(nil)
	require.NotNil(t, sink)
}

func TestCollectSink(t *testing.T) {
	sink := NewCollectSink()
	assert.Zero(t, sink.Len())

	err1 := errors.New("first")
	err2 := errors.New("second")
	sink.Report("interp", err1)
	sink.Report("interp", err2)

	assert.Equal(t, 2, sink.Len())
	reports := sink.Reports()
	require.Len(t, reports, 2)
	assert.Equal(t, "interp", reports[0].Tag)
	assert.Equal(t, err1, reports[0].Err)
	assert.Equal(t, err2, reports[1].Err)
}

func TestCollectSinkReturnsCopy(t *testing.T) {
	sink := NewCollectSink()
	sink.Report("interp", errors.New("first"))

	reports := sink.Reports()
	reports[0] = Report{Tag: "mutated"}

	assert.Equal(t, "interp", sink.Reports()[0].Tag)
}

func TestCollectSinkConcurrent(t *testing.T) {
	sink := NewCollectSink()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sink.Report("interp", errors.New("concurrent"))
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, sink.Len())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.name), "ParseLevel(%q)", tt.name)
	}
}

func TestHandlerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewTextHandler(&buf, slog.LevelWarn))

	logger.Info("dropped")
	assert.Empty(t, buf.String())

	logger.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}
