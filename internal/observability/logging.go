// Package observability provides the structured logging surface for weft.
//
// The interpolation engine reports errors through a sink rather than
// logging directly; this package supplies the slog-backed sink used by
// the CLI and a collecting sink for tests.
package observability

import (
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/weftlang/weft/internal/types"
)

// SlogSink adapts a slog.Logger to the engine's error sink. Each report
// is logged at error level with the report tag, the structured error
// code, and a fresh report ID for correlating log records with caller
// failures.
type SlogSink struct {
	logger *slog.Logger
}

// NewSlogSink creates a sink logging through the given logger. A nil
// logger falls back to slog.Default().
func NewSlogSink(logger *slog.Logger) *SlogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogSink{logger: logger}
}

// Report logs one engine error report.
func (s *SlogSink) Report(tag string, err error) {
	attrs := []any{
		slog.String("tag", tag),
		slog.String("report_id", uuid.NewString()),
	}
	if code, ok := types.CodeOf(err); ok {
		attrs = append(attrs, slog.String("code", string(code)))
	}
	s.logger.Error(err.Error(), attrs...)
}

// CollectSink records reports for inspection. It is safe for concurrent
// use and intended for tests and programmatic hosts that want to examine
// engine errors without a logging pipeline.
type CollectSink struct {
	mu      sync.Mutex
	reports []Report
}

// Report is one recorded sink delivery.
type Report struct {
	Tag string
	Err error
}

// NewCollectSink creates an empty collecting sink.
func NewCollectSink() *CollectSink {
	return &CollectSink{}
}

// Report records the delivery.
func (s *CollectSink) Report(tag string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports = append(s.reports, Report{Tag: tag, Err: err})
}

// Reports returns a copy of all recorded deliveries in order.
func (s *CollectSink) Reports() []Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Report, len(s.reports))
	copy(out, s.reports)
	return out
}

// Len returns the number of recorded deliveries.
func (s *CollectSink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reports)
}

// NewJSONHandler creates a JSON log handler with the specified output and
// level. JSON format is ideal for structured logging in production
// environments.
func NewJSONHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})
}

// NewTextHandler creates a text log handler with the specified output and
// level. Text format is human-readable and useful for development.
func NewTextHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
}

// ParseLevel maps a config-file level name to a slog.Level, defaulting
// to info for unknown names.
func ParseLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
