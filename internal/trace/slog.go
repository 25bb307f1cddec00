package trace

import (
	"context"
	"io"
	"log/slog"

	slogmulti "github.com/samber/slog-multi"
)

// NewLogger builds the CLI logger: a text handler on console and, when file
// is not nil, a JSON handler on file, fanned out with slog-multi.
func NewLogger(console, file io.Writer, level slog.Leveler) *slog.Logger {
	handlers := make([]slog.Handler, 0, 2)
	if console != nil {
		handlers = append(handlers, slog.NewTextHandler(console, &slog.HandlerOptions{Level: level}))
	}
	if file != nil {
		handlers = append(handlers, slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level}))
	}
	if len(handlers) == 0 {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slogmulti.Fanout(handlers...))
}

// SlogTracer forwards trace events to a slog.Logger. Span ends are logged at
// Info, everything else at Debug.
type SlogTracer struct {
	logger *slog.Logger
	level  Level
}

// NewSlogTracer wraps logger as a Tracer.
func NewSlogTracer(logger *slog.Logger, level Level) *SlogTracer {
	return &SlogTracer{logger: logger, level: level}
}

// Emit logs the event as a structured record.
func (t *SlogTracer) Emit(ev *Event) {
	if t.logger == nil || !ev.passes(t.level) {
		return
	}
	lvl := slog.LevelDebug
	if ev.Kind == KindSpanEnd {
		lvl = slog.LevelInfo
	}
	attrs := []slog.Attr{
		slog.String("kind", ev.Kind.String()),
		slog.String("scope", ev.Scope.String()),
		slog.Uint64("span", ev.SpanID),
	}
	if ev.ParentID != 0 {
		attrs = append(attrs, slog.Uint64("parent", ev.ParentID))
	}
	if ev.Detail != "" {
		attrs = append(attrs, slog.String("detail", ev.Detail))
	}
	if ev.Kind == KindSpanEnd {
		attrs = append(attrs, slog.Duration("elapsed", ev.Elapsed))
	}
	for k, v := range ev.Extra {
		attrs = append(attrs, slog.String(k, v))
	}
	t.logger.LogAttrs(context.Background(), lvl, ev.Name, attrs...)
}

// Flush is a no-op; handlers write synchronously.
func (t *SlogTracer) Flush() error { return nil }

// Close is a no-op; the caller owns the log file.
func (t *SlogTracer) Close() error { return nil }

// Level returns the configured level.
func (t *SlogTracer) Level() Level { return t.level }

// Enabled returns true if tracing is active.
func (t *SlogTracer) Enabled() bool { return t.level > LevelOff }
