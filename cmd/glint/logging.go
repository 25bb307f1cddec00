package main

import (
	"context"
	"log/slog"

	"glint/internal/diag"
	"glint/internal/source"
)

// logReporter mirrors every diagnostic into the structured log.
type logReporter struct {
	logger *slog.Logger
}

func (r logReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	lvl := slog.LevelInfo
	switch {
	case sev >= diag.SevError:
		lvl = slog.LevelError
	case sev == diag.SevWarning:
		lvl = slog.LevelWarn
	}
	r.logger.LogAttrs(context.Background(), lvl, msg,
		slog.String("code", code.ID()),
		slog.Uint64("file", uint64(primary.File)),
		slog.Uint64("start", uint64(primary.Start)),
		slog.Uint64("end", uint64(primary.End)),
		slog.Int("notes", len(notes)),
	)
}

// diagReporter returns the extra reporter for driver options, nil without --log-file.
func diagReporter(ctx context.Context) diag.Reporter {
	if logger := loggerFrom(ctx); logger != nil {
		return logReporter{logger: logger}
	}
	return nil
}
