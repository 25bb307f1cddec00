// Package trace provides the tracing and logging subsystem of glint.
//
// Tracing follows lexing and parsing phases so slow or stuck runs can be
// diagnosed:
//
//	glint check --trace=- --trace-level=detail src/
//
// # Tracers
//
//   - Nop: zero-overhead tracer when disabled
//   - StreamTracer: immediate write to output (file/stderr), text or NDJSON
//   - RingTracer: circular buffer dumped on Close
//   - SlogTracer: forwards events to a log/slog logger (see NewLogger)
//   - MultiTracer: combines multiple tracers
//
// # Levels
//
//   - LevelOff: no tracing
//   - LevelError: heartbeats only
//   - LevelPhase: driver and check phase boundaries
//   - LevelDetail: per-file events
//   - LevelDebug: everything including top-level nodes
//
// # Context propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopeFile, "parse "+path, parentID)
//	defer span.End("")
package trace
