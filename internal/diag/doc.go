// Package diag defines the diagnostic model shared by the lexer, parser and driver.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form
//     (LEX1002, SYN2005, IO4001).
//   - Message – human oriented text; keep it short and actionable.
//   - Primary span – the canonical source.Span pointing to the issue.
//   - Notes – optional secondary spans/messages for additional context.
//
// # Fail-fast errors
//
// The lexer and parser stop at the first problem. They return *Error, which
// carries the Diagnostic and the "path:line:col: " prefix of its position, and
// at the same time emit the Diagnostic through an optional Reporter so the
// driver can collect it in a Bag next to other files' results. Fail does both.
//
// # Emitting diagnostics
//
// Phases use a Reporter to decouple emission from storage. Diagnostics are
// built with New/NewError and WithNote, then handed over with Emit.
// BagReporter aggregates into a Bag, which supports sorting, deduplication
// and merging; DedupReporter and MultiReporter compose reporters.
//
// Rendering lives in internal/diagfmt. FormatShortDiagnostics is the one
// formatter kept here because tests across packages depend on it.
package diag
