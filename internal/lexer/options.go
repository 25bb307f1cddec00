package lexer

import (
	"glint/internal/diag"
	"glint/internal/source"
)

// DefaultMaxTokenLength bounds identifier, number and string tokens when
// Options.MaxTokenLength is zero.
const DefaultMaxTokenLength = 1 << 20

type Options struct {
	// Reporter receives the same diagnostic that is returned as the error. May be nil.
	Reporter diag.Reporter
	// MaxTokenLength caps a single token in bytes; 0 means DefaultMaxTokenLength.
	MaxTokenLength uint32
}

func (o Options) maxTokenLength() uint32 {
	if o.MaxTokenLength == 0 {
		return DefaultMaxTokenLength
	}
	return o.MaxTokenLength
}

// errAt builds the fail-fast error anchored at sp.Start and mirrors it to the reporter.
func (lx *Lexer) errAt(code diag.Code, sp source.Span, msg string) *diag.Error {
	return diag.Fail(lx.opts.Reporter, code, sp, lx.r.DiagnosticPrefix(sp.Start), msg)
}
