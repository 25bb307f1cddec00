package driver

import (
	"glint/internal/diag"
	"glint/internal/lexer"
	"glint/internal/parser"
)

// Options are shared by every driver entry point.
type Options struct {
	// MaxDiagnostics caps each file's Bag; 0 means unlimited.
	MaxDiagnostics int
	MaxDepth       int
	MaxTokenLength uint32
	// Trace enables node-level parser events.
	Trace bool
	// Reporter also receives every diagnostic, e.g. for logging.
	Reporter diag.Reporter
}

func (o Options) reporter(bag *diag.Bag) diag.Reporter {
	var r diag.Reporter = diag.BagReporter{Bag: bag}
	if o.Reporter != nil {
		r = diag.MultiReporter{r, o.Reporter}
	}
	return diag.NewDedupReporter(r)
}

func (o Options) lexerOptions(r diag.Reporter) lexer.Options {
	return lexer.Options{Reporter: r, MaxTokenLength: o.MaxTokenLength}
}

func (o Options) parserOptions(r diag.Reporter) parser.Options {
	return parser.Options{Reporter: r, MaxDepth: o.MaxDepth, Trace: o.Trace}
}
