package driver

import (
	"context"
	"fmt"
	"strconv"

	"glint/internal/diag"
	"glint/internal/lexer"
	"glint/internal/source"
	"glint/internal/token"
	"glint/internal/trace"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
	// Err is the first lexer error; Tokens holds everything read before it.
	Err error
}

// Tokenize loads path and lexes it to EOF or to the first lexical error.
// The returned error is reserved for I/O failures.
func Tokenize(ctx context.Context, path string, opts Options) (*TokenizeResult, error) {
	span := trace.Begin(trace.FromContext(ctx), trace.ScopeDriver, "tokenize", trace.CurrentSpan(ctx).SpanID)
	defer span.End(path)

	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(opts.MaxDiagnostics)
	lx := lexer.New(source.NewReader(file), opts.lexerOptions(opts.reporter(bag)))
	tokens, lexErr := lx.Tokenize()
	span.WithExtra("tokens", strconv.Itoa(len(tokens)))

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
		Err:     lexErr,
	}, nil
}
