package driver

import (
	"context"
	"fmt"

	"glint/internal/ast"
	"glint/internal/diag"
	"glint/internal/lexer"
	"glint/internal/parser"
	"glint/internal/source"
	"glint/internal/trace"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Builder *ast.Builder
	FileID  ast.FileID
	Bag     *diag.Bag
	// Err is the first parse error; Builder then holds partial nodes.
	Err error
}

// Parse loads and parses one file. The returned error is reserved for I/O
// failures and cancellation; syntax errors land in ParseResult.Err and Bag.
func Parse(ctx context.Context, path string, opts Options) (*ParseResult, error) {
	span := trace.Begin(trace.FromContext(ctx), trace.ScopeDriver, "parse", trace.CurrentSpan(ctx).SpanID)
	defer span.End(path)

	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(opts.MaxDiagnostics)
	builder := ast.NewBuilder(ast.Hints{}, nil)
	astFile, parseErr := parseSource(ctx, file, builder, opts, opts.reporter(bag))
	if parseErr != nil && ctx.Err() != nil {
		return nil, parseErr
	}

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Builder: builder,
		FileID:  astFile,
		Bag:     bag,
		Err:     parseErr,
	}, nil
}

func parseSource(ctx context.Context, file *source.File, builder *ast.Builder, opts Options, r diag.Reporter) (ast.FileID, error) {
	lx := lexer.New(source.NewReader(file), opts.lexerOptions(r))
	res, err := parser.ParseFile(ctx, lx, builder, opts.parserOptions(r))
	if err != nil {
		return 0, err
	}
	return res.File, nil
}
