package parser

import (
	"context"
	"fmt"
	"strconv"

	"glint/internal/ast"
	"glint/internal/diag"
	"glint/internal/lexer"
	"glint/internal/source"
	"glint/internal/token"
	"glint/internal/trace"
)

// DefaultMaxDepth bounds expression nesting when Options.MaxDepth is zero.
const DefaultMaxDepth = 10000

type Options struct {
	// Trace emits ScopeNode events for every top-level expression.
	Trace    bool
	Reporter diag.Reporter
	MaxDepth int
}

type Result struct {
	File ast.FileID
}

// Parser holds the state for parsing one file.
type Parser struct {
	lx     *lexer.Lexer
	arenas *ast.Builder
	file   ast.FileID
	opts   Options
	// look is the single lookahead slot; nil when empty.
	look  *token.Token
	depth int

	tracer trace.Tracer
	spanID uint64
}

// ParseFile parses top-level expressions until the end of the file.
// The first error stops parsing and no partial AST is returned.
func ParseFile(
	ctx context.Context,
	lx *lexer.Lexer,
	arenas *ast.Builder,
	opts Options,
) (Result, error) {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	file := lx.Reader().File()
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeFile, "parse "+file.Path, trace.CurrentSpan(ctx).SpanID)

	p := Parser{
		lx:     lx,
		arenas: arenas,
		file:   arenas.NewFile(source.Span{File: file.ID}),
		opts:   opts,
		tracer: tracer,
		spanID: span.ID(),
	}

	if err := p.parseItems(ctx); err != nil {
		span.End("failed")
		return Result{}, err
	}
	f := arenas.Files.Get(p.file)
	span.WithExtra("nodes", strconv.Itoa(len(f.Nodes))).End("")
	return Result{File: p.file}, nil
}

// parseItems reads expressions until EOF. The EOF token itself is not stored.
func (p *Parser) parseItems(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("parse %s: %w", p.lx.Reader().File().Path, err)
		}
		id, err := p.parseExpression(CtxTopLevel)
		if err != nil {
			return err
		}
		if !id.IsValid() {
			break
		}
		p.arenas.PushNode(p.file, id)
		if p.opts.Trace {
			node := p.arenas.Nodes.Get(id)
			trace.Point(p.tracer, trace.ScopeNode, node.Kind.String(), node.Span.String(), p.spanID)
		}
	}
	f := p.arenas.Files.Get(p.file)
	f.Span.End = p.lx.Reader().Pos()
	return nil
}
