package parser

import (
	"glint/internal/ast"
	"glint/internal/diag"
	"glint/internal/token"
)

// parseExpression := Part ( '(' Expression* ')' | '.' ID )*
// Returns ast.NoNodeID only for end-of-source in top-level context.
func (p *Parser) parseExpression(ctx Context) (ast.NodeID, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.opts.MaxDepth {
		tok, err := p.peek()
		if err != nil {
			return ast.NoNodeID, err
		}
		return ast.NoNodeID, p.errAt(tok, diag.SynNestingTooDeep, "expression nested too deeply")
	}

	part, err := p.parsePart(ctx)
	if err != nil || !part.IsValid() {
		return part, err
	}
	return p.parsePostfix(part)
}

// parsePart dispatches on the next token.
func (p *Parser) parsePart(ctx Context) (ast.NodeID, error) {
	tok, err := p.peek()
	if err != nil {
		return ast.NoNodeID, err
	}
	if tok.Kind == token.EOF {
		if ctx == CtxTopLevel {
			p.advance()
			return ast.NoNodeID, nil
		}
		return ast.NoNodeID, p.errAt(tok, diag.SynUnexpectedEOF,
			"expected expression (context=%s) but got EOF", ctx)
	}
	p.advance()

	switch tok.Kind {
	case token.At:
		return p.parseBuiltin(tok)
	case token.Ident:
		kw, _ := token.LookupKeyword(tok.Text)
		switch kw {
		case token.KwFn:
			return p.parseFn(tok)
		case token.KwMacro, token.KwMemoize:
			if !ctx.IsStatement() {
				return ast.NoNodeID, p.errAt(tok, diag.SynBindingNotAllowed,
					"%s is only allowed at statement-level context (context=%s)", kw, ctx)
			}
			return p.parseBinding(kw, tok)
		}
		return p.arenas.Nodes.NewSymbol(tok.Span, p.arenas.Strings.Intern(tok.Text)), nil
	case token.String:
		return p.arenas.Nodes.NewString(tok.Span, tok.Value), nil
	case token.Number:
		return p.arenas.Nodes.NewNumber(tok.Span, tok.Number), nil
	}
	return ast.NoNodeID, p.errAt(tok, diag.SynUnexpectedExprToken,
		"unable to parse expression from token %s", tok.Desc())
}

// parseBuiltin := '@' ID; the node is anchored at '@'.
func (p *Parser) parseBuiltin(at token.Token) (ast.NodeID, error) {
	id, err := p.next()
	if err != nil {
		return ast.NoNodeID, err
	}
	if !id.IsIdent() {
		return ast.NoNodeID, p.errAt(id, diag.SynExpectBuiltinName,
			"'@' must be followed by an ID token but got '%s'", id.Desc())
	}
	return p.arenas.Nodes.NewBuiltin(p.span(at.Span, id.Span), p.arenas.Strings.Intern(id.Text)), nil
}
