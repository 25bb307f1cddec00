package parser

import (
	"glint/internal/ast"
	"glint/internal/diag"
	"glint/internal/token"
)

// parseBinding := ('macro' | 'memoize') ID Expression
// The caller has already checked statement position.
func (p *Parser) parseBinding(kw token.Keyword, kwTok token.Token) (ast.NodeID, error) {
	name, err := p.peek()
	if err != nil {
		return ast.NoNodeID, err
	}
	if !name.IsIdent() {
		return ast.NoNodeID, p.errAt(name, diag.SynExpectIdentifier,
			"expected an ID token after '%s' but got %s", kw, name.Desc())
	}
	p.advance()

	value, err := p.parseExpression(CtxBinding)
	if err != nil {
		return ast.NoNodeID, err
	}

	kind := ast.KindMacro
	if kw == token.KwMemoize {
		kind = ast.KindMemoize
	}
	sp := p.span(kwTok.Span, p.arenas.Nodes.Get(value).Span)
	return p.arenas.Nodes.NewBinding(kind, sp, p.arenas.Strings.Intern(name.Text), value), nil
}
