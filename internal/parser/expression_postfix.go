package parser

import (
	"glint/internal/ast"
	"glint/internal/diag"
	"glint/internal/token"
)

// parsePostfix greedily extends part with calls and member accesses, left to right.
// Every resulting node starts at the left-most token of the chain.
func (p *Parser) parsePostfix(part ast.NodeID) (ast.NodeID, error) {
	for {
		tok, err := p.peek()
		if err != nil {
			return ast.NoNodeID, err
		}
		switch tok.Kind {
		case token.LParen:
			p.advance()
			part, err = p.parseCall(part)
		case token.Dot:
			p.advance()
			part, err = p.parseMember(part)
		default:
			return part, nil
		}
		if err != nil {
			return ast.NoNodeID, err
		}
	}
}

// parseCall reads arguments until ')'. No separator is consumed between them.
func (p *Parser) parseCall(callee ast.NodeID) (ast.NodeID, error) {
	var args []ast.NodeID
	for {
		tok, err := p.peek()
		if err != nil {
			return ast.NoNodeID, err
		}
		if tok.Kind == token.RParen {
			p.advance()
			start := p.arenas.Nodes.Get(callee).Span
			return p.arenas.Nodes.NewCall(p.span(start, tok.Span), callee, args), nil
		}
		arg, err := p.parseExpression(CtxArgument)
		if err != nil {
			return ast.NoNodeID, err
		}
		args = append(args, arg)
	}
}

func (p *Parser) parseMember(target ast.NodeID) (ast.NodeID, error) {
	tok, err := p.peek()
	if err != nil {
		return ast.NoNodeID, err
	}
	if !tok.IsIdent() {
		return ast.NoNodeID, p.errAt(tok, diag.SynExpectMemberName,
			"expected ID after '.', but got '%s'", tok.TextOrEOF())
	}
	p.advance()
	start := p.arenas.Nodes.Get(target).Span
	return p.arenas.Nodes.NewMember(p.span(start, tok.Span), target, p.arenas.Strings.Intern(tok.Text)), nil
}
