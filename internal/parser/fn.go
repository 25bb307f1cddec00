package parser

import (
	"glint/internal/ast"
	"glint/internal/diag"
	"glint/internal/token"
)

type fnState uint8

const (
	fnReadingAttrs fnState = iota
	fnReadingBody
	fnDone
)

// parseFn := 'fn' Attr* ( 'link' | '{' Expression* '}' )
//
// Attributes are read until '{'. 'link' ends the definition at once with no
// body. A later abiStart/abiSyscall overrides an earlier one.
func (p *Parser) parseFn(fnTok token.Token) (ast.NodeID, error) {
	var (
		data  ast.FnData
		state = fnReadingAttrs
		last  = fnTok
	)

	for state != fnDone {
		switch state {
		case fnReadingAttrs:
			tok, err := p.next()
			if err != nil {
				return ast.NoNodeID, err
			}
			last = tok
			if tok.Kind == token.LBrace {
				data.HasBody = true
				state = fnReadingBody
				continue
			}
			end, linked, err := p.parseFnAttr(tok, &data.Attrs)
			if err != nil {
				return ast.NoNodeID, err
			}
			last = end
			if linked {
				state = fnDone
			}

		case fnReadingBody:
			tok, err := p.peek()
			if err != nil {
				return ast.NoNodeID, err
			}
			if tok.Kind == token.RBrace {
				p.advance()
				last = tok
				state = fnDone
				continue
			}
			expr, err := p.parseExpression(CtxFnBody)
			if err != nil {
				return ast.NoNodeID, err
			}
			data.Body = append(data.Body, expr)
		}
	}

	return p.arenas.Nodes.NewFn(p.span(fnTok.Span, last.Span), data), nil
}

// parseFnAttr applies one attribute token. It returns the last token consumed
// and whether the attribute was 'link'.
func (p *Parser) parseFnAttr(tok token.Token, attrs *ast.FnAttrs) (token.Token, bool, error) {
	if tok.Kind == token.EOF {
		return tok, false, p.errAt(tok, diag.SynUnexpectedEOF,
			"expected expression (context=%s) but got EOF", CtxFnAttribute)
	}
	attr := token.NoFnAttr
	if tok.IsIdent() {
		attr, _ = token.LookupFnAttr(tok.Text)
	}

	switch attr {
	case token.AttrLink:
		attrs.Link = true
		return tok, true, nil
	case token.AttrABIStart:
		attrs.SetEntryPoint()
		return tok, false, nil
	case token.AttrABISyscall:
		count, err := p.next()
		if err != nil {
			return tok, false, err
		}
		if count.Kind != token.Number {
			return tok, false, p.errAt(count, diag.SynExpectSyscallCount,
				"expected a NUMBER after abiSyscall but got '%s'", count.TextOrEOF())
		}
		attrs.SetRawSyscall(count.Number)
		return count, false, nil
	}
	return tok, false, p.errAt(tok, diag.SynInvalidFnAttribute,
		"invalid function attribute '%s'", tok.Text)
}
