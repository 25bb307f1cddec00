package parser

import (
	"fmt"

	"glint/internal/diag"
	"glint/internal/source"
	"glint/internal/token"
)

// peek fills the lookahead slot if empty and returns the token without consuming it.
func (p *Parser) peek() (token.Token, error) {
	if p.look == nil {
		tok, err := p.lx.Next()
		if err != nil {
			return token.Token{}, err
		}
		p.look = &tok
	}
	return *p.look, nil
}

// advance drops the token in the slot. The slot must be full.
func (p *Parser) advance() {
	if p.look == nil {
		panic("parser: advance with empty lookahead")
	}
	p.look = nil
}

// next = peek + advance.
func (p *Parser) next() (token.Token, error) {
	tok, err := p.peek()
	if err != nil {
		return tok, err
	}
	p.advance()
	return tok, nil
}

// errAt builds the fail-fast error anchored at the start of tok.
func (p *Parser) errAt(tok token.Token, code diag.Code, format string, args ...any) error {
	return p.errSpan(tok.Span, code, fmt.Sprintf(format, args...))
}

func (p *Parser) errSpan(sp source.Span, code diag.Code, msg string) error {
	prefix := p.lx.Reader().DiagnosticPrefix(sp.Start)
	return diag.Fail(p.opts.Reporter, code, sp, prefix, msg)
}

func (p *Parser) span(start source.Span, end source.Span) source.Span {
	return start.Cover(end)
}
