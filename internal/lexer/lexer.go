package lexer

import (
	"glint/internal/diag"
	"glint/internal/source"
	"glint/internal/token"
)

// Lexer pulls bytes from a source.Reader and produces one token per Next call.
// The first error is terminal for the unit; the parser discards the attempt.
type Lexer struct {
	r    *source.Reader
	opts Options
}

func New(r *source.Reader, opts Options) *Lexer {
	return &Lexer{
		r:    r,
		opts: opts,
	}
}

// Reader returns the underlying reader (used for diagnostic prefixes by the parser).
func (lx *Lexer) Reader() *source.Reader {
	return lx.r
}

// Next skips trivia and returns the next token.
// Once EOF is reached it keeps returning EOF with an empty span at the end of the file.
func (lx *Lexer) Next() (token.Token, error) {
	if !lx.skipTrivia() {
		end := lx.r.Pos()
		return token.Token{
			Kind: token.EOF,
			Span: source.Span{File: lx.r.File().ID, Start: end, End: end},
		}, nil
	}

	c := lx.r.Peek()
	if c >= 'a' {
		switch {
		case c <= 'z':
			return lx.scanIdent()
		case c == '{':
			return lx.single(token.LBrace), nil
		case c == '}':
			return lx.single(token.RBrace), nil
		case c == '|':
			return lx.single(token.Pipe), nil
		case c == '~':
			return lx.single(token.Tilde), nil
		}
		return lx.single(token.OutOfRange), nil
	}
	if c > 'Z' {
		return lx.single(token.Invalid), nil
	}
	if c >= 'A' {
		return lx.scanIdent()
	}
	if c > '9' {
		if c == '@' {
			return lx.single(token.At), nil
		}
		return lx.single(token.Invalid), nil
	}
	if c >= '0' {
		return lx.scanNumber()
	}

	switch c {
	case '.':
		return lx.single(token.Dot), nil
	case '(':
		return lx.single(token.LParen), nil
	case ')':
		return lx.single(token.RParen), nil
	case ',':
		return lx.single(token.Comma), nil
	case '"':
		return lx.scanString()
	}
	return lx.single(token.Invalid), nil
}

// Tokenize collects every token up to and including EOF.
func (lx *Lexer) Tokenize() ([]token.Token, error) {
	var toks []token.Token
	for {
		tok, err := lx.Next()
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks, nil
		}
	}
}

// single consumes exactly one byte as a token of kind k.
func (lx *Lexer) single(k token.Kind) token.Token {
	start := lx.r.Pos()
	lx.r.Pop()
	return lx.emit(k, start)
}

func (lx *Lexer) emit(k token.Kind, start uint32) token.Token {
	sp := lx.r.SpanFrom(start)
	return token.Token{
		Kind: k,
		Span: sp,
		Text: string(lx.r.Slice(sp.Start, sp.End)),
	}
}

// checkLength fails when the token that began at start has grown past the limit.
func (lx *Lexer) checkLength(start uint32) error {
	if lx.r.Pos()-start <= lx.opts.maxTokenLength() {
		return nil
	}
	return lx.errAt(diag.LexTokenTooLong, lx.r.SpanFrom(start), "token too long")
}
