package lexer

import (
	"glint/internal/token"
)

// scanIdent reads [A-Za-z][A-Za-z0-9_]*. Keywords stay Ident; the parser
// tells them apart by exact text.
func (lx *Lexer) scanIdent() (token.Token, error) {
	start := lx.r.Pos()
	lx.r.Pop()
	for !lx.r.AtEnd() && isIdentContinueByte(lx.r.Peek()) {
		lx.r.Pop()
	}
	if err := lx.checkLength(start); err != nil {
		return token.Token{}, err
	}
	return lx.emit(token.Ident, start), nil
}
