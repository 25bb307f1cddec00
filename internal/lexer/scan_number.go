package lexer

import (
	"math"

	"glint/internal/diag"
	"glint/internal/token"
)

// scanNumber reads the longest run of decimal digits. Values that do not
// fit in uint64 fail with the span anchored at the first digit.
func (lx *Lexer) scanNumber() (token.Token, error) {
	start := lx.r.Pos()
	var value uint64
	for !lx.r.AtEnd() && isDec(lx.r.Peek()) {
		d := uint64(lx.r.Peek() - '0')
		if value > (math.MaxUint64-d)/10 {
			for !lx.r.AtEnd() && isDec(lx.r.Peek()) {
				lx.r.Pop()
			}
			return token.Token{}, lx.errAt(diag.LexNumberOverflow, lx.r.SpanFrom(start),
				"number literal overflows 64-bit unsigned range")
		}
		value = value*10 + d
		lx.r.Pop()
	}
	if err := lx.checkLength(start); err != nil {
		return token.Token{}, err
	}
	tok := lx.emit(token.Number, start)
	tok.Number = value
	return tok, nil
}
