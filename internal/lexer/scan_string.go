package lexer

import (
	"fmt"
	"unicode/utf8"

	"glint/internal/diag"
	"glint/internal/token"
)

// scanString reads "..." starting at the opening quote.
// The only escape is \n. Other bytes are copied as is and the
// result must be valid UTF-8.
func (lx *Lexer) scanString() (token.Token, error) {
	start := lx.r.Pos()
	var value []byte
	for {
		lx.r.Pop()
		if lx.r.AtEnd() {
			return token.Token{}, lx.errAt(diag.LexUnterminatedString, lx.r.SpanFrom(start),
				"quoted-string is missing close quote")
		}
		if err := lx.checkLength(start); err != nil {
			return token.Token{}, err
		}
		c := lx.r.Peek()
		if c == '"' {
			break
		}
		if c != '\\' {
			value = append(value, c)
			continue
		}

		escapePos := lx.r.Pos()
		lx.r.Pop()
		if lx.r.AtEnd() {
			return token.Token{}, lx.errAt(diag.LexUnfinishedEscape, lx.r.SpanFrom(escapePos),
				"unfinished escape sequence")
		}
		if lx.r.Peek() != 'n' {
			lx.r.Pop()
			seq := lx.r.Slice(escapePos, lx.r.Pos())
			return token.Token{}, lx.errAt(diag.LexInvalidEscape, lx.r.SpanFrom(escapePos),
				fmt.Sprintf("invalid escape sequence \"%s\"", seq))
		}
		value = append(value, '\n')
	}
	lx.r.Pop() // closing '"'
	if err := lx.checkLength(start); err != nil {
		return token.Token{}, err
	}

	if !utf8.Valid(value) {
		return token.Token{}, lx.errAt(diag.LexInvalidUTF8, lx.r.SpanFrom(start),
			"string literal is not valid UTF-8")
	}
	tok := lx.emit(token.String, start)
	tok.Value = string(value)
	return tok, nil
}
