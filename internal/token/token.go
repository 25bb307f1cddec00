package token

import (
	"fmt"

	"glint/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
	// Number is the parsed value of a Number token.
	Number uint64
	// Value is the decoded text of a String token.
	Value string
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// Desc returns a short debug description used in parser diagnostics,
// e.g. ID(foo), NUMBER 12, STRING "hi", INVALID_CHAR(;).
func (t Token) Desc() string {
	switch t.Kind {
	case EOF:
		return "EOF"
	case Ident:
		return fmt.Sprintf("ID(%s)", t.Text)
	case Invalid, OutOfRange:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Text)
	case LBrace:
		return "LEFT_CURLY '{'"
	case String, Number:
		return fmt.Sprintf("%s %s", t.Kind, t.Text)
	case Comma:
		return "COMMA"
	default:
		return fmt.Sprintf("%s '%s'", t.Kind, t.Text)
	}
}

// TextOrEOF returns the token text, or "EOF" for the end-of-source token.
func (t Token) TextOrEOF() string {
	if t.Kind == EOF {
		return "EOF"
	}
	return t.Text
}
