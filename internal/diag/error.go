package diag

import (
	"errors"

	"glint/internal/source"
)

// Error is the fail-fast payload of the lexer and parser: a single
// diagnostic plus the "path:line:col: " prefix of its primary position.
type Error struct {
	Diag   Diagnostic
	Prefix string
}

func (e *Error) Error() string {
	return e.Prefix + e.Diag.Message
}

// Fail builds an *Error for an error-severity diagnostic and, when r is not nil,
// reports the same diagnostic to r.
func Fail(r Reporter, code Code, primary source.Span, prefix, msg string) *Error {
	d := NewError(code, primary, msg)
	Emit(r, d)
	return &Error{Diag: d, Prefix: prefix}
}

// AsError unwraps err into *Error when possible.
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
