package source

import (
	"fmt"
)

// Reader is a byte cursor over one File. It is the only component that touches
// raw source bytes: the lexer pulls from it one byte at a time.
type Reader struct {
	file *File
	off  uint32
	// limit is the exclusive upper bound for off (len(file.Content)).
	limit uint32
}

// NewReader creates a reader positioned at the start of f.
func NewReader(f *File) *Reader {
	return &Reader{
		file:  f,
		limit: f.Len(),
	}
}

// File returns the underlying file.
func (r *Reader) File() *File {
	return r.file
}

// AtEnd reports whether the cursor is past the last byte.
func (r *Reader) AtEnd() bool {
	return r.off >= r.limit
}

// Peek returns the current byte. Calling it at end of input returns 0;
// callers are expected to check AtEnd first.
func (r *Reader) Peek() byte {
	if r.AtEnd() {
		return 0
	}
	return r.file.Content[r.off]
}

// Pop advances the cursor by one byte. It is a no-op at end of input.
func (r *Reader) Pop() {
	if r.AtEnd() {
		return
	}
	r.off++
}

// Pos returns the current byte offset.
func (r *Reader) Pos() uint32 {
	return r.off
}

// Slice returns the raw bytes in [start, end).
func (r *Reader) Slice(start, end uint32) []byte {
	return r.file.Content[start:end]
}

// SpanFrom returns the span from start to the cursor.
func (r *Reader) SpanFrom(start uint32) Span {
	return Span{File: r.file.ID, Start: start, End: r.off}
}

// DiagnosticPrefix renders the human-readable location preamble for pos,
// e.g. "main.gl:3:14: ".
func (r *Reader) DiagnosticPrefix(pos uint32) string {
	lc := r.file.Position(pos)
	return fmt.Sprintf("%s:%d:%d: ", r.file.Path, lc.Line, lc.Col)
}
