package source

import "testing"

func newTestReader(content string) *Reader {
	fs := NewFileSet()
	return NewReader(fs.Get(fs.AddVirtual("test.gl", []byte(content))))
}

// "a\nb" reads as a, \n, b, then end.
func TestReaderSequential(t *testing.T) {
	r := newTestReader("a\nb")

	for i, want := range []byte("a\nb") {
		if r.AtEnd() {
			t.Fatalf("unexpected end at %d", i)
		}
		if got := r.Peek(); got != want {
			t.Fatalf("Peek at %d = %q, want %q", i, got, want)
		}
		r.Pop()
	}
	if !r.AtEnd() {
		t.Fatal("expected end of input")
	}
	if r.Pos() != 3 {
		t.Fatalf("Pos = %d", r.Pos())
	}

	// Pop at the end is a no-op
	r.Pop()
	if r.Pos() != 3 || r.Peek() != 0 {
		t.Fatalf("Pop past end moved cursor: pos=%d peek=%q", r.Pos(), r.Peek())
	}
}

func TestReaderSpanAndSlice(t *testing.T) {
	r := newTestReader("hello world")
	for range 5 {
		r.Pop()
	}
	sp := r.SpanFrom(0)
	if sp.Start != 0 || sp.End != 5 {
		t.Fatalf("SpanFrom = %v", sp)
	}
	if got := string(r.Slice(sp.Start, sp.End)); got != "hello" {
		t.Fatalf("Slice = %q", got)
	}
}

func TestReaderDiagnosticPrefix(t *testing.T) {
	r := newTestReader("ab\n  cd")
	if got := r.DiagnosticPrefix(0); got != "test.gl:1:1: " {
		t.Errorf("prefix(0) = %q", got)
	}
	if got := r.DiagnosticPrefix(5); got != "test.gl:2:3: " {
		t.Errorf("prefix(5) = %q", got)
	}
}
