package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.gl", []byte("hello world"), 0)
	if id1 != 0 {
		t.Errorf("Expected first FileID to be 0, got %d", id1)
	}

	// тот же путь, новое содержимое → новый FileID
	id2 := fs.Add("test.gl", []byte("hello universe"), 0)
	if id2 != 1 {
		t.Errorf("Expected second FileID to be 1, got %d", id2)
	}

	latestID, exists := fs.Lookup("test.gl")
	if !exists || latestID != id2 {
		t.Errorf("Expected latest ID %d, got %d (exists=%v)", id2, latestID, exists)
	}

	if string(fs.Get(id1).Content) != "hello world" {
		t.Errorf("old version must stay reachable, got %q", fs.Get(id1).Content)
	}
	if fs.Get(id1).Hash == fs.Get(id2).Hash {
		t.Error("different content must produce different hashes")
	}
}

func TestAddVirtualLineIdx(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("v.gl", []byte("a\nbc\n\nd"))
	f := fs.Get(id)

	want := []uint32{1, 4, 5}
	if len(f.LineIdx) != len(want) {
		t.Fatalf("LineIdx = %v, want %v", f.LineIdx, want)
	}
	for i := range want {
		if f.LineIdx[i] != want[i] {
			t.Fatalf("LineIdx = %v, want %v", f.LineIdx, want)
		}
	}
	if f.Flags&FileVirtual == 0 {
		t.Error("expected FileVirtual flag")
	}
}

func TestResolvePositions(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("p.gl", []byte("ab\ncd\n"))

	tests := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 1},
		{1, 1, 2},
		{2, 1, 3}, // сам '\n' принадлежит первой строке
		{3, 2, 1},
		{5, 2, 3},
		{6, 3, 1},
	}
	for _, tt := range tests {
		start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
		if start.Line != tt.line || start.Col != tt.col {
			t.Errorf("offset %d: got %d:%d, want %d:%d", tt.off, start.Line, start.Col, tt.line, tt.col)
		}
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("l.gl", []byte("first\nsecond\nthird")))

	cases := map[uint32]string{0: "", 1: "first", 2: "second", 3: "third", 4: ""}
	for n, want := range cases {
		if got := f.GetLine(n); got != want {
			t.Errorf("GetLine(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestCRLFNormalization(t *testing.T) {
	out, changed := normalizeCRLF([]byte("a\r\nb\rc\r\n"))
	if !changed {
		t.Fatal("expected change")
	}
	if string(out) != "a\nb\rc\n" {
		t.Fatalf("got %q", out)
	}

	same, changed := normalizeCRLF([]byte("plain\n"))
	if changed || string(same) != "plain\n" {
		t.Fatalf("unexpected normalization: %q changed=%v", same, changed)
	}
}

func TestLoadBOM(t *testing.T) {
	dir := t.TempDir()

	utf8Path := filepath.Join(dir, "utf8.gl")
	if err := os.WriteFile(utf8Path, []byte("\xEF\xBB\xBFfoo"), 0o600); err != nil {
		t.Fatal(err)
	}
	// "hi" в UTF-16LE с BOM
	utf16Path := filepath.Join(dir, "utf16.gl")
	if err := os.WriteFile(utf16Path, []byte{0xFF, 0xFE, 'h', 0, 'i', 0}, 0o600); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(utf8Path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "foo" {
		t.Errorf("utf8 BOM not stripped: %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileDecodedUTF16 != 0 {
		t.Errorf("unexpected flags %b", f.Flags)
	}

	id, err = fs.Load(utf16Path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f = fs.Get(id)
	if string(f.Content) != "hi" {
		t.Errorf("utf16 not transcoded: %q", f.Content)
	}
	if f.Flags&FileDecodedUTF16 == 0 {
		t.Errorf("expected FileDecodedUTF16, flags %b", f.Flags)
	}
}

func TestLoadCRLF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crlf.gl")
	if err := os.WriteFile(path, []byte("a\r\nb"), 0o600); err != nil {
		t.Fatal(err)
	}
	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "a\nb" || f.Flags&FileNormalizedCRLF == 0 {
		t.Fatalf("content %q flags %b", f.Content, f.Flags)
	}
}

func TestLoadMissing(t *testing.T) {
	fs := NewFileSet()
	if _, err := fs.Load(filepath.Join(t.TempDir(), "nope.gl")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 8}
	b := Span{File: 1, Start: 2, End: 6}
	if got := a.Cover(b); got.Start != 2 || got.End != 8 {
		t.Fatalf("Cover = %v", got)
	}
	other := Span{File: 2, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Fatalf("cross-file cover must be a no-op, got %v", got)
	}
	if !a.Cover(b).Contains(a) || a.Contains(b) {
		t.Fatal("Contains mismatch")
	}
}

func TestInterner(t *testing.T) {
	in := NewInterner()
	a := in.Intern("foo")
	b := in.Intern("foo")
	c := in.Intern("bar")
	if a != b || a == c {
		t.Fatalf("ids: %d %d %d", a, b, c)
	}
	if s, ok := in.Lookup(c); !ok || s != "bar" {
		t.Fatalf("Lookup = %q, %v", s, ok)
	}
	if _, ok := in.Lookup(StringID(99)); ok {
		t.Fatal("unknown id must not resolve")
	}
	if in.Len() != 3 {
		t.Fatalf("Len = %d", in.Len())
	}
	if s, ok := in.Lookup(NoStringID); !ok || s != "" {
		t.Fatal("NoStringID must map to empty string")
	}
}

func TestFormatPath(t *testing.T) {
	base := t.TempDir()
	long := filepath.Join(base, "some", "deeply", "nested", "directory", "main.gl")
	f := &File{Path: normalizePath(long)}

	if got := f.FormatPath("basename", ""); got != "main.gl" {
		t.Errorf("basename = %q", got)
	}
	if got := f.FormatPath("relative", base); got != "some/deeply/nested/directory/main.gl" {
		t.Errorf("relative = %q", got)
	}
	if got := f.FormatPath("auto", ""); len(f.Path) >= 40 && got != "main.gl" {
		t.Errorf("auto on long absolute path = %q", got)
	}
	short := &File{Path: "src/a.gl"}
	if got := short.FormatPath("auto", ""); got != "src/a.gl" {
		t.Errorf("auto on relative path = %q", got)
	}
	// пути вне базы печатаются абсолютными
	outside := &File{Path: normalizePath(filepath.Join(filepath.Dir(base), "x.gl"))}
	if got := outside.FormatPath("relative", base); !filepath.IsAbs(filepath.FromSlash(got)) {
		t.Errorf("escaping path = %q", got)
	}
}

func TestGetLineOutOfRange(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("e.gl", nil))
	if f.GetLine(1) != "" || f.GetLine(2) != "" || f.GetLine(0) != "" {
		t.Fatal("empty file has one empty line and nothing else")
	}
}
