package diagfmt_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"glint/internal/ast"
	"glint/internal/diag"
	"glint/internal/diagfmt"
	"glint/internal/lexer"
	"glint/internal/parser"
	"glint/internal/source"
)

type fixture struct {
	fs      *source.FileSet
	builder *ast.Builder
	file    ast.FileID
	bag     *diag.Bag
	err     error
}

func parseSource(src string) fixture {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.gl", []byte(src)))
	bag := diag.NewBag(0)
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(source.NewReader(file), lexer.Options{Reporter: reporter})
	builder := ast.NewBuilder(ast.Hints{}, nil)
	res, err := parser.ParseFile(context.Background(), lx, builder, parser.Options{Reporter: reporter})
	return fixture{fs: fs, builder: builder, file: res.File, bag: bag, err: err}
}

func TestQuoteString(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", `""`},
		{"hi", `"hi"`},
		{"a\nb", `"a\nb"`},
		{`back\slash`, `"back\slash"`},
	}
	for _, tt := range tests {
		if got := diagfmt.QuoteString(tt.in); got != tt.want {
			t.Errorf("QuoteString(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestDescribeNoNode(t *testing.T) {
	b := ast.NewBuilder(ast.Hints{}, nil)
	if got := diagfmt.Describe(b, ast.NoNodeID); got != "(EOF)" {
		t.Errorf("Describe(NoNodeID) = %s", got)
	}
}

func TestFormatASTPretty(t *testing.T) {
	fx := parseSource("macro x 1\nfn link")
	if fx.err != nil {
		t.Fatal(fx.err)
	}
	var buf bytes.Buffer
	if err := diagfmt.FormatASTPretty(&buf, fx.builder, fx.file, fx.fs); err != nil {
		t.Fatal(err)
	}
	want := "test.gl (span: 1:1-2:8)\n" +
		"├─ [0] (Macro x (Number 1))\n" +
		"└─ [1] (FunctionNode link)\n"
	if buf.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestFormatASTJSON(t *testing.T) {
	fx := parseSource(`f("a" 2)`)
	if fx.err != nil {
		t.Fatal(fx.err)
	}
	var buf bytes.Buffer
	if err := diagfmt.FormatASTJSON(&buf, fx.builder, fx.file); err != nil {
		t.Fatal(err)
	}
	var out diagfmt.ASTNodeOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if out.Type != "File" || len(out.Children) != 1 {
		t.Fatalf("unexpected root: %+v", out)
	}
	call := out.Children[0]
	if call.Type != "Call" {
		t.Errorf("type = %s, want Call", call.Type)
	}
	// callee + два аргумента
	if len(call.Children) != 3 {
		t.Errorf("call has %d children, want 3", len(call.Children))
	}
}

func TestFormatASTTree(t *testing.T) {
	fx := parseSource("f(x)")
	if fx.err != nil {
		t.Fatal(fx.err)
	}
	var buf bytes.Buffer
	if err := diagfmt.FormatASTTree(&buf, fx.builder, fx.file, fx.fs); err != nil {
		t.Fatal(err)
	}
	want := "test.gl\n" +
		"   |\n" +
		" Call\n" +
		" / | \\\n" +
		" f   x\n"
	if buf.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestFormatTokens(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("t.gl", []byte(`f(12 "a")`)))
	toks, err := lexer.New(source.NewReader(file), lexer.Options{}).Tokenize()
	if err != nil {
		t.Fatal(err)
	}

	var pretty bytes.Buffer
	if err := diagfmt.FormatTokensPretty(&pretty, toks, fs); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(pretty.String(), "\n"), "\n")
	if len(lines) != len(toks) {
		t.Fatalf("got %d lines for %d tokens:\n%s", len(lines), len(toks), pretty.String())
	}
	if !strings.Contains(lines[2], "NUMBER") || !strings.HasSuffix(lines[2], "= 12") {
		t.Errorf("number line = %q", lines[2])
	}

	var js bytes.Buffer
	if err := diagfmt.FormatTokensJSON(&js, toks); err != nil {
		t.Fatal(err)
	}
	var out []diagfmt.TokenOutput
	if err := json.Unmarshal(js.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 6 || out[5].Kind != "EOF" {
		t.Fatalf("unexpected tokens: %+v", out)
	}
	if out[2].Number == nil || *out[2].Number != 12 {
		t.Errorf("number payload = %v", out[2].Number)
	}
	if out[3].Value == nil || *out[3].Value != "a" {
		t.Errorf("string payload = %v", out[3].Value)
	}
}

func TestPretty(t *testing.T) {
	fx := parseSource("f(")
	if fx.err == nil {
		t.Fatal("expected parse error")
	}
	var buf bytes.Buffer
	diagfmt.Pretty(&buf, fx.bag, fx.fs, diagfmt.PrettyOpts{})
	want := "test.gl:1:3: error SYN2002: expected expression (context=argument) but got EOF\n" +
		" 1 | f(\n" +
		"   |   ^\n"
	if buf.String() != want {
		t.Errorf("got:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestPrettyWideRunes(t *testing.T) {
	fx := parseSource(`"日本" )`)
	if fx.err == nil {
		t.Fatal("expected parse error")
	}
	var buf bytes.Buffer
	diagfmt.Pretty(&buf, fx.bag, fx.fs, diagfmt.PrettyOpts{})
	lines := strings.Split(buf.String(), "\n")
	if len(lines) < 3 {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
	// "日本" занимает 4 колонки, кавычки и пробел ещё 3
	if want := "   | " + strings.Repeat(" ", 7) + "^"; lines[2] != want {
		t.Errorf("caret line = %q, want %q", lines[2], want)
	}
}

func TestPrettyNotesAndMax(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("n.gl", []byte("abc def\n"))
	bag := diag.NewBag(0)
	bag.Add(diag.NewError(diag.SynUnexpectedToken, source.Span{File: id, Start: 4, End: 7}, "first").
		WithNote(source.Span{File: id, Start: 0, End: 3}, "see here"))
	bag.Add(diag.NewError(diag.SynUnexpectedToken, source.Span{File: id, Start: 0, End: 1}, "second"))

	var buf bytes.Buffer
	diagfmt.Pretty(&buf, bag, fs, diagfmt.PrettyOpts{ShowNotes: true, Max: 1})
	out := buf.String()
	if strings.Contains(out, "second") {
		t.Errorf("Max=1 must drop the second diagnostic:\n%s", out)
	}
	if !strings.Contains(out, "note: n.gl:1:1: see here") {
		t.Errorf("missing note:\n%s", out)
	}
	if !strings.Contains(out, "     ^~~\n") {
		t.Errorf("missing 3-wide underline:\n%s", out)
	}
}

func TestDiagnosticsJSON(t *testing.T) {
	fx := parseSource("a.\n")
	if fx.err == nil {
		t.Fatal("expected parse error")
	}
	var buf bytes.Buffer
	err := diagfmt.JSON(&buf, fx.bag, fx.fs, diagfmt.JSONOpts{IncludePositions: true, PathMode: diagfmt.PathModeBasename})
	if err != nil {
		t.Fatal(err)
	}
	var out diagfmt.DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Count != 1 {
		t.Fatalf("count = %d", out.Count)
	}
	d := out.Diagnostics[0]
	if d.Code != "SYN2009" || d.Severity != "ERROR" || d.Location.File != "test.gl" {
		t.Errorf("unexpected diagnostic: %+v", d)
	}
	// EOF стоит после перевода строки
	if d.Location.StartLine != 2 || d.Location.StartCol != 1 {
		t.Errorf("position = %d:%d, want 2:1", d.Location.StartLine, d.Location.StartCol)
	}
}

func TestParsePathMode(t *testing.T) {
	for _, m := range []diagfmt.PathMode{diagfmt.PathModeAuto, diagfmt.PathModeAbsolute, diagfmt.PathModeRelative, diagfmt.PathModeBasename} {
		if got := diagfmt.ParsePathMode(m.String()); got != m {
			t.Errorf("ParsePathMode(%q) = %v", m.String(), got)
		}
	}
	if diagfmt.ParsePathMode("bogus") != diagfmt.PathModeAuto {
		t.Error("unknown mode must fall back to auto")
	}
}
