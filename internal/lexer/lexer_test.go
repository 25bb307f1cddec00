package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"glint/internal/diag"
	"glint/internal/lexer"
	"glint/internal/source"
	"glint/internal/token"
)

// makeTestLexer создаёт лексер для тестовой строки; диагностики складываются в bag.
func makeTestLexer(input string) (*lexer.Lexer, *diag.Bag) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.gl", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(0)
	lx := lexer.New(source.NewReader(file), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	return lx, bag
}

// expectTokens проверяет последовательность токенов (без EOF)
func expectTokens(t *testing.T, input string, expected []token.Kind) []token.Token {
	t.Helper()
	lx, _ := makeTestLexer(input)
	tokens, err := lx.Tokenize()
	if err != nil {
		t.Fatalf("Tokenize(%q) failed: %v", input, err)
	}
	tokens = tokens[:len(tokens)-1]

	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d\nInput: %q\nTokens: %v",
			len(expected), len(tokens), input, tokensToString(tokens))
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("Token %d: expected %v, got %v (text: %q)", i, expected[i], tok.Kind, tok.Text)
		}
	}
	return tokens
}

// expectLexError проверяет, что лексер падает с заданным кодом и текстом.
func expectLexError(t *testing.T, input string, code diag.Code, want string) *diag.Error {
	t.Helper()
	lx, bag := makeTestLexer(input)
	_, err := lx.Tokenize()
	if err == nil {
		t.Fatalf("expected error for %q", input)
	}
	de, ok := diag.AsError(err)
	if !ok {
		t.Fatalf("expected *diag.Error, got %T", err)
	}
	if de.Diag.Code != code {
		t.Errorf("code = %v, want %v", de.Diag.Code, code)
	}
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
	if bag.Len() != 1 || bag.Items()[0].Code != code {
		t.Errorf("reporter must receive exactly the failure diagnostic, got %+v", bag.Items())
	}
	return de
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ====== классификация байтов ======

func TestByteClassification(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"{", token.LBrace},
		{"}", token.RBrace},
		{"|", token.Pipe},
		{"~", token.Tilde},
		{"(", token.LParen},
		{")", token.RParen},
		{",", token.Comma},
		{".", token.Dot},
		{"@", token.At},
		{"\x7f", token.OutOfRange},
		{"\xc3", token.OutOfRange},
		{"_", token.Invalid},
		{"[", token.Invalid},
		{"`", token.Invalid},
		{"^", token.Invalid},
		{";", token.Invalid},
		{":", token.Invalid},
		{"$", token.Invalid},
		{"\t", token.Invalid},
		{"\r", token.Invalid},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.input), func(t *testing.T) {
			toks := expectTokens(t, tt.input, []token.Kind{tt.kind})
			if toks[0].Span.Len() != 1 {
				t.Fatalf("single-byte token span = %v", toks[0].Span)
			}
		})
	}
}

func TestIdentifiers(t *testing.T) {
	toks := expectTokens(t, "foo Bar_9 x_ fn abiSyscall",
		[]token.Kind{token.Ident, token.Ident, token.Ident, token.Ident, token.Ident})
	want := []string{"foo", "Bar_9", "x_", "fn", "abiSyscall"}
	for i, tok := range toks {
		if tok.Text != want[i] {
			t.Errorf("token %d text = %q, want %q", i, tok.Text, want[i])
		}
	}
}

func TestDigitsThenIdent(t *testing.T) {
	toks := expectTokens(t, "9abc", []token.Kind{token.Number, token.Ident})
	if toks[0].Number != 9 || toks[1].Text != "abc" {
		t.Fatalf("unexpected tokens %v", tokensToString(toks))
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input string
		value uint64
	}{
		{"0", 0},
		{"007", 7},
		{"42", 42},
		{"18446744073709551615", 18446744073709551615},
	}
	for _, tt := range tests {
		toks := expectTokens(t, tt.input, []token.Kind{token.Number})
		if toks[0].Number != tt.value {
			t.Errorf("%q: value = %d, want %d", tt.input, toks[0].Number, tt.value)
		}
		if toks[0].Text != tt.input {
			t.Errorf("%q: text = %q", tt.input, toks[0].Text)
		}
	}
}

func TestNumberOverflow(t *testing.T) {
	de := expectLexError(t, "x 18446744073709551616", diag.LexNumberOverflow,
		"test.gl:1:3: number literal overflows 64-bit unsigned range")
	if de.Diag.Primary.Start != 2 || de.Diag.Primary.End != 22 {
		t.Fatalf("overflow span = %v", de.Diag.Primary)
	}
}

// ====== trivia ======

func TestTriviaAndComments(t *testing.T) {
	toks := expectTokens(t, "  a # comment ( \"x\n\nb#tail", []token.Kind{token.Ident, token.Ident})
	if toks[1].Span.Start != 20 {
		t.Fatalf("b starts at %d", toks[1].Span.Start)
	}
	expectTokens(t, "# only a comment", nil)
	expectTokens(t, "", nil)
	expectTokens(t, "\n\n   \n", nil)
}

// ====== строки ======

func TestStringLiteral(t *testing.T) {
	toks := expectTokens(t, `f("a\nb" "")`,
		[]token.Kind{token.Ident, token.LParen, token.String, token.String, token.RParen})
	if toks[2].Value != "a\nb" {
		t.Errorf("decoded value = %q", toks[2].Value)
	}
	if toks[2].Text != `"a\nb"` {
		t.Errorf("raw text = %q", toks[2].Text)
	}
	if toks[3].Value != "" || toks[3].Span.Len() != 2 {
		t.Errorf("empty string token = %+v", toks[3])
	}
}

func TestStringKeepsOtherBytesVerbatim(t *testing.T) {
	toks := expectTokens(t, "\"# {} ~ привет\"", []token.Kind{token.String})
	if toks[0].Value != "# {} ~ привет" {
		t.Fatalf("value = %q", toks[0].Value)
	}
}

func TestUnterminatedString(t *testing.T) {
	de := expectLexError(t, `"abc`, diag.LexUnterminatedString,
		"test.gl:1:1: quoted-string is missing close quote")
	if de.Diag.Primary.Start != 0 {
		t.Fatalf("must be anchored at the opening quote, got %v", de.Diag.Primary)
	}
	expectLexError(t, "x\n  \"", diag.LexUnterminatedString,
		"test.gl:2:3: quoted-string is missing close quote")
}

func TestInvalidEscape(t *testing.T) {
	de := expectLexError(t, `"a\qb"`, diag.LexInvalidEscape,
		`test.gl:1:3: invalid escape sequence "\q"`)
	if de.Diag.Primary.Start != 2 {
		t.Fatalf("must be anchored at the backslash, got %v", de.Diag.Primary)
	}
	expectLexError(t, `"\t"`, diag.LexInvalidEscape, `test.gl:1:2: invalid escape sequence "\t"`)
}

func TestUnfinishedEscape(t *testing.T) {
	expectLexError(t, `"ab\`, diag.LexUnfinishedEscape, "test.gl:1:4: unfinished escape sequence")
}

func TestStringInvalidUTF8(t *testing.T) {
	expectLexError(t, "\"a\xffb\"", diag.LexInvalidUTF8, "test.gl:1:1: string literal is not valid UTF-8")
}

// ====== EOF и свойства ======

func TestEOFIdempotent(t *testing.T) {
	input := "foo  # trailing"
	lx, _ := makeTestLexer(input)
	if tok, err := lx.Next(); err != nil || tok.Kind != token.Ident {
		t.Fatalf("first token: %v, %v", tok, err)
	}
	for range 3 {
		tok, err := lx.Next()
		if err != nil {
			t.Fatal(err)
		}
		if tok.Kind != token.EOF {
			t.Fatalf("expected EOF, got %v", tok.Kind)
		}
		if tok.Span.Start != uint32(len(input)) || tok.Span.End != uint32(len(input)) {
			t.Fatalf("EOF span = %v, want empty at %d", tok.Span, len(input))
		}
	}
}

func TestSpansRoundTrip(t *testing.T) {
	input := "fn abiSyscall 3 { @write(1 \"hi\\n\" 2).len, x|~ }"
	lx, _ := makeTestLexer(input)
	toks, err := lx.Tokenize()
	if err != nil {
		t.Fatal(err)
	}
	var prevEnd uint32
	for _, tok := range toks {
		if tok.Span.Start > tok.Span.End || tok.Span.End > uint32(len(input)) {
			t.Fatalf("span out of range: %v", tok.Span)
		}
		if tok.Span.Start < prevEnd {
			t.Fatalf("spans must not overlap: %v after %d", tok.Span, prevEnd)
		}
		prevEnd = tok.Span.End
		if got := input[tok.Span.Start:tok.Span.End]; got != tok.Text {
			t.Errorf("slice %q != text %q", got, tok.Text)
		}
	}
}
