package token_test

import (
	"testing"

	"glint/internal/token"
)

func TestKindString(t *testing.T) {
	tests := map[token.Kind]string{
		token.Ident:      "ID",
		token.Number:     "NUMBER",
		token.String:     "STRING",
		token.EOF:        "EOF",
		token.OutOfRange: "CHAR_OUT_OF_RANGE",
		token.Invalid:    "INVALID_CHAR",
		token.Kind(200):  "UNKNOWN",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", k, got, want)
		}
	}
}

func TestIsPunct(t *testing.T) {
	punct := []token.Kind{
		token.LParen, token.RParen, token.LBrace, token.RBrace,
		token.Pipe, token.Tilde, token.At, token.Comma, token.Dot,
	}
	for _, k := range punct {
		if !k.IsPunct() {
			t.Fatalf("%v should be punct", k)
		}
	}
	for _, k := range []token.Kind{token.Ident, token.Number, token.String, token.EOF, token.Invalid} {
		if k.IsPunct() {
			t.Fatalf("%v must NOT be punct", k)
		}
	}
}

func TestIsIdent(t *testing.T) {
	if !(token.Token{Kind: token.Ident, Text: "fn"}).IsIdent() {
		t.Fatal("keyword text is still an identifier")
	}
	for _, k := range []token.Kind{token.Number, token.String, token.EOF, token.Dot} {
		if (token.Token{Kind: k}).IsIdent() {
			t.Fatalf("%v must NOT be ident", k)
		}
	}
}

func TestDesc(t *testing.T) {
	tests := []struct {
		tok  token.Token
		want string
	}{
		{token.Token{Kind: token.EOF}, "EOF"},
		{token.Token{Kind: token.Ident, Text: "foo"}, "ID(foo)"},
		{token.Token{Kind: token.Number, Text: "42", Number: 42}, "NUMBER 42"},
		{token.Token{Kind: token.String, Text: `"hi"`, Value: "hi"}, `STRING "hi"`},
		{token.Token{Kind: token.Invalid, Text: ";"}, "INVALID_CHAR(;)"},
		{token.Token{Kind: token.LBrace, Text: "{"}, "LEFT_CURLY '{'"},
		{token.Token{Kind: token.RParen, Text: ")"}, "RIGHT_PAREN ')'"},
	}
	for _, tt := range tests {
		if got := tt.tok.Desc(); got != tt.want {
			t.Errorf("Desc() = %q, want %q", got, tt.want)
		}
	}
}

func TestLookupKeyword(t *testing.T) {
	for text, want := range map[string]token.Keyword{
		"fn": token.KwFn, "macro": token.KwMacro, "memoize": token.KwMemoize,
	} {
		got, ok := token.LookupKeyword(text)
		if !ok || got != want {
			t.Errorf("LookupKeyword(%q) = %v, %v", text, got, ok)
		}
		if got.String() != text {
			t.Errorf("%v.String() = %q", got, got.String())
		}
	}
	for _, text := range []string{"Fn", "macros", "link", ""} {
		if _, ok := token.LookupKeyword(text); ok {
			t.Errorf("%q must not be a keyword", text)
		}
	}
}

func TestLookupFnAttr(t *testing.T) {
	if a, ok := token.LookupFnAttr("abiSyscall"); !ok || a != token.AttrABISyscall {
		t.Fatalf("abiSyscall -> %v, %v", a, ok)
	}
	if _, ok := token.LookupFnAttr("abistart"); ok {
		t.Fatal("attribute lookup must be case-sensitive")
	}
}
