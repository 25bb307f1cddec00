package fuzztests

import (
	"testing"

	"glint/internal/diag"
	"glint/internal/lexer"
	"glint/internal/source"
	"glint/internal/token"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.gl", input))

		bag := diag.NewBag(64)
		lx := lexer.New(source.NewReader(file), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
		var prevEnd uint32
		for {
			tok, err := lx.Next()
			if err != nil {
				if _, ok := diag.AsError(err); !ok {
					t.Fatalf("lexer error is not *diag.Error: %T", err)
				}
				if bag.Len() != 1 {
					t.Fatalf("failure must be reported exactly once, got %d", bag.Len())
				}
				return
			}
			// токены идут по возрастанию и не перекрываются
			if tok.Span.Start < prevEnd || tok.Span.End < tok.Span.Start {
				t.Fatalf("bad span %v after end %d", tok.Span, prevEnd)
			}
			prevEnd = tok.Span.End
			if tok.Kind == token.EOF {
				// повторный вызов после EOF снова даёт EOF
				again, err := lx.Next()
				if err != nil || again.Kind != token.EOF {
					t.Fatalf("EOF is not idempotent: %v %v", again.Kind, err)
				}
				return
			}
		}
	})
}
