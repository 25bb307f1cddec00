// Package token defines lexical token kinds for the glint front end.
// Invariants:
//   - Token.Text is the exact source slice Span.Start..Span.End.
//   - Number tokens carry the parsed value in Token.Number; Text keeps the digits.
//   - String tokens carry the escape-resolved value in Token.Value; Text keeps
//     the quotes and the raw escapes.
//   - Keywords (fn, macro, memoize) and function attributes (link, abiStart,
//     abiSyscall) are plain identifiers at the lexical level. The parser
//     recognises them by exact text via LookupKeyword / LookupFnAttr.
//   - Comma is produced by the lexer but no grammar rule consumes it yet.
package token
