// Package fuzztests houses Go fuzz harnesses that exercise the glint front
// end (source -> lexer -> parser). Its goal is to smoke test robustness and
// guard against panics, hangs or broken span invariants on arbitrary inputs.
//
// The fuzz targets load bytes into a FileSet and run them through the
// lexer and parser.
//
// Corpus generation and CLI runs are out of its scope.
package fuzztests
