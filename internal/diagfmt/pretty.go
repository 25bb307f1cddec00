package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"glint/internal/diag"
	"glint/internal/source"
)

type palette struct {
	err, warn, info, note, loc, gutter, caret *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		note:   color.New(color.FgBlue, color.Bold),
		loc:    color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgGreen, color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.note, p.loc, p.gutter, p.caret} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty renders bag.Items() in order; call bag.Sort() first.
// Each diagnostic prints as:
//
//	<path>:<line>:<col>: <sev> <CODE>: <Message>
//	 <n> | <source line>
//	     |   ^~~~
//
// followed by its notes in the same form.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	pal := newPalette(opts.Color)
	items := bag.Items()
	if opts.Max > 0 && opts.Max < len(items) {
		items = items[:opts.Max]
	}
	for i := range items {
		d := &items[i]
		sevText := strings.ToLower(d.Severity.String())
		fmt.Fprintf(w, "%s %s %s\n",
			pal.loc.Sprint(location(d.Primary, fs, opts.PathMode)+":"),
			pal.severity(d.Severity).Sprintf("%s %s:", sevText, d.Code.ID()),
			d.Message)
		writeSnippet(w, d.Primary, fs, pal)

		if !opts.ShowNotes {
			continue
		}
		for _, note := range d.Notes {
			fmt.Fprintf(w, "  %s %s %s\n",
				pal.note.Sprint("note:"),
				pal.loc.Sprint(location(note.Span, fs, opts.PathMode)+":"),
				note.Msg)
			writeSnippet(w, note.Span, fs, pal)
		}
	}
}

func location(sp source.Span, fs *source.FileSet, mode PathMode) string {
	f := fs.Get(sp.File)
	start := f.Position(sp.Start)
	return fmt.Sprintf("%s:%d:%d", formatPath(f, fs, mode), start.Line, start.Col)
}

// writeSnippet prints the first line of sp with a caret underline.
// Columns are display widths, so wide runes before the span keep the caret aligned.
func writeSnippet(w io.Writer, sp source.Span, fs *source.FileSet, pal palette) {
	f := fs.Get(sp.File)
	start := f.Position(sp.Start)
	line := f.GetLine(start.Line)
	lineNo := fmt.Sprintf("%d", start.Line)
	gutter := strings.Repeat(" ", len(lineNo))

	col := int(start.Col) - 1
	if col > len(line) {
		col = len(line)
	}
	underline := 1
	if sp.End > sp.Start {
		rest := line[col:]
		n := min(int(sp.End-sp.Start), len(rest))
		if width := textWidth(rest[:n]); width > 0 {
			underline = width
		}
	}

	fmt.Fprintf(w, " %s %s %s\n", pal.gutter.Sprint(lineNo), pal.gutter.Sprint("|"), line)
	fmt.Fprintf(w, " %s %s %s%s\n", gutter, pal.gutter.Sprint("|"),
		strings.Repeat(" ", textWidth(line[:col])),
		pal.caret.Sprint("^"+strings.Repeat("~", underline-1)))
}
