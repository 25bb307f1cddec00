package source

import (
	"fmt"
	"path/filepath"

	"fortio.org/safecast"
)

// Position converts a byte offset into a 1-based line/column pair.
// Columns count bytes.
func (f *File) Position(off uint32) LineCol {
	return toLineCol(f.LineIdx, off)
}

// Len returns the content length in bytes.
func (f *File) Len() uint32 {
	n, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}
	return n
}

// lineRange returns the byte range of 1-based line n without its newline.
func (f *File) lineRange(n uint32) (start, end uint32, ok bool) {
	if n == 0 || int(n) > len(f.LineIdx)+1 {
		return 0, 0, false
	}
	if n > 1 {
		start = f.LineIdx[n-2] + 1
	}
	end = f.Len()
	if int(n) <= len(f.LineIdx) {
		end = f.LineIdx[n-1]
	}
	return start, end, true
}

// GetLine returns the text of 1-based line n, or "" when there is no such line.
func (f *File) GetLine(n uint32) string {
	start, end, ok := f.lineRange(n)
	if !ok {
		return ""
	}
	return string(f.Content[start:end])
}

// FormatPath renders Path for display. mode is one of absolute, relative,
// basename or auto; auto keeps short and relative paths and shortens long
// absolute ones to their base name.
func (f *File) FormatPath(mode, baseDir string) string {
	switch mode {
	case "absolute":
		if abs, err := AbsolutePath(f.Path); err == nil {
			return abs
		}
	case "relative":
		if baseDir == "" {
			baseDir = "."
		}
		if rel, err := RelativePath(f.Path, baseDir); err == nil {
			return rel
		}
	case "basename":
		return BaseName(f.Path)
	case "auto":
		if filepath.IsAbs(f.Path) && len(f.Path) >= 40 {
			return BaseName(f.Path)
		}
	}
	return f.Path
}
