package ast

import (
	"glint/internal/source"
)

type Hints struct{ Files, Nodes uint }

// Builder owns every arena of one parse session plus the identifier interner.
type Builder struct {
	Files   *Files
	Nodes   *Nodes
	Strings *source.Interner
}

func NewBuilder(hints Hints, strings *source.Interner) *Builder {
	if hints.Files == 0 {
		hints.Files = 1 << 3
	}
	if hints.Nodes == 0 {
		hints.Nodes = 1 << 8
	}
	if strings == nil {
		strings = source.NewInterner()
	}
	return &Builder{
		Files:   NewFiles(hints.Files),
		Nodes:   NewNodes(hints.Nodes),
		Strings: strings,
	}
}

func (b *Builder) NewFile(sp source.Span) FileID {
	return b.Files.New(sp)
}

func (b *Builder) PushNode(file FileID, node NodeID) {
	f := b.Files.Get(file)
	f.Nodes = append(f.Nodes, node)
}

// Name resolves an interned identifier.
func (b *Builder) Name(id source.StringID) string {
	s, _ := b.Strings.Lookup(id)
	return s
}
