package ast

import (
	"glint/internal/source"
)

// File is one parsed source unit: its top-level nodes in source order.
type File struct {
	Span  source.Span
	Nodes []NodeID
}

type Files struct {
	Arena *Arena[File]
}

func NewFiles(capHint uint) *Files {
	return &Files{
		Arena: NewArena[File](capHint),
	}
}

func (f *Files) New(sp source.Span) FileID {
	return FileID(f.Arena.Allocate(File{
		Span:  sp,
		Nodes: make([]NodeID, 0),
	}))
}

func (f *Files) Get(id FileID) *File {
	return f.Arena.Get(uint32(id))
}
