package ast

type (
	FileID    uint32
	NodeID    uint32
	PayloadID uint32
)

const (
	NoFileID FileID = 0
	// NoNodeID doubles as the end-of-input sentinel returned by top-level parsing.
	NoNodeID    NodeID    = 0
	NoPayloadID PayloadID = 0
)

func (id NodeID) IsValid() bool { return id != NoNodeID }
