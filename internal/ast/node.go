package ast

import (
	"glint/internal/source"
)

// Kind is the closed set of node variants. Consumers switch over it exhaustively.
type Kind uint8

const (
	KindCall Kind = iota + 1
	KindString
	KindNumber
	KindSymbol
	KindBuiltin
	KindMember
	KindFn
	KindMacro
	KindMemoize
)

func (k Kind) String() string {
	switch k {
	case KindCall:
		return "Call"
	case KindString:
		return "String"
	case KindNumber:
		return "Number"
	case KindSymbol:
		return "SymbolReference"
	case KindBuiltin:
		return "BuiltinSymbol"
	case KindMember:
		return "DottedMember"
	case KindFn:
		return "FunctionNode"
	case KindMacro:
		return "Macro"
	case KindMemoize:
		return "Memoize"
	default:
		return "Invalid"
	}
}

// IsBinding reports whether k may only appear in statement position.
func (k Kind) IsBinding() bool {
	return k == KindMacro || k == KindMemoize
}

// Node is the common header; Payload indexes the per-kind arena.
// Span starts at the left-most token of the construct.
type Node struct {
	Kind    Kind
	Span    source.Span
	Payload PayloadID
}

type CallData struct {
	Callee NodeID
	Args   []NodeID
}

type StringData struct {
	Value string
}

type NumberData struct {
	Value uint64
}

// SymbolData is shared by KindSymbol and KindBuiltin; the '@' is not part of Name.
type SymbolData struct {
	Name source.StringID
}

type MemberData struct {
	Target NodeID
	Field  source.StringID
}

// BindingData is shared by KindMacro and KindMemoize.
type BindingData struct {
	Name  source.StringID
	Value NodeID
}
