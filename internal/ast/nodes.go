package ast

import (
	"glint/internal/source"
)

// Nodes manages allocation of nodes and their per-kind payloads.
type Nodes struct {
	Arena    *Arena[Node]
	Calls    *Arena[CallData]
	Strings  *Arena[StringData]
	Numbers  *Arena[NumberData]
	Symbols  *Arena[SymbolData]
	Members  *Arena[MemberData]
	Fns      *Arena[FnData]
	Bindings *Arena[BindingData]
}

// NewNodes creates node arenas preallocated with capHint (default 1<<8).
func NewNodes(capHint uint) *Nodes {
	if capHint == 0 {
		capHint = 1 << 8
	}
	small := capHint/4 + 1
	return &Nodes{
		Arena:    NewArena[Node](capHint),
		Calls:    NewArena[CallData](small),
		Strings:  NewArena[StringData](small),
		Numbers:  NewArena[NumberData](small),
		Symbols:  NewArena[SymbolData](capHint),
		Members:  NewArena[MemberData](small),
		Fns:      NewArena[FnData](small),
		Bindings: NewArena[BindingData](small),
	}
}

func (n *Nodes) new(kind Kind, span source.Span, payload uint32) NodeID {
	return NodeID(n.Arena.Allocate(Node{
		Kind:    kind,
		Span:    span,
		Payload: PayloadID(payload),
	}))
}

// Get returns the node with the given ID, or nil for NoNodeID.
func (n *Nodes) Get(id NodeID) *Node {
	return n.Arena.Get(uint32(id))
}

// Len returns the number of allocated nodes.
func (n *Nodes) Len() uint32 {
	return n.Arena.Len()
}

func (n *Nodes) payload(id NodeID, kinds ...Kind) (PayloadID, bool) {
	node := n.Get(id)
	if node == nil {
		return NoPayloadID, false
	}
	for _, k := range kinds {
		if node.Kind == k {
			return node.Payload, true
		}
	}
	return NoPayloadID, false
}

func (n *Nodes) NewCall(span source.Span, callee NodeID, args []NodeID) NodeID {
	return n.new(KindCall, span, n.Calls.Allocate(CallData{Callee: callee, Args: args}))
}

func (n *Nodes) Call(id NodeID) (*CallData, bool) {
	p, ok := n.payload(id, KindCall)
	if !ok {
		return nil, false
	}
	return n.Calls.Get(uint32(p)), true
}

func (n *Nodes) NewString(span source.Span, value string) NodeID {
	return n.new(KindString, span, n.Strings.Allocate(StringData{Value: value}))
}

func (n *Nodes) StringLit(id NodeID) (*StringData, bool) {
	p, ok := n.payload(id, KindString)
	if !ok {
		return nil, false
	}
	return n.Strings.Get(uint32(p)), true
}

func (n *Nodes) NewNumber(span source.Span, value uint64) NodeID {
	return n.new(KindNumber, span, n.Numbers.Allocate(NumberData{Value: value}))
}

func (n *Nodes) Number(id NodeID) (*NumberData, bool) {
	p, ok := n.payload(id, KindNumber)
	if !ok {
		return nil, false
	}
	return n.Numbers.Get(uint32(p)), true
}

func (n *Nodes) NewSymbol(span source.Span, name source.StringID) NodeID {
	return n.new(KindSymbol, span, n.Symbols.Allocate(SymbolData{Name: name}))
}

func (n *Nodes) NewBuiltin(span source.Span, name source.StringID) NodeID {
	return n.new(KindBuiltin, span, n.Symbols.Allocate(SymbolData{Name: name}))
}

// Symbol returns the name of a SymbolReference or BuiltinSymbol node.
func (n *Nodes) Symbol(id NodeID) (*SymbolData, bool) {
	p, ok := n.payload(id, KindSymbol, KindBuiltin)
	if !ok {
		return nil, false
	}
	return n.Symbols.Get(uint32(p)), true
}

func (n *Nodes) NewMember(span source.Span, target NodeID, field source.StringID) NodeID {
	return n.new(KindMember, span, n.Members.Allocate(MemberData{Target: target, Field: field}))
}

func (n *Nodes) Member(id NodeID) (*MemberData, bool) {
	p, ok := n.payload(id, KindMember)
	if !ok {
		return nil, false
	}
	return n.Members.Get(uint32(p)), true
}

func (n *Nodes) NewFn(span source.Span, data FnData) NodeID {
	return n.new(KindFn, span, n.Fns.Allocate(data))
}

func (n *Nodes) Fn(id NodeID) (*FnData, bool) {
	p, ok := n.payload(id, KindFn)
	if !ok {
		return nil, false
	}
	return n.Fns.Get(uint32(p)), true
}

// NewBinding creates a KindMacro or KindMemoize node.
func (n *Nodes) NewBinding(kind Kind, span source.Span, name source.StringID, value NodeID) NodeID {
	if !kind.IsBinding() {
		panic("ast: NewBinding with non-binding kind " + kind.String())
	}
	return n.new(kind, span, n.Bindings.Allocate(BindingData{Name: name, Value: value}))
}

func (n *Nodes) Binding(id NodeID) (*BindingData, bool) {
	p, ok := n.payload(id, KindMacro, KindMemoize)
	if !ok {
		return nil, false
	}
	return n.Bindings.Get(uint32(p)), true
}
