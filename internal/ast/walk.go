package ast

// Children returns the direct child nodes of id in source order.
func (n *Nodes) Children(id NodeID) []NodeID {
	node := n.Get(id)
	if node == nil {
		return nil
	}
	switch node.Kind {
	case KindCall:
		call, _ := n.Call(id)
		out := make([]NodeID, 0, len(call.Args)+1)
		out = append(out, call.Callee)
		return append(out, call.Args...)
	case KindMember:
		m, _ := n.Member(id)
		return []NodeID{m.Target}
	case KindFn:
		fn, _ := n.Fn(id)
		return fn.Body
	case KindMacro, KindMemoize:
		b, _ := n.Binding(id)
		return []NodeID{b.Value}
	case KindString, KindNumber, KindSymbol, KindBuiltin:
		return nil
	}
	return nil
}

// Walk visits id and its descendants in pre-order. Returning false from visit
// skips the node's children.
func (b *Builder) Walk(id NodeID, visit func(id NodeID, node *Node) bool) {
	node := b.Nodes.Get(id)
	if node == nil {
		return
	}
	if !visit(id, node) {
		return
	}
	for _, child := range b.Nodes.Children(id) {
		b.Walk(child, visit)
	}
}
