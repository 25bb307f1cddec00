package ast

import (
	"testing"

	"glint/internal/source"
)

func sp(start, end uint32) source.Span { return source.Span{Start: start, End: end} }

func TestArenaOneBased(t *testing.T) {
	a := NewArena[int](0)
	if a.Get(0) != nil || a.Get(1) != nil {
		t.Fatal("empty arena must return nil")
	}
	if id := a.Allocate(7); id != 1 {
		t.Fatalf("first id = %d, want 1", id)
	}
	if *a.Get(1) != 7 || a.Len() != 1 {
		t.Fatal("unexpected arena content")
	}
}

func TestTypedAccessors(t *testing.T) {
	b := NewBuilder(Hints{}, nil)
	foo := b.Nodes.NewSymbol(sp(0, 3), b.Strings.Intern("foo"))
	one := b.Nodes.NewNumber(sp(4, 5), 1)
	hi := b.Nodes.NewString(sp(6, 10), "hi")
	call := b.Nodes.NewCall(sp(0, 11), foo, []NodeID{one, hi})

	c, ok := b.Nodes.Call(call)
	if !ok || c.Callee != foo || len(c.Args) != 2 {
		t.Fatalf("Call accessor: %+v %v", c, ok)
	}
	if _, ok := b.Nodes.Call(foo); ok {
		t.Fatal("Call accessor must reject a symbol node")
	}
	if n, ok := b.Nodes.Number(one); !ok || n.Value != 1 {
		t.Fatal("Number accessor")
	}
	if s, ok := b.Nodes.StringLit(hi); !ok || s.Value != "hi" {
		t.Fatal("StringLit accessor")
	}
	if s, ok := b.Nodes.Symbol(foo); !ok || b.Name(s.Name) != "foo" {
		t.Fatal("Symbol accessor")
	}
	if _, ok := b.Nodes.Symbol(NoNodeID); ok {
		t.Fatal("NoNodeID must not resolve")
	}

	builtin := b.Nodes.NewBuiltin(sp(0, 4), b.Strings.Intern("len"))
	if s, ok := b.Nodes.Symbol(builtin); !ok || b.Name(s.Name) != "len" {
		t.Fatal("Symbol accessor must accept builtins")
	}
}

func TestBindingKindGuard(t *testing.T) {
	b := NewBuilder(Hints{}, nil)
	v := b.Nodes.NewNumber(sp(0, 1), 1)
	id := b.Nodes.NewBinding(KindMemoize, sp(0, 1), b.Strings.Intern("x"), v)
	if bd, ok := b.Nodes.Binding(id); !ok || bd.Value != v {
		t.Fatal("Binding accessor")
	}
	defer func() {
		if recover() == nil {
			t.Fatal("NewBinding with KindCall must panic")
		}
	}()
	b.Nodes.NewBinding(KindCall, sp(0, 1), 0, v)
}

func TestFnAttrsConsistency(t *testing.T) {
	var a FnAttrs
	if !a.Consistent() {
		t.Fatal("zero attrs must be consistent")
	}
	a.SetRawSyscall(3)
	if !a.Consistent() || a.SyscallArgs != 3 {
		t.Fatalf("after syscall: %+v", a)
	}
	a.SetEntryPoint()
	if !a.Consistent() || a.HasSyscallArgs {
		t.Fatalf("entry point must drop syscall count: %+v", a)
	}
	if (FnAttrs{ABI: ABIRawSyscall}).Consistent() {
		t.Fatal("raw syscall without count must be inconsistent")
	}
}

func TestWalkPreOrder(t *testing.T) {
	b := NewBuilder(Hints{}, nil)
	foo := b.Nodes.NewSymbol(sp(0, 3), b.Strings.Intern("foo"))
	one := b.Nodes.NewNumber(sp(4, 5), 1)
	call := b.Nodes.NewCall(sp(0, 6), foo, []NodeID{one})
	member := b.Nodes.NewMember(sp(0, 10), call, b.Strings.Intern("len"))
	fn := b.Nodes.NewFn(sp(0, 12), FnData{HasBody: true, Body: []NodeID{member}})

	var order []Kind
	b.Walk(fn, func(_ NodeID, n *Node) bool {
		order = append(order, n.Kind)
		return true
	})
	want := []Kind{KindFn, KindMember, KindCall, KindSymbol, KindNumber}
	if len(order) != len(want) {
		t.Fatalf("visited %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("visited %v, want %v", order, want)
		}
	}

	count := 0
	b.Walk(fn, func(_ NodeID, n *Node) bool {
		count++
		return n.Kind != KindMember
	})
	if count != 2 {
		t.Fatalf("pruned walk visited %d nodes, want 2", count)
	}
}

func TestFilePushNode(t *testing.T) {
	b := NewBuilder(Hints{}, nil)
	file := b.NewFile(sp(0, 0))
	n := b.Nodes.NewNumber(sp(0, 1), 5)
	b.PushNode(file, n)
	if got := b.Files.Get(file).Nodes; len(got) != 1 || got[0] != n {
		t.Fatalf("file nodes = %v", got)
	}
}
