package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"glint/internal/ast"
	"glint/internal/source"
)

// CheckSpanInvariants runs the structural checks every successful parse must satisfy:
// 1) file.Span lies within the file content
// 2) every node span is non-empty, in the same file and inside its parent
// 3) calls and dotted members start where their left-most operand starts
// 4) function attributes are consistent (syscall count iff raw-syscall ABI, link iff no body)
func CheckSpanInvariants(b *ast.Builder, fileID ast.FileID, sf *source.File) error {
	if b == nil || sf == nil {
		return fmt.Errorf("nil builder or file")
	}
	f := b.Files.Get(fileID)
	if f == nil {
		return fmt.Errorf("file node not found")
	}

	if f.Span.File != sf.ID {
		return fmt.Errorf("file span points to different file id: got=%d want=%d", f.Span.File, sf.ID)
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if f.Span.End > lenContent {
		return fmt.Errorf("file span end beyond content: %d > %d", f.Span.End, lenContent)
	}

	var walkErr error
	for _, top := range f.Nodes {
		if n := b.Nodes.Get(top); n == nil || !f.Span.Contains(n.Span) {
			return fmt.Errorf("top-level node %d is outside file span %v", top, f.Span)
		}
		b.Walk(top, func(id ast.NodeID, node *ast.Node) bool {
			if walkErr != nil {
				return false
			}
			walkErr = checkNode(b, id, node, sf.ID)
			return walkErr == nil
		})
		if walkErr != nil {
			return walkErr
		}
	}
	return nil
}

func checkNode(b *ast.Builder, id ast.NodeID, node *ast.Node, file source.FileID) error {
	sp := node.Span
	if sp.End <= sp.Start {
		return fmt.Errorf("%s %d has empty span %v", node.Kind, id, sp)
	}
	if sp.File != file {
		return fmt.Errorf("%s %d span file mismatch: got=%d want=%d", node.Kind, id, sp.File, file)
	}
	for _, child := range b.Nodes.Children(id) {
		cn := b.Nodes.Get(child)
		if cn == nil {
			return fmt.Errorf("%s %d has dangling child %d", node.Kind, id, child)
		}
		if !sp.Contains(cn.Span) {
			return fmt.Errorf("%s %d span %v does not contain child %s %v", node.Kind, id, sp, cn.Kind, cn.Span)
		}
	}

	switch node.Kind {
	case ast.KindCall, ast.KindMember:
		first := b.Nodes.Get(b.Nodes.Children(id)[0])
		if first.Span.Start != sp.Start {
			return fmt.Errorf("%s %d starts at %d, left-most operand at %d", node.Kind, id, sp.Start, first.Span.Start)
		}
	case ast.KindFn:
		fn, _ := b.Nodes.Fn(id)
		if !fn.Attrs.Consistent() {
			return fmt.Errorf("fn %d has inconsistent attributes %+v", id, fn.Attrs)
		}
		if fn.Attrs.Link == fn.HasBody {
			return fmt.Errorf("fn %d: link=%v but has_body=%v", id, fn.Attrs.Link, fn.HasBody)
		}
	}
	return nil
}
