package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"glint/internal/ast"
	"glint/internal/source"
)

type ASTNodeOutput struct {
	Type     string          `json:"type"`
	Span     source.Span     `json:"span"`
	Fields   map[string]any  `json:"fields,omitempty"`
	Children []ASTNodeOutput `json:"children,omitempty"`
}

// FormatASTPretty prints one Describe line per top-level node.
func FormatASTPretty(w io.Writer, builder *ast.Builder, fileID ast.FileID, fs *source.FileSet) error {
	file := builder.Files.Get(fileID)
	if file == nil {
		return fmt.Errorf("file not found")
	}

	header := "File"
	if fs != nil {
		header = fs.Get(file.Span.File).FormatPath("auto", fs.BaseDir())
	}
	fmt.Fprintf(w, "%s (span: %s)\n", header, formatSpan(file.Span, fs))

	for i, id := range file.Nodes {
		branch := "├─"
		if i == len(file.Nodes)-1 {
			branch = "└─"
		}
		fmt.Fprintf(w, "%s [%d] %s\n", branch, i, Describe(builder, id))
	}
	return nil
}

// FormatASTJSON writes the file as nested node objects.
func FormatASTJSON(w io.Writer, builder *ast.Builder, fileID ast.FileID) error {
	file := builder.Files.Get(fileID)
	if file == nil {
		return fmt.Errorf("file not found")
	}

	children := make([]ASTNodeOutput, 0, len(file.Nodes))
	for _, id := range file.Nodes {
		children = append(children, BuildASTNodeOutput(builder, id))
	}

	output := ASTNodeOutput{
		Type:     "File",
		Span:     file.Span,
		Children: children,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// BuildASTNodeOutput converts a node subtree into its JSON shape.
func BuildASTNodeOutput(builder *ast.Builder, id ast.NodeID) ASTNodeOutput {
	node := builder.Nodes.Get(id)
	if node == nil {
		return ASTNodeOutput{Type: "EOF"}
	}
	out := ASTNodeOutput{
		Type: node.Kind.String(),
		Span: node.Span,
	}
	children := func(ids []ast.NodeID) []ASTNodeOutput {
		res := make([]ASTNodeOutput, 0, len(ids))
		for _, c := range ids {
			res = append(res, BuildASTNodeOutput(builder, c))
		}
		return res
	}

	switch node.Kind {
	case ast.KindCall:
		call, _ := builder.Nodes.Call(id)
		out.Fields = map[string]any{"args": len(call.Args)}
		out.Children = children(append([]ast.NodeID{call.Callee}, call.Args...))
	case ast.KindString:
		s, _ := builder.Nodes.StringLit(id)
		out.Fields = map[string]any{"value": s.Value}
	case ast.KindNumber:
		n, _ := builder.Nodes.Number(id)
		out.Fields = map[string]any{"value": n.Value}
	case ast.KindSymbol, ast.KindBuiltin:
		s, _ := builder.Nodes.Symbol(id)
		out.Fields = map[string]any{"name": builder.Name(s.Name)}
	case ast.KindMember:
		m, _ := builder.Nodes.Member(id)
		out.Fields = map[string]any{"member": builder.Name(m.Field)}
		out.Children = children([]ast.NodeID{m.Target})
	case ast.KindFn:
		fn, _ := builder.Nodes.Fn(id)
		fields := map[string]any{
			"link":     fn.Attrs.Link,
			"abi":      fn.Attrs.ABI.String(),
			"has_body": fn.HasBody,
		}
		if fn.Attrs.HasSyscallArgs {
			fields["syscall_args"] = fn.Attrs.SyscallArgs
		}
		out.Fields = fields
		out.Children = children(fn.Body)
	case ast.KindMacro, ast.KindMemoize:
		bd, _ := builder.Nodes.Binding(id)
		out.Fields = map[string]any{"name": builder.Name(bd.Name)}
		out.Children = children([]ast.NodeID{bd.Value})
	}
	return out
}

// FormatASTTree draws the file as a top-down ASCII tree.
func FormatASTTree(w io.Writer, builder *ast.Builder, fileID ast.FileID, fs *source.FileSet) error {
	if builder.Files.Get(fileID) == nil {
		return fmt.Errorf("file not found")
	}
	block := renderTree(buildFileTreeNode(builder, fileID, fs))
	for _, line := range block.lines {
		if _, err := fmt.Fprintln(w, trimRight(line)); err != nil {
			return err
		}
	}
	return nil
}
