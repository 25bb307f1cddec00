package diagfmt

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"glint/internal/ast"
	"glint/internal/source"
)

type treeNode struct {
	label    string
	children []*treeNode
}

type treeBlock struct {
	lines []string
	width int
	root  int
}

// buildFileTreeNode constructs the root labelled with the file path and span,
// with one child per top-level node.
func buildFileTreeNode(builder *ast.Builder, fileID ast.FileID, fs *source.FileSet) *treeNode {
	file := builder.Files.Get(fileID)
	header := "File"
	if fs != nil {
		header = fs.Get(file.Span.File).FormatPath("auto", fs.BaseDir())
	}
	root := &treeNode{label: header}
	for _, id := range file.Nodes {
		root.children = append(root.children, buildNodeTreeNode(builder, id))
	}
	return root
}

// buildNodeTreeNode labels leaves with their value and inner nodes with their kind.
func buildNodeTreeNode(builder *ast.Builder, id ast.NodeID) *treeNode {
	node := builder.Nodes.Get(id)
	if node == nil {
		return &treeNode{label: "<nil>"}
	}
	leaf := func(label string) *treeNode { return &treeNode{label: label} }
	sub := func(label string, ids ...ast.NodeID) *treeNode {
		tn := &treeNode{label: label}
		for _, c := range ids {
			tn.children = append(tn.children, buildNodeTreeNode(builder, c))
		}
		return tn
	}

	switch node.Kind {
	case ast.KindCall:
		call, _ := builder.Nodes.Call(id)
		return sub("Call", append([]ast.NodeID{call.Callee}, call.Args...)...)
	case ast.KindString:
		s, _ := builder.Nodes.StringLit(id)
		return leaf(QuoteString(s.Value))
	case ast.KindNumber:
		n, _ := builder.Nodes.Number(id)
		return leaf(fmt.Sprintf("%d", n.Value))
	case ast.KindSymbol:
		s, _ := builder.Nodes.Symbol(id)
		return leaf(builder.Name(s.Name))
	case ast.KindBuiltin:
		s, _ := builder.Nodes.Symbol(id)
		return leaf("@" + builder.Name(s.Name))
	case ast.KindMember:
		m, _ := builder.Nodes.Member(id)
		return sub("."+builder.Name(m.Field), m.Target)
	case ast.KindFn:
		fn, _ := builder.Nodes.Fn(id)
		if !fn.HasBody {
			return leaf("fn link")
		}
		return sub("fn "+formatABI(fn.Attrs), fn.Body...)
	case ast.KindMacro, ast.KindMemoize:
		bd, _ := builder.Nodes.Binding(id)
		return sub(fmt.Sprintf("%s %s", strings.ToLower(node.Kind.String()), builder.Name(bd.Name)), bd.Value)
	}
	return leaf(node.Kind.String())
}

func textWidth(s string) int {
	return runewidth.StringWidth(s)
}

// padRight pads s with spaces up to display width w.
func padRight(s string, w int) string {
	if d := w - textWidth(s); d > 0 {
		return s + strings.Repeat(" ", d)
	}
	return s
}

func trimRight(s string) string {
	return strings.TrimRight(s, " ")
}

// renderTree converts a treeNode into a treeBlock containing an ASCII-art representation.
// Children are laid out side by side under the parent; root is the column of the
// node's connector within the block. Widths are display widths, so labels with
// wide runes stay aligned.
func renderTree(node *treeNode) treeBlock {
	label := node.label
	labelWidth := textWidth(label)

	if len(node.children) == 0 {
		return treeBlock{
			lines: []string{label},
			width: labelWidth,
			root:  labelWidth / 2,
		}
	}

	const spacing = 3

	childBlocks := make([]treeBlock, len(node.children))
	positions := make([]int, len(node.children))
	maxChildHeight := 0
	totalWidth := 0
	for i, child := range node.children {
		childBlocks[i] = renderTree(child)
		if h := len(childBlocks[i].lines); h > maxChildHeight {
			maxChildHeight = h
		}
		positions[i] = totalWidth + childBlocks[i].root
		totalWidth += childBlocks[i].width
		if i != len(node.children)-1 {
			totalWidth += spacing
		}
	}

	childrenCenter := (positions[0] + positions[len(positions)-1]) / 2
	shift := childrenCenter - labelWidth/2

	// дети уже корня: сдвигаем их вправо
	childPrefix := 0
	if shift < 0 {
		childPrefix = -shift
		for i := range positions {
			positions[i] += childPrefix
		}
		totalWidth += childPrefix
		shift = 0
	}
	rootPos := shift + labelWidth/2

	width := max(totalWidth, shift+labelWidth, rootPos+1)
	rootLine := padRight(strings.Repeat(" ", shift)+label, width)

	connector := []byte(strings.Repeat(" ", width))
	connector[rootPos] = '|'
	for _, pos := range positions {
		switch {
		case pos < rootPos:
			connector[pos] = '/'
		case pos > rootPos:
			connector[pos] = '\\'
		default:
			connector[pos] = '|'
		}
	}

	lines := make([]string, 0, 2+maxChildHeight)
	lines = append(lines, rootLine, string(connector))
	for row := range maxChildHeight {
		var sb strings.Builder
		sb.WriteString(strings.Repeat(" ", childPrefix))
		for i, block := range childBlocks {
			line := ""
			if row < len(block.lines) {
				line = block.lines[row]
			}
			sb.WriteString(padRight(line, block.width))
			if i != len(childBlocks)-1 {
				sb.WriteString(strings.Repeat(" ", spacing))
			}
		}
		lines = append(lines, padRight(sb.String(), width))
	}

	return treeBlock{
		lines: lines,
		width: width,
		root:  rootPos,
	}
}
