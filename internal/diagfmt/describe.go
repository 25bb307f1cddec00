package diagfmt

import (
	"fmt"
	"strings"

	"glint/internal/ast"
)

// Describe renders id as a one-line s-expression, e.g.
// (Call fn=(SymbolReference foo) args: (Number 1) (String "hi")).
func Describe(b *ast.Builder, id ast.NodeID) string {
	var sb strings.Builder
	describe(&sb, b, id)
	return sb.String()
}

func describe(sb *strings.Builder, b *ast.Builder, id ast.NodeID) {
	node := b.Nodes.Get(id)
	if node == nil {
		sb.WriteString("(EOF)")
		return
	}
	switch node.Kind {
	case ast.KindCall:
		call, _ := b.Nodes.Call(id)
		sb.WriteString("(Call fn=")
		describe(sb, b, call.Callee)
		sb.WriteString(" args: ")
		describeList(sb, b, call.Args)
		sb.WriteByte(')')
	case ast.KindString:
		s, _ := b.Nodes.StringLit(id)
		fmt.Fprintf(sb, "(String %s)", QuoteString(s.Value))
	case ast.KindNumber:
		n, _ := b.Nodes.Number(id)
		fmt.Fprintf(sb, "(Number %d)", n.Value)
	case ast.KindSymbol:
		s, _ := b.Nodes.Symbol(id)
		fmt.Fprintf(sb, "(SymbolReference %s)", b.Name(s.Name))
	case ast.KindBuiltin:
		s, _ := b.Nodes.Symbol(id)
		fmt.Fprintf(sb, "(BuiltinSymbol @%s)", b.Name(s.Name))
	case ast.KindMember:
		m, _ := b.Nodes.Member(id)
		fmt.Fprintf(sb, "(DottedMember '%s' of ", b.Name(m.Field))
		describe(sb, b, m.Target)
		sb.WriteByte(')')
	case ast.KindFn:
		fn, _ := b.Nodes.Fn(id)
		sb.WriteString("(FunctionNode ")
		if !fn.HasBody {
			sb.WriteString("link)")
			return
		}
		sb.WriteString("abi=")
		sb.WriteString(formatABI(fn.Attrs))
		sb.WriteString(" body: ")
		describeList(sb, b, fn.Body)
		sb.WriteByte(')')
	case ast.KindMacro, ast.KindMemoize:
		bd, _ := b.Nodes.Binding(id)
		fmt.Fprintf(sb, "(%s %s ", node.Kind, b.Name(bd.Name))
		describe(sb, b, bd.Value)
		sb.WriteByte(')')
	default:
		fmt.Fprintf(sb, "(Invalid %d)", node.Kind)
	}
}

func describeList(sb *strings.Builder, b *ast.Builder, ids []ast.NodeID) {
	for i, id := range ids {
		if i > 0 {
			sb.WriteByte(' ')
		}
		describe(sb, b, id)
	}
}

// formatABI: none, start, syscall(3).
func formatABI(attrs ast.FnAttrs) string {
	if attrs.ABI == ast.ABIRawSyscall && attrs.HasSyscallArgs {
		return fmt.Sprintf("%s(%d)", attrs.ABI, attrs.SyscallArgs)
	}
	return attrs.ABI.String()
}

// QuoteString re-encodes a decoded string literal in source form.
// Newline is the only byte that needs an escape.
func QuoteString(v string) string {
	return `"` + strings.ReplaceAll(v, "\n", `\n`) + `"`
}
