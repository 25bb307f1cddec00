package parser

// Context records where an expression is being parsed. It decides whether
// end-of-source is acceptable and whether macro/memoize may appear.
type Context uint8

const (
	CtxTopLevel Context = iota
	CtxArgument
	CtxBinding
	CtxFnAttribute
	CtxFnBody
	CtxDottedMember
)

func (c Context) String() string {
	switch c {
	case CtxTopLevel:
		return "top-level"
	case CtxArgument:
		return "argument"
	case CtxBinding:
		return "binding"
	case CtxFnAttribute:
		return "fn-attribute"
	case CtxFnBody:
		return "fn-body"
	case CtxDottedMember:
		return "dotted-member"
	default:
		return "unknown"
	}
}

// IsStatement reports whether c is a statement position (top level or a function body).
func (c Context) IsStatement() bool {
	return c == CtxTopLevel || c == CtxFnBody
}
