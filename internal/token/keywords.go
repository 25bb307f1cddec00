package token

// Keyword identifies an identifier with special meaning in expression position.
type Keyword uint8

const (
	// NoKeyword marks an ordinary identifier.
	NoKeyword Keyword = iota
	// KwFn introduces a function definition.
	KwFn
	// KwMacro binds a name to an unevaluated expression.
	KwMacro
	// KwMemoize binds a name to an expression evaluated at most once.
	KwMemoize
)

var keywords = map[string]Keyword{
	"fn":      KwFn,
	"macro":   KwMacro,
	"memoize": KwMemoize,
}

func (k Keyword) String() string {
	switch k {
	case KwFn:
		return "fn"
	case KwMacro:
		return "macro"
	case KwMemoize:
		return "memoize"
	default:
		return ""
	}
}

// LookupKeyword returns the keyword spelled by ident. Matching is exact
// and case-sensitive.
func LookupKeyword(ident string) (Keyword, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// FnAttr is a function-definition attribute name.
type FnAttr uint8

const (
	// NoFnAttr marks an unknown attribute.
	NoFnAttr FnAttr = iota
	// AttrLink declares an externally linked function without a body.
	AttrLink
	// AttrABIStart marks the program entry point.
	AttrABIStart
	// AttrABISyscall marks a raw syscall stub; it is followed by the operand count.
	AttrABISyscall
)

var fnAttrs = map[string]FnAttr{
	"link":       AttrLink,
	"abiStart":   AttrABIStart,
	"abiSyscall": AttrABISyscall,
}

// LookupFnAttr resolves a function attribute name.
func LookupFnAttr(ident string) (FnAttr, bool) {
	a, ok := fnAttrs[ident]
	return a, ok
}
