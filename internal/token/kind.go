package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Ident represents an identifier token.
	Ident Kind = iota
	// Number represents an unsigned decimal integer literal.
	Number
	// LParen represents the '(' token.
	LParen // (
	// RParen represents the ')' token.
	RParen // )
	// LBrace represents the '{' token.
	LBrace // {
	// RBrace represents the '}' token.
	RBrace // }
	// Pipe represents the '|' token.
	Pipe // |
	// Tilde represents the '~' token.
	Tilde // ~
	// EOF marks the end of the source input.
	EOF
	// OutOfRange is a byte above 'z' that is not one of the known punctuators.
	OutOfRange
	// Invalid is any other unrecognised byte.
	Invalid
	// At represents the '@' token.
	At // @
	// Comma represents the ',' token.
	Comma // ,
	// String represents a double-quoted string literal.
	String
	// Dot represents the '.' token.
	Dot // .
)

var kindNames = [...]string{
	Ident:      "ID",
	Number:     "NUMBER",
	LParen:     "LEFT_PAREN",
	RParen:     "RIGHT_PAREN",
	LBrace:     "LEFT_CURLY",
	RBrace:     "RIGHT_CURLY",
	Pipe:       "PIPE",
	Tilde:      "TILDA",
	EOF:        "EOF",
	OutOfRange: "CHAR_OUT_OF_RANGE",
	Invalid:    "INVALID_CHAR",
	At:         "AT",
	Comma:      "COMMA",
	String:     "STRING",
	Dot:        "DOT",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "UNKNOWN"
}

// IsEOF reports whether k marks the end of input.
func (k Kind) IsEOF() bool { return k == EOF }

// IsPunct reports whether k is a single-byte punctuation token.
func (k Kind) IsPunct() bool {
	switch k {
	case LParen, RParen, LBrace, RBrace, Pipe, Tilde, At, Comma, Dot:
		return true
	default:
		return false
	}
}

// IsLiteral reports whether k carries a decoded payload.
func (k Kind) IsLiteral() bool {
	return k == Number || k == String
}
