package lexer

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isIdentContinueByte(b byte) bool {
	return (b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		isDec(b) ||
		b == '_'
}
