package lexer

// skipTrivia пропускает пробелы, переводы строк и комментарии '#' до конца строки.
// Сам '\n' после комментария не съедается здесь, а уходит в следующую итерацию.
// Возвращает true, если впереди есть значимый байт.
func (lx *Lexer) skipTrivia() bool {
	for !lx.r.AtEnd() {
		switch lx.r.Peek() {
		case ' ', '\n':
			lx.r.Pop()
		case '#':
			for !lx.r.AtEnd() && lx.r.Peek() != '\n' {
				lx.r.Pop()
			}
		default:
			return true
		}
	}
	return false
}
