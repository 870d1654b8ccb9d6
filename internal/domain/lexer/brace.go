package lexer

// closers maps each opening delimiter to its closing counterpart.
var closers = map[byte]byte{
	'(': ')',
	'{': '}',
	'[': ']',
}

// FindMatchingClose returns the index of the delimiter closing the one at
// openIndex. Only the same delimiter pair affects depth; bytes inside
// literals and comments are ignored. It reports false when openIndex is not
// an opening delimiter or the text ends before depth returns to zero.
func FindMatchingClose(text string, openIndex int) (int, bool) {
	if openIndex < 0 || openIndex >= len(text) {
		return -1, false
	}

	open := text[openIndex]

	closer, ok := closers[open]
	if !ok {
		return -1, false
	}

	depth := 1
	s := NewScannerAt(text, openIndex+1)

	for {
		ch, ok := s.Next()
		if !ok {
			return -1, false
		}

		if !s.InCode() {
			continue
		}

		switch ch {
		case open:
			depth++
		case closer:
			depth--
			if depth == 0 {
				return s.Pos(), true
			}
		}
	}
}

// IsBalanced reports whether the parentheses of fragment are balanced outside
// of literals and comments. A stray closer makes it false immediately.
func IsBalanced(fragment string) bool {
	depth := 0
	s := NewScanner(fragment)

	for {
		ch, ok := s.Next()
		if !ok {
			break
		}

		if !s.InCode() {
			continue
		}

		switch ch {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return false
			}
		}
	}

	return depth == 0 && !s.State().InLiteral()
}
