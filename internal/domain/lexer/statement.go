package lexer

import "errors"

var (
	// ErrUnterminated means the text ended before a top-level semicolon.
	ErrUnterminated = errors.New("statement is not terminated")
	// ErrUnbalanced means a closing delimiter was found with nothing open.
	ErrUnbalanced = errors.New("statement closes an enclosing delimiter")
)

// StatementEnd returns the index of the first semicolon at or after from that
// is not nested in parentheses, braces or brackets and is not inside a literal
// or comment. With ErrUnbalanced the returned index is the stray closer.
func StatementEnd(text string, from int) (int, error) {
	var parens, braces, brackets int

	s := NewScannerAt(text, from)

	for {
		ch, ok := s.Next()
		if !ok {
			return -1, ErrUnterminated
		}

		if !s.InCode() {
			continue
		}

		switch ch {
		case '(':
			parens++
		case ')':
			parens--
		case '{':
			braces++
		case '}':
			braces--
		case '[':
			brackets++
		case ']':
			brackets--
		case ';':
			if parens == 0 && braces == 0 && brackets == 0 {
				return s.Pos(), nil
			}
		}

		if parens < 0 || braces < 0 || brackets < 0 {
			return s.Pos(), ErrUnbalanced
		}
	}
}

// EndsInLineComment reports whether fragment finishes inside a // comment,
// in which case appending code to it would comment that code out.
func EndsInLineComment(fragment string) bool {
	s := NewScanner(fragment)
	for {
		if _, ok := s.Next(); !ok {
			break
		}
	}

	return s.State().LineComment
}
