// Package lexer provides literal- and comment-aware scanning of C# source
// text: a byte scanner, delimiter matching, statement boundaries and the
// lambda scope heuristic used by the rewrite passes.
package lexer

// State is the scanner's literal/comment tracking state.
// At most one of InString and InChar is true at a time.
type State struct {
	InString     bool
	InChar       bool
	Verbatim     bool
	EscapeNext   bool
	LineComment  bool
	BlockComment bool
}

// InLiteral reports whether the scanner is inside a string or char literal.
func (s State) InLiteral() bool {
	return s.InString || s.InChar
}

// Scanner iterates byte-by-byte over source text. After each call to Next,
// InCode reports whether the byte just returned is ordinary code, i.e. not
// part of a string/char literal (delimiters included) or a comment.
type Scanner struct {
	src          string
	pos          int
	code         bool
	commentStart int
	state        State
}

// NewScanner creates a Scanner positioned before the first byte of src.
func NewScanner(src string) *Scanner {
	return NewScannerAt(src, 0)
}

// NewScannerAt creates a Scanner whose first Next call returns src[start].
// The caller asserts that start is in code.
func NewScannerAt(src string, start int) *Scanner {
	if start < 0 {
		start = 0
	}

	return &Scanner{src: src, pos: start - 1}
}

// Pos returns the offset of the byte last returned by Next.
func (s *Scanner) Pos() int {
	return s.pos
}

// State returns a copy of the current literal/comment state.
func (s *Scanner) State() State {
	return s.state
}

// InCode reports whether the byte last returned by Next is code.
func (s *Scanner) InCode() bool {
	return s.code
}

// Next advances to the next byte. It returns false at end of input.
func (s *Scanner) Next() (byte, bool) {
	s.pos++
	if s.pos >= len(s.src) {
		s.pos = len(s.src)
		s.code = false

		return 0, false
	}

	ch := s.src[s.pos]
	st := &s.state
	s.code = false

	switch {
	case st.LineComment:
		if ch == '\n' {
			st.LineComment = false
			s.code = true
		}
	case st.BlockComment:
		if ch == '/' && s.pos-1 > s.commentStart+1 && s.src[s.pos-1] == '*' {
			st.BlockComment = false
		}
	case st.EscapeNext:
		st.EscapeNext = false
	case st.InString:
		s.stepString(ch)
	case st.InChar:
		switch ch {
		case '\\':
			st.EscapeNext = true
		case '\'', '\n':
			st.InChar = false
		}
	default:
		s.stepCode(ch)
	}

	return ch, true
}

func (s *Scanner) stepString(ch byte) {
	st := &s.state

	if st.Verbatim {
		if ch != '"' {
			return
		}

		if s.peek() == '"' {
			// "" inside a verbatim string is an escaped quote.
			st.EscapeNext = true

			return
		}

		st.InString = false
		st.Verbatim = false

		return
	}

	switch ch {
	case '\\':
		st.EscapeNext = true
	case '"', '\n':
		st.InString = false
	}
}

func (s *Scanner) stepCode(ch byte) {
	st := &s.state

	switch ch {
	case '"':
		st.InString = true
		st.Verbatim = verbatimPrefix(s.src, s.pos)
	case '\'':
		st.InChar = true
	case '/':
		switch s.peek() {
		case '/':
			st.LineComment = true
		case '*':
			st.BlockComment = true
			s.commentStart = s.pos
		default:
			s.code = true
		}
	default:
		s.code = true
	}
}

func (s *Scanner) peek() byte {
	if s.pos+1 < len(s.src) {
		return s.src[s.pos+1]
	}

	return 0
}

// verbatimPrefix reports whether the quote at pos opens an @"..." or $@"..."
// literal.
func verbatimPrefix(src string, pos int) bool {
	for i := pos - 1; i >= 0 && i >= pos-2; i-- {
		switch src[i] {
		case '@':
			return true
		case '$':
			continue
		default:
			return false
		}
	}

	return false
}

// prefixLen returns how many of the bytes before a quote at pos are @/$
// literal prefix characters.
func prefixLen(src string, pos int) int {
	n := 0
	for i := pos - 1; i >= 0 && n < 2; i-- {
		if src[i] != '@' && src[i] != '$' {
			break
		}

		n++
	}

	return n
}

// CodeMask returns, for every byte of src, whether it is code.
func CodeMask(src string) []bool {
	mask := make([]bool, len(src))
	s := NewScanner(src)

	for {
		if _, ok := s.Next(); !ok {
			break
		}

		mask[s.Pos()] = s.InCode()
	}

	return mask
}
