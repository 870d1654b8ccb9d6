package lexer

import (
	m "github.com/mouse-blink/textmig/internal/model"
)

// Literal is a string or char literal token. Start includes any @/$ prefix;
// End is exclusive and includes the closing quote when Terminated.
type Literal struct {
	Kind       m.LiteralKind
	Start      int
	End        int
	Quote      int
	Verbatim   bool
	Terminated bool
}

// Body returns the literal's contents between the quotes, undecoded.
func (l Literal) Body(src string) string {
	end := l.End
	if l.Terminated {
		end--
	}

	if l.Quote+1 > end {
		return ""
	}

	return src[l.Quote+1 : end]
}

// Token returns the full literal text including prefix and quotes.
func (l Literal) Token(src string) string {
	return src[l.Start:l.End]
}

// Literals returns every string and char literal in src, in order.
// Literals inside comments are not reported.
func Literals(src string) []Literal {
	var (
		literals []Literal
		current  Literal
	)

	s := NewScanner(src)

	for {
		before := s.State()

		ch, ok := s.Next()
		if !ok {
			break
		}

		after := s.State()

		if !before.InLiteral() && after.InLiteral() {
			current = Literal{Quote: s.Pos(), Verbatim: after.Verbatim}
			current.Kind = m.LiteralString

			if after.InChar {
				current.Kind = m.LiteralChar
			}

			current.Start = s.Pos() - prefixLen(src, s.Pos())
			if current.Kind == m.LiteralChar {
				current.Start = s.Pos()
			}

			continue
		}

		if before.InLiteral() && !after.InLiteral() {
			current.End = s.Pos() + 1
			current.Terminated = ch != '\n'

			if !current.Terminated {
				current.End = s.Pos()
			}

			literals = append(literals, current)
		}
	}

	if s.State().InLiteral() {
		current.End = len(src)
		literals = append(literals, current)
	}

	return literals
}

// LiteralAt parses a single string literal starting exactly at pos, which may
// point at an @/$ prefix or at the opening quote. It reports false if no
// terminated string literal starts there.
func LiteralAt(src string, pos int) (Literal, bool) {
	if pos < 0 || pos >= len(src) {
		return Literal{}, false
	}

	quote := pos
	for quote < len(src) && quote-pos < 2 && (src[quote] == '@' || src[quote] == '$') {
		quote++
	}

	if quote >= len(src) || src[quote] != '"' {
		return Literal{}, false
	}

	s := NewScannerAt(src, quote)

	if _, ok := s.Next(); !ok || !s.State().InString {
		return Literal{}, false
	}

	lit := Literal{
		Kind:     m.LiteralString,
		Start:    pos,
		Quote:    quote,
		Verbatim: s.State().Verbatim,
	}

	for {
		ch, ok := s.Next()
		if !ok {
			return Literal{}, false
		}

		if s.State().InString || s.State().EscapeNext {
			continue
		}

		if ch != '"' {
			return Literal{}, false
		}

		lit.End = s.Pos() + 1
		lit.Terminated = true

		return lit, true
	}
}
