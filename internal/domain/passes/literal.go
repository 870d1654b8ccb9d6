package passes

import (
	"fmt"
	"strings"

	"github.com/mouse-blink/textmig/internal/domain/lexer"
	m "github.com/mouse-blink/textmig/internal/model"
)

type literalPass struct{}

// Literal matches assignments of a single string literal, keeping any
// verbatim or interpolation prefix: `x.text = @"a";` becomes `x.SetText(@"a");`.
func Literal() Pass {
	return literalPass{}
}

func (literalPass) Kind() m.PassKind {
	return m.PassLiteral
}

func (p literalPass) Find(doc *lexer.Document) []m.Match {
	text := doc.Text

	var matches []m.Match

	for _, a := range assignments(doc, textAssignHead) {
		lit, ok := isWholeLiteral(text, a)
		if !ok {
			continue
		}

		replacement := fmt.Sprintf("%s.%s(%s);", a.receiver, setTextMethod, lit.Token(text))
		matches = append(matches, a.match(p.Kind(), text, replacement))
	}

	return matches
}

// isWholeLiteral reports whether the right-hand side of a is exactly one
// terminated string literal.
func isWholeLiteral(text string, a assignment) (lexer.Literal, bool) {
	lit, ok := lexer.LiteralAt(text, a.rhsStart)
	if !ok || lit.End > a.end {
		return lexer.Literal{}, false
	}

	if strings.TrimSpace(text[lit.End:a.end]) != "" {
		return lexer.Literal{}, false
	}

	return lit, true
}
