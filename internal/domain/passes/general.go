package passes

import (
	"fmt"

	"github.com/mouse-blink/textmig/internal/domain/lexer"
	m "github.com/mouse-blink/textmig/internal/model"
)

type generalPass struct{}

// General wraps any remaining right-hand side: `x.text = expr;` becomes
// `x.SetText(expr);`. Literals, string.Format calls and expressions that
// already call SetText or SetTextFormat are left alone.
func General() Pass {
	return generalPass{}
}

func (generalPass) Kind() m.PassKind {
	return m.PassGeneral
}

func (p generalPass) Find(doc *lexer.Document) []m.Match {
	text := doc.Text

	var matches []m.Match

	for _, a := range assignments(doc, textAssignHead) {
		expr := a.expr(text)

		if _, ok := isWholeLiteral(text, a); ok {
			continue
		}

		if formatCallPrefix.MatchString(expr) || alreadyMigrated(expr) {
			continue
		}

		replacement := fmt.Sprintf("%s.%s(%s);", a.receiver, setTextMethod, expr)
		matches = append(matches, a.match(p.Kind(), text, replacement))
	}

	return matches
}
