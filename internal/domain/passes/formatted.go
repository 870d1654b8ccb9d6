package passes

import (
	"fmt"
	"strings"

	"github.com/mouse-blink/textmig/internal/domain/lexer"
	m "github.com/mouse-blink/textmig/internal/model"
)

type formattedPass struct{}

// Formatted matches `x.text = string.Format(args);` and rewrites it to
// `x.SetTextFormat(args);`. The head is matched case-insensitively.
func Formatted() Pass {
	return formattedPass{}
}

func (formattedPass) Kind() m.PassKind {
	return m.PassFormatted
}

func (p formattedPass) Find(doc *lexer.Document) []m.Match {
	text := doc.Text

	var matches []m.Match

	for _, a := range assignments(doc, textAssignHeadFoldCase) {
		loc := formatCallPrefix.FindStringIndex(text[a.rhsStart:a.end])
		if loc == nil {
			continue
		}

		open := a.rhsStart + loc[1] - 1

		closeIndex, ok := lexer.FindMatchingClose(text, open)
		if !ok || closeIndex >= a.end {
			continue
		}

		// string.Format(...).Trim() and friends are not plain format calls and
		// stay unrewritten; the general pass rejects them too.
		if strings.TrimSpace(text[closeIndex+1:a.end]) != "" {
			continue
		}

		args := text[open+1 : closeIndex]
		replacement := fmt.Sprintf("%s.%s(%s);", a.receiver, setTextFormatMethod, args)
		matches = append(matches, a.match(p.Kind(), text, replacement))
	}

	return matches
}
