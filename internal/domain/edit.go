package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	m "github.com/mouse-blink/textmig/internal/model"
)

// ErrInvalidEdit is returned when edits overlap or fall outside the text.
var ErrInvalidEdit = errors.New("invalid edit")

// applyEdits builds a new text from the unchanged spans between edits and
// their replacements. The input order of edits does not matter.
func applyEdits(text string, edits []m.Edit) (string, error) {
	if len(edits) == 0 {
		return text, nil
	}

	sorted := make([]m.Edit, len(edits))
	copy(sorted, edits)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	grow := len(text)
	for _, e := range sorted {
		grow += len(e.Text) - (e.End - e.Start)
	}

	var b strings.Builder

	b.Grow(max(grow, 0))

	last := 0

	for _, e := range sorted {
		if e.Start < last || e.End < e.Start || e.End > len(text) {
			return text, fmt.Errorf("%w: [%d,%d) in text of length %d", ErrInvalidEdit, e.Start, e.End, len(text))
		}

		b.WriteString(text[last:e.Start])
		b.WriteString(e.Text)
		last = e.End
	}

	b.WriteString(text[last:])

	return b.String(), nil
}
