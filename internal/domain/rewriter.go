package domain

import (
	"fmt"

	"github.com/mouse-blink/textmig/internal/domain/lexer"
	"github.com/mouse-blink/textmig/internal/domain/passes"
	m "github.com/mouse-blink/textmig/internal/model"
)

// Outcome is the result of running every pass over one text.
type Outcome struct {
	Text      string
	Rewritten int
	Skipped   int
	Changes   []m.Change
}

// Rewriter turns `.text` assignments into SetText/SetTextFormat calls.
// It is pure: it never touches the filesystem.
type Rewriter interface {
	Rewrite(text string) (Outcome, error)
}

type rewriter struct {
	passes   []passes.Pass
	detector *lexer.LambdaDetector
}

// NewRewriter creates a Rewriter running every pass in order.
func NewRewriter(detector *lexer.LambdaDetector) Rewriter {
	if detector == nil {
		detector = lexer.NewLambdaDetector(lexer.DefaultLambdaOptions())
	}

	return &rewriter{
		passes:   passes.All(),
		detector: detector,
	}
}

// Rewrite runs the passes in order, each over the previous pass's output.
func (r *rewriter) Rewrite(text string) (Outcome, error) {
	out := Outcome{Text: text}

	for _, pass := range r.passes {
		next, err := r.runPass(pass, &out)
		if err != nil {
			return Outcome{Text: text}, fmt.Errorf("%s pass: %w", pass.Kind(), err)
		}

		out.Text = next
	}

	return out, nil
}

func (r *rewriter) runPass(pass passes.Pass, out *Outcome) (string, error) {
	doc := lexer.NewDocument(out.Text)
	matches := pass.Find(doc)
	ignores := buildIgnoreIndex(doc)
	edits := make([]m.Edit, 0, len(matches))

	// Highest offset first, as the run log reports them.
	for i := len(matches) - 1; i >= 0; i-- {
		match := matches[i]
		change := m.Change{
			Pass:     match.Pass,
			Receiver: match.Receiver,
			Line:     doc.Line(match.Start),
		}

		switch {
		case ignores.ignores(match.Pass, change.Line):
			change.Action = m.ActionIgnored
		case match.LambdaBody || r.detector.Inside(doc, match.Start):
			change.Action = m.ActionSkippedLambda
			out.Skipped++
		case !lexer.IsBalanced(match.Replacement):
			change.Action = m.ActionUnbalanced
		default:
			change.Action = m.ActionRewritten
			out.Rewritten++

			edits = append(edits, m.Edit{Start: match.Start, End: match.End, Text: match.Replacement})
		}

		out.Changes = append(out.Changes, change)
	}

	return applyEdits(out.Text, edits)
}
