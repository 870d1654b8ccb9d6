// Package passes provides the assignment matchers used by the text rewrite.
package passes

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/mouse-blink/textmig/internal/domain/lexer"
	m "github.com/mouse-blink/textmig/internal/model"
)

const (
	setTextMethod       = "SetText"
	setTextFormatMethod = "SetTextFormat"
)

var (
	textAssignHead         = regexp.MustCompile(`\b(\w+)\.text\s*=`)
	textAssignHeadFoldCase = regexp.MustCompile(`(?i)\b(\w+)\.text\s*=`)
	formatCallPrefix       = regexp.MustCompile(`(?i)^string\.Format\s*\(`)
)

// Pass finds the assignments one rewrite pass is responsible for.
// Matches are returned in ascending offset order.
type Pass interface {
	Kind() m.PassKind
	Find(doc *lexer.Document) []m.Match
}

// All returns the passes in the order they must run.
func All() []Pass {
	return []Pass{Formatted(), Literal(), General()}
}

// New returns the pass for kind.
func New(kind m.PassKind) (Pass, error) {
	switch kind {
	case m.PassFormatted:
		return Formatted(), nil
	case m.PassLiteral:
		return Literal(), nil
	case m.PassGeneral:
		return General(), nil
	default:
		return nil, fmt.Errorf("unknown pass %q", kind)
	}
}

// assignment is a `.text =` statement located in code. end is the index of
// its semicolon, or of the closer that ends an expression lambda body.
type assignment struct {
	receiver   string
	start      int
	rhsStart   int
	end        int
	lambdaBody bool
}

func (a assignment) expr(text string) string {
	return strings.TrimSpace(text[a.rhsStart:a.end])
}

func (a assignment) match(kind m.PassKind, text, replacement string) m.Match {
	end := a.end + 1
	if a.lambdaBody {
		end = a.end
	}

	return m.Match{
		Pass:        kind,
		Receiver:    a.receiver,
		Expr:        a.expr(text),
		Start:       a.start,
		End:         end,
		Replacement: replacement,
		LambdaBody:  a.lambdaBody,
	}
}

// assignments lists the statements whose head matches head. Heads inside
// literals or comments, comparisons and lambda arrows are ignored, as are
// chained assignments whose spans would overlap. An assignment that directly
// follows a "=>" and runs into the closer of the enclosing call is kept as a
// lambda body.
func assignments(doc *lexer.Document, head *regexp.Regexp) []assignment {
	text := doc.Text

	var found []assignment

	for _, loc := range head.FindAllStringSubmatchIndex(text, -1) {
		start, eq := loc[0], loc[1]
		if !doc.IsCode(start) || !doc.IsCode(eq-1) {
			continue
		}

		if eq < len(text) && (text[eq] == '=' || text[eq] == '>') {
			continue
		}

		rhs := skipSpace(text, eq)

		end, err := lexer.StatementEnd(text, rhs)

		lambdaBody := false
		if err != nil {
			if !errors.Is(err, lexer.ErrUnbalanced) || !followsArrow(doc, start) {
				continue
			}

			lambdaBody = true
		}

		if rhs >= end || lexer.EndsInLineComment(strings.TrimSpace(text[rhs:end])) {
			continue
		}

		found = append(found, assignment{
			receiver:   text[loc[2]:loc[3]],
			start:      start,
			rhsStart:   rhs,
			end:        end,
			lambdaBody: lambdaBody,
		})
	}

	return dropChained(found)
}

func dropChained(found []assignment) []assignment {
	chained := make([]bool, len(found))

	for i := 1; i < len(found); i++ {
		if found[i].start < found[i-1].end+1 {
			chained[i-1] = true
			chained[i] = true
		}
	}

	kept := found[:0]

	for i, a := range found {
		if !chained[i] {
			kept = append(kept, a)
		}
	}

	return kept
}

// followsArrow reports whether only whitespace separates start from a
// preceding "=>" in code.
func followsArrow(doc *lexer.Document, start int) bool {
	before := strings.TrimRight(doc.Text[:start], " \t\r\n")

	return strings.HasSuffix(before, "=>") && doc.IsCode(len(before)-1)
}

func skipSpace(text string, i int) int {
	for i < len(text) {
		switch text[i] {
		case ' ', '\t', '\r', '\n':
			i++
		default:
			return i
		}
	}

	return i
}

// alreadyMigrated reports whether expr already calls one of the target methods.
func alreadyMigrated(expr string) bool {
	return strings.Contains(expr, setTextMethod)
}
