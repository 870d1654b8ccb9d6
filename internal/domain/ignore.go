package domain

import (
	"strings"

	"github.com/mouse-blink/textmig/internal/domain/lexer"
	m "github.com/mouse-blink/textmig/internal/model"
)

const ignoreDirective = "textmig:ignore"

type ignoreRule struct {
	all   bool
	names map[string]struct{}
}

func (r ignoreRule) ignores(kind m.PassKind) bool {
	if r.all {
		return true
	}

	if len(r.names) == 0 {
		return false
	}

	_, ok := r.names[string(kind)]

	return ok
}

func mergeIgnoreRule(dst *ignoreRule, src ignoreRule) {
	if src.all {
		dst.all = true
		dst.names = nil

		return
	}

	if dst.all || len(src.names) == 0 {
		return
	}

	if dst.names == nil {
		dst.names = make(map[string]struct{}, len(src.names))
	}

	for name := range src.names {
		dst.names[name] = struct{}{}
	}
}

// parseIgnoreDirective reads `// textmig:ignore [pass, ...]`. Without pass
// names every pass is ignored.
func parseIgnoreDirective(commentText string) (ignoreRule, bool) {
	s := strings.TrimSpace(commentText)
	if strings.HasPrefix(s, "//") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "//"))
	} else if strings.HasPrefix(s, "/*") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "/*"))
		s = strings.TrimSpace(strings.TrimSuffix(s, "*/"))
	}

	if !strings.HasPrefix(s, ignoreDirective) {
		return ignoreRule{}, false
	}

	rest := strings.TrimSpace(strings.TrimPrefix(s, ignoreDirective))
	if rest == "" {
		return ignoreRule{all: true}, true
	}

	parts := strings.Split(rest, ",")
	rule := ignoreRule{names: make(map[string]struct{}, len(parts))}

	for _, part := range parts {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}

		rule.names[name] = struct{}{}
	}

	if len(rule.names) == 0 {
		rule.all = true
		rule.names = nil
	}

	return rule, true
}

// ignoreIndex holds the directives of one document. A directive before the
// first line of code covers the whole file; a trailing directive covers its
// own line and one alone on a line covers the next line.
type ignoreIndex struct {
	file ignoreRule
	line map[int]ignoreRule
}

func buildIgnoreIndex(doc *lexer.Document) ignoreIndex {
	index := ignoreIndex{line: make(map[int]ignoreRule)}
	firstCode := doc.FirstCode()
	lineStarts := computeLineStarts(doc.Text)

	for _, c := range lexer.Comments(doc.Text) {
		r, ok := parseIgnoreDirective(c.Text(doc.Text))
		if !ok {
			continue
		}

		if c.Start < firstCode {
			mergeIgnoreRule(&index.file, r)

			continue
		}

		line := doc.Line(c.Start)
		if isLeadingComment(line, c.Start, lineStarts, doc.Text) {
			line++
		}

		current := index.line[line]
		mergeIgnoreRule(&current, r)
		index.line[line] = current
	}

	return index
}

func (ix ignoreIndex) ignores(kind m.PassKind, line int) bool {
	if ix.file.ignores(kind) {
		return true
	}

	return ix.line[line].ignores(kind)
}

func computeLineStarts(content string) []int {
	starts := []int{0}

	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			starts = append(starts, i+1)
		}
	}

	return starts
}

func isLeadingComment(line int, slashOffset int, lineStarts []int, content string) bool {
	if line <= 0 || line > len(lineStarts) {
		return false
	}

	start := lineStarts[line-1]
	if slashOffset < start || slashOffset > len(content) {
		return false
	}

	return strings.TrimSpace(content[start:slashOffset]) == ""
}
