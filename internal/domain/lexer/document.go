package lexer

import "strings"

// Document is an immutable source text with its code mask precomputed.
type Document struct {
	Text string
	mask []bool
}

// NewDocument scans text once and returns a Document for it.
func NewDocument(text string) *Document {
	return &Document{Text: text, mask: CodeMask(text)}
}

// IsCode reports whether the byte at offset is code. Out-of-range offsets are
// not code.
func (d *Document) IsCode(offset int) bool {
	if offset < 0 || offset >= len(d.mask) {
		return false
	}

	return d.mask[offset]
}

// LastCodeIndex returns the start of the last occurrence of token inside
// Text[from:to] whose bytes are all code, or -1.
func (d *Document) LastCodeIndex(from, to int, token string) int {
	if from < 0 {
		from = 0
	}

	if to > len(d.Text) {
		to = len(d.Text)
	}

	for to-from >= len(token) {
		i := strings.LastIndex(d.Text[from:to], token)
		if i < 0 {
			return -1
		}

		i += from
		if d.spanIsCode(i, i+len(token)) {
			return i
		}

		to = i + len(token) - 1
	}

	return -1
}

// Line returns the 1-based line number of offset.
func (d *Document) Line(offset int) int {
	if offset > len(d.Text) {
		offset = len(d.Text)
	}

	if offset < 0 {
		offset = 0
	}

	return strings.Count(d.Text[:offset], "\n") + 1
}

func (d *Document) spanIsCode(start, end int) bool {
	for i := start; i < end; i++ {
		if !d.IsCode(i) {
			return false
		}
	}

	return true
}
