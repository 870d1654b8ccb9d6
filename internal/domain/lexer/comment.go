package lexer

import "strings"

// Comment is a // or /* */ comment. End is exclusive; a line comment stops
// before its newline.
type Comment struct {
	Start int
	End   int
	Block bool
}

// Text returns the comment including its delimiters.
func (c Comment) Text(src string) string {
	return src[c.Start:c.End]
}

// Comments returns every comment in src, in order. Comment markers inside
// literals are not comments.
func Comments(src string) []Comment {
	var (
		comments []Comment
		current  Comment
		open     bool
	)

	s := NewScanner(src)

	for {
		before := s.State()

		ch, ok := s.Next()
		if !ok {
			break
		}

		after := s.State()

		switch {
		case !open && (after.LineComment || after.BlockComment):
			current = Comment{Start: s.Pos(), Block: after.BlockComment}
			open = true
		case open && before.LineComment && !after.LineComment:
			current.End = s.Pos()
			comments = append(comments, current)
			open = false
		case open && before.BlockComment && !after.BlockComment && ch == '/':
			current.End = s.Pos() + 1
			comments = append(comments, current)
			open = false
		}
	}

	if open {
		current.End = len(src)
		comments = append(comments, current)
	}

	return comments
}

// FirstCode returns the offset of the first code byte that is not
// whitespace, or len(src) if there is none.
func (d *Document) FirstCode() int {
	for i := 0; i < len(d.Text); i++ {
		if d.IsCode(i) && !strings.ContainsRune(" \t\r\n", rune(d.Text[i])) {
			return i
		}
	}

	return len(d.Text)
}
