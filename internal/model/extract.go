package model

// LiteralKind tells where an extracted text came from.
type LiteralKind string

const (
	// LiteralString is a double-quoted (optionally @ or $ prefixed) literal.
	LiteralString LiteralKind = "string"
	// LiteralChar is a single-quoted literal.
	LiteralChar LiteralKind = "char"
	// LiteralComment is the cleaned text of a comment line.
	LiteralComment LiteralKind = "comment"
	// LiteralTableCell is a cell of a reference table column.
	LiteralTableCell LiteralKind = "table"
)

// TableCell is one non-empty data cell of a reference table column.
// Line is 1-based.
type TableCell struct {
	Text string
	Line int
}

// ExtractedText is a candidate user-facing text found in a script.
type ExtractedText struct {
	Text   string
	Source Source
	Line   int
	Kind   LiteralKind
}

// ExtractSummary is the result of an extraction run.
type ExtractSummary struct {
	// PerFile maps a displayed path to the number of texts found in it.
	PerFile map[string]int
	// Texts holds the unique texts, sorted.
	Texts []string
	// Known is the number of texts already present in the language table.
	Known  int
	Output Path
	Failed int
}
