package model

// PassKind identifies one of the rewrite passes.
type PassKind string

const (
	// PassFormatted rewrites `x.text = string.Format(...);` to `x.SetTextFormat(...);`.
	PassFormatted PassKind = "formatted"
	// PassLiteral rewrites `x.text = "...";` to `x.SetText("...");`.
	PassLiteral PassKind = "literal"
	// PassGeneral rewrites `x.text = <expr>;` to `x.SetText(<expr>);`.
	PassGeneral PassKind = "general"
)

// Passes lists the rewrite passes in the order they are applied.
var Passes = []PassKind{PassFormatted, PassLiteral, PassGeneral}

// Match is a located `.text` assignment found by a pass. Start and End are
// half-open byte offsets into the text the pass scanned.
type Match struct {
	Pass     PassKind
	Receiver string
	Expr     string
	Start    int
	End      int
	// Replacement is the statement that replaces text[Start:End].
	Replacement string
	// LambdaBody marks an assignment that is the whole body of an
	// expression lambda (`() => a.text = b`). It is never rewritten.
	LambdaBody bool
}

// Edit replaces the half-open byte range [Start, End) with Text.
type Edit struct {
	Start int
	End   int
	Text  string
}

// ChangeAction describes what happened to a match.
type ChangeAction string

const (
	// ActionRewritten means the assignment was replaced.
	ActionRewritten ChangeAction = "rewritten"
	// ActionSkippedLambda means the assignment sits inside a lambda body.
	ActionSkippedLambda ChangeAction = "skipped-lambda"
	// ActionUnbalanced means the replacement failed the balance check.
	ActionUnbalanced ChangeAction = "unbalanced"
	// ActionIgnored means a textmig:ignore directive covers the assignment.
	ActionIgnored ChangeAction = "ignored"
)

// Change records the outcome of one match.
type Change struct {
	Pass     PassKind
	Action   ChangeAction
	Receiver string
	Line     int
}

// Stats holds counters for a batch run.
type Stats struct {
	FilesProcessed int `yaml:"files_processed"`
	FilesTouched   int `yaml:"files_touched"`
	FilesFailed    int `yaml:"files_failed"`
	Rewritten      int `yaml:"rewritten"`
	LambdaSkipped  int `yaml:"lambda_skipped"`
}

// FileResult is the outcome of running every pass over a single file.
type FileResult struct {
	Source    Source
	Rewritten int
	Skipped   int
	Changes   []Change
	Diff      string
	Err       error
}

// Touched reports whether the file was (or, in a dry run, would be) written.
func (r FileResult) Touched() bool {
	return r.Err == nil && r.Rewritten > 0
}
