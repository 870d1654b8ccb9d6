package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInsideLambda(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		target string
		want   bool
	}{
		{
			name:   "block lambda passed to tween call",
			text:   `tween.To(x => { lbl.text = "Hi"; }, 1f);`,
			target: "lbl.text",
			want:   true,
		},
		{
			name:   "expression lambda passed to ForEach",
			text:   `labels.ForEach(l => l.text = "x");`,
			target: "l.text",
			want:   true,
		},
		{
			name:   "DOTween setter with parenthesised parameter",
			text:   "DOTween.To(() => value, (v) => {\n\tscore.text = v.ToString();\n}, 10, 1f);",
			target: "score.text",
			want:   true,
		},
		{
			name:   "no arrow",
			text:   `void Show() { lbl.text = "Hello"; }`,
			target: "lbl.text",
			want:   false,
		},
		{
			name:   "lambda already closed",
			text:   "btn.onClick.AddListener(() => Close());\nlbl.text = \"a\";",
			target: "lbl.text",
			want:   false,
		},
		{
			name:   "arrow in comment",
			text:   "// x => y\nlbl.text = \"a\";",
			target: "lbl.text",
			want:   false,
		},
		{
			name:   "arrow in string",
			text:   "Debug.Log(\"a => b\");\nlbl.text = \"a\";",
			target: "lbl.text",
			want:   false,
		},
		{
			name:   "free floating lambda without call marker",
			text:   "Func<int, int> f = x => x + 1;\nlbl.text = \"a\";",
			target: "lbl.text",
			want:   false,
		},
		{
			name:   "arrow not preceded by a parameter list",
			text:   `var a = arr[0] => lbl.text = "x";`,
			target: "lbl.text",
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := strings.LastIndex(tt.text, tt.target)
			assert.GreaterOrEqual(t, pos, 0)
			assert.Equal(t, tt.want, IsInsideLambda(tt.text, pos))
		})
	}
}

func TestIsInsideLambda_NoArrowIsNeverInside(t *testing.T) {
	text := "class A {\n\tvoid F() {\n\t\tif (a >= b) { lbl.text = \"x\"; }\n\t\tc.text = Get(\"=\", '>');\n\t}\n}\n"

	for pos := -1; pos <= len(text)+1; pos++ {
		assert.Falsef(t, IsInsideLambda(text, pos), "position %d", pos)
	}
}

func TestLambdaDetector_FallbackOnOutOfRange(t *testing.T) {
	text := "a => b"
	d := NewLambdaDetector(DefaultLambdaOptions())

	assert.True(t, d.Inside(NewDocument(text), len(text)+10))
}

func TestLambdaDetector_LookBehindWindow(t *testing.T) {
	text := "tween.To(x => {\n" + strings.Repeat(" ", 400) + "lbl.text = \"x\"; }, 1f);"
	pos := strings.Index(text, "lbl.text")

	assert.False(t, NewLambdaDetector(DefaultLambdaOptions()).Inside(NewDocument(text), pos))

	wide := NewLambdaDetector(LambdaOptions{LookBehind: 1000})
	assert.True(t, wide.Inside(NewDocument(text), pos))
}

func TestLambdaDetector_CustomMarkers(t *testing.T) {
	text := "Sequence.Append x => {\n\tlbl.text = \"a\";\n};"
	pos := strings.Index(text, "lbl.text")

	assert.False(t, NewLambdaDetector(LambdaOptions{Markers: []string{}}).Inside(NewDocument(text), pos))
	assert.True(t, NewLambdaDetector(LambdaOptions{Markers: []string{"Sequence."}}).Inside(NewDocument(text), pos))
}

func TestScopeEnd(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "block body", text: " { a(); } , 1)", want: ","},
		{name: "enclosing block closes", text: " x }", want: "}"},
		{name: "expression argument", text: " Close()) ;", want: ")"},
		{name: "next argument", text: " x + 1, y)", want: ","},
		{name: "statement end", text: " x + 1;", want: ";"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			end := ScopeEnd(tt.text, 0)
			if assert.Less(t, end, len(tt.text)) {
				assert.Equal(t, tt.want, string(tt.text[end]))
			}
		})
	}
}
