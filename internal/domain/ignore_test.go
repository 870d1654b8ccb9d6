package domain

import (
	"testing"

	"github.com/mouse-blink/textmig/internal/domain/lexer"
	m "github.com/mouse-blink/textmig/internal/model"
)

func TestParseIgnoreDirective_All(t *testing.T) {
	r, ok := parseIgnoreDirective("//textmig:ignore")
	if !ok {
		t.Fatalf("expected directive to be parsed")
	}
	if !r.all || r.names != nil {
		t.Fatalf("expected all=true and names=nil")
	}
}

func TestParseIgnoreDirective_Names(t *testing.T) {
	r, ok := parseIgnoreDirective("// textmig:ignore Literal, general ")
	if !ok {
		t.Fatalf("expected directive to be parsed")
	}
	if r.all {
		t.Fatalf("expected all=false")
	}
	if len(r.names) != 2 {
		t.Fatalf("expected 2 names, got %d", len(r.names))
	}
	if !r.ignores(m.PassLiteral) || !r.ignores(m.PassGeneral) {
		t.Fatalf("expected literal and general to be ignored")
	}
	if r.ignores(m.PassFormatted) {
		t.Fatalf("expected formatted to be kept")
	}
}

func TestParseIgnoreDirective_BlockComment(t *testing.T) {
	r, ok := parseIgnoreDirective("/* textmig:ignore formatted */")
	if !ok {
		t.Fatalf("expected directive to be parsed")
	}
	if _, ok := r.names["formatted"]; !ok {
		t.Fatalf("expected formatted")
	}
}

func TestParseIgnoreDirective_NotDirective(t *testing.T) {
	if _, ok := parseIgnoreDirective("// regular comment"); ok {
		t.Fatalf("expected no directive")
	}
}

func TestBuildIgnoreIndex_FileAndLineScopes(t *testing.T) {
	const src = "// textmig:ignore formatted\n" +
		"using UnityEngine;\n" +
		"class A {\n" +
		"\t// textmig:ignore\n" +
		"\tvoid F() { a.text = b; }\n" +
		"\tvoid G() { c.text = d; } // textmig:ignore general\n" +
		"\tvoid H() { e.text = \"// textmig:ignore\"; }\n" +
		"}\n"

	index := buildIgnoreIndex(lexer.NewDocument(src))

	if !index.ignores(m.PassFormatted, 7) {
		t.Fatalf("expected file directive to cover formatted everywhere")
	}
	if !index.ignores(m.PassLiteral, 5) {
		t.Fatalf("expected leading directive to cover the next line")
	}
	if !index.ignores(m.PassGeneral, 6) || index.ignores(m.PassLiteral, 6) {
		t.Fatalf("expected trailing directive to cover only general on its own line")
	}
	if index.ignores(m.PassLiteral, 7) {
		t.Fatalf("directive inside a literal must not count")
	}
}

func TestRewriter_HonoursIgnoreDirectives(t *testing.T) {
	const src = "a.text = x;\n" +
		"// textmig:ignore\n" +
		"b.text = y;\n" +
		"c.text = \"z\"; // textmig:ignore literal\n"

	out, err := NewRewriter(nil).Rewrite(src)
	if err != nil {
		t.Fatalf("Rewrite() error = %v", err)
	}

	want := "a.SetText(x);\n// textmig:ignore\nb.text = y;\nc.text = \"z\"; // textmig:ignore literal\n"
	if out.Text != want {
		t.Fatalf("Rewrite() text = %q, want %q", out.Text, want)
	}
	if out.Rewritten != 1 {
		t.Fatalf("expected 1 rewrite, got %d", out.Rewritten)
	}
}
