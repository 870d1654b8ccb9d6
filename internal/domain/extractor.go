package domain

import (
	"path/filepath"
	"regexp"
	"slices"
	"sort"
	"strings"

	"github.com/mouse-blink/textmig/internal/domain/lexer"
	m "github.com/mouse-blink/textmig/internal/model"
)

// ExtractFilters narrows which literals count as user-facing text.
type ExtractFilters struct {
	// Calls skips every line that mentions one of these names.
	Calls []string `yaml:"call_filters"`
	// Methods skips the bodies of methods declared with one of these names.
	Methods []string `yaml:"method_filters"`
	// Texts drops literals equal to one of these after trimming.
	Texts []string `yaml:"text_filters"`
	// Classes skips whole files named after, or declaring, one of these
	// classes.
	Classes []string `yaml:"class_filters"`
}

// DefaultExtractFilters returns the stock filter lists.
func DefaultExtractFilters() ExtractFilters {
	return ExtractFilters{
		Calls: []string{
			"GetChildControl", "CreateSpecificCulture", "Debug.Log", "Debug.LogError",
			"Debug.LogWarning", "Debug.LogFormat", "Debug.LogErrorFormat", "SetSprite",
			"Resources.Load", "GetString", "GetEnum", "GetBool", "GetFloat", "GetDouble",
			"GetInt", "GetLong", "SetEnum", "SetBool", "SetFloat", "SetDouble", "SetInt",
			"SetLong", "GetList", "SetList", "TrackCustomEvent", "TrackPurchaseEvent",
			"TrackFaceBookCustomEvent", "TrackFirebaseCustomEvent", "TrackSingularCustomEvent",
			"ShowRewardAD", "AndroidJavaClass", "AddData",
		},
		Methods: []string{"GetLangDesc"},
		Texts: []string{
			"中文", "Deutsch", "Français", "Español (ES)", "Español (AL)",
			"Português (BR)", "Português (PT)", "Italiano", "Nederlands",
			"日本語", "한국어", "Русский", "Українська", "Ελληνικά", "Türk", "English",
		},
		Classes: []string{"IAPManager", "LocalSave", "Launch"},
	}
}

var accessModifiers = []string{"public", "private", "protected", "internal"}

// Extractor collects candidate user-facing texts from script sources.
type Extractor struct {
	filters  ExtractFilters
	classes  []classFilter
	comments bool
}

type classFilter struct {
	name string
	decl *regexp.Regexp
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithComments also collects the prose of comments.
func WithComments() ExtractorOption {
	return func(e *Extractor) {
		e.comments = true
	}
}

// NewExtractor creates an Extractor with the given filters.
func NewExtractor(filters ExtractFilters, options ...ExtractorOption) *Extractor {
	e := &Extractor{filters: filters}

	for _, name := range filters.Classes {
		if name == "" {
			continue
		}

		e.classes = append(e.classes, classFilter{
			name: name,
			decl: regexp.MustCompile(`(?i)\bclass\s+` + regexp.QuoteMeta(name) + `\b`),
		})
	}

	for _, option := range options {
		option(e)
	}

	return e
}

// FilteredClass returns the class filter that excludes source: one matching
// the file name without extension, or a class declared in code.
func (e *Extractor) FilteredClass(source m.Source, content string) (string, bool) {
	base := filepath.Base(string(source.Path))
	base = strings.TrimSuffix(base, filepath.Ext(base))

	for _, class := range e.classes {
		if strings.EqualFold(base, class.name) {
			return class.name, true
		}
	}

	if len(e.classes) == 0 {
		return "", false
	}

	doc := lexer.NewDocument(content)

	for _, class := range e.classes {
		for _, loc := range class.decl.FindAllStringIndex(content, -1) {
			if doc.IsCode(loc[0]) {
				return class.name, true
			}
		}
	}

	return "", false
}

// Extract returns the string and char literals of content that pass every
// filter, in source order, followed by comment texts when enabled. A file
// excluded by a class filter yields nothing.
func (e *Extractor) Extract(source m.Source, content string) []m.ExtractedText {
	if _, ok := e.FilteredClass(source, content); ok {
		return nil
	}

	doc := lexer.NewDocument(content)
	skipped := e.skippedLines(doc)

	var texts []m.ExtractedText

	for _, lit := range lexer.Literals(content) {
		line := doc.Line(lit.Start)
		if skipped[line] {
			continue
		}

		body := lit.Body(content)
		if !e.accept(body) {
			continue
		}

		texts = append(texts, m.ExtractedText{
			Text:   body,
			Source: source,
			Line:   line,
			Kind:   lit.Kind,
		})
	}

	if e.comments {
		texts = append(texts, e.commentTexts(source, doc, skipped)...)
	}

	return texts
}

// commentTexts cleans every comment line and keeps the ones that read as
// prose. Ignore directives are not prose.
func (e *Extractor) commentTexts(source m.Source, doc *lexer.Document, skipped map[int]bool) []m.ExtractedText {
	var texts []m.ExtractedText

	for _, comment := range lexer.Comments(doc.Text) {
		raw := comment.Text(doc.Text)
		if _, ok := parseIgnoreDirective(raw); ok {
			continue
		}

		first := doc.Line(comment.Start)

		for i, line := range strings.Split(raw, "\n") {
			if skipped[first+i] {
				continue
			}

			text := cleanComment(line)
			if !IsCommentText(text) || slices.Contains(e.filters.Texts, text) {
				continue
			}

			texts = append(texts, m.ExtractedText{
				Text:   text,
				Source: source,
				Line:   first + i,
				Kind:   m.LiteralComment,
			})
		}
	}

	return texts
}

// TableTexts keeps the reference table cells worth translating.
func (e *Extractor) TableTexts(source m.Source, cells []m.TableCell) []m.ExtractedText {
	var texts []m.ExtractedText

	for _, cell := range cells {
		if !IsTableText(cell.Text) || slices.Contains(e.filters.Texts, strings.TrimSpace(cell.Text)) {
			continue
		}

		texts = append(texts, m.ExtractedText{
			Text:   cell.Text,
			Source: source,
			Line:   cell.Line,
			Kind:   m.LiteralTableCell,
		})
	}

	return texts
}

func (e *Extractor) accept(text string) bool {
	if slices.Contains(e.filters.Texts, strings.TrimSpace(text)) {
		return false
	}

	return IsCandidateText(text)
}

// skippedLines marks 1-based lines that mention a filtered call or belong to
// a filtered method.
func (e *Extractor) skippedLines(doc *lexer.Document) map[int]bool {
	skipped := make(map[int]bool)

	var (
		inMethod bool
		opened   bool
		depth    int
	)

	offset := 0

	for i, line := range strings.SplitAfter(doc.Text, "\n") {
		lineNo := i + 1
		start := offset
		offset += len(line)

		if !inMethod && e.declaresFilteredMethod(line) {
			inMethod, opened, depth = true, false, 0
		}

		if inMethod {
			skipped[lineNo] = true

			for j := start; j < offset; j++ {
				if !doc.IsCode(j) {
					continue
				}

				switch doc.Text[j] {
				case '{':
					depth++
					opened = true
				case '}':
					depth--
				case ';':
					if !opened && depth == 0 {
						inMethod = false
					}
				}
			}

			if opened && depth <= 0 {
				inMethod = false
			}

			continue
		}

		for _, call := range e.filters.Calls {
			if call != "" && strings.Contains(line, call) {
				skipped[lineNo] = true

				break
			}
		}
	}

	return skipped
}

func (e *Extractor) declaresFilteredMethod(line string) bool {
	hasModifier := false

	for _, modifier := range accessModifiers {
		if strings.Contains(line, modifier) {
			hasModifier = true

			break
		}
	}

	if !hasModifier {
		return false
	}

	for _, method := range e.filters.Methods {
		if method != "" && strings.Contains(line, method) {
			return true
		}
	}

	return false
}

// uniqueTexts deduplicates texts, drops the ones in known (compared after
// trimming) and returns the rest sorted, along with how many distinct texts
// were already known.
func uniqueTexts(texts []m.ExtractedText, known map[string]struct{}) ([]string, int) {
	seen := make(map[string]struct{}, len(texts))
	knownSeen := make(map[string]struct{})

	var out []string

	for _, t := range texts {
		if _, ok := seen[t.Text]; ok {
			continue
		}

		seen[t.Text] = struct{}{}

		if _, ok := known[strings.TrimSpace(t.Text)]; ok {
			knownSeen[t.Text] = struct{}{}

			continue
		}

		out = append(out, t.Text)
	}

	sort.Strings(out)

	return out, len(knownSeen)
}
