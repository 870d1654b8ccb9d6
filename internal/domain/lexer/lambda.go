package lexer

import (
	"errors"
	"regexp"
	"strings"
)

// ErrPositionOutOfRange is returned when a position lies outside the text.
var ErrPositionOutOfRange = errors.New("position out of range")

// LambdaOptions tunes the lambda scope heuristic. The windows are byte counts.
type LambdaOptions struct {
	// LookBehind bounds the backward search for an arrow token.
	LookBehind int
	// MarkerWindow is how far before the arrow call markers are looked for.
	MarkerWindow int
	// CallWindow is the tail of the marker window where any "(" counts as
	// a call marker.
	CallWindow int
	// FallbackWindow is the radius searched for "=>" when detection fails.
	FallbackWindow int
	// Markers are higher-order call names whose arguments are lambdas.
	Markers []string
}

// DefaultMarkers are the tween/animation call markers recognised by default.
var DefaultMarkers = []string{"DOTween.To", ".To(", "Tween.", "LeanTween.", "iTween."}

// DefaultLambdaOptions returns the stock heuristic tuning.
func DefaultLambdaOptions() LambdaOptions {
	return LambdaOptions{
		LookBehind:     300,
		MarkerWindow:   150,
		CallWindow:     50,
		FallbackWindow: 100,
		Markers:        append([]string(nil), DefaultMarkers...),
	}
}

var paramListPattern = regexp.MustCompile(`(\w+|\([^)]*\))\s*$`)

// LambdaDetector decides whether an offset lies inside a lambda body.
// It errs toward reporting true when the answer is uncertain.
type LambdaDetector struct {
	opts LambdaOptions
}

// NewLambdaDetector constructs a LambdaDetector. Non-positive windows fall
// back to the defaults.
func NewLambdaDetector(opts LambdaOptions) *LambdaDetector {
	def := DefaultLambdaOptions()

	if opts.LookBehind <= 0 {
		opts.LookBehind = def.LookBehind
	}

	if opts.MarkerWindow <= 0 {
		opts.MarkerWindow = def.MarkerWindow
	}

	if opts.CallWindow <= 0 {
		opts.CallWindow = def.CallWindow
	}

	if opts.FallbackWindow <= 0 {
		opts.FallbackWindow = def.FallbackWindow
	}

	if opts.Markers == nil {
		opts.Markers = def.Markers
	}

	return &LambdaDetector{opts: opts}
}

// IsInsideLambda is a convenience wrapper using the default options.
func IsInsideLambda(text string, position int) bool {
	return NewLambdaDetector(DefaultLambdaOptions()).Inside(NewDocument(text), position)
}

// Inside reports whether position lies within a lambda expression body.
func (d *LambdaDetector) Inside(doc *Document, position int) (inside bool) {
	defer func() {
		if r := recover(); r != nil {
			inside = d.fallback(doc.Text, position)
		}
	}()

	inside, err := d.detect(doc, position)
	if err != nil {
		return d.fallback(doc.Text, position)
	}

	return inside
}

func (d *LambdaDetector) detect(doc *Document, position int) (bool, error) {
	text := doc.Text
	if position < 0 || position > len(text) {
		return false, ErrPositionOutOfRange
	}

	searchStart := max(0, position-d.opts.LookBehind)

	arrow := doc.LastCodeIndex(searchStart, position+1, "=>")
	if arrow < 0 {
		return false, nil
	}

	if !paramListPattern.MatchString(text[searchStart:arrow]) {
		return false, nil
	}

	if !d.hasCallMarker(text[max(0, arrow-d.opts.MarkerWindow):arrow]) {
		return false, nil
	}

	return ScopeEnd(text, arrow+2) > position, nil
}

func (d *LambdaDetector) hasCallMarker(context string) bool {
	for _, marker := range d.opts.Markers {
		if marker != "" && strings.Contains(context, marker) {
			return true
		}
	}

	tail := context[max(0, len(context)-d.opts.CallWindow):]

	return strings.Contains(tail, "(")
}

func (d *LambdaDetector) fallback(text string, position int) bool {
	start := min(max(0, position-d.opts.FallbackWindow), len(text))
	end := min(max(start, position+d.opts.FallbackWindow), len(text))

	return strings.Contains(text[start:end], "=>")
}

// ScopeEnd returns the offset where a lambda whose body starts at start ends:
// the first unmatched "}", a ")" closing the enclosing call, a "," separating
// the next argument, or a top-level ";". It returns len(text) when none is
// found.
func ScopeEnd(text string, start int) int {
	var braces, parens int

	foundBody := false
	s := NewScannerAt(text, start)

	for {
		ch, ok := s.Next()
		if !ok {
			return len(text)
		}

		if !s.InCode() {
			if s.State().InLiteral() {
				foundBody = true
			}

			continue
		}

		switch ch {
		case '{':
			braces++
			foundBody = true
		case '}':
			braces--
			if braces < 0 {
				return s.Pos()
			}
		case '(':
			parens++
		case ')':
			parens--
			if parens < 0 && braces == 0 && foundBody {
				return s.Pos()
			}
		case ',':
			if braces == 0 && parens == 0 && foundBody {
				return s.Pos()
			}
		case ';':
			if braces == 0 {
				foundBody = true
				if parens == 0 {
					return s.Pos()
				}
			}
		case ' ', '\t', '\r', '\n':
		default:
			foundBody = true
		}
	}
}
