package domain

import (
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	numberPattern        = regexp.MustCompile(`^[-+]?[0-9]*\.?[0-9]+([eE][-+]?[0-9]+)?$`)
	hexColorPattern      = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$|^#[0-9A-Fa-f]{3}$`)
	colorTagPattern      = regexp.MustCompile(`(?i)<color\s*=\s*[^>]*>.*?</color>`)
	fileExtPattern       = regexp.MustCompile(`^(\*\.|\.)([a-zA-Z0-9]+)$`)
	pathPattern          = regexp.MustCompile(`^[a-zA-Z0-9_/.-]*[/\\][a-zA-Z0-9_/.-]*$`)
	rootedNamePattern    = regexp.MustCompile(`^[/\\][a-zA-Z0-9_]+$`)
	escapeOnlyPattern    = regexp.MustCompile(`^(\\\\n|\\n|\\t|\\r|\\\\|\\')$`)
	shortSymbolPattern   = regexp.MustCompile(`^[a-zA-Z0-9][\W_]*$`)
	placeholderPattern   = regexp.MustCompile(`\{([^}]+)\}`)
	digitsPattern        = regexp.MustCompile(`^\d+$`)
	multiplierPattern    = regexp.MustCompile(`(?i)^x\d+$`)
	punctuationPattern   = regexp.MustCompile(`^[^\w\s]*$`)
	bracketedPattern     = regexp.MustCompile(`^\([^)]*\)$|^\{[^}]*\}$|^\[[^\]]*\]$`)
	dottedVersionPattern = regexp.MustCompile(`^\d+\.\d+(\.\d+)*$`)
	memberCallPattern    = regexp.MustCompile(`[a-zA-Z_][a-zA-Z0-9_]*\.[a-zA-Z_][a-zA-Z0-9_]*\s*\(`)
	numericWithUnitForms = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^-?\d+(\.\d+)?[hmdsy]$`),
		regexp.MustCompile(`(?i)^-?\d+[hmd]\d+[ms]$`),
		regexp.MustCompile(`^-?\d+(\.\d+)?[kmgtpKMGTPabcdefABCDEF]+$`),
		regexp.MustCompile(`^\d+-\d+$`),
		regexp.MustCompile(`(?i)^\d+\s+(card|cards|coin|coins|gem|gems|gold|silver|bronze|point|points|star|stars|level|lvl|exp|xp)s?$`),
		regexp.MustCompile(`^-?\d+(\.\d+)?%$`),
		regexp.MustCompile(`^[$€¥£₹₽₩₪₫₨₦₱₡₴₸₵₲₼₺₾₿]+\d+(\.\d+)?$`),
		regexp.MustCompile(`^\d+(\.\d+)?[$€¥£₹₽₩₪₫₨₦₱₡₴₸₵₲₼₺₾₿]+$`),
		regexp.MustCompile(`(?i)^v?\d+(\.\d+)*$`),
		regexp.MustCompile(`^\d+(\.\d+)?[xX]$`),
		regexp.MustCompile(`^-?\d+(\.\d+)?°[CFK]$`),
	}
)

var (
	xmlTagPattern         = regexp.MustCompile(`<[^>]*>`)
	spaceRunPattern       = regexp.MustCompile(`\s+`)
	quotedPattern         = regexp.MustCompile(`"[^"]*"`)
	commentSymbolPattern  = regexp.MustCompile(`^[\d\s\-=+*/.,:;!?(){}\[\]_]+$`)
	commentAssignPattern  = regexp.MustCompile(`^[a-zA-Z]+\s*=\s*["'][^"']*["']$`)
	codeWithNumberPattern = regexp.MustCompile(`^[A-Za-z]*\d+$`)
)

// commentNoise are lower-case fragments marking doc markup, test notes or
// task tags rather than prose.
var commentNoise = []string{
	"param name", "returns", "summary", "remarks", "example", "see cref",
	"paramref name", "typeparam name", "exception cref", "value", "c>", "code>",
	"para>", "/param>", "/returns>", "/summary>", "/remarks>", "addtime", "test",
	"todo", "fixme", "hack", "note", "warning", "bug", "debug",
}

var (
	logKeywords     = []string{"log", "debug", "warning", "error", "info", "trace", "console"}
	codeIdentifiers = []string{"null", "true", "false", "void", "int", "float", "string", "bool", "var", "const", "failed"}
)

// IsCandidateText reports whether text looks like user-facing copy worth
// translating rather than a path, number, identifier or log message.
func IsCandidateText(text string) bool {
	trimmed := strings.TrimSpace(text)
	if len(text) <= 1 || trimmed == "" {
		return false
	}

	if !hasASCIILetter(text) {
		return false
	}

	if strings.ContainsAny(trimmed, "_/") {
		return false
	}

	for _, re := range []*regexp.Regexp{
		numberPattern, hexColorPattern, fileExtPattern, pathPattern,
		rootedNamePattern, escapeOnlyPattern, multiplierPattern,
		punctuationPattern, bracketedPattern, dottedVersionPattern, memberCallPattern,
	} {
		if re.MatchString(trimmed) {
			return false
		}
	}

	if colorTagPattern.MatchString(text) {
		return false
	}

	if len(trimmed) <= 3 && shortSymbolPattern.MatchString(trimmed) {
		return false
	}

	if !onlyNumericPlaceholders(trimmed) || isNumericWithUnit(trimmed) {
		return false
	}

	lower := strings.ToLower(text)
	for _, keyword := range logKeywords {
		if strings.Contains(lower, keyword) {
			return false
		}
	}

	return !slices.Contains(codeIdentifiers, strings.ToLower(trimmed))
}

func hasASCIILetter(text string) bool {
	for i := 0; i < len(text); i++ {
		c := text[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			return true
		}
	}

	return false
}

// onlyNumericPlaceholders allows {0} style format holes and rejects any other
// {name}.
func onlyNumericPlaceholders(text string) bool {
	for _, match := range placeholderPattern.FindAllStringSubmatch(text, -1) {
		if !digitsPattern.MatchString(match[1]) {
			return false
		}
	}

	return true
}

func isNumericWithUnit(text string) bool {
	for _, re := range numericWithUnitForms {
		if re.MatchString(text) {
			return true
		}
	}

	return false
}

// cleanComment strips comment markers and XML doc tags from one comment line,
// collapses whitespace and removes quoted fragments.
func cleanComment(line string) string {
	line = strings.TrimLeft(line, "/* \t")
	line = strings.TrimRight(line, "/* \t\r")
	line = xmlTagPattern.ReplaceAllString(line, " ")
	line = strings.TrimSpace(spaceRunPattern.ReplaceAllString(line, " "))
	line = quotedPattern.ReplaceAllString(line, "")

	return strings.TrimSpace(spaceRunPattern.ReplaceAllString(line, " "))
}

// IsCommentText reports whether a cleaned comment line reads as prose.
func IsCommentText(comment string) bool {
	if len(strings.TrimSpace(comment)) <= 2 {
		return false
	}

	lower := strings.ToLower(comment)
	for _, noise := range commentNoise {
		if strings.Contains(lower, noise) {
			return false
		}
	}

	if commentSymbolPattern.MatchString(comment) || commentAssignPattern.MatchString(comment) {
		return false
	}

	if strings.Contains(comment, "(") && strings.Contains(comment, ")") &&
		(strings.Contains(comment, ".") || strings.Contains(comment, "Instance")) {
		return false
	}

	return hasASCIILetter(comment)
}

// IsTableText reports whether a reference table cell is worth translating.
// Short single words, numbers, counts with units and ids like "item12" are
// not.
func IsTableText(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || utf8.RuneCountInString(text) <= 1 {
		return false
	}

	wordLike := strings.IndexFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && r != '_'
	}) < 0
	if wordLike && utf8.RuneCountInString(text) < 20 {
		return false
	}

	if strings.IndexFunc(text, func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) }) < 0 {
		return false
	}

	if numberPattern.MatchString(trimmed) || isNumericWithUnit(trimmed) {
		return false
	}

	return !(codeWithNumberPattern.MatchString(trimmed) && len(trimmed) < 10)
}
