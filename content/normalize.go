package content

import (
	"strings"
	"unicode"
)

// stopWords are ignored when comparing bullet texts for uniqueness.
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "with": {}, "by": {},
}

var bulletGlyphs = strings.NewReplacer("•", "", "*", "", "·", "", "-", "")

// CleanText prepares raw bullet text for display and comparison: bullet
// glyphs removed, whitespace collapsed, trailing punctuation stripped.
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	text = bulletGlyphs.Replace(text)
	text = strings.Join(strings.Fields(text), " ")
	text = strings.TrimRight(text, ".,;:")
	return strings.TrimSpace(text)
}

// ComparisonKey derives the canonical key used to detect semantic
// duplicates: lowercase, alphanumeric and spaces only, stop words removed.
// Two texts that differ only in bullet glyphs, case, stop words, or trailing
// punctuation yield the same key. Empty input (or input that is all stop
// words) yields the empty key, which callers must treat as "drop".
func ComparisonKey(text string) string {
	if text == "" {
		return ""
	}
	var sb strings.Builder
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			sb.WriteRune(unicode.ToLower(r))
		}
	}
	words := strings.Fields(sb.String())
	kept := words[:0]
	for _, w := range words {
		if _, skip := stopWords[w]; !skip {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}
