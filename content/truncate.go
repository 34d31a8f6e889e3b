package content

import (
	"strings"
	"unicode"
)

// Default slide text limits.
const (
	DefaultMaxChars = 100
	DefaultMaxWords = 20
)

// sentenceEndings maps known truncated word prefixes to their full
// completion phrase. Word-count truncation can sever a word mid-token; this
// table repairs the common cases in the domain vocabulary. Prefixes outside
// the table degrade to a plain trailing period.
var sentenceEndings = []struct {
	prefix     string
	completion string
}{
	{"manua", "manual processes."},
	{"vulnerab", "vulnerability management."},
	{"efficien", "efficiency."},
	{"secur", "security measures."},
	{"complian", "compliance requirements."},
	{"detect", "detection capabilities."},
	{"automa", "automation capabilities."},
	{"respon", "response procedures."},
	{"sophisti", "sophisticated approach."},
	{"integra", "integration capabilities."},
	{"platfor", "platform features."},
	{"soluti", "solution benefits."},
	{"analy", "analysis capabilities."},
	{"monitor", "monitoring system."},
	{"protect", "protection measures."},
}

// Truncate bounds text to maxChars characters and maxWords words while
// preserving sentence boundaries where possible. Zero limits select the
// defaults. The result always passes through CompleteSentence, so character
// length can exceed maxChars only by the completion repair.
func Truncate(text string, maxChars, maxWords int) string {
	if text == "" {
		return ""
	}
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}
	if maxWords <= 0 {
		maxWords = DefaultMaxWords
	}

	text = strings.TrimSpace(text)
	words := strings.Fields(text)
	if len(words) <= maxWords && len([]rune(text)) <= maxChars {
		return CompleteSentence(text)
	}

	if len(words) > maxWords {
		text = strings.Join(words[:maxWords], " ")
	}

	runes := []rune(text)
	if len(runes) > maxChars {
		window := runes[:maxChars]
		if end := lastSentenceEnd(window); end >= 0 {
			text = strings.TrimSpace(string(window[:end+1]))
		} else if sp := lastIndexRune(window, ' '); sp > 0 {
			text = strings.TrimSpace(string(window[:sp]))
		} else {
			text = strings.TrimSpace(string(window))
		}
	}

	return CompleteSentence(text)
}

// CompleteSentence repairs a possibly truncated string so that it ends in
// proper sentence-final punctuation. Non-empty input always comes back
// ending in '.', '!', or '?'.
func CompleteSentence(text string) string {
	if text == "" {
		return text
	}

	text = strings.TrimRight(text, ". ")
	if text == "" {
		return "."
	}

	runes := []rune(text)
	last := runes[len(runes)-1]
	if unicode.IsLetter(last) || unicode.IsDigit(last) {
		text += "."
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}
	lastWord := strings.ToLower(words[len(words)-1])
	for _, e := range sentenceEndings {
		first := strings.ToLower(strings.Fields(e.completion)[0])
		if strings.HasPrefix(lastWord, e.prefix) && lastWord != first {
			return strings.Join(words[:len(words)-1], " ") + " " + e.completion
		}
	}
	return text
}

func lastSentenceEnd(runes []rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		switch runes[i] {
		case '.', '!', '?':
			return i
		}
	}
	return -1
}

func lastIndexRune(runes []rune, target rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == target {
			return i
		}
	}
	return -1
}
