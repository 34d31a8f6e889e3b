package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"bullet glyph", "• Automated scanning", "Automated scanning"},
		{"star glyph", "* Automated scanning", "Automated scanning"},
		{"trailing punctuation", "Automated scanning.", "Automated scanning"},
		{"collapsed whitespace", "  Automated   scanning \t now ", "Automated scanning now"},
		{"multiple glyphs", "·- Real-time alerts;", "Realtime alerts"},
		{"only glyphs", "•*·-", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.in))
		})
	}
}

func TestComparisonKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Automated Scanning", "automated scanning"},
		{"drops stop words", "the scanning for a network", "scanning network"},
		{"drops punctuation", "real-time, alerts!", "realtime alerts"},
		{"all stop words", "the and or", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComparisonKey(tt.in))
		})
	}
}

func TestComparisonKeyEquivalence(t *testing.T) {
	// Variants that must collide on the same key.
	variants := []string{
		"• Automated vulnerability scanning",
		"Automated vulnerability scanning.",
		"the automated vulnerability scanning",
		"AUTOMATED VULNERABILITY SCANNING",
	}
	want := ComparisonKey(CleanText(variants[0]))
	for _, v := range variants {
		assert.Equal(t, want, ComparisonKey(CleanText(v)), v)
	}
}

func TestComparisonKeyProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.String().Draw(t, "text")
		key := ComparisonKey(text)

		// Key is idempotent and already canonical.
		assert.Equal(t, key, ComparisonKey(key))
		assert.Equal(t, key, strings.ToLower(key))
		assert.NotContains(t, key, "  ")
		for _, w := range strings.Fields(key) {
			_, stop := stopWords[w]
			assert.False(t, stop, "stop word %q survived", w)
		}
	})
}
