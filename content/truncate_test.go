package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		maxChars int
		maxWords int
		want     string
	}{
		{
			name:     "short text passes through with period",
			in:       "Real-time alerts",
			maxChars: 100, maxWords: 20,
			want: "Real-time alerts.",
		},
		{
			name:     "word cut then space cut",
			in:       "This is a great solution for your business needs today.",
			maxChars: 20, maxWords: 5,
			want: "This is a great.",
		},
		{
			name:     "sentence boundary preferred inside window",
			in:       "First point. Second point continues on and on beyond the limit",
			maxChars: 20, maxWords: 20,
			want: "First point.",
		},
		{
			name:     "hard cut when no space in window",
			in:       "Supercalifragilisticexpialidocious",
			maxChars: 10, maxWords: 20,
			want: "Supercalif.",
		},
		{
			name:     "empty",
			in:       "",
			maxChars: 10, maxWords: 5,
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.in, tt.maxChars, tt.maxWords))
		})
	}
}

func TestTruncateDefaults(t *testing.T) {
	long := strings.Repeat("word ", 30)
	got := Truncate(long, 0, 0)
	assert.LessOrEqual(t, len(strings.Fields(got)), DefaultMaxWords)
}

func TestTruncateIdempotent(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		maxChars int
		maxWords int
	}{
		{"pass-through", "Automated scanning keeps releases safe", 100, 20},
		{"word cut", strings.Repeat("alpha review cadence ", 15), 100, 20},
		{"space cut inside window", "This is a great solution for your business needs today", 20, 5},
		{"already terminated", "What a great result!", 100, 20},
		{"tight char budget", "Short and plain words only here", 18, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			once := Truncate(tt.in, tt.maxChars, tt.maxWords)
			twice := Truncate(once, tt.maxChars, tt.maxWords)
			assert.Equal(t, once, twice)
		})
	}
}

func TestCompleteSentence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"already terminated", "Done!", "Done!"},
		{"appends period", "Streamlined workflows", "Streamlined workflows."},
		{"only punctuation", "...", "."},
		{"repairs known prefix", "Eliminate all manua", "Eliminate all manual processes."},
		{"repairs security prefix", "Improve your secur", "Improve your security measures."},
		{"complete word left alone", "Improve efficiency", "Improve efficiency."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompleteSentence(tt.in))
		})
	}
}

func TestTruncateProperties(t *testing.T) {
	terminators := ".!?"
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringMatching(`[A-Za-z0-9 .!?]{0,200}`).Draw(t, "text")
		maxChars := rapid.IntRange(1, 150).Draw(t, "maxChars")
		maxWords := rapid.IntRange(1, 40).Draw(t, "maxWords")

		got := Truncate(text, maxChars, maxWords)
		if strings.TrimSpace(text) == "" {
			return
		}
		if got == "" {
			// Input with content always yields a terminated sentence.
			t.Fatalf("empty output for %q", text)
		}
		last := got[len(got)-1]
		assert.True(t, strings.ContainsRune(terminators, rune(last)),
			"output %q does not end in a sentence terminator", got)

		// Truncation never runs unbounded: the only growth past maxChars
		// comes from the completion repair table.
		assert.LessOrEqual(t, len([]rune(got)), maxChars+len("vulnerability management."))
	})
}
