package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	t.Run("short advantage content is padded", func(t *testing.T) {
		got := Expand("Faster deployments", TypeAdvantage, "")
		assert.GreaterOrEqual(t, len(got), 200)
		assert.True(t, strings.HasPrefix(got, "Faster deployments."))
	})

	t.Run("cta uses the shorter threshold", func(t *testing.T) {
		got := Expand("Contact us", TypeCTA, "")
		assert.GreaterOrEqual(t, len(got), 100)
		assert.Less(t, len(got), 200)
	})

	t.Run("long content passes through", func(t *testing.T) {
		long := strings.Repeat("Substantial existing narrative. ", 10)
		got := Expand(long, TypeAdvantage, "")
		assert.Equal(t, strings.TrimSpace(long), got)
	})

	t.Run("unknown type passes through", func(t *testing.T) {
		assert.Equal(t, "As is", Expand("As is", "unknown", ""))
	})

	t.Run("substitutes product name", func(t *testing.T) {
		got := Expand("[Product Name] wins", TypeAdvantage, "SecureFlow")
		assert.True(t, strings.HasPrefix(got, "SecureFlow wins."))
	})

	t.Run("deterministic", func(t *testing.T) {
		a := Expand("Faster deployments", TypeAdvantage, "")
		b := Expand("Faster deployments", TypeAdvantage, "")
		assert.Equal(t, a, b)
	})
}

func TestExpandIntelligently(t *testing.T) {
	t.Run("empty stays empty", func(t *testing.T) {
		assert.Equal(t, "", ExpandIntelligently("", TypeProblem))
	})

	t.Run("pads toward the long threshold", func(t *testing.T) {
		got := ExpandIntelligently("Breaches keep happening", TypeProblem)
		assert.True(t, strings.HasPrefix(got, "Breaches keep happening."))
		for _, sentence := range intelligentExpansions[TypeProblem] {
			assert.Contains(t, got, sentence)
		}
	})

	t.Run("unknown type falls back to solution sentences", func(t *testing.T) {
		got := ExpandIntelligently("Something short", "mystery")
		assert.Contains(t, got, intelligentExpansions[TypeSolution][0])
	})
}

func TestDetectContentType(t *testing.T) {
	tests := []struct {
		name    string
		bullets []string
		want    string
	}{
		{"market", []string{"Huge market opportunity ahead"}, TypeMarket},
		{"solution", []string{"Platform handles everything"}, TypeSolution},
		{"challenge", []string{"Teams face mounting pressure"}, TypeChallenge},
		{"general", []string{"Something else entirely"}, TypeGeneral},
		{"empty", nil, TypeGeneral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectContentType(tt.bullets))
		})
	}
}

func TestFillBullets(t *testing.T) {
	t.Run("pads up to minimum", func(t *testing.T) {
		got := FillBullets([]string{"Huge market opportunity"}, 4)
		require.Len(t, got, 4)
		assert.Equal(t, "Huge market opportunity", got[0])
		// Synthesized entries come from the market candidates, in order.
		assert.Equal(t, additionalBullets[TypeMarket][0], got[1])
	})

	t.Run("full list untouched", func(t *testing.T) {
		in := []string{"a one", "b two", "c three", "d four"}
		assert.Equal(t, in, FillBullets(in, 4))
	})

	t.Run("skips candidates already present", func(t *testing.T) {
		seeded := []string{"the " + additionalBullets[TypeChallenge][0]}
		got := FillBullets(seeded, 3)
		require.Len(t, got, 3)
		assert.Equal(t, additionalBullets[TypeChallenge][1], got[1])
	})

	t.Run("stops when candidates run out", func(t *testing.T) {
		got := FillBullets([]string{"plain entry"}, 50)
		assert.Len(t, got, 1+len(additionalBullets[TypeGeneral]))
	})
}
