package deck

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deckgenie/content"
	"deckgenie/persona"
	"deckgenie/session"
)

func pitchBundle() *content.Bundle {
	b := content.NewBundle()
	b.Metadata = content.Metadata{ProductName: "SecureFlow", CompanyName: "Acme", Persona: persona.Business}
	b.Slides[content.SlideTitle] = &content.SlideContent{Title: "SecureFlow", Subtitle: "Security that keeps up"}
	b.Slides[content.SlideProblem] = &content.SlideContent{
		Title:      "The Problem",
		PainPoints: content.Items("Manual reviews slow releases", "Alert fatigue hides real threats"),
	}
	b.Slides[content.SlideSolution] = &content.SlideContent{
		Title:     "Our Solution",
		Paragraph: "SecureFlow automates security review across the pipeline.",
		Features:  content.Items("Automated scanning", "Real-time alerts"),
	}
	b.Slides[content.SlideCTA] = &content.SlideContent{
		Title:   "Get Started",
		CTAText: "Book a demo",
	}
	return b
}

func TestGenerateProducesDeck(t *testing.T) {
	store := session.NewMemoryStore()
	g := NewGenerator(store, nil, true, nil)

	res, err := g.Generate(context.Background(), pitchBundle(), GenerateOptions{})
	require.NoError(t, err)

	assert.NotEmpty(t, res.Data)
	assert.Equal(t, "SecureFlow_pitch.pptx", res.Filename)
	assert.False(t, res.FromCache)
	// PPTX is a zip archive.
	assert.Equal(t, []byte{'P', 'K'}, res.Data[:2])

	assert.Equal(t, content.SlideTitle, res.SlideOrder[0])
	assert.Equal(t, content.SlideCTA, res.SlideOrder[len(res.SlideOrder)-1])
}

func TestGenerateMergesPersonaDefaults(t *testing.T) {
	g := NewGenerator(nil, nil, false, nil)

	b := content.NewBundle()
	b.Metadata = content.Metadata{ProductName: "SecureFlow"}
	b.Slides[content.SlideTitle] = &content.SlideContent{Title: "SecureFlow"}
	b.Slides[content.SlideCTA] = &content.SlideContent{Title: "Next Steps"}

	res, err := g.Generate(context.Background(), b, GenerateOptions{Persona: persona.Executive})
	require.NoError(t, err)

	// Defaults fill fields of supplied slides but never add new ones.
	assert.Equal(t, []string{content.SlideTitle, content.SlideCTA}, res.SlideOrder)
	assert.NotEmpty(t, b.Slide(content.SlideCTA).CTAText, "cta text filled from persona defaults")
	assert.False(t, b.Has(content.SlideProblem))
	assert.False(t, b.Has(content.SlideSolution))
}

func TestGenerateKeepsDeckToSuppliedSlides(t *testing.T) {
	g := NewGenerator(nil, nil, false, nil)

	b := content.NewBundle()
	b.Metadata = content.Metadata{ProductName: "SecureFlow"}
	b.Slides[content.SlideTitle] = &content.SlideContent{Title: "SecureFlow"}

	res, err := g.Generate(context.Background(), b, GenerateOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{content.SlideTitle}, res.SlideOrder)
}

func TestGenerateCacheReplay(t *testing.T) {
	store := session.NewMemoryStore()
	g := NewGenerator(store, nil, true, nil)

	first, err := g.Generate(context.Background(), pitchBundle(), GenerateOptions{})
	require.NoError(t, err)
	require.False(t, first.FromCache)

	second, err := g.Generate(context.Background(), pitchBundle(), GenerateOptions{})
	require.NoError(t, err)
	assert.True(t, second.FromCache)
	assert.Equal(t, first.Data, second.Data)
	assert.Equal(t, first.Filename, second.Filename)

	// A different persona is a different deck.
	third, err := g.Generate(context.Background(), pitchBundle(), GenerateOptions{Persona: persona.Technical})
	require.NoError(t, err)
	assert.False(t, third.FromCache)
}

func TestGenerateCachingDisabled(t *testing.T) {
	store := session.NewMemoryStore()
	g := NewGenerator(store, nil, false, nil)

	first, err := g.Generate(context.Background(), pitchBundle(), GenerateOptions{})
	require.NoError(t, err)
	second, err := g.Generate(context.Background(), pitchBundle(), GenerateOptions{})
	require.NoError(t, err)
	assert.False(t, second.FromCache)
	assert.NotNil(t, first)
}

func TestGenerateCustomOrder(t *testing.T) {
	g := NewGenerator(nil, nil, false, nil)

	custom := []string{content.SlideCTA, content.SlideTitle, content.SlideProblem}
	res, err := g.Generate(context.Background(), pitchBundle(), GenerateOptions{CustomOrder: custom})
	require.NoError(t, err)
	assert.Equal(t, custom, res.SlideOrder)
}

func TestGenerateTeamSlideFromStore(t *testing.T) {
	store := session.NewMemoryStore()
	require.NoError(t, SaveTeamConfig(store, TeamConfig{
		IncludeTeamSlide: true,
		TeamMembers:      []content.TeamMember{{Name: "Grace Hopper", Title: "VP of Engineering"}},
	}))

	g := NewGenerator(store, nil, true, nil)
	res, err := g.Generate(context.Background(), pitchBundle(), GenerateOptions{})
	require.NoError(t, err)
	assert.Contains(t, res.SlideOrder, content.SlideTeam)
}

func TestGenerateRejectsEmptyBundle(t *testing.T) {
	g := NewGenerator(nil, nil, false, nil)

	_, err := g.Generate(context.Background(), nil, GenerateOptions{})
	require.Error(t, err)
	var se *ServiceError
	assert.ErrorAs(t, err, &se)

	_, err = g.Generate(context.Background(), content.NewBundle(), GenerateOptions{})
	assert.Error(t, err)
}

func TestDefaultFilename(t *testing.T) {
	assert.Equal(t, "sales_pitch.pptx", defaultFilename(content.NewBundle()))

	b := content.NewBundle()
	b.Metadata.ProductName = "Secure Flow 2.0"
	assert.Equal(t, "Secure_Flow_20_pitch.pptx", defaultFilename(b))
}
