package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deckgenie/content"
	"deckgenie/persona"
)

func TestExportOutline(t *testing.T) {
	b := content.NewBundle()
	b.Metadata.ProductName = "SecureFlow"
	b.Slides[content.SlideTitle] = &content.SlideContent{Title: "[Product Name]", Subtitle: "Security that keeps up"}
	b.Slides[content.SlideProblem] = &content.SlideContent{
		Title:      "The Problem",
		PainPoints: content.Items("Manual reviews slow releases"),
	}
	b.Slides[content.SlideCTA] = &content.SlideContent{
		Title:       "Get Started",
		CTAText:     "Book a demo",
		ContactInfo: "sales@secureflow.example",
	}

	svc := NewOutlineService()
	order := []string{content.SlideTitle, content.SlideProblem, content.SlideCTA}

	data, err := svc.ExportOutline(b, order, persona.Business)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestExportOutlineRejectsEmptyInput(t *testing.T) {
	svc := NewOutlineService()

	_, err := svc.ExportOutline(nil, []string{content.SlideTitle}, persona.Business)
	assert.Error(t, err)

	_, err = svc.ExportOutline(content.NewBundle(), nil, persona.Business)
	assert.Error(t, err)
}

func TestHexRGB(t *testing.T) {
	r, g, b := hexRGB("2F5597")
	assert.Equal(t, []int{0x2F, 0x55, 0x97}, []int{r, g, b})

	r, g, b = hexRGB("bogus!")
	assert.Equal(t, []int{0, 0, 0}, []int{r, g, b})
}
