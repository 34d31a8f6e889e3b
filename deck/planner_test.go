package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"deckgenie/content"
	"deckgenie/persona"
)

func fullBundle(slideTypes ...string) *content.Bundle {
	b := content.NewBundle()
	for _, st := range slideTypes {
		b.Slides[st] = &content.SlideContent{Title: st}
	}
	return b
}

func TestPlanSlides(t *testing.T) {
	allTypes := []string{
		content.SlideTitle, content.SlideProblem, content.SlideSolution,
		content.SlideFeatures, content.SlideAdvantage, content.SlideAudience,
		content.SlideMarket, content.SlideRoadmap, content.SlideCTA,
	}

	t.Run("business order", func(t *testing.T) {
		order := PlanSlides(fullBundle(allTypes...), persona.Business, TeamConfig{}, nil)
		assert.Equal(t, []string{
			content.SlideTitle, content.SlideProblem, content.SlideSolution,
			content.SlideFeatures, content.SlideAdvantage, content.SlideAudience,
			content.SlideMarket, content.SlideRoadmap, content.SlideCTA,
		}, order)
	})

	t.Run("executive leads with market before solution", func(t *testing.T) {
		order := PlanSlides(fullBundle(allTypes...), persona.Executive, TeamConfig{}, nil)
		assert.Equal(t, []string{
			content.SlideTitle, content.SlideProblem, content.SlideMarket,
			content.SlideSolution, content.SlideAdvantage, content.SlideFeatures,
			content.SlideAudience, content.SlideRoadmap, content.SlideCTA,
		}, order)
	})

	t.Run("technical includes advantage in core", func(t *testing.T) {
		order := PlanSlides(fullBundle(allTypes...), persona.Technical, TeamConfig{}, nil)
		assert.Equal(t, []string{
			content.SlideTitle, content.SlideProblem, content.SlideSolution,
			content.SlideFeatures, content.SlideAdvantage, content.SlideRoadmap,
			content.SlideAudience, content.SlideMarket, content.SlideCTA,
		}, order)
	})

	t.Run("absent content drops out of the order", func(t *testing.T) {
		order := PlanSlides(fullBundle(content.SlideTitle, content.SlideProblem), persona.Business, TeamConfig{}, nil)
		assert.Equal(t, []string{content.SlideTitle, content.SlideProblem}, order)
	})

	t.Run("unknown persona uses business groups", func(t *testing.T) {
		order := PlanSlides(fullBundle(content.SlideTitle, content.SlideMarket), "chaotic", TeamConfig{}, nil)
		assert.Equal(t, []string{content.SlideTitle, content.SlideMarket}, order)
	})

	t.Run("custom order wins outright", func(t *testing.T) {
		custom := []string{content.SlideCTA, content.SlideTitle}
		order := PlanSlides(fullBundle(allTypes...), persona.Business, TeamConfig{IncludeTeamSlide: true}, custom)
		assert.Equal(t, custom, order)
	})

	t.Run("cta always closes the deck", func(t *testing.T) {
		order := PlanSlides(fullBundle(content.SlideTitle, content.SlideCTA, content.SlideRoadmap), persona.Business, TeamConfig{}, nil)
		assert.Equal(t, content.SlideCTA, order[len(order)-1])
	})

	t.Run("team slide appended on an eligible roster", func(t *testing.T) {
		team := TeamConfig{
			IncludeTeamSlide: true,
			TeamMembers:      []content.TeamMember{{Name: "Ada Lovelace", Title: "Head of Engineering"}},
		}
		order := PlanSlides(fullBundle(content.SlideTitle, content.SlideCTA), persona.Business, team, nil)
		assert.Equal(t, []string{content.SlideTitle, content.SlideTeam, content.SlideCTA}, order)
	})
}
