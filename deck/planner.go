package deck

import (
	"deckgenie/content"
	"deckgenie/persona"
)

// slideGroups orders a persona's deck: core slides carry the pitch,
// supporting slides reinforce it, optional slides appear when content
// exists for them.
type slideGroups struct {
	core       []string
	supporting []string
	optional   []string
}

var personaSlideGroups = map[string]slideGroups{
	persona.Business: {
		core:       []string{content.SlideTitle, content.SlideProblem, content.SlideSolution, content.SlideFeatures},
		supporting: []string{content.SlideAdvantage, content.SlideAudience},
		optional:   []string{content.SlideMarket, content.SlideRoadmap},
	},
	persona.Technical: {
		core:       []string{content.SlideTitle, content.SlideProblem, content.SlideSolution, content.SlideFeatures, content.SlideAdvantage},
		supporting: []string{content.SlideRoadmap, content.SlideAudience},
		optional:   []string{content.SlideMarket},
	},
	persona.Executive: {
		core:       []string{content.SlideTitle, content.SlideProblem, content.SlideMarket, content.SlideSolution, content.SlideAdvantage},
		supporting: []string{content.SlideFeatures, content.SlideAudience},
		optional:   []string{content.SlideRoadmap},
	},
}

// PlanSlides decides the slide order for a deck. A non-empty customOrder
// wins outright; otherwise the persona's groups are walked in order,
// keeping only slide types the bundle has content for. The team slide
// renders only when the team config allows it, and the call to action
// always closes the deck.
func PlanSlides(bundle *content.Bundle, personaName string, team TeamConfig, customOrder []string) []string {
	if len(customOrder) > 0 {
		return append([]string(nil), customOrder...)
	}

	groups := personaSlideGroups[persona.Normalize(personaName)]

	var order []string
	for _, group := range [][]string{groups.core, groups.supporting, groups.optional} {
		for _, slideType := range group {
			if bundle.Has(slideType) {
				order = append(order, slideType)
			}
		}
	}

	if team.ShouldRender() {
		order = append(order, content.SlideTeam)
	}

	if bundle.Has(content.SlideCTA) && !containsString(order, content.SlideCTA) {
		order = append(order, content.SlideCTA)
	}
	return order
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
