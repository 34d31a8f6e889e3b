package content

import "fmt"

// MergeDefaults completes a bundle against persona defaults: for every slide
// type the bundle already carries, generated content wins field-by-field and
// list fields keep generated entries first with default entries appended when
// not already present verbatim. Default slide types absent from the bundle
// are never added, so the deck stays the size the caller asked for. A nil
// slide entry (a slide that failed upstream) reverts to the full default.
// Slides the defaults do not know about pass through untouched. log may be
// nil.
func MergeDefaults(bundle *Bundle, defaults map[string]*SlideContent, log func(string)) {
	if bundle == nil || bundle.Slides == nil {
		return
	}
	logf := func(format string, args ...interface{}) {
		if log != nil {
			log(fmt.Sprintf(format, args...))
		}
	}

	for slideType, def := range defaults {
		if def == nil {
			continue
		}
		got, ok := bundle.Slides[slideType]
		if !ok {
			continue
		}
		if got == nil {
			logf("merge: %s has no usable content, using defaults", slideType)
			bundle.Slides[slideType] = def.Clone()
			continue
		}
		mergeSlide(got, def)
	}
}

// mergeSlide fills empty scalar fields and extends list fields in place.
func mergeSlide(dst, def *SlideContent) {
	fillString(&dst.Title, def.Title)
	fillString(&dst.Subtitle, def.Subtitle)
	fillString(&dst.Paragraph, def.Paragraph)
	fillString(&dst.Description, def.Description)
	fillString(&dst.ValueProposition, def.ValueProposition)
	fillString(&dst.Content, def.Content)
	fillString(&dst.CTAText, def.CTAText)
	fillString(&dst.ContactInfo, def.ContactInfo)
	fillString(&dst.MarketSize, def.MarketSize)
	fillString(&dst.GrowthRate, def.GrowthRate)

	dst.Bullets = mergeItems(dst.Bullets, def.Bullets)
	dst.PainPoints = mergeItems(dst.PainPoints, def.PainPoints)
	dst.Differentiators = mergeItems(dst.Differentiators, def.Differentiators)
	dst.Advantages = mergeItems(dst.Advantages, def.Advantages)
	dst.Features = mergeItems(dst.Features, def.Features)

	if len(dst.Phases) == 0 {
		dst.Phases = append([]Phase(nil), def.Phases...)
	}
	if len(dst.TeamMembers) == 0 {
		dst.TeamMembers = append([]TeamMember(nil), def.TeamMembers...)
	}
}

func fillString(dst *string, def string) {
	if *dst == "" {
		*dst = def
	}
}

// mergeItems keeps generated entries in order and appends default entries
// whose text is not already present verbatim. Semantic near-duplicates are
// left for the deduplicator, which runs later with the full ruleset.
func mergeItems(got, def []Item) []Item {
	if len(def) == 0 {
		return got
	}
	seen := make(map[string]struct{}, len(got))
	for _, it := range got {
		seen[it.Text] = struct{}{}
	}
	for _, it := range def {
		if _, dup := seen[it.Text]; dup {
			continue
		}
		seen[it.Text] = struct{}{}
		got = append(got, it)
	}
	return got
}
