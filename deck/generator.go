package deck

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	ppt "github.com/VantageDataChat/GoPPT"
	"github.com/google/uuid"

	"deckgenie/content"
	"deckgenie/images"
	"deckgenie/persona"
	"deckgenie/session"
)

// deckCachePrefix namespaces finished decks in the session store.
const deckCachePrefix = "ppt_cache/"

// imageProvider is what the generator needs from an image manager.
type imageProvider interface {
	Acquire(ctx context.Context, slideType string, bundle *content.Bundle, searchTerms []string, freshContent bool) []byte
	Reset()
}

// cachedDeck is the stored form of one generated deck.
type cachedDeck struct {
	Data     string `json:"data"` // base64 PPTX bytes
	Filename string `json:"filename"`
}

// GenerateOptions tunes one generation run.
type GenerateOptions struct {
	// Persona overrides the persona named in the bundle metadata.
	Persona string
	// CustomOrder, when set, replaces the planned slide order outright.
	CustomOrder []string
	// Filename names the deck; empty selects a product-based default.
	Filename string
	// FreshContent marks the bundle as newly generated, which lets the
	// image layer fetch new photos instead of replaying its cache.
	FreshContent bool
	// Team, when non-nil, overrides the roster stored in the session.
	Team *TeamConfig
}

// Result is one generated deck.
type Result struct {
	Data       []byte
	Filename   string
	SlideOrder []string
	FromCache  bool
}

// Generator assembles PPTX decks from content bundles.
type Generator struct {
	store        session.Store
	images       imageProvider
	log          func(string)
	cacheResults bool
}

// NewGenerator builds a generator. store and imgs may be nil; caching and
// images degrade gracefully. log may be nil.
func NewGenerator(store session.Store, imgs *images.Manager, cacheResults bool, log func(string)) *Generator {
	g := &Generator{store: store, log: log, cacheResults: cacheResults}
	if imgs != nil {
		g.images = imgs
	}
	return g
}

func (g *Generator) logf(format string, args ...interface{}) {
	if g.log != nil {
		g.log(fmt.Sprintf(format, args...))
	}
}

// Generate renders a deck from a bundle. Identical inputs replay the cached
// deck; otherwise persona defaults are merged in, the slide order planned,
// every slide rendered, and the result cached.
func (g *Generator) Generate(ctx context.Context, bundle *content.Bundle, opts GenerateOptions) (*Result, error) {
	if bundle == nil || len(bundle.Slides) == 0 {
		return nil, WrapError("deck", "Generate", errors.New("empty content bundle"))
	}

	runID := uuid.NewString()
	g.logf("Deck generation run %s started", runID)

	personaName := opts.Persona
	if personaName == "" {
		personaName = bundle.Metadata.Persona
	}
	personaName = persona.Normalize(personaName)

	var team TeamConfig
	if opts.Team != nil {
		team = *opts.Team
	} else {
		loaded, err := LoadTeamConfig(g.store)
		if err != nil {
			g.logf("Team config unavailable, skipping team slide: %v", err)
		}
		team = loaded
	}

	filename := opts.Filename
	if filename == "" {
		filename = defaultFilename(bundle)
	}

	cacheKey, keyErr := g.cacheKey(bundle, personaName, team, opts.CustomOrder, filename)
	if keyErr == nil {
		if cached, ok := g.cachedDeck(cacheKey); ok {
			g.logf("Returning cached presentation for key %s", cacheKey)
			return &Result{Data: cached.data, Filename: cached.filename, FromCache: true}, nil
		}
	}

	content.MergeDefaults(bundle, persona.DefaultContent(personaName), g.log)
	g.injectTeamSlide(bundle, team)

	order := PlanSlides(bundle, personaName, team, opts.CustomOrder)
	if len(order) == 0 {
		return nil, WrapError("deck", "Generate", errors.New("no slides to render"))
	}
	g.logf("Slide order (%s): %v", personaName, order)

	p := ppt.New()
	p.GetDocumentProperties().Title = deckTitle(bundle)
	p.GetDocumentProperties().Creator = "DeckGenie"

	if g.images != nil {
		g.images.Reset()
	}
	b := newSlideBuilder(p, persona.StyleFor(personaName), bundle.ProductName())

	for _, slideType := range order {
		if !bundle.Has(slideType) && slideType != content.SlideTeam {
			g.logf("Skipping %s: no content", slideType)
			continue
		}
		if err := g.buildSlide(ctx, b, bundle, team, slideType, opts.FreshContent); err != nil {
			if slideType == content.SlideTeam {
				g.logf("Team slide failed, skipping: %v", err)
				continue
			}
			g.logf("Slide %s failed, rendering fallback: %v", slideType, err)
			b.buildFallbackSlide(fallbackTitle(slideType), safeSlide(bundle, slideType))
		}
	}

	w, err := ppt.NewWriter(p, ppt.WriterPowerPoint2007)
	if err != nil {
		return nil, WrapError("deck", "Generate", fmt.Errorf("create PPT writer: %w", err))
	}
	var buf bytes.Buffer
	if err := w.(*ppt.PPTXWriter).WriteTo(&buf); err != nil {
		return nil, WrapError("deck", "Generate", fmt.Errorf("save PPT: %w", err))
	}

	data := buf.Bytes()
	if keyErr == nil {
		g.storeDeck(cacheKey, data, filename)
	}
	g.logf("Deck generation run %s finished: %d slides, %d bytes", runID, len(order), len(data))

	return &Result{Data: data, Filename: filename, SlideOrder: order}, nil
}

// buildSlide dispatches to the slide's builder, converting builder panics
// (malformed content reaching the drawing layer) into errors.
func (g *Generator) buildSlide(ctx context.Context, b *slideBuilder, bundle *content.Bundle, team TeamConfig, slideType string, fresh bool) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = WrapError("deck", "buildSlide", fmt.Errorf("%s: %v", slideType, r))
		}
	}()

	c := safeSlide(bundle, slideType)

	switch slideType {
	case content.SlideTitle:
		b.buildTitleSlide(c)
	case content.SlideProblem:
		b.buildProblemSlide(c, g.imageFor(ctx, slideType, bundle, c, fresh))
	case content.SlideSolution:
		b.buildSolutionSlide(c, g.imageFor(ctx, slideType, bundle, c, fresh))
	case content.SlideFeatures:
		b.buildFeaturesSlide(c)
	case content.SlideAdvantage:
		b.buildAdvantageSlide(c, g.imageFor(ctx, slideType, bundle, c, fresh))
	case content.SlideAudience:
		b.buildAudienceSlide(c, g.imageFor(ctx, slideType, bundle, c, fresh))
	case content.SlideMarket:
		b.buildMarketSlide(c, g.imageFor(ctx, slideType, bundle, c, fresh))
	case content.SlideRoadmap:
		b.buildRoadmapSlide(c, g.imageFor(ctx, slideType, bundle, c, fresh))
	case content.SlideTeam:
		members := team.TeamMembers
		if len(members) == 0 {
			members = c.TeamMembers
		}
		if len(members) == 0 {
			return errors.New("no team members")
		}
		b.buildTeamSlide(c, members, g.imageFor(ctx, slideType, bundle, c, fresh))
	case content.SlideCTA:
		b.buildCTASlide(c)
	default:
		b.buildFallbackSlide(fallbackTitle(slideType), c)
	}
	return nil
}

func (g *Generator) imageFor(ctx context.Context, slideType string, bundle *content.Bundle, c *content.SlideContent, fresh bool) []byte {
	if g.images == nil {
		return nil
	}
	return g.images.Acquire(ctx, slideType, bundle, c.SearchTerms, fresh)
}

// injectTeamSlide makes the roster available as slide content so the
// builder and planner see one consistent record.
func (g *Generator) injectTeamSlide(bundle *content.Bundle, team TeamConfig) {
	if !team.ShouldRender() {
		return
	}
	c := bundle.Slides[content.SlideTeam]
	if c == nil {
		c = &content.SlideContent{Title: "Our Team"}
		bundle.Slides[content.SlideTeam] = c
	}
	if len(c.TeamMembers) == 0 {
		c.TeamMembers = append([]content.TeamMember(nil), team.TeamMembers...)
	}
}

// cacheKey hashes everything that shapes the output, so any change in
// content, order, persona, roster, or name produces a new deck.
func (g *Generator) cacheKey(bundle *content.Bundle, personaName string, team TeamConfig, customOrder []string, filename string) (string, error) {
	payload := map[string]interface{}{
		"content":            bundle,
		"custom_slide_order": customOrder,
		"filename":           filename,
		"persona":            personaName,
		"team_config":        team,
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	sum := md5.Sum(raw)
	return hex.EncodeToString(sum[:]), nil
}

type deckRecord struct {
	data     []byte
	filename string
}

func (g *Generator) cachedDeck(key string) (deckRecord, bool) {
	if g.store == nil || !g.cacheResults {
		return deckRecord{}, false
	}
	var rec cachedDeck
	err := g.store.Get(deckCachePrefix+key, &rec)
	if errors.Is(err, session.ErrNotFound) {
		return deckRecord{}, false
	}
	if err != nil {
		g.logf("Deck cache read failed: %v", err)
		return deckRecord{}, false
	}
	data, err := base64.StdEncoding.DecodeString(rec.Data)
	if err != nil || len(data) == 0 {
		return deckRecord{}, false
	}
	return deckRecord{data: data, filename: rec.Filename}, true
}

func (g *Generator) storeDeck(key string, data []byte, filename string) {
	if g.store == nil || !g.cacheResults {
		return
	}
	rec := cachedDeck{Data: base64.StdEncoding.EncodeToString(data), Filename: filename}
	if err := g.store.Set(deckCachePrefix+key, rec); err != nil {
		g.logf("Deck cache write failed: %v", err)
	}
}

func safeSlide(bundle *content.Bundle, slideType string) *content.SlideContent {
	if c := bundle.Slide(slideType); c != nil {
		return c
	}
	return &content.SlideContent{}
}

func deckTitle(bundle *content.Bundle) string {
	if c := bundle.Slide(content.SlideTitle); c != nil && c.Title != "" {
		return content.ReplaceProductName(c.Title, bundle.ProductName())
	}
	if p := bundle.ProductName(); p != "" {
		return p + " Sales Pitch"
	}
	return "Sales Pitch"
}

func defaultFilename(bundle *content.Bundle) string {
	if p := bundle.ProductName(); p != "" {
		return sanitizeFilename(p) + "_pitch.pptx"
	}
	return "sales_pitch.pptx"
}

func sanitizeFilename(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			out = append(out, r)
		case r == ' ', r == '-', r == '_':
			out = append(out, '_')
		}
	}
	if len(out) == 0 {
		return "deck"
	}
	return string(out)
}

// fallbackTitle turns a slide type key into a presentable heading.
func fallbackTitle(slideType string) string {
	switch slideType {
	case content.SlideTitle:
		return "Presentation"
	case content.SlideProblem:
		return "Problem Statement"
	case content.SlideSolution:
		return "Our Solution"
	case content.SlideFeatures:
		return "Key Features"
	case content.SlideAdvantage:
		return "Our Advantage"
	case content.SlideAudience:
		return "Target Audience"
	case content.SlideMarket:
		return "Market Opportunity"
	case content.SlideRoadmap:
		return "Product Roadmap"
	case content.SlideTeam:
		return "Our Team"
	case content.SlideCTA:
		return "Next Steps"
	}
	return "Slide"
}
