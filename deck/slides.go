package deck

import (
	"fmt"
	"net/http"
	"strings"

	ppt "github.com/VantageDataChat/GoPPT"

	"deckgenie/content"
	"deckgenie/persona"
)

// Slide layout constants, 16:9 widescreen.
const (
	emuPerInch = 914400

	slideWidth  = int64(10.0 * emuPerInch)
	slideHeight = int64(5.625 * emuPerInch)

	marginLeft = int64(0.375 * emuPerInch)

	// Header band and the Y where slide content starts below it.
	headerTitleY  = int64(0.15 * emuPerInch)
	contentStartY = int64(0.6 * emuPerInch)

	// Left text column and right image panel.
	textColumnWidth = int64(5.1 * emuPerInch)
	imagePanelX     = int64(5.85 * emuPerInch)
	imagePanelW     = int64(3.375 * emuPerInch)
	imagePanelH     = int64(3.0 * emuPerInch)

	fullContentWidth = int64(9.25 * emuPerInch)
)

// helper: create a solid fill
func solidFill(argbColor string) *ppt.Fill {
	return ppt.NewFill().SetSolid(ppt.NewColor(argbColor))
}

// helper: set paragraph alignment to center
func alignCenter(p *ppt.Paragraph) {
	p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
}

// argb prefixes an RRGGBB persona color with full opacity.
func argb(rgb string) string {
	return "FF" + rgb
}

func inches(v float64) int64 {
	return int64(v * emuPerInch)
}

// slideIcons are the fallback glyphs shown when a slide has no image.
var slideIcons = map[string]string{
	content.SlideTitle:     "📊",
	content.SlideProblem:   "⚠",
	content.SlideSolution:  "💡",
	content.SlideFeatures:  "⚙",
	content.SlideAdvantage: "🏆",
	content.SlideAudience:  "🎯",
	content.SlideMarket:    "📈",
	content.SlideRoadmap:   "🗺",
	content.SlideTeam:      "🤝",
	content.SlideCTA:       "🚀",
}

func slideIcon(slideType string) string {
	if icon, ok := slideIcons[slideType]; ok {
		return icon
	}
	return "📊"
}

// featureIcons map feature vocabulary to a list glyph.
var featureIcons = []struct {
	keyword string
	icon    string
}{
	{"secur", "🔒"},
	{"monitor", "📊"},
	{"analyt", "📊"},
	{"integrat", "🔗"},
	{"automat", "⚙"},
	{"real-time", "⚡"},
	{"speed", "⚡"},
	{"cloud", "☁"},
	{"report", "📄"},
	{"dashboard", "📊"},
}

func matchFeatureIcon(text string) string {
	lower := strings.ToLower(text)
	for _, fi := range featureIcons {
		if strings.Contains(lower, fi.keyword) {
			return fi.icon
		}
	}
	return "✔"
}

// slideBuilder renders one deck into a GoPPT presentation.
type slideBuilder struct {
	p         *ppt.Presentation
	style     persona.Style
	product   string
	usedFirst bool
}

func newSlideBuilder(p *ppt.Presentation, style persona.Style, product string) *slideBuilder {
	return &slideBuilder{p: p, style: style, product: product}
}

// nextSlide hands out the presentation's initial slide first, then appends.
func (b *slideBuilder) nextSlide() *ppt.Slide {
	if !b.usedFirst {
		b.usedFirst = true
		return b.p.GetActiveSlide()
	}
	return b.p.CreateSlide()
}

func (b *slideBuilder) cleanTitle(title, fallback string) string {
	t := content.StripMarkup(content.ReplaceProductName(title, b.product))
	t = strings.Join(strings.Fields(t), " ")
	if t == "" {
		return fallback
	}
	return t
}

// sectionHeader draws the slide title and accent line that content slides
// share, leaving content to start at contentStartY.
func (b *slideBuilder) sectionHeader(slide *ppt.Slide, title string) {
	titleShape := slide.CreateRichTextShape()
	titleShape.SetOffsetX(marginLeft).SetOffsetY(headerTitleY)
	titleShape.SetWidth(fullContentWidth).SetHeight(inches(0.45))
	tr := titleShape.CreateTextRun(title)
	tr.GetFont().SetSize(b.style.FontSizes.Heading).SetBold(true).SetColor(ppt.NewColor(argb(b.style.Colors.Primary)))

	line := slide.CreateRichTextShape()
	line.SetOffsetX(marginLeft).SetOffsetY(inches(0.525))
	line.SetWidth(fullContentWidth).SetHeight(inches(0.02))
	line.SetFill(solidFill(argb(b.style.Colors.Accent)))
}

// bulletColumn renders a bullet list into the left text column.
func (b *slideBuilder) bulletColumn(slide *ppt.Slide, bullets []string, y int64, height int64) {
	if len(bullets) == 0 {
		return
	}
	box := slide.CreateRichTextShape()
	box.SetOffsetX(marginLeft).SetOffsetY(y)
	box.SetWidth(textColumnWidth).SetHeight(height)

	for i, text := range bullets {
		if i > 0 {
			box.CreateParagraph()
		}
		tr := box.CreateTextRun("• " + text)
		tr.GetFont().SetSize(b.style.FontSizes.Bullet).SetColor(ppt.NewColor(argb(b.style.Colors.Bullet)))
	}
}

// imagePanel places the slide photo on the right, or a large icon when the
// deck has no image for this slide.
func (b *slideBuilder) imagePanel(slide *ppt.Slide, slideType string, imageData []byte) {
	if len(imageData) > 0 {
		img := slide.CreateDrawingShape()
		img.SetImageData(imageData, imageMIME(imageData))
		img.SetOffsetX(imagePanelX).SetOffsetY(contentStartY + inches(0.15))
		img.SetWidth(imagePanelW).SetHeight(imagePanelH)
		return
	}

	iconShape := slide.CreateRichTextShape()
	iconShape.SetOffsetX(inches(7.125)).SetOffsetY(contentStartY + inches(0.75))
	iconShape.SetWidth(inches(1.5)).SetHeight(inches(1.5))
	tr := iconShape.CreateTextRun(slideIcon(slideType))
	tr.GetFont().SetSize(48).SetColor(ppt.NewColor(argb(b.style.Colors.Primary)))
	alignCenter(iconShape.GetActiveParagraph())
}

// accentMessage draws the italic-style closing line some slides carry at
// the bottom.
func (b *slideBuilder) accentMessage(slide *ppt.Slide, text string) {
	box := slide.CreateRichTextShape()
	box.SetOffsetX(marginLeft).SetOffsetY(slideHeight - inches(0.75))
	box.SetWidth(fullContentWidth).SetHeight(inches(0.375))
	tr := box.CreateTextRun(text)
	tr.GetFont().SetSize(14).SetColor(ppt.NewColor(argb(b.style.Colors.Accent)))
	alignCenter(box.GetActiveParagraph())
}

// prepBullets cleans, deduplicates, pads, bounds, and truncates bullet text
// for the current persona.
func (b *slideBuilder) prepBullets(raw []string, minBullets int) []string {
	bullets := content.DedupeStrings(raw)
	for i, bullet := range bullets {
		bullets[i] = content.ReplaceProductName(bullet, b.product)
	}
	bullets = content.FillBullets(bullets, minBullets)

	limits := b.style.Limits
	if len(bullets) > limits.MaxBullets {
		bullets = bullets[:limits.MaxBullets]
	}
	for i, bullet := range bullets {
		bullets[i] = content.Truncate(bullet, limits.BulletChars, limits.BulletWords)
	}
	return bullets
}

func (b *slideBuilder) buildTitleSlide(c *content.SlideContent) {
	slide := b.nextSlide()

	centeredX := (slideWidth - inches(8.5)) / 2

	titleShape := slide.CreateRichTextShape()
	titleShape.SetOffsetX(centeredX).SetOffsetY(inches(1.5))
	titleShape.SetWidth(inches(8.5)).SetHeight(inches(1.125))
	titleText := b.cleanTitle(c.Title, "Presentation Title")
	tr := titleShape.CreateTextRun(titleText)
	tr.GetFont().SetSize(44).SetBold(true).SetColor(ppt.NewColor(argb(b.style.Colors.Primary)))
	alignCenter(titleShape.GetActiveParagraph())

	if c.Subtitle != "" {
		subShape := slide.CreateRichTextShape()
		subShape.SetOffsetX(inches(0.75)).SetOffsetY(inches(3.0))
		subShape.SetWidth(inches(8.5)).SetHeight(inches(0.6))
		str := subShape.CreateTextRun(content.ReplaceProductName(c.Subtitle, b.product))
		str.GetFont().SetSize(28).SetColor(ppt.NewColor(argb(b.style.Colors.Secondary)))
		alignCenter(subShape.GetActiveParagraph())
	}

	line := slide.CreateRichTextShape()
	line.SetOffsetX(inches(1.5)).SetOffsetY(inches(3.75))
	line.SetWidth(inches(7.0)).SetHeight(inches(0.04))
	line.SetFill(solidFill(argb(b.style.Colors.Accent)))
}

func (b *slideBuilder) buildProblemSlide(c *content.SlideContent, imageData []byte) {
	slide := b.nextSlide()
	b.sectionHeader(slide, b.cleanTitle(c.Title, "Problem Statement"))

	var raw []string
	raw = append(raw, stripAll(content.Texts(c.PainPoints))...)
	raw = append(raw, stripAll(content.Texts(c.Bullets))...)
	raw = append(raw, stripAll(content.Texts(c.Differentiators))...)

	bullets := b.prepBullets(raw, 4)
	b.bulletColumn(slide, bullets, contentStartY+inches(0.225), inches(2.85))
	b.imagePanel(slide, content.SlideProblem, imageData)
}

func (b *slideBuilder) buildSolutionSlide(c *content.SlideContent, imageData []byte) {
	slide := b.nextSlide()
	b.sectionHeader(slide, b.cleanTitle(c.Title, "Our Solution"))

	body := content.StripMarkup(content.ReplaceProductName(c.BodyText(), b.product))
	body = content.ExpandIntelligently(body, content.TypeSolution)
	body = content.Truncate(body, b.style.Limits.ParagraphChars, b.style.Limits.ParagraphWords)

	bodyShape := slide.CreateRichTextShape()
	bodyShape.SetOffsetX(marginLeft).SetOffsetY(contentStartY + inches(0.15))
	bodyShape.SetWidth(textColumnWidth).SetHeight(inches(0.9))
	tr := bodyShape.CreateTextRun(body)
	tr.GetFont().SetSize(b.style.FontSizes.Body).SetColor(ppt.NewColor(argb(b.style.Colors.Text)))

	// Feature list under a small heading.
	featureShape := slide.CreateRichTextShape()
	featureShape.SetOffsetX(marginLeft).SetOffsetY(contentStartY + inches(1.35))
	featureShape.SetWidth(textColumnWidth).SetHeight(inches(2.4))
	hdr := featureShape.CreateTextRun("Key Solution Features")
	hdr.GetFont().SetSize(b.style.FontSizes.Heading).SetColor(ppt.NewColor(argb(b.style.Colors.Primary)))

	features := b.prepBullets(content.Texts(c.Features), 0)
	for _, feature := range features {
		featureShape.CreateParagraph()
		ftr := featureShape.CreateTextRun("• " + feature)
		ftr.GetFont().SetSize(b.style.FontSizes.Bullet).SetColor(ppt.NewColor(argb(b.style.Colors.Text)))
	}

	b.imagePanel(slide, content.SlideSolution, imageData)
}

func (b *slideBuilder) buildFeaturesSlide(c *content.SlideContent) {
	slide := b.nextSlide()
	b.sectionHeader(slide, b.cleanTitle(c.Title, "Key Features"))

	features := content.DedupeItems(c.Features, b.product)
	if len(features) > 5 {
		features = features[:5]
	}

	rowHeight := 1.125
	if len(features) > 3 {
		rowHeight = 0.9
	}

	topStart := 1.275
	for i, feature := range features {
		text := content.Truncate(feature.Text, 100, 20)
		y := inches(topStart + float64(i)*rowHeight)

		iconShape := slide.CreateRichTextShape()
		iconShape.SetOffsetX(inches(0.75)).SetOffsetY(y)
		iconShape.SetWidth(inches(0.6)).SetHeight(inches(rowHeight))
		itr := iconShape.CreateTextRun(matchFeatureIcon(text))
		itr.GetFont().SetSize(24).SetBold(true).SetColor(ppt.NewColor(argb(b.style.Colors.Primary)))
		alignCenter(iconShape.GetActiveParagraph())

		textShape := slide.CreateRichTextShape()
		textShape.SetOffsetX(inches(1.575)).SetOffsetY(y)
		textShape.SetWidth(inches(8.0)).SetHeight(inches(rowHeight))
		ttr := textShape.CreateTextRun(text)
		ttr.GetFont().SetSize(20).SetColor(ppt.NewColor(argb(b.style.Colors.Text)))
	}
}

func (b *slideBuilder) buildAdvantageSlide(c *content.SlideContent, imageData []byte) {
	slide := b.nextSlide()
	b.sectionHeader(slide, b.cleanTitle(c.Title, "Our Advantage"))

	var raw []string
	switch {
	case len(c.Differentiators) > 0:
		raw = content.Texts(c.Differentiators)
	case len(c.Bullets) > 0:
		raw = content.Texts(c.Bullets)
	case len(c.Advantages) > 0:
		raw = content.Texts(c.Advantages)
	}
	raw = append(raw,
		"Industry-leading innovation and technology",
		"Proven track record of success",
		"Comprehensive support and resources",
	)

	bullets := b.prepBullets(stripAll(raw), 0)
	b.bulletColumn(slide, bullets, contentStartY+inches(0.15), inches(3.375))
	b.imagePanel(slide, content.SlideAdvantage, imageData)
	b.accentMessage(slide, "Partner with us to transform your business today.")
}

// audienceSegments are the standing segment bullets on the audience slide.
var audienceSegments = []string{
	"Key decision-makers in enterprise security",
	"IT and security operations teams",
	"Compliance and risk management professionals",
	"Technology leaders driving digital transformation",
}

func (b *slideBuilder) buildAudienceSlide(c *content.SlideContent, imageData []byte) {
	slide := b.nextSlide()
	b.sectionHeader(slide, b.cleanTitle(c.Title, "Target Audience"))

	body := content.Expand(c.BodyText(), content.TypeAudience, b.product)
	body = content.Truncate(body, b.style.Limits.ParagraphChars, b.style.Limits.ParagraphWords)

	bodyShape := slide.CreateRichTextShape()
	bodyShape.SetOffsetX(marginLeft).SetOffsetY(contentStartY + inches(0.15))
	bodyShape.SetWidth(textColumnWidth).SetHeight(inches(1.65))
	tr := bodyShape.CreateTextRun(body)
	tr.GetFont().SetSize(b.style.FontSizes.Body).SetColor(ppt.NewColor(argb(b.style.Colors.Text)))

	segShape := slide.CreateRichTextShape()
	segShape.SetOffsetX(marginLeft).SetOffsetY(contentStartY + inches(1.95))
	segShape.SetWidth(textColumnWidth).SetHeight(inches(1.875))
	hdr := segShape.CreateTextRun("Key Audience Segments:")
	hdr.GetFont().SetSize(18).SetBold(true).SetColor(ppt.NewColor(argb(b.style.Colors.Primary)))
	for _, segment := range audienceSegments {
		segShape.CreateParagraph()
		str := segShape.CreateTextRun("• " + segment)
		str.GetFont().SetSize(b.style.FontSizes.Bullet).SetColor(ppt.NewColor(argb(b.style.Colors.Text)))
	}

	b.imagePanel(slide, content.SlideAudience, imageData)
	b.accentMessage(slide, "We understand your unique challenges and are ready to help you succeed.")
}

func (b *slideBuilder) buildMarketSlide(c *content.SlideContent, imageData []byte) {
	slide := b.nextSlide()
	b.sectionHeader(slide, b.cleanTitle(c.Title, "Market Opportunity"))

	// Metric boxes for size and growth.
	metrics := []struct{ label, value string }{
		{"Market Size", c.MarketSize},
		{"Growth Rate", c.GrowthRate},
	}
	x := 0.375
	for _, m := range metrics {
		if m.value == "" {
			continue
		}
		box := slide.CreateRichTextShape()
		box.SetOffsetX(inches(x)).SetOffsetY(contentStartY + inches(0.15))
		box.SetWidth(inches(2.4)).SetHeight(inches(1.05))
		box.SetFill(solidFill("FFF8FAFC"))

		ltr := box.CreateTextRun(m.label)
		ltr.GetFont().SetSize(b.style.FontSizes.Caption).SetColor(ppt.NewColor(argb(b.style.Colors.Secondary)))
		alignCenter(box.GetActiveParagraph())

		box.CreateParagraph()
		vtr := box.CreateTextRun(m.value)
		vtr.GetFont().SetSize(24).SetBold(true).SetColor(ppt.NewColor(argb(b.style.Colors.Primary)))
		alignCenter(box.GetActiveParagraph())

		x += 2.7
	}

	desc := content.Expand(c.Description, content.TypeMarket, b.product)
	desc = content.Truncate(desc, b.style.Limits.MarketDescChars, b.style.Limits.MarketDescWords)
	if desc != "" {
		descShape := slide.CreateRichTextShape()
		descShape.SetOffsetX(marginLeft).SetOffsetY(contentStartY + inches(1.5))
		descShape.SetWidth(textColumnWidth).SetHeight(inches(1.95))
		dtr := descShape.CreateTextRun(desc)
		dtr.GetFont().SetSize(b.style.FontSizes.Body).SetColor(ppt.NewColor(argb(b.style.Colors.Text)))
	}

	b.imagePanel(slide, content.SlideMarket, imageData)
}

func (b *slideBuilder) buildRoadmapSlide(c *content.SlideContent, imageData []byte) {
	slide := b.nextSlide()
	b.sectionHeader(slide, b.cleanTitle(c.Title, "Product Roadmap"))

	phases := c.Phases
	if len(phases) > 4 {
		phases = phases[:4]
	}

	box := slide.CreateRichTextShape()
	box.SetOffsetX(marginLeft).SetOffsetY(contentStartY + inches(0.225))
	box.SetWidth(textColumnWidth).SetHeight(inches(3.15))
	for i, phase := range phases {
		if i > 0 {
			box.CreateParagraph()
		}
		name := phase.Name
		if name == "" {
			name = fmt.Sprintf("Phase %d", i+1)
		}
		heading := name
		if phase.Timeline != "" {
			heading += " - " + phase.Timeline
		}
		htr := box.CreateTextRun(heading)
		htr.GetFont().SetSize(b.style.FontSizes.Bullet).SetBold(true).SetColor(ppt.NewColor(argb(b.style.Colors.Primary)))

		if phase.Description != "" {
			box.CreateParagraph()
			desc := content.Truncate(phase.Description, b.style.Limits.BulletChars, b.style.Limits.BulletWords)
			dtr := box.CreateTextRun(desc)
			dtr.GetFont().SetSize(b.style.FontSizes.Caption).SetColor(ppt.NewColor(argb(b.style.Colors.Text)))
		}
	}

	b.imagePanel(slide, content.SlideRoadmap, imageData)
}

func (b *slideBuilder) buildTeamSlide(c *content.SlideContent, members []content.TeamMember, imageData []byte) {
	slide := b.nextSlide()
	b.sectionHeader(slide, b.cleanTitle(c.Title, "Our Team"))

	shown := members
	if len(shown) > 6 {
		shown = shown[:6]
	}

	cols := 3
	boxWidth := 2.95
	boxHeight := 1.2
	for i, member := range shown {
		row := i / cols
		col := i % cols
		x := 0.375 + float64(col)*(boxWidth+0.15)
		y := 0.9 + float64(row)*(boxHeight+0.15)

		box := slide.CreateRichTextShape()
		box.SetOffsetX(inches(x)).SetOffsetY(inches(y))
		box.SetWidth(inches(boxWidth)).SetHeight(inches(boxHeight))
		box.SetFill(solidFill("FFF8FAFC"))

		ntr := box.CreateTextRun(member.Name)
		ntr.GetFont().SetSize(b.style.FontSizes.Body).SetBold(true).SetColor(ppt.NewColor(argb(b.style.Colors.Primary)))
		alignCenter(box.GetActiveParagraph())

		if member.Title != "" {
			box.CreateParagraph()
			ttr := box.CreateTextRun(member.Title)
			ttr.GetFont().SetSize(b.style.FontSizes.Caption).SetColor(ppt.NewColor(argb(b.style.Colors.Text)))
			alignCenter(box.GetActiveParagraph())
		}
	}

	if len(imageData) > 0 && len(shown) <= 3 {
		img := slide.CreateDrawingShape()
		img.SetImageData(imageData, imageMIME(imageData))
		img.SetOffsetX(inches(3.3)).SetOffsetY(inches(2.4))
		img.SetWidth(imagePanelW).SetHeight(inches(2.4))
	}
}

func (b *slideBuilder) buildCTASlide(c *content.SlideContent) {
	slide := b.nextSlide()
	limits := b.style.Limits

	title := c.Title
	if title == "" {
		title = "Ready to Transform Your Business?"
	}
	ctaText := content.Expand(c.CTAText, content.TypeCTA, b.product)
	if ctaText == "" {
		ctaText = "Take the first step today"
	}
	contact := c.ContactInfo
	if contact == "" {
		contact = "Contact us to get started"
	}

	titleShape := slide.CreateRichTextShape()
	titleShape.SetOffsetX(inches(0.75)).SetOffsetY(inches(1.5))
	titleShape.SetWidth(inches(8.5)).SetHeight(inches(0.9))
	tr := titleShape.CreateTextRun(content.Truncate(title, limits.CTATitleChars, limits.CTATitleWords))
	tr.GetFont().SetSize(b.style.FontSizes.Title).SetBold(true).SetColor(ppt.NewColor(argb(b.style.Colors.Primary)))
	alignCenter(titleShape.GetActiveParagraph())

	line := slide.CreateRichTextShape()
	line.SetOffsetX(inches(1.5)).SetOffsetY(inches(2.625))
	line.SetWidth(inches(7.0)).SetHeight(inches(0.04))
	line.SetFill(solidFill(argb(b.style.Colors.Accent)))

	ctaShape := slide.CreateRichTextShape()
	ctaShape.SetOffsetX(inches(0.75)).SetOffsetY(inches(3.0))
	ctaShape.SetWidth(inches(8.5)).SetHeight(inches(0.6))
	ctr := ctaShape.CreateTextRun(content.Truncate(ctaText, limits.CTATextChars, limits.CTATextWords))
	ctr.GetFont().SetSize(b.style.FontSizes.Subtitle).SetBold(true).SetColor(ppt.NewColor(argb(b.style.Colors.Secondary)))
	alignCenter(ctaShape.GetActiveParagraph())

	contactShape := slide.CreateRichTextShape()
	contactShape.SetOffsetX(inches(0.75)).SetOffsetY(inches(3.75))
	contactShape.SetWidth(inches(8.5)).SetHeight(inches(0.45))
	ktr := contactShape.CreateTextRun(content.Truncate(contact, limits.ContactChars, limits.ContactWords))
	ktr.GetFont().SetSize(b.style.FontSizes.Body).SetColor(ppt.NewColor(argb(b.style.Colors.Accent)))
	alignCenter(contactShape.GetActiveParagraph())
}

// buildFallbackSlide renders whatever content survives when a specialized
// builder fails.
func (b *slideBuilder) buildFallbackSlide(title string, c *content.SlideContent) {
	slide := b.nextSlide()

	titleShape := slide.CreateRichTextShape()
	titleShape.SetOffsetX(marginLeft).SetOffsetY(inches(0.375))
	titleShape.SetWidth(fullContentWidth).SetHeight(inches(0.6))
	tr := titleShape.CreateTextRun(b.cleanTitle(c.Title, title))
	tr.GetFont().SetSize(32).SetBold(true).SetColor(ppt.NewColor("FF000000"))

	box := slide.CreateRichTextShape()
	box.SetOffsetX(marginLeft).SetOffsetY(inches(1.275))
	box.SetWidth(fullContentWidth).SetHeight(inches(3.75))

	if body := c.BodyText(); body != "" {
		btr := box.CreateTextRun(content.ReplaceProductName(body, b.product))
		btr.GetFont().SetSize(20).SetColor(ppt.NewColor("FF000000"))
		return
	}

	bullets := content.Texts(c.Bullets)
	if len(bullets) > 5 {
		bullets = bullets[:5]
	}
	if len(bullets) == 0 {
		btr := box.CreateTextRun("Content for this slide is being prepared.")
		btr.GetFont().SetSize(20).SetColor(ppt.NewColor("FF000000"))
		return
	}
	for i, bullet := range bullets {
		if i > 0 {
			box.CreateParagraph()
		}
		btr := box.CreateTextRun("• " + bullet)
		btr.GetFont().SetSize(20).SetColor(ppt.NewColor("FF000000"))
	}
}

// imageMIME sniffs the content type of image bytes. Placeholders render as
// PNG but fetched photos are usually JPEG; unrecognizable data falls back to
// PNG so the package stays well-formed.
func imageMIME(data []byte) string {
	switch mime := http.DetectContentType(data); mime {
	case "image/png", "image/jpeg", "image/gif":
		return mime
	}
	return "image/png"
}

func stripAll(texts []string) []string {
	out := make([]string, len(texts))
	for i, t := range texts {
		out[i] = content.StripMarkup(t)
	}
	return out
}
