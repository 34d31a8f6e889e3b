package images

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"deckgenie/content"
)

// fallbackQueries are the per-slide-type searches used when no better query
// can be produced.
var fallbackQueries = map[string]string{
	"title":    "professional business presentation modern",
	"problem":  "business challenge problem modern",
	"solution": "business solution technology modern",
	"features": "product features technology modern",
	"advantage": "competitive advantage business success",
	"audience": "business professionals meeting modern",
	"market":   "market analysis business growth chart",
	"roadmap":  "strategic roadmap business planning",
	"team":     "professional business team modern",
	"cta":      "business call to action modern",
	"success":  "business success achievement modern",
	"impact":   "business impact results modern",
	"future":   "future business innovation modern",
}

// baseType strips the "_slide" suffix from a slide type key.
func baseType(slideType string) string {
	return strings.TrimSuffix(slideType, "_slide")
}

// QueryGenerator produces Unsplash search queries for slides, asking an LLM
// when one is configured and degrading to static queries otherwise.
type QueryGenerator struct {
	chatModel model.ChatModel
	log       func(string)
}

// NewQueryGenerator wraps a chat model; chatModel may be nil, in which case
// only fallback queries are produced. log may be nil.
func NewQueryGenerator(chatModel model.ChatModel, log func(string)) *QueryGenerator {
	return &QueryGenerator{chatModel: chatModel, log: log}
}

func (g *QueryGenerator) logf(format string, args ...interface{}) {
	if g.log != nil {
		g.log(fmt.Sprintf(format, args...))
	}
}

// ResolveQuery picks the search query for a slide: explicit search terms
// win, then the LLM, then the static fallback.
func (g *QueryGenerator) ResolveQuery(ctx context.Context, slideType string, bundle *content.Bundle, searchTerms []string) string {
	if len(searchTerms) > 0 {
		terms := searchTerms
		if len(terms) > 3 {
			terms = terms[:3]
		}
		if q := strings.TrimSpace(strings.Join(terms, " ")); q != "" {
			return q
		}
	}
	if g.chatModel != nil && bundle != nil {
		if q, err := g.GenerateQuery(ctx, slideType, bundle); err == nil && q != "" {
			return q
		} else if err != nil {
			g.logf("Image query generation failed for %s: %v", slideType, err)
		}
	}
	return g.FallbackQuery(slideType, bundle)
}

// GenerateQuery asks the chat model for a 3-5 word search query matched to
// the slide's content and enhances it with industry hints.
func (g *QueryGenerator) GenerateQuery(ctx context.Context, slideType string, bundle *content.Bundle) (string, error) {
	prompt := buildQueryPrompt(slideType, bundle)

	resp, err := g.chatModel.Generate(ctx, []*schema.Message{
		{Role: schema.User, Content: prompt},
	})
	if err != nil {
		return "", fmt.Errorf("generate image query: %w", err)
	}

	raw := ExtractJSONObject(resp.Content)
	if raw == "" {
		return "", fmt.Errorf("no JSON object in model response")
	}
	var parsed struct {
		Query string `json:"query"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return "", fmt.Errorf("parse image query response: %w", err)
	}
	if parsed.Query == "" {
		return "", fmt.Errorf("empty query in model response")
	}
	return enhanceQuery(parsed.Query, bundle), nil
}

// FallbackQuery returns the static query for a slide type, widened with
// metadata context when available.
func (g *QueryGenerator) FallbackQuery(slideType string, bundle *content.Bundle) string {
	query, ok := fallbackQueries[baseType(slideType)]
	if !ok {
		query = "professional business modern"
	}

	if bundle != nil {
		industry := strings.ToLower(bundle.Metadata.Industry)
		switch {
		case strings.Contains(industry, "tech") || strings.Contains(industry, "software"):
			query += " technology"
		case strings.Contains(industry, "health") || strings.Contains(industry, "medical"):
			query += " healthcare"
		case strings.Contains(industry, "finance") || strings.Contains(industry, "bank"):
			query += " finance"
		case strings.Contains(industry, "retail"):
			query += " retail"
		case strings.Contains(industry, "education"):
			query += " education"
		case strings.Contains(industry, "manufacturing"):
			query += " manufacturing"
		}

		product := strings.ToLower(bundle.ProductName())
		if product != "" && len(strings.Fields(product)) == 1 {
			query = product + " " + query
		}
	}
	return strings.Join(strings.Fields(query), " ")
}

// enhanceQuery appends an industry term inferred from the product and
// company names.
func enhanceQuery(query string, bundle *content.Bundle) string {
	if bundle == nil {
		return query
	}
	product := strings.ToLower(bundle.ProductName())
	company := strings.ToLower(bundle.Metadata.CompanyName)
	switch {
	case strings.Contains(product, "software") || strings.Contains(company, "tech"):
		return query + " technology"
	case strings.Contains(product, "health") || strings.Contains(company, "medical"):
		return query + " healthcare"
	case strings.Contains(product, "finance") || strings.Contains(company, "bank"):
		return query + " finance"
	}
	return query
}

// ExtractJSONObject pulls the outermost {...} span from a model response,
// tolerating prose or code fences around it. Empty string means no object.
func ExtractJSONObject(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return ""
	}
	return text[start : end+1]
}

// buildQueryPrompt assembles the model prompt from slide content. Details
// vary by slide type so the model sees the most relevant fields.
func buildQueryPrompt(slideType string, bundle *content.Bundle) string {
	base := baseType(slideType)
	slide := bundle.Slide(slideType)
	if slide == nil {
		slide = &content.SlideContent{}
	}

	var details strings.Builder
	writeLine := func(label, value string) {
		if value != "" {
			fmt.Fprintf(&details, "%s: %s\n", label, value)
		}
	}

	switch base {
	case "problem":
		writeLine("Title", orDefault(slide.Title, "Problem Statement"))
		writeLine("Key Points", strings.Join(content.Texts(firstNonEmptyItems(slide.Bullets, slide.PainPoints)), " "))
		details.WriteString("Focus: Business challenges and pain points visualization\n")
	case "solution":
		writeLine("Title", orDefault(slide.Title, "Our Solution"))
		writeLine("Solution Description", slide.BodyText())
		details.WriteString("Focus: Modern technology solutions and innovations\n")
	case "features":
		writeLine("Title", orDefault(slide.Title, "Key Features"))
		features := content.Texts(slide.Features)
		if len(features) > 3 {
			features = features[:3]
		}
		writeLine("Features", strings.Join(features, ", "))
		details.WriteString("Focus: Product features and capabilities visualization\n")
	case "advantage":
		writeLine("Title", orDefault(slide.Title, "Our Advantage"))
		writeLine("Advantages", strings.Join(content.Texts(firstNonEmptyItems(slide.Bullets, slide.Differentiators)), " "))
		details.WriteString("Focus: Competitive advantage and business success\n")
	case "audience":
		writeLine("Title", orDefault(slide.Title, "Target Audience"))
		writeLine("Audience", slide.BodyText())
		details.WriteString("Focus: Professional business audience and market segments\n")
	case "market":
		writeLine("Title", orDefault(slide.Title, "Market Opportunity"))
		writeLine("Market Size", slide.MarketSize)
		writeLine("Growth", slide.GrowthRate)
		details.WriteString("Focus: Market analysis and business growth\n")
	case "roadmap":
		writeLine("Title", orDefault(slide.Title, "Product Roadmap"))
		names := make([]string, 0, len(slide.Phases))
		for _, p := range slide.Phases {
			names = append(names, p.Name)
		}
		writeLine("Phases", strings.Join(names, ", "))
		details.WriteString("Focus: Strategic planning and product development\n")
	case "team":
		writeLine("Title", orDefault(slide.Title, "Our Team"))
		details.WriteString("Focus: Professional leadership and team excellence\n")
	default:
		writeLine("Title", slide.Title)
		details.WriteString("Focus: Professional business context\n")
	}

	return fmt.Sprintf(`Generate a specific, professional Unsplash search query (3-5 words) for a business presentation slide.
Focus on high-quality, modern business imagery that would be suitable for a professional presentation.

Context:
Company: %s
Product: %s
Slide Type: %s

Content to match:
%s
IMPORTANT GUIDELINES:
- Focus on B2B/Enterprise/Professional contexts
- Avoid generic or cliche business images
- Prefer modern, tech-focused imagery
- Ensure visual relevance to the content
- Consider industry-specific imagery when applicable

Format your response as a JSON object with a single key "query" and its string value.
Example: {"query": "modern enterprise technology"}`,
		bundle.Metadata.CompanyName, bundle.ProductName(), base, details.String())
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func firstNonEmptyItems(lists ...[]content.Item) []content.Item {
	for _, l := range lists {
		if len(l) > 0 {
			return l
		}
	}
	return nil
}
