package content

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Slide type identifiers used as keys in a content bundle.
const (
	SlideTitle     = "title_slide"
	SlideProblem   = "problem_slide"
	SlideSolution  = "solution_slide"
	SlideFeatures  = "features_slide"
	SlideAdvantage = "advantage_slide"
	SlideAudience  = "audience_slide"
	SlideMarket    = "market_slide"
	SlideRoadmap   = "roadmap_slide"
	SlideTeam      = "team_slide"
	SlideCTA       = "cta_slide"
)

// ProductNamePlaceholder is the token upstream content generators emit where
// the real product name should appear.
const ProductNamePlaceholder = "[Product Name]"

// Item is a single list entry of a slide (bullet, feature, differentiator).
// Upstream generators emit either plain strings or objects with one of
// several text-bearing fields; both are resolved to Text once, at JSON
// ingestion, so downstream code never probes field names.
type Item struct {
	Text string `json:"text"`
	Note string `json:"note,omitempty"`
}

// itemTextKeys are the recognized text-bearing fields, in priority order.
var itemTextKeys = []string{"point", "feature", "text", "name", "title"}

// UnmarshalJSON accepts a JSON string, an object with a recognized text
// field, or any other scalar (stringified as a last resort).
func (it *Item) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		it.Text = s
		return nil
	}

	var obj map[string]interface{}
	if err := json.Unmarshal(data, &obj); err == nil {
		for _, key := range itemTextKeys {
			if v, ok := obj[key].(string); ok && v != "" {
				it.Text = v
				break
			}
		}
		if note, ok := obj["description"].(string); ok {
			it.Note = note
		}
		if it.Text == "" {
			// Generic string form of the whole object, with stable key order.
			it.Text = stringifyObject(obj)
		}
		return nil
	}

	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	it.Text = fmt.Sprintf("%v", v)
	return nil
}

func stringifyObject(obj map[string]interface{}) string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %v", k, obj[k]))
	}
	return strings.Join(parts, ", ")
}

// Items is a convenience constructor used by tests and persona defaults.
func Items(texts ...string) []Item {
	out := make([]Item, len(texts))
	for i, t := range texts {
		out[i] = Item{Text: t}
	}
	return out
}

// Texts returns the text fields of a list of items.
func Texts(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Text
	}
	return out
}

// TeamMember is one roster entry of the team slide.
type TeamMember struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}

// Phase is one entry of the roadmap slide.
type Phase struct {
	Name        string `json:"name"`
	Timeline    string `json:"timeline,omitempty"`
	Description string `json:"description,omitempty"`
}

// SlideContent is the content record for one slide. Fields vary by slide
// type; absent fields stay zero. The merger fills missing fields from
// persona defaults in place.
type SlideContent struct {
	Title            string       `json:"title,omitempty"`
	Subtitle         string       `json:"subtitle,omitempty"`
	Paragraph        string       `json:"paragraph,omitempty"`
	Description      string       `json:"description,omitempty"`
	ValueProposition string       `json:"value_proposition,omitempty"`
	Content          string       `json:"content,omitempty"`
	Bullets          []Item       `json:"bullets,omitempty"`
	PainPoints       []Item       `json:"pain_points,omitempty"`
	Differentiators  []Item       `json:"differentiators,omitempty"`
	Advantages       []Item       `json:"advantages,omitempty"`
	Features         []Item       `json:"features,omitempty"`
	CTAText          string       `json:"cta_text,omitempty"`
	ContactInfo      string       `json:"contact_info,omitempty"`
	MarketSize       string       `json:"market_size,omitempty"`
	GrowthRate       string       `json:"growth_rate,omitempty"`
	Phases           []Phase      `json:"phases,omitempty"`
	TeamMembers      []TeamMember `json:"team_members,omitempty"`
	SearchTerms      []string     `json:"search_terms,omitempty"`
}

// BodyText returns the first non-empty narrative field, in the priority
// order the slide builders expect.
func (c *SlideContent) BodyText() string {
	for _, s := range []string{c.Paragraph, c.Description, c.ValueProposition, c.Content} {
		if s != "" {
			return s
		}
	}
	return ""
}

// Clone returns a deep copy.
func (c *SlideContent) Clone() *SlideContent {
	if c == nil {
		return nil
	}
	out := *c
	out.Bullets = append([]Item(nil), c.Bullets...)
	out.PainPoints = append([]Item(nil), c.PainPoints...)
	out.Differentiators = append([]Item(nil), c.Differentiators...)
	out.Advantages = append([]Item(nil), c.Advantages...)
	out.Features = append([]Item(nil), c.Features...)
	out.Phases = append([]Phase(nil), c.Phases...)
	out.TeamMembers = append([]TeamMember(nil), c.TeamMembers...)
	out.SearchTerms = append([]string(nil), c.SearchTerms...)
	return &out
}

// Metadata describes the deck as a whole.
type Metadata struct {
	CompanyName string `json:"company_name,omitempty"`
	ProductName string `json:"product_name,omitempty"`
	Industry    string `json:"industry,omitempty"`
	Persona     string `json:"persona,omitempty"`
}

// UnmarshalJSON tolerates non-string persona values: anything that is not a
// JSON string decodes to the empty persona, which the resolver later
// normalizes to the default.
func (m *Metadata) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	str := func(key string) string {
		var s string
		if v, ok := raw[key]; ok {
			if err := json.Unmarshal(v, &s); err == nil {
				return s
			}
		}
		return ""
	}
	m.CompanyName = str("company_name")
	m.ProductName = str("product_name")
	m.Industry = str("industry")
	m.Persona = str("persona")
	return nil
}

// Bundle maps slide types to slide content for one deck, plus deck metadata.
// In the wire format metadata sits alongside the slide keys in one flat
// JSON object.
type Bundle struct {
	Metadata Metadata
	Slides   map[string]*SlideContent
}

// NewBundle returns an empty bundle ready for Slides insertion.
func NewBundle() *Bundle {
	return &Bundle{Slides: make(map[string]*SlideContent)}
}

// Has reports whether the bundle carries content for a slide type.
func (b *Bundle) Has(slideType string) bool {
	if b == nil {
		return false
	}
	c, ok := b.Slides[slideType]
	return ok && c != nil
}

// Slide returns the content record for a slide type, nil when absent.
func (b *Bundle) Slide(slideType string) *SlideContent {
	if b == nil {
		return nil
	}
	return b.Slides[slideType]
}

// ProductName is a nil-safe metadata accessor.
func (b *Bundle) ProductName() string {
	if b == nil {
		return ""
	}
	return b.Metadata.ProductName
}

func (b *Bundle) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	b.Slides = make(map[string]*SlideContent, len(raw))
	for key, val := range raw {
		if key == "metadata" {
			if err := json.Unmarshal(val, &b.Metadata); err != nil {
				return fmt.Errorf("invalid metadata: %w", err)
			}
			continue
		}
		var sc SlideContent
		if err := json.Unmarshal(val, &sc); err != nil {
			return fmt.Errorf("invalid content for %s: %w", key, err)
		}
		b.Slides[key] = &sc
	}
	return nil
}

func (b *Bundle) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(b.Slides)+1)
	out["metadata"] = b.Metadata
	for key, val := range b.Slides {
		out[key] = val
	}
	return json.Marshal(out)
}

// ReplaceProductName substitutes the product-name placeholder when a product
// name is known; otherwise the text passes through unchanged.
func ReplaceProductName(text, productName string) string {
	if productName == "" {
		return text
	}
	return strings.ReplaceAll(text, ProductNamePlaceholder, productName)
}

var markupReplacer = strings.NewReplacer(
	"<strong>", "",
	"</strong>", "",
	"{heading{", "",
	"}}", "",
)

// StripMarkup removes the markup artifacts upstream generators are known to
// leak into titles and bullets.
func StripMarkup(text string) string {
	return markupReplacer.Replace(text)
}
