package persona

// Colors holds the palette for one persona. Values are RRGGBB hex without
// a leading '#'.
type Colors struct {
	Primary    string
	Secondary  string
	Accent     string
	Text       string
	Background string
	Bullet     string
}

// Fonts names the typefaces used for headings and body text.
type Fonts struct {
	Heading string
	Body    string
}

// FontSizes are in points.
type FontSizes struct {
	Title    int
	Subtitle int
	Heading  int
	Body     int
	Bullet   int
	Caption  int
}

// Spacing controls paragraph layout. LineSpacing is a multiplier,
// ParagraphSpacing is in points, BulletIndent in inches.
type Spacing struct {
	LineSpacing      float64
	ParagraphSpacing int
	BulletIndent     float64
}

// Limits bounds slide text per persona. Executives get fewer, longer
// bullets; everyone else gets the compact defaults.
type Limits struct {
	MaxBullets      int
	BulletChars     int
	BulletWords     int
	ParagraphChars  int
	ParagraphWords  int
	CTATitleChars   int
	CTATitleWords   int
	CTATextChars    int
	CTATextWords    int
	ContactChars    int
	ContactWords    int
	MarketDescChars int
	MarketDescWords int
}

// Style is the complete visual configuration for one persona.
type Style struct {
	Name      string
	Colors    Colors
	Fonts     Fonts
	FontSizes FontSizes
	Spacing   Spacing
	Limits    Limits
}

var calibri = Fonts{Heading: "Calibri", Body: "Calibri"}

func standardLimits(maxBullets, bulletChars, bulletWords int) Limits {
	return Limits{
		MaxBullets:      maxBullets,
		BulletChars:     bulletChars,
		BulletWords:     bulletWords,
		ParagraphChars:  250,
		ParagraphWords:  50,
		CTATitleChars:   60,
		CTATitleWords:   12,
		CTATextChars:    50,
		CTATextWords:    10,
		ContactChars:    40,
		ContactWords:    8,
		MarketDescChars: 200,
		MarketDescWords: 35,
	}
}

var styles = map[string]Style{
	Technical: {
		Name: Technical,
		Colors: Colors{
			Primary:    "2F2F2F",
			Secondary:  "0096C7",
			Accent:     "FF6B6B",
			Text:       "2F2F2F",
			Background: "FFFFFF",
			Bullet:     "0096C7",
		},
		Fonts: calibri,
		FontSizes: FontSizes{
			Title: 32, Subtitle: 24, Heading: 20, Body: 14, Bullet: 14, Caption: 12,
		},
		Spacing: Spacing{LineSpacing: 1.15, ParagraphSpacing: 6, BulletIndent: 0.25},
		Limits:  standardLimits(5, 80, 15),
	},
	Executive: {
		Name: Executive,
		Colors: Colors{
			Primary:    "1F497D",
			Secondary:  "4F81BD",
			Accent:     "C0504D",
			Text:       "000000",
			Background: "FFFFFF",
			Bullet:     "4472C4",
		},
		Fonts: calibri,
		FontSizes: FontSizes{
			Title: 36, Subtitle: 28, Heading: 24, Body: 16, Bullet: 16, Caption: 14,
		},
		Spacing: Spacing{LineSpacing: 1.2, ParagraphSpacing: 8, BulletIndent: 0.3},
		Limits:  standardLimits(4, 100, 20),
	},
	Business: {
		Name: Business,
		Colors: Colors{
			Primary:    "2F5597",
			Secondary:  "70AD47",
			Accent:     "FFC000",
			Text:       "2F2F2F",
			Background: "FFFFFF",
			Bullet:     "70AD47",
		},
		Fonts: calibri,
		FontSizes: FontSizes{
			Title: 32, Subtitle: 26, Heading: 22, Body: 15, Bullet: 15, Caption: 13,
		},
		Spacing: Spacing{LineSpacing: 1.15, ParagraphSpacing: 7, BulletIndent: 0.25},
		Limits:  standardLimits(5, 80, 15),
	},
}

// StyleFor returns the style for a persona name, normalizing unknown names
// to the default persona first.
func StyleFor(name string) Style {
	return styles[Normalize(name)]
}
