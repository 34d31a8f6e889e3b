package images

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"image/color"
	"math/rand"
	"strings"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	placeholderWidth  = 800
	placeholderHeight = 600
)

// placeholderColors are the soft background tones per slide category.
var placeholderColors = map[string]color.RGBA{
	"problem":  {230, 230, 250, 255},
	"solution": {240, 255, 240, 255},
	"advantage": {255, 240, 245, 255},
	"audience": {240, 248, 255, 255},
	"market":   {255, 250, 240, 255},
	"roadmap":  {245, 255, 250, 255},
	"team":     {255, 245, 238, 255},
	"features": {240, 255, 255, 255},
	"cta":      {255, 255, 240, 255},
}

var placeholderGray = color.RGBA{245, 245, 245, 255}

var (
	placeholderFontOnce sync.Once
	placeholderFont     font.Face
)

func placeholderFace() font.Face {
	placeholderFontOnce.Do(func() {
		parsed, err := truetype.Parse(goregular.TTF)
		if err != nil {
			return
		}
		placeholderFont = truetype.NewFace(parsed, &truetype.Options{
			Size:    40,
			Hinting: font.HintingNone,
		})
	})
	return placeholderFont
}

// PlaceholderImage renders a deterministic stand-in PNG for a slide type,
// used when remote fetching is disabled or fails.
func PlaceholderImage(slideType string) ([]byte, error) {
	base := baseType(strings.ToLower(slideType))
	bg, ok := placeholderColors[base]
	if !ok {
		bg = placeholderGray
	}

	dc := gg.NewContext(placeholderWidth, placeholderHeight)
	dc.SetColor(bg)
	dc.Clear()

	// Border.
	const margin = 20
	dc.SetRGB255(100, 100, 100)
	dc.SetLineWidth(2)
	dc.DrawRectangle(margin, margin, placeholderWidth-2*margin, placeholderHeight-2*margin)
	dc.Stroke()

	// Scatter dots, seeded by slide type so reruns render identically.
	seed := fnv.New64a()
	seed.Write([]byte(base))
	rng := rand.New(rand.NewSource(int64(seed.Sum64())))
	for i := 0; i < 10; i++ {
		x := float64(50 + rng.Intn(placeholderWidth-100))
		y := float64(50 + rng.Intn(placeholderHeight-100))
		size := float64(10 + rng.Intn(31))
		shade := 30 + rng.Intn(71)
		dc.SetRGBA255(shade, shade, shade, shade)
		dc.DrawCircle(x, y, size/2)
		dc.Fill()
	}

	if face := placeholderFace(); face != nil {
		dc.SetFontFace(face)
		dc.SetRGB255(80, 80, 80)
		title := titleCase(base) + " Slide"
		dc.DrawStringAnchored(title, placeholderWidth/2, placeholderHeight/2, 0.5, 0.5)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode placeholder: %w", err)
	}
	return buf.Bytes(), nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
