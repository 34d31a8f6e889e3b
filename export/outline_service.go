// Package export renders secondary formats of a generated deck.
package export

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"

	"deckgenie/content"
	"deckgenie/persona"
)

// OutlineService renders a deck's content as a one-page-per-slide PDF
// outline, for reviewing copy without opening PowerPoint.
type OutlineService struct{}

// NewOutlineService creates a new outline service
func NewOutlineService() *OutlineService {
	return &OutlineService{}
}

// ExportOutline renders the slides in order into a PDF outline.
func (s *OutlineService) ExportOutline(bundle *content.Bundle, order []string, personaName string) ([]byte, error) {
	if bundle == nil || len(order) == 0 {
		return nil, fmt.Errorf("nothing to export")
	}
	style := persona.StyleFor(personaName)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	s.addHeader(pdf, bundle, style)

	for i, slideType := range order {
		c := bundle.Slide(slideType)
		if c == nil {
			c = &content.SlideContent{}
		}
		s.addSlideSection(pdf, i+1, slideType, c, bundle.ProductName(), style)
	}

	s.addFooter(pdf)

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("PDF generation error: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to output PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *OutlineService) addHeader(pdf *gofpdf.Fpdf, bundle *content.Bundle, style persona.Style) {
	title := bundle.ProductName()
	if title == "" {
		title = "Sales Pitch"
	} else {
		title += " - Deck Outline"
	}

	r, g, b := hexRGB(style.Colors.Primary)
	pdf.SetFont("Arial", "B", 18)
	pdf.SetTextColor(r, g, b)
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(100, 116, 139)
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated: %s", timestamp), "", 1, "C", false, 0, "")

	pdf.Ln(5)
}

func (s *OutlineService) addSlideSection(pdf *gofpdf.Fpdf, index int, slideType string, c *content.SlideContent, product string, style persona.Style) {
	r, g, b := hexRGB(style.Colors.Secondary)
	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(r, g, b)

	heading := content.StripMarkup(content.ReplaceProductName(c.Title, product))
	if heading == "" {
		heading = slideType
	}
	pdf.CellFormat(0, 8, fmt.Sprintf("%d. %s", index, heading), "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(0, 0, 0)

	if body := c.BodyText(); body != "" {
		pdf.MultiCell(0, 6, content.ReplaceProductName(body, product), "", "L", false)
		pdf.Ln(1)
	}

	for _, group := range [][]content.Item{c.PainPoints, c.Bullets, c.Features, c.Differentiators, c.Advantages} {
		for _, item := range group {
			text := content.StripMarkup(content.ReplaceProductName(item.Text, product))
			pdf.MultiCell(0, 6, "  - "+text, "", "L", false)
		}
	}

	for _, phase := range c.Phases {
		line := phase.Name
		if phase.Timeline != "" {
			line += " (" + phase.Timeline + ")"
		}
		pdf.MultiCell(0, 6, "  - "+line, "", "L", false)
	}

	for _, member := range c.TeamMembers {
		pdf.MultiCell(0, 6, fmt.Sprintf("  - %s, %s", member.Name, member.Title), "", "L", false)
	}

	if c.CTAText != "" {
		pdf.MultiCell(0, 6, content.ReplaceProductName(c.CTAText, product), "", "L", false)
	}
	if c.ContactInfo != "" {
		pdf.MultiCell(0, 6, c.ContactInfo, "", "L", false)
	}

	pdf.Ln(3)
}

func (s *OutlineService) addFooter(pdf *gofpdf.Fpdf) {
	pdf.Ln(5)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(100, 116, 139)
	pdf.CellFormat(0, 6, "Generated by DeckGenie", "", 1, "C", false, 0, "")
}

// hexRGB parses an RRGGBB color into its components. Bad input renders black.
func hexRGB(hex string) (int, int, int) {
	if len(hex) != 6 {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF)
}
