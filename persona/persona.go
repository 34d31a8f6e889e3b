// Package persona resolves audience persona names to visual styles, text
// limits, and default slide content.
package persona

import "strings"

// Recognized persona names. Default is the business persona.
const (
	Technical = "technical"
	Executive = "executive"
	Business  = "business"
)

// Default is the persona used when the requested one is unknown or empty.
const Default = Business

// Normalize maps a free-form persona string to a recognized name, ignoring
// case and surrounding whitespace, falling back to the default.
func Normalize(name string) string {
	switch n := strings.ToLower(strings.TrimSpace(name)); n {
	case Technical, Executive, Business:
		return n
	}
	return Default
}

// Known reports whether name resolves to a recognized persona other than by
// fallback.
func Known(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case Technical, Executive, Business:
		return true
	}
	return false
}

// Names lists the recognized personas in presentation order.
func Names() []string {
	return []string{Business, Technical, Executive}
}
