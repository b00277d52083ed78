package brightness

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Shade is the painted result of laying the overlay over a card colour.
// Blended is false when either colour could not be parsed as hex, in which
// case Background is the card colour passed through untouched.
type Shade struct {
	Background string
	Foreground string
	Blended    bool
}

const (
	lightText = "#f8fafc"
	darkText  = "#0f172a"
)

// Blend lays overlay over card with the given opacity. Colours that are not
// hex values (ANSI indices, names) are passed through uninterpreted.
func Blend(card, overlay string, intensity float64) Shade {
	base, err := colorful.Hex(card)
	if err != nil {
		return Shade{Background: card}
	}
	top, err := colorful.Hex(overlay)
	if err != nil {
		return Shade{Background: card}
	}

	mixed := base.BlendRgb(top, intensity).Clamped()
	return Shade{
		Background: mixed.Hex(),
		Foreground: ReadableOn(mixed),
		Blended:    true,
	}
}

// ReadableOn picks a light or dark text colour for the supplied background.
func ReadableOn(bg colorful.Color) string {
	_, _, l := bg.Hsl()
	if l > 0.6 {
		return darkText
	}
	return lightText
}
