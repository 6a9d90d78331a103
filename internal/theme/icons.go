package theme

import (
	"fmt"
	"image/color"
	"strings"
)

// IconPalette maps icon palette keys such as "Actions.Blue" to colors.
type IconPalette map[string]color.RGBA

// IconSwatch is one palette key drawn by the renderer, with the color used
// when a theme does not declare the key.
type IconSwatch struct {
	Key      string
	Fallback color.RGBA
}

// IconSwatches are the keys shown in the rendered palette strip, in order.
var IconSwatches = []IconSwatch{
	{Key: "Actions.Blue", Fallback: MustParseColor("#4285f4")},
	{Key: "Actions.Green", Fallback: MustParseColor("#34a853")},
	{Key: "Actions.Yellow", Fallback: MustParseColor("#fbbc04")},
	{Key: "Actions.Red", Fallback: MustParseColor("#ea4335")},
	{Key: "Objects.Purple", Fallback: MustParseColor("#9c27b0")},
	{Key: "Objects.Pink", Fallback: MustParseColor("#e91e63")},
}

// NewIconPalette builds a palette from a decoded "ColorPalette" object.
// Non-color values are skipped; malformed colors are an error.
func NewIconPalette(decl map[string]any) (IconPalette, error) {
	p := make(IconPalette, len(decl))
	for key, raw := range decl {
		s, ok := raw.(string)
		if !ok || !strings.HasPrefix(s, "#") {
			continue
		}
		c, err := ParseColor(s)
		if err != nil {
			return nil, fmt.Errorf("icon palette %s: %w", key, err)
		}
		p[key] = c
	}
	return p, nil
}

// Resolve returns the palette color for key, or fallback when absent.
func (p IconPalette) Resolve(key string, fallback color.RGBA) color.RGBA {
	if c, ok := p[key]; ok {
		return c
	}
	return fallback
}
