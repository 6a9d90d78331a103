package theme

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrInvalidColorFormat reports a hex color that is not 6 or 8 hex digits.
	ErrInvalidColorFormat = errors.New("invalid color format")
	// ErrMissingRequiredColor reports an absent mandatory color role.
	ErrMissingRequiredColor = errors.New("missing required color")
)

// NeutralGray is used wherever a syntax color cannot be resolved.
var NeutralGray = color.RGBA{R: 128, G: 128, B: 128, A: 255}

// ParseColor parses #RRGGBB or #RRGGBBAA. The leading # is optional and hex
// digits are case-insensitive.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("%w: %q has %d hex digits", ErrInvalidColorFormat, s, len(hex))
	}
	val, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
	}
	if len(hex) == 6 {
		return color.RGBA{
			R: uint8(val >> 16),
			G: uint8((val >> 8) & 0xFF),
			B: uint8(val & 0xFF),
			A: 255,
		}, nil
	}
	return color.RGBA{
		R: uint8(val >> 24),
		G: uint8((val >> 16) & 0xFF),
		B: uint8((val >> 8) & 0xFF),
		A: uint8(val & 0xFF),
	}, nil
}

// MustParseColor is ParseColor for compile-time literals.
func MustParseColor(s string) color.RGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats c as #RRGGBB, or #RRGGBBAA when it is not opaque.
func Hex(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

func linear(channel uint8) float64 {
	c := float64(channel) / 255
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// RelativeLuminance returns the WCAG relative luminance of c. Alpha is
// ignored.
func RelativeLuminance(c color.RGBA) float64 {
	return 0.2126*linear(c.R) + 0.7152*linear(c.G) + 0.0722*linear(c.B)
}

// Contrast returns the WCAG contrast ratio of two colors, in [1, 21].
func Contrast(a, b color.RGBA) float64 {
	l1 := RelativeLuminance(a)
	l2 := RelativeLuminance(b)
	return (math.Max(l1, l2) + 0.05) / (math.Min(l1, l2) + 0.05)
}

// ContrastRatio parses both hex colors and returns their contrast ratio.
func ContrastRatio(hexA, hexB string) (float64, error) {
	a, err := ParseColor(hexA)
	if err != nil {
		return 0, err
	}
	b, err := ParseColor(hexB)
	if err != nil {
		return 0, err
	}
	return Contrast(a, b), nil
}
