package theme

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#1A2B3C", color.RGBA{R: 0x1a, G: 0x2b, B: 0x3c, A: 0xff}},
		{"1a2b3c", color.RGBA{R: 0x1a, G: 0x2b, B: 0x3c, A: 0xff}},
		{"#11223380", color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x80}},
		{"  #ffffff ", color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseColorRejects(t *testing.T) {
	for _, in := range []string{"#ZZZZZZ", "#ABC", "", "#12345", "#1234567"} {
		_, err := ParseColor(in)
		require.ErrorIs(t, err, ErrInvalidColorFormat, in)
	}
}

func TestHexRoundTrip(t *testing.T) {
	assert.Equal(t, "#1A2B3C", Hex(MustParseColor("#1a2b3c")))
	assert.Equal(t, "#1A2B3C80", Hex(MustParseColor("#1a2b3c80")))
}

func TestContrastRatio(t *testing.T) {
	same, err := ContrastRatio("#777777", "#777777")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, same, 1e-9)

	bw, err := ContrastRatio("#000000", "#FFFFFF")
	require.NoError(t, err)
	assert.InDelta(t, 21.0, bw, 0.01)

	wb, err := ContrastRatio("#FFFFFF", "#000000")
	require.NoError(t, err)
	assert.InDelta(t, bw, wb, 1e-9)

	_, err = ContrastRatio("#000000", "nope")
	require.ErrorIs(t, err, ErrInvalidColorFormat)
}

func TestRelativeLuminanceIgnoresAlpha(t *testing.T) {
	a := RelativeLuminance(color.RGBA{R: 200, G: 100, B: 50, A: 255})
	b := RelativeLuminance(color.RGBA{R: 200, G: 100, B: 50, A: 10})
	assert.Equal(t, a, b)
	assert.InDelta(t, 0.0, RelativeLuminance(color.RGBA{A: 255}), 1e-12)
	assert.InDelta(t, 1.0, RelativeLuminance(color.RGBA{R: 255, G: 255, B: 255, A: 255}), 1e-9)
}
