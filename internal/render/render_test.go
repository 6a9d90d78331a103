package render

import (
	"bytes"
	"errors"
	"image/color"
	"testing"

	"github.com/example/themeshot/internal/theme"
)

func hex(s string) color.RGBA { return theme.MustParseColor(s) }

func sampleInput() Input {
	cs := theme.ColorSetFromMap(map[string]map[string]color.RGBA{
		"*": {
			"background":          hex("#101820"),
			"foreground":          hex("#E0E0E0"),
			"selectionBackground": hex("#304050"),
			"separatorColor":      hex("#050505"),
			"disabledForeground":  hex("#707070"),
		},
		"EditorTabs": {
			"background":     hex("#202830"),
			"underlineColor": hex("#FF8800"),
		},
		"Editor":     {"background": hex("#181818")},
		"Tree":       {"selectionBackground": hex("#405060")},
		"ToolWindow": {"Header.background": hex("#0A1A2A")},
		"StatusBar":  {"background": hex("#222A33")},
	})
	syntax := theme.ExtractPalette(nil, theme.DefaultAttributeMap)
	syntax[theme.RoleKeyword] = hex("#CC7832")
	return Input{
		Slug:   "sample",
		Name:   "Sample Theme",
		Colors: cs,
		Syntax: syntax,
		Icons:  theme.IconPalette{"Actions.Blue": hex("#0011FF")},
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	a, err := Render(sampleInput())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	b, err := Render(sampleInput())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := a.Image.Bounds(); got.Dx() != Width || got.Dy() != Height {
		t.Fatalf("unexpected bounds %v", got)
	}
	if !bytes.Equal(a.Image.Pix, b.Image.Pix) {
		t.Fatal("two renders of the same input differ")
	}
	if a.Slug != "sample" {
		t.Fatalf("slug %q", a.Slug)
	}
}

func TestRenderLayoutColors(t *testing.T) {
	shot, err := Render(sampleInput())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	img := shot.Image
	checks := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"title bar", 790, 4, hex("#202830")},
		{"sidebar", 150, 300, hex("#0A1A2A")},
		{"separator", 200, 300, hex("#050505")},
		{"selected tree item", 190, 102, hex("#405060")},
		{"editor", 790, 300, hex("#181818")},
		{"inactive tab strip", 790, 40, hex("#202830")},
		{"active tab underline", 205, 58, hex("#FF8800")},
		{"active tab falls back to editor", 318, 36, hex("#181818")},
		{"status bar", 790, 510, hex("#222A33")},
		{"status separator", 790, Height - statusHeight, hex("#050505")},
		{"declared swatch", swatchStartX + swatchSize/2, swatchY + swatchSize/2, hex("#0011FF")},
		{"fallback swatch", swatchStartX + swatchSize + swatchGap + swatchSize/2, swatchY + swatchSize/2, hex("#34a853")},
	}
	for _, c := range checks {
		if got := img.RGBAAt(c.x, c.y); got != c.want {
			t.Errorf("%s at (%d,%d): got %v want %v", c.name, c.x, c.y, got, c.want)
		}
	}
}

func TestRenderFallbacks(t *testing.T) {
	in := Input{
		Slug: "bare",
		Name: "Bare",
		Colors: theme.ColorSetFromMap(map[string]map[string]color.RGBA{
			"*": {"background": hex("#000000"), "foreground": hex("#FFFFFF")},
		}),
	}
	shot, err := Render(in)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := shot.Image.RGBAAt(150, 300); got != hex("#000000") {
		t.Errorf("sidebar should fall back to background, got %v", got)
	}
	if got := shot.Image.RGBAAt(200, 300); got != theme.NeutralGray {
		t.Errorf("separator should fall back to gray, got %v", got)
	}
	if got := shot.Image.RGBAAt(205, 58); got != hex("#FFFFFF") {
		t.Errorf("underline should fall back to foreground, got %v", got)
	}
}

func TestRenderMissingRequiredColor(t *testing.T) {
	in := sampleInput()
	in.Colors = theme.ColorSetFromMap(map[string]map[string]color.RGBA{
		"*": {"background": hex("#000000")},
	})
	_, err := Render(in)
	if !errors.Is(err, theme.ErrMissingRequiredColor) {
		t.Fatalf("expected ErrMissingRequiredColor, got %v", err)
	}
}

func TestRenderDiffersBetweenThemes(t *testing.T) {
	a, err := Render(sampleInput())
	if err != nil {
		t.Fatal(err)
	}
	in := sampleInput()
	in.Syntax = theme.ExtractPalette(nil, theme.DefaultAttributeMap)
	b, err := Render(in)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(a.Image.Pix, b.Image.Pix) {
		t.Fatal("changing the keyword color did not change the render")
	}
}
