// Package render draws the synthetic IDE mock-up used as a theme screenshot.
package render

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/math/fixed"

	"github.com/example/themeshot/internal/theme"
)

// Canvas size of every screenshot.
const (
	Width  = 800
	Height = 520
)

const (
	titleHeight   = 32
	sidebarWidth  = 200
	editorX       = sidebarWidth + 1
	tabHeight     = 28
	statusHeight  = 28
	treeTop       = 52
	treeStep      = 20
	selectedItem  = 3
	codeX         = 250
	codeY         = 76
	lineHeight    = 17
	gutterX       = 210
	gutterAlpha   = 100
	swatchY       = Height - 60
	swatchSize    = 22
	swatchGap     = 6
	swatchRadius  = 2
	swatchStartX  = 14
	activeTabW    = 120
	underlineSize = 3
)

// Input is everything needed to render one theme.
type Input struct {
	Slug   string
	Name   string
	Colors *theme.ColorSet
	Syntax theme.SyntaxPalette
	Icons  theme.IconPalette
}

// InputFor builds the render input of a loaded theme.
func InputFor(def *theme.Definition) Input {
	return Input{
		Slug:   def.Slug,
		Name:   def.Name,
		Colors: def.Colors,
		Syntax: def.Syntax,
		Icons:  def.Icons,
	}
}

// Screenshot is one rendered theme.
type Screenshot struct {
	Slug  string
	Image *image.RGBA
}

// chrome holds the UI colors resolved with their fallbacks.
type chrome struct {
	bg, fg    color.RGBA
	title     color.RGBA
	sidebar   color.RGBA
	separator color.RGBA
	treeSel   color.RGBA
	treeFg    color.RGBA
	editor    color.RGBA
	tabs      color.RGBA
	activeTab color.RGBA
	underline color.RGBA
	disabled  color.RGBA
	statusBg  color.RGBA
	statusFg  color.RGBA
}

func or(cs *theme.ColorSet, component, role string, fallback color.RGBA) color.RGBA {
	if c, ok := cs.Lookup(component, role); ok {
		return c
	}
	return fallback
}

func resolveChrome(cs *theme.ColorSet) (chrome, error) {
	bg, fg, err := cs.Required()
	if err != nil {
		return chrome{}, err
	}
	ch := chrome{bg: bg, fg: fg}
	ch.title = or(cs, "EditorTabs", "background", bg)
	if c, ok := cs.Own("ToolWindow", "Header.background"); ok {
		ch.sidebar = c
	} else {
		ch.sidebar = bg
	}
	ch.separator = or(cs, theme.Defaults, "separatorColor", theme.NeutralGray)
	ch.treeSel = or(cs, "Tree", "selectionBackground", theme.NeutralGray)
	ch.treeFg = or(cs, "Tree", "foreground", fg)
	ch.editor = or(cs, "Editor", "background", bg)
	ch.tabs = or(cs, "EditorTabs", "background", bg)
	ch.activeTab = or(cs, "EditorTabs", "underlinedTabBackground", ch.editor)
	ch.underline = or(cs, "EditorTabs", "underlineColor", or(cs, "ProgressBar", "progressColor", fg))
	ch.disabled = or(cs, theme.Defaults, "disabledForeground", theme.NeutralGray)
	ch.statusBg = or(cs, "StatusBar", "background", bg)
	ch.statusFg = or(cs, "StatusBar", "foreground", fg)
	return ch, nil
}

// Render draws the mock IDE for one theme. The same input always produces
// the same pixels. A theme without "*" background or foreground fails with
// theme.ErrMissingRequiredColor.
func Render(in Input) (*Screenshot, error) {
	ch, err := resolveChrome(in.Colors)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", in.Slug, err)
	}
	fs, err := newFaces()
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", in.Slug, err)
	}
	defer fs.Close()

	c := newCanvas(Width, Height)
	c.fill(0, 0, Width, Height, ch.bg)

	c.fill(0, 0, Width, titleHeight, ch.title)
	c.text(fs.title, straight(ch.fg), 12, 22, in.Name)

	drawSidebar(c, fs, ch)
	drawEditor(c, fs, ch, in.Syntax)
	drawStatusBar(c, fs, ch, in.Name)
	drawSwatches(c, fs, ch, in.Icons)

	return &Screenshot{Slug: in.Slug, Image: c.img}, nil
}

func drawSidebar(c *canvas, fs *faces, ch chrome) {
	c.fill(0, titleHeight, sidebarWidth, Height-titleHeight, ch.sidebar)
	c.fill(sidebarWidth, titleHeight, 1, Height-titleHeight, ch.separator)

	y := treeTop
	for i, item := range treeItems {
		if i == selectedItem {
			c.fill(0, y-12, sidebarWidth, treeStep, ch.treeSel)
		}
		c.text(fs.tree, straight(ch.treeFg), 12, y, item)
		y += treeStep
	}
}

func drawEditor(c *canvas, fs *faces, ch chrome, syntax theme.SyntaxPalette) {
	c.fill(editorX, titleHeight, Width-editorX, Height-titleHeight-statusHeight-2, ch.editor)

	c.fill(editorX, titleHeight, Width-editorX, tabHeight, ch.tabs)
	c.fill(editorX, titleHeight, activeTabW, tabHeight, ch.activeTab)
	c.fill(editorX, titleHeight+tabHeight-underlineSize, activeTabW, underlineSize, ch.underline)
	c.text(fs.tab, straight(ch.fg), 215, 50, "App.java")
	c.text(fs.tab, straight(ch.disabled), 335, 50, "README.md")

	gutter := color.NRGBA{R: ch.fg.R, G: ch.fg.G, B: ch.fg.B, A: gutterAlpha}
	for n := 1; n <= len(listing); n++ {
		c.text(fs.gutter, gutter, gutterX, codeY+(n-1)*lineHeight, fmt.Sprintf("%3d", n))
	}

	for i, r := range listing {
		line := &codeLine{c: c, faces: fs, y: codeY + i*lineHeight, x: fixed.I(codeX + r.indent)}
		for _, t := range r.tokens {
			col := ch.fg
			if t.role != plain {
				col = syntax.Color(t.role)
			}
			line.span(t.style, col, t.text)
		}
	}
}

func drawStatusBar(c *canvas, fs *faces, ch chrome, name string) {
	top := Height - statusHeight
	c.fill(0, top, Width, statusHeight, ch.statusBg)
	c.fill(0, top, Width, 1, ch.separator)
	c.text(fs.tab, straight(ch.statusFg), 12, Height-10, "UTF-8  |  LF  |  Java 17  |  "+name)
}

func drawSwatches(c *canvas, fs *faces, ch chrome, icons theme.IconPalette) {
	c.text(fs.label, straight(ch.treeFg), swatchStartX, swatchY-6, "Icon Palette")
	rects := make([]image.Rectangle, 0, len(theme.IconSwatches))
	cols := make([]color.RGBA, 0, len(theme.IconSwatches))
	x := swatchStartX
	for _, sw := range theme.IconSwatches {
		rects = append(rects, image.Rect(x, swatchY, x+swatchSize, swatchY+swatchSize))
		cols = append(cols, icons.Resolve(sw.Key, sw.Fallback))
		x += swatchSize + swatchGap
	}
	c.roundedRects(rects, cols, swatchRadius)
}
