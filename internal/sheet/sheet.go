// Package sheet composes screenshots into contact sheets.
package sheet

import (
	"errors"
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

var (
	// ErrNoEntries is returned when a grid has nothing to show.
	ErrNoEntries = errors.New("no screenshots to compose")
	// ErrNoPairs is returned when no family has both a dark and a light theme.
	ErrNoPairs = errors.New("no dark/light pairs found")
)

var (
	gridBackground  = color.RGBA{0x1a, 0x1a, 0x1a, 0xff}
	stripBackground = color.RGBA{0x22, 0x22, 0x22, 0xff}
	borderColor     = color.RGBA{0x44, 0x44, 0x44, 0xff}
	placeholderFill = color.RGBA{0x33, 0x33, 0x33, 0xff}
	placeholderText = color.RGBA{0x80, 0x80, 0x80, 0xff}
	labelColor      = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

// Options controls thumbnail geometry. Zero fields take the defaults.
type Options struct {
	ThumbWidth  int
	ThumbHeight int
	Padding     int
	LabelHeight int
	// Columns only applies to Grid.
	Columns int
}

// DefaultOptions returns the standard contact-sheet geometry.
func DefaultOptions() Options {
	return Options{ThumbWidth: 400, ThumbHeight: 260, Padding: 8, LabelHeight: 20, Columns: 4}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.ThumbWidth <= 0 {
		o.ThumbWidth = d.ThumbWidth
	}
	if o.ThumbHeight <= 0 {
		o.ThumbHeight = d.ThumbHeight
	}
	if o.Padding <= 0 {
		o.Padding = d.Padding
	}
	if o.LabelHeight <= 0 {
		o.LabelHeight = d.LabelHeight
	}
	if o.Columns <= 0 {
		o.Columns = d.Columns
	}
	return o
}

// Entry is one cell of a grid. A nil Image draws a placeholder.
type Entry struct {
	Label string
	Image image.Image
}

// Grid lays entries out row-major, Columns per row, each with a label strip
// above a scaled thumbnail.
func Grid(entries []Entry, opts Options) (*image.RGBA, error) {
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}
	o := opts.withDefaults()
	rows := (len(entries) + o.Columns - 1) / o.Columns
	cellH := o.ThumbHeight + o.LabelHeight + o.Padding
	w := o.Columns*(o.ThumbWidth+o.Padding) + o.Padding
	h := rows*cellH + o.Padding

	lf, err := newLabelFaces()
	if err != nil {
		return nil, err
	}
	defer lf.Close()

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	fill(dst, dst.Bounds(), gridBackground)
	for i, e := range entries {
		x := o.Padding + (i%o.Columns)*(o.ThumbWidth+o.Padding)
		y := o.Padding + (i/o.Columns)*cellH
		drawLabel(dst, lf.regular, labelColor, x+4, y+14, e.Label)

		thumb := image.Rect(x, y+o.LabelHeight, x+o.ThumbWidth, y+o.LabelHeight+o.ThumbHeight)
		if e.Image != nil {
			scale(dst, thumb, e.Image)
		} else {
			fill(dst, thumb, placeholderFill)
			drawLabel(dst, lf.regular, placeholderText, x+20, thumb.Min.Y+o.ThumbHeight/2, "Screenshot not found")
		}
		outline(dst, thumb, borderColor)
	}
	return dst, nil
}

// PairImages is a dark/light pair with its loaded screenshots. Missing
// screenshots leave an empty bordered frame.
type PairImages struct {
	Pair
	Dark  image.Image
	Light image.Image
}

// PairStrip draws each pair on its own row, dark on the left and light on
// the right.
func PairStrip(pairs []PairImages, opts Options) (*image.RGBA, error) {
	if len(pairs) == 0 {
		return nil, ErrNoPairs
	}
	o := opts.withDefaults()
	cellH := o.ThumbHeight + o.LabelHeight + o.Padding
	w := 2*o.ThumbWidth + 3*o.Padding
	h := len(pairs)*cellH + o.Padding

	lf, err := newLabelFaces()
	if err != nil {
		return nil, err
	}
	defer lf.Close()

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	fill(dst, dst.Bounds(), stripBackground)
	y := o.Padding
	for _, p := range pairs {
		drawLabel(dst, lf.bold, labelColor, o.Padding+4, y+14, p.DarkTheme.Name+"  vs  "+p.LightTheme.Name)
		x := o.Padding
		for _, img := range []image.Image{p.Dark, p.Light} {
			thumb := image.Rect(x, y+o.LabelHeight, x+o.ThumbWidth, y+o.LabelHeight+o.ThumbHeight)
			if img != nil {
				scale(dst, thumb, img)
			}
			outline(dst, thumb, borderColor)
			x += o.ThumbWidth + o.Padding
		}
		y += cellH
	}
	return dst, nil
}

func fill(dst draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func scale(dst draw.Image, r image.Rectangle, src image.Image) {
	xdraw.BiLinear.Scale(dst, r, src, src.Bounds(), draw.Over, nil)
}

// outline draws a one pixel frame just inside r.
func outline(dst draw.Image, r image.Rectangle, c color.Color) {
	fill(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), c)
	fill(dst, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), c)
	fill(dst, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), c)
	fill(dst, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), c)
}
