package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// straight converts a parsed theme color, whose channels are not
// premultiplied, into a color the draw package composites correctly.
func straight(c color.RGBA) color.NRGBA {
	return color.NRGBA(c)
}

// canvas is the drawing surface of one render.
type canvas struct {
	img *image.RGBA
}

func newCanvas(w, h int) *canvas {
	return &canvas{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// fill composites c over the rectangle x,y,w,h.
func (c *canvas) fill(x, y, w, h int, col color.RGBA) {
	r := image.Rect(x, y, x+w, y+h)
	draw.Draw(c.img, r, image.NewUniform(straight(col)), image.Point{}, draw.Over)
}

// text draws s with its baseline at (x, y) and returns the pen position
// after the last glyph.
func (c *canvas) text(face font.Face, col color.Color, x, y int, s string) fixed.Int26_6 {
	return c.textAt(face, col, fixed.I(x), y, s)
}

func (c *canvas) textAt(face font.Face, col color.Color, x fixed.Int26_6, y int, s string) fixed.Int26_6 {
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: x, Y: fixed.I(y)},
	}
	d.DrawString(s)
	return d.Dot.X
}

// roundedRects fills antialiased rounded rectangles of the given size.
func (c *canvas) roundedRects(rects []image.Rectangle, cols []color.RGBA, radius float64) {
	dc := gg.NewContextForRGBA(c.img)
	for i, r := range rects {
		dc.SetColor(straight(cols[i]))
		dc.DrawRoundedRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()), radius)
		dc.Fill()
	}
}

// codeLine tracks the pen of one line of the editor listing.
type codeLine struct {
	c     *canvas
	faces *faces
	y     int
	x     fixed.Int26_6
}

func (l *codeLine) span(s style, col color.RGBA, text string) {
	l.x = l.c.textAt(l.faces.forStyle(s), straight(col), l.x, l.y, text)
}
