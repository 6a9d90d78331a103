package sheet

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const labelSize = 11

var (
	fontsOnce   sync.Once
	fontsErr    error
	regularFont *opentype.Font
	boldFont    *opentype.Font
)

func loadFonts() {
	if regularFont, fontsErr = opentype.Parse(goregular.TTF); fontsErr != nil {
		return
	}
	boldFont, fontsErr = opentype.Parse(gobold.TTF)
}

type labelFaces struct {
	regular font.Face
	bold    font.Face
}

func newLabelFaces() (*labelFaces, error) {
	fontsOnce.Do(loadFonts)
	if fontsErr != nil {
		return nil, fmt.Errorf("parse font: %w", fontsErr)
	}
	opts := &opentype.FaceOptions{Size: labelSize, DPI: 72, Hinting: font.HintingFull}
	regular, err := opentype.NewFace(regularFont, opts)
	if err != nil {
		return nil, fmt.Errorf("font face: %w", err)
	}
	bold, err := opentype.NewFace(boldFont, opts)
	if err != nil {
		regular.Close()
		return nil, fmt.Errorf("font face: %w", err)
	}
	return &labelFaces{regular: regular, bold: bold}, nil
}

func (lf *labelFaces) Close() {
	lf.regular.Close()
	lf.bold.Close()
}

func drawLabel(dst draw.Image, face font.Face, c color.Color, x, y int, s string) {
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(c), Face: face, Dot: fixed.P(x, y)}
	d.DrawString(s)
}
