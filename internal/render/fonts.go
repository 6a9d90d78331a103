package render

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type typeface int

const (
	sans typeface = iota
	sansBold
	mono
	monoBold
	monoItalic
)

var (
	fontsOnce sync.Once
	fontsErr  error
	parsed    map[typeface]*opentype.Font
)

func loadFonts() {
	sources := map[typeface][]byte{
		sans:       goregular.TTF,
		sansBold:   gobold.TTF,
		mono:       gomono.TTF,
		monoBold:   gomonobold.TTF,
		monoItalic: gomonoitalic.TTF,
	}
	parsed = make(map[typeface]*opentype.Font, len(sources))
	for tf, data := range sources {
		f, err := opentype.Parse(data)
		if err != nil {
			fontsErr = fmt.Errorf("parse font: %w", err)
			return
		}
		parsed[tf] = f
	}
}

// faces are the sized font faces of one render. A font.Face caches glyphs
// and must not be shared between goroutines, so every render builds its own.
type faces struct {
	title      font.Face
	tree       font.Face
	tab        font.Face
	label      font.Face
	gutter     font.Face
	code       font.Face
	codeBold   font.Face
	codeItalic font.Face
	opened     []font.Face
}

func newFaces() (*faces, error) {
	fontsOnce.Do(loadFonts)
	if fontsErr != nil {
		return nil, fontsErr
	}
	fs := &faces{}
	specs := []struct {
		dst  *font.Face
		tf   typeface
		size float64
	}{
		{&fs.title, sansBold, 13},
		{&fs.tree, sans, 12},
		{&fs.tab, sans, 11},
		{&fs.label, sansBold, 9},
		{&fs.gutter, mono, 11},
		{&fs.code, mono, 12},
		{&fs.codeBold, monoBold, 12},
		{&fs.codeItalic, monoItalic, 12},
	}
	for _, s := range specs {
		face, err := opentype.NewFace(parsed[s.tf], &opentype.FaceOptions{Size: s.size, DPI: 72, Hinting: font.HintingFull})
		if err != nil {
			fs.Close()
			return nil, fmt.Errorf("font face: %w", err)
		}
		*s.dst = face
		fs.opened = append(fs.opened, face)
	}
	return fs, nil
}

// Close releases every face.
func (fs *faces) Close() {
	for _, f := range fs.opened {
		f.Close()
	}
	fs.opened = nil
}

func (fs *faces) forStyle(s style) font.Face {
	switch s {
	case bold:
		return fs.codeBold
	case italic:
		return fs.codeItalic
	default:
		return fs.code
	}
}
