// Package diff compares two screenshots pixel by pixel.
package diff

import (
	"image"
	"image/color"
)

const (
	// Tolerance is the largest per-channel difference still treated as a
	// match, absorbing antialiasing noise.
	Tolerance = 5
	// MatchAlpha is the alpha given to identical pixels in the diff image.
	MatchAlpha = 0x40
)

// Highlight marks pixels that differ beyond Tolerance.
var Highlight = color.NRGBA{R: 255, A: 255}

// Result describes the comparison of two images over their overlapping
// region.
type Result struct {
	Percent   float64
	Differing int
	Total     int
	// Image has the size of the overlap: identical pixels are the current
	// pixel faded to MatchAlpha, differing pixels are Highlight and pixels
	// within tolerance are copied from current.
	Image *image.NRGBA
}

// Compare diffs current against baseline. Only the region both images cover,
// anchored at their top-left corners, is compared. Pixels match when their
// non-premultiplied RGBA values are identical; otherwise the largest R, G or
// B difference decides. Alpha alone never counts as a difference.
func Compare(baseline, current image.Image) Result {
	bb, cb := baseline.Bounds(), current.Bounds()
	w := min(bb.Dx(), cb.Dx())
	h := min(bb.Dy(), cb.Dy())
	w, h = max(w, 0), max(h, 0)

	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	res := Result{Total: w * h, Image: out}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			b := nrgbaAt(baseline, bb.Min.X+x, bb.Min.Y+y)
			c := nrgbaAt(current, cb.Min.X+x, cb.Min.Y+y)
			switch {
			case b == c:
				out.SetNRGBA(x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: MatchAlpha})
			case maxDelta(b, c) > Tolerance:
				out.SetNRGBA(x, y, Highlight)
				res.Differing++
			default:
				out.SetNRGBA(x, y, c)
			}
		}
	}
	if res.Total > 0 {
		res.Percent = float64(res.Differing) * 100 / float64(res.Total)
	}
	return res
}

func nrgbaAt(img image.Image, x, y int) color.NRGBA {
	switch src := img.(type) {
	case *image.NRGBA:
		return src.NRGBAAt(x, y)
	case *image.RGBA:
		return color.NRGBAModel.Convert(src.RGBAAt(x, y)).(color.NRGBA)
	}
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

func maxDelta(a, b color.NRGBA) uint8 {
	return max(absDiff(a.R, b.R), absDiff(a.G, b.G), absDiff(a.B, b.B))
}
