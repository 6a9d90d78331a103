//go:build (linux || freebsd || openbsd || netbsd || dragonfly) && cgo

package clipboard

import (
	"image"

	"golang.design/x/clipboard"
)

func initBackend() error {
	return clipboard.Init()
}

// WriteImage publishes img as PNG. The returned channel is closed once
// another application takes over the clipboard; the data is only served
// while this process runs.
func WriteImage(img image.Image) (<-chan struct{}, error) {
	if err := ensureInit(); err != nil {
		return nil, err
	}
	data, err := encodePNG(img)
	if err != nil {
		return nil, err
	}
	return clipboard.Write(clipboard.FmtImage, data), nil
}

// WriteText publishes UTF-8 text, with the same lifetime as WriteImage.
func WriteText(text string) (<-chan struct{}, error) {
	if err := ensureInit(); err != nil {
		return nil, err
	}
	return clipboard.Write(clipboard.FmtText, []byte(text)), nil
}
