//go:build !(linux || freebsd || openbsd || netbsd || dragonfly)

package clipboard

import (
	"errors"
	"image"
)

var errUnsupported = errors.New("clipboard export is not supported on this platform")

func WriteImage(image.Image) (<-chan struct{}, error) {
	return nil, errUnsupported
}

func WriteText(string) (<-chan struct{}, error) {
	return nil, errUnsupported
}
