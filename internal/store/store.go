// Package store reads and writes PNG artifacts keyed by theme slug.
package store

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Dir is a directory of <name>.png files. It is created on the first write,
// exactly once, however many goroutines write concurrently.
type Dir struct {
	Path string

	mkdirOnce sync.Once
	mkdirErr  error
}

// NewDir returns a store rooted at path. Nothing is touched on disk yet.
func NewDir(path string) *Dir {
	return &Dir{Path: path}
}

func (d *Dir) ensure() error {
	d.mkdirOnce.Do(func() {
		if err := os.MkdirAll(d.Path, 0o755); err != nil {
			d.mkdirErr = fmt.Errorf("create %s: %w", d.Path, err)
		}
	})
	return d.mkdirErr
}

// Exists reports whether the directory is present on disk.
func (d *Dir) Exists() bool {
	info, err := os.Stat(d.Path)
	return err == nil && info.IsDir()
}

// File returns the path of the artifact with the given name.
func (d *Dir) File(name string) string {
	return filepath.Join(d.Path, name+".png")
}

// Save encodes img as <name>.png. The image is written to a temporary file
// and renamed into place so readers never see a partial PNG.
func (d *Dir) Save(name string, img image.Image) (string, error) {
	if err := d.ensure(); err != nil {
		return "", err
	}
	target := d.File(name)
	tmp, err := os.CreateTemp(d.Path, "."+name+"-*.png")
	if err != nil {
		return "", fmt.Errorf("create temp for %s: %w", name, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			os.Remove(tmpName)
		}
	}()
	if err = png.Encode(tmp, img); err != nil {
		tmp.Close()
		return "", fmt.Errorf("encode %s: %w", name, err)
	}
	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", name, err)
	}
	if err = os.Rename(tmpName, target); err != nil {
		return "", fmt.Errorf("rename %s: %w", name, err)
	}
	return target, nil
}

// Open decodes <name>.png. A missing file yields an error wrapping
// fs.ErrNotExist.
func (d *Dir) Open(name string) (image.Image, error) {
	f, err := os.Open(d.File(name))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", d.File(name), err)
	}
	return img, nil
}

// Load is Open for callers that treat a missing artifact as absent rather
// than as an error. It returns nil, nil when the file does not exist.
func (d *Dir) Load(name string) (image.Image, error) {
	img, err := d.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return img, err
}
