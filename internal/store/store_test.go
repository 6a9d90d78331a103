package store

import (
	"image"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndOpen(t *testing.T) {
	dir := NewDir(filepath.Join(t.TempDir(), "nested", "shots"))
	assert.False(t, dir.Exists())

	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.SetRGBA(1, 1, color.RGBA{R: 9, G: 8, B: 7, A: 255})
	path, err := dir.Save("ocean-dark", img)
	require.NoError(t, err)
	assert.Equal(t, dir.File("ocean-dark"), path)
	assert.True(t, dir.Exists())

	got, err := dir.Open("ocean-dark")
	require.NoError(t, err)
	r, g, b, a := got.At(1, 1).RGBA()
	assert.Equal(t, []uint32{9 * 0x101, 8 * 0x101, 7 * 0x101, 0xffff}, []uint32{r, g, b, a})

	entries, err := os.ReadDir(dir.Path)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestOpenMissing(t *testing.T) {
	dir := NewDir(t.TempDir())
	_, err := dir.Open("nope")
	require.ErrorIs(t, err, fs.ErrNotExist)

	img, err := dir.Load("nope")
	require.NoError(t, err)
	assert.Nil(t, img)
}

func TestOpenCorrupt(t *testing.T) {
	dir := NewDir(t.TempDir())
	require.NoError(t, os.WriteFile(dir.File("bad"), []byte("not a png"), 0o644))
	_, err := dir.Load("bad")
	require.Error(t, err)
	assert.NotErrorIs(t, err, fs.ErrNotExist)
}

func TestConcurrentSaves(t *testing.T) {
	dir := NewDir(filepath.Join(t.TempDir(), "out"))
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	names := []string{"a", "b", "c", "d", "e", "f", "g", "h"}

	var wg sync.WaitGroup
	errs := make([]error, len(names))
	for i, name := range names {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = dir.Save(name, img)
		}()
	}
	wg.Wait()
	for _, err := range errs {
		require.NoError(t, err)
	}
	entries, err := os.ReadDir(dir.Path)
	require.NoError(t, err)
	assert.Len(t, entries, len(names))
}
