package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/themeshot/assets"
	"github.com/example/themeshot/internal/logging"
	"github.com/example/themeshot/internal/render"
	"github.com/example/themeshot/internal/sheet"
	"github.com/example/themeshot/internal/store"
	"github.com/example/themeshot/internal/theme"
)

func sampleCatalog(t *testing.T) (*theme.Loader, []theme.Descriptor) {
	t.Helper()
	fsys, err := assets.Themes()
	require.NoError(t, err)
	loader := &theme.Loader{FS: fsys}
	descs, err := loader.Catalog()
	require.NoError(t, err)
	return loader, descs
}

func TestRunRendersCatalog(t *testing.T) {
	loader, descs := sampleCatalog(t)
	out := store.NewDir(filepath.Join(t.TempDir(), "screenshots"))
	r := &Renderer{Loader: loader, Out: out, Workers: 3}

	results := r.Run(context.Background(), descs)
	require.Len(t, results, len(descs))
	assert.Equal(t, 0, Failed(results))
	for i, res := range results {
		assert.Equal(t, descs[i].Slug, res.Theme.Slug)
		img, err := out.Open(res.Theme.Slug)
		require.NoError(t, err)
		assert.Equal(t, render.Width, img.Bounds().Dx())
		assert.Equal(t, render.Height, img.Bounds().Dy())
	}

	grid, err := ContactSheet(out, descs, sheet.Options{}, nil)
	require.NoError(t, err)
	assert.FileExists(t, grid)

	pairs, err := PairSheet(out, descs, sheet.Options{}, nil)
	require.NoError(t, err)
	assert.Equal(t, out.File(PairsName), pairs)
}

func TestRunKeepsGoingAfterFailure(t *testing.T) {
	loader := &theme.Loader{FS: fstest.MapFS{
		"good.theme.json": {Data: []byte(`{"name":"Good","ui":{"*":{"background":"#000000","foreground":"#ffffff"}}}`)},
		"bad.theme.json":  {Data: []byte(`{"name":"Bad","ui":{"*":{"background":"#000000"}}}`)},
	}}
	out := store.NewDir(t.TempDir())
	r := &Renderer{Loader: loader, Out: out, Workers: 1}
	results := r.Run(context.Background(), []theme.Descriptor{
		{Slug: "bad", Name: "Bad"},
		{Slug: "missing", Name: "Missing"},
		{Slug: "good", Name: "Good"},
	})
	require.Len(t, results, 3)
	assert.ErrorIs(t, results[0].Err, theme.ErrMissingRequiredColor)
	assert.ErrorIs(t, results[1].Err, os.ErrNotExist)
	require.NoError(t, results[2].Err)
	assert.Equal(t, out.File("good"), results[2].Path)
	assert.Equal(t, 2, Failed(results))
}

func TestRunCancelled(t *testing.T) {
	loader, descs := sampleCatalog(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := &Renderer{Loader: loader, Out: store.NewDir(t.TempDir())}
	results := r.Run(ctx, descs)
	for _, res := range results {
		assert.ErrorIs(t, res.Err, ErrCancelled)
	}
}

func TestPairSheetWithoutPairs(t *testing.T) {
	out := store.NewDir(t.TempDir())
	_, err := PairSheet(out, []theme.Descriptor{{Slug: "solo-dark", Name: "Solo", Dark: true}}, sheet.Options{}, logging.Nop())
	require.ErrorIs(t, err, sheet.ErrNoPairs)
}

func TestSheetsSurviveUnreadableScreenshot(t *testing.T) {
	loader, descs := sampleCatalog(t)
	dir := t.TempDir()
	out := store.NewDir(dir)
	r := &Renderer{Loader: loader, Out: out, Workers: 2}
	require.Equal(t, 0, Failed(r.Run(context.Background(), descs)))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ocean-dark.png"), []byte("not a png"), 0o644))

	grid, err := ContactSheet(out, descs, sheet.Options{}, logging.Nop())
	require.NoError(t, err)
	img, err := out.Open(GridName)
	require.NoError(t, err)
	assert.Equal(t, grid, out.File(GridName))
	assert.Positive(t, img.Bounds().Dx())

	strip, err := PairSheet(out, descs, sheet.Options{}, logging.Nop())
	require.NoError(t, err)
	assert.FileExists(t, strip)
}
