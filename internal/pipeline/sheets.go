package pipeline

import (
	"image"

	"github.com/example/themeshot/internal/logging"
	"github.com/example/themeshot/internal/sheet"
	"github.com/example/themeshot/internal/store"
	"github.com/example/themeshot/internal/theme"
)

// Artifact names written next to the screenshots. Descriptor.Validate
// rejects them as slugs.
const (
	GridName  = theme.GridArtifact
	PairsName = theme.PairsArtifact
)

// ContactSheet composes the screenshots found in dir into a grid. Themes
// without a readable screenshot get a placeholder cell.
func ContactSheet(dir *store.Dir, descs []theme.Descriptor, opts sheet.Options, log *logging.Logger) (string, error) {
	entries := make([]sheet.Entry, len(descs))
	for i, d := range descs {
		entries[i] = sheet.Entry{Label: d.Name, Image: loadShot(dir, d.Slug, log)}
	}
	grid, err := sheet.Grid(entries, opts)
	if err != nil {
		return "", err
	}
	return dir.Save(GridName, grid)
}

// PairSheet composes the dark/light pairs of the catalog side by side. It
// returns sheet.ErrNoPairs when the catalog has no complete family.
func PairSheet(dir *store.Dir, descs []theme.Descriptor, opts sheet.Options, log *logging.Logger) (string, error) {
	pairs := sheet.Pairs(descs)
	loaded := make([]sheet.PairImages, len(pairs))
	for i, p := range pairs {
		loaded[i] = sheet.PairImages{
			Pair:  p,
			Dark:  loadShot(dir, p.DarkTheme.Slug, log),
			Light: loadShot(dir, p.LightTheme.Slug, log),
		}
	}
	strip, err := sheet.PairStrip(loaded, opts)
	if err != nil {
		return "", err
	}
	return dir.Save(PairsName, strip)
}

// loadShot returns nil for a missing or undecodable screenshot so the sheet
// draws its slot empty.
func loadShot(dir *store.Dir, slug string, log *logging.Logger) image.Image {
	img, err := dir.Load(slug)
	if err != nil {
		log.WithTheme(slug).Error(err, "screenshot unreadable, leaving slot empty")
		return nil
	}
	return img
}
