// Package pipeline renders a theme catalog into screenshot artifacts.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/example/themeshot/internal/logging"
	"github.com/example/themeshot/internal/render"
	"github.com/example/themeshot/internal/store"
	"github.com/example/themeshot/internal/theme"
)

// ErrCancelled marks themes that were never started because the batch was
// cancelled.
var ErrCancelled = errors.New("render cancelled")

// Result is the outcome of rendering one theme.
type Result struct {
	Theme theme.Descriptor
	// Path is the written screenshot, empty on failure.
	Path string
	Err  error
}

// Renderer renders every theme of a catalog into Out as <slug>.png.
type Renderer struct {
	Loader  *theme.Loader
	Out     *store.Dir
	Workers int
	Log     *logging.Logger
}

// Run renders descs concurrently. A failing theme is recorded in its Result
// and never stops the others. Results are in catalog order.
func (r *Renderer) Run(ctx context.Context, descs []theme.Descriptor) []Result {
	results := make([]Result, len(descs))
	for i, d := range descs {
		results[i] = Result{Theme: d, Err: ErrCancelled}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(r.Workers, 1))
	for i, d := range descs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			results[i] = r.renderOne(d)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func (r *Renderer) renderOne(d theme.Descriptor) Result {
	log := r.Log.WithTheme(d.Slug)
	start := time.Now()
	res := Result{Theme: d}

	def, err := r.Loader.Load(d)
	if err != nil {
		res.Err = err
		log.Error(err, "load theme")
		return res
	}
	shot, err := render.Render(render.InputFor(def))
	if err != nil {
		res.Err = err
		log.Error(err, "render theme")
		return res
	}
	path, err := r.Out.Save(d.Slug, shot.Image)
	if err != nil {
		res.Err = fmt.Errorf("save %s: %w", d.Slug, err)
		log.Error(res.Err, "save screenshot")
		return res
	}
	res.Path = path
	log.Infof("rendered", map[string]any{"path": path, "elapsed": time.Since(start).String()})
	return res
}

// Failed counts results carrying an error.
func Failed(results []Result) int {
	n := 0
	for _, res := range results {
		if res.Err != nil {
			n++
		}
	}
	return n
}
