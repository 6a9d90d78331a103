// Package report compares current screenshots with approved baselines.
package report

import (
	"bufio"
	"context"
	"fmt"
	"image"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/example/themeshot/internal/diff"
	"github.com/example/themeshot/internal/logging"
	"github.com/example/themeshot/internal/theme"
)

// Threshold is the largest difference percentage still reported as OK.
const Threshold = 1.0

// Status is the outcome of comparing one theme.
type Status string

const (
	StatusOK             Status = "OK"
	StatusDiff           Status = "DIFF"
	StatusSkipNoBaseline Status = "SKIP_NO_BASELINE"
	StatusFailNoCurrent  Status = "FAIL_NO_CURRENT"
	// StatusError marks an image that exists but could not be read.
	StatusError Status = "ERROR"
)

// Failed reports whether the status counts towards the failure total.
func (s Status) Failed() bool {
	return s == StatusDiff || s == StatusFailNoCurrent || s == StatusError
}

// ImageSource loads the image of a theme. Absent images are nil, nil.
type ImageSource interface {
	Load(slug string) (image.Image, error)
}

// DiffSink persists a diff image and returns where it went.
type DiffSink interface {
	Save(name string, img image.Image) (string, error)
}

// Result is the comparison outcome of one theme.
type Result struct {
	Slug        string
	DiffPercent float64
	Status      Status
	// DiffPath is set when a diff image was written.
	DiffPath string
	Err      error
}

// Report holds every result in catalog order.
type Report struct {
	Results []Result
}

// Failures counts DIFF, FAIL_NO_CURRENT and ERROR results.
func (r *Report) Failures() int {
	n := 0
	for _, res := range r.Results {
		if res.Status.Failed() {
			n++
		}
	}
	return n
}

// Count returns how many results have the given status.
func (r *Report) Count(s Status) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == s {
			n++
		}
	}
	return n
}

// Compared counts the themes that had both a baseline and a current image.
func (r *Report) Compared() int {
	return r.Count(StatusOK) + r.Count(StatusDiff)
}

// Line formats one result the way it appears in the text report.
func (res Result) Line() string {
	switch res.Status {
	case StatusOK:
		return fmt.Sprintf("[ OK ] %s - %.2f%% difference", res.Slug, res.DiffPercent)
	case StatusDiff:
		return fmt.Sprintf("[DIFF] %s - %.2f%% difference", res.Slug, res.DiffPercent)
	case StatusSkipNoBaseline:
		return fmt.Sprintf("[SKIP] %s - no baseline", res.Slug)
	case StatusFailNoCurrent:
		return fmt.Sprintf("[FAIL] %s - no current screenshot", res.Slug)
	default:
		return fmt.Sprintf("[ERR ] %s - %v", res.Slug, res.Err)
	}
}

// WriteTo writes the plain text report.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)
	fmt.Fprint(bw, "Screenshot Comparison Report\n")
	fmt.Fprint(bw, "===========================\n\n")
	for _, res := range r.Results {
		fmt.Fprintln(bw, res.Line())
	}
	fmt.Fprintf(bw, "\n%d theme(s) total, %d compared, %d skipped\n", len(r.Results), r.Compared(), r.Count(StatusSkipNoBaseline))
	fmt.Fprintf(bw, "%d theme(s) with visual differences > 1%%\n", r.Failures())
	err := bw.Flush()
	return cw.n, err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// Reporter compares the current screenshots of a catalog against baselines.
type Reporter struct {
	Baselines ImageSource
	Current   ImageSource
	// Diffs receives <slug>-diff images for DIFF results. Nil disables them.
	Diffs   DiffSink
	Workers int
	Log     *logging.Logger
}

// Run compares every theme. Themes are compared concurrently, but results
// keep catalog order. Once ctx is cancelled no new theme is started; the
// report then only holds the themes that finished.
func (rp *Reporter) Run(ctx context.Context, descs []theme.Descriptor) *Report {
	results := make([]Result, len(descs))
	done := make([]bool, len(descs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(rp.Workers, 1))
	for i, d := range descs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			results[i] = rp.compare(d.Slug)
			done[i] = true
			return nil
		})
	}
	_ = g.Wait()

	rep := &Report{Results: make([]Result, 0, len(descs))}
	for i, res := range results {
		if done[i] {
			rep.Results = append(rep.Results, res)
		}
	}
	return rep
}

func (rp *Reporter) compare(slug string) Result {
	log := rp.Log.WithTheme(slug)
	res := Result{Slug: slug}

	baseline, err := rp.Baselines.Load(slug)
	if err != nil {
		res.Status, res.Err = StatusError, fmt.Errorf("baseline: %w", err)
		log.Error(res.Err, "read baseline")
		return res
	}
	if baseline == nil {
		res.Status = StatusSkipNoBaseline
		log.Debug("no baseline")
		return res
	}
	current, err := rp.Current.Load(slug)
	if err != nil {
		res.Status, res.Err = StatusError, fmt.Errorf("current: %w", err)
		log.Error(res.Err, "read current screenshot")
		return res
	}
	if current == nil {
		res.Status = StatusFailNoCurrent
		log.Warn("no current screenshot")
		return res
	}

	d := diff.Compare(baseline, current)
	res.DiffPercent = d.Percent
	if d.Percent <= Threshold {
		res.Status = StatusOK
		return res
	}
	res.Status = StatusDiff
	log.Infof("visual difference", map[string]any{"percent": d.Percent, "pixels": d.Differing})
	if rp.Diffs != nil {
		path, err := rp.Diffs.Save(slug+"-diff", d.Image)
		if err != nil {
			res.Err = fmt.Errorf("write diff: %w", err)
			log.Error(res.Err, "write diff image")
			return res
		}
		res.DiffPath = path
	}
	return res
}
