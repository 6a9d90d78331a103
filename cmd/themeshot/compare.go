package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/themeshot/internal/clipboard"
	"github.com/example/themeshot/internal/report"
	"github.com/example/themeshot/internal/theme"
)

// ReportFile is written next to the screenshots.
const ReportFile = "comparison-report.txt"

func newCompareCmd(a *app) *cobra.Command {
	var (
		copyReport bool
		hold       time.Duration
	)
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare rendered screenshots against approved baselines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, descs, err := a.catalog()
			if err != nil {
				return err
			}
			rep, err := a.compare(cmd, descs)
			if err != nil || rep == nil {
				return err
			}
			if copyReport {
				var buf bytes.Buffer
				if _, err := rep.WriteTo(&buf); err != nil {
					return err
				}
				lost, err := clipboard.WriteText(buf.String())
				if err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				a.notifier.Copied("comparison report")
				if err := holdClipboard(cmd, lost, hold); err != nil {
					return err
				}
			}
			if n := rep.Failures(); n > 0 {
				return failures("%d theme(s) with visual differences", n)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&copyReport, "copy", false, "copy the text report to the clipboard")
	cmd.Flags().DurationVar(&hold, "hold", 30*time.Second, "how long to keep serving the clipboard")
	return cmd
}

// compare runs the reporter and writes comparison-report.txt. A missing
// baseline directory is not an error: it prints how to create one and
// returns a nil report.
func (a *app) compare(cmd *cobra.Command, descs []theme.Descriptor) (*report.Report, error) {
	out := cmd.OutOrStdout()
	baselines := a.baselines()
	if !baselines.Exists() {
		abs, _ := filepath.Abs(baselines.Path)
		fmt.Fprintf(out, "No baseline directory found at %s\n", abs)
		fmt.Fprintf(out, "To create baselines, copy %s to %s\n",
			filepath.Join(a.cfg.ScreenshotsDir, "*.png"), baselines.Path+string(filepath.Separator))
		return nil, nil
	}

	rp := &report.Reporter{
		Baselines: baselines,
		Current:   a.screenshots(),
		Diffs:     a.diffs(),
		Workers:   a.workerCount(),
		Log:       a.log,
	}
	rep := rp.Run(cmd.Context(), descs)

	var buf bytes.Buffer
	if _, err := rep.WriteTo(&buf); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(a.cfg.ScreenshotsDir, 0o755); err != nil {
		return nil, err
	}
	reportPath := filepath.Join(a.cfg.ScreenshotsDir, ReportFile)
	if err := os.WriteFile(reportPath, buf.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("write report: %w", err)
	}

	printReport(out, rep)
	fmt.Fprintf(out, "Report saved to: %s\n", reportPath)
	if rep.Failures() > 0 {
		abs, _ := filepath.Abs(a.cfg.DiffsDir)
		fmt.Fprintf(out, "Diff images saved to: %s\n", abs)
	}
	a.notifier.Compared(rep.Compared(), rep.Failures())
	return rep, nil
}

// printReport shows the report with each status tag coloured.
func printReport(out io.Writer, rep *report.Report) {
	fmt.Fprintln(out, titleStyle.Render("Screenshot Comparison Report"))
	fmt.Fprintln(out)
	for _, res := range rep.Results {
		line := res.Line()
		tag, rest, _ := strings.Cut(line, "]")
		fmt.Fprintf(out, "%s%s\n", statusStyle(res.Status).Render(tag+"]"), rest)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%d theme(s) total, %d compared, %d skipped\n",
		len(rep.Results), rep.Compared(), rep.Count(report.StatusSkipNoBaseline))
	summary := fmt.Sprintf("%d theme(s) with visual differences > 1%%", rep.Failures())
	if rep.Failures() > 0 {
		summary = failStyle.Render(summary)
	} else {
		summary = okStyle.Render(summary)
	}
	fmt.Fprintln(out, summary)
}
