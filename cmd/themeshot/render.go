package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/example/themeshot/internal/pipeline"
	"github.com/example/themeshot/internal/sheet"
	"github.com/example/themeshot/internal/theme"
)

func newRenderCmd(a *app) *cobra.Command {
	var withSheets bool
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a screenshot of every theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loader, descs, err := a.catalog()
			if err != nil {
				return err
			}
			return a.render(cmd, loader, descs, withSheets)
		},
	}
	cmd.Flags().BoolVar(&withSheets, "sheets", true, "also compose the contact sheet and dark/light strip")
	return cmd
}

func (a *app) render(cmd *cobra.Command, loader *theme.Loader, descs []theme.Descriptor, withSheets bool) error {
	out := cmd.OutOrStdout()
	r := &pipeline.Renderer{
		Loader:  loader,
		Out:     a.screenshots(),
		Workers: a.workerCount(),
		Log:     a.log,
	}
	results := r.Run(cmd.Context(), descs)
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(out, "%s %s: %v\n", failStyle.Render("[FAIL]"), res.Theme.Slug, res.Err)
			continue
		}
		fmt.Fprintf(out, "%s %s %s\n", okStyle.Render("[ OK ]"), res.Theme.Slug, dimStyle.Render(res.Path))
	}

	var (
		preview  string
		sheetErr error
	)
	if withSheets {
		preview, sheetErr = a.composeSheets(out, descs)
	}
	failed := pipeline.Failed(results)
	a.notifier.Rendered(len(results), failed, preview)
	if sheetErr != nil {
		return sheetErr
	}
	if failed > 0 {
		return failures("%d theme(s) failed to render", failed)
	}
	return nil
}

// composeSheets writes the grid and, when the catalog has pairs, the
// dark/light strip. It returns the grid path.
func (a *app) composeSheets(out io.Writer, descs []theme.Descriptor) (string, error) {
	opts := sheet.Options{Columns: a.cfg.Columns}
	grid, err := pipeline.ContactSheet(a.screenshots(), descs, opts, a.log)
	if err != nil {
		return "", fmt.Errorf("contact sheet: %w", err)
	}
	fmt.Fprintf(out, "Comparison grid saved to: %s\n", grid)

	strip, err := pipeline.PairSheet(a.screenshots(), descs, opts, a.log)
	switch {
	case errors.Is(err, sheet.ErrNoPairs):
		fmt.Fprintln(out, "No dark/light pairs found for comparison strip.")
	case err != nil:
		return "", fmt.Errorf("pair strip: %w", err)
	default:
		fmt.Fprintf(out, "Dark/light comparison strip saved to: %s\n", strip)
	}
	return grid, nil
}
