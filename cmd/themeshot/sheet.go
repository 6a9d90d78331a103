package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/themeshot/internal/clipboard"
	"github.com/example/themeshot/internal/pipeline"
	"github.com/example/themeshot/internal/sheet"
)

func newSheetCmd(a *app) *cobra.Command {
	var (
		columns     int
		toClipboard bool
		hold        time.Duration
	)
	cmd := &cobra.Command{
		Use:   "sheet",
		Short: "Compose rendered screenshots into a contact sheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, descs, err := a.catalog()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("columns") {
				columns = a.cfg.Columns
			}
			path, err := pipeline.ContactSheet(a.screenshots(), descs, sheet.Options{Columns: columns}, a.log)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Comparison grid saved to: %s\n", path)
			if !toClipboard {
				return nil
			}
			img, err := a.screenshots().Open(pipeline.GridName)
			if err != nil {
				return err
			}
			lost, err := clipboard.WriteImage(img)
			if err != nil {
				return fmt.Errorf("copy to clipboard: %w", err)
			}
			a.notifier.Copied("contact sheet")
			return holdClipboard(cmd, lost, hold)
		},
	}
	cmd.Flags().IntVar(&columns, "columns", 4, "thumbnails per row")
	cmd.Flags().BoolVar(&toClipboard, "to-clipboard", false, "also copy the sheet to the clipboard")
	cmd.Flags().DurationVar(&hold, "hold", 30*time.Second, "how long to keep serving the clipboard")
	return cmd
}

// holdClipboard keeps the process alive so the clipboard stays readable,
// until another application replaces it or hold elapses.
func holdClipboard(cmd *cobra.Command, lost <-chan struct{}, hold time.Duration) error {
	if hold <= 0 {
		return nil
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Serving clipboard for up to %s...\n", hold)
	timer := time.NewTimer(hold)
	defer timer.Stop()
	select {
	case <-lost:
	case <-timer.C:
	case <-cmd.Context().Done():
		return cmd.Context().Err()
	}
	return nil
}

func newPairsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pairs",
		Short: "Compose dark and light variants side by side",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, descs, err := a.catalog()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, p := range sheet.Pairs(descs) {
				fmt.Fprintf(out, "%s: %s  vs  %s\n", p.Family, p.DarkTheme.Slug, p.LightTheme.Slug)
			}
			path, err := pipeline.PairSheet(a.screenshots(), descs, sheet.Options{}, a.log)
			if errors.Is(err, sheet.ErrNoPairs) {
				fmt.Fprintln(out, "No dark/light pairs found for comparison strip.")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Dark/light comparison strip saved to: %s\n", path)
			return nil
		},
	}
}
