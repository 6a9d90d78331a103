package main

import (
	"github.com/spf13/cobra"
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Render, compose sheets and compare in one pass",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loader, descs, err := a.catalog()
			if err != nil {
				return err
			}
			renderErr := a.render(cmd, loader, descs, true)
			rep, err := a.compare(cmd, descs)
			if err != nil {
				return err
			}
			if renderErr != nil {
				return renderErr
			}
			if rep != nil && rep.Failures() > 0 {
				return failures("%d theme(s) with visual differences", rep.Failures())
			}
			return nil
		},
	}
}
