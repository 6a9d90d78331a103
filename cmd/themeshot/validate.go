package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/themeshot/internal/theme"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check theme declarations and editor schemes for missing pieces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loader, descs, err := a.catalog()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			bad := 0
			for _, d := range descs {
				def, err := loader.Load(d)
				if err == nil {
					err = theme.Validate(def)
				}
				if err == nil {
					fmt.Fprintf(out, "%s %s\n", okStyle.Render("[ OK ]"), d.Slug)
					if extra := theme.UnknownComponents(def); len(extra) > 0 {
						fmt.Fprintln(out, dimStyle.Render("       unknown components: "+strings.Join(extra, ", ")))
					}
					continue
				}
				bad++
				fmt.Fprintf(out, "%s %s\n", failStyle.Render("[FAIL]"), d.Slug)
				for _, problem := range unjoin(err) {
					fmt.Fprintf(out, "       - %v\n", problem)
				}
			}
			if bad > 0 {
				return failures("%d theme(s) failed validation", bad)
			}
			fmt.Fprintf(out, "%d theme(s) valid\n", len(descs))
			return nil
		},
	}
}

// unjoin splits an errors.Join result back into its parts.
func unjoin(err error) []error {
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		return j.Unwrap()
	}
	return []error{err}
}
