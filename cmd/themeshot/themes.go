package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/themeshot/assets"
)

func newThemesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "Work with the built-in sample catalog",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the themes of the active catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, descs, err := a.catalog()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, d := range descs {
				kind := "light"
				if d.Dark {
					kind = "dark"
				}
				fmt.Fprintf(out, "%-24s %-5s %s\n", d.Slug, kind, d.Name)
			}
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "show FILE",
		Short: "Print one file of the built-in catalog, e.g. ocean-dark.theme.json",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := assets.ThemeFile(args[0])
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "extract DIR",
		Short: "Copy the built-in catalog into DIR as a starting point for themes_dir",
		Long:  "Copy the built-in catalog into DIR. Files that already exist in DIR are kept.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			written, err := assets.ExtractThemes(args[0])
			out := cmd.OutOrStdout()
			for _, path := range written {
				fmt.Fprintf(out, "wrote %s\n", path)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%d file(s) extracted to %s\n", len(written), args[0])
			return nil
		},
	})
	return cmd
}
