package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/themeshot/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or persist the effective configuration",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "print",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprint(out, a.cfg.String())
			if overrides := a.cfg.RoleOverrides(); len(overrides) > 0 {
				fmt.Fprintln(out, "# syntax roles read from non-default attributes:")
				for _, o := range overrides {
					fmt.Fprintf(out, "#   %s\n", o)
				}
			}
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "save [PATH]",
		Short: "Write the effective configuration to a file",
		Long: "Write the effective configuration, flags included, to PATH. Without PATH the\n" +
			"file the configuration was loaded from is replaced, or the XDG location is used.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			} else {
				// If loader found a config file, save there
				path = config.NewLoader(version, a.configPath).GetConfigPath()
			}
			if path == "" {
				path = config.DefaultPath()
			}
			if path == "" {
				return errors.New("no config path: pass one or set HOME")
			}
			if err := a.cfg.Save(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration saved to %s\n", path)
			return nil
		},
	})
	return cmd
}
