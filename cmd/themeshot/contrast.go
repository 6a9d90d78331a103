package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/themeshot/internal/theme"
)

// wcagAA is the contrast WCAG AA asks for normal text.
const wcagAA = 4.5

func newContrastCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "contrast [COLOR COLOR]",
		Short: "Print WCAG contrast ratios",
		Long: "With two hex colors, print their contrast ratio. Without arguments, print the\n" +
			"background/foreground contrast of every theme in the catalog.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("expected no arguments or two colors, got %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 2 {
				ratio, err := theme.ContrastRatio(args[0], args[1])
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%.2f:1  AA %s\n", ratio, passFail(ratio >= wcagAA))
				return nil
			}

			loader, descs, err := a.catalog()
			if err != nil {
				return err
			}
			low := 0
			for _, d := range descs {
				def, err := loader.Load(d)
				if err != nil {
					return err
				}
				bg, fg, err := def.Colors.Required()
				if err != nil {
					return fmt.Errorf("theme %s: %w", d.Slug, err)
				}
				ratio := theme.Contrast(bg, fg)
				ok := ratio >= theme.MinContrast
				if !ok {
					low++
				}
				fmt.Fprintf(out, "%-24s %s on %s  %6.2f:1  %s\n", d.Slug, theme.Hex(fg), theme.Hex(bg), ratio, passFail(ok))
			}
			if low > 0 {
				return failures("%d theme(s) below %.1f:1", low, theme.MinContrast)
			}
			return nil
		},
	}
}
