package sheet

import (
	"strings"

	"github.com/example/themeshot/internal/theme"
)

var variantSuffixes = []string{"-light", "-dark", "-reversed"}

// Family returns the family key of a slug: the slug without a trailing
// -light, -dark or -reversed.
func Family(slug string) string {
	for _, s := range variantSuffixes {
		if trimmed, ok := strings.CutSuffix(slug, s); ok && trimmed != "" {
			return trimmed
		}
	}
	return slug
}

// Pair is the representative dark and light theme of one family.
type Pair struct {
	Family     string
	DarkTheme  theme.Descriptor
	LightTheme theme.Descriptor
}

// Pairs groups descriptors into families, in order of first appearance, and
// returns a pair for every family having both variants. The first dark member
// and the last light member represent the family.
func Pairs(descs []theme.Descriptor) []Pair {
	type family struct {
		dark, light       theme.Descriptor
		hasDark, hasLight bool
	}
	var order []string
	families := make(map[string]*family)
	for _, d := range descs {
		key := Family(d.Slug)
		f, ok := families[key]
		if !ok {
			f = &family{}
			families[key] = f
			order = append(order, key)
		}
		if d.Dark {
			if !f.hasDark {
				f.dark, f.hasDark = d, true
			}
			continue
		}
		f.light, f.hasLight = d, true
	}

	var pairs []Pair
	for _, key := range order {
		f := families[key]
		if f.hasDark && f.hasLight {
			pairs = append(pairs, Pair{Family: key, DarkTheme: f.dark, LightTheme: f.light})
		}
	}
	return pairs
}
