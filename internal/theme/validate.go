package theme

import (
	"errors"
	"fmt"
)

// MinContrast is the lowest accepted contrast between the default
// background and foreground. WCAG AA asks for 4.5; artistic themes are
// allowed down to 3.
const MinContrast = 3.0

var requiredKeys = []string{"name", "dark", "author", "editorScheme", "ui", "icons"}

var requiredSchemeColors = []string{
	"CARET_COLOR", "CARET_ROW_COLOR", "SELECTION_BACKGROUND",
	"LINE_NUMBERS_COLOR", "GUTTER_BACKGROUND", "INDENT_GUIDE",
}

var requiredSchemeAttributes = []string{
	"DEFAULT_KEYWORD", "DEFAULT_STRING", "DEFAULT_NUMBER", "DEFAULT_FUNCTION_CALL",
	"DEFAULT_CLASS_NAME", "DEFAULT_BLOCK_COMMENT", "DEFAULT_LOCAL_VARIABLE", "DEFAULT_PARAMETER",
}

// Validate checks a loaded theme for structural problems and returns them
// joined into one error, or nil.
func Validate(def *Definition) error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	for _, key := range requiredKeys {
		if !def.HasKey(key) {
			add("missing top-level key %q", key)
		}
	}
	if def.Declared.Name != def.Name {
		add("declared name %q does not match catalog name %q", def.Declared.Name, def.Name)
	}
	if def.Declared.Dark != def.Dark {
		add("declared dark=%v does not match catalog dark=%v", def.Declared.Dark, def.Dark)
	}
	for _, component := range Components {
		if !def.Colors.HasComponent(component) {
			add("ui has no %q component", component)
		}
	}
	for _, role := range RequiredDefaultRoles {
		if _, ok := def.Colors.Own(Defaults, role); !ok {
			errs = append(errs, fmt.Errorf("%w: %s.%s", ErrMissingRequiredColor, Defaults, role))
		}
	}
	if def.Icons == nil {
		add("icons has no ColorPalette")
	}
	if bg, fg, err := def.Colors.Required(); err == nil {
		if ratio := Contrast(bg, fg); ratio < MinContrast {
			add("contrast %.2f between background and foreground is below %.1f", ratio, MinContrast)
		}
	}
	errs = append(errs, validateScheme(def)...)
	return errors.Join(errs...)
}

// UnknownComponents lists declared ui components that are not part of
// Components. They are not errors; a misspelled component name shows up here.
func UnknownComponents(def *Definition) []string {
	known := make(map[string]bool, len(Components))
	for _, c := range Components {
		known[c] = true
	}
	var out []string
	for _, name := range def.Colors.ComponentNames() {
		if !known[name] {
			out = append(out, name)
		}
	}
	return out
}

func validateScheme(def *Definition) []error {
	s := def.Scheme
	if s == nil {
		return []error{errors.New("editor scheme not found")}
	}
	var errs []error
	if s.Name != def.Name {
		errs = append(errs, fmt.Errorf("scheme name %q does not match %q", s.Name, def.Name))
	}
	wantParent := "Default"
	if def.Dark {
		wantParent = "Darcula"
	}
	if s.Parent != wantParent {
		errs = append(errs, fmt.Errorf("scheme parent %q, want %q", s.Parent, wantParent))
	}
	for _, name := range requiredSchemeColors {
		if !s.HasColor(name) {
			errs = append(errs, fmt.Errorf("scheme has no color %s", name))
		}
	}
	for _, name := range requiredSchemeAttributes {
		if !s.HasAttribute(name) {
			errs = append(errs, fmt.Errorf("scheme has no attribute %s", name))
		}
	}
	return errs
}
