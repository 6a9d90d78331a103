package theme

import (
	"fmt"
	"image/color"
	"sort"
	"strings"
)

// Defaults is the component every other component falls back to.
const Defaults = "*"

// Components lists the UI components a theme declaration must provide.
var Components = []string{
	Defaults, "Editor", "EditorTabs", "Tree", "List", "Button",
	"ToolWindow", "StatusBar", "Popup", "Menu", "ProgressBar", "ScrollBar",
}

// RequiredDefaultRoles are the roles the "*" component must declare.
var RequiredDefaultRoles = []string{
	"background", "foreground", "selectionBackground", "separatorColor", "disabledForeground",
}

// ColorSet holds the resolved UI colors of one theme, keyed by component and
// then by role. Nested declaration objects are flattened into dotted role
// names, so ToolWindow.Header.background is role "Header.background" of
// component "ToolWindow".
type ColorSet struct {
	components map[string]map[string]color.RGBA
}

// NewColorSet builds a ColorSet from a decoded "ui" object. Only string values
// starting with # are treated as colors; other properties are ignored.
func NewColorSet(ui map[string]any) (*ColorSet, error) {
	cs := &ColorSet{components: make(map[string]map[string]color.RGBA, len(ui))}
	for component, raw := range ui {
		roles := make(map[string]color.RGBA)
		obj, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if err := flattenColors(obj, "", roles); err != nil {
			return nil, fmt.Errorf("ui %s: %w", component, err)
		}
		cs.components[component] = roles
	}
	return cs, nil
}

func flattenColors(obj map[string]any, prefix string, out map[string]color.RGBA) error {
	for key, raw := range obj {
		name := key
		if prefix != "" {
			name = prefix + "." + key
		}
		switch v := raw.(type) {
		case map[string]any:
			if err := flattenColors(v, name, out); err != nil {
				return err
			}
		case string:
			if !strings.HasPrefix(v, "#") {
				continue
			}
			c, err := ParseColor(v)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			out[name] = c
		}
	}
	return nil
}

// ColorSetFromMap builds a ColorSet from already parsed colors.
func ColorSetFromMap(m map[string]map[string]color.RGBA) *ColorSet {
	cs := &ColorSet{components: make(map[string]map[string]color.RGBA, len(m))}
	for component, roles := range m {
		cp := make(map[string]color.RGBA, len(roles))
		for role, c := range roles {
			cp[role] = c
		}
		cs.components[component] = cp
	}
	return cs
}

// Own returns the color declared directly on component, without fallback.
func (cs *ColorSet) Own(component, role string) (color.RGBA, bool) {
	if cs == nil {
		return color.RGBA{}, false
	}
	c, ok := cs.components[component][role]
	return c, ok
}

// Lookup returns the color for role on component, falling back to the "*"
// component when the role is not declared there.
func (cs *ColorSet) Lookup(component, role string) (color.RGBA, bool) {
	if c, ok := cs.Own(component, role); ok {
		return c, true
	}
	return cs.Own(Defaults, role)
}

// HasComponent reports whether the component was declared at all.
func (cs *ColorSet) HasComponent(component string) bool {
	if cs == nil {
		return false
	}
	_, ok := cs.components[component]
	return ok
}

// ComponentNames returns the declared components in sorted order.
func (cs *ColorSet) ComponentNames() []string {
	if cs == nil {
		return nil
	}
	names := make([]string, 0, len(cs.components))
	for name := range cs.components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Required returns the mandatory "*" background and foreground colors.
func (cs *ColorSet) Required() (bg, fg color.RGBA, err error) {
	bg, ok := cs.Own(Defaults, "background")
	if !ok {
		return bg, fg, fmt.Errorf("%w: %s.background", ErrMissingRequiredColor, Defaults)
	}
	fg, ok = cs.Own(Defaults, "foreground")
	if !ok {
		return bg, fg, fmt.Errorf("%w: %s.foreground", ErrMissingRequiredColor, Defaults)
	}
	return bg, fg, nil
}
