package theme

import (
	"encoding/json"
	"fmt"
	"io"
)

// Definition is one theme fully resolved from its declarations.
type Definition struct {
	Descriptor
	// Declared carries the name and dark flag written in the declaration,
	// which may disagree with the catalog entry.
	Declared     Descriptor
	Author       string
	EditorScheme string
	Colors       *ColorSet
	Icons        IconPalette
	// Keys lists the top-level keys present in the theme declaration.
	Keys []string
	// Scheme is nil until the editor scheme has been attached.
	Scheme *Scheme
	Syntax SyntaxPalette
}

type themeFile struct {
	Name         string         `json:"name"`
	Dark         bool           `json:"dark"`
	Author       string         `json:"author"`
	EditorScheme string         `json:"editorScheme"`
	UI           map[string]any `json:"ui"`
	Icons        struct {
		ColorPalette map[string]any `json:"ColorPalette"`
	} `json:"icons"`
}

// ParseDefinition decodes a theme JSON declaration. The descriptor is taken
// from the file itself; catalog entries are reconciled by the caller.
func ParseDefinition(r io.Reader) (*Definition, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var tf themeFile
	if err := json.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("decode theme: %w", err)
	}
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("decode theme: %w", err)
	}
	colors, err := NewColorSet(tf.UI)
	if err != nil {
		return nil, err
	}
	icons, err := NewIconPalette(tf.Icons.ColorPalette)
	if err != nil {
		return nil, err
	}
	def := &Definition{
		Descriptor:   Descriptor{Name: tf.Name, Dark: tf.Dark},
		Declared:     Descriptor{Name: tf.Name, Dark: tf.Dark},
		Author:       tf.Author,
		EditorScheme: tf.EditorScheme,
		Colors:       colors,
		Icons:        icons,
		Syntax:       ExtractPalette(nil, DefaultAttributeMap),
	}
	for key := range top {
		def.Keys = append(def.Keys, key)
	}
	if tf.Icons.ColorPalette == nil {
		def.Icons = nil
	}
	return def, nil
}

// AttachScheme records the editor scheme and derives the syntax palette
// through m, or DefaultAttributeMap when m is nil.
func (d *Definition) AttachScheme(s *Scheme, m AttributeMap) {
	if m == nil {
		m = DefaultAttributeMap
	}
	d.Scheme = s
	d.Syntax = ExtractPalette(s, m)
}

// HasKey reports whether the declaration had the given top-level key.
func (d *Definition) HasKey(key string) bool {
	for _, k := range d.Keys {
		if k == key {
			return true
		}
	}
	return false
}
