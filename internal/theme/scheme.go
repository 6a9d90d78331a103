package theme

import (
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
)

// Scheme is a parsed editor color scheme. Attributes maps each attribute
// name (DEFAULT_KEYWORD, ...) to its own field map (FOREGROUND, FONT_TYPE, ...).
type Scheme struct {
	Name       string
	Parent     string
	Colors     map[string]string
	Attributes map[string]map[string]string
}

type xmlScheme struct {
	XMLName    xml.Name       `xml:"scheme"`
	Name       string         `xml:"name,attr"`
	Parent     string         `xml:"parent_scheme,attr"`
	Colors     []xmlOption    `xml:"colors>option"`
	Attributes []xmlAttribute `xml:"attributes>option"`
}

type xmlOption struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

type xmlAttribute struct {
	Name   string      `xml:"name,attr"`
	Base   string      `xml:"baseAttributes,attr"`
	Fields []xmlOption `xml:"value>option"`
}

// ParseScheme decodes an editor color scheme XML document.
func ParseScheme(r io.Reader) (*Scheme, error) {
	var doc xmlScheme
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode editor scheme: %w", err)
	}
	s := &Scheme{
		Name:       doc.Name,
		Parent:     doc.Parent,
		Colors:     make(map[string]string, len(doc.Colors)),
		Attributes: make(map[string]map[string]string, len(doc.Attributes)),
	}
	for _, opt := range doc.Colors {
		s.Colors[opt.Name] = opt.Value
	}
	for _, attr := range doc.Attributes {
		fields := make(map[string]string, len(attr.Fields)+1)
		for _, f := range attr.Fields {
			fields[f.Name] = f.Value
		}
		if attr.Base != "" {
			fields["baseAttributes"] = attr.Base
		}
		s.Attributes[attr.Name] = fields
	}
	return s, nil
}

// HasAttribute reports whether an attribute block with that name exists.
func (s *Scheme) HasAttribute(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s.Attributes[name]
	return ok
}

// HasColor reports whether the scheme declares a color option with that name.
func (s *Scheme) HasColor(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s.Colors[name]
	return ok
}

// Foreground returns the FOREGROUND field of the named attribute. A missing
// attribute, a missing field and an unparsable value all report false.
func (s *Scheme) Foreground(attr string) (color.RGBA, bool) {
	if s == nil {
		return color.RGBA{}, false
	}
	fields, ok := s.Attributes[attr]
	if !ok {
		return color.RGBA{}, false
	}
	raw, ok := fields["FOREGROUND"]
	if !ok || raw == "" {
		return color.RGBA{}, false
	}
	c, err := ParseColor(raw)
	if err != nil {
		return color.RGBA{}, false
	}
	return c, true
}
