package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
)

// CatalogFile is the catalog listing inside a themes directory.
const CatalogFile = "theme-list.json"

// Loader reads the catalog and theme declarations from a themes directory.
type Loader struct {
	FS fs.FS
	// Attributes overrides the role to scheme attribute mapping.
	Attributes AttributeMap
}

// NewLoader creates a Loader rooted at dir on disk.
func NewLoader(dir string) *Loader {
	return &Loader{FS: os.DirFS(dir)}
}

// Catalog returns the ordered theme descriptors. Every descriptor is
// validated and slugs must be unique.
func (l *Loader) Catalog() ([]Descriptor, error) {
	data, err := fs.ReadFile(l.FS, CatalogFile)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var descs []Descriptor
	if err := json.Unmarshal(data, &descs); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	seen := make(map[string]bool, len(descs))
	for _, d := range descs {
		if err := d.Validate(); err != nil {
			return nil, err
		}
		if seen[d.Slug] {
			return nil, fmt.Errorf("catalog: duplicate slug %q", d.Slug)
		}
		seen[d.Slug] = true
	}
	return descs, nil
}

// Load reads <slug>.theme.json and the editor scheme it references. A
// missing scheme file is not an error; the syntax palette is then all gray.
func (l *Loader) Load(d Descriptor) (*Definition, error) {
	f, err := l.FS.Open(d.Slug + ".theme.json")
	if err != nil {
		return nil, fmt.Errorf("open theme %s: %w", d.Slug, err)
	}
	def, err := ParseDefinition(f)
	f.Close()
	if err != nil {
		return nil, fmt.Errorf("theme %s: %w", d.Slug, err)
	}
	def.Descriptor = d

	sf, err := l.FS.Open(l.schemePath(d.Slug, def.EditorScheme))
	if errors.Is(err, fs.ErrNotExist) {
		return def, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open scheme %s: %w", d.Slug, err)
	}
	defer sf.Close()
	scheme, err := ParseScheme(sf)
	if err != nil {
		return nil, fmt.Errorf("theme %s: %w", d.Slug, err)
	}
	def.AttachScheme(scheme, l.Attributes)
	return def, nil
}

// schemePath resolves the editorScheme reference ("/themes/x.xml") against
// the loader root, defaulting to <slug>.xml.
func (l *Loader) schemePath(slug, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return slug + ".xml"
	}
	return path.Base(ref)
}
