package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Embedded sample theme catalog for ThemeShot.
//
//go:embed themes/*.json themes/*.xml
var embeddedThemes embed.FS

var (
	themesOnce sync.Once
	themesFS   fs.FS
	themesErr  error
)

func loadThemes() {
	themesFS, themesErr = fs.Sub(embeddedThemes, "themes")
}

// Themes returns the embedded sample catalog rooted at its theme-list.json.
func Themes() (fs.FS, error) {
	themesOnce.Do(loadThemes)
	return themesFS, themesErr
}

// ThemeFile returns a copy of one embedded catalog file.
func ThemeFile(name string) ([]byte, error) {
	fsys, err := Themes()
	if err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("sample theme %s: %w", name, err)
	}
	return data, nil
}

// ExtractThemes writes the embedded catalog into dir so it can be edited.
// Existing files are left untouched.
func ExtractThemes(dir string) ([]string, error) {
	fsys, err := Themes()
	if err != nil {
		return nil, err
	}
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	var written []string
	for _, entry := range entries {
		target := filepath.Join(dir, entry.Name())
		if _, err := os.Stat(target); err == nil {
			continue
		}
		data, err := fs.ReadFile(fsys, entry.Name())
		if err != nil {
			return written, err
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", target, err)
		}
		written = append(written, target)
	}
	return written, nil
}
