package assets

import (
	"os"
	"path/filepath"
	"testing"
)

func TestThemesContainsCatalog(t *testing.T) {
	data, err := ThemeFile("theme-list.json")
	if err != nil {
		t.Fatalf("ThemeFile: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected catalog bytes")
	}
}

func TestExtractThemesKeepsExisting(t *testing.T) {
	dir := t.TempDir()
	keep := filepath.Join(dir, "theme-list.json")
	if err := os.WriteFile(keep, []byte("[]"), 0o644); err != nil {
		t.Fatal(err)
	}
	written, err := ExtractThemes(dir)
	if err != nil {
		t.Fatalf("ExtractThemes: %v", err)
	}
	for _, path := range written {
		if path == keep {
			t.Fatalf("existing catalog was overwritten")
		}
	}
	data, err := os.ReadFile(keep)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[]" {
		t.Fatalf("catalog content changed: %q", data)
	}
	if _, err := os.Stat(filepath.Join(dir, "ocean-dark.xml")); err != nil {
		t.Fatalf("expected scheme extracted: %v", err)
	}
}
