package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/themeshot/internal/theme"
)

func TestParse(t *testing.T) {
	input := `
screenshots_dir: /tmp/shots
baselines_dir: approved
workers: 3
notify:
  render: true
syntax_attributes:
  string: CUSTOM_STRING
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.ScreenshotsDir != "/tmp/shots" {
		t.Errorf("Expected screenshots_dir '/tmp/shots', got '%s'", cfg.ScreenshotsDir)
	}
	if cfg.BaselinesDir != "approved" {
		t.Errorf("Expected baselines_dir 'approved', got '%s'", cfg.BaselinesDir)
	}
	if cfg.DiffsDir != filepath.Join("build", "screenshot-diffs") {
		t.Errorf("Expected default diffs_dir, got '%s'", cfg.DiffsDir)
	}
	if cfg.Workers != 3 {
		t.Errorf("Expected 3 workers, got %d", cfg.Workers)
	}
	if !cfg.Notify.Render {
		t.Error("Expected notify.render to be true")
	}
	if cfg.Notify.Compare {
		t.Error("Expected notify.compare to be false")
	}

	m := cfg.AttributeMap()
	if m[theme.RoleString] != "CUSTOM_STRING" {
		t.Errorf("Expected string override, got %q", m[theme.RoleString])
	}
	if m[theme.RoleKeyword] != "DEFAULT_KEYWORD" {
		t.Errorf("Expected keyword default, got %q", m[theme.RoleKeyword])
	}
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Columns != 4 {
		t.Errorf("Expected default columns, got %d", cfg.Columns)
	}
}

func TestParseRejects(t *testing.T) {
	tests := map[string]string{
		"unknown key":  "colour: red\n",
		"bad level":    "log_level: loud\n",
		"bad role":     "syntax_attributes:\n  keywords: X\n",
		"empty attr":   "syntax_attributes:\n  keyword: \"\"\n",
		"negative":     "workers: -1\n",
		"blank output": "screenshots_dir: \"\"\n",
	}
	for name, input := range tests {
		if _, err := Parse(strings.NewReader(input)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestCircular(t *testing.T) {
	input := `themes_dir: themes
screenshots_dir: out/shots
baselines_dir: out/base
diffs_dir: out/diffs
columns: 6
notify:
  render: true
  compare: true
syntax_attributes:
  type: DEFAULT_CLASS_NAME
`
	// 1. Parse initial input
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Initial parse failed: %v", err)
	}

	// 2. Generate string representation
	generated := cfg.String()

	// 3. Parse generated string
	cfg2, err := Parse(strings.NewReader(generated))
	if err != nil {
		t.Fatalf("Circular parse failed: %v", err)
	}

	// 4. Compare relevant fields
	if cfg.ThemesDir != cfg2.ThemesDir || cfg.ScreenshotsDir != cfg2.ScreenshotsDir {
		t.Errorf("Directory mismatch: %+v vs %+v", cfg, cfg2)
	}
	if cfg.Notify != cfg2.Notify {
		t.Errorf("Notify mismatch: %+v vs %+v", cfg.Notify, cfg2.Notify)
	}
	if got := cfg2.RoleOverrides(); len(got) != 1 || got[0] != "type=DEFAULT_CLASS_NAME" {
		t.Errorf("Overrides mismatch: %v", got)
	}
}

func TestLoaderSearchOrder(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))

	xdg := DefaultPath()
	if err := os.MkdirAll(filepath.Dir(xdg), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(xdg, []byte("columns: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	env := filepath.Join(dir, "env.yaml")
	if err := os.WriteFile(env, []byte("columns: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	l := NewLoader("v1.0.0", "")
	if got := l.GetConfigPath(); got != xdg {
		t.Fatalf("expected XDG path %q, got %q", xdg, got)
	}

	t.Setenv(EnvConfig, env)
	if got := l.GetConfigPath(); got != env {
		t.Fatalf("expected env path %q, got %q", env, got)
	}

	override := filepath.Join(dir, "override.yaml")
	if err := (&Config{ScreenshotsDir: "a", BaselinesDir: "b", DiffsDir: "c", Columns: 5}).Save(override); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	l.OverridePath = override
	cfg, err := l.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Columns != 5 {
		t.Errorf("Expected override config, got columns=%d", cfg.Columns)
	}
}
