package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/example/themeshot/internal/theme"
)

// Notify holds desktop notification settings.
type Notify struct {
	Render  bool `yaml:"render"`
	Compare bool `yaml:"compare"`
}

// Config holds the application configuration.
type Config struct {
	// ThemesDir holds theme-list.json; empty uses the embedded samples.
	ThemesDir      string `yaml:"themes_dir,omitempty"`
	ScreenshotsDir string `yaml:"screenshots_dir" validate:"required"`
	BaselinesDir   string `yaml:"baselines_dir" validate:"required"`
	DiffsDir       string `yaml:"diffs_dir" validate:"required"`
	// Workers bounds concurrent renders and comparisons; 0 means one per CPU.
	Workers  int    `yaml:"workers" validate:"gte=0,lte=256"`
	Columns  int    `yaml:"columns" validate:"gte=0,lte=32"`
	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=trace debug info warn error"`
	Notify   Notify `yaml:"notify"`
	// SyntaxAttributes overrides which scheme attribute colors a role.
	SyntaxAttributes map[string]string `yaml:"syntax_attributes,omitempty" validate:"dive,keys,syntaxrole,endkeys,required"`
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		ScreenshotsDir: filepath.Join("build", "screenshots"),
		BaselinesDir:   "baselines",
		DiffsDir:       filepath.Join("build", "screenshot-diffs"),
		Columns:        4,
		LogLevel:       "info",
	}
}

var (
	validatorOnce sync.Once
	validate      *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("syntaxrole", func(fl validator.FieldLevel) bool {
			return theme.IsRole(fl.Field().String())
		})
		validate = v
	})
	return validate
}

// Validate checks field ranges and syntax role names.
func (c *Config) Validate() error {
	if err := validatorInstance().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return fmt.Errorf("invalid config: %s", summarize(verrs))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func summarize(verrs validator.ValidationErrors) string {
	var buf bytes.Buffer
	for i, fe := range verrs {
		if i > 0 {
			buf.WriteString("; ")
		}
		fmt.Fprintf(&buf, "%s failed %q", fe.Namespace(), fe.Tag())
		if fe.Param() != "" {
			fmt.Fprintf(&buf, " (%s)", fe.Param())
		}
	}
	return buf.String()
}

// AttributeMap returns the role to attribute mapping with overrides applied.
func (c *Config) AttributeMap() theme.AttributeMap {
	if len(c.SyntaxAttributes) == 0 {
		return theme.DefaultAttributeMap
	}
	return theme.DefaultAttributeMap.WithOverrides(c.SyntaxAttributes)
}

// Parse reads YAML configuration on top of the defaults and validates it.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// String implements fmt.Stringer and returns the configuration as YAML.
func (c *Config) String() string {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Sprintf("# encode config: %v\n", err)
	}
	_ = enc.Close()
	return buf.String()
}

// RoleOverrides lists the configured syntax overrides as sorted role=attr
// pairs.
func (c *Config) RoleOverrides() []string {
	out := make([]string, 0, len(c.SyntaxAttributes))
	for role, attr := range c.SyntaxAttributes {
		out = append(out, role+"="+attr)
	}
	sort.Strings(out)
	return out
}

// Save writes the configuration to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(c.String()), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
