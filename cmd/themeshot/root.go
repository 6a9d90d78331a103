package main

import (
	"fmt"
	"runtime"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/themeshot/assets"
	"github.com/example/themeshot/internal/config"
	"github.com/example/themeshot/internal/logging"
	"github.com/example/themeshot/internal/notify"
	"github.com/example/themeshot/internal/store"
	"github.com/example/themeshot/internal/theme"
)

type app struct {
	configPath    string
	logLevel      string
	themesDir     string
	workers       int
	only          []string
	notifyRender  bool
	notifyCompare bool

	cfg      *config.Config
	log      *logging.Logger
	notifier *notify.Notifier
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "themeshot",
		Short:         "Render IDE color themes and check them against approved screenshots",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", configPathOverride, "config file (default: search "+config.EnvConfig+", .themeshot.yaml, XDG)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	pf.StringVar(&a.themesDir, "themes", "", "directory holding theme-list.json (default: embedded samples)")
	pf.IntVarP(&a.workers, "workers", "j", 0, "concurrent renders and comparisons (default: one per CPU)")
	pf.StringSliceVar(&a.only, "only", nil, "restrict to these theme slugs")
	pf.BoolVar(&a.notifyRender, "notify-render", false, "show a desktop notification after rendering")
	pf.BoolVar(&a.notifyCompare, "notify-compare", false, "show a desktop notification after comparing")

	cmd.AddCommand(newRenderCmd(a))
	cmd.AddCommand(newSheetCmd(a))
	cmd.AddCommand(newPairsCmd(a))
	cmd.AddCommand(newCompareCmd(a))
	cmd.AddCommand(newRunCmd(a))
	cmd.AddCommand(newValidateCmd(a))
	cmd.AddCommand(newContrastCmd(a))
	cmd.AddCommand(newConfigCmd(a))
	cmd.AddCommand(newThemesCmd(a))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// setup loads the configuration and applies flag overrides.
// Precedence: flags > config file > defaults.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.NewLoader(version, a.configPath).Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("themes") {
		cfg.ThemesDir = a.themesDir
	}
	if flags.Changed("workers") {
		cfg.Workers = a.workers
	}
	if flags.Changed("notify-render") {
		cfg.Notify.Render = a.notifyRender
	}
	if flags.Changed("notify-compare") {
		cfg.Notify.Compare = a.notifyCompare
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	log, err := logging.New(logging.Options{Level: cfg.LogLevel, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	a.log = log

	a.notifier = notify.New(notify.LoadPreferences(), log)
	a.notifier.Enable(notify.EventRender, cfg.Notify.Render)
	a.notifier.Enable(notify.EventCompare, cfg.Notify.Compare)
	a.notifier.Enable(notify.EventCopy, cfg.Notify.Render || cfg.Notify.Compare)
	return nil
}

func (a *app) workerCount() int {
	if a.cfg.Workers > 0 {
		return a.cfg.Workers
	}
	return runtime.NumCPU()
}

// catalog opens the configured themes directory, or the embedded samples,
// and returns the descriptors selected by --only.
func (a *app) catalog() (*theme.Loader, []theme.Descriptor, error) {
	var loader *theme.Loader
	if a.cfg.ThemesDir != "" {
		loader = theme.NewLoader(a.cfg.ThemesDir)
	} else {
		fsys, err := assets.Themes()
		if err != nil {
			return nil, nil, err
		}
		loader = &theme.Loader{FS: fsys}
	}
	loader.Attributes = a.cfg.AttributeMap()

	descs, err := loader.Catalog()
	if err != nil {
		return nil, nil, err
	}
	if len(a.only) == 0 {
		return loader, descs, nil
	}
	want := make(map[string]bool, len(a.only))
	for _, slug := range a.only {
		want[slug] = true
	}
	var picked []theme.Descriptor
	for _, d := range descs {
		if want[d.Slug] {
			picked = append(picked, d)
			delete(want, d.Slug)
		}
	}
	if len(want) > 0 {
		missing := make([]string, 0, len(want))
		for slug := range want {
			missing = append(missing, slug)
		}
		sort.Strings(missing)
		return nil, nil, fmt.Errorf("not in the catalog: %s", strings.Join(missing, ", "))
	}
	return loader, picked, nil
}

func (a *app) screenshots() *store.Dir { return store.NewDir(a.cfg.ScreenshotsDir) }
func (a *app) baselines() *store.Dir   { return store.NewDir(a.cfg.BaselinesDir) }
func (a *app) diffs() *store.Dir       { return store.NewDir(a.cfg.DiffsDir) }
