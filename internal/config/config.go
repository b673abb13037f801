// Package config loads tada settings from TOML, environment and flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/Makepad-fr/tada/internal/logging"
	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/ui"
)

const (
	DefaultTheme     = "classic"
	DefaultFilter    = "all"
	DefaultCharLimit = 200
)

// Config holds every tunable of a tada session.
type Config struct {
	Theme     string    `toml:"theme"`
	Filter    string    `toml:"filter"`
	CharLimit int       `toml:"char_limit"`
	Group     bool      `toml:"group"`
	Log       LogConfig `toml:"log"`

	// JSON switches `run` output to a JSON snapshot. Flag only.
	JSON bool `toml:"-"`

	// Derived in finalize.
	InitialFilter model.Filter `toml:"-"`
	// File is the config file that was read, if any.
	File string `toml:"-"`
}

// LogConfig controls the logger.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	File   string `toml:"file"`
}

// Load builds a Config in priority order:
// 1. Defaults
// 2. Config file (TADA_CONFIG, else <user config dir>/tada/config.toml)
// 3. Environment variables
// 4. Flags parsed from args into fs
//
// Positional arguments remain available through fs.Args().
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	if path := findConfigFile(); path != "" {
		if err := loadConfigFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
		cfg.File = path
	}

	if err := loadFromEnv(cfg); err != nil {
		return nil, err
	}

	if err := parseFlags(cfg, fs, args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	if err := finalize(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LogOptions converts the log section to logging options.
func (c *Config) LogOptions() (logging.Options, error) {
	opts := logging.DefaultOptions()
	lvl, err := logging.ParseLevel(c.Log.Level)
	if err != nil {
		return opts, err
	}
	f, err := logging.ParseFormatter(c.Log.Format)
	if err != nil {
		return opts, err
	}
	opts.Level, opts.Formatter = lvl, f
	return opts, nil
}

func setDefaults(cfg *Config) {
	cfg.Theme = DefaultTheme
	cfg.Filter = DefaultFilter
	cfg.CharLimit = DefaultCharLimit
	cfg.Log.Level = "warn"
	cfg.Log.Format = "text"
}

func loadConfigFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

// findConfigFile returns the config path to read, or "" if there is none.
// An explicit TADA_CONFIG is returned even when missing so the error surfaces.
func findConfigFile() string {
	if p := os.Getenv("TADA_CONFIG"); p != "" {
		return p
	}
	dir, err := userConfigDir()
	if err != nil {
		return ""
	}
	p := filepath.Join(dir, "tada", "config.toml")
	if _, err := os.Stat(p); err != nil {
		return ""
	}
	return p
}

func userConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return xdg, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, ".config"), nil
}

func loadFromEnv(cfg *Config) error {
	if v := os.Getenv("TADA_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv("TADA_FILTER"); v != "" {
		cfg.Filter = v
	}
	if v := os.Getenv("TADA_CHAR_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TADA_CHAR_LIMIT: not a number: %s", v)
		}
		cfg.CharLimit = n
	}
	if v := os.Getenv("TADA_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("TADA_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("TADA_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	return nil
}

func parseFlags(cfg *Config, fs *flag.FlagSet, args []string) error {
	if fs == nil {
		fs = flag.NewFlagSet("tada", flag.ContinueOnError)
	}
	fs.StringVar(&cfg.Theme, "theme", cfg.Theme, "color theme: "+strings.Join(ui.Themes(), ", "))
	fs.StringVar(&cfg.Filter, "filter", cfg.Filter, "initial view: all, completed, active, deleted")
	fs.IntVar(&cfg.CharLimit, "char-limit", cfg.CharLimit, "max characters in the text input")
	fs.BoolVar(&cfg.Group, "group", cfg.Group, "group run output by pending/done")
	fs.BoolVar(&cfg.JSON, "json", cfg.JSON, "print run output as a JSON snapshot")
	fs.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "log level: debug, info, warn, error")
	fs.StringVar(&cfg.Log.File, "log-file", cfg.Log.File, "write logs to this file")
	return fs.Parse(args)
}

func finalize(cfg *Config) error {
	var errs []error
	if !ui.ValidTheme(cfg.Theme) {
		errs = append(errs, fmt.Errorf("theme: unknown %q (want %s)", cfg.Theme, strings.Join(ui.Themes(), ", ")))
	}
	f, err := model.ParseFilter(cfg.Filter)
	if err != nil {
		errs = append(errs, fmt.Errorf("filter: %w", err))
	}
	cfg.InitialFilter = f
	if cfg.CharLimit <= 0 {
		errs = append(errs, fmt.Errorf("char_limit: must be positive, got %d", cfg.CharLimit))
	}
	if _, err := cfg.LogOptions(); err != nil {
		errs = append(errs, fmt.Errorf("log: %w", err))
	}
	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func expandPath(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}
