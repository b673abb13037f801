package config

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/tada/internal/model"
)

// isolate points every config source at an empty temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	for _, k := range []string{"TADA_CONFIG", "TADA_THEME", "TADA_FILTER", "TADA_CHAR_LIMIT",
		"TADA_LOG_LEVEL", "TADA_LOG_FORMAT", "TADA_LOG_FILE"} {
		t.Setenv(k, "")
	}
	return dir
}

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("tada", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	p := filepath.Join(dir, "tada", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	fs := newFlagSet()
	cfg, err := Load(fs, []string{"run", "script.json"})
	require.NoError(t, err)

	assert.Equal(t, DefaultTheme, cfg.Theme)
	assert.Equal(t, model.FilterAll, cfg.InitialFilter)
	assert.Equal(t, DefaultCharLimit, cfg.CharLimit)
	assert.Empty(t, cfg.File)
	assert.Equal(t, []string{"run", "script.json"}, fs.Args())
}

func TestLoadPrecedence(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, `
theme = "neon"
filter = "active"
char_limit = 50

[log]
level = "info"
format = "json"
`)
	t.Setenv("TADA_FILTER", "removed")

	cfg, err := Load(newFlagSet(), []string{"--theme", "mono"})
	require.NoError(t, err)

	assert.Equal(t, path, cfg.File)
	assert.Equal(t, "mono", cfg.Theme, "flag beats file")
	assert.Equal(t, model.FilterDeleted, cfg.InitialFilter, "env beats file")
	assert.Equal(t, 50, cfg.CharLimit)

	opts, err := cfg.LogOptions()
	require.NoError(t, err)
	assert.Equal(t, log.InfoLevel, opts.Level)
	assert.Equal(t, log.JSONFormatter, opts.Formatter)
}

func TestLoadExplicitConfigPath(t *testing.T) {
	dir := isolate(t)
	p := filepath.Join(dir, "custom.toml")
	require.NoError(t, os.WriteFile(p, []byte(`group = true`), 0o644))
	t.Setenv("TADA_CONFIG", p)

	cfg, err := Load(newFlagSet(), nil)
	require.NoError(t, err)
	assert.True(t, cfg.Group)
}

func TestLoadMissingExplicitConfig(t *testing.T) {
	dir := isolate(t)
	t.Setenv("TADA_CONFIG", filepath.Join(dir, "nope.toml"))
	_, err := Load(newFlagSet(), nil)
	assert.Error(t, err)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, `colour = "red"`)
	_, err := Load(newFlagSet(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colour")
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
		want string
	}{
		{"theme", []string{"--theme", "sparkly"}, nil, "theme"},
		{"filter", []string{"--filter", "archived"}, nil, "filter"},
		{"char limit", []string{"--char-limit", "0"}, nil, "char_limit"},
		{"log level", []string{"--log-level", "loud"}, nil, "log"},
		{"env char limit", nil, map[string]string{"TADA_CHAR_LIMIT": "lots"}, "TADA_CHAR_LIMIT"},
		{"bad flag", []string{"--nope"}, nil, "parsing flags"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(newFlagSet(), tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestExpandLogFile(t *testing.T) {
	dir := isolate(t)
	cfg, err := Load(newFlagSet(), []string{"--log-file", "~/tada.log"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "tada.log"), cfg.Log.File)
}
