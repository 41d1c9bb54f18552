package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/counterpoint/internal/config"
	"github.com/katalvlaran/counterpoint/search"
)

// writeConfig writes content to a temp YAML file.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "counterpoint.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "C", cfg.Key)
	assert.Equal(t, "major", cfg.Mode)
	assert.Equal(t, config.Window{Min: 0, Max: 16}, cfg.Window)
	assert.Equal(t, 1000, cfg.TargetSolutions)
	assert.Equal(t, 4, cfg.Concurrency)
	assert.Empty(t, cfg.Beats)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
key: E
mode: harmonic-minor
target_solutions: 150
window:
  max: 12
beats: [true, false, false]
log:
  level: debug
  format: json
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "E", cfg.Key)
	assert.Equal(t, "harmonic-minor", cfg.Mode)
	assert.Equal(t, 150, cfg.TargetSolutions)
	assert.Equal(t, config.Window{Min: 0, Max: 12}, cfg.Window, "unset min keeps its default")
	assert.Equal(t, []bool{true, false, false}, cfg.Beats)
	assert.Equal(t, "debug", cfg.Log.Level)

	key, err := cfg.ParsedKey()
	require.NoError(t, err)
	assert.Equal(t, "E harmonic-minor", key.String())

	meter := cfg.Meter()
	assert.True(t, meter(3))
	assert.False(t, meter(4))
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "key: E\nmode: minor\ntarget_solutions: 150\n")
	t.Setenv("COUNTERPOINT_KEY", "G")
	t.Setenv("COUNTERPOINT_MODE", "major")
	t.Setenv("COUNTERPOINT_TARGET_SOLUTIONS", "25")
	t.Setenv("COUNTERPOINT_WINDOW_MIN", "3")
	t.Setenv("COUNTERPOINT_LOG_LEVEL", "trace")
	t.Setenv("COUNTERPOINT_BEATS", "1,0,0,0")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "G", cfg.Key)
	assert.Equal(t, "major", cfg.Mode)
	assert.Equal(t, 25, cfg.TargetSolutions)
	assert.Equal(t, 3, cfg.Window.Min)
	assert.Equal(t, "trace", cfg.Log.Level)
	assert.Equal(t, []bool{true, false, false, false}, cfg.Beats)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"window":      "window: {min: 9, max: 4}\n",
		"budget":      "target_solutions: 0\n",
		"concurrency": "concurrency: 0\n",
		"log level":   "log: {level: loud}\n",
		"log format":  "log: {format: xml}\n",
		"key":         "key: H\n",
		"mode":        "mode: dorian\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, content))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestLoad_FileErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeConfig(t, "key: [unterminated\n"))
	assert.Error(t, err)

	big := writeConfig(t, "# "+strings.Repeat("x", 1024*1024)+"\n")
	_, err = config.Load(big)
	assert.ErrorIs(t, err, config.ErrConfigTooLarge)
}

// TestSearchOptions applies the mapped options to a solver.
func TestSearchOptions(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "key: E\nmode: minor\ntarget_solutions: 150\nwindow: {min: 2, max: 14}\n"))
	require.NoError(t, err)
	key, err := cfg.ParsedKey()
	require.NoError(t, err)

	s, err := search.NewSolver([]int{64}, key, cfg.SearchOptions()...)
	require.NoError(t, err)
	o := s.Options()
	assert.Equal(t, 2, o.MinInterval)
	assert.Equal(t, 14, o.MaxInterval)
	assert.Equal(t, 150, o.TargetSolutions)
	assert.True(t, o.Meter(0))
	assert.False(t, o.Meter(1))
}
