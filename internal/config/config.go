// Package config loads command-line configuration for counterpoint.
//
// Precedence (highest to lowest):
//  1. Environment variables with the COUNTERPOINT_ prefix
//  2. YAML config file (--config)
//  3. Defaults
//
// Environment variables map onto keys by dropping the prefix and lower-casing;
// the first underscore after a section name becomes a dot:
//
//	COUNTERPOINT_KEY              -> key
//	COUNTERPOINT_TARGET_SOLUTIONS -> target_solutions
//	COUNTERPOINT_WINDOW_MAX       -> window.max
//	COUNTERPOINT_LOG_LEVEL        -> log.level
//	COUNTERPOINT_BEATS=1,0,0      -> beats: [true, false, false]
package config

import (
	"github.com/katalvlaran/counterpoint/internal/logging"
	"github.com/katalvlaran/counterpoint/rules"
	"github.com/katalvlaran/counterpoint/scale"
	"github.com/katalvlaran/counterpoint/search"
)

// Config is the effective configuration of one command invocation.
type Config struct {
	Key             string         `koanf:"key" validate:"required"`
	Mode            string         `koanf:"mode" validate:"required"`
	Window          Window         `koanf:"window"`
	TargetSolutions int            `koanf:"target_solutions" validate:"gte=1"`
	Concurrency     int            `koanf:"concurrency" validate:"gte=1"`
	Beats           []bool         `koanf:"beats"`
	Log             logging.Config `koanf:"log"`
}

// Window is the candidate interval window above the cantus.
type Window struct {
	Min int `koanf:"min" validate:"gte=0"`
	Max int `koanf:"max" validate:"gtefield=Min"`
}

// defaults returns the flat default key map loaded before file and env.
func defaults() map[string]any {
	return map[string]any{
		"key":              "C",
		"mode":             scale.Major.String(),
		"window.min":       search.DefaultMinInterval,
		"window.max":       search.DefaultMaxInterval,
		"target_solutions": search.DefaultTargetSolutions,
		"concurrency":      4,
		"log.level":        "info",
		"log.format":       "console",
	}
}

// ParsedKey parses Key and Mode.
func (c *Config) ParsedKey() (scale.Key, error) {
	return scale.ParseKey(c.Key, c.Mode)
}

// Meter returns the accent pattern from Beats, or duple meter when unset.
func (c *Config) Meter() rules.Meter {
	return rules.Accents(c.Beats...)
}

// SearchOptions maps the configuration onto search options.
func (c *Config) SearchOptions() []search.Option {
	return []search.Option{
		search.WithWindow(c.Window.Min, c.Window.Max),
		search.WithTargetSolutions(c.TargetSolutions),
		search.WithMeter(c.Meter()),
	}
}
