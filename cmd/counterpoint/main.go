// Package main implements the counterpoint CLI: generate a counterpoint line
// against a cantus firmus, compose whole songs and inspect keys and contours.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/counterpoint/internal/config"
	"github.com/katalvlaran/counterpoint/internal/logging"
	"github.com/katalvlaran/counterpoint/internal/metrics"
	"github.com/katalvlaran/counterpoint/search"
)

// version is set at build time.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries state shared by every command of one invocation.
type app struct {
	configPath string
	logLevel   string
	logFormat  string
	metrics    bool

	cfg       *config.Config
	log       *zap.Logger
	collector *metrics.Collector
}

// newRootCmd builds a fresh command tree.
func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "counterpoint",
		Short: "Generate two-voice counterpoint against a cantus firmus",
		Long: `counterpoint writes a second melodic line against a given melody (the
cantus firmus) using classical voice-leading rules, and ranks the results.

Configuration is read from --config, then COUNTERPOINT_* environment
variables, then command flags.`,
		Version:            version,
		SilenceUsage:       true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: console or json")
	pf.BoolVar(&a.metrics, "metrics", false, "print search metrics to stderr on exit")

	root.AddCommand(newSolveCmd(a), newSongCmd(a), newScaleCmd(), newContourCmd())

	return root
}

// setup loads configuration and builds the logger and metrics collector.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	log, err := logging.New(cfg.Log, zapcore.AddSync(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}
	a.log = log.Named(cmd.Name())
	if a.metrics {
		a.collector = metrics.New()
	}

	return nil
}

// teardown flushes logs and dumps metrics.
func (a *app) teardown(cmd *cobra.Command, _ []string) error {
	if a.collector != nil {
		if err := a.collector.WriteText(cmd.ErrOrStderr()); err != nil {
			return err
		}
	}
	if a.log != nil {
		return logging.Sync(a.log)
	}

	return nil
}

// observer combines the log and metrics observers.
func (a *app) observer() search.Observer {
	var m search.Observer
	if a.collector != nil {
		m = a.collector.Observer()
	}

	return search.Observers(logging.SearchObserver(a.log), m)
}

// printf writes to the command's standard output.
func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
