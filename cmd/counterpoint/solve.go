package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/counterpoint/scale"
	"github.com/katalvlaran/counterpoint/search"
)

// solveFlags holds solve-only flags; unset flags keep the configured values.
type solveFlags struct {
	key, mode     string
	min, max      int
	target, top   int
	beats         []bool
	showRejection bool
}

func newSolveCmd(a *app) *cobra.Command {
	f := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve <pitch>...",
		Short: "Write a counterpoint line against a cantus firmus",
		Long: `Write a counterpoint line against the given cantus firmus. Pitches are MIDI
numbers or note names (C4 = 60).

Examples:
  # Opening of "Hijo de la Luna" in E minor, best five lines
  counterpoint solve B4 C5 B4 A4 G4 F#4 E4 --key E --mode harmonic-minor --target 150

  # Waltz accents, narrow window
  counterpoint solve 60 62 64 62 60 --beats 1,0,0 --min 3 --max 12`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSolve(cmd, f, args)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.key, "key", "", "key root, e.g. C, F#, Bb")
	fl.StringVar(&f.mode, "mode", "", "major or harmonic-minor")
	fl.IntVar(&f.min, "min", 0, "smallest interval above the cantus")
	fl.IntVar(&f.max, "max", 0, "largest interval above the cantus")
	fl.IntVar(&f.target, "target", 0, "stop after this many complete lines")
	fl.IntVar(&f.top, "top", 5, "number of ranked lines to print")
	fl.BoolSliceVar(&f.beats, "beats", nil, "accent pattern, e.g. 1,0,0 for a waltz")
	fl.BoolVar(&f.showRejection, "rules", false, "print rejection counts per hard rule")

	return cmd
}

// runSolve applies flag overrides, solves and prints the ranked lines.
func (a *app) runSolve(cmd *cobra.Command, f *solveFlags, args []string) error {
	cantus, err := scale.ParsePitches(args)
	if err != nil {
		return err
	}

	// 1. Flags over config.
	cfg := *a.cfg
	fl := cmd.Flags()
	if fl.Changed("key") {
		cfg.Key = f.key
	}
	if fl.Changed("mode") {
		cfg.Mode = f.mode
	}
	if fl.Changed("min") {
		cfg.Window.Min = f.min
	}
	if fl.Changed("max") {
		cfg.Window.Max = f.max
	}
	if fl.Changed("target") {
		cfg.TargetSolutions = f.target
	}
	if fl.Changed("beats") {
		cfg.Beats = f.beats
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	key, err := cfg.ParsedKey()
	if err != nil {
		return err
	}

	// 2. Solve.
	rejections := map[string]int{}
	observer := a.observer()
	opts := append(cfg.SearchOptions(), search.WithObserver(func(ev search.Event) {
		if ev.Kind == search.EventReject {
			rejections[ev.Rule]++
		}
		if observer != nil {
			observer(ev)
		}
	}))
	solver, err := search.NewSolver(cantus, key, opts...)
	if err != nil {
		return err
	}
	a.log.Info("solving",
		zap.Stringer("key", key),
		zap.Ints("cantus", cantus),
		zap.Int("target", cfg.TargetSolutions))

	start := time.Now()
	res, err := solver.Solve()
	if a.collector != nil {
		a.collector.RecordSolve("", time.Since(start), res, err)
	}

	// 3. Report.
	printf(cmd, "%s  cantus: %s\n", key, strings.Join(scale.PitchNames(cantus), " "))
	if res != nil {
		printf(cmd, "solutions: %d  exhausted: %t  nodes: %d  rejected: %d  dead ends: %d\n",
			len(res.Solutions), res.Exhausted, res.Stats.Nodes, res.Stats.Rejected, res.Stats.DeadEnds)
	}
	if f.showRejection {
		for _, name := range solver.Options().Rules.Names() {
			printf(cmd, "  %-24s %d\n", name, rejections[name])
		}
	}
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	for i, s := range search.Top(res.Solutions, f.top) {
		printf(cmd, "#%d  score %d  %s  %v\n", i+1, s.Score, strings.Join(scale.PitchNames(s.Melody), " "), s.Melody)
	}
	a.log.Info("solved", zap.Int("best_score", res.Best.Score), zap.Duration("elapsed", time.Since(start)))

	return nil
}
