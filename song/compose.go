package song

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/counterpoint/contour"
	"github.com/katalvlaran/counterpoint/rules"
	"github.com/katalvlaran/counterpoint/scale"
	"github.com/katalvlaran/counterpoint/search"
)

// solved is the outcome for one distinct section.
type solved struct {
	melody    []int
	score     int
	solutions int
	exhausted bool
	fallback  bool
}

// Compose solves the song and assembles the arrangement.
//
// Steps:
//  1. Collect distinct non-solo sections in first-appearance order and build
//     one Solver each; option or key errors abort here.
//  2. Solve them concurrently, at most Concurrency at a time. A section with
//     no solution falls back to its cantus; that is not an error.
//  3. Walk the form and concatenate cantus and counterpoint.
//
// Errors: ErrInvalidSong, ErrUnknownSection, search option errors, or the
// context's error when ctx is cancelled before every section is solved.
func Compose(ctx context.Context, s *Song, opts ...Option) (*Arrangement, error) {
	o := composeOptions{log: zap.NewNop()}
	for _, fn := range opts {
		fn(&o)
	}
	if o.runID == "" {
		o.runID = uuid.NewString()
	}
	if o.concurrency == 0 {
		o.concurrency = s.Concurrency
	}
	if o.concurrency == 0 {
		o.concurrency = DefaultConcurrency
	}
	log := o.log.With(zap.String("run_id", o.runID))

	if err := s.Validate(); err != nil {
		return nil, err
	}
	key, err := scale.ParseKey(s.Key, s.Mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSong, err)
	}

	// 1. Distinct sections and their solvers.
	var (
		names   []string
		solvers []*search.Solver
		sopts   = s.searchOptions(o.search)
	)
	for _, name := range s.Form {
		if slices.Contains(names, name) || slices.Contains(s.Solo, name) {
			continue
		}
		solver, err := search.NewSolver(s.Sections[name], key, sopts...)
		if err != nil {
			return nil, fmt.Errorf("section %q: %w", name, err)
		}
		names = append(names, name)
		solvers = append(solvers, solver)
	}
	log.Info("composing song",
		zap.String("title", s.Title),
		zap.Stringer("key", key),
		zap.Int("form_length", len(s.Form)),
		zap.Int("distinct_sections", len(names)),
		zap.Int("concurrency", o.concurrency))

	// 2. Fan out.
	results := make([]solved, len(names))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for i := range solvers {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = solveSection(log, o.recorder, names[i], solvers[i])

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("compose %q: %w", s.Title, err)
	}

	// 3. Assemble.
	arr := s.assemble(key, names, results)
	arr.RunID = o.runID
	log.Info("song composed",
		zap.Int("notes", len(arr.Cantus)),
		zap.Int("fallbacks", countFallbacks(arr.Sections)))

	return arr, nil
}

// searchOptions layers the song's own settings over the caller's base options.
func (s *Song) searchOptions(base []search.Option) []search.Option {
	out := slices.Clone(base)
	if s.Target > 0 {
		out = append(out, search.WithTargetSolutions(s.Target))
	}
	if s.Window != nil {
		out = append(out, search.WithWindow(s.Window.Min, s.Window.Max))
	}
	if len(s.Beats) > 0 {
		out = append(out, search.WithMeter(rules.Accents(s.Beats...)))
	}

	return out
}

// solveSection runs one solver and converts its outcome, falling back to the
// cantus when no line exists.
func solveSection(log *zap.Logger, rec Recorder, name string, solver *search.Solver) solved {
	start := time.Now()
	res, err := solver.Solve()
	elapsed := time.Since(start)
	if rec != nil {
		rec.RecordSolve(name, elapsed, res, err)
	}

	if err != nil {
		fields := []zap.Field{zap.String("section", name), zap.Error(err), zap.Duration("elapsed", elapsed)}
		if res != nil {
			fields = append(fields, zap.Bool("exhausted", res.Exhausted), zap.Int("dead_ends", res.Stats.DeadEnds))
		}
		if !errors.Is(err, search.ErrNoSolutionFound) {
			log.Error("section failed", fields...)
		} else {
			log.Warn("no counterpoint for section, doubling the cantus", fields...)
		}

		return solved{melody: solver.Cantus(), fallback: true, exhausted: res != nil && res.Exhausted}
	}

	log.Debug("section solved",
		zap.String("section", name),
		zap.Int("score", res.Best.Score),
		zap.Int("solutions", len(res.Solutions)),
		zap.Bool("exhausted", res.Exhausted),
		zap.Int("nodes", res.Stats.Nodes),
		zap.Duration("elapsed", elapsed))

	return solved{
		melody:    res.Best.Melody,
		score:     res.Best.Score,
		solutions: len(res.Solutions),
		exhausted: res.Exhausted,
	}
}

// assemble concatenates sections in form order.
func (s *Song) assemble(key scale.Key, names []string, results []solved) *Arrangement {
	arr := &Arrangement{
		Title:    s.Title,
		Key:      key.String(),
		Sections: make([]Placement, 0, len(s.Form)),
	}
	for _, name := range s.Form {
		var (
			cf = s.Sections[name]
			pl = Placement{Name: name, Start: len(arr.Cantus), End: len(arr.Cantus) + len(cf)}
			cp []int
		)
		if slices.Contains(s.Solo, name) {
			pl.Solo = true
			cp = cf
		} else {
			r := results[slices.Index(names, name)]
			cp = r.melody
			pl.Fallback = r.fallback
			pl.Score = r.score
			pl.Solutions = r.solutions
			pl.Exhausted = r.exhausted
		}
		if c, err := contour.Compare(cf, cp, nil); err == nil {
			pl.Contour = c.Normalized
		}
		arr.Cantus = append(arr.Cantus, cf...)
		arr.Counterpoint = append(arr.Counterpoint, cp...)
		arr.Sections = append(arr.Sections, pl)
	}
	arr.CantusNames = scale.PitchNames(arr.Cantus)
	arr.CounterpointNames = scale.PitchNames(arr.Counterpoint)

	return arr
}

// countFallbacks counts placements that doubled the cantus after a failed search.
func countFallbacks(ps []Placement) int {
	var n int
	for _, p := range ps {
		if p.Fallback {
			n++
		}
	}

	return n
}
