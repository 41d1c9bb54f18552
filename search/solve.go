// Package search - public entry points.
//
//   - NewSolver validates the cantus, key and options once and freezes them.
//   - Solver.Solve runs a fresh engine per call, so one Solver may be solved
//     repeatedly or from several goroutines; every call yields the same result.
//   - Solve is a one-shot convenience taking key spellings.
package search

import (
	"fmt"

	"github.com/katalvlaran/counterpoint/scale"
)

// Solver is an immutable search configuration: cantus firmus, key and Options.
type Solver struct {
	cantus  []int
	key     scale.Key
	allowed scale.PitchClassSet
	opts    Options
}

// NewSolver copies cantus, applies opts over DefaultOptions and validates.
//
// Errors:
//   - scale.ErrInvalidKey    key has no pitch classes (unknown Mode).
//   - ErrInvalidWindow       MinInterval > MaxInterval.
//   - ErrInvalidBudget       TargetSolutions < 1.
//   - ErrNilRules            nil Rules or Meter.
func NewSolver(cantus []int, key scale.Key, opts ...Option) (*Solver, error) {
	// 1. Apply options.
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	// 2. Validate.
	if err := validateOptions(o); err != nil {
		return nil, err
	}
	allowed := key.PitchClasses()
	if allowed.Len() != 7 {
		return nil, fmt.Errorf("%w: %v", scale.ErrInvalidKey, key)
	}

	// 3. Freeze a private copy of the cantus.
	cf := make([]int, len(cantus))
	copy(cf, cantus)

	return &Solver{cantus: cf, key: key, allowed: allowed, opts: o}, nil
}

// validateOptions checks Options consistency.
//
// Complexity: O(1).
func validateOptions(o Options) error {
	if o.MinInterval > o.MaxInterval {
		return ErrInvalidWindow
	}
	if o.TargetSolutions < 1 {
		return ErrInvalidBudget
	}
	if o.Rules == nil || o.Meter == nil {
		return ErrNilRules
	}

	return nil
}

// Cantus returns a copy of the cantus firmus.
func (s *Solver) Cantus() []int {
	out := make([]int, len(s.cantus))
	copy(out, s.cantus)

	return out
}

// Key returns the key the solver filters by.
func (s *Solver) Key() scale.Key { return s.key }

// Options returns the effective options.
func (s *Solver) Options() Options { return s.opts }

// Solve runs the backtracking search and ranks the recorded lines.
//
// A zero-length cantus yields one empty Solution with score 0.
//
// Errors: ErrNoSolutionFound (wrapped with the key and budget) when no
// complete line was recorded. The partial Result is still returned so callers
// can inspect Stats and Exhausted.
func (s *Solver) Solve() (*Result, error) {
	e := newEngine(s.cantus, s.allowed, s.opts)
	e.dfs(0)

	res := &Result{
		Exhausted: !e.budgetHit,
		Stats:     e.stats,
	}
	if len(e.solutions) == 0 {
		return res, fmt.Errorf("%w: %d notes in %v (exhausted=%t)",
			ErrNoSolutionFound, len(s.cantus), s.key, res.Exhausted)
	}
	res.Solutions = Rank(e.solutions)
	res.Best = res.Solutions[0]

	return res, nil
}

// Rescore recomputes the soft-constraint score of melody against the
// solver's cantus and meter.
func (s *Solver) Rescore(melody []int) int {
	return s.opts.Rules.Score(s.cantus, melody, s.opts.Meter)
}

// Solve parses the key spellings, builds a Solver and solves it.
func Solve(cantus []int, root, mode string, opts ...Option) (*Result, error) {
	key, err := scale.ParseKey(root, mode)
	if err != nil {
		return nil, err
	}
	s, err := NewSolver(cantus, key, opts...)
	if err != nil {
		return nil, err
	}

	return s.Solve()
}
