// Package search defines options, events and results of the counterpoint search.
package search

import (
	"errors"

	"github.com/katalvlaran/counterpoint/rules"
)

var (
	// ErrNoSolutionFound indicates the search recorded zero complete lines.
	// It is a proof of infeasibility only when Result.Exhausted would have been true.
	ErrNoSolutionFound = errors.New("search: no solution found")

	// ErrInvalidWindow indicates MinInterval > MaxInterval.
	ErrInvalidWindow = errors.New("search: interval window lower bound exceeds upper bound")

	// ErrInvalidBudget indicates TargetSolutions < 1.
	ErrInvalidBudget = errors.New("search: target solutions must be positive")

	// ErrNilRules indicates a nil RuleSet or Meter in Options.
	ErrNilRules = errors.New("search: rule set and meter must be non-nil")
)

// Defaults for Options.
const (
	DefaultMinInterval     = 0
	DefaultMaxInterval     = 16
	DefaultTargetSolutions = 1000
)

// outOfKey is the heuristic sentinel that sorts out-of-key candidates last.
const outOfKey = -1000

// Option configures a Solver. Use with NewSolver(cantus, key, opts...).
type Option func(*Options)

// Options holds the tunables of one search.
type Options struct {
	// MinInterval and MaxInterval bound the candidate offsets k (pitch = cantus + k),
	// inclusive. Defaults: 0 and 16.
	MinInterval int
	MaxInterval int

	// TargetSolutions is the enumeration budget: the search stops everywhere
	// once this many complete lines are recorded. Default: 1000.
	TargetSolutions int

	// Meter decides beat strength per position. Default: rules.Duple.
	Meter rules.Meter

	// Rules is the hard/soft rule set. Default: rules.Default().
	Rules *rules.RuleSet

	// Observer, if non-nil, receives search events. It must not retain Event.Line.
	Observer Observer
}

// DefaultOptions returns Options with:
//   - window [0, 16]
//   - budget 1000
//   - duple meter (even positions strong)
//   - the classical rule set
//   - no observer
func DefaultOptions() Options {
	return Options{
		MinInterval:     DefaultMinInterval,
		MaxInterval:     DefaultMaxInterval,
		TargetSolutions: DefaultTargetSolutions,
		Meter:           rules.Duple,
		Rules:           rules.Default(),
		Observer:        nil,
	}
}

// WithWindow sets the inclusive candidate offset window [lo, hi].
func WithWindow(lo, hi int) Option {
	return func(o *Options) {
		o.MinInterval = lo
		o.MaxInterval = hi
	}
}

// WithTargetSolutions sets the enumeration budget.
func WithTargetSolutions(n int) Option {
	return func(o *Options) {
		o.TargetSolutions = n
	}
}

// WithMeter sets the beat-strength function. A nil meter has no effect.
func WithMeter(m rules.Meter) Option {
	return func(o *Options) {
		if m != nil {
			o.Meter = m
		}
	}
}

// WithRules replaces the rule set. A nil set has no effect.
func WithRules(rs *rules.RuleSet) Option {
	return func(o *Options) {
		if rs != nil {
			o.Rules = rs
		}
	}
}

// WithObserver installs fn as the event callback.
func WithObserver(fn Observer) Option {
	return func(o *Options) {
		o.Observer = fn
	}
}

// EventKind classifies search events.
type EventKind int

const (
	// EventAccept: a candidate passed every hard rule and was pushed.
	EventAccept EventKind = iota

	// EventReject: a candidate failed a hard rule (Event.Rule names it).
	EventReject

	// EventDeadEnd: no candidate survived at Event.Depth.
	EventDeadEnd

	// EventBacktrack: a candidate was popped after its subtree was explored.
	EventBacktrack

	// EventSolution: a complete line was recorded (Event.Score set).
	EventSolution

	// EventBudget: the solution budget was reached; the search unwinds.
	EventBudget
)

// String returns a lower-case name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventAccept:
		return "accept"
	case EventReject:
		return "reject"
	case EventDeadEnd:
		return "dead-end"
	case EventBacktrack:
		return "backtrack"
	case EventSolution:
		return "solution"
	case EventBudget:
		return "budget"
	default:
		return "unknown"
	}
}

// Event describes one step of the search.
type Event struct {
	Kind  EventKind
	Depth int    // position the event concerns
	Pitch int    // candidate pitch (Accept, Reject, Backtrack)
	Rule  string // violated hard rule (Reject)
	Score int    // soft score (Solution)
	Line  []int  // live partial line; valid only during the callback
}

// Observer receives search events synchronously. It has no influence on the search.
type Observer func(Event)

// Observers fans one event stream out to several observers, in order.
// Nil entries are skipped; with no usable entry the result is nil.
func Observers(obs ...Observer) Observer {
	list := make([]Observer, 0, len(obs))
	for _, o := range obs {
		if o != nil {
			list = append(list, o)
		}
	}
	switch len(list) {
	case 0:
		return nil
	case 1:
		return list[0]
	}

	return func(ev Event) {
		for _, o := range list {
			o(ev)
		}
	}
}

// Solution is a complete counterpoint line and its soft-constraint score.
type Solution struct {
	Melody []int
	Score  int
}

// Stats counts search work.
type Stats struct {
	Nodes     int // candidates pushed
	Rejected  int // candidates failing a hard rule
	DeadEnds  int // positions with no surviving candidate
	Solutions int // complete lines recorded
}

// Result is the outcome of Solve.
type Result struct {
	// Best is Solutions[0].
	Best Solution

	// Solutions holds every recorded line, sorted by descending score;
	// ties keep discovery order.
	Solutions []Solution

	// Exhausted is true when the whole tree was explored without the budget
	// cutting the search short.
	Exhausted bool

	// Stats reports the work done.
	Stats Stats
}
