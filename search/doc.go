// Package search generates a counterpoint line against a cantus firmus with a
// constraint-filtered, heuristically ordered backtracking search, and ranks
// the complete lines it finds.
//
// What:
//
//   - CandidateGenerator: per position, enumerates cantus+k for k in a window,
//     filters by the key's pitch classes, orders by a voice-leading heuristic
//     and keeps the candidates that pass every hard rule.
//   - BacktrackingSearch: depth-first push/recurse/pop over positions; records a
//     copy of every complete line; stops once TargetSolutions lines are recorded.
//   - Ranker: stable sort by descending soft-constraint score.
//
// Why:
//
//   - A counterpoint line is a sequence of locally constrained choices; pruning
//     on the hard rules keeps the exponential tree tractable for cantus lengths
//     of a few dozen notes.
//
// Options:
//
//   - WithWindow(lo, hi)        candidate offsets, default [0, 16]
//   - WithTargetSolutions(n)    enumeration budget, default 1000
//   - WithMeter(m)              beat strength per position, default rules.Duple
//   - WithRules(rs)             rule set, default rules.Default()
//   - WithObserver(fn)          accept/reject/dead-end/backtrack/solution/budget events
//
// Determinism: no randomness and stable sorts everywhere, so identical inputs
// produce identical ordered results.
//
// Concurrency: a Solver is immutable; each Solve call owns its engine.
// Independent Solve calls may run in parallel without synchronization.
//
// Errors:
//
//   - ErrNoSolutionFound  no complete line was found
//   - ErrInvalidWindow    MinInterval > MaxInterval
//   - ErrInvalidBudget    TargetSolutions < 1
//   - ErrNilRules         nil rule set or meter
//   - scale.ErrInvalidKey unknown key root or mode
package search
