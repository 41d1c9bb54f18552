// Package rules holds the two-voice voice-leading rules used by the
// counterpoint search.
//
// What:
//
//   - Primitives: Interval, IntervalClass, Direction, IsStep, IsSkip,
//     IsConsonant, IsPerfect.
//   - Hard constraints (RuleSet.Check): predicates over a Position window that
//     must all hold for a note to be accepted:
//     parallel-perfect, strong-beat-consonance, suspension-resolution,
//     melodic-leap and cadence.
//   - Soft constraints (RuleSet.Score / ScoreDetail): stylistic rewards and
//     penalties summed over a completed line; they never reject.
//   - Meter: an explicit per-position beat-strength function (Duple, Accents).
//
// Why:
//
//   - Keeping rules as pure functions of their inputs lets independent searches
//     share one RuleSet without synchronization.
//
// Key Types:
//
//   - Position: the vertical/horizontal window (previous and current note of
//     both voices) a hard constraint inspects.
//   - Constraint: a named hard predicate.
//   - RuleSet: an immutable list of constraints plus the fixed soft scoring.
//
// Complexity:
//
//   - Check: O(R) for R hard constraints (R = 5 by default).
//   - Score: O(N) over a line of length N.
package rules
