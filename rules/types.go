// Package rules defines the window type, named constraints and RuleSet.
package rules

// Hard constraint names reported by RuleSet.Check.
const (
	RuleParallelPerfect      = "parallel-perfect"
	RuleStrongBeatConsonance = "strong-beat-consonance"
	RuleSuspension           = "suspension-resolution"
	RuleMelodicLeap          = "melodic-leap"
	RuleCadence              = "cadence"
)

// Soft constraint names used as keys of RuleSet.ScoreDetail.
const (
	SoftAccentedDissonance = "accented-dissonance"
	SoftPassingTone        = "passing-tone"
	SoftContraryMotion     = "contrary-motion"
	SoftHiddenParallels    = "hidden-parallels"
	SoftClosePosition      = "close-position"
)

// Soft constraint weights.
const (
	WeightAccentedDissonance = 5
	WeightPassingTone        = 2
	WeightContraryMotion     = 2
	WeightHiddenParallels    = -5
	WeightClosePosition      = 1
)

// MaxStrongBeatSpan is the widest vertical interval (in semitones) allowed on a strong beat.
const MaxStrongBeatSpan = 24

// ClosePositionSpan is the vertical interval below which close position is rewarded.
const ClosePositionSpan = 16

// Position is the window a hard constraint sees when a note is proposed for
// index Index of the line.
//
// Fields:
//   - Index        - 0-based position in both voices.
//   - Strong       - beat strength of Index, as reported by the Meter.
//   - Terminal     - true when Index is the last position of the cantus.
//   - HasPrev      - false at Index 0; the *Prev fields are then meaningless.
//   - CantusPrev/CantusCurr - cantus firmus notes at Index-1 and Index.
//   - LinePrev/LineCurr     - counterpoint notes at Index-1 and Index (LineCurr is the candidate).
type Position struct {
	Index    int
	Strong   bool
	Terminal bool
	HasPrev  bool

	CantusPrev int
	CantusCurr int
	LinePrev   int
	LineCurr   int
}

// At builds the Position for index i from a cantus and a line whose element i
// is the candidate. It panics if line is shorter than i+1, like a slice index would.
func At(cantus, line []int, i int, meter Meter) Position {
	p := Position{
		Index:      i,
		Strong:     meter(i),
		Terminal:   i == len(cantus)-1,
		HasPrev:    i > 0,
		CantusCurr: cantus[i],
		LineCurr:   line[i],
	}
	if p.HasPrev {
		p.CantusPrev = cantus[i-1]
		p.LinePrev = line[i-1]
	}

	return p
}

// Constraint is a named hard predicate. Allow returns false to reject the
// candidate described by the Position.
type Constraint struct {
	Name  string
	Allow func(p Position) bool
}

// RuleSet is an immutable collection of hard constraints evaluated in order.
// The zero value has no constraints; use Default for the classical set.
type RuleSet struct {
	hard []Constraint
}
