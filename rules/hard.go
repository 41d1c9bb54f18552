package rules

// Default returns the classical two-voice rule set:
//
//  1. parallel-perfect        - no repeated perfect interval class under equal motion.
//  2. strong-beat-consonance  - strong beats are consonant and span ≤ 24 semitones.
//  3. suspension-resolution   - a dissonance resolves down by step onto a consonance.
//  4. melodic-leap            - no melodic 6, 11, 13 or > 12 semitones.
//  5. cadence                 - the terminal vertical is a unison or octave.
//
// The returned set is immutable and safe to share between goroutines.
func Default() *RuleSet {
	return &RuleSet{hard: []Constraint{
		{Name: RuleParallelPerfect, Allow: NoParallelPerfect},
		{Name: RuleStrongBeatConsonance, Allow: StrongBeatConsonance},
		{Name: RuleSuspension, Allow: SuspensionResolution},
		{Name: RuleMelodicLeap, Allow: NoForbiddenLeap},
		{Name: RuleCadence, Allow: Cadence},
	}}
}

// WithHard returns a new RuleSet with extra constraints appended after the
// existing ones. The receiver is left untouched. Constraints with a nil
// Allow function are ignored.
func (rs *RuleSet) WithHard(extra ...Constraint) *RuleSet {
	out := &RuleSet{hard: make([]Constraint, 0, len(rs.hard)+len(extra))}
	out.hard = append(out.hard, rs.hard...)
	var c Constraint
	for _, c = range extra {
		if c.Allow != nil {
			out.hard = append(out.hard, c)
		}
	}

	return out
}

// Names returns the hard constraint names in evaluation order.
func (rs *RuleSet) Names() []string {
	out := make([]string, len(rs.hard))
	for i, c := range rs.hard {
		out[i] = c.Name
	}

	return out
}

// Check evaluates every hard constraint against p in order and reports the
// name of the first one that rejects it. ok is true when all constraints hold.
//
// Complexity: O(R).
func (rs *RuleSet) Check(p Position) (ok bool, violated string) {
	var c Constraint
	for _, c = range rs.hard {
		if !c.Allow(p) {
			return false, c.Name
		}
	}

	return true, ""
}

// NoParallelPerfect rejects a perfect interval class that repeats the previous
// vertical interval class while both voices move in the same direction
// (both stationary counts as the same direction).
func NoParallelPerfect(p Position) bool {
	if !p.HasPrev {
		return true
	}
	curr := IntervalClass(p.CantusCurr, p.LineCurr)
	if !perfect[curr] || curr != IntervalClass(p.CantusPrev, p.LinePrev) {
		return true
	}

	return Direction(p.CantusPrev, p.CantusCurr) != Direction(p.LinePrev, p.LineCurr)
}

// StrongBeatConsonance requires a consonant interval class no wider than
// MaxStrongBeatSpan on strong beats. Weak beats are exempt.
func StrongBeatConsonance(p Position) bool {
	if !p.Strong {
		return true
	}

	return IsConsonant(p.CantusCurr, p.LineCurr) && Interval(p.CantusCurr, p.LineCurr) <= MaxStrongBeatSpan
}

// SuspensionResolution requires that, after a dissonant vertical, the line
// moves down by one step onto a consonance.
func SuspensionResolution(p Position) bool {
	if !p.HasPrev || IsConsonant(p.CantusPrev, p.LinePrev) {
		return true
	}
	if Direction(p.LinePrev, p.LineCurr) != -1 || !IsStep(p.LinePrev, p.LineCurr) {
		return false
	}

	return IsConsonant(p.CantusCurr, p.LineCurr)
}

// NoForbiddenLeap rejects melodic intervals of 6, 11 or 13 semitones and
// anything wider than an octave.
func NoForbiddenLeap(p Position) bool {
	if !p.HasPrev {
		return true
	}

	return !IsForbiddenLeap(p.LinePrev, p.LineCurr)
}

// Cadence requires a unison or octave (interval class 0) at the terminal position.
func Cadence(p Position) bool {
	if !p.Terminal {
		return true
	}

	return IntervalClass(p.CantusCurr, p.LineCurr) == 0
}
