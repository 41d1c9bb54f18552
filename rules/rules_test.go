package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/counterpoint/rules"
)

// pair builds a non-terminal Position with a predecessor.
func pair(cfPrev, cfCurr, cpPrev, cpCurr int, strong bool) rules.Position {
	return rules.Position{
		Index:      1,
		Strong:     strong,
		HasPrev:    true,
		CantusPrev: cfPrev,
		CantusCurr: cfCurr,
		LinePrev:   cpPrev,
		LineCurr:   cpCurr,
	}
}

func TestPrimitives(t *testing.T) {
	assert.Equal(t, 7, rules.Interval(60, 67))
	assert.Equal(t, 7, rules.Interval(67, 60))
	assert.Equal(t, 7, rules.IntervalClass(60, 79))
	assert.Equal(t, 1, rules.Direction(60, 62))
	assert.Equal(t, -1, rules.Direction(62, 60))
	assert.Equal(t, 0, rules.Direction(60, 60))

	assert.True(t, rules.IsStep(60, 61))
	assert.True(t, rules.IsStep(62, 60))
	assert.False(t, rules.IsStep(60, 60))
	assert.False(t, rules.IsStep(60, 63))
	assert.True(t, rules.IsSkip(60, 63))
	assert.False(t, rules.IsSkip(60, 62))

	for _, ic := range []int{0, 3, 4, 7, 8, 9} {
		assert.True(t, rules.IsConsonant(60, 60+ic), "class %d", ic)
	}
	for _, ic := range []int{1, 2, 5, 6, 10, 11} {
		assert.False(t, rules.IsConsonant(60, 60+ic), "class %d", ic)
	}
	assert.True(t, rules.IsPerfect(60, 72))
	assert.True(t, rules.IsPerfect(60, 67))
	assert.False(t, rules.IsPerfect(60, 64))

	assert.True(t, rules.IsImperfectClass(16))
	assert.True(t, rules.IsImperfectClass(-3))
	assert.False(t, rules.IsImperfectClass(7))
}

// TestNoParallelPerfect_Scenarios mirrors the classic forbidden parallel fifths.
func TestNoParallelPerfect_Scenarios(t *testing.T) {
	// Fifth to fifth, both rising: rejected.
	assert.False(t, rules.NoParallelPerfect(pair(60, 62, 67, 69, false)))
	// Octave to octave, both falling: rejected.
	assert.False(t, rules.NoParallelPerfect(pair(62, 60, 74, 72, false)))
	// Both stationary on a unison: same (zero) direction, rejected.
	assert.False(t, rules.NoParallelPerfect(pair(60, 60, 60, 60, false)))
	// Fifth to fifth in contrary motion: allowed.
	assert.True(t, rules.NoParallelPerfect(pair(60, 62, 79, 69, false)))
	// Unison then major third: allowed (cp=[60,64] against cf=[60,62]).
	assert.True(t, rules.NoParallelPerfect(pair(60, 62, 60, 64, false)))
	// Fifth then octave (different perfect classes): allowed.
	assert.True(t, rules.NoParallelPerfect(pair(60, 62, 67, 74, false)))
	// Held cantus, counterpoint leaps an octave keeping the fifth: oblique, allowed.
	assert.True(t, rules.NoParallelPerfect(pair(60, 60, 67, 79, false)))
	// No predecessor: always allowed.
	assert.True(t, rules.NoParallelPerfect(rules.Position{CantusCurr: 60, LineCurr: 67}))
}

func TestStrongBeatConsonance(t *testing.T) {
	assert.True(t, rules.StrongBeatConsonance(pair(0, 60, 0, 64, true)))
	assert.False(t, rules.StrongBeatConsonance(pair(0, 60, 0, 62, true)), "second on strong beat")
	assert.True(t, rules.StrongBeatConsonance(pair(0, 60, 0, 62, false)), "weak beats are exempt")
	assert.True(t, rules.StrongBeatConsonance(pair(0, 60, 0, 84, true)), "24 semitones is the limit")
	assert.False(t, rules.StrongBeatConsonance(pair(0, 60, 0, 96, true)), "three octaves is too wide")
}

func TestSuspensionResolution(t *testing.T) {
	// Previous vertical 62/60 is a second: must step down onto a consonance.
	assert.True(t, rules.SuspensionResolution(pair(60, 57, 62, 60, false)))  // 2 down, 57/60 minor third
	assert.False(t, rules.SuspensionResolution(pair(60, 57, 62, 64, false))) // moved up
	assert.False(t, rules.SuspensionResolution(pair(60, 57, 62, 57, false))) // leap down
	assert.False(t, rules.SuspensionResolution(pair(60, 59, 62, 60, false))) // lands on a second
	// Consonant predecessor imposes nothing.
	assert.True(t, rules.SuspensionResolution(pair(60, 62, 64, 71, false)))
}

func TestNoForbiddenLeap(t *testing.T) {
	for _, d := range []int{6, 11, 13, 14, 19, -6, -11} {
		assert.False(t, rules.NoForbiddenLeap(pair(0, 0, 60, 60+d, false)), "leap %d", d)
	}
	for _, d := range []int{0, 1, 2, 5, 7, 10, 12, -12} {
		assert.True(t, rules.NoForbiddenLeap(pair(0, 0, 60, 60+d, false)), "leap %d", d)
	}
}

func TestCadence(t *testing.T) {
	p := rules.Position{Terminal: true, CantusCurr: 60, LineCurr: 72}
	assert.True(t, rules.Cadence(p))
	p.LineCurr = 67
	assert.False(t, rules.Cadence(p))
	p.Terminal = false
	assert.True(t, rules.Cadence(p), "cadence applies to the last position only")
}

// TestRuleSet_CheckOrder reports the first violated constraint by name.
func TestRuleSet_CheckOrder(t *testing.T) {
	rs := rules.Default()
	assert.Equal(t, []string{
		rules.RuleParallelPerfect,
		rules.RuleStrongBeatConsonance,
		rules.RuleSuspension,
		rules.RuleMelodicLeap,
		rules.RuleCadence,
	}, rs.Names())

	ok, name := rs.Check(pair(60, 62, 67, 69, true))
	assert.False(t, ok)
	assert.Equal(t, rules.RuleParallelPerfect, name)

	ok, name = rs.Check(pair(60, 62, 60, 54, false))
	assert.False(t, ok)
	assert.Equal(t, rules.RuleMelodicLeap, name, "tritone leap")

	ok, name = rs.Check(pair(60, 62, 60, 64, false))
	assert.True(t, ok)
	assert.Empty(t, name)

	term := pair(60, 62, 60, 64, false)
	term.Terminal = true
	ok, name = rs.Check(term)
	assert.False(t, ok)
	assert.Equal(t, rules.RuleCadence, name)
}

// TestRuleSet_WithHard leaves the receiver untouched.
func TestRuleSet_WithHard(t *testing.T) {
	base := rules.Default()
	noHigh := rules.Constraint{Name: "ceiling", Allow: func(p rules.Position) bool { return p.LineCurr <= 72 }}
	ext := base.WithHard(noHigh, rules.Constraint{Name: "nil"})

	assert.Len(t, base.Names(), 5)
	assert.Equal(t, append(base.Names(), "ceiling"), ext.Names())

	ok, name := ext.Check(pair(60, 62, 72, 76, false))
	assert.False(t, ok)
	assert.Equal(t, "ceiling", name)
	ok, _ = base.Check(pair(60, 62, 72, 76, false))
	assert.True(t, ok)
}

// TestAt builds windows from whole sequences.
func TestAt(t *testing.T) {
	cf := []int{60, 62, 64}
	cp := []int{72, 71, 76}
	p := rules.At(cf, cp, 0, rules.Duple)
	assert.False(t, p.HasPrev)
	assert.True(t, p.Strong)
	assert.False(t, p.Terminal)

	p = rules.At(cf, cp, 2, rules.Duple)
	assert.Equal(t, rules.Position{
		Index: 2, Strong: true, Terminal: true, HasPrev: true,
		CantusPrev: 62, CantusCurr: 64, LinePrev: 71, LineCurr: 76,
	}, p)
}

func TestMeter(t *testing.T) {
	assert.True(t, rules.Duple(0))
	assert.False(t, rules.Duple(1))
	assert.True(t, rules.Duple(4))

	waltz := rules.Accents(true, false, false)
	got := make([]bool, 6)
	for i := range got {
		got[i] = waltz(i)
	}
	assert.Equal(t, []bool{true, false, false, true, false, false}, got)
	assert.False(t, waltz(-1))

	fallback := rules.Accents()
	assert.True(t, fallback(2))
	assert.False(t, fallback(3))
}

// TestScore_Components exercises each soft constraint in isolation.
func TestScore_Components(t *testing.T) {
	rs := rules.Default()

	// Contrary motion + close position at position 1.
	cf := []int{60, 62}
	cp := []int{72, 71}
	assert.Equal(t, rules.WeightContraryMotion+rules.WeightClosePosition, rs.Score(cf, cp, rules.Duple))

	// Hidden octave: both rise, counterpoint leaps onto an octave; distance 12 is close.
	cf = []int{60, 62}
	cp = []int{67, 74}
	assert.Equal(t, rules.WeightHiddenParallels+rules.WeightClosePosition, rs.Score(cf, cp, rules.Duple))

	// Passing tone on weak beat 1: 64 -> 65 -> 67 over a held 60 (65/60 is a fourth).
	cf = []int{60, 60, 60}
	cp = []int{64, 65, 67}
	d := rs.ScoreDetail(cf, cp, rules.Duple)
	assert.Equal(t, rules.WeightPassingTone, d[rules.SoftPassingTone])

	// Accented dissonance on strong beat 2: leap to 62 over 60, then step down to 60.
	cf = []int{60, 60, 60, 60}
	cp = []int{67, 67, 62, 60}
	d = rs.ScoreDetail(cf, cp, rules.Duple)
	assert.Equal(t, rules.WeightAccentedDissonance, d[rules.SoftAccentedDissonance])

	// Wide spacing earns nothing; position 0 never scores.
	assert.Equal(t, 0, rs.Score([]int{40}, []int{76}, rules.Duple))
	assert.Equal(t, 0, rs.Score([]int{40, 40}, []int{76, 76}, rules.Duple))
	assert.Equal(t, 0, rs.Score(nil, nil, rules.Duple))
}

// TestScoreDetail_SumsToScore checks the breakdown on a longer line.
func TestScoreDetail_SumsToScore(t *testing.T) {
	rs := rules.Default()
	cf := []int{71, 72, 71, 69, 67, 66, 64}
	cp := []int{79, 76, 74, 72, 71, 69, 76}
	for _, m := range []rules.Meter{rules.Duple, rules.Accents(true, false, false)} {
		var sum int
		for _, v := range rs.ScoreDetail(cf, cp, m) {
			sum += v
		}
		assert.Equal(t, rs.Score(cf, cp, m), sum)
	}
}
