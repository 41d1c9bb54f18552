package rules

// consonant and perfect are interval-class membership tables indexed 0..11.
var (
	consonant = [12]bool{0: true, 3: true, 4: true, 7: true, 8: true, 9: true}
	perfect   = [12]bool{0: true, 7: true}
	imperfect = [12]bool{3: true, 4: true, 8: true, 9: true}
)

// forbiddenLeap lists melodic interval magnitudes that are never allowed
// (tritone, major seventh, minor ninth). Anything above an octave is also rejected.
var forbiddenLeap = map[int]bool{6: true, 11: true, 13: true}

// Interval returns the absolute semitone distance between a and b.
func Interval(a, b int) int {
	if a > b {
		return a - b
	}

	return b - a
}

// IntervalClass returns Interval(a, b) mod 12.
func IntervalClass(a, b int) int {
	return Interval(a, b) % 12
}

// Direction returns +1 if to is above from, -1 if below, 0 if equal.
func Direction(from, to int) int {
	switch {
	case to > from:
		return 1
	case to < from:
		return -1
	default:
		return 0
	}
}

// IsStep reports a melodic move of one or two semitones.
func IsStep(a, b int) bool {
	d := Interval(a, b)

	return d == 1 || d == 2
}

// IsSkip reports a melodic move of three semitones or more.
func IsSkip(a, b int) bool {
	return Interval(a, b) >= 3
}

// IsConsonant reports whether the interval class of a and b is in {0,3,4,7,8,9}.
func IsConsonant(a, b int) bool {
	return consonant[IntervalClass(a, b)]
}

// IsPerfect reports whether the interval class of a and b is in {0,7}.
func IsPerfect(a, b int) bool {
	return perfect[IntervalClass(a, b)]
}

// IsImperfectClass reports whether interval class ic is an imperfect consonance {3,4,8,9}.
// ic is reduced mod 12 first; negative values are folded.
func IsImperfectClass(ic int) bool {
	ic %= 12
	if ic < 0 {
		ic += 12
	}

	return imperfect[ic]
}

// IsForbiddenLeap reports a melodic interval that the melodic-leap rule rejects.
func IsForbiddenLeap(a, b int) bool {
	d := Interval(a, b)

	return forbiddenLeap[d] || d > 12
}
