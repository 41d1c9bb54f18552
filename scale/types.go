// Package scale defines keys, modes and pitch-class sets.
package scale

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrInvalidKey is returned when a key root spelling or mode is not recognized.
	ErrInvalidKey = errors.New("scale: invalid key")

	// ErrInvalidPitch is returned when a pitch name cannot be parsed.
	ErrInvalidPitch = errors.New("scale: invalid pitch name")
)

// Mode selects the interval pattern of a key.
//
//   - Major         - {0, 2, 4, 5, 7, 9, 11}
//   - HarmonicMinor - {0, 2, 3, 5, 7, 8, 11} (raised 7th degree)
type Mode int

const (
	// Major is the ionian pattern.
	Major Mode = iota

	// HarmonicMinor is the aeolian pattern with a raised leading tone.
	HarmonicMinor
)

// patterns holds the fixed 7-element interval pattern of each mode.
var patterns = [...][7]int{
	Major:         {0, 2, 4, 5, 7, 9, 11},
	HarmonicMinor: {0, 2, 3, 5, 7, 8, 11},
}

// String returns the canonical mode name used by ParseMode.
func (m Mode) String() string {
	switch m {
	case Major:
		return "major"
	case HarmonicMinor:
		return "harmonic-minor"
	default:
		return "mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// Key is a root pitch class plus a mode. It is a comparable value type.
type Key struct {
	// Root is the tonic pitch class in [0, 11].
	Root int

	// Mode selects the interval pattern.
	Mode Mode
}

// String renders the key as "<root> <mode>", e.g. "E harmonic-minor".
func (k Key) String() string {
	return pitchClassNames[mod12(k.Root)] + " " + k.Mode.String()
}

// PitchClassSet is a set of pitch classes stored as a 12-bit mask.
// Bit i is set when pitch class i belongs to the set.
type PitchClassSet uint16

// Contains reports whether pitch class pc (any integer, reduced mod 12) is in the set.
func (s PitchClassSet) Contains(pc int) bool {
	return s&(1<<uint(mod12(pc))) != 0
}

// Len returns the number of pitch classes in the set.
func (s PitchClassSet) Len() int {
	var n, pc int
	for pc = 0; pc < 12; pc++ {
		if s.Contains(pc) {
			n++
		}
	}

	return n
}

// Slice returns the members in ascending order.
func (s PitchClassSet) Slice() []int {
	out := make([]int, 0, 7)
	var pc int
	for pc = 0; pc < 12; pc++ {
		if s.Contains(pc) {
			out = append(out, pc)
		}
	}

	return out
}

// String renders the set as "{0 2 4 5 7 9 11}".
func (s PitchClassSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, pc := range s.Slice() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(pc))
	}
	b.WriteByte('}')

	return b.String()
}

// mod12 reduces x into [0, 11], also for negative inputs.
func mod12(x int) int {
	r := x % 12
	if r < 0 {
		r += 12
	}

	return r
}
