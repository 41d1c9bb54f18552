package scale

import (
	"fmt"
	"strings"
)

// rootSpellings maps upper-cased root spellings onto pitch classes.
// Enharmonic spellings share a pitch class.
var rootSpellings = map[string]int{
	"C": 0, "B#": 0,
	"C#": 1, "DB": 1,
	"D": 2,
	"D#": 3, "EB": 3,
	"E": 4, "FB": 4,
	"F": 5, "E#": 5,
	"F#": 6, "GB": 6,
	"G": 7,
	"G#": 8, "AB": 8,
	"A": 9,
	"A#": 10, "BB": 10,
	"B": 11, "CB": 11,
}

// modeSpellings maps lower-cased mode names onto modes.
var modeSpellings = map[string]Mode{
	"major":          Major,
	"harmonic-minor": HarmonicMinor,
	"harmonic_minor": HarmonicMinor,
	"minor":          HarmonicMinor,
}

// ParseRoot returns the pitch class for a root spelling such as "Eb", "f#" or "B♭".
// Matching is case-insensitive; ♯ and ♭ are accepted for # and b.
func ParseRoot(root string) (int, error) {
	s := strings.ToUpper(strings.TrimSpace(root))
	s = strings.NewReplacer("♯", "#", "♭", "B").Replace(s)
	pc, ok := rootSpellings[s]
	if !ok {
		return 0, fmt.Errorf("%w: unknown root %q", ErrInvalidKey, root)
	}

	return pc, nil
}

// ParseMode returns the Mode for "major", "harmonic-minor" (or "harmonic_minor", "minor").
func ParseMode(mode string) (Mode, error) {
	m, ok := modeSpellings[strings.ToLower(strings.TrimSpace(mode))]
	if !ok {
		return 0, fmt.Errorf("%w: unknown mode %q", ErrInvalidKey, mode)
	}

	return m, nil
}

// ParseKey builds a Key from a root spelling and a mode name.
//
// Errors: ErrInvalidKey (wrapped) for an unknown root or mode.
func ParseKey(root, mode string) (Key, error) {
	pc, err := ParseRoot(root)
	if err != nil {
		return Key{}, err
	}
	m, err := ParseMode(mode)
	if err != nil {
		return Key{}, err
	}

	return Key{Root: pc, Mode: m}, nil
}

// PitchClasses transposes the mode's pattern by the root:
//
//	{(Root + iv) mod 12 : iv ∈ pattern(Mode)}
//
// An out-of-range Mode yields the empty set.
//
// Complexity: O(1).
func (k Key) PitchClasses() PitchClassSet {
	if k.Mode < Major || int(k.Mode) >= len(patterns) {
		return 0
	}
	var (
		set PitchClassSet
		iv  int
	)
	for _, iv = range patterns[k.Mode] {
		set |= 1 << uint(mod12(k.Root+iv))
	}

	return set
}

// Allows reports whether pitch p belongs to the key.
func (k Key) Allows(p int) bool {
	return k.PitchClasses().Contains(p)
}
