package scale

import (
	"fmt"
	"strconv"
	"strings"
)

// pitchClassNames spells every pitch class with sharps.
var pitchClassNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// PitchName renders a MIDI-style pitch number as a sharp-spelled name with
// octave, using the convention 60 == "C4" (octave = p/12 - 1).
// Negative pitches are floored, so -1 is "B-2".
func PitchName(p int) string {
	octave := p / 12
	if p < 0 && p%12 != 0 {
		octave--
	}

	return pitchClassNames[mod12(p)] + strconv.Itoa(octave-1)
}

// PitchNames maps PitchName over a sequence.
func PitchNames(ps []int) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = PitchName(p)
	}

	return out
}

// ParsePitch is the inverse of PitchName. It accepts any root spelling known
// to ParseRoot followed by a (possibly negative) octave number: "C4", "eb3",
// "F#-1". A bare integer such as "64" is accepted as a pitch number.
//
// Errors: ErrInvalidPitch (wrapped).
func ParsePitch(s string) (int, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidPitch)
	}
	if n, err := strconv.Atoi(t); err == nil {
		return n, nil
	}

	// Split at the first digit or minus sign that follows the letter part.
	var cut int
	for cut = 1; cut < len(t); cut++ {
		if c := t[cut]; c == '-' || (c >= '0' && c <= '9') {
			break
		}
	}
	if cut == len(t) {
		return 0, fmt.Errorf("%w: missing octave in %q", ErrInvalidPitch, s)
	}
	pc, err := ParseRoot(t[:cut])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPitch, s)
	}
	octave, err := strconv.Atoi(t[cut:])
	if err != nil {
		return 0, fmt.Errorf("%w: bad octave in %q", ErrInvalidPitch, s)
	}

	// B#3 is enharmonic with C4 and Cb4 with B3; spelling keeps the written octave.
	base := (octave + 1) * 12
	letter := strings.ToUpper(t[:1])
	switch {
	case letter == "B" && pc == 0:
		base += 12
	case letter == "C" && pc == 11:
		base -= 12
	}

	return base + pc, nil
}

// ParsePitches parses every element of names with ParsePitch.
func ParsePitches(names []string) ([]int, error) {
	out := make([]int, len(names))
	for i, n := range names {
		p, err := ParsePitch(n)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}

	return out, nil
}
