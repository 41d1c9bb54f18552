package scale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/counterpoint/scale"
)

// TestParseKey_Spellings verifies enharmonic and case-insensitive root spellings.
func TestParseKey_Spellings(t *testing.T) {
	cases := []struct {
		root string
		want int
	}{
		{"C", 0}, {"c", 0}, {"B#", 0},
		{"C#", 1}, {"Db", 1}, {"dB", 1},
		{"Eb", 3}, {"d#", 3}, {"E♭", 3},
		{"E", 4}, {"F#", 6}, {"Gb", 6}, {"G♯", 8},
		{"Ab", 8}, {"A", 9}, {"Bb", 10}, {"A#", 10},
		{"B", 11}, {"Cb", 11}, {" e ", 4},
	}
	for _, tc := range cases {
		k, err := scale.ParseKey(tc.root, "major")
		require.NoError(t, err, "root %q", tc.root)
		assert.Equal(t, tc.want, k.Root, "root %q", tc.root)
		assert.Equal(t, scale.Major, k.Mode)
	}
}

// TestParseKey_Invalid ensures unknown roots and modes surface ErrInvalidKey.
func TestParseKey_Invalid(t *testing.T) {
	_, err := scale.ParseKey("H", "major")
	assert.ErrorIs(t, err, scale.ErrInvalidKey)

	_, err = scale.ParseKey("", "major")
	assert.ErrorIs(t, err, scale.ErrInvalidKey)

	_, err = scale.ParseKey("C", "dorian")
	assert.ErrorIs(t, err, scale.ErrInvalidKey)
}

// TestParseMode_Aliases checks every accepted spelling of harmonic minor.
func TestParseMode_Aliases(t *testing.T) {
	for _, s := range []string{"harmonic-minor", "HARMONIC_MINOR", "minor", " Minor "} {
		m, err := scale.ParseMode(s)
		require.NoError(t, err, s)
		assert.Equal(t, scale.HarmonicMinor, m, s)
	}
}

// TestPitchClasses_Patterns checks the transposed patterns of a few keys.
func TestPitchClasses_Patterns(t *testing.T) {
	cMajor := scale.Key{Root: 0, Mode: scale.Major}.PitchClasses()
	assert.Equal(t, []int{0, 2, 4, 5, 7, 9, 11}, cMajor.Slice())

	ebMajor, err := scale.ParseKey("Eb", "major")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 3, 5, 7, 8, 10}, ebMajor.PitchClasses().Slice())

	eMinor, err := scale.ParseKey("E", "harmonic-minor")
	require.NoError(t, err)
	// E F# G A B C D#
	assert.Equal(t, []int{0, 3, 4, 6, 7, 9, 11}, eMinor.PitchClasses().Slice())
	assert.True(t, eMinor.Allows(63), "D# is the raised leading tone")
	assert.False(t, eMinor.Allows(62), "D natural is outside harmonic minor")
}

// TestPitchClasses_AlwaysSeven verifies every key yields exactly seven classes.
func TestPitchClasses_AlwaysSeven(t *testing.T) {
	for root := 0; root < 12; root++ {
		for _, m := range []scale.Mode{scale.Major, scale.HarmonicMinor} {
			set := scale.Key{Root: root, Mode: m}.PitchClasses()
			assert.Equal(t, 7, set.Len(), "root %d mode %s", root, m)
			assert.True(t, set.Contains(root), "tonic must be in its own key")
		}
	}
}

// TestPitchClassSet_NegativeAndString covers mod-12 reduction and rendering.
func TestPitchClassSet_NegativeAndString(t *testing.T) {
	set := scale.Key{Root: 0, Mode: scale.Major}.PitchClasses()
	assert.True(t, set.Contains(-1), "-1 reduces to B")
	assert.False(t, set.Contains(-11), "-11 reduces to C#")
	assert.Equal(t, "{0 2 4 5 7 9 11}", set.String())
	assert.Equal(t, "C major", scale.Key{}.String())
	assert.Equal(t, "A# harmonic-minor", scale.Key{Root: 10, Mode: scale.HarmonicMinor}.String())
}

// TestPitchName_RoundTrip checks the 60 == C4 convention in both directions.
func TestPitchName_RoundTrip(t *testing.T) {
	assert.Equal(t, "C4", scale.PitchName(60))
	assert.Equal(t, "B4", scale.PitchName(71))
	assert.Equal(t, "F#4", scale.PitchName(66))
	assert.Equal(t, "C-1", scale.PitchName(0))
	assert.Equal(t, "B-2", scale.PitchName(-1))

	for p := -13; p < 128; p++ {
		got, err := scale.ParsePitch(scale.PitchName(p))
		require.NoError(t, err, "pitch %d", p)
		assert.Equal(t, p, got, "pitch %d", p)
	}
}

// TestParsePitch_Forms covers flats, enharmonic octave crossings and bare numbers.
func TestParsePitch_Forms(t *testing.T) {
	cases := map[string]int{
		"Bb3": 58,
		"eb4": 63,
		"B#3": 60,
		"Cb4": 59,
		"64":  64,
		"E♭4": 63,
	}
	for in, want := range cases {
		got, err := scale.ParsePitch(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"", "H4", "C", "C#x"} {
		_, err := scale.ParsePitch(bad)
		assert.ErrorIs(t, err, scale.ErrInvalidPitch, bad)
	}
}

// TestParsePitches_Sequence converts a whole line of names.
func TestParsePitches_Sequence(t *testing.T) {
	ps, err := scale.ParsePitches([]string{"B4", "C5", "B4", "A4"})
	require.NoError(t, err)
	assert.Equal(t, []int{71, 72, 71, 69}, ps)
	assert.Equal(t, []string{"B4", "C5", "B4", "A4"}, scale.PitchNames(ps))

	_, err = scale.ParsePitches([]string{"B4", "??"})
	assert.ErrorIs(t, err, scale.ErrInvalidPitch)
}
