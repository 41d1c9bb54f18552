// Package scale derives the tonal material a counterpoint line may use.
//
// What:
//
//   - Key: a root pitch class (0..11) plus a Mode (Major, HarmonicMinor).
//   - PitchClassSet: a 12-bit set holding the seven allowed pitch classes of a key,
//     computed as {(root + iv) mod 12 : iv ∈ pattern(mode)}.
//   - Pitch helpers: PitchName / ParsePitch convert between MIDI-style numbers
//     and names such as "C4" (60) or "F#3" (54).
//
// Why:
//
//   - The counterpoint search uses the key's pitch-class set as a hard tonal
//     filter before any voice-leading rule is consulted.
//
// Key Types & Functions:
//
//   - ParseKey(root, mode string) (Key, error)
//   - Key.PitchClasses() PitchClassSet
//   - PitchClassSet.Contains(pc int) bool
//   - PitchName(p int) string, ParsePitch(s string) (int, error)
//
// Errors:
//
//   - ErrInvalidKey    unrecognized root spelling or mode
//   - ErrInvalidPitch  malformed pitch name
//
// Complexity: every operation is O(1); no allocations except Slice/String.
package scale
