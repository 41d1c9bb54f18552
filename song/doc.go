// Package song composes a two-voice arrangement for a whole song.
//
// A song file (YAML) names its key, an optional search budget, window and
// accent pattern, a table of sections (cantus firmus phrases written as MIDI
// numbers or note names) and the form: the order in which sections are played.
//
//	title: Hijo de la Luna
//	key: E
//	mode: harmonic-minor
//	target: 150
//	beats: [true, false, false]
//	sections:
//	  intro: [E4, F#4, G4, A4, B4, E4]
//	  solo:  [76, 79, 76, 74, 76]
//	form: [intro, solo, intro]
//	solo: [solo]
//
// Compose solves every distinct section once, in parallel, and concatenates the
// results in form order. Solo sections double the cantus; a section for which
// no counterpoint exists falls back to the cantus as well, and is flagged so.
package song
