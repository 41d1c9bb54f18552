// Package counterpoint generates a second melodic voice against a given
// melody (the cantus firmus) following classical two-voice rules.
//
// What is inside?
//
//	scale/    keys, pitch-class sets and note names (60 == "C4")
//	rules/    hard voice-leading constraints and the soft scoring model
//	search/   heuristically ordered backtracking search and ranking
//	contour/  dynamic time warping over melodic interval contours
//	song/     whole-song composition from a YAML song file
//	cmd/      the counterpoint command line
//
// Quick start:
//
//	res, err := search.Solve([]int{71, 72, 71, 69, 67, 66, 64}, "E", "harmonic-minor",
//		search.WithTargetSolutions(150))
//	if err != nil {
//		return err
//	}
//	fmt.Println(scale.PitchNames(res.Best.Melody), res.Best.Score)
//
// The search is deterministic: the same cantus, key and options always yield
// the same ranked lines.
package counterpoint
