package rules

// Score sums every soft constraint over positions 1..len(line)-1 of a
// completed line. Position 0 contributes nothing. cantus must be at least as
// long as line.
//
// Complexity: O(N).
func (rs *RuleSet) Score(cantus, line []int, meter Meter) int {
	var total, i int
	for i = 1; i < len(line); i++ {
		total += accentedDissonance(cantus, line, i, meter(i)) +
			passingTone(cantus, line, i, meter(i)) +
			contraryMotion(cantus, line, i) +
			hiddenParallels(cantus, line, i) +
			closePosition(cantus, line, i)
	}

	return total
}

// ScoreDetail returns the contribution of each soft constraint, keyed by the
// Soft* names. Its values always sum to Score for the same inputs.
func (rs *RuleSet) ScoreDetail(cantus, line []int, meter Meter) map[string]int {
	out := map[string]int{
		SoftAccentedDissonance: 0,
		SoftPassingTone:        0,
		SoftContraryMotion:     0,
		SoftHiddenParallels:    0,
		SoftClosePosition:      0,
	}
	var i int
	for i = 1; i < len(line); i++ {
		out[SoftAccentedDissonance] += accentedDissonance(cantus, line, i, meter(i))
		out[SoftPassingTone] += passingTone(cantus, line, i, meter(i))
		out[SoftContraryMotion] += contraryMotion(cantus, line, i)
		out[SoftHiddenParallels] += hiddenParallels(cantus, line, i)
		out[SoftClosePosition] += closePosition(cantus, line, i)
	}

	return out
}

// accentedDissonance rewards a strong-beat dissonance reached by leap and
// resolved down by step on the following note.
func accentedDissonance(cantus, line []int, i int, strong bool) int {
	if !strong || IsConsonant(cantus[i], line[i]) || !IsSkip(line[i-1], line[i]) {
		return 0
	}
	if i+1 >= len(line) {
		return 0
	}
	if IsStep(line[i], line[i+1]) && Direction(line[i], line[i+1]) == -1 {
		return WeightAccentedDissonance
	}

	return 0
}

// passingTone rewards a weak-beat dissonance approached and left by step in
// one direction.
func passingTone(cantus, line []int, i int, strong bool) int {
	if strong || IsConsonant(cantus[i], line[i]) || !IsStep(line[i-1], line[i]) {
		return 0
	}
	if i+1 >= len(line) {
		return 0
	}
	if IsStep(line[i], line[i+1]) && Direction(line[i-1], line[i]) == Direction(line[i], line[i+1]) {
		return WeightPassingTone
	}

	return 0
}

// contraryMotion rewards both voices moving in opposite, nonzero directions.
func contraryMotion(cantus, line []int, i int) int {
	dc := Direction(cantus[i-1], cantus[i])
	dl := Direction(line[i-1], line[i])
	if dc != 0 && dl != 0 && dc != dl {
		return WeightContraryMotion
	}

	return 0
}

// hiddenParallels penalizes a perfect consonance reached by similar motion
// with a leap in the counterpoint.
func hiddenParallels(cantus, line []int, i int) int {
	if !IsPerfect(cantus[i], line[i]) {
		return 0
	}
	if Direction(cantus[i-1], cantus[i]) == Direction(line[i-1], line[i]) && IsSkip(line[i-1], line[i]) {
		return WeightHiddenParallels
	}

	return 0
}

// closePosition rewards a vertical interval narrower than ClosePositionSpan.
func closePosition(cantus, line []int, i int) int {
	if Interval(cantus[i], line[i]) < ClosePositionSpan {
		return WeightClosePosition
	}

	return 0
}
