// Package search - candidate generation for one position.
//
// For position i with cantus note c the generator:
//  1. enumerates pitches c+k for k in [MinInterval, MaxInterval];
//  2. orders them by a voice-leading heuristic (stable, descending):
//     +3 contrary motion against the cantus,
//     +2 melodic step ≤ 2 semitones, −2 melodic leap > 4,
//     +1 imperfect-consonant offset {3,4,8,9},
//     out-of-key pitches get the outOfKey sentinel;
//  3. drops out-of-key pitches (hard tonal filter);
//  4. validates the rest with the rule set's hard constraints for position i only,
//     assuming the prefix line[0:i] is already valid.
//
// The ordering changes discovery order only; the accepted set is the same for
// any ordering.
//
// Complexity: O(W log W + W·R) for window width W and R hard constraints.
package search

import (
	"sort"

	"github.com/katalvlaran/counterpoint/rules"
)

// candidate pairs a pitch with its heuristic priority.
type candidate struct {
	pitch    int
	priority int
}

// heuristic scores pitch p (= cf + offset) as the next note at position idx.
func (e *engine) heuristic(idx, offset, p int) int {
	if !e.allowed.Contains(p) {
		return outOfKey
	}
	var score int
	if idx > 0 {
		prevLine := e.line[idx-1]
		dc := rules.Direction(e.cantus[idx-1], e.cantus[idx])
		dl := rules.Direction(prevLine, p)
		if dc != 0 && dl != 0 && dc != dl {
			score += 3
		}
		step := rules.Interval(prevLine, p)
		if step <= 2 {
			score += 2
		} else if step > 4 {
			score -= 2
		}
	}
	if rules.IsImperfectClass(offset) {
		score++
	}

	return score
}

// candidates returns the ordered, hard-rule-valid pitches for position idx.
// e.line must hold exactly idx notes. The returned slice may be empty.
func (e *engine) candidates(idx int) []int {
	var (
		cf    = e.cantus[idx]
		width = e.opts.MaxInterval - e.opts.MinInterval + 1
		pool  = make([]candidate, 0, width)
		k     int
	)

	// 1. Enumerate the window and score each pitch.
	for k = e.opts.MinInterval; k <= e.opts.MaxInterval; k++ {
		pool = append(pool, candidate{pitch: cf + k, priority: e.heuristic(idx, k, cf+k)})
	}

	// 2. Stable order: ties keep ascending offset order.
	sort.SliceStable(pool, func(a, b int) bool {
		return pool[a].priority > pool[b].priority
	})

	// 3+4. Tonal filter, then hard constraints on the window ending at idx.
	out := make([]int, 0, len(pool))
	pos := rules.Position{
		Index:      idx,
		Strong:     e.opts.Meter(idx),
		Terminal:   idx == len(e.cantus)-1,
		HasPrev:    idx > 0,
		CantusCurr: cf,
	}
	if pos.HasPrev {
		pos.CantusPrev = e.cantus[idx-1]
		pos.LinePrev = e.line[idx-1]
	}
	var c candidate
	for _, c = range pool {
		if !e.allowed.Contains(c.pitch) {
			continue
		}
		pos.LineCurr = c.pitch
		if ok, rule := e.opts.Rules.Check(pos); !ok {
			e.stats.Rejected++
			e.emit(Event{Kind: EventReject, Depth: idx, Pitch: c.pitch, Rule: rule})
			continue
		}
		out = append(out, c.pitch)
	}

	return out
}
