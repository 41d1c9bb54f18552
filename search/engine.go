// Package search - depth-first backtracking over counterpoint lines.
//
// The engine owns the live partial line and uses it strictly as a stack:
// push a candidate, recurse one position deeper, pop. At depth N the line is
// complete; it is scored with the soft constraints and a copy is recorded.
//
// Budget: once TargetSolutions lines are recorded the search stops
// everywhere. The condition is checked on entry to every non-leaf position and
// after every recursive return, so len(solutions) never exceeds the budget.
//
// Dead ends: a position without surviving candidates simply returns; the
// caller's loop continues with its next candidate (the backtrack).
//
// Complexity:
//   - Worst case O(W^N) nodes for window width W and cantus length N.
//   - Memory: O(N) for the stack and recursion + O(S·N) for S recorded lines.
package search

import (
	"github.com/katalvlaran/counterpoint/scale"
)

// engine holds all state of one search invocation. It is never shared.
type engine struct {
	// Inputs (read-only).
	cantus  []int
	allowed scale.PitchClassSet
	opts    Options

	// Live search state.
	line      []int // line[0:depth]
	solutions []Solution
	stats     Stats
	budgetHit bool
}

// newEngine prepares an engine with a stack sized for the whole cantus.
func newEngine(cantus []int, allowed scale.PitchClassSet, opts Options) *engine {
	return &engine{
		cantus:    cantus,
		allowed:   allowed,
		opts:      opts,
		line:      make([]int, 0, len(cantus)),
		solutions: make([]Solution, 0, min(opts.TargetSolutions, 64)),
	}
}

// full reports whether the solution budget is exhausted.
func (e *engine) full() bool {
	return len(e.solutions) >= e.opts.TargetSolutions
}

// emit forwards ev to the observer, if any.
func (e *engine) emit(ev Event) {
	if e.opts.Observer == nil {
		return
	}
	ev.Line = e.line
	e.opts.Observer(ev)
}

// record scores the complete line and stores a snapshot copy.
func (e *engine) record() {
	melody := make([]int, len(e.line))
	copy(melody, e.line)
	score := e.opts.Rules.Score(e.cantus, melody, e.opts.Meter)

	e.solutions = append(e.solutions, Solution{Melody: melody, Score: score})
	e.stats.Solutions++
	e.emit(Event{Kind: EventSolution, Depth: len(melody), Score: score})

	if e.full() && !e.budgetHit {
		e.budgetHit = true
		e.emit(Event{Kind: EventBudget, Depth: len(melody)})
	}
}

// dfs explores every completion of e.line, which holds depth notes.
func (e *engine) dfs(depth int) {
	// 1. Leaf: complete line.
	if depth == len(e.cantus) {
		e.record()

		return
	}

	// 2. Global stop.
	if e.full() {
		return
	}

	// 3. Ordered, validated options for this position.
	cands := e.candidates(depth)
	if len(cands) == 0 {
		e.stats.DeadEnds++
		e.emit(Event{Kind: EventDeadEnd, Depth: depth})

		return
	}

	// 4. Push, recurse, pop; re-check the budget before each sibling.
	var p int
	for _, p = range cands {
		e.line = append(e.line, p)
		e.stats.Nodes++
		e.emit(Event{Kind: EventAccept, Depth: depth, Pitch: p})

		e.dfs(depth + 1)

		e.line = e.line[:len(e.line)-1]
		e.emit(Event{Kind: EventBacktrack, Depth: depth, Pitch: p})

		if e.full() {
			return
		}
	}
}
