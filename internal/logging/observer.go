package logging

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/counterpoint/search"
)

// SearchObserver returns a search.Observer logging every event on log.
// Level checks come first, so a disabled level costs one comparison per event.
func SearchObserver(log *zap.Logger) search.Observer {
	return func(ev search.Event) {
		switch ev.Kind {
		case search.EventAccept:
			if ce := log.Check(TraceLevel, "candidate accepted"); ce != nil {
				ce.Write(zap.Int("depth", ev.Depth), zap.Int("pitch", ev.Pitch))
			}
		case search.EventReject:
			if ce := log.Check(TraceLevel, "candidate rejected"); ce != nil {
				ce.Write(zap.Int("depth", ev.Depth), zap.Int("pitch", ev.Pitch), zap.String("rule", ev.Rule))
			}
		case search.EventBacktrack:
			if ce := log.Check(TraceLevel, "backtrack"); ce != nil {
				ce.Write(zap.Int("depth", ev.Depth), zap.Int("pitch", ev.Pitch))
			}
		case search.EventDeadEnd:
			if ce := log.Check(zap.DebugLevel, "dead end"); ce != nil {
				ce.Write(zap.Int("depth", ev.Depth), zap.Ints("line", snapshot(ev.Line)))
			}
		case search.EventSolution:
			if ce := log.Check(zap.DebugLevel, "solution recorded"); ce != nil {
				ce.Write(zap.Ints("melody", snapshot(ev.Line)), zap.Int("score", ev.Score))
			}
		case search.EventBudget:
			log.Info("budget reached, unwinding search", zap.Int("depth", ev.Depth))
		}
	}
}

// snapshot copies the live line; cores may encode fields after the callback.
func snapshot(line []int) []int {
	return append([]int(nil), line...)
}
