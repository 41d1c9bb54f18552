// Package logging builds the zap logger used by the command line and turns
// search events into structured log entries.
//
// Levels:
//   - trace (-2): every accepted, rejected and backtracked candidate
//   - debug:      dead ends and recorded solutions
//   - info:       budget reached and run-level progress
//
// Usage:
//
//	log, err := logging.New(logging.Config{Level: "debug", Format: "console"}, os.Stderr)
//	if err != nil {
//	    return err
//	}
//	defer logging.Sync(log)
//	opts := []search.Option{search.WithObserver(logging.SearchObserver(log))}
package logging
