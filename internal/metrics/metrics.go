// Package metrics exposes search and song composition counters through a
// private Prometheus registry.
package metrics

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/counterpoint/search"
)

const (
	namespace = "counterpoint"
	subsystem = "search"
)

// Outcome label values for solve durations.
const (
	OutcomeSolved     = "solved"
	OutcomeNoSolution = "no_solution"
	OutcomeError      = "error"
)

// Collector owns one registry and the search metrics registered on it.
// All methods are safe for concurrent use.
type Collector struct {
	registry *prometheus.Registry

	nodes      prometheus.Counter
	rejections *prometheus.CounterVec
	deadEnds   prometheus.Counter
	solutions  prometheus.Counter
	budgetHits prometheus.Counter
	duration   *prometheus.HistogramVec
	bestScore  *prometheus.GaugeVec
}

// New creates a Collector with a fresh registry.
func New() *Collector {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,
		nodes: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "nodes_total",
			Help:      "Candidates pushed onto the partial line",
		}),
		// Labels: rule (hard constraint name)
		rejections: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "rejections_total",
			Help:      "Candidates rejected by a hard constraint",
		}, []string{"rule"}),
		deadEnds: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "dead_ends_total",
			Help:      "Positions left without any valid candidate",
		}),
		solutions: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "solutions_total",
			Help:      "Complete counterpoint lines recorded",
		}),
		budgetHits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "budget_reached_total",
			Help:      "Searches stopped by the solution budget",
		}),
		// Labels: outcome (solved, no_solution, error)
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "solve_duration_seconds",
			Help:      "Wall time of one solve",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}, []string{"outcome"}),
		// Labels: section
		bestScore: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "best_score",
			Help:      "Soft-constraint score of the best line per section",
		}, []string{"section"}),
	}
}

// Registry returns the collector's registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Observer returns a search.Observer feeding the event counters.
func (c *Collector) Observer() search.Observer {
	return func(ev search.Event) {
		switch ev.Kind {
		case search.EventAccept:
			c.nodes.Inc()
		case search.EventReject:
			c.rejections.WithLabelValues(ev.Rule).Inc()
		case search.EventDeadEnd:
			c.deadEnds.Inc()
		case search.EventSolution:
			c.solutions.Inc()
		case search.EventBudget:
			c.budgetHits.Inc()
		}
	}
}

// RecordSolve records the duration and outcome of one solve. section may be
// empty for a standalone solve; the best score is then not tracked.
func (c *Collector) RecordSolve(section string, elapsed time.Duration, res *search.Result, err error) {
	outcome := OutcomeSolved
	switch {
	case errors.Is(err, search.ErrNoSolutionFound):
		outcome = OutcomeNoSolution
	case err != nil:
		outcome = OutcomeError
	}
	c.duration.WithLabelValues(outcome).Observe(elapsed.Seconds())

	if section != "" && outcome == OutcomeSolved && res != nil {
		c.bestScore.WithLabelValues(section).Set(float64(res.Best.Score))
	}
}

// WriteText gathers the registry and writes it in the Prometheus text format.
func (c *Collector) WriteText(w io.Writer) error {
	families, err := c.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metric %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
