// Package metrics holds the solver's prometheus collectors.
//
// Collectors live on a private registry so that several solvers (and tests)
// can coexist in one process. A nil *Metrics is valid and records nothing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups the collectors recorded by the solver and batch runner.
type Metrics struct {
	Registry *prometheus.Registry

	games         *prometheus.CounterVec
	guesses       prometheus.Histogram
	selectSeconds *prometheus.HistogramVec
	cacheRequests *prometheus.CounterVec
}

// New registers the collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Metrics{
		Registry: reg,
		games: f.NewCounterVec(prometheus.CounterOpts{
			Name: "solver_games_total",
			Help: "Finished games by strategy and outcome",
		}, []string{"strategy", "status"}),
		guesses: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "solver_guesses",
			Help:    "Guesses used per solved game",
			Buckets: prometheus.LinearBuckets(1, 1, 8),
		}),
		selectSeconds: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "solver_select_seconds",
			Help:    "Time spent selecting one guess",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10), // 0.1ms to ~26s
		}, []string{"strategy"}),
		cacheRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "solver_cache_requests_total",
			Help: "Decision cache lookups by result",
		}, []string{"result"}),
	}
}

// GameFinished records one game outcome. guesses is only observed for
// solved games.
func (m *Metrics) GameFinished(strategy, status string, guesses int, solved bool) {
	if m == nil {
		return
	}
	m.games.WithLabelValues(strategy, status).Inc()
	if solved {
		m.guesses.Observe(float64(guesses))
	}
}

// ObserveSelect records the duration of one SelectGuess call.
func (m *Metrics) ObserveSelect(strategy string, d time.Duration) {
	if m == nil {
		return
	}
	m.selectSeconds.WithLabelValues(strategy).Observe(d.Seconds())
}

// CacheHit counts a decision served from the cache.
func (m *Metrics) CacheHit() {
	if m == nil {
		return
	}
	m.cacheRequests.WithLabelValues("hit").Inc()
}

// CacheMiss counts a decision that had to be computed.
func (m *Metrics) CacheMiss() {
	if m == nil {
		return
	}
	m.cacheRequests.WithLabelValues("miss").Inc()
}

// WriteTextfile writes the registry in the node-exporter textfile format.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.Registry)
}
