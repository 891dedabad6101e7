// Package metrics exposes Prometheus counters for the scoring service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Custom registry to avoid the default Go collectors.
var registry = prometheus.NewRegistry()

var (
	ScoresAwarded = promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: "leaderboard",
		Subsystem: "scoring",
		Name:      "points_awarded_total",
		Help:      "Points awarded, labelled by facet.",
	}, []string{"facet"})

	ScoringErrors = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Namespace: "leaderboard",
		Subsystem: "scoring",
		Name:      "errors_total",
		Help:      "Award operations that failed at the storage layer.",
	})

	LeaderboardReads = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Namespace: "leaderboard",
		Subsystem: "aggregation",
		Name:      "reads_total",
		Help:      "Leaderboard aggregation reads served.",
	})
)

// Handler serves the registry, for mounting at /metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
