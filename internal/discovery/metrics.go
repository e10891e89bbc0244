// internal/discovery/metrics.go

package discovery

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	swipesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "discovery_swipes_total",
			Help: "Total number of swipes recorded",
		},
		[]string{"kind"},
	)

	matchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "discovery_matches_total",
			Help: "Total number of matches created",
		},
	)

	candidatesReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "discovery_candidates_returned",
			Help:    "Candidate list sizes returned per request",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)

	preferenceFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "discovery_preference_fallbacks_total",
			Help: "Times malformed stored preferences were replaced by defaults",
		},
	)
)

func RecordSwipeKind(kind SwipeKind) {
	swipesTotal.WithLabelValues(string(kind)).Inc()
}

func RecordMatchCreated() {
	matchesTotal.Inc()
}

func RecordCandidatesReturned(count int) {
	candidatesReturned.Observe(float64(count))
}

func RecordPreferenceFallback() {
	preferenceFallbacks.Inc()
}
