package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"quantumtranslator/internal/models"
)

// Delegate request outcomes.
const (
	OutcomeOK            = "ok"
	OutcomeCacheHit      = "cache_hit"
	OutcomeInvalid       = "invalid"
	OutcomeUpstreamError = "upstream_error"
	OutcomeMalformed     = "malformed"
)

var (
	classifications = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quantum_translator_classifications_total",
			Help: "Problems classified by the rule-based translator, by category",
		},
		[]string{"category"},
	)

	delegateRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quantum_translator_delegate_requests_total",
			Help: "Requests handled by the LLM-backed translator, by outcome",
		},
		[]string{"outcome"},
	)

	delegateDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "quantum_translator_delegate_duration_seconds",
			Help:    "Time spent waiting on the completion service",
			Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30, 60},
		},
	)
)

var initOnce sync.Once

// Init registers the collectors with the default registry.
// Safe to call more than once.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(classifications, delegateRequests, delegateDuration)
		for _, c := range models.Categories() {
			classifications.WithLabelValues(c.String())
		}
	})
}

// RecordClassification counts one rule-based classification.
func RecordClassification(c models.Category) {
	classifications.WithLabelValues(c.String()).Inc()
}

// RecordDelegate counts one delegated request and, when the completion
// service was called, how long it took.
func RecordDelegate(outcome string, upstream time.Duration) {
	delegateRequests.WithLabelValues(outcome).Inc()
	if upstream > 0 {
		delegateDuration.Observe(upstream.Seconds())
	}
}
