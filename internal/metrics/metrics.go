// Package metrics holds the service's Prometheus instruments.  Collectors
// register themselves with the global registry on import, so pulling this
// package into the API layer is enough to expose them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ValidationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stevedore_validations_total",
			Help: "Cumulative number of description validations by outcome.",
		},
		[]string{"outcome"})

	FindingsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stevedore_findings_total",
			Help: "Cumulative number of validation findings by error code.",
		},
		[]string{"code"})

	ValidationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "stevedore_validation_duration_seconds",
			Help:    "Time spent running the validation engine per description.",
			Buckets: prometheus.ExponentialBuckets(0.000001, 4, 10),
		})
)

func init() {
	prometheus.MustRegister(
		ValidationsTotal,
		FindingsTotal,
		ValidationDuration,
	)
}
