package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Contact submission outcomes.
const (
	OutcomeSuccess       = "success"
	OutcomeProviderError = "provider_error"
	OutcomeBadRequest    = "bad_request"
	OutcomeInternalError = "internal_error"
)

var (
	// ContactSubmissions counts handled contact submissions by outcome.
	ContactSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "site",
		Name:      "contact_submissions_total",
		Help:      "Contact form submissions handled, by outcome.",
	}, []string{"outcome"})

	providerLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "site",
		Name:      "email_provider_duration_seconds",
		Help:      "Latency of outbound email provider calls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"result"})
)

// RecordSubmission increments the submission counter for outcome.
func RecordSubmission(outcome string) {
	ContactSubmissions.WithLabelValues(outcome).Inc()
}

// ObserveProviderLatency records one provider call.
func ObserveProviderLatency(d time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	providerLatency.WithLabelValues(result).Observe(d.Seconds())
}
