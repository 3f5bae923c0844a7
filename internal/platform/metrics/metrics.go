// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "reviews"

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "Current number of HTTP requests being served",
		},
	)

	submissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Review submissions by outcome",
		},
		[]string{"outcome"},
	)

	captchaVerificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "captcha_verifications_total",
			Help:      "CAPTCHA verification attempts by provider and result",
		},
		[]string{"provider", "result"},
	)

	captchaVerifyDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "captcha_verify_duration_seconds",
			Help:      "Latency of calls to the CAPTCHA backend",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"provider"},
	)

	captchaBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "captcha_breaker_state",
			Help:      "State of the CAPTCHA circuit breaker (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	moderationTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moderation_transitions_total",
			Help:      "Moderation state changes by source and target state",
		},
		[]string{"from", "to"},
	)

	publishedCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "published_cache_lookups_total",
			Help:      "Published review cache lookups by result",
		},
		[]string{"result"},
	)
)

// Submission outcomes.
const (
	OutcomeAccepted      = "accepted"
	OutcomeSecurityCheck = "security_check_failed"
	OutcomeCaptchaMiss   = "captcha_missing"
	OutcomeCaptchaFail   = "captcha_failed"
	OutcomeMissingFields = "missing_fields"
	OutcomeStoreFailure  = "store_failure"
)

func RecordSubmission(outcome string) {
	submissionsTotal.WithLabelValues(outcome).Inc()
}

func RecordCaptchaResult(provider string, ok bool) {
	result := "rejected"
	if ok {
		result = "accepted"
	}
	captchaVerificationsTotal.WithLabelValues(provider, result).Inc()
}

// RecordCaptchaError counts calls that never produced an answer (transport, status, body, breaker).
func RecordCaptchaError(provider string) {
	captchaVerificationsTotal.WithLabelValues(provider, "error").Inc()
}

func ObserveCaptchaLatency(provider string, seconds float64) {
	captchaVerifyDuration.WithLabelValues(provider).Observe(seconds)
}

func SetCaptchaBreakerState(name string, state float64) {
	captchaBreakerState.WithLabelValues(name).Set(state)
}

func RecordTransition(from, to string) {
	moderationTransitionsTotal.WithLabelValues(from, to).Inc()
}

func RecordCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	publishedCacheTotal.WithLabelValues(result).Inc()
}
