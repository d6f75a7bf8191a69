package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Checkout outcomes, one per error kind plus success.
const (
	OutcomeCreated       = "created"
	OutcomeInvalid       = "invalid"
	OutcomeMalformed     = "malformed"
	OutcomeMisconfigured = "misconfigured"
	OutcomeUpstream      = "upstream_error"
)

var (
	checkoutSessionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "beforeigo_checkout_sessions_total",
			Help: "Checkout session requests by outcome",
		},
		[]string{"outcome"},
	)

	stripeRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "beforeigo_stripe_request_duration_seconds",
			Help:    "Latency of Stripe checkout session creation calls",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		},
	)
)

func RecordCheckout(outcome string) {
	checkoutSessionsTotal.WithLabelValues(outcome).Inc()
}

func ObserveStripeRequest(d time.Duration) {
	stripeRequestDuration.Observe(d.Seconds())
}
