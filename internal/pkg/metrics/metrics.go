package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "salon_booking"

var (
	// Registry holds the application collectors; the default registry is left untouched.
	Registry = prometheus.NewRegistry()

	HTTPInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "route"},
	)

	paymentValidations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "payment",
			Name:      "validations_total",
			Help:      "Payment validations committed, by payment outcome.",
		},
		[]string{"outcome"},
	)

	discountsApplied = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "payment",
			Name:      "discounts_applied_total",
			Help:      "Discounts applied on committed validations, by kind.",
		},
		[]string{"kind"},
	)

	giftCardRedeemedCents = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "gift_card",
			Name:      "redeemed_cents_total",
			Help:      "Total gift-card balance consumed, in cents.",
		},
	)

	schedulerRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scheduler",
			Name:      "job_runs_total",
			Help:      "Scheduled job runs, by job and result.",
		},
		[]string{"job", "success"},
	)
)

func init() {
	Registry.MustRegister(
		HTTPInFlight,
		HTTPRequests,
		HTTPDuration,
		paymentValidations,
		discountsApplied,
		giftCardRedeemedCents,
		schedulerRuns,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

func RecordValidation(outcome string, discountKinds []string, giftCardCents int64) {
	paymentValidations.WithLabelValues(outcome).Inc()
	for _, kind := range discountKinds {
		discountsApplied.WithLabelValues(kind).Inc()
	}
	if giftCardCents > 0 {
		giftCardRedeemedCents.Add(float64(giftCardCents))
	}
}

func RecordSchedulerRun(job string, success bool) {
	result := "false"
	if success {
		result = "true"
	}
	schedulerRuns.WithLabelValues(job, result).Inc()
}
