package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "reservas"

// Metrics owns a private registry so tests and the CLI can build one freely.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests     *prometheus.CounterVec
	httpLatency      *prometheus.HistogramVec
	storeCalls       *prometheus.CounterVec
	storeLatency     *prometheus.HistogramVec
	rateLimited      prometheus.Counter
	idempotencyEvent *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "HTTP requests."},
			[]string{"route", "method", "status"},
		),
		httpLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace, Name: "http_request_duration_seconds",
				Help:    "HTTP request duration seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		storeCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "store_calls_total", Help: "Stored procedure calls."},
			[]string{"procedure", "outcome"}, // outcome: ok|empty|error
		),
		storeLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace, Name: "store_call_duration_seconds",
				Help:    "Stored procedure call duration seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"procedure"},
		),
		rateLimited: prometheus.NewCounter(
			prometheus.CounterOpts{Namespace: namespace, Name: "rate_limited_total", Help: "Requests rejected by the rate limiter."},
		),
		idempotencyEvent: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "idempotency_events_total", Help: "Idempotency key events."},
			[]string{"event"}, // event: new|replay|in_progress|mismatch|released
		),
	}
	m.registry.MustRegister(
		m.httpRequests, m.httpLatency,
		m.storeCalls, m.storeLatency,
		m.rateLimited, m.idempotencyEvent,
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveHTTP(route, method string, status int, dur time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func (m *Metrics) ObserveStoreCall(procedure, outcome string, dur time.Duration) {
	if m == nil {
		return
	}
	m.storeCalls.WithLabelValues(procedure, outcome).Inc()
	m.storeLatency.WithLabelValues(procedure).Observe(dur.Seconds())
}

func (m *Metrics) RateLimited() {
	if m == nil {
		return
	}
	m.rateLimited.Inc()
}

func (m *Metrics) ObserveIdempotency(event string) {
	if m == nil {
		return
	}
	m.idempotencyEvent.WithLabelValues(event).Inc()
}
