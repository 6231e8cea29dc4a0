package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "flightdeals"

// Metrics owns its registry so tests can build independent instances. All
// Observe methods are no-ops on a nil receiver.
type Metrics struct {
	registry         *prometheus.Registry
	httpRequests     *prometheus.CounterVec
	httpLatency      *prometheus.HistogramVec
	queryLatency     *prometheus.HistogramVec
	bookmarkOutcomes *prometheus.CounterVec
	adminMutations   *prometheus.CounterVec
	cacheEvents      *prometheus.CounterVec
	rateLimited      *prometheus.CounterVec
}

func New() *Metrics {
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
		queryLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace, Name: "list_query_duration_seconds",
				Help:    "Paginated list query duration seconds (count and page together).",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"entity", "outcome"},
		),
		bookmarkOutcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "bookmark_transitions_total", Help: "Bookmark check and toggle outcomes."},
			[]string{"action", "outcome"}, // outcome: saved|unsaved|busy|failed
		),
		adminMutations: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "admin_mutations_total", Help: "Admin mutations by operation."},
			[]string{"operation", "outcome"},
		),
		cacheEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "cache_events_total", Help: "Cache hits/misses/sets/dels."},
			[]string{"cache", "event"}, // event: hit|miss|set|del|error
		),
		rateLimited: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "rate_limited_total", Help: "Requests rejected by the per-user limiter."},
			[]string{"route"},
		),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests, m.httpLatency, m.queryLatency, m.bookmarkOutcomes,
		m.adminMutations, m.cacheEvents, m.rateLimited,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
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

func (m *Metrics) ObserveQuery(entity, outcome string, dur time.Duration) {
	if m == nil {
		return
	}
	m.queryLatency.WithLabelValues(entity, outcome).Observe(dur.Seconds())
}

func (m *Metrics) ObserveBookmark(action, outcome string) {
	if m == nil {
		return
	}
	m.bookmarkOutcomes.WithLabelValues(action, outcome).Inc()
}

func (m *Metrics) ObserveAdmin(operation, outcome string) {
	if m == nil {
		return
	}
	m.adminMutations.WithLabelValues(operation, outcome).Inc()
}

func (m *Metrics) ObserveCache(cache, event string) {
	if m == nil {
		return
	}
	m.cacheEvents.WithLabelValues(cache, event).Inc()
}

func (m *Metrics) ObserveRateLimited(route string) {
	if m == nil {
		return
	}
	m.rateLimited.WithLabelValues(route).Inc()
}

// Outcome labels an operation result for metrics.
func Outcome(err error) string {
	if err == nil {
		return "ok"
	}
	return "error"
}
