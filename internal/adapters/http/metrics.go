package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the server's Prometheus instruments. Each server carries
// its own registry so multiple instances never collide on registration.
type Metrics struct {
	registry   *prometheus.Registry
	requests   *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	actions    *prometheus.CounterVec
	orders     prometheus.Counter
	sseClients prometheus.Gauge
}

// NewMetrics creates and registers the instruments.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "showroom",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "showroom",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "showroom",
			Name:      "actions_total",
			Help:      "Dispatched configurator actions by type.",
		}, []string{"type"}),
		orders: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "showroom",
			Name:      "orders_submitted_total",
			Help:      "Orders created from completed configurations.",
		}),
		sseClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "showroom",
			Name:      "sse_clients",
			Help:      "Currently connected SSE clients.",
		}),
	}
	m.registry.MustRegister(m.requests, m.duration, m.actions, m.orders, m.sseClients)
	return m
}

// Handler serves the scrape endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records request counts and latency per chi route pattern.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		m.requests.WithLabelValues(r.Method, route, strconv.Itoa(ww.Status())).Inc()
		m.duration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

// ObserveAction counts a dispatched action.
func (m *Metrics) ObserveAction(actionType string) {
	m.actions.WithLabelValues(actionType).Inc()
}

// ObserveOrderSubmitted counts a successful order submission.
func (m *Metrics) ObserveOrderSubmitted() {
	m.orders.Inc()
}
