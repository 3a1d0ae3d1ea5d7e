package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collects request counts and latencies on a private registry.
type Metrics struct {
	reqTotal   *prometheus.CounterVec
	reqLatency *prometheus.HistogramVec
	registry   *prometheus.Registry
}

// NewMetrics creates a Metrics instance.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	reqTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kitchen",
			Name:      "http_requests_total",
			Help:      "Total HTTP requests",
		},
		[]string{"method", "route", "status"},
	)
	reqLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "kitchen",
			Name:      "http_request_duration_seconds",
			Help:      "Request latency in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	registry.MustRegister(reqTotal, reqLatency)

	return &Metrics{
		reqTotal:   reqTotal,
		reqLatency: reqLatency,
		registry:   registry,
	}
}

// Middleware records every request under its chi route pattern, so ids in
// paths do not explode label cardinality.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		code := strconv.Itoa(status)
		m.reqTotal.WithLabelValues(r.Method, route, code).Inc()
		m.reqLatency.WithLabelValues(r.Method, route, code).Observe(time.Since(start).Seconds())
	})
}

// Handler serves the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
