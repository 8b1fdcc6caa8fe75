package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// unmatchedRoute подставляется, когда chi не нашёл маршрут; иначе каждый 404 давал бы новую серию
const unmatchedRoute = "unmatched"

var (
	httpInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "store_admin",
		Subsystem: "http",
		Name:      "in_flight_requests",
		Help:      "In-flight HTTP requests by method.",
	}, []string{"method"})

	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "store_admin",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by method, route pattern and status class.",
	}, []string{"method", "route", "code"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "store_admin",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by route pattern.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	// PDF-счета на порядки больше JSON-ответов
	httpResponseSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "store_admin",
		Subsystem: "http",
		Name:      "response_size_bytes",
		Help:      "HTTP response body size by route pattern.",
		Buckets:   prometheus.ExponentialBuckets(256, 4, 8),
	}, []string{"route"})
)

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inFlight := httpInFlight.WithLabelValues(r.Method)
		inFlight.Inc()
		defer inFlight.Dec()

		start := time.Now()
		rw := wrapResponseWriter(w)

		next.ServeHTTP(rw, r)

		route := routePattern(r)
		httpRequestsTotal.WithLabelValues(r.Method, route, statusClass(rw.status)).Inc()
		httpRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		httpResponseSize.WithLabelValues(route).Observe(float64(rw.written))
	})
}

func routePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
		return rc.RoutePattern()
	}
	return unmatchedRoute
}

// statusClass сворачивает код ответа до 2xx, 4xx и т.д.
func statusClass(status int) string {
	return strconv.Itoa(status/100) + "xx"
}
