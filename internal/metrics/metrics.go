package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "prepmate",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests received",
	}, []string{"method", "path", "status"})

	httpLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "prepmate",
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	providerCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "prepmate",
		Name:      "provider_calls_total",
		Help:      "Remote AI provider call outcomes",
	}, []string{"operation", "outcome"})

	providerFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "prepmate",
		Name:      "provider_fallbacks_total",
		Help:      "Operations served by the local heuristic fallback",
	}, []string{"operation"})
)

type responseRecorder struct {
	http.ResponseWriter
	status int
}

func (r *responseRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Middleware records request metrics with Prometheus labels.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(rec, r)

		labels := prometheus.Labels{
			"method": r.Method,
			"path":   r.URL.Path,
			"status": strconv.Itoa(rec.status),
		}
		httpRequests.With(labels).Inc()
		httpLatency.With(labels).Observe(time.Since(start).Seconds())
	})
}

// RecordProviderCall tracks one remote provider attempt.
func RecordProviderCall(operation string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	providerCalls.WithLabelValues(operation, outcome).Inc()
}

// RecordFallback tracks one operation served by the heuristic path.
func RecordFallback(operation string) {
	providerFallbacks.WithLabelValues(operation).Inc()
}

// Handler exposes the default Prometheus metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
