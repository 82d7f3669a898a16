package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pageRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "console_page_requests_total",
			Help: "Total number of console page requests",
		},
		[]string{"method", "path", "status"},
	)

	pageRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "console_page_request_duration_seconds",
			Help:    "Duration of console page requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "console_active_connections",
			Help: "Number of active console connections",
		},
	)

	backendCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "backend_calls_total",
			Help: "Total number of calls to the CRM backend",
		},
		[]string{"method", "path", "status"},
	)

	backendErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "backend_errors_total",
			Help: "Total number of failed CRM backend calls",
		},
		[]string{"path"},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)

		pageRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		pageRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration)
	})
}

// RecordBackendCall is wired into the API client's result hook.
func RecordBackendCall(method, path string, status int, err error) {
	backendCallsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	if err != nil {
		backendErrorsTotal.WithLabelValues(path).Inc()
	}
}
