package http

import (
	"net/http"
	"strconv"
	"time"

	"project-board/internal/handler/http/pathutil"
	"project-board/internal/handler/http/responsewriter"
	"project-board/internal/observability/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsMiddleware records request count and duration per method, path and
// status. Paths are normalized (articles/123 -> articles/:id) to keep label
// cardinality bounded.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := responsewriter.Wrap(w)

		next.ServeHTTP(wrapped, r)

		path := pathutil.NormalizePath(r.URL.Path)
		status := strconv.Itoa(wrapped.StatusCode())
		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(r.Method, path, status).
			Observe(time.Since(start).Seconds())
	})
}

// MetricsHandler exposes the Prometheus registry as /metrics.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
