package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/eventbook/server/internal/metrics"
)

// trackedPaths are the routes the mux actually serves. Anything else
// (scanners, crawlers, typos) is bucketed as "other" so the path label
// stays bounded.
var trackedPaths = map[string]struct{}{
	"/graphql": {},
	"/healthz": {},
	"/readyz":  {},
	"/metrics": {},
}

func metricsPath(path string) string {
	if _, ok := trackedPaths[path]; ok {
		return path
	}
	return "other"
}

// Metrics instruments each request with the shared Prometheus collectors.
func Metrics() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			metrics.HTTPRequestsInFlight.Inc()
			defer metrics.HTTPRequestsInFlight.Dec()

			rw := &responseWriter{ResponseWriter: w}
			next.ServeHTTP(rw, r)

			status := rw.status
			if status == 0 {
				status = http.StatusOK
			}
			path := metricsPath(r.URL.Path)
			metrics.HTTPRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(status)).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
		})
	}
}
