package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// Instrument records request counts and latency by chi route pattern, so ids never become label values.
func (m *Middlewares) Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		done := m.Metrics.TrackInFlight()
		defer done()

		start := time.Now()
		rec := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		m.Metrics.ObserveHTTPRequest(r.Method, route, rec.statusCode, time.Since(start))
	})
}
