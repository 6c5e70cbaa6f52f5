package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func newTestCollector() *Collector {
	registry := prometheus.NewRegistry()
	return newCollector(registry, registry)
}

func TestCollectorCounts(t *testing.T) {
	collector := newTestCollector()

	collector.ObserveRemoteRequest("GET", "/patients", 200, 120*time.Millisecond)
	collector.ObserveRemoteRequest("GET", "/patients", 200, 80*time.Millisecond)
	collector.ObserveRemoteRequest("POST", "/patients", 0, time.Second)
	collector.ObserveCacheLookup("patient", true)
	collector.ObserveCacheLookup("patient", false)
	collector.ObserveCacheLookup("patient", false)
	collector.ObserveEvent("entity.changed", "published")

	assert.Equal(t, 2.0, testutil.ToFloat64(collector.apiRequestsTotal.WithLabelValues("GET", "/patients", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.apiRequestsTotal.WithLabelValues("POST", "/patients", "0")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.cacheLookupsTotal.WithLabelValues("patient", "hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(collector.cacheLookupsTotal.WithLabelValues("patient", "miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.eventsTotal.WithLabelValues("entity.changed", "published")))
}

func TestCollectorInFlightAndHandler(t *testing.T) {
	collector := newTestCollector()

	done := collector.TrackInFlight()
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.httpRequestsInFlight))
	done()
	assert.Equal(t, 0.0, testutil.ToFloat64(collector.httpRequestsInFlight))

	collector.ObserveHTTPRequest("GET", "/api/v1/patients", 200, 10*time.Millisecond)

	rr := httptest.NewRecorder()
	collector.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.Contains(rr.Body.String(), "posyandu_console_http_requests_total"), "exposition should include request counter")
}
