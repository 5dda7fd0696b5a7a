package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"luxhome/shared/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveHTTP(t *testing.T) {
	before := testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues("/v1/apartments/", "GET", "200"))

	metrics.ObserveHTTP("/v1/apartments/", "GET", http.StatusOK, 15*time.Millisecond)

	after := testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues("/v1/apartments/", "GET", "200"))
	assert.InDelta(t, before+1, after, 0.0001)
}

func TestObserveCache(t *testing.T) {
	before := testutil.ToFloat64(metrics.CacheEvents.WithLabelValues("redis", metrics.CacheEventHit))

	metrics.ObserveCache("redis", metrics.CacheEventHit)

	after := testutil.ToFloat64(metrics.CacheEvents.WithLabelValues("redis", metrics.CacheEventHit))
	assert.InDelta(t, before+1, after, 0.0001)
}

func TestRegistryHandler(t *testing.T) {
	reg := metrics.New()
	metrics.ObserveTourBuild("database")

	server := httptest.NewServer(reg.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "luxhome_tour_builds_total")
}
