package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "luxhome"

const (
	CacheEventHit  = "hit"
	CacheEventMiss = "miss"
	CacheEventSet  = "set"
	CacheEventDel  = "del"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace, Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	CacheEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "cache_events_total", Help: "Cache hits/misses/sets/dels."},
		[]string{"cache", "event"},
	)
	TourBuilds = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "tour_builds_total", Help: "Virtual tour payloads assembled."},
		[]string{"source"},
	)
)

// Registry holds the collectors exported on /metrics.
type Registry struct {
	*prometheus.Registry
}

func New() *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, CacheEvents, TourBuilds)

	return &Registry{Registry: reg}
}

func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.Registry, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveCache(cache, event string) {
	CacheEvents.WithLabelValues(cache, event).Inc()
}

// ObserveTourBuild records whether a tour payload came from cache or the database.
func ObserveTourBuild(source string) {
	TourBuilds.WithLabelValues(source).Inc()
}
