package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns every service metric and registers them on one registry.
// It satisfies commands.PassMetrics and redisstore.CacheMetrics.
type Collector struct {
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	passesPurchased prometheus.Counter
	passActivations *prometheus.CounterVec
	catalogCache    *prometheus.CounterVec
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "skipass_http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "skipass_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		passesPurchased: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "skipass_passes_purchased_total",
			Help: "Day passes bought.",
		}),
		passActivations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "skipass_pass_activations_total",
			Help: "Pass activation attempts by result.",
		}, []string{"result"}),
		catalogCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "skipass_catalog_cache_total",
			Help: "Catalog cache lookups by result.",
		}, []string{"result"}),
	}

	reg.MustRegister(
		c.httpRequests,
		c.httpDuration,
		c.passesPurchased,
		c.passActivations,
		c.catalogCache,
	)

	return c
}

func (c *Collector) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (c *Collector) PassPurchased() {
	c.passesPurchased.Inc()
}

func (c *Collector) PassActivation(result string) {
	c.passActivations.WithLabelValues(result).Inc()
}

func (c *Collector) CatalogCache(result string) {
	c.catalogCache.WithLabelValues(result).Inc()
}

// Handler serves the registry in the Prometheus text format.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
