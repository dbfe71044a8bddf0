package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/polkiloo/storefront/internal/config"
)

const namespace = "storefront"

// HTTP holds the request collectors of one service process.
type HTTP struct {
	registry *prometheus.Registry
	inFlight prometheus.Gauge
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New registers HTTP collectors labelled with the service name on a fresh registry.
func New(cfg *config.Config) *HTTP {
	constLabels := prometheus.Labels{"service": cfg.Service.Name()}

	m := &HTTP{
		registry: prometheus.NewRegistry(),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Subsystem:   "http",
			Name:        "inflight_requests",
			Help:        "Current number of in-flight HTTP requests.",
			ConstLabels: constLabels,
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "http",
			Name:        "requests_total",
			Help:        "Total number of HTTP requests handled.",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Subsystem:   "http",
			Name:        "request_duration_seconds",
			Help:        "Duration of HTTP requests.",
			ConstLabels: constLabels,
			Buckets:     prometheus.ExponentialBuckets(0.005, 2, 10),
		}, []string{"method", "route"}),
	}

	m.registry.MustRegister(
		m.inFlight,
		m.requests,
		m.duration,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
	return m
}

// Handler exposes the registry in the Prometheus text format.
// Compression is left to the HTTP middleware.
func (m *HTTP) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{DisableCompression: true})
}

// Begin marks a request as in flight and returns the function that records its outcome.
func (m *HTTP) Begin() func(method, route string, status int, elapsed time.Duration) {
	m.inFlight.Inc()
	return func(method, route string, status int, elapsed time.Duration) {
		m.inFlight.Dec()
		if route == "" {
			route = "unmatched"
		}
		method = strings.ToUpper(method)
		m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		m.duration.WithLabelValues(method, route).Observe(elapsed.Seconds())
	}
}
