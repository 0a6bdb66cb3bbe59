package obs

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the service's Prometheus collectors.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	gatherer prometheus.Gatherer

	HTTPRequests    *prometheus.CounterVec
	HTTPDurations   *prometheus.HistogramVec
	UpstreamCalls   *prometheus.CounterVec
	SystemsReturned prometheus.Histogram
}

// NewMetrics registers collectors on reg, defaulting to the global registry.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	m := &Metrics{
		gatherer: gatherer,
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Handled HTTP requests by method, path and status code.",
		}, []string{"method", "path", "status"}),
		HTTPDurations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		}, []string{"method", "path"}),
		UpstreamCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Calls to remote data sources by service and outcome (ok, error, retry).",
		}, []string{"service", "outcome"}),
		SystemsReturned: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "nearby_systems_returned",
			Help:    "Number of systems in each ranked site query result.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 7),
		}),
	}

	var err error
	if m.HTTPRequests, err = register(reg, m.HTTPRequests); err != nil {
		return nil, fmt.Errorf("register http_requests_total: %w", err)
	}
	if m.HTTPDurations, err = register(reg, m.HTTPDurations); err != nil {
		return nil, fmt.Errorf("register http_request_duration_seconds: %w", err)
	}
	if m.UpstreamCalls, err = register(reg, m.UpstreamCalls); err != nil {
		return nil, fmt.Errorf("register upstream_requests_total: %w", err)
	}
	if m.SystemsReturned, err = register(reg, m.SystemsReturned); err != nil {
		return nil, fmt.Errorf("register nearby_systems_returned: %w", err)
	}

	return m, nil
}

// register adds c to reg. When an equivalent collector is already
// registered, that one is returned so repeated setup shares the same series.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// Handler exposes the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	if m == nil || m.gatherer == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveHTTP(method, path string, status int, dur time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPDurations.WithLabelValues(method, path).Observe(dur.Seconds())
}

func (m *Metrics) UpstreamRequest(service, outcome string) {
	if m == nil {
		return
	}
	m.UpstreamCalls.WithLabelValues(service, outcome).Inc()
}

func (m *Metrics) ObserveSystemsReturned(n int) {
	if m == nil {
		return
	}
	m.SystemsReturned.Observe(float64(n))
}
