package graphql

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/viant/tally-mcp/tally/errs"
)

const metricNamePrefix = "tally_graphql_"

// Metrics tracks upstream request outcomes. A nil *Metrics is a no-op.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec

	registerOnce sync.Once
}

// NewMetrics creates and registers request metrics with registry.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	m := &Metrics{}
	m.Register(registry)
	return m
}

// Register registers the collectors once; a nil registry leaves m inert.
func (m *Metrics) Register(registry prometheus.Registerer) {
	if registry == nil {
		return
	}
	m.registerOnce.Do(func() {
		factory := promauto.With(registry)
		m.requests = factory.NewCounterVec(prometheus.CounterOpts{
			Name: metricNamePrefix + "requests_total",
			Help: "Total number of upstream GraphQL requests by operation and outcome",
		}, []string{"operation", "outcome", "status"})
		m.duration = factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    metricNamePrefix + "request_duration_seconds",
			Help:    "Upstream GraphQL request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"})
	})
}

func (m *Metrics) observe(operation string, status int, err error, elapsed time.Duration) {
	if m == nil || m.requests == nil {
		return
	}
	m.requests.WithLabelValues(operation, outcome(status, err), strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

func outcome(status int, err error) string {
	switch {
	case err == nil:
		return "ok"
	case status == 429:
		return "rate_limited"
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return "http_error"
	}
	if errs.Is(err, errs.Upstream) && status >= 200 && status < 300 {
		return "graphql_error"
	}
	return "transport_error"
}
