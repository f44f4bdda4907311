package dispatch

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/viant/tally-mcp/tally/errs"
)

const metricNamePrefix = "tally_mcp_"

// Metrics counts tool calls. A nil *Metrics is a no-op.
type Metrics struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
	once     sync.Once
}

// NewMetrics creates and registers tool call metrics with registry.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	m := &Metrics{}
	if registry == nil {
		return m
	}
	m.once.Do(func() {
		factory := promauto.With(registry)
		m.calls = factory.NewCounterVec(prometheus.CounterOpts{
			Name: metricNamePrefix + "tool_calls_total",
			Help: "Total number of tool calls by tool and outcome",
		}, []string{"tool", "outcome"})
		m.duration = factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    metricNamePrefix + "tool_call_duration_seconds",
			Help:    "Tool call latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"tool"})
	})
	return m
}

func (m *Metrics) observe(tool string, err error, elapsed time.Duration) {
	if m == nil || m.calls == nil {
		return
	}
	m.calls.WithLabelValues(tool, outcome(err)).Inc()
	m.duration.WithLabelValues(tool).Observe(elapsed.Seconds())
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	switch errs.KindOf(err) {
	case errs.Validation:
		return "validation"
	case errs.NotFound:
		return "not_found"
	case errs.AmbiguousIdentifier:
		return "ambiguous"
	case errs.UnknownTool:
		return "unknown_tool"
	}
	return "upstream"
}
