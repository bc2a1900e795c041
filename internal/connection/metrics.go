package connection

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"arangodoc/internal/method"
)

// Metrics holds the client side request metrics.
type Metrics struct {
	requestCount    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewMetrics creates the client metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		requestCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "arangodoc_client_requests_total",
				Help: "Total number of requests sent to the database.",
			},
			[]string{"operation", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "arangodoc_client_request_duration_seconds",
				Help:    "Latency of requests sent to the database.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}

	if err := reg.Register(m.requestCount); err != nil {
		return nil, err
	}
	if err := reg.Register(m.requestDuration); err != nil {
		return nil, err
	}
	return m, nil
}

// observe records one request. A status of 0 means the request failed in transport.
func (m *Metrics) observe(op method.Operation, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	m.requestCount.WithLabelValues(op.String(), label).Inc()
	m.requestDuration.WithLabelValues(op.String()).Observe(elapsed.Seconds())
}
