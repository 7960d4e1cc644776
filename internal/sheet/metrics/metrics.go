package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels.
const (
	OutcomeOK     = "ok"
	OutcomeError  = "error"
	OutcomeSchema = "schema_violation"
)

// Metrics provides observability for remote table calls.
type Metrics struct {
	Requests        *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	Connects        *prometheus.CounterVec
}

// New registers the remote table metrics with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "climbreg_sheet_requests_total",
			Help: "Remote spreadsheet calls by operation, table and outcome",
		}, []string{"op", "table", "outcome"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "climbreg_sheet_request_duration_seconds",
			Help:    "Latency of remote spreadsheet calls",
			Buckets: prometheus.DefBuckets,
		}, []string{"op"}),
		Connects: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "climbreg_sheet_connects_total",
			Help: "Attempts to authorize the spreadsheet connection",
		}, []string{"outcome"}),
	}
}

func (m *Metrics) ObserveRequest(op, table, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(op, table, outcome).Inc()
	m.RequestDuration.WithLabelValues(op).Observe(elapsed.Seconds())
}

func (m *Metrics) IncrementConnects(outcome string) {
	if m == nil {
		return
	}
	m.Connects.WithLabelValues(outcome).Inc()
}
