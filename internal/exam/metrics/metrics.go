package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Lookup outcomes.
const (
	OutcomeValid    = "valid"
	OutcomeExpired  = "expired"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
)

// Metrics provides observability for certificate lookups.
type Metrics struct {
	// Lookups by outcome
	Lookups *prometheus.CounterVec

	// Read-through cache hits and misses, by backend
	CacheHits   *prometheus.CounterVec
	CacheMisses *prometheus.CounterVec

	// Certificates whose kind cell could not be read
	UnknownKinds prometheus.Counter

	Registrations prometheus.Counter
}

// New registers the exam metrics with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Lookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "climbreg_exam_lookups_total",
			Help: "Certificate lookups by outcome",
		}, []string{"outcome"}),
		CacheHits: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "climbreg_exam_cache_hits_total",
			Help: "Certificate cache hits",
		}, []string{"backend"}),
		CacheMisses: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "climbreg_exam_cache_misses_total",
			Help: "Certificate cache misses",
		}, []string{"backend"}),
		UnknownKinds: factory.NewCounter(prometheus.CounterOpts{
			Name: "climbreg_exam_unknown_kinds_total",
			Help: "Resolved certificates with an unrecognized kind",
		}),
		Registrations: factory.NewCounter(prometheus.CounterOpts{
			Name: "climbreg_exam_registrations_total",
			Help: "Exam rows appended by registration",
		}),
	}
}

func (m *Metrics) IncrementLookup(outcome string) {
	if m != nil {
		m.Lookups.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) IncrementCacheHit(backend string) {
	if m != nil {
		m.CacheHits.WithLabelValues(backend).Inc()
	}
}

func (m *Metrics) IncrementCacheMiss(backend string) {
	if m != nil {
		m.CacheMisses.WithLabelValues(backend).Inc()
	}
}

func (m *Metrics) IncrementUnknownKind() {
	if m != nil {
		m.UnknownKinds.Inc()
	}
}

func (m *Metrics) IncrementRegistration() {
	if m != nil {
		m.Registrations.Inc()
	}
}
