package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Assignment outcomes.
const (
	OutcomeAssigned        = "assigned"
	OutcomeCardNotFound    = "card_not_found"
	OutcomeAlreadyAssigned = "already_assigned"
	OutcomeKindMismatch    = "kind_mismatch"
	OutcomeError           = "error"
)

// Metrics provides observability for card assignment.
type Metrics struct {
	Assignments *prometheus.CounterVec
	Released    prometheus.Counter
}

// New registers the card metrics with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Assignments: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "climbreg_card_assignments_total",
			Help: "Card assignment attempts by outcome",
		}, []string{"outcome"}),
		Released: factory.NewCounter(prometheus.CounterOpts{
			Name: "climbreg_card_released_total",
			Help: "Cards released because their holder received a new card",
		}),
	}
}

func (m *Metrics) IncrementAssignment(outcome string) {
	if m != nil {
		m.Assignments.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) IncrementReleased() {
	if m != nil {
		m.Released.Inc()
	}
}
