package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EventCategory classifies audit events by their primary purpose.
type EventCategory string

const (
	// CategoryCompliance covers changes to registry data: who got which card,
	// who was certified by whom. These are kept indefinitely.
	CategoryCompliance EventCategory = "compliance"

	// CategoryOperations covers rejected requests and other routine activity
	// useful when an operator asks "why did this fail".
	CategoryOperations EventCategory = "operations"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	ID        uuid.UUID
	Category  EventCategory
	Timestamp time.Time
	// Subject is the identity code of the climber the action concerns.
	Subject string
	Action  string
	// Resource names the record acted on, e.g. a card serial.
	Resource string
	Decision string
	Reason   string
	// ActorID is the operator who performed the action.
	ActorID string
}

type AuditEvent string

const (
	// Card events
	EventCardAssigned       AuditEvent = "card_assigned"
	EventCardReleased       AuditEvent = "card_released"
	EventCardAssignRejected AuditEvent = "card_assignment_rejected"

	// Exam events
	EventExamRegistered AuditEvent = "exam_registered"
)

var eventCategories = map[AuditEvent]EventCategory{
	EventCardAssigned:   CategoryCompliance,
	EventCardReleased:   CategoryCompliance,
	EventExamRegistered: CategoryCompliance,

	EventCardAssignRejected: CategoryOperations,
}

// Category returns the EventCategory for this audit event.
// Unknown events default to CategoryOperations.
func (e AuditEvent) Category() EventCategory {
	if cat, ok := eventCategories[e]; ok {
		return cat
	}
	return CategoryOperations
}

// Store persists audit events.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListBySubject(ctx context.Context, subject string) ([]Event, error)
	ListRecent(ctx context.Context, limit int) ([]Event, error)
}
