package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"climbreg/internal/card"
	"climbreg/internal/card/metrics"
	"climbreg/internal/card/models"
	"climbreg/internal/card/ports"
	id "climbreg/pkg/domain"
	dErrors "climbreg/pkg/domain-errors"
	"climbreg/pkg/platform/audit"
)

type (
	CardRows            = ports.CardRows
	CertificateResolver = ports.CertificateResolver
	AuditPublisher      = ports.AuditPublisher
)

// Service assigns physical cards to certified climbers.
type Service struct {
	rows           CardRows
	certificates   CertificateResolver
	auditPublisher AuditPublisher
	metrics        *metrics.Metrics
	logger         *slog.Logger
	now            func() time.Time
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(rows CardRows, certificates CertificateResolver, opts ...Option) (*Service, error) {
	if rows == nil {
		return nil, fmt.Errorf("card rows are required")
	}
	if certificates == nil {
		return nil, fmt.Errorf("certificate resolver is required")
	}

	svc := &Service{
		rows:         rows,
		certificates: certificates,
		logger:       slog.Default(),
		now:          time.Now,
	}

	for _, opt := range opts {
		opt(svc)
	}

	return svc, nil
}

// FindByClimber returns the first card held by climber, or nil when the
// climber holds none.
func (s *Service) FindByClimber(ctx context.Context, climber id.IDCode) (*models.Card, error) {
	if climber.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "identity code is required")
	}
	cards, err := s.rows.Fetch(ctx, func(c *models.Card) bool {
		return c.ClimberID == climber.String()
	})
	if err != nil {
		return nil, err
	}
	// lookups are read-only; Assign fetches again before writing
	for _, c := range cards {
		s.rows.Forget(c)
	}
	if len(cards) == 0 {
		return nil, nil
	}
	return cards[0], nil
}

// Assign gives card cardID to climber on behalf of operator. The card must
// exist, be free and be printed for the green or red certificate the climber
// holds. Any other card the climber held is released, but only once the new
// card has been written, so a failed assignment never leaves the climber
// without a card.
func (s *Service) Assign(ctx context.Context, climber id.IDCode, cardID, operator string) error {
	cardID = strings.TrimSpace(cardID)
	switch {
	case climber.IsNil():
		return dErrors.New(dErrors.CodeInvalidInput, "identity code is required")
	case cardID == "":
		return dErrors.New(dErrors.CodeInvalidInput, "card id is required")
	case operator == "":
		return dErrors.New(dErrors.CodeInvalidInput, "operator is required")
	}

	cards, err := s.rows.Fetch(ctx, func(c *models.Card) bool {
		return c.IssuedCardID == cardID || c.ClimberID == climber.String()
	})
	if err != nil {
		s.metrics.IncrementAssignment(metrics.OutcomeError)
		return err
	}

	var (
		target *models.Card
		held   []*models.Card
	)
	for _, c := range cards {
		if target == nil && c.IssuedCardID == cardID {
			target = c
			continue
		}
		if c.ClimberID == climber.String() {
			held = append(held, c)
		}
	}

	if target == nil {
		return s.reject(ctx, climber, cardID, operator, card.CardNotFound(cardID))
	}
	if target.IsAssigned() {
		return s.reject(ctx, climber, cardID, operator, card.AlreadyAssigned(cardID))
	}

	cert, err := s.certificates.Resolve(ctx, climber)
	if err != nil {
		return s.reject(ctx, climber, cardID, operator, err)
	}
	// uncertified kinds (blank, unrecognised) never match, not even each other
	if !cert.Kind.IsCertified() || target.Kind() != cert.Kind {
		return s.reject(ctx, climber, cardID, operator, card.KindMismatch(cardID))
	}

	target.ClimberID = climber.String()
	target.IssuedAt = s.now().UTC().Format(time.RFC3339)
	target.IssuedBy = operator
	if err := s.rows.Save(ctx, target); err != nil {
		s.metrics.IncrementAssignment(metrics.OutcomeError)
		return err
	}
	s.metrics.IncrementAssignment(metrics.OutcomeAssigned)
	s.logAudit(ctx, audit.EventCardAssigned, climber, cardID, operator, "")

	for _, c := range held {
		c.ClimberID = ""
		if err := s.rows.Save(ctx, c); err != nil {
			return fmt.Errorf("release card %s: %w", c.IssuedCardID, err)
		}
		s.metrics.IncrementReleased()
		s.logAudit(ctx, audit.EventCardReleased, climber, c.IssuedCardID, operator, "replaced by "+cardID)
	}

	return nil
}

func (s *Service) reject(ctx context.Context, climber id.IDCode, cardID, operator string, err error) error {
	s.metrics.IncrementAssignment(rejectOutcome(err))
	s.logAudit(ctx, audit.EventCardAssignRejected, climber, cardID, operator, err.Error())
	return err
}

// logAudit writes the event to the structured log and the audit trail. A
// failing audit store is logged; the sheet change has already happened.
func (s *Service) logAudit(ctx context.Context, event audit.AuditEvent, climber id.IDCode, cardID, operator, reason string) {
	s.logger.InfoContext(ctx, string(event),
		"id_code", climber,
		"card_id", cardID,
		"operator", operator,
		"reason", reason,
		"log_type", "audit",
	)
	if s.auditPublisher == nil {
		return
	}
	err := s.auditPublisher.Emit(ctx, audit.Event{
		Subject:  climber.String(),
		Action:   string(event),
		Resource: cardID,
		Reason:   reason,
		ActorID:  operator,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "audit event not recorded",
			"action", string(event),
			"error", err,
		)
	}
}

func rejectOutcome(err error) string {
	switch {
	case errors.Is(err, card.ErrCardNotFound):
		return metrics.OutcomeCardNotFound
	case errors.Is(err, card.ErrCardAlreadyAssigned):
		return metrics.OutcomeAlreadyAssigned
	case errors.Is(err, card.ErrCardKindMismatch):
		return metrics.OutcomeKindMismatch
	default:
		return metrics.OutcomeError
	}
}
