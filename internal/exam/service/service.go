package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"climbreg/internal/exam"
	"climbreg/internal/exam/metrics"
	"climbreg/internal/exam/models"
	"climbreg/internal/exam/ports"
	id "climbreg/pkg/domain"
	dErrors "climbreg/pkg/domain-errors"
	"climbreg/pkg/email"
	"climbreg/pkg/platform/audit"
	"climbreg/pkg/platform/sentinel"
)

// certificateValidity is how long a newly registered certificate lasts.
const certificateValidity = 3

type (
	ExamRows         = ports.ExamRows
	CertificateCache = ports.CertificateCache
	AuditPublisher   = ports.AuditPublisher
)

// Service looks up and registers climbing certificates in the exam sheet.
type Service struct {
	rows    ExamRows
	cache   CertificateCache
	audit   AuditPublisher
	metrics *metrics.Metrics
	logger  *slog.Logger
	now     func() time.Time
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithCache makes FindByIDCode read through cache.
func WithCache(cache CertificateCache) Option {
	return func(s *Service) {
		s.cache = cache
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.audit = publisher
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

func New(rows ExamRows, opts ...Option) (*Service, error) {
	if rows == nil {
		return nil, fmt.Errorf("exam rows are required")
	}

	svc := &Service{
		rows:   rows,
		logger: slog.Default(),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(svc)
	}

	return svc, nil
}

// FindByIDCode returns the authoritative certificate for code, reading
// through the cache when one is configured. Cache failures degrade to a
// direct read.
func (s *Service) FindByIDCode(ctx context.Context, code id.IDCode) (*models.Certificate, error) {
	if code.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "identity code is required")
	}
	if s.cache == nil {
		return s.Resolve(ctx, code)
	}

	backend := s.cache.Backend()
	cached, err := s.cache.FindCertificate(ctx, code)
	switch {
	case err == nil:
		s.metrics.IncrementCacheHit(backend)
		return cached, nil
	case errors.Is(err, sentinel.ErrNotFound):
		s.metrics.IncrementCacheMiss(backend)
	default:
		s.metrics.IncrementCacheMiss(backend)
		s.logger.WarnContext(ctx, "certificate cache read failed",
			"backend", backend,
			"error", err,
		)
	}

	cert, err := s.Resolve(ctx, code)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SaveCertificate(ctx, cert); err != nil {
		s.logger.WarnContext(ctx, "certificate cache write failed",
			"backend", backend,
			"error", err,
		)
	}
	return cert, nil
}

// Resolve reads every exam row of code from the sheet and picks the
// authoritative certificate. It never consults the cache.
func (s *Service) Resolve(ctx context.Context, code id.IDCode) (*models.Certificate, error) {
	if code.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "identity code is required")
	}

	rows, err := s.rows.Fetch(ctx, func(r *models.ExamRow) bool {
		return r.ID == code.String()
	})
	if err != nil {
		s.metrics.IncrementLookup(metrics.OutcomeError)
		return nil, err
	}
	for _, row := range rows {
		// exam rows are append-only, so no fetched row is ever saved back
		s.rows.Forget(row)
		if models.ParseKind(row.Certificate) == models.KindUnknown {
			s.metrics.IncrementUnknownKind()
			s.logger.WarnContext(ctx, "unrecognized certificate kind",
				"id_code", code,
				"certificate", row.Certificate,
			)
		}
	}

	now := s.now()
	cert, err := exam.Resolve(rows, now)
	if err != nil {
		s.metrics.IncrementLookup(lookupErrorOutcome(err))
		return nil, err
	}
	s.metrics.IncrementLookup(lookupOutcome(cert, now))
	return cert, nil
}

// Register appends an exam row for a climber who passed an exam. The
// certificate expires three years after the exam date.
func (s *Service) Register(ctx context.Context, reg models.Registration) (*models.ExamRow, error) {
	reg.Email = email.Normalize(reg.Email)
	registryKind, err := validateRegistration(reg)
	if err != nil {
		return nil, err
	}

	row := &models.ExamRow{
		FormFillTime: s.now().UTC().Format(time.RFC3339),
		ID:           reg.IDCode.String(),
		Name:         reg.Name,
		Certificate:  registryKind,
		ExamDate:     exam.FormatDate(reg.ExamDate),
		ExpiryDate:   exam.FormatDate(reg.ExamDate.AddDate(certificateValidity, 0, 0)),
		Examiner:     reg.Examiner,
		Email:        reg.Email,
		Comment:      reg.Comment,
	}
	if err := s.rows.Append(ctx, row); err != nil {
		return nil, err
	}
	s.metrics.IncrementRegistration()

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, reg.IDCode); err != nil {
			s.logger.WarnContext(ctx, "certificate cache invalidation failed",
				"id_code", reg.IDCode,
				"error", err,
			)
		}
	}

	s.logger.InfoContext(ctx, "exam registered",
		"id_code", reg.IDCode,
		"kind", reg.Kind,
		"examiner", reg.Examiner,
		"expiry_date", row.ExpiryDate,
		"log_type", "audit",
	)
	if s.audit != nil {
		err := s.audit.Emit(ctx, audit.Event{
			Subject:  reg.IDCode.String(),
			Action:   string(audit.EventExamRegistered),
			Resource: registryKind,
			Decision: row.ExpiryDate,
			ActorID:  reg.Examiner,
		})
		if err != nil {
			s.logger.ErrorContext(ctx, "audit event not recorded",
				"action", string(audit.EventExamRegistered),
				"error", err,
			)
		}
	}
	return row, nil
}

func validateRegistration(reg models.Registration) (string, error) {
	if reg.IDCode.IsNil() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "identity code is required")
	}
	if reg.Name == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "name is required")
	}
	if !email.IsValid(reg.Email) {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid email")
	}
	if reg.ExamDate.IsZero() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "exam date is required")
	}
	if reg.Examiner == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "examiner is required")
	}
	value, ok := reg.Kind.RegistryValue()
	if !ok {
		return "", dErrors.New(dErrors.CodeInvalidInput, "certificate kind must be green or red")
	}
	return value, nil
}

func lookupOutcome(cert *models.Certificate, now time.Time) string {
	switch cert.StatusOn(now) {
	case models.StatusValid:
		return metrics.OutcomeValid
	case models.StatusExpired:
		return metrics.OutcomeExpired
	default:
		return metrics.OutcomeInvalid
	}
}

func lookupErrorOutcome(err error) string {
	switch {
	case errors.Is(err, exam.ErrNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, exam.ErrInvalidCertificate), errors.Is(err, exam.ErrMalformedDate):
		return metrics.OutcomeInvalid
	default:
		return metrics.OutcomeError
	}
}
