// Package ports defines the storage boundaries of the exam module.
package ports

import (
	"context"

	"climbreg/internal/exam/models"
	id "climbreg/pkg/domain"
	"climbreg/pkg/platform/audit"
)

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks

// ExamRows is the exam sheet. *sheet.Table[*models.ExamRow] satisfies it.
type ExamRows interface {
	Fetch(ctx context.Context, match func(*models.ExamRow) bool) ([]*models.ExamRow, error)
	Append(ctx context.Context, row *models.ExamRow) error
	Forget(row *models.ExamRow)
}

// CertificateCache holds resolved certificates. FindCertificate returns
// sentinel.ErrNotFound on a miss.
type CertificateCache interface {
	Backend() string
	FindCertificate(ctx context.Context, code id.IDCode) (*models.Certificate, error)
	SaveCertificate(ctx context.Context, record *models.Certificate) error
	Invalidate(ctx context.Context, code id.IDCode) error
}

// AuditPublisher records registrations.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}
