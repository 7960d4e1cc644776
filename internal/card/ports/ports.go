// Package ports defines what the card module needs from its surroundings.
package ports

import (
	"context"

	"climbreg/internal/card/models"
	examModels "climbreg/internal/exam/models"
	id "climbreg/pkg/domain"
	"climbreg/pkg/platform/audit"
)

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks

// CardRows is the card sheet. *sheet.Table[*models.Card] satisfies it.
type CardRows interface {
	Fetch(ctx context.Context, match func(*models.Card) bool) ([]*models.Card, error)
	Save(ctx context.Context, card *models.Card) error
	Forget(card *models.Card)
}

// CertificateResolver reads a climber's certificate straight from the exam
// sheet.
type CertificateResolver interface {
	Resolve(ctx context.Context, code id.IDCode) (*examModels.Certificate, error)
}

// AuditPublisher records card changes.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}
