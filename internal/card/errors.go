// Package card links physical membership cards to certified climbers.
package card

import (
	"errors"

	dErrors "climbreg/pkg/domain-errors"
)

var (
	// ErrCardNotFound means no card with the given serial exists.
	ErrCardNotFound = errors.New("card not found")

	// ErrCardAlreadyAssigned means the card is held by a climber already.
	ErrCardAlreadyAssigned = errors.New("card already assigned")

	// ErrCardKindMismatch means the card is printed for a different
	// certificate kind than the climber holds.
	ErrCardKindMismatch = errors.New("card kind does not match certificate")
)

// CardNotFound reports a missing card serial.
func CardNotFound(cardID string) error {
	return dErrors.Wrap(ErrCardNotFound, dErrors.CodeNotFound, "card "+cardID)
}

// AlreadyAssigned reports a card that is held by someone.
func AlreadyAssigned(cardID string) error {
	return dErrors.Wrap(ErrCardAlreadyAssigned, dErrors.CodeConflict, "card "+cardID)
}

// KindMismatch reports a card printed for another certificate kind.
func KindMismatch(cardID string) error {
	return dErrors.Wrap(ErrCardKindMismatch, dErrors.CodeConflict, "card "+cardID)
}
