package exam

import (
	"errors"
	"fmt"

	dErrors "climbreg/pkg/domain-errors"
	"climbreg/pkg/platform/sentinel"
)

var (
	// ErrNotFound means the exam sheet has no row for the identity code.
	ErrNotFound = sentinel.ErrNotFound

	// ErrMalformedDate means a date cell is present but unreadable.
	ErrMalformedDate = errors.New("malformed date")

	// ErrInvalidCertificate means the best record for a climber is missing
	// data it needs to be shown.
	ErrInvalidCertificate = errors.New("invalid certificate")
)

func notFound(code string) error {
	msg := "no exam records"
	if code != "" {
		msg += " for " + code
	}
	return dErrors.Wrap(ErrNotFound, dErrors.CodeNotFound, msg)
}

func malformedDate(code, column, value string) error {
	return dErrors.Wrap(
		fmt.Errorf("%w: %s %q", ErrMalformedDate, column, value),
		dErrors.CodeDataIntegrity,
		"exam record for "+code,
	)
}

func invalidCertificate(code string, missing []string) error {
	return dErrors.Wrap(
		fmt.Errorf("%w: missing %v", ErrInvalidCertificate, missing),
		dErrors.CodeDataIntegrity,
		"exam record for "+code,
	)
}
