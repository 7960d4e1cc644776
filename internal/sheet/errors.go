package sheet

import (
	"fmt"

	dErrors "climbreg/pkg/domain-errors"
	"climbreg/pkg/platform/sentinel"
)

var (
	// ErrRemoteAccess reports an authentication or network failure talking
	// to the remote store. It is never retried here.
	ErrRemoteAccess = sentinel.ErrUnavailable

	// ErrSchemaViolation reports a table whose shape or cell types are not
	// what the mapper expects; the backing store needs fixing.
	ErrSchemaViolation = sentinel.ErrSchemaViolation

	// ErrUnknownPosition reports a Save for an entity that this table did
	// not return from Fetch.
	ErrUnknownPosition = sentinel.ErrUnknownPosition
)

func remoteAccess(op string, err error) error {
	return dErrors.Wrap(fmt.Errorf("%w: %w", ErrRemoteAccess, err), dErrors.CodeUnavailable, op)
}

func schemaViolation(table, format string, args ...any) error {
	cause := fmt.Errorf("%w: %s", ErrSchemaViolation, fmt.Sprintf(format, args...))
	return dErrors.Wrap(cause, dErrors.CodeDataIntegrity, "table "+table)
}

func unknownPosition(table string) error {
	return dErrors.Wrap(ErrUnknownPosition, dErrors.CodeInternal, "save to "+table+": entity was not fetched from this table")
}
