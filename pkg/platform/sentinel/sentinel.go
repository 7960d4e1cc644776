package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Table access layers and caches
// return these (optionally wrapped) so services can translate them into
// domain errors.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: entry does not exist in a store or cache
// - ErrUnavailable: remote store unreachable or credentials rejected
// - ErrSchemaViolation: remote data does not have the expected shape
// - ErrUnknownPosition: a write-back was attempted for a record the table never produced
//
// For validation errors (bad input, missing fields), use pkg/domain-errors directly.
var (
	ErrNotFound        = errors.New("not found")
	ErrUnavailable     = errors.New("unavailable")
	ErrSchemaViolation = errors.New("schema violation")
	ErrUnknownPosition = errors.New("unknown row position")
)
