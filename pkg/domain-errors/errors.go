// Package domainerrors carries a small, transport-agnostic error taxonomy.
//
// Every failure that crosses a package boundary is tagged with a Code so
// callers can tell "input was invalid" from "backing data is inconsistent"
// from "infrastructure is unreachable" without string matching. Sentinels
// stay reachable through errors.Is because Error unwraps to its cause.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code classifies a failure.
type Code string

const (
	// CodeInvalidInput means the caller supplied something unusable.
	CodeInvalidInput Code = "invalid_input"
	// CodeNotFound means the requested record does not exist.
	CodeNotFound Code = "not_found"
	// CodeConflict means the request clashes with the current state.
	CodeConflict Code = "conflict"
	// CodeDataIntegrity means the backing data is corrupt or malformed and an
	// operator has to fix the source row.
	CodeDataIntegrity Code = "data_integrity"
	// CodeUnavailable means a remote dependency could not be reached.
	CodeUnavailable Code = "unavailable"
	// CodeInternal is a programming error.
	CodeInternal Code = "internal"
)

// Error is a coded error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New returns a coded error without a cause.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Wrap tags err with code. A nil err yields nil.
func Wrap(err error, code Code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, Err: err}
}

// CodeOf returns the outermost code in err's chain, or CodeInternal.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// HasCode reports whether any error in err's chain carries code.
func HasCode(err error, code Code) bool {
	for err != nil {
		var de *Error
		if !errors.As(err, &de) {
			return false
		}
		if de.Code == code {
			return true
		}
		err = de.Err
	}
	return false
}
