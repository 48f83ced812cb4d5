// Package errs defines the error taxonomy shared by the sales-ledger services.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks bad input to payload assembly.
	ErrValidation = errors.New("validation failed")
	// ErrItemNotFound marks a sale submission referencing an unknown item.
	ErrItemNotFound = fmt.Errorf("%w: item not found", ErrValidation)
	// ErrNotFound marks a missing transaction or user lookup.
	ErrNotFound = errors.New("not found")
	// ErrInvalidState marks an operation attempted against a transaction in
	// the wrong status.
	ErrInvalidState = errors.New("invalid transaction state")
	// ErrIntegrityMismatch marks a hash comparison failure. This is a
	// business fact surfaced to auditors, never silently resolved.
	ErrIntegrityMismatch = errors.New("integrity mismatch")
	// ErrSerialization marks a payload that cannot be canonically serialized.
	ErrSerialization = errors.New("payload serialization failed")
)

// TransientError wraps a ledger RPC failure (timeout, connection loss). It is
// safe to retry on a later poll tick; it says nothing about the on-chain
// outcome of the attempted operation.
type TransientError struct {
	Op  string
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("ledger %s: %v", e.Op, e.Err)
}

func (e *TransientError) Unwrap() error { return e.Err }

// RejectionError wraps a ledger call that completed but reverted. Retrying
// with the same inputs would produce the same judgment, so callers must not
// resubmit.
type RejectionError struct {
	Op     string
	TxHash string
	Err    error
}

func (e *RejectionError) Error() string {
	if e.TxHash != "" {
		return fmt.Sprintf("ledger %s rejected (tx %s): %v", e.Op, e.TxHash, e.Err)
	}
	return fmt.Sprintf("ledger %s rejected: %v", e.Op, e.Err)
}

func (e *RejectionError) Unwrap() error { return e.Err }

// IsTransient reports whether err is retryable on a later tick.
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}

// IsRejection reports whether err is a completed-but-reverted ledger call.
func IsRejection(err error) bool {
	var re *RejectionError
	return errors.As(err, &re)
}
