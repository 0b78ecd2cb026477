// internal/core/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownOrder is returned when the ERP has no document for a referenced
// order number.
var ErrUnknownOrder = errors.New("order not found in ERP")

// TransportError wraps a connectivity-level failure talking to the ERP.
// Work that fails with a transport error is retried on the next pass.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("erp transport failure during %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// CommitError means the ERP document is already finalized and permanently
// rejects further changes.
type CommitError struct {
	OrderNumber string
	Reason      string
}

func (e *CommitError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("order %s is already committed: %s", e.OrderNumber, e.Reason)
	}
	return fmt.Sprintf("order %s is already committed", e.OrderNumber)
}

// MalformedOrderNumberError is returned when a WMS order number does not
// split into a type prefix and a bare numeric part.
type MalformedOrderNumberError struct {
	Raw string
}

func (e *MalformedOrderNumberError) Error() string {
	return fmt.Sprintf("malformed order number: %q", e.Raw)
}

// OrderLineNotFoundError is returned when a return record references a line
// number missing from its target order.
type OrderLineNotFoundError struct {
	OrderNumber string
	LineNumber  int
}

func (e *OrderLineNotFoundError) Error() string {
	return fmt.Sprintf("order %s has no line %d", e.OrderNumber, e.LineNumber)
}

// IsTransient reports whether err should be retried on a later pass by
// leaving the triggering file unconsumed.
func IsTransient(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsPermanent reports whether retrying err for the same document can never
// succeed, so the file or order must be abandoned.
func IsPermanent(err error) bool {
	if errors.Is(err, ErrUnknownOrder) {
		return true
	}
	var (
		ce *CommitError
		me *MalformedOrderNumberError
		le *OrderLineNotFoundError
	)
	return errors.As(err, &ce) || errors.As(err, &me) || errors.As(err, &le)
}
