package db

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that no invoice matches the given id or number.
var ErrNotFound = errors.New("invoice not found")

// ErrDuplicateNumber reports a create with an invoice number that is
// already taken. Callers show a specific message and prompt for another
// number, so this is kept distinct from generic storage failures.
var ErrDuplicateNumber = errors.New("invoice number already exists")

// SerializationError reports a stored items blob that cannot be parsed
// back into line items. It affects only the one record it wraps; other
// records stay readable.
type SerializationError struct {
	InvoiceID uint
	Err       error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("invoice %d: unreadable items blob: %v", e.InvoiceID, e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }
