package core

import (
	"errors"
	"fmt"
)

// Ledger error categories. Every failure returned by this package matches
// exactly one of them through errors.Is.
var (
	// ErrNotFound is returned when a client or invoice lookup by label fails.
	ErrNotFound = errors.New("not found")

	// ErrEmptyInput is returned when an operation has nothing to work on:
	// no items on an invoice, no clients to bill, no invoices to pay.
	ErrEmptyInput = errors.New("empty input")

	// ErrInvalidFormat is returned when a numeric field cannot be parsed or
	// is out of its allowed range.
	ErrInvalidFormat = errors.New("invalid format")
)

// LedgerError adds the failing operation and a short detail to one of the
// sentinel errors above.
type LedgerError struct {
	// Op is the ledger operation that failed (e.g. "GenerateInvoice").
	Op string

	// Err is the underlying error.
	Err error

	// Details names the subject of the failure (a client name, a project title).
	Details string
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("ledger: %s: %s: %v", e.Op, e.Details, e.Err)
	}
	return fmt.Sprintf("ledger: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

func newLedgerError(op string, err error, details string) *LedgerError {
	return &LedgerError{Op: op, Err: err, Details: details}
}

// ValidationError describes a rejected field value.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s (value: %v)", e.Field, e.Message, e.Value)
}

// Unwrap makes every ValidationError match ErrInvalidFormat.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidFormat
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}
