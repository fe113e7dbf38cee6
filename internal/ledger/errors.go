package ledger

import (
	"errors"
	"fmt"
)

// Failure kinds. Every error returned by a Ledger operation wraps exactly
// one of these; match with errors.Is.
var (
	ErrInvalidAmount = errors.New("amount must be a positive number")
	ErrInvalidDate   = errors.New("date must be a real date in YYYY-MM-DD format")
	ErrInvalidType   = errors.New("type must be Expense or Income")
	ErrMissingField  = errors.New("required field is empty")
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrCategoryInUse = errors.New("category is in use")
	ErrAmbiguousID   = errors.New("id prefix matches more than one transaction")
)

// Error describes a failed ledger operation.
type Error struct {
	Op    string // operation name, e.g. "add transaction"
	Field string // offending field, if any
	Value string // offending value, if useful to show
	Err   error  // one of the Err* kinds, or a persistence error
}

func (e *Error) Error() string {
	msg := e.Op + ": "
	if e.Field != "" {
		msg += e.Field + ": "
	}
	msg += e.Err.Error()
	if e.Value != "" {
		msg += fmt.Sprintf(" (%q)", e.Value)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func opError(op, field, value string, err error) error {
	return &Error{Op: op, Field: field, Value: value, Err: err}
}
