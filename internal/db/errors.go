package db

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

var (
	ErrConfiguration   = errors.New("datastore configuration error")
	ErrConnection      = errors.New("datastore connection error")
	ErrSchema          = errors.New("datastore schema mismatch")
	ErrIndexOutOfRange = errors.New("headstone index out of range")
	ErrNotFound        = errors.New("headstone not found")
	ErrPersist         = errors.New("headstone write failed")
	ErrClosed          = errors.New("datastore is closed")
)

// SchemaError names the expected columns a table does not have.
type SchemaError struct {
	Table   string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("table %s is missing columns: %s", e.Table, strings.Join(e.Missing, ", "))
}

func (e *SchemaError) Unwrap() error { return ErrSchema }

type LookupError struct {
	Index      int
	SequenceID string
	Err        error
}

func (e *LookupError) Error() string {
	if e.SequenceID == "" {
		return fmt.Sprintf("headstone %d: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("headstone %d (sequence id %s): %v", e.Index, e.SequenceID, e.Err)
}

func (e *LookupError) Unwrap() error { return e.Err }

type FieldError struct {
	Column string
	Value  string
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("column %s: cannot bind %q: %v", e.Column, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// BindError is returned by WriteRecord when one or more fields could not be
// converted to their column type. Nothing is written when it is returned.
type BindError struct {
	Index int
	err   error
}

// NewBindError wraps the field errors accumulated for the headstone at index.
func NewBindError(index int, fields error) *BindError {
	return &BindError{Index: index, err: fields}
}

func (e *BindError) Error() string {
	return fmt.Sprintf("headstone %d: %d field(s) failed to bind: %v", e.Index, len(e.Fields()), e.err)
}

func (e *BindError) Unwrap() error { return e.err }

func (e *BindError) Fields() []*FieldError {
	var out []*FieldError
	for _, err := range multierr.Errors(e.err) {
		var fe *FieldError
		if errors.As(err, &fe) {
			out = append(out, fe)
		}
	}
	return out
}

func (e *BindError) Columns() []string {
	fields := e.Fields()
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Column
	}
	return out
}
