package exmini

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a key or a transaction id does not exist.
var ErrNotFound = errors.New("not found")

// LoadError reports a failed attempt to read transactions from a source.
// It never escapes Load, it is carried by LoadStatus instead.
type LoadError struct {
	Source string // Source is the name of the source that failed, e.g. an URL or a store key.
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("cannot load transactions from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// InvalidShapeError reports a payload whose top level is not a sequence of records.
type InvalidShapeError struct {
	Kind string // Kind is the JSON kind found instead of an array, e.g. "object".
}

func (e *InvalidShapeError) Error() string {
	return fmt.Sprintf("invalid payload: want an array of records, got %s", e.Kind)
}

// ValidationError reports a user entered transaction that cannot be recorded.
type ValidationError struct {
	Field  string // Field is the canonical name of the offending field.
	Record string // Record identifies the transaction, its id or its deal id.
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Record == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s in %s: %s", e.Field, e.Record, e.Reason)
}
