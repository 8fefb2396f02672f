package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrNotFound = errors.New("not found")

// NotFoundf builds a not-found error with a caller-facing message while
// still matching ErrNotFound under errors.Is.
func NotFoundf(format string, args ...any) error {
	return &notFoundError{msg: fmt.Sprintf(format, args...)}
}

type notFoundError struct{ msg string }

func (e *notFoundError) Error() string        { return e.msg }
func (e *notFoundError) Is(target error) bool { return target == ErrNotFound }

// FieldError is a single rejected field with its reason.
type FieldError struct {
	Field  string
	Reason string
}

// ValidationError aggregates every field that failed validation for one
// entity. The message format mirrors what clients of the old API parse:
// "<Entity> validation failed: <field>: <reason>[, <field>: <reason>...]".
type ValidationError struct {
	Entity string
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Reason)
	}
	return e.Entity + " validation failed: " + strings.Join(parts, ", ")
}

func newDuplicateError(entity, field string) *ValidationError {
	return &ValidationError{
		Entity: entity,
		Fields: []FieldError{{Field: field, Reason: fmt.Sprintf("Expected `%s` to be unique", field)}},
	}
}

// DuplicateError reports a uniqueness violation detected before the write
// reaches the store.
func DuplicateError(entity, field string) error { return newDuplicateError(entity, field) }
